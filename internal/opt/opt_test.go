package opt

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSomeRejectsNonFinite(t *testing.T) {
	assert.False(t, Some(math.NaN()).Valid)
	assert.False(t, Some(math.Inf(1)).Valid)
	assert.True(t, Some(0).Valid, "zero is a defined value")
}

func TestMinDefined(t *testing.T) {
	assert.Equal(t, Some(1), MinDefined(Some(1), Some(2)))
	assert.Equal(t, Some(2), MinDefined(None(), Some(2)))
	assert.Equal(t, Some(1), MinDefined(Some(1), None()))
	assert.False(t, MinDefined(None(), None()).Valid)
}

func TestJSONNull(t *testing.T) {
	type row struct {
		A Float `json:"a"`
		B Float `json:"b"`
	}
	b, err := json.Marshal(row{A: Some(1.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1.5,"b":null}`, string(b))

	var back row
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, Some(1.5), back.A)
	assert.False(t, back.B.Valid)
}

func TestYAML(t *testing.T) {
	var v struct {
		Beta  Float `yaml:"beta"`
		Alpha Float `yaml:"alpha"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("beta: 150\nalpha: ~\n"), &v))
	assert.Equal(t, Some(150), v.Beta)
	assert.False(t, v.Alpha.Valid)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", None().Format(3))
	assert.Equal(t, "2.500", Some(2.5).Format(3))
}
