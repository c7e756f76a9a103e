// Package analysis runs one spudcan penetration analysis end to end: rig
// resolution, envelope sweep, penetration crossings, enhanced prediction and
// the failure-mode summary. Its Result feeds the JSON API and every export.
package analysis

import (
	"context"
	"errors"
	"net/http"
	"time"

	"SpudSRI/internal/calc/prediction"
	"SpudSRI/internal/calc/spudcan"
	"SpudSRI/internal/log"
	"SpudSRI/internal/repo"
	"SpudSRI/internal/soil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Request names a catalog rig or gives the spudcan inline. A preload given
// here overrides the rig's.
type Request struct {
	Rig        string              `json:"rig,omitempty" yaml:"rig,omitempty" validate:"required_without=Spudcan"`
	Spudcan    *spudcan.Spudcan    `json:"spudcan,omitempty" yaml:"spudcan,omitempty" validate:"required_without=Rig"`
	Preload    *float64            `json:"preload_mn,omitempty" yaml:"preload_mn,omitempty" validate:"omitempty,gte=0"`
	Layers     []soil.Layer        `json:"layers" yaml:"layers"`
	Settings   *spudcan.Settings   `json:"settings,omitempty" yaml:"settings,omitempty"`
	Prediction *prediction.Options `json:"prediction,omitempty" yaml:"prediction,omitempty"`
}

type Result struct {
	ID          string                 `json:"id"`
	Spudcan     spudcan.Spudcan        `json:"spudcan"`
	Settings    spudcan.Settings       `json:"settings"`
	Layers      []soil.Layer           `json:"layers"`
	Rows        []spudcan.Row          `json:"rows"`
	Penetration spudcan.Penetration    `json:"penetration"`
	Prediction  prediction.Prediction  `json:"prediction"`
	Failures    spudcan.FailureSummary `json:"failure_modes"`
}

// Defaults are the process-wide values for what a request leaves out.
type Defaults struct {
	Dz                float64
	MaxDepth          float64
	Workers           int
	ParallelThreshold int
}

func (d Defaults) settings() spudcan.Settings {
	s := spudcan.DefaultSettings()
	if d.Dz > 0 {
		s.Dz = d.Dz
	}
	if d.MaxDepth > 0 {
		s.MaxDepth = d.MaxDepth
	}
	s.Workers = d.Workers
	if d.ParallelThreshold > 0 {
		s.ParallelThreshold = d.ParallelThreshold
	}
	return s
}

type Service struct {
	Rigs     repo.Repository
	Defaults Defaults
}

// NewRequest returns a Request whose settings and prediction options are
// pre-filled, so decoding a body over it only replaces the fields present.
func (s *Service) NewRequest() Request {
	set := s.Defaults.settings()
	opts := prediction.DefaultOptions()
	return Request{Settings: &set, Prediction: &opts}
}

func (s *Service) spudcan(ctx context.Context, req Request) (spudcan.Spudcan, error) {
	var spud spudcan.Spudcan
	switch {
	case req.Spudcan != nil:
		spud = *req.Spudcan
	case s.Rigs == nil:
		return spud, &spudcan.InputError{Field: "rig", Reason: "rig catalog is not configured"}
	default:
		rig, err := s.Rigs.GetRig(ctx, req.Rig)
		if err != nil {
			return spud, err
		}
		spud = rig
	}
	if req.Preload != nil {
		spud.Preload = *req.Preload
	}
	return spud, nil
}

// Run validates req and computes the full analysis.
func (s *Service) Run(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	if err := validate.Struct(req); err != nil {
		return Result{}, err
	}
	spud, err := s.spudcan(ctx, req)
	if err != nil {
		return Result{}, err
	}

	set := s.Defaults.settings()
	if req.Settings != nil {
		set = *req.Settings
		set.Workers = s.Defaults.Workers
		set.ParallelThreshold = s.Defaults.ParallelThreshold
	}
	opts := prediction.DefaultOptions()
	if req.Prediction != nil {
		opts = *req.Prediction
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	rows, err := spudcan.ComputeEnvelope(spud, req.Layers, set)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		ID:          uuid.NewString(),
		Spudcan:     spud,
		Settings:    set,
		Layers:      req.Layers,
		Rows:        rows,
		Penetration: spudcan.ResolvePenetration(spud, rows),
		Prediction:  prediction.Analyze(rows, spud.Preload, spud.TipOffset, opts),
		Failures:    spudcan.DetectFailureModes(rows),
	}
	log.Infow("analysis complete",
		"id", res.ID,
		"rig", spud.RigName,
		"rows", len(rows),
		"equilibrium_m", res.Penetration.Equilibrium.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// Status maps an analysis error to its HTTP status.
func Status(err error) int {
	var inputErr *spudcan.InputError
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &inputErr), errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, repo.ErrRigNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
