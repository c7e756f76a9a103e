package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"SpudSRI/internal/calc/importer"
	"SpudSRI/internal/soil"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <layers.csv|layers.xlsx>",
		Short: "Convert a soil table to case-file YAML",
		Long: `Read a soil layer table and print it as the layers section of a case
file. Consistency warnings go to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layers, err := readLayers(args[0])
			if err != nil {
				return err
			}
			for _, w := range importer.Check(layers) {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(struct {
				Layers []soil.Layer `yaml:"layers"`
			}{layers}); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func readLayers(path string) ([]soil.Layer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return importer.ParseXLSX(f)
	}
	return importer.ParseCSV(f)
}
