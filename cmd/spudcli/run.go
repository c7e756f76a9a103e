package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"SpudSRI/internal/calc/analysis"
	"SpudSRI/internal/calc/export"
	"SpudSRI/internal/calc/report"
	"SpudSRI/internal/config"
	"SpudSRI/internal/repo"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type runOptions struct {
	csv, xlsx, pdf string
	envFile        string
}

func newRunCmd() *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run <case.yaml>",
		Short: "Analyse a case file and print the penetration summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if o.envFile != "" {
				files = append(files, o.envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			svc, closeSvc, err := newService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeSvc()
			return runCase(cmd.Context(), svc, args[0], o, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&o.csv, "csv", "", "write the envelope as CSV")
	cmd.Flags().StringVar(&o.xlsx, "xlsx", "", "write envelope, penetration and soil sheets as XLSX")
	cmd.Flags().StringVar(&o.pdf, "pdf", "", "write a PDF report")
	cmd.Flags().StringVar(&o.envFile, "env", "", ".env file to load")
	return cmd
}

// newService opens the Postgres rig catalog when DATABASE_URL is set; without
// it only inline spudcans can be analysed.
func newService(ctx context.Context, cfg *config.Config) (*analysis.Service, func(), error) {
	svc := &analysis.Service{Defaults: analysis.Defaults{
		Dz:                cfg.DefaultDz,
		MaxDepth:          cfg.DefaultMaxDepth,
		Workers:           cfg.SweepWorkers,
		ParallelThreshold: cfg.ParallelThreshold,
	}}
	if cfg.DatabaseURL == "" {
		return svc, func() {}, nil
	}
	db, err := repo.OpenDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open rig catalog: %w", err)
	}
	svc.Rigs = repo.NewPostgresRigDB(db)
	return svc, func() { db.Close() }, nil
}

func readCase(svc *analysis.Service, path string) (analysis.Request, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return analysis.Request{}, err
	}
	req := svc.NewRequest()
	if err := yaml.Unmarshal(b, &req); err != nil {
		return analysis.Request{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return req, nil
}

func runCase(ctx context.Context, svc *analysis.Service, path string, o runOptions, out io.Writer) error {
	req, err := readCase(svc, path)
	if err != nil {
		return err
	}
	res, err := svc.Run(ctx, req)
	if err != nil {
		return err
	}
	printSummary(out, res)

	if o.csv != "" {
		var buf bytes.Buffer
		if err := export.CSV(&buf, res.Rows); err != nil {
			return err
		}
		if err := writeFile(out, o.csv, buf.Bytes()); err != nil {
			return err
		}
	}
	if o.xlsx != "" {
		var buf bytes.Buffer
		if err := export.XLSX(&buf, res); err != nil {
			return err
		}
		if err := writeFile(out, o.xlsx, buf.Bytes()); err != nil {
			return err
		}
	}
	if o.pdf != "" {
		var buf bytes.Buffer
		if err := report.Write(&buf, res, report.Meta{Project: path}, time.Now()); err != nil {
			return err
		}
		if err := writeFile(out, o.pdf, buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(out io.Writer, path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", path)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printSummary(out io.Writer, res analysis.Result) {
	p, pred := res.Penetration, res.Prediction
	fmt.Fprintf(out, "Rig:               %s\n", orDash(res.Spudcan.RigName))
	fmt.Fprintf(out, "Preload:           %.1f MN\n", p.Preload)
	fmt.Fprintf(out, "Equilibrium depth: %s m\n", orDash(p.Equilibrium.Format(2)))
	fmt.Fprintf(out, "Tip equilibrium:   %s m\n", orDash(p.TipEquilibrium.Format(2)))
	fmt.Fprintf(out, "Range:             %s to %s m\n", orDash(p.RangeMin.Format(2)), orDash(p.RangeMax.Format(2)))
	fmt.Fprintf(out, "Predicted range:   %s\n", pred.Range())
	fmt.Fprintf(out, "Design depth:      %.2f m (tip %.2f m)\n", pred.Design, pred.TipUpper)
	for _, w := range pred.Warnings {
		fmt.Fprintf(out, "  [%s] %s\n", strings.ToUpper(string(w.Level)), w.Message)
	}
}
