// Package batch runs several analysis cases in one call.
package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"SpudSRI/internal/calc/analysis"

	"golang.org/x/sync/errgroup"
)

const MaxCases = 50

var (
	ErrNoCases      = errors.New("no cases")
	ErrTooManyCases = fmt.Errorf("more than %d cases", MaxCases)
)

type Input struct {
	Cases []json.RawMessage `json:"cases"`
}

type Result struct {
	Results []analysis.Result `json:"results"`
}

// CaseError names the failing case; it unwraps to the analysis error so the
// HTTP status follows analysis.Status.
type CaseError struct {
	Index int
	Err   error
}

func (e *CaseError) Error() string { return fmt.Sprintf("case %d: %v", e.Index, e.Err) }

func (e *CaseError) Unwrap() error { return e.Err }

type Runner struct {
	Service *analysis.Service
	// Concurrency bounds the cases computed at once; 0 picks GOMAXPROCS.
	Concurrency int
}

// Decode reads every case over the service defaults.
func (r *Runner) Decode(in Input) ([]analysis.Request, error) {
	switch {
	case len(in.Cases) == 0:
		return nil, ErrNoCases
	case len(in.Cases) > MaxCases:
		return nil, ErrTooManyCases
	}
	reqs := make([]analysis.Request, len(in.Cases))
	for i, raw := range in.Cases {
		reqs[i] = r.Service.NewRequest()
		if err := json.Unmarshal(raw, &reqs[i]); err != nil {
			return nil, &CaseError{Index: i, Err: err}
		}
	}
	return reqs, nil
}

// Run computes every case and returns the results in input order. The first
// failure cancels the cases still running.
func (r *Runner) Run(ctx context.Context, reqs []analysis.Request) (Result, error) {
	if len(reqs) == 0 {
		return Result{}, ErrNoCases
	}
	limit := r.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	out := Result{Results: make([]analysis.Result, len(reqs))}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, req := range reqs {
		g.Go(func() error {
			res, err := r.Service.Run(ctx, req)
			if err != nil {
				return &CaseError{Index: i, Err: err}
			}
			out.Results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return out, nil
}
