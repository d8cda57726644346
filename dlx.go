// Package dlx is the public facade over the exact-cover solver: declare
// items and options through a Solver, then Solve it with a handler that
// receives each solution found. The facade wires internal/builder,
// internal/store, internal/search, and internal/reporter behind one
// type, the same shape the caller's usecase.Service wraps its ports
// behind.
package dlx

import (
	"context"
	"io"

	"dlx/internal/builder"
	"dlx/internal/domain"
	"dlx/internal/reporter"
	"dlx/internal/search"
)

// Re-exported so callers never need to import the internal packages
// directly.
type (
	// ItemID identifies a declared item.
	ItemID = domain.ItemID
	// NodeID identifies a chosen option-node on the choice stack.
	NodeID = domain.NodeID
	// Kind classifies an item as Primary or Secondary.
	Kind = domain.Kind
	// Mode selects how Solve explores the search tree.
	Mode = domain.Mode
	// Stats summarizes one Solve call.
	Stats = reporter.Stats
	// Handler receives solutions found during Solve.
	Handler = reporter.Handler
	// SolverView is the read-only snapshot handed to a Handler.
	SolverView = reporter.SolverView
	// ProgressFunc is invoked periodically during a long search.
	ProgressFunc = reporter.ProgressFunc
)

const (
	// Primary items must be covered exactly once in a solution.
	Primary = domain.Primary
	// Secondary items may be covered at most once.
	Secondary = domain.Secondary

	// Exhaustive enumerates every solution.
	Exhaustive = domain.Exhaustive
	// FirstOnly returns after the first solution found.
	FirstOnly = domain.FirstOnly
)

// Sentinel build-time errors, re-exported from internal/domain.
var (
	ErrItemNameTooLong        = domain.ErrItemNameTooLong
	ErrSecondaryBeforePrimary = domain.ErrSecondaryBeforePrimary
	ErrItemsFinalized         = domain.ErrItemsFinalized
	ErrUnknownItem            = domain.ErrUnknownItem
	ErrEmptyOption            = domain.ErrEmptyOption
	ErrDuplicateItemInOption  = domain.ErrDuplicateItemInOption
)

// PrintHandler and NoOpHandler are re-exported convenience Handlers.
type (
	PrintHandler = reporter.PrintHandler
	NoOpHandler  = reporter.NoOpHandler
)

// NewPrintHandler returns a Handler that writes each solution to w.
func NewPrintHandler(w io.Writer) *PrintHandler {
	return reporter.NewPrintHandler(w)
}

// Option configures a Solver's search engine.
type Option = search.Option

// WithRand, WithProgressFunc, and WithProgressInterval are re-exported
// search options.
var (
	WithRand             = search.WithRand
	WithProgressFunc     = search.WithProgressFunc
	WithProgressInterval = search.WithProgressInterval
)

// Solver accumulates items and options, then solves the resulting
// exact-cover instance. The zero value is not usable; construct with
// New.
//
// Solver carries a sticky build error: once AddItem, AddOption, or the
// implicit Build inside Solve fails, every subsequent call becomes a
// no-op returning that same error, mirroring the caller's
// usecase.Service "dependency not configured" short-circuit.
type Solver struct {
	mode domain.Mode
	opts []search.Option
	b    *builder.Builder
	err  error
}

// New returns an empty Solver that will explore its search tree
// according to mode.
func New(mode domain.Mode, opts ...Option) *Solver {
	return &Solver{
		mode: mode,
		opts: opts,
		b:    builder.New(),
	}
}

// AddItem declares an item. See internal/builder.Builder.AddItem for the
// exact validation rules and error sentinels.
func (s *Solver) AddItem(name string, kind Kind) (ItemID, error) {
	if s.err != nil {
		return 0, s.err
	}
	id, err := s.b.AddItem(name, kind)
	if err != nil {
		s.err = err
		return 0, err
	}
	return id, nil
}

// AddOption registers one option as a set of previously declared items.
// See internal/builder.Builder.AddOption for the exact validation rules.
func (s *Solver) AddOption(items ...ItemID) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	idx, err := s.b.AddOption(items...)
	if err != nil {
		s.err = err
		return 0, err
	}
	return idx, nil
}

// Solve builds the matrix (if not already built) and explores its
// search tree, invoking handler.OnSolution once per solution found.
func (s *Solver) Solve(ctx context.Context, handler Handler) (Stats, error) {
	if s.err != nil {
		return Stats{}, s.err
	}
	m, err := s.b.Build()
	if err != nil {
		s.err = err
		return Stats{}, err
	}
	e := search.New(s.mode, s.opts...)
	return e.Solve(ctx, m, handler)
}
