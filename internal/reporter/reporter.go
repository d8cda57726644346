// Package reporter delivers solutions found by internal/search to the
// caller, and carries the progress/statistics types both search and the
// root facade share. It depends only on internal/domain and
// internal/store, never on internal/search, keeping the dependency
// direction the caller's ports package keeps between callbacks and the
// engines that invoke them.
package reporter

import (
	"fmt"
	"io"
	"sort"
	"time"

	"dlx/internal/domain"
	"dlx/internal/store"
)

// Stats summarizes one Solve call.
type Stats struct {
	SolutionsFound int
	OptionsTried   int
	MaxDepth       int
	Elapsed        time.Duration
}

// ProgressFunc is invoked periodically during a long search with a
// read-only snapshot of progress so far. It must not retain choiceStack
// past the call.
type ProgressFunc func(stats Stats, choiceStack []domain.NodeID)

// Handler receives each solution the search engine finds.
//
// Returning stop == true tells the engine not to enumerate further
// options at the current level; the engine still unwinds the partial
// solution normally rather than aborting mid-stack.
type Handler interface {
	OnSolution(view *SolverView) (stop bool)
}

// SolverView is a read-only snapshot of the matrix and the current choice
// stack, valid only for the duration of one Handler.OnSolution call. The
// engine reuses one SolverView across solutions to avoid allocation, so a
// Handler must not retain it.
type SolverView struct {
	matrix      *store.Matrix
	choiceStack []domain.NodeID
}

// NewSolverView constructs a SolverView bound to m. The engine calls this
// once per Solve and mutates its choice stack in place between calls to
// OnSolution.
func NewSolverView(m *store.Matrix) *SolverView {
	return &SolverView{matrix: m}
}

// SetChoiceStack replaces the view's current choice stack. Owned by
// internal/search; callers of the public API never call this.
func (v *SolverView) SetChoiceStack(stack []domain.NodeID) {
	v.choiceStack = stack
}

// ChoiceStack returns the option-node chosen at each recursion level, in
// descent order.
func (v *SolverView) ChoiceStack() []domain.NodeID {
	return v.choiceStack
}

// OptionOf returns the item IDs of the option node n belongs to, in the
// order they were declared when the option was added.
func (v *SolverView) OptionOf(n domain.NodeID) []domain.ItemID {
	return v.matrix.OptionItems(n)
}

// OptionIndexOf returns the 0-based position of the AddOption call that
// created the option node n belongs to, letting a Handler recover input
// order from a choice stack that is itself in search (not input) order.
func (v *SolverView) OptionIndexOf(n domain.NodeID) int {
	return v.matrix.OptionIndexOf(n)
}

// ItemName returns the declared display name of item i.
func (v *SolverView) ItemName(i domain.ItemID) string {
	return v.matrix.Items[i].Name
}

// ItemCount returns the total number of declared items.
func (v *SolverView) ItemCount() int {
	return len(v.matrix.Items)
}

// PrintHandler writes each solution to w, one option per line, as
// space-separated item names, with options ordered by the position they
// were declared via AddOption rather than the order the search chose
// them, so output is deterministic regardless of search order.
type PrintHandler struct {
	W io.Writer

	err   error
	order []domain.NodeID
}

// NewPrintHandler returns a PrintHandler writing to w.
func NewPrintHandler(w io.Writer) *PrintHandler {
	return &PrintHandler{W: w}
}

// OnSolution implements Handler. It never requests a stop; callers
// wanting a single solution should use Mode FirstOnly instead.
func (h *PrintHandler) OnSolution(view *SolverView) bool {
	stack := view.ChoiceStack()
	h.order = append(h.order[:0], stack...)
	sort.Slice(h.order, func(i, j int) bool {
		return view.OptionIndexOf(h.order[i]) < view.OptionIndexOf(h.order[j])
	})

	for _, n := range h.order {
		items := view.OptionOf(n)
		for i, it := range items {
			if i > 0 {
				if _, err := io.WriteString(h.W, " "); err != nil {
					h.err = err
					return false
				}
			}
			if _, err := fmt.Fprint(h.W, view.ItemName(it)); err != nil {
				h.err = err
				return false
			}
		}
		if _, err := io.WriteString(h.W, "\n"); err != nil {
			h.err = err
			return false
		}
	}
	return false
}

// Err returns the first write error encountered, if any.
func (h *PrintHandler) Err() error { return h.err }

// NoOpHandler discards every solution. Useful with Mode Exhaustive when
// only Stats.SolutionsFound is wanted.
type NoOpHandler struct{}

// OnSolution implements Handler by doing nothing and never stopping.
func (NoOpHandler) OnSolution(*SolverView) bool { return false }
