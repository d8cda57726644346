// Package search implements the recursive, depth-first backtracking
// search over a store.Matrix: MRV item selection, cover/uncover at each
// level, solution delivery through internal/reporter, and progress/stat
// tracking. It generalizes tranmh-sudoku's fixed 9x9 DLXSolver.search
// into an engine parameterized by Mode and driven entirely by matrix
// size rather than a compiled-in board shape.
package search

import (
	"context"
	"time"

	"dlx/internal/domain"
	"dlx/internal/reporter"
	"dlx/internal/store"
)

// Stats is an alias of reporter.Stats: the search engine and the
// reporter's progress callback describe the same counters, and keeping
// one type avoids a translation layer between them.
type Stats = reporter.Stats

// ProgressFunc is an alias of reporter.ProgressFunc.
type ProgressFunc = reporter.ProgressFunc

// Engine runs the backtracking search in one of two modes.
type Engine struct {
	mode domain.Mode
	opts options
}

// New returns an Engine that explores the search tree according to mode.
func New(mode domain.Mode, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{mode: mode, opts: o}
}

// run carries the mutable state threaded through one Solve call: the
// choice stack, counters, the reusable solver view, and the per-depth
// scratch buffer pool that enumerate uses in both modes.
type run struct {
	m       *store.Matrix
	handler reporter.Handler
	view    *reporter.SolverView
	ctx     context.Context

	stack []domain.NodeID
	stats Stats

	scratchPool [][]domain.NodeID
	stopped     bool
}

// Solve explores m's search tree, invoking handler.OnSolution once per
// solution found. It returns when the tree is exhausted, the handler
// requests a stop, or ctx is cancelled.
func (e *Engine) Solve(ctx context.Context, m *store.Matrix, handler reporter.Handler) (Stats, error) {
	start := time.Now()
	r := &run{
		m:       m,
		handler: handler,
		view:    reporter.NewSolverView(m),
		ctx:     ctx,
	}
	e.search(r, 0)
	r.stats.Elapsed = time.Since(start)
	if err := ctx.Err(); err != nil {
		return r.stats, err
	}
	return r.stats, nil
}

// search explores one recursion level. It returns true when the caller
// should stop descending any further (handler-requested stop or context
// cancellation).
func (e *Engine) search(r *run, depth int) bool {
	select {
	case <-r.ctx.Done():
		r.stopped = true
		return true
	default:
	}
	if r.stopped {
		return true
	}
	if depth > r.stats.MaxDepth {
		r.stats.MaxDepth = depth
	}

	item := e.chooseItem(r.m)
	if item == store.Root {
		// No active primary item remains: every primary item is
		// covered exactly once by the options on the stack.
		r.stats.SolutionsFound++
		r.view.SetChoiceStack(r.stack)
		stop := r.handler.OnSolution(r.view)
		return stop
	}
	if r.m.Items[item].OptionCount == 0 {
		return false // infeasible subtree, nothing to undo yet
	}

	r.m.Cover(item)
	defer r.m.Uncover(item)

	for _, on := range e.enumerate(r, item, depth) {
		r.stats.OptionsTried++
		if e.opts.progressFunc != nil && r.stats.OptionsTried%e.opts.progressInterval == 0 {
			e.opts.progressFunc(r.stats, r.stack)
		}

		r.stack = append(r.stack, on)
		r.m.CoverOption(on)
		stop := e.search(r, depth+1)
		r.m.UncoverOption(on)
		r.stack = r.stack[:len(r.stack)-1]

		if stop {
			return true
		}
		if e.mode == domain.FirstOnly && r.stats.SolutionsFound > 0 {
			return true
		}
	}
	return false
}

// chooseItem picks the active primary item with the fewest active
// options (MRV), breaking ties by ring order. Returns store.Root if no
// primary item remains active.
func (e *Engine) chooseItem(m *store.Matrix) domain.ItemID {
	var best domain.ItemID = store.Root
	bestCount := -1
	for i := m.RootRight(); i != store.Root && m.IsPrimary(i); i = m.Items[i].Right {
		c := m.Items[i].OptionCount
		if bestCount < 0 || c < bestCount {
			best, bestCount = i, c
			if bestCount == 0 {
				break
			}
		}
	}
	return best
}

// enumerate returns the option-nodes in item's vertical ring to try, in
// deterministic order for Mode Exhaustive or a shuffled copy for Mode
// FirstOnly. Both modes draw their buffer from the same per-depth
// scratch pool so steady-state search performs no further allocation in
// either mode.
func (e *Engine) enumerate(r *run, item domain.ItemID, depth int) []domain.NodeID {
	for len(r.scratchPool) <= depth {
		r.scratchPool = append(r.scratchPool, nil)
	}
	buf := r.scratchPool[depth][:0]
	for n := r.m.Nodes[item].Down; n != domain.NodeID(item); n = r.m.Nodes[n].Down {
		buf = append(buf, n)
	}
	r.scratchPool[depth] = buf

	if e.mode == domain.FirstOnly {
		e.opts.rand.Shuffle(len(buf), func(i, j int) {
			buf[i], buf[j] = buf[j], buf[i]
		})
	}
	return buf
}
