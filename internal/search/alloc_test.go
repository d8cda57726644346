package search

import (
	"context"
	"fmt"
	"testing"

	"dlx/internal/builder"
	"dlx/internal/domain"
	"dlx/internal/reporter"
)

// TestSearchPerformsNoAllocations drives the recursive search loop
// directly, in-package, the way lvlath's bfs bench_test.go isolates the
// traversal loop from setup cost before counting allocations. A first
// pass warms every depth's scratch buffer to its largest required size;
// later passes over the same matrix must not grow it further in either
// Mode Exhaustive or Mode FirstOnly.
func TestSearchPerformsNoAllocations(t *testing.T) {
	const n = 5
	b := builder.New()
	rowItem := make([]domain.ItemID, n)
	colItem := make([]domain.ItemID, n)
	for i := 0; i < n; i++ {
		rowItem[i], _ = b.AddItem(fmt.Sprintf("R%d", i), domain.Primary)
	}
	for i := 0; i < n; i++ {
		colItem[i], _ = b.AddItem(fmt.Sprintf("C%d", i), domain.Primary)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			_, _ = b.AddOption(rowItem[r], colItem[c])
		}
	}
	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	r := &run{
		m:       m,
		handler: reporter.NoOpHandler{},
		view:    reporter.NewSolverView(m),
		ctx:     context.Background(),
	}
	// An exhaustive pass visits every branch once, growing each depth's
	// scratch buffer to the largest size any branch needs; later passes
	// of either mode over the same matrix must not grow it further.
	New(domain.Exhaustive).search(r, 0)

	for _, mode := range []domain.Mode{domain.Exhaustive, domain.FirstOnly} {
		mode := mode
		t.Run(mode.String(), func(t *testing.T) {
			e := New(mode)
			allocs := testing.AllocsPerRun(20, func() {
				r.stack = r.stack[:0]
				r.stats = reporter.Stats{}
				r.stopped = false
				e.search(r, 0)
			})
			if allocs != 0 {
				t.Fatalf("search allocated %v times per run, want 0", allocs)
			}
		})
	}
}
