// Command dlxsolve is an optional reference front-end for the dlx
// library: it reads an exact-cover instance from standard input in a
// small line-oriented text format and writes every solution (or just
// the first) to standard output.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"dlx"
)

func main() {
	modeStr := flag.String("mode", "exhaustive", "exhaustive|first")
	seed := flag.Int64("seed", 1, "RNG seed for -mode first")
	progress := flag.Bool("progress", false, "emit progress lines on stderr")
	limit := flag.Int("limit", 0, "stop after N solutions (0 = unbounded)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	mode := dlx.Exhaustive
	switch strings.ToLower(strings.TrimSpace(*modeStr)) {
	case "first", "first-only", "firstonly":
		mode = dlx.FirstOnly
	case "exhaustive", "":
	default:
		logger.Error("unknown -mode", "mode", *modeStr)
		os.Exit(2)
	}

	opts := []dlx.Option{dlx.WithRand(rand.New(rand.NewSource(*seed)))}
	if *progress {
		opts = append(opts, dlx.WithProgressFunc(func(stats dlx.Stats, _ []dlx.NodeID) {
			logger.Info("progress",
				"optionsTried", stats.OptionsTried,
				"solutionsFound", stats.SolutionsFound,
				"maxDepth", stats.MaxDepth,
			)
		}))
	}

	solver := dlx.New(mode, opts...)
	if err := readInstance(os.Stdin, solver); err != nil {
		fmt.Fprintln(os.Stderr, "dlxsolve:", err)
		os.Exit(2)
	}

	handler := &limitedHandler{inner: dlx.NewPrintHandler(os.Stdout), limit: *limit}
	start := time.Now()
	stats, err := solver.Solve(context.Background(), handler)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dlxsolve:", err)
		os.Exit(2)
	}
	logger.Info("done",
		"solutions", stats.SolutionsFound,
		"optionsTried", stats.OptionsTried,
		"maxDepth", stats.MaxDepth,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if stats.SolutionsFound == 0 {
		os.Exit(1)
	}
}

// readInstance parses the ITEM/OPTION line format.
func readInstance(r *os.File, solver *dlx.Solver) error {
	names := map[string]dlx.ItemID{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch strings.ToUpper(fields[0]) {
		case "ITEM":
			if len(fields) != 3 {
				return fmt.Errorf("line %d: ITEM wants 2 fields, got %d", lineNo, len(fields)-1)
			}
			kind := dlx.Primary
			switch strings.ToLower(fields[2]) {
			case "secondary":
				kind = dlx.Secondary
			case "primary":
			default:
				return fmt.Errorf("line %d: unknown item kind %q", lineNo, fields[2])
			}
			id, err := solver.AddItem(fields[1], kind)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			names[fields[1]] = id
		case "OPTION":
			ids := make([]dlx.ItemID, 0, len(fields)-1)
			for _, name := range fields[1:] {
				id, ok := names[name]
				if !ok {
					return fmt.Errorf("line %d: unknown item %q", lineNo, name)
				}
				ids = append(ids, id)
			}
			if _, err := solver.AddOption(ids...); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			return fmt.Errorf("line %d: unknown directive %q", lineNo, fields[0])
		}
	}
	return sc.Err()
}

// limitedHandler wraps another Handler and stops once limit solutions
// have been delivered; limit <= 0 means unbounded.
type limitedHandler struct {
	inner dlx.Handler
	limit int
	count int
}

func (h *limitedHandler) OnSolution(view *dlx.SolverView) bool {
	h.inner.OnSolution(view)
	h.count++
	return h.limit > 0 && h.count >= h.limit
}
