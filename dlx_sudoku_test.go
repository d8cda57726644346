package dlx_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"dlx"
)

// sudokuGiven is the 30-clue puzzle from Wikipedia's Sudoku article, the
// same board tranmh-sudoku's own tests exercise. 0 marks an empty cell.
var sudokuGiven = [9][9]int{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// TestSudoku30CluePuzzle builds the standard 324-column Sudoku
// exact-cover matrix (cell/row/col/block, each 81-wide) plus one
// "initial state" item with a single forcing option bundling every
// given's four items together, exactly as original_source/Sudoku.h
// does it: rather than a per-given candidate option, the givens are
// asserted in one bundled option that must be part of any solution.
// Only empty cells get per-value candidate options.
func TestSudoku30CluePuzzle(t *testing.T) {
	s := dlx.New(dlx.Exhaustive)

	var cellItem, rowItem, colItem, blockItem [81]dlx.ItemID
	for i := 0; i < 81; i++ {
		var err error
		cellItem[i], err = s.AddItem(fmt.Sprintf("Cell%d", i), dlx.Primary)
		require.NoError(t, err)
	}
	for i := 0; i < 81; i++ {
		var err error
		rowItem[i], err = s.AddItem(fmt.Sprintf("Row%d", i), dlx.Primary)
		require.NoError(t, err)
	}
	for i := 0; i < 81; i++ {
		var err error
		colItem[i], err = s.AddItem(fmt.Sprintf("Col%d", i), dlx.Primary)
		require.NoError(t, err)
	}
	for i := 0; i < 81; i++ {
		var err error
		blockItem[i], err = s.AddItem(fmt.Sprintf("Block%d", i), dlx.Primary)
		require.NoError(t, err)
	}
	initItem, err := s.AddItem("Init", dlx.Primary)
	require.NoError(t, err)

	var forcing []dlx.ItemID
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := r*9 + c
			block := (r/3)*3 + c/3
			given := sudokuGiven[r][c]

			if given == 0 {
				for v := 1; v <= 9; v++ {
					row := r*9 + (v - 1)
					col := c*9 + (v - 1)
					blk := block*9 + (v - 1)
					_, err := s.AddOption(cellItem[cell], rowItem[row], colItem[col], blockItem[blk])
					require.NoError(t, err)
				}
				continue
			}

			row := r*9 + (given - 1)
			col := c*9 + (given - 1)
			blk := block*9 + (given - 1)
			forcing = append(forcing, cellItem[cell], rowItem[row], colItem[col], blockItem[blk])
		}
	}
	forcing = append(forcing, initItem)
	_, err = s.AddOption(forcing...)
	require.NoError(t, err)

	stats, err := s.Solve(context.Background(), dlx.NoOpHandler{})
	require.NoError(t, err)
	require.Equal(t, 1, stats.SolutionsFound)
}
