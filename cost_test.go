package fastdtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fastdtw"
)

// TestCostStorage_Boundary verifies the implicit boundary contract on
// both backends: (0,0) costs 0, a single zero index costs +Inf.
func TestCostStorage_Boundary(t *testing.T) {
	backends := map[string]fastdtw.CostStorage{
		"matrix": fastdtw.NewCostMatrixStorage(4, 5),
		"cache":  fastdtw.NewCostCacheStorage(4),
	}
	for name, s := range backends {
		assert.Equal(t, 0.0, s.Cost(0, 0), "%s: (0,0) must cost zero", name)
		assert.True(t, math.IsInf(s.Cost(0, 3), 1), "%s: row 0 must cost +Inf", name)
		assert.True(t, math.IsInf(s.Cost(3, 0), 1), "%s: column 0 must cost +Inf", name)
	}
}

// TestCostStorage_UnsetCellIsInf verifies reads of never-written cells.
func TestCostStorage_UnsetCellIsInf(t *testing.T) {
	matrix := fastdtw.NewCostMatrixStorage(3, 3)
	cache := fastdtw.NewCostCacheStorage(3)
	assert.True(t, math.IsInf(matrix.Cost(2, 2), 1), "matrix: unwritten cell must read +Inf")
	assert.True(t, math.IsInf(cache.Cost(2, 2), 1), "cache: unwritten cell must read +Inf")
}

// TestCostStorage_BoundaryWritePanics verifies that writing the
// boundary aborts — it is a programming error, not a runtime condition.
func TestCostStorage_BoundaryWritePanics(t *testing.T) {
	matrix := fastdtw.NewCostMatrixStorage(3, 3)
	cache := fastdtw.NewCostCacheStorage(3)

	assert.Panics(t, func() { matrix.SetCost(0, 1, 1.0) }, "matrix: row-0 write must panic")
	assert.Panics(t, func() { matrix.SetAction(1, 0, fastdtw.Matched) }, "matrix: column-0 action write must panic")
	assert.Panics(t, func() { cache.SetCost(1, 0, 1.0) }, "cache: column-0 write must panic")
	assert.Panics(t, func() { cache.SetAction(0, 1, fastdtw.Matched) }, "cache: row-0 action write must panic")
}

// TestCostStorage_CacheUnsetActionPanics verifies the sparse backend
// treats an action lookup on an unwritten cell as a logic defect.
func TestCostStorage_CacheUnsetActionPanics(t *testing.T) {
	cache := fastdtw.NewCostCacheStorage(3)
	assert.Panics(t, func() { cache.Action(2, 2) }, "cache: unset action lookup must panic")
}

// TestCostStorage_MatrixUnsetActionIsUnknown verifies the dense backend
// reads the zero-value tag for unwritten cells.
func TestCostStorage_MatrixUnsetActionIsUnknown(t *testing.T) {
	matrix := fastdtw.NewCostMatrixStorage(3, 3)
	assert.Equal(t, fastdtw.Unknown, matrix.Action(2, 2), "unwritten dense action must be Unknown")
}

// TestCostStorage_Equivalence drives both backends through the same
// write sequence and checks every queried cell agrees.
func TestCostStorage_Equivalence(t *testing.T) {
	const rows, columns = 6, 7
	matrix := fastdtw.NewCostMatrixStorage(rows, columns)
	cache := fastdtw.NewCostCacheStorage(rows)

	writes := []struct {
		row, column int
		cost        float64
		action      fastdtw.Action
	}{
		{1, 1, 0, fastdtw.Matched},
		{1, 2, 2.5, fastdtw.Deleted},
		{2, 1, 1.25, fastdtw.Inserted},
		{2, 2, 0.5, fastdtw.Matched},
		{2, 2, 0.75, fastdtw.Deleted}, // overwrite
		{6, 7, 12, fastdtw.Matched},
	}
	for _, w := range writes {
		matrix.SetCost(w.row, w.column, w.cost)
		matrix.SetAction(w.row, w.column, w.action)
		cache.SetCost(w.row, w.column, w.cost)
		cache.SetAction(w.row, w.column, w.action)
	}

	for row := 0; row <= rows; row++ {
		for column := 0; column <= columns; column++ {
			mc, cc := matrix.Cost(row, column), cache.Cost(row, column)
			if math.IsInf(mc, 1) {
				assert.True(t, math.IsInf(cc, 1), "cost mismatch at (%d,%d)", row, column)
			} else {
				assert.Equal(t, mc, cc, "cost mismatch at (%d,%d)", row, column)
			}
		}
	}
	for _, w := range writes {
		assert.Equal(t, matrix.Action(w.row, w.column), cache.Action(w.row, w.column),
			"action mismatch at (%d,%d)", w.row, w.column)
	}
}

// TestSelectCostStorage_Budget verifies the factory rule: dense while
// rows×columns×8 bytes is strictly under the budget, sparse otherwise.
func TestSelectCostStorage_Budget(t *testing.T) {
	const rows, columns = 10, 10
	projected := int64(rows * columns * 8)

	require.True(t, fastdtw.IsDenseStorage(fastdtw.SelectCostStorage(rows, columns, projected+1)),
		"projected size under budget must pick the dense matrix")
	require.False(t, fastdtw.IsDenseStorage(fastdtw.SelectCostStorage(rows, columns, projected)),
		"projected size equal to the budget must pick the sparse cache")
	require.False(t, fastdtw.IsDenseStorage(fastdtw.SelectCostStorage(rows, columns, 1)),
		"tiny budget must pick the sparse cache")
}

// TestConfigMaxCostMatrix_DrivesSelection verifies the process-wide
// default reaches the factory through the engine entry points.
func TestConfigMaxCostMatrix_DrivesSelection(t *testing.T) {
	defer fastdtw.ConfigMaxCostMatrix(0) // restore the default

	x := []float64{1, 2, 3, 4}
	y := []float64{1, 2, 3, 4}

	// A budget too small for a 4×4 table forces the sparse cache; the
	// result must not change.
	fastdtw.ConfigMaxCostMatrix(1)
	sparseDist, sparsePath, err := fastdtw.DTW(x, y)
	require.NoError(t, err)

	fastdtw.ConfigMaxCostMatrix(0)
	denseDist, densePath, err := fastdtw.DTW(x, y)
	require.NoError(t, err)

	assert.Equal(t, denseDist, sparseDist, "backend choice must not affect the distance")
	assert.Equal(t, densePath, sparsePath, "backend choice must not affect the path")
}
