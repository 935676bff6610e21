// Package fastdtw: cost accumulation storage for the DTW engine.
//
// The engine addresses a conceptual (rows+1)×(columns+1) table in
// 1-based coordinates. Row 0 and column 0 form an implicit boundary:
// cell (0,0) costs 0, any other cell with a zero index costs +Inf, and
// only cells with both indices positive are ever written. Two backends
// implement the same contract: a dense matrix (fast, pre-allocates the
// whole table) and a sparse per-row cache (pays hashing per access, but
// only for cells actually visited). A size-based factory picks between
// them, so FastDTW's narrow bands over very long sequences never force
// a full quadratic allocation.
package fastdtw

import (
	"math"
	"sync/atomic"
)

// DefaultMaxCostMatrixBytes is the default dense-storage budget:
// a projected cost matrix larger than this falls back to the sparse
// cache. 32 GiB.
const DefaultMaxCostMatrixBytes int64 = 32 << 30

// costCellBytes is the per-cell size used for the dense projection.
const costCellBytes = 8

// maxCostMatrixLimit holds the process-wide budget override; zero means
// DefaultMaxCostMatrixBytes. Read once per engine call.
var maxCostMatrixLimit atomic.Int64

// ConfigMaxCostMatrix sets the process-wide memory budget, in bytes,
// that the storage factory compares a projected dense cost matrix
// against. Values below 1 restore the default. The setting is stored
// atomically and read once at the start of each computation, so calls
// running concurrently each observe one consistent value; set it during
// process initialization if all computations must agree.
func ConfigMaxCostMatrix(maxBytes int64) {
	if maxBytes < 1 {
		maxBytes = 0
	}
	maxCostMatrixLimit.Store(maxBytes)
}

// maxCostMatrixBudget returns the active dense-storage budget.
func maxCostMatrixBudget() int64 {
	if v := maxCostMatrixLimit.Load(); v > 0 {
		return v
	}
	return DefaultMaxCostMatrixBytes
}

// costStorage is the accumulation surface shared by both backends.
// Coordinates are 1-based; (0,0) and the zero row/column form the
// implicit boundary described above.
type costStorage interface {
	// Cost returns 0 at (0,0), +Inf when exactly one index is zero,
	// otherwise the stored value or +Inf if the cell was never written.
	Cost(row, column int) float64
	// SetCost stores a value; both indices must be positive.
	SetCost(row, column int, value float64)
	// Action returns the stored predecessor tag; both indices must be
	// positive and the cell must have been written.
	Action(row, column int) Action
	// SetAction stores a predecessor tag; both indices must be positive.
	SetAction(row, column int, action Action)
}

// requirePositive guards writes and action lookups against the boundary.
// Touching row 0 or column 0 here is a defect in the engine or a window,
// never a runtime condition, so it aborts.
func requirePositive(row, column int) {
	if row == 0 || column == 0 {
		panic("fastdtw: cost storage access on boundary row or column")
	}
}

// costMatrix is the dense backend: one flat float64 plane and one flat
// Action plane, rows×columns each, allocated up front.
type costMatrix struct {
	rows, columns int
	costs         []float64
	actions       []Action
}

func newCostMatrix(rows, columns int) *costMatrix {
	m := &costMatrix{
		rows:    rows,
		columns: columns,
		costs:   make([]float64, rows*columns),
		actions: make([]Action, rows*columns),
	}
	inf := math.Inf(1)
	for i := range m.costs {
		m.costs[i] = inf
	}
	return m
}

func (m *costMatrix) index(row, column int) int {
	return (row-1)*m.columns + (column - 1)
}

func (m *costMatrix) Cost(row, column int) float64 {
	if row == 0 && column == 0 {
		return 0
	}
	if row == 0 || column == 0 {
		return math.Inf(1)
	}
	return m.costs[m.index(row, column)]
}

func (m *costMatrix) SetCost(row, column int, value float64) {
	requirePositive(row, column)
	m.costs[m.index(row, column)] = value
}

func (m *costMatrix) Action(row, column int) Action {
	requirePositive(row, column)
	return m.actions[m.index(row, column)]
}

func (m *costMatrix) SetAction(row, column int, action Action) {
	requirePositive(row, column)
	m.actions[m.index(row, column)] = action
}

// costCache is the sparse backend: one column→value map per row, so
// memory grows with the number of cells actually visited.
type costCache struct {
	costs   []map[int]float64
	actions []map[int]Action
}

func newCostCache(rows int) *costCache {
	c := &costCache{
		costs:   make([]map[int]float64, rows),
		actions: make([]map[int]Action, rows),
	}
	for i := 0; i < rows; i++ {
		c.costs[i] = make(map[int]float64)
		c.actions[i] = make(map[int]Action)
	}
	return c
}

func (c *costCache) Cost(row, column int) float64 {
	if row == 0 && column == 0 {
		return 0
	}
	if row == 0 || column == 0 {
		return math.Inf(1)
	}
	if v, ok := c.costs[row-1][column-1]; ok {
		return v
	}
	return math.Inf(1)
}

func (c *costCache) SetCost(row, column int, value float64) {
	requirePositive(row, column)
	c.costs[row-1][column-1] = value
}

func (c *costCache) Action(row, column int) Action {
	requirePositive(row, column)
	a, ok := c.actions[row-1][column-1]
	if !ok {
		// The backtracker only queries cells the window visited; a miss
		// means the window construction skipped a cell on the optimal
		// path.
		panic("fastdtw: action lookup on a cell that was never computed")
	}
	return a
}

func (c *costCache) SetAction(row, column int, action Action) {
	requirePositive(row, column)
	c.actions[row-1][column-1] = action
}

// newCostStorage picks a backend for a rows×columns table: dense while
// the projected cost plane fits strictly under maxMatrixBytes, sparse
// otherwise.
func newCostStorage(rows, columns int, maxMatrixBytes int64) costStorage {
	if int64(rows)*int64(columns)*costCellBytes < maxMatrixBytes {
		return newCostMatrix(rows, columns)
	}
	return newCostCache(rows)
}
