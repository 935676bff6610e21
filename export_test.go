// Package fastdtw: private identifiers re-exported for the external
// test package only. This file is compiled exclusively into the test
// binary.
package fastdtw

// CostStorage re-exports the storage contract for equivalence tests.
type CostStorage = costStorage

// NewCostMatrixStorage exposes the dense backend constructor.
func NewCostMatrixStorage(rows, columns int) CostStorage {
	return newCostMatrix(rows, columns)
}

// NewCostCacheStorage exposes the sparse backend constructor.
func NewCostCacheStorage(rows int) CostStorage {
	return newCostCache(rows)
}

// SelectCostStorage exposes the size-based factory.
func SelectCostStorage(rows, columns int, maxMatrixBytes int64) CostStorage {
	return newCostStorage(rows, columns, maxMatrixBytes)
}

// IsDenseStorage reports whether the factory picked the dense backend.
func IsDenseStorage(s CostStorage) bool {
	_, ok := s.(*costMatrix)
	return ok
}

// Coarsen exposes the FastDTW downsampler.
func Coarsen(series []float64, resolutionFactor int) []float64 {
	return coarsen(series, resolutionFactor)
}

// Minimum exposes the three-way predecessor selection.
func Minimum(i, d, m float64) (float64, Action) {
	return minimum(i, d, m)
}

// UnboundMin exposes the untouched-row sentinel for band assertions.
const UnboundMin = unboundMin

// Bounds returns the raw column band of a row; an untouched row reads
// (UnboundMin, 0).
func (w *ConstrainedWindow) Bounds(row int) (min, max int) {
	return w.constraints[row].min, w.constraints[row].max
}

// Rows returns the number of rows the window spans.
func (w *ConstrainedWindow) Rows() int {
	return w.rows
}
