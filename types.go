// Package fastdtw: core value types shared by the cost storage, the
// window iterators, the DTW engine and the FastDTW driver.
package fastdtw

// Action records which predecessor cell produced a cell's optimal value
// during the dynamic-programming pass. The backtracker follows these
// tags from the bottom-right cell to reconstruct the warp path.
//
//   - Inserted — samples are inserted into the X series to align it to Y
//     (the optimal predecessor was the cell above).
//   - Deleted — samples are deleted from the X series to align it to Y
//     (the optimal predecessor was the cell to the left).
//   - Matched — samples of X and Y are aligned directly
//     (the optimal predecessor was the cell above and to the left).
//   - Unknown — zero value; marks a cell that was never computed.
type Action uint8

const (
	// Unknown is the zero-value tag of a cell that was never written.
	// Observing it during backtracking means the window skipped a cell
	// on the optimal path, which is a programming error.
	Unknown Action = iota
	// Inserted marks a vertical step: the predecessor is (row-1, column).
	Inserted
	// Deleted marks a horizontal step: the predecessor is (row, column-1).
	Deleted
	// Matched marks a diagonal step: the predecessor is (row-1, column-1).
	Matched
)

// String implements fmt.Stringer for debug output.
func (a Action) String() string {
	switch a {
	case Inserted:
		return "Inserted"
	case Deleted:
		return "Deleted"
	case Matched:
		return "Matched"
	default:
		return "Unknown"
	}
}

// DistanceMode selects the local per-cell cost function.
type DistanceMode int

const (
	// Euclidean accumulates squared sample differences; the final
	// distance is the square root of the accumulated sum.
	Euclidean DistanceMode = iota
	// Manhattan accumulates absolute sample differences.
	Manhattan
)

// String implements fmt.Stringer for debug output.
func (m DistanceMode) String() string {
	switch m {
	case Euclidean:
		return "Euclidean"
	case Manhattan:
		return "Manhattan"
	default:
		return "DistanceMode(?)"
	}
}

// Coord is one warp-path element: I indexes the Y series, J indexes the
// X series. Both are 0-based.
type Coord struct {
	I, J int
}

// Path is an ordered warp path. It is monotonically non-decreasing in
// both coordinates, starts at {0, 0} and ends at {len(y)-1, len(x)-1}.
type Path []Coord

// Defaults used by FastDTW.
const (
	// DefaultResolutionFactor is the downsampling ratio between two
	// successive FastDTW resolution levels.
	DefaultResolutionFactor = 2
	// DefaultSearchRadius is the number of extra cells visited around
	// the projected coarse path at each finer resolution.
	DefaultSearchRadius = 1
)
