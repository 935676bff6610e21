// Package fastdtw: the dynamic-programming engine.
//
// DTW — Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary in time
//	or speed by finding an optimal “warping path”. It is widely used in
//	speech recognition, time-series analysis, gesture recognition, and
//	many other domains.
//
// Algorithm Outline:
//  1. Let columns = len(x), rows = len(y). Obtain a cost storage for a
//     rows×columns table; the implicit boundary supplies D[0][0] = 0
//     and +∞ for the rest of row/column 0.
//  2. For every (row, column) a Window yields, in row-major order:
//     cost  = |x[column-1] - y[row-1]|        (Manhattan)
//     or (x[column-1] - y[row-1])²        (Euclidean)
//     ins   = D[row-1][column]
//     del   = D[row][column-1]
//     match = D[row-1][column-1]
//     D[row][column] = cost + min(ins, del, match), recording which
//     predecessor won.
//  3. distance = D[rows][columns]; for Euclidean mode the square root
//     is taken once here — per-cell values stay squared.
//  4. Backtrack from (rows, columns) following the recorded actions and
//     reverse, giving the 0-based warp path start to end.
//
// Complexity: O(cells the window yields) time; memory is the storage
// backend's (dense: O(rows·columns), sparse: O(visited cells)).
package fastdtw

import "math"

// minimum picks the best of the three predecessor cells.
//
// i is the cell above (insertion), d the cell to the left (deletion),
// m the cell above-left (match). Ties resolve insertion before deletion
// before match: insertion wins unless deletion is strictly smaller, in
// which case deletion is compared against match the same way. The order
// is fixed — changing it changes which of several equal-cost paths is
// reported, even though the distance stays the same.
func minimum(i, d, m float64) (float64, Action) {
	if i < d {
		if i < m {
			return i, Inserted
		}
	} else if d < m {
		return d, Deleted
	}
	return m, Matched
}

// DTW computes the exact Dynamic Time Warping distance between x and y
// over the full cost table with the Euclidean distance mode.
// Returns (distance, path, error); the path runs from {0,0} to
// {len(y)-1, len(x)-1} in 0-based sample indices.
//
// Example:
//
//	dist, path, err := fastdtw.DTW(seqX, seqY)
func DTW(x, y []float64) (float64, Path, error) {
	return DTWEx(x, y, NewFullWindow(len(y), len(x)), Euclidean)
}

// DTWEx computes the DTW distance between x and y over exactly the
// cells yielded by window, using the given distance mode. Supplying a
// ConstrainedWindow built from a coarser solution gives the FastDTW
// refinement step; supplying a FullWindow gives classical DTW.
//
// The window must satisfy the row-major contract and must cover every
// cell of the optimal path it induces — in particular the bottom-right
// cell. A window that strands the backtracker on an uncomputed cell is
// a programming error and aborts the call.
func DTWEx(x, y []float64, window Window, mode DistanceMode) (float64, Path, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, nil, ErrEmptyInput
	}
	if window == nil {
		return 0, nil, ErrNilWindow
	}
	if mode != Euclidean && mode != Manhattan {
		return 0, nil, ErrBadDistanceMode
	}

	columns, rows := len(x), len(y)
	storage := newCostStorage(rows, columns, maxCostMatrixBudget())

	for {
		row, column, ok := window.Next()
		if !ok {
			break
		}

		var cost float64
		if mode == Manhattan {
			cost = math.Abs(x[column-1] - y[row-1])
		} else {
			difference := x[column-1] - y[row-1]
			cost = difference * difference
		}

		value, action := minimum(
			storage.Cost(row-1, column),   // insertion — the cell above
			storage.Cost(row, column-1),   // deletion — the cell to the left
			storage.Cost(row-1, column-1), // match — the cell above-left
		)

		storage.SetCost(row, column, cost+value)
		storage.SetAction(row, column, action)
	}

	distance := storage.Cost(rows, columns)
	if mode == Euclidean {
		// Cells carry squared differences; de-square the sum once.
		distance = math.Sqrt(distance)
	}

	/* Generate the warp path from the recorded actions. The storage and
	 * windows are 1-based because row/column 0 belong to the boundary;
	 * subtracting 1 converts back to sample indices.
	 */
	path := make(Path, 0, rows+columns)
	for row, column := rows, columns; row != 0 && column != 0; {
		path = append(path, Coord{I: row - 1, J: column - 1})
		switch storage.Action(row, column) {
		case Inserted:
			row--
		case Deleted:
			column--
		case Matched:
			row--
			column--
		default:
			// A cell on the optimal path was never computed: the window
			// construction is defective.
			panic("fastdtw: unknown action during warp path generation")
		}
	}
	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return distance, path, nil
}
