// Package fastdtw: window iterators deciding which cost-table cells the
// engine computes.
//
// A window yields (row, column) cells in strict row-major order: within
// a row, columns strictly increase; across calls, rows never decrease;
// no cell is yielded twice. The X series runs horizontally (columns),
// the Y series vertically (rows), both 1-based to leave room for the
// storage boundary.
package fastdtw

import "math"

// Window produces the finite, non-restartable sequence of cost-table
// cells to visit, in row-major order. Next returns ok=false once the
// window is exhausted; a window must not be reused afterwards.
type Window interface {
	Next() (row, column int, ok bool)
}

// FullWindow visits every cell of the cost table — classical DTW with
// no constraint on the search.
type FullWindow struct {
	row, column       int
	endRow, endColumn int // exclusive
}

// NewFullWindow returns a window over a rows×columns table.
func NewFullWindow(rows, columns int) *FullWindow {
	return &FullWindow{
		row:       1,
		column:    1,
		endRow:    rows + 1,
		endColumn: columns + 1,
	}
}

// Next yields the cells (1,1)..(rows,columns) row by row.
func (w *FullWindow) Next() (int, int, bool) {
	if w.column < w.endColumn {
		row, column := w.row, w.column
		w.column++
		return row, column, true
	}
	if w.row < w.endRow-1 {
		w.row++
		w.column = 1
		row, column := w.row, w.column
		w.column++
		return row, column, true
	}
	return 0, 0, false
}

// unboundMin marks a row no projection or expansion has touched yet.
const unboundMin = math.MaxInt

// colBounds is the inclusive [min, max] column band of one row.
type colBounds struct {
	min, max int
}

// ConstrainedWindow visits only the cells inside a band projected from
// a coarser-resolution warp path, widened by a search radius. It is the
// core of FastDTW's approximation: the fine-resolution search is
// restricted to the neighborhood of the coarse solution.
type ConstrainedWindow struct {
	// constraints[row] holds the column band of each row, 1..rows;
	// index 0 is unused. Untouched rows stay at (unboundMin, 0) and are
	// skipped by the iterator.
	constraints   []colBounds
	rows, columns int
	row, column   int
}

// NewConstrainedWindow builds the band for a rows×columns fine table
// from a warp path found at a resolution coarser by resolutionFactor.
// The construction has three steps:
//
//  1. Each coarse path pair is projected onto its factor×factor block
//     of fine cells, clipped to the table.
//  2. Where the coarse path stepped diagonally, the two projected
//     blocks touch only at a corner; two ceil(factor/2)-sized patches
//     are added across the shared corner so the band stays
//     edge-connected.
//  3. Every row's maximum bound is pushed forward by searchRadius
//     (propagating to the searchRadius rows above), then every row's
//     minimum bound is pushed backward by searchRadius (propagating to
//     the searchRadius rows below). The forward pass must run before
//     the backward pass: the backward pass reads minima the forward
//     pass may have seeded on rows it reached.
func NewConstrainedWindow(lowResPath Path, resolutionFactor, searchRadius, rows, columns int) (*ConstrainedWindow, error) {
	if len(lowResPath) == 0 {
		return nil, ErrEmptyPath
	}
	if resolutionFactor < 1 {
		return nil, ErrBadResolutionFactor
	}
	if searchRadius < 0 {
		return nil, ErrBadSearchRadius
	}
	if rows < 1 || columns < 1 {
		return nil, ErrBadShape
	}

	w := &ConstrainedWindow{
		constraints: make([]colBounds, rows+1),
		rows:        rows,
		columns:     columns,
		column:      1,
	}
	for i := range w.constraints {
		w.constraints[i] = colBounds{min: unboundMin, max: 0}
	}

	prevRow, prevColumn := -1, -1
	for _, p := range lowResPath {
		// The path carries 0-based sample indices; the table is 1-based.
		lowResRow := p.I + 1
		lowResColumn := p.J + 1

		// One coarse cell covers (at most) a factor×factor block of
		// fine cells.
		for r := 0; r < resolutionFactor; r++ {
			highResRow := (lowResRow-1)*resolutionFactor + 1 + r
			if highResRow > rows {
				continue
			}
			for c := 0; c < resolutionFactor; c++ {
				highResColumn := (lowResColumn-1)*resolutionFactor + 1 + c
				if highResColumn <= columns {
					w.visit(highResRow, highResColumn)
				}
			}
		}

		/* After a diagonal step the two projected blocks connect only at
		 * a corner. Mark two more half-blocks straddling that corner so
		 * the band keeps an even width. Example with factor 2:
		 *
		 *                 |_|_|x|x|    then mark    |_|_|x|x|
		 * projected path: |_|_|x|x|  -2 more cells- |_|X|x|x|
		 *                 |x|x|_|_|       (X's)     |x|x|X|_|
		 *                 |x|x|_|_|                 |x|x|_|_|
		 */
		if prevRow >= 1 && prevRow < lowResRow && prevColumn < lowResColumn {
			cornerBottomLeftRow := (prevRow-1)*resolutionFactor + resolutionFactor
			cornerBottomLeftColumn := (prevColumn-1)*resolutionFactor + resolutionFactor
			cornerTopRightRow := cornerBottomLeftRow + 1
			cornerTopRightColumn := cornerBottomLeftColumn + 1
			halfFactor := (resolutionFactor + 1) / 2 // ceil(factor/2)

			for r := 0; r < halfFactor; r++ {
				for c := 0; c < halfFactor; c++ {
					// right of the bottom-left block
					if cornerTopRightColumn+c <= columns && cornerBottomLeftRow-r >= 1 && cornerBottomLeftRow <= rows {
						w.visit(cornerBottomLeftRow-r, cornerTopRightColumn+c)
					}
					// left of the top-right block
					if cornerTopRightRow+r <= rows && cornerBottomLeftColumn-c >= 1 && cornerBottomLeftColumn <= columns {
						w.visit(cornerTopRightRow+r, cornerBottomLeftColumn-c)
					}
				}
			}
		}
		prevRow, prevColumn = lowResRow, lowResColumn
	}

	/* Expand the band by the search radius so the finer resolution can
	 * correct the coarse path. Forward pass first: push each maximum to
	 * the right and propagate it to the rows above. Backward pass
	 * second: push each minimum to the left and propagate it to the
	 * rows below. Rows never touched by the projection keep their
	 * (unboundMin, 0) bounds and take no part in either pass.
	 */
	for row := 1; row <= rows; row++ {
		rowMax := w.constraints[row].max
		if rowMax == 0 {
			continue
		}
		expandedMax := rowMax + searchRadius
		if expandedMax > columns {
			expandedMax = columns
		}
		for i := 0; i <= searchRadius; i++ {
			if row-i >= 1 {
				w.visit(row-i, expandedMax)
			}
		}
	}
	for row := rows; row >= 1; row-- {
		rowMin := w.constraints[row].min
		if rowMin == unboundMin {
			continue
		}
		expandedMin := 1
		if rowMin > searchRadius {
			expandedMin = rowMin - searchRadius
		}
		for i := 0; i <= searchRadius; i++ {
			if row+i <= rows {
				w.visit(row+i, expandedMin)
			}
		}
	}

	return w, nil
}

// visit widens the row's band to include the column.
func (w *ConstrainedWindow) visit(row, column int) {
	if w.constraints[row].min > column {
		w.constraints[row].min = column
	}
	if w.constraints[row].max < column {
		w.constraints[row].max = column
	}
}

// Next yields the banded cells row by row, skipping rows whose band is
// still empty.
func (w *ConstrainedWindow) Next() (int, int, bool) {
	if w.row >= 1 && w.column <= w.constraints[w.row].max {
		row, column := w.row, w.column
		w.column++
		return row, column, true
	}
	for w.row < w.rows {
		w.row++
		bounds := w.constraints[w.row]
		if bounds.min == unboundMin || bounds.min > bounds.max {
			continue // empty row
		}
		w.column = bounds.min
		row, column := w.row, w.column
		w.column++
		return row, column, true
	}
	return 0, 0, false
}
