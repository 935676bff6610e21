// Package fastdtw: the multiresolution recursive driver.
//
// FastDTW approximates DTW in linear time by solving the alignment at a
// coarse resolution first, then refining: the coarse warp path is
// projected onto the finer cost table as a narrow band (plus a search
// radius), and the engine re-runs over that band only. The recursion
// bottoms out on inputs too short for a band to narrow anything, where
// exact full-window DTW runs directly.
package fastdtw

import "gonum.org/v1/gonum/floats"

// FastDTW computes an approximate DTW distance and warp path between x
// and y with the default resolution factor (2), search radius (1) and
// Euclidean distance mode.
func FastDTW(x, y []float64) (float64, Path, error) {
	return FastDTWEx(x, y, DefaultResolutionFactor, DefaultSearchRadius, Euclidean)
}

// FastDTWEx computes an approximate DTW distance and warp path between
// x and y. resolutionFactor is the downsampling ratio between recursion
// levels (at least 1); searchRadius widens the projected band at each
// level — larger radii trade speed for accuracy, with the exact result
// recovered as the radius approaches the sequence lengths.
func FastDTWEx(x, y []float64, resolutionFactor, searchRadius int, mode DistanceMode) (float64, Path, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, nil, ErrEmptyInput
	}
	if resolutionFactor < 1 {
		return 0, nil, ErrBadResolutionFactor
	}
	if searchRadius < 0 {
		return 0, nil, ErrBadSearchRadius
	}
	if mode != Euclidean && mode != Manhattan {
		return 0, nil, ErrBadDistanceMode
	}
	return fastDTW(x, y, resolutionFactor, searchRadius, mode)
}

// fastDTW is the recursive core; arguments are pre-validated.
func fastDTW(x, y []float64, resolutionFactor, searchRadius int, mode DistanceMode) (float64, Path, error) {
	minSize := searchRadius + 2
	if len(x) <= minSize || len(y) <= minSize || resolutionFactor == 1 {
		/* Base case: a constrained window cannot usefully narrow the
		 * search on inputs this short, and a factor of 1 never shrinks
		 * the problem, so run the exact algorithm directly.
		 */
		return DTWEx(x, y, NewFullWindow(len(y), len(x)), mode)
	}

	/* Recursive case: solve at a coarser resolution, then run the
	 * engine only along the projected coarse path, widened by
	 * searchRadius cells.
	 */
	coarseX := coarsen(x, resolutionFactor)
	coarseY := coarsen(y, resolutionFactor)

	_, lowResPath, err := fastDTW(coarseX, coarseY, resolutionFactor, searchRadius, mode)
	if err != nil {
		return 0, nil, err
	}

	window, err := NewConstrainedWindow(lowResPath, resolutionFactor, searchRadius, len(y), len(x))
	if err != nil {
		return 0, nil, err
	}

	return DTWEx(x, y, window, mode)
}

// coarsen downsamples a series by averaging non-overlapping blocks of
// resolutionFactor samples; a short final block averages only the
// samples it has.
func coarsen(series []float64, resolutionFactor int) []float64 {
	blocks := (len(series) + resolutionFactor - 1) / resolutionFactor
	result := make([]float64, blocks)
	for block := 0; block < blocks; block++ {
		start := block * resolutionFactor
		end := start + resolutionFactor
		if end > len(series) {
			end = len(series)
		}
		result[block] = floats.Sum(series[start:end]) / float64(end-start)
	}
	return result
}
