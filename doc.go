// Package fastdtw computes Dynamic Time Warping (DTW) alignments
// between numeric sequences — the exact quadratic algorithm and the
// FastDTW multiresolution approximation that runs in linear time.
//
// 🚀 What is DTW?
//
//	DTW finds the best correspondence between two sequences by warping
//	the time axis to minimize cumulative distance, reporting both a
//	scalar distance and the warp path of index pairs. It's widely used
//	in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - exact DTW over the full cost table (DTW / DTWEx)
//   - FastDTW: recursive coarsen → solve → project → refine (FastDTW /
//     FastDTWEx), with tunable resolution factor and search radius
//   - Euclidean and Manhattan distance modes
//   - pluggable Window iterators — reuse the ConstrainedWindow band
//     projection with your own engine runs via DTWEx
//   - adaptive cost storage: dense matrix under a configurable memory
//     budget, per-row sparse cache above it (ConfigMaxCostMatrix)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fastdtw"
//
//	// exact
//	dist, path, err := fastdtw.DTW(seqX, seqY)
//
//	// approximate, factor 2 / radius 1 / Euclidean
//	dist, path, err = fastdtw.FastDTW(seqX, seqY)
//
//	// full control
//	dist, path, err = fastdtw.FastDTWEx(seqX, seqY, 2, 10, fastdtw.Manhattan)
//
// Performance:
//
//   - DTW:     O(N·M) time and memory
//   - FastDTW: O(max(N,M)) time and memory for fixed radius, within a
//     small factor of the exact distance
//
// Everything runs synchronously on the calling goroutine; separate
// computations share no state and may run concurrently. See
// example_test.go for runnable walkthroughs.
package fastdtw
