// Package align measures how well two sample traces line up in time using
// Dynamic Time Warping (DTW).
//
// The verification harness uses it to tell amplitude error from timing
// error: a stream that is numerically close but shifted by one tick shows a
// warp path that leaves the diagonal, which Skew reports as the largest
// |i−j| along the path.
//
// Features:
//   - full-matrix mode with path recovery, or two-row mode (distance only)
//   - optional Sakoe–Chiba window (|i−j| ≤ Window)
//   - slope penalty on non-diagonal steps, so flat regions (zero tails of a
//     pulse) do not warp for free
//
// Complexity: O(N·M) time; O(N·M) memory (FullMatrix) or O(M) (TwoRows).
package align
