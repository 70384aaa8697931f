// SPDX-License-Identifier: MIT
// Package: qpulse/align
//
// types.go — options, memory modes and path coordinates.

package align

// MemoryMode controls how DTW stores its cost matrix.
type MemoryMode int

const (
	// FullMatrix keeps the whole (n+1)×(m+1) matrix and supports ReturnPath.
	FullMatrix MemoryMode = iota
	// TwoRows keeps only the previous and current rows; distance only.
	TwoRows
)

// NoWindow disables the Sakoe–Chiba band.
const NoWindow = -1

// Options configures DTW.
//
//   - Window       — max |i−j| (NoWindow for unconstrained; 0 is diagonal only).
//   - SlopePenalty — added to every insertion/deletion step.
//   - ReturnPath   — backtrack the optimal path (requires FullMatrix).
//   - MemoryMode   — FullMatrix or TwoRows.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns unconstrained, penalty-free, distance-only options.
func DefaultOptions() Options {
	return Options{
		Window:     NoWindow,
		MemoryMode: FullMatrix,
	}
}

// Coord is one cell (I in a, J in b) on the warp path.
type Coord struct {
	I, J int
}
