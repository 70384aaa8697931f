// SPDX-License-Identifier: MIT
// Package: qpulse/align
//
// dtw.go — DTW distance, warp path and skew.
//
// Recurrence (1-based, D[0][0] = 0, borders +∞):
//
//	D[i][j] = |a[i−1] − b[j−1]| + min(D[i−1][j−1],
//	                                  D[i−1][j] + penalty,
//	                                  D[i][j−1] + penalty)
//
// Backtracking prefers the diagonal on ties, so identical traces yield the
// pure diagonal path.

package align

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("align: input sequences must be non-empty")

	// ErrBadInput indicates malformed options (Window < NoWindow, negative
	// or NaN penalty).
	ErrBadInput = errors.New("align: invalid options")

	// ErrPathNeedsMatrix indicates ReturnPath without FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("align: ReturnPath requires MemoryMode=FullMatrix")
)

// DTW computes the warping distance between a and b. The path is nil unless
// opts.ReturnPath is set. A nil opts means DefaultOptions.
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < NoWindow || !(o.SlopePenalty >= 0) {
		return 0, nil, ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	inf := math.Inf(1)
	outside := func(i, j int) bool {
		return o.Window != NoWindow && abs(i-j) > o.Window
	}

	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for r := range dp {
		dp[r] = make([]float64, m+1)
	}
	row := func(i int) []float64 {
		if o.MemoryMode == FullMatrix {
			return dp[i]
		}
		return dp[i%2]
	}

	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	for i := 1; i <= n; i++ {
		prev, curr := row(i-1), row(i)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j) {
				curr[j] = inf
				continue
			}
			best := min3(prev[j-1], prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty)
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}

	dist := row(n)[m]
	if !o.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}
	return dist, backtrack(dp, o.SlopePenalty), nil
}

// backtrack walks from (n,m) to (1,1) choosing the cheapest predecessor.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		diag := dp[i-1][j-1]
		up := dp[i-1][j] + penalty
		left := dp[i][j-1] + penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// Skew returns the largest |I−J| along path; zero means perfectly aligned.
func Skew(path []Coord) int {
	s := 0
	for _, c := range path {
		if d := abs(c.I - c.J); d > s {
			s = d
		}
	}
	return s
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
