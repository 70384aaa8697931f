// Package align_test shows how the skew check separates timing error from
// amplitude error.
package align_test

import (
	"fmt"

	"github.com/katalvlaran/qpulse/align"
)

// ExampleSkew compares a reference pulse with a copy delayed by one tick.
func ExampleSkew() {
	// 1) Reference trace and the same trace one sample late.
	ref := []float64{0, 10, 40, 90, 40, 10, 0, 0}
	late := []float64{0, 0, 10, 40, 90, 40, 10, 0}

	// 2) Band of 2 samples; each warp step costs 4 units.
	opts := align.Options{Window: 2, SlopePenalty: 4, ReturnPath: true, MemoryMode: align.FullMatrix}

	// 3) Aligned traces stay on the diagonal.
	dist, path, err := align.DTW(ref, ref, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("aligned: dist=%.0f skew=%d\n", dist, align.Skew(path))

	// 4) The delayed trace pays two warp steps and reports skew 1.
	dist, path, err = align.DTW(late, ref, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("late: dist=%.0f skew=%d\n", dist, align.Skew(path))
	// Output:
	// aligned: dist=0 skew=0
	// late: dist=8 skew=1
}
