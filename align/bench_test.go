package align_test

import (
	"testing"

	"github.com/katalvlaran/qpulse/align"
)

// benchmarkDTW runs DTW on ramp sequences of lengths n and m.
func benchmarkDTW(b *testing.B, n, m int, opts align.Options) {
	a := make([]float64, n)
	bSeq := make([]float64, m)
	for i := range a {
		a[i] = float64(i)
	}
	for j := range bSeq {
		bSeq[j] = float64(j)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := align.DTW(a, bSeq, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// BenchmarkDTW_FullMatrix benchmarks path recovery on a 256-sample trace.
func BenchmarkDTW_FullMatrix(b *testing.B) {
	opts := align.DefaultOptions()
	opts.ReturnPath = true
	benchmarkDTW(b, 256, 256, opts)
}

// BenchmarkDTW_TwoRows benchmarks distance-only mode.
func BenchmarkDTW_TwoRows(b *testing.B) {
	opts := align.DefaultOptions()
	opts.MemoryMode = align.TwoRows
	benchmarkDTW(b, 256, 256, opts)
}

// BenchmarkDTW_Window benchmarks the harness configuration (band of 8).
func BenchmarkDTW_Window(b *testing.B) {
	opts := align.Options{Window: 8, SlopePenalty: 4, ReturnPath: true}
	benchmarkDTW(b, 256, 256, opts)
}
