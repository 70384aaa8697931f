// SPDX-License-Identifier: MIT
// Package: qpulse/capture
//
// html.go — DUT vs golden charts.

package capture

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/qpulse/harness"
)

// RenderHTML writes one page with an I chart and a Q chart per result.
func RenderHTML(w io.Writer, results []harness.Result) error {
	if len(results) == 0 {
		return ErrNoResults
	}
	page := components.NewPage()
	for _, r := range results {
		page.AddCharts(
			channelChart(r, "I",
				func(p harness.Point) float64 { return p.DutIR },
				func(p harness.Point) float64 { return p.GoldIR }),
			channelChart(r, "Q",
				func(p harness.Point) float64 { return p.DutQR },
				func(p harness.Point) float64 { return p.GoldQR }),
		)
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("capture: html: %w", err)
	}
	return nil
}

func channelChart(r harness.Result, ch string, dut, gold func(harness.Point) float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    fmt.Sprintf("%s %s", r.Name, ch),
		Subtitle: fmt.Sprintf("len=%d mu=%d max err I=%d Q=%d LSB", r.Params.Len, r.Params.Mu, r.MaxErrI, r.MaxErrQ),
	}))

	xs := make([]int, len(r.Samples))
	d := make([]opts.LineData, len(r.Samples))
	g := make([]opts.LineData, len(r.Samples))
	for i, p := range r.Samples {
		xs[i] = p.N
		d[i] = opts.LineData{Value: dut(p)}
		g[i] = opts.LineData{Value: gold(p)}
	}
	line.SetXAxis(xs).
		AddSeries("DUT "+ch, d).
		AddSeries("Golden "+ch, g)
	return line
}
