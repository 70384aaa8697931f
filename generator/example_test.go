// Package generator_test shows how to drive the generator tick by tick and
// with the Run convenience driver.
package generator_test

import (
	"fmt"

	"github.com/katalvlaran/qpulse/command"
	"github.com/katalvlaran/qpulse/generator"
)

// ExampleGenerator_Run streams a DRAG pulse and prints the samples around
// its peak.
func ExampleGenerator_Run() {
	// 1) Describe the pulse in physical units; New quantizes it.
	cmd := command.New(64, 32,
		command.WithSigma(6),
		command.WithAmplitude(0.5),
		command.WithDragScale(0.5),
	)

	// 2) Run accepts, starts and drains one session.
	samples, err := generator.New().Run(cmd)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Q follows the derivative: positive on the rising edge, negative after.
	for n := 31; n <= 33; n++ {
		fmt.Println(n, samples[n])
	}
	// Output:
	// 31 (16158, 221)
	// 32 (16384, 0)
	// 33 (16158, -221)
}

// ExampleGenerator_Tick shows the one-tick latency between accept, start
// and the first sample.
func ExampleGenerator_Tick() {
	g := generator.New()
	cmd := command.New(3, 1)

	fmt.Println(g.Tick(generator.Inputs{CmdValid: true, Cmd: cmd}).Valid, g.State())
	fmt.Println(g.Tick(generator.Inputs{Start: true}).Valid, g.State())
	for {
		out := g.Tick(generator.Inputs{})
		fmt.Println(out.Valid, out.Index, out.Last)
		if out.Last {
			break
		}
	}
	fmt.Println(g.State())
	// Output:
	// false loaded
	// false active
	// true 0 false
	// true 1 false
	// true 2 true
	// idle
}
