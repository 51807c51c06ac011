package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-lti/dsp/spectrum"
)

func ExampleAnalyze() {
	s, err := spectrum.Analyze([]float64{1, 0, -1, 0})
	if err != nil {
		panic(err)
	}

	for k, m := range s.Magnitude {
		fmt.Printf("bin %d: %.1f\n", k, m)
	}

	// Output:
	// bin 0: 0.0
	// bin 1: 2.0
	// bin 2: 0.0
}
