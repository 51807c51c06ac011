package lti_test

import (
	"fmt"

	"github.com/cwbudde/algo-lti/dsp/lti"
)

func ExampleIsStable() {
	fmt.Println(lti.IsStable(lti.LabPreset()))
	fmt.Println(lti.IsStable(lti.Params{D: -1, K: 1}))

	// Output:
	// true
	// false
}

func ExampleProcess() {
	p := lti.Params{A: 1, B: 0, C: 1, D: -0.5, K: 0, NPoints: 4}

	s, err := lti.Generate(p, p.NPoints)
	if err != nil {
		panic(err)
	}
	y, err := lti.Process(s.X, p)
	if err != nil {
		panic(err)
	}

	for n := range s.Index {
		fmt.Printf("n=%d theory=%.6f processed=%.6f\n", n, s.Theory[n], y[n])
	}

	// Output:
	// n=0 theory=1.000000 processed=1.000000
	// n=1 theory=0.606531 processed=0.606531
	// n=2 theory=0.367879 processed=0.367879
	// n=3 theory=0.223130 processed=0.223130
}
