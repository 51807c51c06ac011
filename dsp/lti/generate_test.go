package lti

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lti/internal/testutil"
)

func TestGenerateEmpty(t *testing.T) {
	for _, p := range []Params{DefaultParams(), LabPreset(), {A: 0, D: 5}} {
		s, err := Generate(p, 0)
		if err != nil {
			t.Fatalf("Generate(%v, 0) error = %v", p, err)
		}
		if len(s.Index) != 0 || len(s.X) != 0 || len(s.Theory) != 0 {
			t.Fatalf("Generate(%v, 0) = %+v, want empty", p, s)
		}
		if s.Len() != 0 {
			t.Fatalf("Len() = %d, want 0", s.Len())
		}
	}
}

func TestGenerateNegativeLength(t *testing.T) {
	if _, err := Generate(DefaultParams(), -1); !errors.Is(err, ErrNegativeLength) {
		t.Fatalf("error = %v, want ErrNegativeLength", err)
	}
}

func TestGenerateFirstSamples(t *testing.T) {
	tests := []Params{
		LabPreset(),
		NewParams(WithGain(-2.5, 0.3), WithRates(0.4, 0.2), WithCosh(-1)),
		NewParams(WithGain(1e-3, -7)),
	}
	for _, p := range tests {
		s, err := Generate(p, 3)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if s.X[0] != p.A {
			t.Fatalf("x[0] = %v, want a = %v", s.X[0], p.A)
		}
		if s.Theory[0] != p.C {
			t.Fatalf("y[0] = %v, want c = %v", s.Theory[0], p.C)
		}
	}
}

func TestGenerateMatchesFormulas(t *testing.T) {
	p := LabPreset()
	s, err := Generate(p, p.NPoints)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if s.Len() != 150 {
		t.Fatalf("Len() = %d, want 150", s.Len())
	}
	for i, n := range s.Index {
		if n != i {
			t.Fatalf("index[%d] = %d", i, n)
		}
	}

	testutil.RequireSliceNearlyEqual(t, s.X, testutil.Exponential(p.A, p.B, p.NPoints), 0)
	testutil.RequireSliceNearlyEqual(t, s.Theory, testutil.DampedCosh(p.C, p.D, p.K, p.NPoints), 0)

	want := 1.5 * math.Exp(-0.1*149) * math.Cosh(0.05*149)
	if s.Theory[149] != want {
		t.Fatalf("y[149] = %v, want %v", s.Theory[149], want)
	}
}

