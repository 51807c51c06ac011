package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptyInput is returned when Analyze receives no samples.
var ErrEmptyInput = errors.New("spectrum: input must not be empty")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Spectrum is the one-sided spectrum of a real sequence.
type Spectrum struct {
	Size      int          // FFT length after zero padding
	Bins      []complex128 // bins 0..Size/2
	Magnitude []float64
	Power     []float64
}

// Analyze transforms x and returns bins 0..N/2, where N is len(x) rounded up
// to a power of two.
func Analyze(x []float64) (Spectrum, error) {
	if len(x) == 0 {
		return Spectrum{}, ErrEmptyInput
	}

	size := nextPow2(len(x))
	in := make([]complex128, size)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: fft plan of size %d: %w", size, err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bins := out[:size/2+1]
	return Spectrum{
		Size:      size,
		Bins:      bins,
		Magnitude: Magnitude(bins),
		Power:     Power(bins),
	}, nil
}

// Omega returns the normalized angular frequency of bin k in radians per
// sample.
func (s Spectrum) Omega(k int) float64 {
	return 2 * math.Pi * float64(k) / float64(s.Size)
}

// MagnitudeDB returns 20*log10 of each magnitude bin. Zero bins map to -Inf.
func (s Spectrum) MagnitudeDB() []float64 {
	out := make([]float64, len(s.Magnitude))
	for i, m := range s.Magnitude {
		if m == 0 {
			out[i] = math.Inf(-1)
			continue
		}
		out[i] = 20 * math.Log10(m)
	}
	return out
}

// Peak returns the bin with the largest magnitude. It returns -1 for an empty
// spectrum.
func (s Spectrum) Peak() (bin int, magnitude float64) {
	bin = -1
	for i, m := range s.Magnitude {
		if bin < 0 || m > magnitude {
			bin, magnitude = i, m
		}
	}
	return bin, magnitude
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	scratchPool.Put(buf)
	return out
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
