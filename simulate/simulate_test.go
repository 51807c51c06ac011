package simulate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-lti/dsp/lti"
	"github.com/cwbudde/algo-lti/measure/agreement"
)

func TestRunLabPreset(t *testing.T) {
	p := lti.LabPreset()

	res, err := Run(p)
	require.NoError(t, err)

	assert.True(t, res.Stable)
	assert.InDelta(t, 0.05, res.Margin, 1e-15)
	assert.InDelta(t, math.Exp(-0.05), res.Radius, 1e-12)
	assert.Equal(t, p, res.Params)
	assert.Len(t, res.Processed, 150)
	assert.Equal(t, 150, res.Signals.Len())
	assert.Equal(t, 1.5, res.Processed[0])
	assert.True(t, res.Agreement.Agrees(), "agreement: %+v", res.Agreement)
	assert.Nil(t, res.Spectrum)
}

func TestRunRejectsUnstable(t *testing.T) {
	p := lti.NewParams(lti.WithRates(0.01, -1), lti.WithCosh(1))

	res, err := Run(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnstable))

	var instab *InstabilityError
	require.ErrorAs(t, err, &instab)
	assert.Equal(t, -1.0, instab.D)
	assert.Equal(t, 1.0, instab.K)
	assert.Contains(t, err.Error(), "d + |k| must be < 0")

	assert.False(t, res.Stable)
	assert.InDelta(t, 1.0, res.Radius, 1e-12)
	assert.Nil(t, res.Processed, "processing must not run when gated")
}

func TestRunForceUnstable(t *testing.T) {
	p := lti.Params{A: 1, B: 0.01, C: 1, D: 0.05, K: 0.02, NPoints: 80}

	res, err := Run(p, WithForce())
	require.NoError(t, err)
	assert.False(t, res.Stable)
	assert.Len(t, res.Processed, 80)
	assert.True(t, res.Agreement.Finite)
}

func TestRunForceOverflow(t *testing.T) {
	p := lti.Params{A: 1, C: 1, D: 5, NPoints: 400}

	res, err := Run(p, WithForce())
	require.NoError(t, err)
	assert.False(t, res.Agreement.Finite)
	assert.False(t, res.Agreement.Agrees())
}

func TestRunZeroInputGain(t *testing.T) {
	_, err := Run(lti.NewParams(lti.WithGain(0, 1)))
	assert.ErrorIs(t, err, lti.ErrZeroInputGain)

	// The gain check precedes the stability gate.
	_, err = Run(lti.Params{A: 0, D: 1})
	assert.ErrorIs(t, err, lti.ErrZeroInputGain)
}

func TestRunEmpty(t *testing.T) {
	res, err := Run(lti.NewParams(lti.WithPoints(0)), WithSpectrum())
	require.NoError(t, err)
	assert.Empty(t, res.Processed)
	assert.Equal(t, 0, res.Agreement.Length)
	assert.Nil(t, res.Spectrum)
}

func TestRunWithSpectrum(t *testing.T) {
	res, err := Run(lti.LabPreset(), WithSpectrum())
	require.NoError(t, err)
	require.NotNil(t, res.Spectrum)
	assert.Equal(t, 256, res.Spectrum.Size)

	bin, mag := res.Spectrum.Peak()
	assert.Equal(t, 0, bin, "decaying output concentrates at DC")
	assert.Greater(t, mag, 0.0)
}

func TestRunTolerance(t *testing.T) {
	res, err := Run(lti.LabPreset(), WithTolerance(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Agreement.Tolerance)

	res, err = Run(lti.LabPreset())
	require.NoError(t, err)
	assert.Equal(t, 1e-9, res.Agreement.Tolerance)

	for _, tol := range []float64{-1, math.NaN()} {
		res, err = Run(lti.LabPreset(), WithTolerance(tol))
		assert.ErrorIs(t, err, agreement.ErrInvalidTolerance, "tol=%v", tol)
		assert.Nil(t, res.Processed)
	}
}

func TestRunBatch(t *testing.T) {
	var scenarios []Scenario
	for i := range 20 {
		p := lti.LabPreset()
		p.D = -0.1 - 0.01*float64(i)
		p.NPoints = 50 + i
		scenarios = append(scenarios, Scenario{Name: fmt.Sprintf("s%02d", i), Params: p})
	}
	scenarios = append(scenarios,
		Scenario{Name: "unstable", Params: lti.Params{A: 1, D: 0.2, NPoints: 10}},
		Scenario{Name: "zero-gain", Params: lti.Params{A: 0, D: -1, NPoints: 10}},
	)

	out := RunBatch(context.Background(), scenarios, WithWorkers(4))
	require.Len(t, out, len(scenarios))

	for i, o := range out[:20] {
		require.NoError(t, o.Err, o.Scenario.Name)
		assert.Equal(t, scenarios[i].Name, o.Scenario.Name)
		assert.Len(t, o.Result.Processed, 50+i)
		assert.True(t, o.Result.Agreement.Agrees(), o.Scenario.Name)
	}
	assert.ErrorIs(t, out[20].Err, ErrUnstable)
	assert.ErrorIs(t, out[21].Err, lti.ErrZeroInputGain)
}

func TestRunBatchMatchesSequentialRuns(t *testing.T) {
	scenarios := []Scenario{
		{Name: "preset", Params: lti.LabPreset()},
		{Name: "defaults", Params: lti.DefaultParams()},
	}
	out := RunBatch(context.Background(), scenarios)
	for i, o := range out {
		want, err := Run(scenarios[i].Params)
		require.NoError(t, err)
		assert.Equal(t, want.Processed, o.Result.Processed)
	}
}

func TestRunBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := RunBatch(ctx, []Scenario{{Params: lti.LabPreset()}, {Params: lti.DefaultParams()}})
	require.Len(t, out, 2)
	for _, o := range out {
		assert.ErrorIs(t, o.Err, context.Canceled)
	}
}

func TestRunBatchEmpty(t *testing.T) {
	assert.Empty(t, RunBatch(context.Background(), nil))
}

func TestRunNegativeLength(t *testing.T) {
	_, err := Run(lti.NewParams(lti.WithPoints(-1)))
	assert.ErrorIs(t, err, lti.ErrNegativeLength)
}

func TestInstabilityErrorNaN(t *testing.T) {
	_, err := Run(lti.Params{A: 1, D: math.NaN()})
	assert.ErrorIs(t, err, lti.ErrNonFinite)
}
