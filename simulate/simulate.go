package simulate

import (
	"fmt"

	"github.com/cwbudde/algo-lti/dsp/lti"
	"github.com/cwbudde/algo-lti/dsp/spectrum"
	"github.com/cwbudde/algo-lti/measure/agreement"
)

// Result holds everything produced by one simulation run.
type Result struct {
	Params       lti.Params
	Stable       bool
	Margin       float64 // -(d + |k|)
	Radius       float64 // largest pole magnitude, below 1 when stable
	Coefficients lti.Coefficients
	Signals      lti.Signals
	Processed    []float64
	Agreement    agreement.Result
	Spectrum     *spectrum.Spectrum // nil unless WithSpectrum is given
}

// Run simulates p. It returns an error wrapping ErrUnstable for unstable
// parameters unless WithForce is given; validation errors from lti are
// returned unchanged.
func Run(p lti.Params, opts ...Option) (Result, error) {
	cfg := applyOptions(opts)

	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if !(cfg.tolerance >= 0) {
		return Result{}, fmt.Errorf("simulate: %w: %v", agreement.ErrInvalidTolerance, cfg.tolerance)
	}

	res := Result{
		Params: p,
		Stable: lti.IsStable(p),
		Margin: lti.StabilityMargin(p),
		Radius: lti.SpectralRadius(p),
	}
	if !res.Stable && !cfg.force {
		return res, &InstabilityError{D: p.D, K: p.K}
	}

	coeffs, err := lti.DeriveCoefficients(p)
	if err != nil {
		return res, err
	}
	res.Coefficients = coeffs

	signals, err := lti.Generate(p, p.NPoints)
	if err != nil {
		return res, err
	}
	res.Signals = signals
	res.Processed = coeffs.Apply(signals.X)

	res.Agreement, err = agreement.CompareWithTolerance(signals.Theory, res.Processed, cfg.tolerance)
	if err != nil {
		return res, fmt.Errorf("simulate: %w", err)
	}

	if cfg.spectrum && len(res.Processed) > 0 {
		spec, err := spectrum.Analyze(res.Processed)
		if err != nil {
			return res, fmt.Errorf("simulate: %w", err)
		}
		res.Spectrum = &spec
	}

	return res, nil
}
