package simulate

import (
	"runtime"

	"github.com/cwbudde/algo-lti/measure/agreement"
)

type config struct {
	force     bool
	spectrum  bool
	tolerance float64
	workers   int
}

// Option configures Run and RunBatch.
type Option func(*config)

func defaultConfig() config {
	return config{
		tolerance: agreement.DefaultTolerance,
		workers:   runtime.GOMAXPROCS(0),
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithForce runs unstable configurations instead of rejecting them. The
// processed output may then grow without bound or overflow.
func WithForce() Option {
	return func(cfg *config) {
		cfg.force = true
	}
}

// WithSpectrum attaches the spectrum of the processed output to the result.
func WithSpectrum() Option {
	return func(cfg *config) {
		cfg.spectrum = true
	}
}

// WithTolerance sets the agreement tolerance. Run rejects a negative or NaN
// tolerance with agreement.ErrInvalidTolerance.
func WithTolerance(tol float64) Option {
	return func(cfg *config) {
		cfg.tolerance = tol
	}
}

// WithWorkers bounds the number of concurrent runs in RunBatch.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}
