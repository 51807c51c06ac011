package simulate

import (
	"context"
	"sync"

	"github.com/cwbudde/algo-lti/dsp/lti"
)

// Scenario is a named parameter set.
type Scenario struct {
	Name   string
	Params lti.Params
}

// Outcome pairs a scenario with its result or error.
type Outcome struct {
	Scenario Scenario
	Result   Result
	Err      error
}

// RunBatch runs every scenario through Run on at most WithWorkers goroutines
// and returns the outcomes in input order.
//
// Cancelling ctx stops scheduling; scenarios that were not started report
// ctx.Err(). A run that already started completes.
func RunBatch(ctx context.Context, scenarios []Scenario, opts ...Option) []Outcome {
	cfg := applyOptions(opts)

	out := make([]Outcome, len(scenarios))
	for i := range scenarios {
		out[i].Scenario = scenarios[i]
	}

	workers := min(cfg.workers, len(scenarios))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i].Result, out[i].Err = Run(scenarios[i].Params, opts...)
			}
		}()
	}

	scheduled := 0
schedule:
	for i := range scenarios {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break schedule
		case jobs <- i:
			scheduled++
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i := scheduled; i < len(out); i++ {
			out[i].Err = err
		}
	}
	return out
}
