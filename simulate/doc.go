// Package simulate runs complete simulations of the second-order LTI system
// in [lti]: validation, the stability gate, signal generation, recursive
// processing and the agreement check against the closed form.
//
// The stability gate lives here rather than in [lti] because it is a policy
// of the caller. [Run] refuses unstable parameters with an
// [*InstabilityError] unless [WithForce] is given.
//
// Independent parameter sets share nothing, so [RunBatch] evaluates them
// concurrently on a bounded worker pool.
package simulate
