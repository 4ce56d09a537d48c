// SPDX-License-Identifier: MIT

// Package simulation drives repeated generate → measure cycles for one
// random-graph model and averages the per-graph metrics.
//
// A Runner is a one-shot state machine:
//
//	Idle ──Run──▶ Running(i = 1..S) ──▶ Finalized
//	                    │
//	                    └──error──▶ Failed
//
// Run validates the model and S before the first generation; an invalid
// configuration returns ErrInvalidConfiguration and never calls
// Model.Generate. Every iteration i draws from its own RNG stream derived
// from the run seed, so a parallel run (WithWorkers) yields exactly the
// same samples and averages as a sequential one.
//
// Unlike core, builder and metrics, this package logs: iteration start and
// finish go to the zap.Logger supplied via WithLogger (no-op by default).
package simulation
