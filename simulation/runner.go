// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/core"
	"github.com/katalvlaran/netsim/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// State is the lifecycle stage of a Runner.
type State int

const (
	Idle State = iota
	Running
	Finalized
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finalized:
		return "finalized"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result is the outcome of a finalized run.
type Result struct {
	RunID uuid.UUID
	Model Model
	Sims  int
	Seed  int64
	// Policy is the distance policy the samples were measured with.
	Policy metrics.DistancePolicy
	// Stats holds the per-metric means over all iterations.
	Stats metrics.RunningStatistics
	// Spread adds sample standard deviations to the means.
	Spread metrics.Spread
	// Samples is indexed by iteration.
	Samples []metrics.Sample
	// LastGraph is the graph of the final iteration, kept for export.
	LastGraph *core.Graph
	Elapsed   time.Duration
}

// Runner executes S iterations of one Model. It is safe to call State
// concurrently with Run.
type Runner struct {
	model Model
	sims  int
	cfg   runnerConfig

	mu    sync.Mutex
	state State
}

// NewRunner prepares a run of sims iterations. Parameters are checked by Run.
func NewRunner(model Model, sims int, opts ...Option) *Runner {
	return &Runner{model: model, sims: sims, cfg: newRunnerConfig(opts...)}
}

// State returns the current lifecycle stage.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

// validate checks everything Run needs before the first generation.
func (r *Runner) validate() error {
	if r.model == nil {
		return fmt.Errorf("Run: nil model: %w", ErrInvalidConfiguration)
	}
	if r.sims < 1 {
		return fmt.Errorf("Run: sims=%d < 1: %w", r.sims, ErrInvalidConfiguration)
	}
	if err := r.model.Validate(); err != nil {
		return fmt.Errorf("Run: %w: %w", ErrInvalidConfiguration, err)
	}
	return nil
}

// Run executes every iteration and finalizes the averages.
//
// Contract:
//   - Invalid configuration → ErrInvalidConfiguration; the model is never
//     asked to generate and the Runner stays Idle.
//   - A Runner runs at most once; later calls → ErrAlreadyRun.
//   - The first generation, measurement or context error aborts the run and
//     moves the Runner to Failed. Nothing is retried.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	r.mu.Lock()
	if r.state != Idle {
		r.mu.Unlock()
		return nil, ErrAlreadyRun
	}
	if err := r.validate(); err != nil {
		r.mu.Unlock()
		return nil, err
	}
	r.state = Running
	r.mu.Unlock()

	res := &Result{
		RunID:   uuid.New(),
		Model:   r.model,
		Sims:    r.sims,
		Seed:    r.cfg.seed,
		Policy:  r.cfg.policy,
		Samples: make([]metrics.Sample, r.sims),
	}
	log := r.cfg.logger.With(
		zap.String("run_id", res.RunID.String()),
		zap.String("model", r.model.Name()),
		zap.Any("params", r.model.Params()),
	)
	log.Info("run started", zap.Int("sims", r.sims), zap.Int("workers", r.cfg.workers))
	start := time.Now()

	f := newFolder(res, r.cfg.observer)
	var err error
	if r.cfg.workers > 1 {
		err = r.runParallel(ctx, log, res, f)
	} else {
		err = r.runSequential(ctx, log, res, f)
	}
	if err == nil {
		err = r.finalize(res)
	}
	if err != nil {
		r.setState(Failed)
		log.Error("run failed", zap.Error(err))
		return nil, err
	}

	res.Elapsed = time.Since(start)
	r.setState(Finalized)
	log.Info("run finalized",
		zap.Duration("elapsed", res.Elapsed),
		zap.Float64("mean_edges", res.Stats.Edges),
		zap.Float64("mean_distance", res.Stats.MeanDistance),
	)
	return res, nil
}

func (r *Runner) runSequential(ctx context.Context, log *zap.Logger, res *Result, f *folder) error {
	for i := 0; i < r.sims; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("Run: iteration %d: %w", i+1, err)
		}
		if err := r.iterate(log, i, res); err != nil {
			return err
		}
		if err := f.complete(i); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runParallel(ctx context.Context, log *zap.Logger, res *Result, f *folder) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.cfg.workers)
	for i := 0; i < r.sims; i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("Run: iteration %d: %w", i+1, err)
			}
			if err := r.iterate(log, i, res); err != nil {
				return err
			}
			return f.complete(i)
		})
	}
	return eg.Wait()
}

// iterate generates and measures graph i. It writes only res.Samples[i]
// and, for the final iteration, res.LastGraph.
func (r *Runner) iterate(log *zap.Logger, i int, res *Result) error {
	t0 := time.Now()
	log.Info("iteration started", zap.Int("iteration", i+1))

	g, err := r.model.Generate(iterationRNG(r.cfg.seed, i))
	if err != nil {
		if errors.Is(err, builder.ErrZeroTotalDegree) {
			err = fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		return fmt.Errorf("Run: iteration %d: generate: %w", i+1, err)
	}
	s, err := metrics.Measure(g, r.cfg.policy)
	if err != nil {
		return fmt.Errorf("Run: iteration %d: measure: %w", i+1, err)
	}
	res.Samples[i] = s
	if i == r.sims-1 {
		res.LastGraph = g
	}

	log.Info("iteration done",
		zap.Int("iteration", i+1),
		zap.Int("edges", s.Edges),
		zap.Int("components", s.Components),
		zap.Duration("took", time.Since(t0)),
	)
	return nil
}

// folder adds samples to the running statistics as soon as every lower
// index has been added too. Folding in index order keeps sequential and
// parallel averages bit-identical while the observer still sees progress
// during the run.
type folder struct {
	mu       sync.Mutex
	res      *Result
	observer Observer
	done     []bool
	next     int
}

func newFolder(res *Result, obs Observer) *folder {
	return &folder{res: res, observer: obs, done: make([]bool, len(res.Samples))}
}

// complete marks sample i as written and folds the ready prefix. The
// observer is called under the lock, so calls never overlap.
func (f *folder) complete(i int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.done[i] = true
	for f.next < len(f.done) && f.done[f.next] {
		s := f.res.Samples[f.next]
		if err := f.res.Stats.Add(s); err != nil {
			return fmt.Errorf("Run: %w", err)
		}
		if f.observer != nil {
			f.observer(f.next, s)
		}
		f.next++
	}
	return nil
}

// finalize turns the folded sums into means.
func (r *Runner) finalize(res *Result) error {
	if err := res.Stats.Finalize(r.model.NodeCount()); err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	res.Spread = metrics.Summarize(res.Samples)
	return nil
}
