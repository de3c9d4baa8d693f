// SPDX-License-Identifier: MIT
// Package batch: concurrent evaluation of a differentiable function.
//
// Implementation:
//   - Stage 1: build one derivative shape {0..n-1} shared by every point.
//   - Stage 2: an errgroup with SetLimit(workers) evaluates points; each
//     worker seeds its own duals against the shared shape and writes only
//     its own slot of the result slice.
//   - Stage 3: per-point failures (wrong arity, panics, non-finite output)
//     are recorded on the point's Result and never cancel the batch; only
//     context cancellation aborts it.
//
// The shared shape is immutable, so workers read it without locking.

package batch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/sparsead/ad"
	"github.com/katalvlaran/sparsead/indexset"
	"github.com/katalvlaran/sparsead/sparse"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the worker limit used without WithWorkers.
const DefaultWorkers = 4

const panicWorkersInvalid = "batch: WithWorkers: n must be >= 1"

var (
	// ErrArity indicates a point whose length differs from the variable count.
	ErrArity = ad.ErrArity

	// ErrPanic indicates the function panicked on a point.
	ErrPanic = errors.New("batch: function panicked")

	// ErrNonFinite indicates a NaN or ±Inf value or gradient component.
	ErrNonFinite = errors.New("batch: non-finite result")

	// ErrBadVariables indicates a negative variable count.
	ErrBadVariables = errors.New("batch: variable count must be >= 0")
)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithWorkers bounds the number of concurrently evaluated points.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(e *Evaluator) { e.workers = n }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithAccessMode sets the access mode of the seeded derivatives.
func WithAccessMode(m sparse.AccessMode) Option {
	opt := sparse.WithAccessMode(m)

	return func(e *Evaluator) { e.seedOpts = []sparse.Option{opt} }
}

// WithCheckOptions forwards options to ad.CheckGradient in Check.
func WithCheckOptions(opts ...ad.CheckOption) Option {
	return func(e *Evaluator) { e.checkOpts = append(e.checkOpts, opts...) }
}

// Evaluator computes values and gradients of one function at many points.
type Evaluator struct {
	f         ad.Func
	vars      int
	shape     indexset.Shape
	workers   int
	logger    *zap.Logger
	seedOpts  []sparse.Option
	checkOpts []ad.CheckOption
}

// Result is the outcome for one point.
type Result struct {
	Index    int       // position of the point in the input
	Value    float64   // f(point)
	Gradient []float64 // ∂f/∂x_k, k = 0..vars-1
	Err      error     // per-point failure, nil on success
}

// New returns an Evaluator for f over vars variables.
// Errors: ErrBadVariables.
func New(f ad.Func, vars int, opts ...Option) (*Evaluator, error) {
	if vars < 0 {
		return nil, ErrBadVariables
	}
	e := &Evaluator{
		f:       f,
		vars:    vars,
		shape:   indexset.Range(vars),
		workers: DefaultWorkers,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e, nil
}

// Workers returns the configured worker limit.
func (e *Evaluator) Workers() int { return e.workers }

// Evaluate computes f and its gradient at every point. Results keep input
// order. The returned error is non-nil only when ctx ends first, in which
// case unevaluated results are left zero.
func (e *Evaluator) Evaluate(ctx context.Context, points [][]float64) ([]Result, error) {
	results := make([]Result, len(points))
	err := e.run(ctx, len(points), func(i int) {
		results[i] = e.evaluate(i, points[i])
	})

	return results, err
}

// Check runs ad.CheckGradient at every point. Points failing the check carry
// an error wrapping ad.ErrCheckFailed.
func (e *Evaluator) Check(ctx context.Context, points [][]float64) ([]ad.CheckReport, []error, error) {
	reports := make([]ad.CheckReport, len(points))
	errs := make([]error, len(points))
	err := e.run(ctx, len(points), func(i int) {
		if len(points[i]) != e.vars {
			errs[i] = e.fail(i, reasonArity, ErrArity)
			return
		}
		rep, cerr := guard(i, func() (ad.CheckReport, error) {
			return ad.CheckGradient(e.f, points[i], e.checkOpts...)
		})
		reports[i] = rep
		if cerr != nil {
			reason := reasonCheck
			if errors.Is(cerr, ErrPanic) {
				reason = reasonPanic
			}
			errs[i] = e.fail(i, reason, cerr)
		}
	})

	return reports, errs, err
}

// run fans n jobs out over the worker limit, stopping at ctx cancellation.
func (e *Evaluator) run(ctx context.Context, n int, job func(i int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	e.logger.Debug("batch started", zap.Int("points", n), zap.Int("workers", e.workers))

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			job(i)
			pointDuration.Observe(time.Since(start).Seconds())
			pointsTotal.Inc()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Warn("batch aborted", zap.Error(err))
		return err
	}
	if err := ctx.Err(); err != nil {
		e.logger.Warn("batch aborted", zap.Error(err))
		return err
	}
	e.logger.Debug("batch finished", zap.Int("points", n))

	return nil
}

func (e *Evaluator) evaluate(i int, point []float64) Result {
	res := Result{Index: i}
	if len(point) != e.vars {
		res.Err = e.fail(i, reasonArity, ErrArity)
		return res
	}
	xs, err := ad.SeedShape(point, e.shape, e.seedOpts...)
	if err != nil {
		res.Err = e.fail(i, reasonArity, err)
		return res
	}
	y, err := guard(i, func() (ad.Dual, error) { return e.f(xs), nil })
	if err != nil {
		res.Err = e.fail(i, reasonPanic, err)
		return res
	}

	res.Value = y.Value()
	res.Gradient = make([]float64, e.vars)
	finite := !math.IsNaN(res.Value) && !math.IsInf(res.Value, 0)
	for k := range res.Gradient {
		g := y.Derivative(k)
		res.Gradient[k] = g
		if math.IsNaN(g) || math.IsInf(g, 0) {
			finite = false
		}
	}
	if !finite {
		res.Err = e.fail(i, reasonNonFinite, ErrNonFinite)
	}

	return res
}

// guard converts a panic in fn into an error wrapping ErrPanic.
func guard[R any](i int, fn func() (R, error)) (r R, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("point %d: %v: %w", i, rec, ErrPanic)
		}
	}()

	return fn()
}

func (e *Evaluator) fail(i int, reason string, err error) error {
	failuresTotal.WithLabelValues(reason).Inc()
	e.logger.Debug("point failed", zap.Int("point", i), zap.String("reason", reason), zap.Error(err))

	return fmt.Errorf("point %d: %w", i, err)
}
