// SPDX-License-Identifier: MIT
// Package ad: finite-difference verification of forward-mode derivatives.
//
// CheckGradient evaluates f once with every input seeded, then twice per
// variable on plain constants shifted by ±h, and compares
//
//	∂f/∂x_k  vs  (f(x + h·e_k) − f(x − h·e_k)) / 2h
//
// with the mixed criterion |ad − fd| ≤ tol·max(1, |fd|).

package ad

import (
	"math"
	"strconv"
)

// Defaults for CheckGradient.
const (
	// DefaultStep is the central-difference step h.
	DefaultStep = 1e-6

	// DefaultTolerance bounds the accepted discrepancy.
	DefaultTolerance = 1e-6
)

const (
	panicStepInvalid      = "ad: WithStep: h must be finite and > 0"
	panicToleranceInvalid = "ad: WithTolerance: tol must be finite and > 0"
)

// Func is a differentiable function of n variables.
type Func func(x []Dual) Dual

// CheckOption configures CheckGradient.
type CheckOption func(*checkOptions)

type checkOptions struct {
	step float64
	tol  float64
}

// WithStep sets the finite-difference step. Panics unless h is finite and > 0.
func WithStep(h float64) CheckOption {
	if !(h > 0) || math.IsInf(h, 0) {
		panic(panicStepInvalid)
	}

	return func(o *checkOptions) { o.step = h }
}

// WithTolerance sets the accepted discrepancy. Panics unless tol is finite
// and > 0.
func WithTolerance(tol float64) CheckOption {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *checkOptions) { o.tol = tol }
}

// CheckReport is the outcome of CheckGradient.
type CheckReport struct {
	Value      float64   // f(x)
	Gradient   []float64 // forward-mode ∂f/∂x_k
	FiniteDiff []float64 // central-difference estimates
	MaxError   float64   // largest scaled discrepancy
	Worst      int       // variable with MaxError, -1 for n = 0
}

// OK reports whether every component passed.
func (r CheckReport) OK(tol float64) bool { return r.MaxError <= tol }

// CheckGradient compares f's forward-mode gradient at x with central
// differences. The report is always filled; the error wraps ErrCheckFailed
// when the largest discrepancy exceeds the tolerance.
func CheckGradient(f Func, x []float64, opts ...CheckOption) (CheckReport, error) {
	o := checkOptions{step: DefaultStep, tol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	y := f(SeedAll(x))
	rep := CheckReport{
		Value:      y.value,
		Gradient:   make([]float64, len(x)),
		FiniteDiff: make([]float64, len(x)),
		Worst:      -1,
	}

	shifted := make([]Dual, len(x))
	for k := range x {
		for j, v := range x {
			shifted[j] = Constant(v)
		}
		shifted[k] = Constant(x[k] + o.step)
		fp := f(shifted).value
		shifted[k] = Constant(x[k] - o.step)
		fm := f(shifted).value

		fd := (fp - fm) / (2 * o.step)
		rep.Gradient[k] = y.Derivative(k)
		rep.FiniteDiff[k] = fd

		e := math.Abs(rep.Gradient[k]-fd) / math.Max(1, math.Abs(fd))
		if math.IsNaN(e) {
			e = math.Inf(1)
		}
		if rep.Worst < 0 || e > rep.MaxError {
			rep.MaxError, rep.Worst = e, k
		}
	}

	if rep.MaxError > o.tol {
		return rep, adErrorf("CheckGradient(variable "+strconv.Itoa(rep.Worst)+")", ErrCheckFailed)
	}

	return rep, nil
}
