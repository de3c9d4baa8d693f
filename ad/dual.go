// SPDX-License-Identifier: MIT
// Package ad: the Dual type.
//
// A Dual is a value together with its derivative with respect to every
// independent variable it depends on. The derivative is a sparse array over
// the variable tags actually reached, so a dual touching 3 of 10⁶ variables
// stores 3 coefficients.

package ad

import (
	"strconv"

	"github.com/katalvlaran/sparsead/indexset"
	"github.com/katalvlaran/sparsead/sparse"
)

// Dual is a forward-mode dual number with a sparse derivative.
// The zero value is the constant 0.
type Dual struct {
	value float64
	deriv sparse.Array[sparse.Real]
}

// Seed returns the independent variable number tag at value: its derivative
// shape is {tag} with coefficient 1.
// Errors: ErrNegativeTag.
func Seed(value float64, tag int, opts ...sparse.Option) (Dual, error) {
	d, err := sparse.UnitVector(tag, sparse.Real(1), opts...)
	if err != nil {
		return Dual{}, adErrorf("Seed("+strconv.Itoa(tag)+")", ErrNegativeTag)
	}

	return Dual{value: value, deriv: d}, nil
}

// MustSeed is Seed that panics on a negative tag.
func MustSeed(value float64, tag int, opts ...sparse.Option) Dual {
	d, err := Seed(value, tag, opts...)
	if err != nil {
		panic(err)
	}

	return d
}

// SeedAll seeds values[k] as variable k.
func SeedAll(values []float64, opts ...sparse.Option) []Dual {
	out := make([]Dual, len(values))
	for k, v := range values {
		out[k] = MustSeed(v, k, opts...)
	}

	return out
}

// SeedShape seeds values[k] as variable shape.At(k) while making every
// variable share shape as its derivative shape: coefficient 1 at its own
// tag, 0 elsewhere. Results of arithmetic between them then reuse one shape.
// Errors: sparse.ErrLengthMismatch.
func SeedShape(values []float64, shape indexset.Shape, opts ...sparse.Option) ([]Dual, error) {
	if len(values) != shape.Len() {
		return nil, adErrorf("SeedShape", sparse.ErrLengthMismatch)
	}
	out := make([]Dual, len(values))
	for k, v := range values {
		own := shape.At(k)
		d := indexset.WithPayload(shape, func(i int) sparse.Real {
			if i == own {
				return 1
			}
			return 0
		})
		out[k] = Dual{value: v, deriv: sparse.FromSet(d, opts...)}
	}

	return out, nil
}

// Constant returns a dual with no derivative.
func Constant(value float64) Dual { return Dual{value: value} }

// New assembles a dual from its parts.
func New(value float64, deriv sparse.Array[sparse.Real]) Dual {
	return Dual{value: value, deriv: deriv}
}

// Value returns the primal value.
func (d Dual) Value() float64 { return d.value }

// Derivative returns ∂d/∂x_tag, zero for tags outside the shape.
func (d Dual) Derivative(tag int) float64 { return float64(d.deriv.Query(tag)) }

// StrictDerivative is Derivative for a tag expected in the shape.
// Errors: ErrIndexNotFound.
func (d Dual) StrictDerivative(tag int) (float64, error) {
	v, err := d.deriv.At(tag)
	if err != nil {
		return 0, adErrorf("StrictDerivative", err)
	}

	return float64(v), nil
}

// MustDerivative reads tag under the derivative's access mode: Checked panics
// on an absent tag, Trusted reads whatever slot the tag would occupy.
func (d Dual) MustDerivative(tag int) float64 { return float64(d.deriv.MustAt(tag)) }

// Derivatives returns the full sparse derivative.
func (d Dual) Derivatives() sparse.Array[sparse.Real] { return d.deriv }

// Shape returns the set of variable tags the derivative is stored for.
func (d Dual) Shape() indexset.Shape { return d.deriv.Shape() }

// Float returns the primal value; it lets comparisons of sparse arrays of
// duals look at values only.
func (d Dual) Float() float64 { return d.value }

// IsZero reports whether both value and every coefficient are zero.
func (d Dual) IsZero() bool {
	if d.value != 0 {
		return false
	}
	for _, c := range d.deriv.Values() {
		if !c.IsZero() {
			return false
		}
	}

	return true
}

// Sparse algebra method forms, so sparse.Array[Dual] and named.Array[Dual]
// propagate derivatives.

func (d Dual) Add(e Dual) Dual { return Add(d, e) }
func (d Dual) Sub(e Dual) Dual { return Sub(d, e) }
func (d Dual) Mul(e Dual) Dual { return Mul(d, e) }
func (d Dual) Div(e Dual) Dual { return Div(d, e) }
func (d Dual) Neg() Dual { return Neg(d) }
func (d Dual) Scale(c float64) Dual { return MulScalar(d, c) }
func (d Dual) Sin() Dual { return Sin(d) }
func (d Dual) Tan() Dual { return Tan(d) }
func (d Dual) Asin() Dual { return Asin(d) }
func (d Dual) Atan() Dual { return Atan(d) }
func (d Dual) Sinh() Dual { return Sinh(d) }
func (d Dual) Tanh() Dual { return Tanh(d) }
func (d Dual) Sqrt() Dual { return Sqrt(d) }
func (d Dual) Abs() Dual { return Abs(d) }
func (d Dual) Ceil() Dual { return Ceil(d) }
func (d Dual) Floor() Dual { return Floor(d) }
func (d Dual) Pow(p float64) Dual { return PowReal(d, p) }
