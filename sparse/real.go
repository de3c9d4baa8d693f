package sparse

import (
	"math"
	"strconv"
)

// Value is the algebra a sparse array payload must provide. The zero value of
// T must be the additive identity: it is what absent indices read as.
type Value[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Scale(float64) T
	IsZero() bool
	Float() float64
}

// Elementary is a Value that also supports the functions mapping zero to
// zero, the only ones that keep a sparse shape intact.
type Elementary[T any] interface {
	Value[T]
	Sin() T
	Tan() T
	Asin() T
	Atan() T
	Sinh() T
	Tanh() T
	Sqrt() T
	Abs() T
	Ceil() T
	Floor() T
	Pow(p float64) T
}

// Real is the plain scalar payload.
type Real float64

func (x Real) Add(y Real) Real { return x + y }
func (x Real) Sub(y Real) Real { return x - y }
func (x Real) Mul(y Real) Real { return x * y }
func (x Real) Div(y Real) Real { return x / y }
func (x Real) Neg() Real { return -x }
func (x Real) Scale(c float64) Real { return Real(c) * x }
func (x Real) IsZero() bool { return x == 0 }
func (x Real) Float() float64 { return float64(x) }
func (x Real) Sin() Real { return Real(math.Sin(float64(x))) }
func (x Real) Tan() Real { return Real(math.Tan(float64(x))) }
func (x Real) Asin() Real { return Real(math.Asin(float64(x))) }
func (x Real) Atan() Real { return Real(math.Atan(float64(x))) }
func (x Real) Sinh() Real { return Real(math.Sinh(float64(x))) }
func (x Real) Tanh() Real { return Real(math.Tanh(float64(x))) }
func (x Real) Sqrt() Real { return Real(math.Sqrt(float64(x))) }
func (x Real) Abs() Real { return Real(math.Abs(float64(x))) }
func (x Real) Ceil() Real { return Real(math.Ceil(float64(x))) }
func (x Real) Floor() Real { return Real(math.Floor(float64(x))) }
func (x Real) Pow(p float64) Real { return Real(math.Pow(float64(x), p)) }

// String formats x in the shortest form that parses back to the same float64.
func (x Real) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 64) }

// Reals converts plain floats to Real payloads.
func Reals(v ...float64) []Real {
	out := make([]Real, len(v))
	for i, f := range v {
		out[i] = Real(f)
	}

	return out
}
