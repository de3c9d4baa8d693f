package ad

import "math"

// Sqrt returns √x; d√x = dx/(2√x).
func Sqrt(x Dual) Dual {
	s := math.Sqrt(x.value)

	return Unary(x, s, 0.5/s)
}

// Exp returns eˣ.
func Exp(x Dual) Dual {
	e := math.Exp(x.value)

	return Unary(x, e, e)
}

// Log returns ln x.
func Log(x Dual) Dual {
	return Unary(x, math.Log(x.value), 1/x.value)
}

// Log10 returns log₁₀ x.
func Log10(x Dual) Dual {
	return Unary(x, math.Log10(x.value), 1/(x.value*math.Ln10))
}

// Sin returns sin x.
func Sin(x Dual) Dual {
	s, c := math.Sincos(x.value)

	return Unary(x, s, c)
}

// Cos returns cos x.
func Cos(x Dual) Dual {
	s, c := math.Sincos(x.value)

	return Unary(x, c, -s)
}

// Tan returns tan x; d tan x = dx/cos²x.
func Tan(x Dual) Dual {
	c := math.Cos(x.value)

	return Unary(x, math.Tan(x.value), 1/(c*c))
}

// Asin returns arcsin x.
func Asin(x Dual) Dual {
	return Unary(x, math.Asin(x.value), 1/math.Sqrt(1-x.value*x.value))
}

// Acos returns arccos x.
func Acos(x Dual) Dual {
	return Unary(x, math.Acos(x.value), -1/math.Sqrt(1-x.value*x.value))
}

// Atan returns arctan x.
func Atan(x Dual) Dual {
	return Unary(x, math.Atan(x.value), 1/(1+x.value*x.value))
}

// Sinh returns sinh x.
func Sinh(x Dual) Dual {
	return Unary(x, math.Sinh(x.value), math.Cosh(x.value))
}

// Cosh returns cosh x.
func Cosh(x Dual) Dual {
	return Unary(x, math.Cosh(x.value), math.Sinh(x.value))
}

// Tanh returns tanh x; d tanh x = (1 − tanh²x)·dx.
func Tanh(x Dual) Dual {
	t := math.Tanh(x.value)

	return Unary(x, t, 1-t*t)
}

// Abs returns |x|. The derivative is sign(x), taken as 0 at x = 0.
func Abs(x Dual) Dual {
	var sign float64
	switch {
	case x.value > 0:
		sign = 1
	case x.value < 0:
		sign = -1
	}

	return Unary(x, math.Abs(x.value), sign)
}

// Ceil returns ⌈x⌉. The derivative keeps x's shape with zero coefficients.
func Ceil(x Dual) Dual {
	return Unary(x, math.Ceil(x.value), 0)
}

// Floor returns ⌊x⌋. The derivative keeps x's shape with zero coefficients.
func Floor(x Dual) Dual {
	return Unary(x, math.Floor(x.value), 0)
}

// PowInt returns xⁿ. For n = 0 the value is 1 and the derivative keeps x's
// shape with zero coefficients. At x = 0 with n < 0 the value is infinite,
// following math.Pow.
func PowInt(x Dual, n int) Dual {
	if n == 0 {
		return Unary(x, 1, 0)
	}

	return Unary(x, math.Pow(x.value, float64(n)), float64(n)*math.Pow(x.value, float64(n-1)))
}

// PowReal returns xᵖ for a constant exponent.
func PowReal(x Dual, p float64) Dual {
	if p == 0 {
		return Unary(x, 1, 0)
	}
	pm1 := math.Pow(x.value, p-1)

	return Unary(x, math.Pow(x.value, p), p*pm1)
}

// Pow returns xʸ with both base and exponent carrying derivatives:
// d(xʸ) = y·xʸ⁻¹·dx + xʸ·ln x·dy.
func Pow(x, y Dual) Dual {
	if y.deriv.IsEmpty() {
		return PowReal(x, y.value)
	}
	v := math.Pow(x.value, y.value)
	var fy float64
	if v != 0 {
		fy = v * math.Log(x.value)
	}

	return Binary(x, y, v, y.value*math.Pow(x.value, y.value-1), fy)
}

// Atan2 returns atan2(y, x).
func Atan2(y, x Dual) Dual {
	r2 := x.value*x.value + y.value*y.value

	return Binary(y, x, math.Atan2(y.value, x.value), x.value/r2, -y.value/r2)
}

// Hypot returns √(a²+b²).
func Hypot(a, b Dual) Dual {
	h := math.Hypot(a.value, b.value)

	return Binary(a, b, h, a.value/h, b.value/h)
}

// Mod returns the remainder of a/b with the sign of a, as math.Mod;
// d mod(a,b) = da − trunc(a/b)·db.
func Mod(a, b Dual) Dual {
	return Binary(a, b, math.Mod(a.value, b.value), 1, -math.Trunc(a.value/b.value))
}

// Max returns the operand with the larger value. The derivative spans both
// shapes, with zero coefficients for the operand not chosen.
func Max(a, b Dual) Dual {
	if a.value >= b.value {
		return Binary(a, b, a.value, 1, 0)
	}

	return Binary(a, b, b.value, 0, 1)
}

// Min returns the operand with the smaller value, shaped like Max.
func Min(a, b Dual) Dual {
	if a.value <= b.value {
		return Binary(a, b, a.value, 1, 0)
	}

	return Binary(a, b, b.value, 0, 1)
}
