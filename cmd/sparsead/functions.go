package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/sparsead/ad"
	"github.com/katalvlaran/sparsead/sparse"
)

// builtin is a named differentiable function with its sample points.
type builtin struct {
	vars int
	f    ad.Func
}

// builtins are the functions known to verify and grad.
var builtins = map[string]builtin{
	"product": {vars: 2, f: func(x []ad.Dual) ad.Dual {
		return ad.Mul(x[0], x[1])
	}},
	"rosenbrock": {vars: 2, f: func(x []ad.Dual) ad.Dual {
		a := ad.ScalarSub(1, x[0])
		b := ad.Sub(x[1], ad.PowInt(x[0], 2))
		return ad.Add(ad.Mul(a, a), ad.MulScalar(ad.Mul(b, b), 100))
	}},
	"trig": {vars: 3, f: func(x []ad.Dual) ad.Dual {
		return ad.Add(ad.Mul(ad.Sin(x[0]), ad.Cos(x[1])), ad.Atan(ad.Tanh(x[2])))
	}},
	"softplus": {vars: 1, f: func(x []ad.Dual) ad.Dual {
		return ad.Log(ad.AddScalar(ad.Exp(x[0]), 1))
	}},
	"power": {vars: 2, f: func(x []ad.Dual) ad.Dual {
		return ad.Add(ad.Pow(x[0], x[1]), ad.Hypot(x[0], x[1]))
	}},
	"norm": {vars: 3, f: func(x []ad.Dual) ad.Dual {
		v := sparse.MustFromPairs([]int{0, 1, 2}, x)
		return ad.Sqrt(sparse.Dot(v, v))
	}},
}

func builtinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func lookupBuiltin(name string) (builtin, error) {
	b, ok := builtins[name]
	if !ok {
		return builtin{}, fmt.Errorf("unknown function %q (known: %s)", name, strings.Join(builtinNames(), ", "))
	}

	return b, nil
}

// samplePoints returns n deterministic points in [0.5, 1.5)^vars.
func samplePoints(vars, n int) [][]float64 {
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = make([]float64, vars)
		for k := range pts[i] {
			pts[i][k] = 0.5 + float64((i*7+k*3)%n)/float64(n)
		}
	}

	return pts
}
