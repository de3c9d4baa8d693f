package ad

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsead/sparse"
)

// String renders d as "(value,{(i,d_i), ...})" with shortest round-tripping
// floats.
func (d Dual) String() string {
	return "(" + strconv.FormatFloat(d.value, 'g', -1, 64) + "," + d.deriv.String() + ")"
}

// Format is d.String().
func Format(d Dual) string { return d.String() }

// Parse reads a dual written by Format.
// Errors: ErrSyntax, plus the sparse.Parse errors for the derivative part.
func Parse(s string, opts ...sparse.Option) (Dual, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return Dual{}, adErrorf("Parse", ErrSyntax)
	}
	body := s[1 : len(s)-1]
	comma := strings.IndexByte(body, ',')
	if comma < 0 {
		return Dual{}, adErrorf("Parse", ErrSyntax)
	}
	raw := strings.TrimSpace(body[:comma])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Dual{}, adErrorf("Parse", fmt.Errorf("value %q: %w", raw, ErrSyntax))
	}
	deriv, err := sparse.Parse(body[comma+1:], opts...)
	if err != nil {
		return Dual{}, adErrorf("Parse", err)
	}

	return Dual{value: v, deriv: deriv}, nil
}
