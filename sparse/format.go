// SPDX-License-Identifier: MIT
// Package sparse: text codec.
//
// Format:
//
//	{(i0,v0), (i1,v1), ...}
//
// Indices are printed in set order; values use their own String form (Real
// uses the shortest round-tripping float form). The empty array is "{}".
// Parse accepts arbitrary spacing around tokens and values that themselves
// contain balanced parentheses and braces, so nested forms such as dual
// numbers "(v,{...})" can be read back by ParseFunc.

package sparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsead/indexset"
)

// String renders a as "{(i,v), ...}".
func (a Array[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	k := 0
	a.entries.ForEach(func(i int, v T) {
		if k > 0 {
			b.WriteString(", ")
		}
		k++
		writeEntry(&b, i, fmt.Sprint(v))
	})
	b.WriteByte('}')

	return b.String()
}

func writeEntry(b *strings.Builder, i int, v string) {
	b.WriteByte('(')
	b.WriteString(strconv.Itoa(i))
	b.WriteByte(',')
	b.WriteString(v)
	b.WriteByte(')')
}

// Format is a.String().
func Format[T Value[T]](a Array[T]) string { return a.String() }

// Parse reads a Real array written by Format.
// Errors: ErrSyntax, indexset.ErrDuplicateIndex, indexset.ErrNegativeIndex.
func Parse(s string, opts ...Option) (Array[Real], error) {
	entries, err := ParseFunc(s, func(raw string) (Real, error) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q: %w", raw, ErrSyntax)
		}
		return Real(f), nil
	})
	if err != nil {
		return Array[Real]{}, err
	}

	return FromSet(entries, opts...), nil
}

// ParseKinds reads any "{(i,v), ...}" literal and classifies each value as
// bool, int, float or dual, the last for nested "(v,{...})" values.
func ParseKinds(s string) (indexset.Set[indexset.Kind], error) {
	return ParseFunc(s, classify)
}

func classify(raw string) (indexset.Kind, error) {
	switch {
	case raw == "true" || raw == "false":
		return indexset.KindBool, nil
	case strings.HasPrefix(raw, "("):
		return indexset.KindDual, nil
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return indexset.KindInt, nil
	}
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		return indexset.KindFloat, nil
	}

	return indexset.KindBool, fmt.Errorf("value %q: %w", raw, ErrSyntax)
}

// ParseFunc reads "{(i,v), ...}" decoding each value with parse. The raw
// value text handed to parse is trimmed of surrounding spaces.
// Errors: ErrSyntax, indexset.ErrDuplicateIndex, indexset.ErrNegativeIndex,
// or whatever parse returns.
func ParseFunc[P any](s string, parse func(raw string) (P, error)) (indexset.Set[P], error) {
	sc := scanner{src: s}
	sc.skipSpace()
	if !sc.eat('{') {
		return indexset.Set[P]{}, sparseErrorf("Parse", sc.fail("expected '{'"))
	}

	var entries []indexset.Entry[P]
	sc.skipSpace()
	if !sc.eat('}') {
		for {
			e, err := parseEntry(&sc, parse)
			if err != nil {
				return indexset.Set[P]{}, sparseErrorf("Parse", err)
			}
			entries = append(entries, e)
			sc.skipSpace()
			if sc.eat('}') {
				break
			}
			if !sc.eat(',') {
				return indexset.Set[P]{}, sparseErrorf("Parse", sc.fail("expected ',' or '}'"))
			}
		}
	}
	sc.skipSpace()
	if !sc.done() {
		return indexset.Set[P]{}, sparseErrorf("Parse", sc.fail("trailing input"))
	}

	out, err := indexset.Sort(entries, indexset.ValueOrder, nil)
	if err != nil {
		return indexset.Set[P]{}, sparseErrorf("Parse", err)
	}
	if out.Len() != len(entries) {
		return indexset.Set[P]{}, sparseErrorf("Parse", indexset.ErrDuplicateIndex)
	}

	return out, nil
}

func parseEntry[P any](sc *scanner, parse func(string) (P, error)) (indexset.Entry[P], error) {
	var e indexset.Entry[P]
	sc.skipSpace()
	if !sc.eat('(') {
		return e, sc.fail("expected '('")
	}
	sc.skipSpace()
	idx, ok := sc.integer()
	if !ok {
		return e, sc.fail("expected index")
	}
	sc.skipSpace()
	if !sc.eat(',') {
		return e, sc.fail("expected ','")
	}
	raw, ok := sc.balancedUntil(')')
	if !ok {
		return e, sc.fail("unterminated entry")
	}
	p, err := parse(strings.TrimSpace(raw))
	if err != nil {
		return e, err
	}
	e.Index, e.Payload = idx, p

	return e, nil
}

// scanner is a cursor over a literal.
type scanner struct {
	src string
	pos int
}

func (sc *scanner) done() bool { return sc.pos >= len(sc.src) }

func (sc *scanner) skipSpace() {
	for !sc.done() {
		switch sc.src[sc.pos] {
		case ' ', '\t', '\n', '\r':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *scanner) eat(c byte) bool {
	if sc.done() || sc.src[sc.pos] != c {
		return false
	}
	sc.pos++

	return true
}

// integer reads an optionally signed decimal integer.
func (sc *scanner) integer() (int, bool) {
	start := sc.pos
	if !sc.done() && (sc.src[sc.pos] == '-' || sc.src[sc.pos] == '+') {
		sc.pos++
	}
	for !sc.done() && sc.src[sc.pos] >= '0' && sc.src[sc.pos] <= '9' {
		sc.pos++
	}
	n, err := strconv.Atoi(sc.src[start:sc.pos])
	if err != nil {
		sc.pos = start
		return 0, false
	}

	return n, true
}

// balancedUntil returns the text up to the first closing byte at nesting
// depth zero and consumes that byte.
func (sc *scanner) balancedUntil(closing byte) (string, bool) {
	start, depth := sc.pos, 0
	for ; !sc.done(); sc.pos++ {
		switch c := sc.src[sc.pos]; {
		case c == '(' || c == '{':
			depth++
		case depth == 0 && c == closing:
			raw := sc.src[start:sc.pos]
			sc.pos++
			return raw, true
		case c == ')' || c == '}':
			depth--
			if depth < 0 {
				return "", false
			}
		}
	}

	return "", false
}

func (sc *scanner) fail(msg string) error {
	return fmt.Errorf("%s at offset %d: %w", msg, sc.pos, ErrSyntax)
}
