// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for arrays.
//
// The only knob is the AccessMode used by MustAt (and by ad.MustDerivative):
// the checked path verifies presence and panics with ErrIndexNotFound, the
// trusted path skips the check and reads the slot the index would occupy.
// Arrays remember their mode and hand it on to every result derived from
// them (the left operand wins for binary operations unless it
// stores no entries).

package sparse

// AccessMode selects how MustAt treats an index that may be absent.
type AccessMode uint8

const (
	// Checked verifies presence; an absent index panics with ErrIndexNotFound.
	Checked AccessMode = iota

	// Trusted skips the presence check. An absent index reads the neighbouring
	// slot at the insertion position, or panics with an out-of-range error
	// when that position is past the end.
	Trusted
)

// DefaultAccessMode is the mode of arrays built without WithAccessMode.
const DefaultAccessMode = Checked

const panicAccessModeInvalid = "sparse: WithAccessMode: unknown access mode"

// String returns the mode name used in configuration files.
func (m AccessMode) String() string {
	switch m {
	case Checked:
		return "checked"
	case Trusted:
		return "trusted"
	default:
		return "unknown"
	}
}

// ParseAccessMode maps "checked"/"trusted" to an AccessMode.
func ParseAccessMode(s string) (AccessMode, error) {
	switch s {
	case "checked", "":
		return Checked, nil
	case "trusted":
		return Trusted, nil
	default:
		return Checked, sparseErrorf("ParseAccessMode("+s+")", ErrSyntax)
	}
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	mode AccessMode
}

// WithAccessMode sets the MustAt policy of the constructed array.
// Panics on a mode other than Checked or Trusted.
func WithAccessMode(m AccessMode) Option {
	if m != Checked && m != Trusted {
		panic(panicAccessModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{mode: DefaultAccessMode}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
