package css

import (
	"fmt"

	"github.com/npillmayer/stylebox/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	flags uint32
}

/*
type DimenT
	= Unset
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
*/

// Auto creates a CSS dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// PxToDU converts CSS pixels to design units. A CSS pixel is 1/96 inch.
func PxToDU(px float64) dimen.DU {
	return dimen.DU(px * 72.27 / 96 * float64(dimen.PT))
}

// DimenFromValue interprets a style value as a dimension. Pixel lengths
// convert to fixed dimensions, keywords `auto`, `inherit` and `initial`
// to their respective kinds. Every other value results in an unset
// dimension.
func DimenFromValue(v style.Value) DimenT {
	if l, u, ok := v.Length(); ok && u == style.Px {
		return JustDimen(PxToDU(l))
	}
	k, _ := v.Keyword()
	switch k {
	case "auto":
		return Auto()
	case "inherit":
		return Inherit()
	case "initial":
		return Initial()
	}
	return DimenT{}
}

// IsUnset returns true if d does not represent a dimension.
func (d DimenT) IsUnset() bool {
	return d.flags&kindMask == dimenNone
}

// IsAbsolute returns true if d represents a fixed dimension.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// Unwrap returns the fixed value of d, or 0 for other kinds of dimensions.
func (d DimenT) Unwrap() dimen.DU {
	if d.IsAbsolute() {
		return d.d
	}
	return 0
}

// String returns a fixed dimension in points, other kinds by name.
func (d DimenT) String() string {
	var du dimen.DU
	if d.Match().Just(&du) != nil {
		return fmt.Sprintf("%.2fpt", float64(du)/float64(dimen.PT))
	}
	return DimenPattern[string](d).OneOf(DimenPatterns[string]{
		Unset:   "unset",
		Auto:    "auto",
		Inherit: "inherit",
		Initial: "initial",
		Default: "?",
	})
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on a dimension, e.g.
//
//     switch m := d.Match(); m {
//     case m.Just(&du):
//         …
//     case m.IsKind(css.Auto()):
//         …
//     }
//
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is part of pattern matching for dimensions.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	if (m.dimen.flags & kindMask) == (d.flags & kindMask) {
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts the value into du, if non-nil.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds a result value for every kind of dimension.
type DimenPatterns[T any] struct {
	Unset   T
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

// DimenPattern starts an expression match on a dimension.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is part of expression matching for dimensions and intended to be
// instantiated using `DimenPattern()` only.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern value matching the kind of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenNone:
		return patterns.Unset
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}
