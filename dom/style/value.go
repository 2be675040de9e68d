package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// ValueKind discriminates the variants of a Value.
type ValueKind uint8

// Kinds of style values. The zero value is not a legal kind.
const (
	NoValue ValueKind = iota
	KeywordValue
	LengthValue
	ColorValue
)

// Unit is a unit for lengths. Pixels are the only unit recognized.
type Unit uint8

// Units for length values.
const (
	Px Unit = iota + 1
)

func (u Unit) String() string {
	if u == Px {
		return "px"
	}
	return "?"
}

// Value is a value of a CSS property. It is one of
//
//     Keyword  string
//     Length   number and unit
//     Color    non-premultiplied RGBA color
//
// Values are small and are passed around by value.
type Value struct {
	kind    ValueKind
	keyword string
	length  float64
	unit    Unit
	color   color.NRGBA
}

// NullValue is the empty value, returned for unset properties.
var NullValue = Value{}

// Keyword creates a keyword value, e.g. for `display: block`.
func Keyword(k string) Value {
	return Value{kind: KeywordValue, keyword: k}
}

// Length creates a length value, e.g. for `margin-top: 10px`.
func Length(l float64, u Unit) Value {
	return Value{kind: LengthValue, length: l, unit: u}
}

// Color creates a color value.
func Color(c color.NRGBA) Value {
	return Value{kind: ColorValue, color: c}
}

// Kind returns the variant of a value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsEmpty checks wether a value is the null value.
func (v Value) IsEmpty() bool {
	return v.kind == NoValue
}

// Keyword returns the keyword of a keyword value.
func (v Value) Keyword() (string, bool) {
	return v.keyword, v.kind == KeywordValue
}

// Length returns number and unit of a length value.
func (v Value) Length() (float64, Unit, bool) {
	return v.length, v.unit, v.kind == LengthValue
}

// Color returns the color of a color value.
func (v Value) Color() (color.NRGBA, bool) {
	return v.color, v.kind == ColorValue
}

func (v Value) String() string {
	switch v.kind {
	case KeywordValue:
		return v.keyword
	case LengthValue:
		return strconv.FormatFloat(v.length, 'f', -1, 64) + v.unit.String()
	case ColorValue:
		c := v.color
		if c.A == 0xff {
			return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		}
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return ""
}

// ParseValue creates a value from the raw text of a declaration:
//
//     10px     => Length(10, Px)
//     #cc0000  => Color(RGBA{0xcc, 0, 0, 0xff})
//     auto     => Keyword("auto")
//
// Hex colors with an unrecognized form and lengths with a non-numeric
// prefix are kept as (opaque) keywords. ParseValue never fails.
func ParseValue(raw string) Value {
	raw = strings.TrimSpace(raw)
	if strings.HasSuffix(raw, "px") {
		if l, err := strconv.ParseFloat(strings.TrimSuffix(raw, "px"), 64); err == nil && !math.IsInf(l, 0) && !math.IsNaN(l) {
			return Length(l, Px)
		}
		tracer().Debugf("value %q is not a length, keeping it as keyword", raw)
	} else if strings.HasPrefix(raw, "#") {
		if c, err := csscolorparser.Parse(raw); err == nil {
			return Color(rgba(c))
		}
		tracer().Debugf("value %q is not a hex color, keeping it as keyword", raw)
	}
	return Keyword(raw)
}

func rgba(c csscolorparser.Color) color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}
