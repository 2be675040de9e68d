package css

import (
	"github.com/npillmayer/stylebox/dom/style"
	"github.com/npillmayer/stylebox/dom/styledtree"
)

// DisplayMode is a type for CSS property "display".
//
// Only the outer display modes relevant for building boxes are supported:
// block, inline and none.
type DisplayMode uint16

// Flags for display mode.
const (
	NoMode      DisplayMode = iota   // unset or error condition
	DisplayNone DisplayMode = 0x0001 // CSS display = none
	BlockMode   DisplayMode = 0x0002 // CSS block context
	InlineMode  DisplayMode = 0x0004 // CSS inline context
)

// IsBlockLevel return true if it has a display mode of BlockMode.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp == BlockMode
}

// IsInlineLevel return true if it has a display mode of InlineMode.
func (disp DisplayMode) IsInlineLevel() bool {
	return disp == InlineMode
}

func (disp DisplayMode) String() string {
	switch disp {
	case DisplayNone:
		return "none"
	case BlockMode:
		return "block"
	case InlineMode:
		return "inline"
	}
	return "NoMode"
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	switch disp {
	case BlockMode:
		return "▩"
	case InlineMode:
		return "►"
	case DisplayNone:
		return "∅"
	}
	return "?"
}

// ParseDisplay returns the display mode for a value of property "display".
//
// Keyword `block` results in BlockMode and `none` in DisplayNone. Every other
// value, including the null value for an unset property, results in InlineMode.
func ParseDisplay(v style.Value) DisplayMode {
	k, ok := v.Keyword()
	if !ok {
		return InlineMode
	}
	switch k {
	case "block":
		return BlockMode
	case "none":
		return DisplayNone
	}
	return InlineMode
}

// DisplayOf returns the display mode of a styled node.
func DisplayOf(sn *styledtree.StyNode) DisplayMode {
	v, _ := sn.Value("display")
	return ParseDisplay(v)
}
