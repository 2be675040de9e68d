package frame

import (
	"fmt"

	"github.com/npillmayer/stylebox/dom/style/css"
	"github.com/npillmayer/stylebox/dom/styledtree"
)

// BoxType is the type of a box in a box tree.
type BoxType uint8

// Types of boxes.
const (
	BlockBox       BoxType = iota + 1 // box for a block-level styled node
	InlineBox                         // box for an inline-level styled node
	AnonymousBlock                    // wrapper for a run of inline boxes
)

func (t BoxType) String() string {
	switch t {
	case BlockBox:
		return "block"
	case InlineBox:
		return "inline"
	case AnonymousBlock:
		return "anonymous"
	}
	return "NoBox"
}

// Symbol returns a Unicode symbol for a box type.
func (t BoxType) Symbol() string {
	switch t {
	case BlockBox:
		return css.BlockMode.Symbol()
	case InlineBox:
		return css.InlineMode.Symbol()
	case AnonymousBlock:
		return "▭"
	}
	return "?"
}

// Box is a node of a box tree. Boxes for block- and inline-level nodes
// reference the styled node they have been generated for, anonymous blocks
// don't.
//
// Box trees are immutable after construction.
type Box struct {
	boxType  BoxType
	styled   *styledtree.StyNode
	children []*Box
}

func newBox(t BoxType, sn *styledtree.StyNode) *Box {
	return &Box{boxType: t, styled: sn}
}

// Type returns the type of a box.
func (b *Box) Type() BoxType {
	return b.boxType
}

// IsAnonymous returns true for anonymous blocks.
func (b *Box) IsAnonymous() bool {
	return b.boxType == AnonymousBlock
}

// StyledNode returns the styled node a box has been generated for, or nil
// for anonymous blocks.
func (b *Box) StyledNode() *styledtree.StyNode {
	return b.styled
}

// ChildCount returns the number of children of a box.
func (b *Box) ChildCount() int {
	return len(b.children)
}

// Child returns the child box at position i.
func (b *Box) Child(i int) (*Box, bool) {
	if i < 0 || i >= len(b.children) {
		return nil, false
	}
	return b.children[i], true
}

// Children returns the child boxes of a box, in document order. The returned
// slice is a copy.
func (b *Box) Children() []*Box {
	if len(b.children) == 0 {
		return nil
	}
	children := make([]*Box, len(b.children))
	copy(children, b.children)
	return children
}

func (b *Box) lastChild() *Box {
	if len(b.children) == 0 {
		return nil
	}
	return b.children[len(b.children)-1]
}

// Dimen interprets a property of a box's styled node as a dimension.
// For anonymous blocks and unset properties the result is unset.
func (b *Box) Dimen(key string) css.DimenT {
	if b.styled == nil {
		return css.DimenT{}
	}
	v, ok := b.styled.Value(key)
	if !ok {
		return css.DimenT{}
	}
	return css.DimenFromValue(v)
}

// Walk visits a box tree in pre-order, calling f for every box together with
// its depth (0 for b). If f returns false, the children of a box are skipped.
func (b *Box) Walk(f func(box *Box, depth int) bool) {
	b.walk(f, 0)
}

func (b *Box) walk(f func(*Box, int) bool, depth int) {
	if !f(b, depth) {
		return
	}
	for _, ch := range b.children {
		ch.walk(f, depth+1)
	}
}

func (b *Box) String() string {
	if b == nil {
		return "<nil>"
	}
	if b.styled == nil {
		return fmt.Sprintf("%s %s", b.boxType.Symbol(), b.boxType)
	}
	return fmt.Sprintf("%s %s", b.boxType.Symbol(), b.styled.DOMNode())
}
