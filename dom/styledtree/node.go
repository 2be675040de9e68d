package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/stylebox/dom"
	"github.com/npillmayer/stylebox/dom/style"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	domNode        *dom.Node          // document node this styled node shadows
	computedStyles *style.PropertyMap // never nil
	children       []*StyNode
}

// NewNodeForDOMNode creates a new styled node linked to a document node.
// A nil property map is replaced by an empty one.
func NewNodeForDOMNode(n *dom.Node, styles *style.PropertyMap, children []*StyNode) *StyNode {
	if styles == nil {
		styles = style.NewPropertyMap()
	}
	sn := &StyNode{
		domNode:        n,
		computedStyles: styles,
	}
	if len(children) > 0 {
		sn.children = make([]*StyNode, len(children))
		copy(sn.children, children)
	}
	return sn
}

// DOMNode gets the document node corresponding to this styled node.
func (sn *StyNode) DOMNode() *dom.Node {
	return sn.domNode
}

// Styles returns the computed properties of a styled node.
// Clients must not modify the property map.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// Value returns the value of a property, if set for this node. No
// inheritance is performed.
func (sn *StyNode) Value(key string) (style.Value, bool) {
	return sn.computedStyles.Property(key)
}

// ChildCount returns the number of children of a styled node.
func (sn *StyNode) ChildCount() int {
	return len(sn.children)
}

// Child returns the child at position i.
func (sn *StyNode) Child(i int) (*StyNode, bool) {
	if i < 0 || i >= len(sn.children) {
		return nil, false
	}
	return sn.children[i], true
}

// Children returns the children of a styled node, in document order.
// The returned slice is a copy.
func (sn *StyNode) Children() []*StyNode {
	if len(sn.children) == 0 {
		return nil
	}
	children := make([]*StyNode, len(sn.children))
	copy(children, sn.children)
	return children
}

func (sn *StyNode) String() string {
	if sn == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s", sn.domNode, sn.computedStyles)
}
