package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// NodeType discriminates the kinds of document nodes.
type NodeType uint8

// Kinds of document nodes.
const (
	TextNode NodeType = iota + 1
	ElementNode
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case TextNode:
		return "text"
	case ElementNode:
		return "element"
	case CommentNode:
		return "comment"
	}
	return "unknown"
}

// Node is the building block of a document tree. A node is either text,
// a comment, or an element. Only elements carry a tag name, attributes and
// children.
//
// Nodes are immutable once constructed; all accessors are read-only.
type Node struct {
	typ      NodeType
	data     string            // text content, comment content or tag name
	attrs    map[string]string // element attributes, nil for text and comments
	children []*Node
}

// Text creates a text node.
func Text(text string) *Node {
	return &Node{typ: TextNode, data: text}
}

// Comment creates a comment node.
func Comment(comment string) *Node {
	return &Node{typ: CommentNode, data: comment}
}

// Element creates an element node with a tag name, attributes and children.
// The attribute map is copied; nil children are dropped.
func Element(tag string, attrs map[string]string, children ...*Node) *Node {
	if tag == "" {
		tracer().Infof("creating element with empty tag name")
	}
	n := &Node{typ: ElementNode, data: tag}
	if len(attrs) > 0 {
		n.attrs = make(map[string]string, len(attrs))
		for k, v := range attrs {
			n.attrs[k] = v
		}
	}
	for _, ch := range children {
		if ch != nil {
			n.children = append(n.children, ch)
		}
	}
	return n
}

// Type returns the kind of node.
func (n *Node) Type() NodeType {
	return n.typ
}

// IsElement is a predicate for element nodes.
func (n *Node) IsElement() bool {
	return n != nil && n.typ == ElementNode
}

// TagName returns the tag name of an element, or "" for other nodes.
func (n *Node) TagName() string {
	if n.typ != ElementNode {
		return ""
	}
	return n.data
}

// Data returns the text of a text or comment node, or the tag name of an element.
func (n *Node) Data() string {
	return n.data
}

// Attr returns the value of an attribute, together with an indicator whether
// the attribute is present.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// AttrKeys returns the attribute keys of an element in sorted order.
func (n *Node) AttrKeys() []string {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ID returns the value of the element's `id` attribute, if any.
func (n *Node) ID() (string, bool) {
	return n.Attr("id")
}

// Classes returns the class set of an element, i.e. its `class` attribute
// split at whitespace.
func (n *Node) Classes() []string {
	c, ok := n.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(c)
}

// HasClass checks if class c is a member of the element's class set.
func (n *Node) HasClass(c string) bool {
	for _, cls := range n.Classes() {
		if cls == c {
			return true
		}
	}
	return false
}

// ChildCount returns the number of children of a node.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at position i.
func (n *Node) Child(i int) (*Node, bool) {
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// Children returns the children of a node in document order.
// The returned slice is a copy.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.typ {
	case TextNode:
		return fmt.Sprintf("#text %q", shorten(n.data))
	case CommentNode:
		return fmt.Sprintf("#comment %q", shorten(n.data))
	}
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(n.data)
	for _, k := range n.AttrKeys() {
		fmt.Fprintf(&b, " %s=%q", k, n.attrs[k])
	}
	b.WriteString(">")
	return b.String()
}

func shorten(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 20 {
		return s[:20] + "…"
	}
	return s
}

// PrettyPrint writes an indented representation of the (sub-)tree rooted
// at n to w.
func (n *Node) PrettyPrint(w io.Writer) {
	prettyPrint(n, w, 0)
}

const printTab = 2

func prettyPrint(n *Node, w io.Writer, level int) {
	indent := strings.Repeat(" ", printTab*level)
	switch n.typ {
	case TextNode, CommentNode:
		fmt.Fprintf(w, "%s%s\n", indent, n.String())
	case ElementNode:
		fmt.Fprintf(w, "%s%s\n", indent, n.String())
		for _, ch := range n.children {
			prettyPrint(ch, w, level+1)
		}
		fmt.Fprintf(w, "%s</%s>\n", indent, n.data)
	}
}
