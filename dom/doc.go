/*
Package dom implements the document tree the styling engine works on.

Overview

A document is a tree of nodes, each either text, a comment, or an element
with a tag name and an unordered set of attributes. Document trees are
produced by a markup parser (see package htmladapter for an adapter to
golang.org/x/net/html) and are read-only for all later stages: styling
borrows document nodes, it never modifies them.

Styling and layout of HTML/CSS involves a lot of operations on different
trees. The document tree is the first of them, followed by the styled tree
(package styledtree) and the box tree (package frame). Every later tree
references nodes of the earlier ones, never the other way round.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylebox.dom'.
func tracer() tracing.Trace {
	return tracing.Select("stylebox.dom")
}
