/*
Package htmladapter converts HTML parse trees of golang.org/x/net/html into
document trees of package dom.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmladapter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylebox/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'stylebox.dom'.
func tracer() tracing.Trace {
	return tracing.Select("stylebox.dom")
}

// ErrNoRootElement is returned if an HTML input does not yield a root element.
var ErrNoRootElement = errors.New("html input has no root element")

// Parse parses an HTML document and returns its <html> element as a document
// tree.
//
// The HTML5 parsing algorithm repairs malformed input instead of rejecting it,
// so Parse fails only if reading fails or no root element is produced.
func Parse(r io.Reader) (*dom.Node, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	root := Convert(h)
	if root == nil {
		return nil, ErrNoRootElement
	}
	return root, nil
}

// ParseFragment parses an HTML fragment with exactly one top-level element,
// e.g. `<div>Hello <span>World</span></div>`, and returns this element.
// Whitespace text and comments around the element are ignored.
func ParseFragment(r io.Reader) (*dom.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, fmt.Errorf("parsing html fragment: %w", err)
	}
	var root *dom.Node
	for _, h := range nodes {
		switch h.Type {
		case html.ElementNode:
			if root != nil {
				return nil, fmt.Errorf("html fragment has more than one top-level element")
			}
			root = Convert(h)
		case html.TextNode:
			if strings.TrimSpace(h.Data) != "" {
				return nil, fmt.Errorf("html fragment has top-level text %q", h.Data)
			}
		}
	}
	if root == nil {
		return nil, ErrNoRootElement
	}
	return root, nil
}

// Convert converts an HTML parse tree into a document tree.
//
// Elements, text and comments are converted 1:1. A document node is
// replaced by its first element child. Doctype nodes and other node kinds
// are dropped. Convert returns nil if nothing convertible is found.
func Convert(h *html.Node) *dom.Node {
	if h == nil {
		return nil
	}
	switch h.Type {
	case html.DocumentNode:
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode {
				return Convert(ch)
			}
		}
		return nil
	case html.TextNode:
		return dom.Text(h.Data)
	case html.CommentNode:
		return dom.Comment(h.Data)
	case html.ElementNode:
		var attrs map[string]string
		if len(h.Attr) > 0 {
			attrs = make(map[string]string, len(h.Attr))
			for _, a := range h.Attr {
				attrs[a.Key] = a.Val
			}
		}
		var children []*dom.Node
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if n := Convert(ch); n != nil {
				children = append(children, n)
			}
		}
		return dom.Element(h.Data, attrs, children...)
	}
	tracer().Debugf("dropping html node of type %d", h.Type)
	return nil
}

// ExtractStyleElements visits a document tree and collects the content of
// every embedded <style> element, in document order.
func ExtractStyleElements(root *dom.Node) []string {
	var css []string
	var visit func(*dom.Node)
	visit = func(n *dom.Node) {
		if !n.IsElement() {
			return
		}
		if n.TagName() == "style" {
			var b strings.Builder
			for _, ch := range n.Children() {
				if ch.Type() == dom.TextNode {
					b.WriteString(ch.Data())
				}
			}
			css = append(css, b.String())
			return
		}
		for _, ch := range n.Children() {
			visit(ch)
		}
	}
	if root != nil {
		visit(root)
	}
	return css
}
