/*
Package domdbg implements helpers to debug styled trees and box trees.

Trees may be output as an indented outline, suitable for logging and test
output, or as a diagram in GraphViz (DOT) format.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/stylebox/dom"
	"github.com/npillmayer/stylebox/dom/style"
	"github.com/npillmayer/stylebox/dom/style/css"
	"github.com/npillmayer/stylebox/dom/styledtree"
	"github.com/npillmayer/stylebox/frame"
	tp "github.com/xlab/treeprint"
)

// --- Outlines ---------------------------------------------------------

// PrintStyledTree returns an outline of a styled tree, listing the
// properties of every element.
func PrintStyledTree(sn *styledtree.StyNode) string {
	if sn == nil {
		return "<empty>\n"
	}
	printer := tp.New()
	printStyled(printer.AddBranch(styledLabel(sn)), sn)
	return printer.String()
}

func printStyled(t tp.Tree, sn *styledtree.StyNode) {
	for _, ch := range sn.Children() {
		if ch.ChildCount() == 0 {
			t.AddNode(styledLabel(ch))
		} else {
			printStyled(t.AddBranch(styledLabel(ch)), ch)
		}
	}
}

func styledLabel(sn *styledtree.StyNode) string {
	n := sn.DOMNode()
	if !n.IsElement() {
		return n.String()
	}
	return fmt.Sprintf("%s %s %s", css.DisplayOf(sn).Symbol(), n, sn.Styles())
}

// PrintBoxTree returns an outline of a box tree. Boxes are labeled with
// their dimensions, as far as they are set.
func PrintBoxTree(b *frame.Box) string {
	if b == nil {
		return "<empty>\n"
	}
	printer := tp.New()
	printBoxes(printer.AddBranch(boxLabel(b)), b)
	return printer.String()
}

func printBoxes(t tp.Tree, b *frame.Box) {
	for _, ch := range b.Children() {
		if ch.ChildCount() == 0 {
			t.AddNode(boxLabel(ch))
		} else {
			printBoxes(t.AddBranch(boxLabel(ch)), ch)
		}
	}
}

var boxDimensions = []string{"width", "height", "margin", "padding"}

func boxLabel(b *frame.Box) string {
	var sb strings.Builder
	sb.WriteString(b.String())
	for _, key := range boxDimensions {
		if d := b.Dimen(key); !d.IsUnset() {
			fmt.Fprintf(&sb, " %s=%s", key, d)
		}
	}
	return sb.String()
}

// --- GraphViz ---------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	Title    string
}

var (
	headTmpl     = template.Must(template.New("head").Parse(graphHeadTmpl))
	styledTmpl   = template.Must(template.New("stynode").Funcs(funcs).Parse(styledNodeTmpl))
	boxTmpl      = template.Must(template.New("box").Funcs(funcs).Parse(boxNodeTmpl))
	edgeTmpl     = template.Must(template.New("edge").Parse(treeEdgeTmpl))
	propertyTmpl = template.Must(template.New("props").Parse(propertiesTmpl))
)

var funcs = template.FuncMap{
	"shortstring": shortText,
}

type node struct {
	Name string
	N    *dom.Node
}

type boxnode struct {
	Name string
	B    *frame.Box
}

type props struct {
	Name, Owner string
	Properties  []style.KeyValue
}

type edge struct {
	From, To string
}

// StyledTreeToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Every element is connected to a table of its
// properties.
func StyledTreeToGraphViz(sn *styledtree.StyNode, w io.Writer) error {
	if err := headTmpl.Execute(w, graphParamsType{Fontname: "Helvetica", Title: "styled tree"}); err != nil {
		return err
	}
	if sn != nil {
		count := 0
		if _, err := styledNodes(sn, w, &count); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func styledNodes(sn *styledtree.StyNode, w io.Writer, count *int) (string, error) {
	*count++
	name := fmt.Sprintf("node%05d", *count)
	if err := styledTmpl.Execute(w, node{name, sn.DOMNode()}); err != nil {
		return name, err
	}
	if sn.DOMNode().IsElement() && sn.Styles().Size() > 0 {
		p := props{Name: name + "p", Owner: name, Properties: sn.Styles().Properties()}
		if err := propertyTmpl.Execute(w, p); err != nil {
			return name, err
		}
	}
	for _, ch := range sn.Children() {
		chname, err := styledNodes(ch, w, count)
		if err != nil {
			return name, err
		}
		if err = edgeTmpl.Execute(w, edge{name, chname}); err != nil {
			return name, err
		}
	}
	return name, nil
}

// BoxTreeToGraphViz outputs a diagram for a box tree. The diagram is in
// GraphViz (DOT) format. Anonymous blocks are drawn with dashed outlines.
func BoxTreeToGraphViz(b *frame.Box, w io.Writer) error {
	if err := headTmpl.Execute(w, graphParamsType{Fontname: "Helvetica", Title: "box tree"}); err != nil {
		return err
	}
	if b != nil {
		count := 0
		if _, err := boxNodes(b, w, &count); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func boxNodes(b *frame.Box, w io.Writer, count *int) (string, error) {
	*count++
	name := fmt.Sprintf("box%05d", *count)
	if err := boxTmpl.Execute(w, boxnode{name, b}); err != nil {
		return name, err
	}
	for _, ch := range b.Children() {
		chname, err := boxNodes(ch, w, count)
		if err != nil {
			return name, err
		}
		if err = edgeTmpl.Execute(w, edge{name, chname}); err != nil {
			return name, err
		}
	}
	return name, nil
}

func shortText(n *dom.Node) string {
	s := n.Data()
	if len(s) > 10 {
		s = s[:10] + "..."
	}
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\\n`)
	s = strings.ReplaceAll(s, "\t", `\\t`)
	s = strings.ReplaceAll(s, " ", "␣")
	return `"\"` + s + `\""`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="{{ .Title }}" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const styledNodeTmpl = `{{ if .N.IsElement }}{{ .Name }}	[ label={{ printf "%q" .N.TagName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}`

const boxNodeTmpl = `{{ if .B.IsAnonymous }}{{ .Name }}	[ label="{{ .B.Type }}" shape=box style=dashed ] ;
{{ else }}{{ .Name }}	[ label={{ printf "%q" .B.StyledNode.DOMNode.String }} shape=box style="filled,rounded" fillcolor={{ if eq .B.Type.String "block" }}lightblue3{{ else }}ivory3{{ end }} ] ;
{{ end }}`

const propertiesTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Properties }}<tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}</table>> ] ;
{{ .Owner }} -> {{ .Name }} [dir=none weight=1 style="dashed"] ;
`

const treeEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`
