package frame

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylebox/dom"
	"github.com/npillmayer/stylebox/dom/style"
	"github.com/npillmayer/stylebox/dom/style/css"
	"github.com/npillmayer/stylebox/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/stylebox/dom/styledtree"
	tp "github.com/xlab/treeprint"
)

// styled creates a styled node for an element with a given display mode.
// An empty display mode leaves the property unset.
func styled(tag, display string, children ...*styledtree.StyNode) *styledtree.StyNode {
	pmap := style.NewPropertyMap()
	if display != "" {
		pmap.Set("display", style.Keyword(display))
	}
	return styledtree.NewNodeForDOMNode(dom.Element(tag, nil), pmap, children)
}

func outline(b *Box) string {
	printer := tp.New()
	var add func(tp.Tree, *Box)
	add = func(t tp.Tree, box *Box) {
		for _, ch := range box.Children() {
			if ch.ChildCount() == 0 {
				t.AddNode(ch.String())
			} else {
				add(t.AddBranch(ch.String()), ch)
			}
		}
	}
	add(printer.AddBranch(b.String()), b)
	return printer.String()
}

func types(boxes []*Box) []BoxType {
	var r []BoxType
	for _, b := range boxes {
		r = append(r, b.Type())
	}
	return r
}

func TestAnonymousBlockCoalescing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylebox.frame")
	defer teardown()
	//
	sn := styled("body", "block",
		styled("h1", "block"),
		styled("span", "inline"),
		styled("em", ""),
		styled("p", "block"),
	)
	root, err := BuildBoxTree(sn)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("box tree:\n%s", outline(root))
	expected := []BoxType{BlockBox, AnonymousBlock, BlockBox}
	if diff := cmp.Diff(expected, types(root.Children())); diff != "" {
		t.Fatalf("unexpected children of root (-want +got):\n%s", diff)
	}
	anon, _ := root.Child(1)
	if anon.StyledNode() != nil {
		t.Errorf("expected anonymous block not to reference a styled node")
	}
	if diff := cmp.Diff([]BoxType{InlineBox, InlineBox}, types(anon.Children())); diff != "" {
		t.Errorf("expected anonymous block to hold both inline boxes:\n%s", diff)
	}
}

func TestSeparatedInlineRunsGetSeparateWrappers(t *testing.T) {
	sn := styled("div", "block",
		styled("span", "inline"),
		styled("p", "block"),
		styled("span", "inline"),
	)
	root, err := BuildBoxTree(sn)
	if err != nil {
		t.Fatal(err)
	}
	expected := []BoxType{AnonymousBlock, BlockBox, AnonymousBlock}
	if diff := cmp.Diff(expected, types(root.Children())); diff != "" {
		t.Errorf("unexpected children of root (-want +got):\n%s", diff)
	}
}

func TestDisplayNoneIsPruned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylebox.frame")
	defer teardown()
	//
	hidden := styled("div", "none",
		styled("p", "block", styled("span", "inline")),
		styled("span", "inline"),
	)
	sn := styled("body", "block", styled("h1", "block"), hidden, styled("h2", "block"))
	root, err := BuildBoxTree(sn)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("box tree:\n%s", outline(root))
	count := 0
	root.Walk(func(b *Box, depth int) bool {
		count++
		if b.StyledNode() != nil && css.DisplayOf(b.StyledNode()) == css.DisplayNone {
			t.Errorf("expected no box for %s", b)
		}
		return true
	})
	if count != 3 {
		t.Errorf("expected 3 boxes, is %d", count)
	}
}

func TestRootDisplayNone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylebox.frame")
	defer teardown()
	//
	root, err := BuildBoxTree(styled("html", "none", styled("body", "block")))
	if !errors.Is(err, ErrUnlayoutableRoot) {
		t.Errorf("expected ErrUnlayoutableRoot, is %v", err)
	}
	if root != nil {
		t.Errorf("expected no box tree, is %s", root)
	}
	if _, err = BuildBoxTree(nil); !errors.Is(err, ErrNoStyledTree) {
		t.Errorf("expected ErrNoStyledTree, is %v", err)
	}
}

func TestInlineContentNests(t *testing.T) {
	sn := styled("span", "inline",
		styled("em", "inline"),
		styled("div", "block"),
		styled("b", ""),
	)
	root, err := BuildBoxTree(sn)
	if err != nil {
		t.Fatal(err)
	}
	if root.Type() != InlineBox {
		t.Errorf("expected inline root, is %s", root.Type())
	}
	expected := []BoxType{InlineBox, BlockBox, InlineBox}
	if diff := cmp.Diff(expected, types(root.Children())); diff != "" {
		t.Errorf("expected inline children to be appended directly:\n%s", diff)
	}
}

func TestTextNodesAreInline(t *testing.T) {
	text := styledtree.NewNodeForDOMNode(dom.Text("hello"), nil, nil)
	sn := styled("p", "block", text)
	root, err := BuildBoxTree(sn)
	if err != nil {
		t.Fatal(err)
	}
	anon, ok := root.Child(0)
	if !ok || !anon.IsAnonymous() {
		t.Fatalf("expected text to be wrapped into an anonymous block")
	}
	if box, _ := anon.Child(0); box.StyledNode() != text {
		t.Errorf("expected box for text node, is %s", box)
	}
}

func TestBuilderMaxDepth(t *testing.T) {
	sn := styled("a", "block", styled("b", "block", styled("c", "inline")))
	if _, err := NewBuilder(MaxDepth(3)).Build(sn); err != nil {
		t.Errorf("expected depth 3 to be accepted, got %v", err)
	}
	if _, err := NewBuilder(MaxDepth(2)).Build(sn); !errors.Is(err, css.ErrNestingTooDeep) {
		t.Errorf("expected ErrNestingTooDeep, is %v", err)
	}
}

func TestBoxDimen(t *testing.T) {
	pmap := style.NewPropertyMap()
	pmap.Set("display", style.Keyword("block"))
	pmap.Set("margin", style.Length(96, style.Px))
	pmap.Set("width", style.Keyword("auto"))
	root, err := BuildBoxTree(styledtree.NewNodeForDOMNode(dom.Element("div", nil), pmap,
		[]*styledtree.StyNode{styled("span", "")}))
	if err != nil {
		t.Fatal(err)
	}
	if d := root.Dimen("margin"); !d.IsAbsolute() || d.Unwrap() != css.PxToDU(96) {
		t.Errorf("expected margin of 96px, is %v", d)
	}
	if d := root.Dimen("width"); d.Match().IsKind(css.Auto()) == nil {
		t.Errorf("expected width to be auto")
	}
	if d := root.Dimen("height"); !d.IsUnset() {
		t.Errorf("expected height to be unset")
	}
	anon, _ := root.Child(0)
	if d := anon.Dimen("margin"); !d.IsUnset() {
		t.Errorf("expected anonymous block to have no dimensions")
	}
}

// Styling a document with CSS text, the box tree never holds an inline box
// directly below a block box, and every anonymous block is non-empty and
// holds inline boxes only.
func TestBoxTreeInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylebox.frame")
	defer teardown()
	//
	doc := dom.Element("body", nil,
		dom.Text("intro "),
		dom.Element("div", map[string]string{"class": "note"},
			dom.Element("span", nil, dom.Text("a")),
			dom.Element("p", nil, dom.Text("b")),
			dom.Element("span", nil, dom.Text("c")),
			dom.Element("em", nil),
		),
		dom.Element("aside", map[string]string{"id": "ad"}, dom.Element("p", nil)),
		dom.Element("p", nil, dom.Element("em", nil, dom.Element("div", nil))),
	)
	sheet, err := douceuradapter.Parse(`
	body, div, p { display: block; }
	#ad { display: none; }
	.note { margin: 4px; }
	`)
	if err != nil {
		t.Fatal(err)
	}
	root, err := BuildBoxTree(css.Resolve(doc, sheet))
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("box tree:\n%s", outline(root))
	root.Walk(func(b *Box, depth int) bool {
		for _, ch := range b.Children() {
			if b.Type() == BlockBox && ch.Type() == InlineBox {
				t.Errorf("block box %s holds inline box %s", b, ch)
			}
			if b.Type() == BlockBox && ch.Type() == AnonymousBlock {
				if ch.ChildCount() == 0 {
					t.Errorf("anonymous block below %s is empty", b)
				}
				for _, inl := range ch.Children() {
					if inl.Type() != InlineBox {
						t.Errorf("anonymous block holds non-inline %s", inl)
					}
				}
			}
		}
		if strings.Contains(b.String(), `id="ad"`) {
			t.Errorf("expected #ad to be pruned")
		}
		return true
	})
	// body: [anon{text}, div, p]
	if diff := cmp.Diff([]BoxType{AnonymousBlock, BlockBox, BlockBox}, types(root.Children())); diff != "" {
		t.Errorf("unexpected children of body:\n%s", diff)
	}
}

func TestBuildIdempotent(t *testing.T) {
	sn := styled("body", "block",
		styled("span", ""),
		styled("div", "block", styled("em", "inline")),
		styled("i", "inline"),
	)
	first, err := BuildBoxTree(sn)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := BuildBoxTree(sn)
	if diff := cmp.Diff(outline(first), outline(second)); diff != "" {
		t.Errorf("expected identical box trees:\n%s", diff)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	sn := styled("body", "block", styled("div", "block", styled("p", "block")), styled("p", "block"))
	root, _ := BuildBoxTree(sn)
	var visited []string
	root.Walk(func(b *Box, depth int) bool {
		visited = append(visited, b.StyledNode().DOMNode().TagName())
		return depth == 0
	})
	if diff := cmp.Diff([]string{"body", "div", "p"}, visited); diff != "" {
		t.Errorf("unexpected walk order:\n%s", diff)
	}
}
