package css

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/stylebox/dom"
	"github.com/npillmayer/stylebox/dom/style"
	"github.com/npillmayer/stylebox/dom/style/cssom"
	"github.com/npillmayer/stylebox/dom/styledtree"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyDocument is returned if a resolver is called without a document.
var ErrEmptyDocument = errors.New("cannot style empty document")

// ErrNestingTooDeep is returned if a tree is nested deeper than a configured
// maximum depth.
var ErrNestingTooDeep = errors.New("tree nesting exceeds maximum depth")

// --- Matching --------------------------------------------------------------

// Matches checks if a simple selector matches a document node.
//
// A tag name or id in the selector has to be equal to the element's tag name
// or `id` attribute, respectively. Every class of the selector has to be
// present in the element's class set. Absent constraints impose no
// restriction. Non-element nodes never match.
func Matches(sel cssom.Selector, n *dom.Node) bool {
	if !n.IsElement() {
		return false
	}
	if sel.Tag != "" && sel.Tag != n.TagName() {
		return false
	}
	if sel.ID != "" {
		if id, ok := n.ID(); !ok || id != sel.ID {
			return false
		}
	}
	if len(sel.Classes) > 0 {
		classes := n.Classes()
		for _, required := range sel.Classes {
			if !contains(classes, required) {
				return false
			}
		}
	}
	return true
}

func contains(set []string, s string) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}

// MatchedRule is a rule matching an element, together with the specificity
// of the selector which matched.
type MatchedRule struct {
	Specificity cssom.Specificity
	Rule        *cssom.Rule
}

// MatchRule checks if any selector of a rule matches an element. If it does,
// the specificity of the first matching selector is returned.
func MatchRule(n *dom.Node, rule *cssom.Rule) (cssom.Specificity, bool) {
	for _, sel := range rule.Selectors() {
		if Matches(sel, n) {
			return sel.Specificity(), true
		}
	}
	return cssom.Specificity{}, false
}

// MatchingRules finds all rules of a stylesheet matching an element, in
// stylesheet order.
func MatchingRules(n *dom.Node, sheet *cssom.StyleSheet) []MatchedRule {
	var matched []MatchedRule
	for _, rule := range sheet.Rules() {
		if sp, ok := MatchRule(n, rule); ok {
			matched = append(matched, MatchedRule{Specificity: sp, Rule: rule})
		}
	}
	return matched
}

// ElementProperties merges the declarations of all rules matching an element
// into a new property map. Rules are applied in order of ascending specificity,
// rules of equal specificity in stylesheet order. Later declarations overwrite
// earlier ones.
func ElementProperties(n *dom.Node, sheet *cssom.StyleSheet) *style.PropertyMap {
	matched := MatchingRules(n, sheet)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Specificity.Less(matched[j].Specificity)
	})
	pmap := style.NewPropertyMap()
	for _, m := range matched {
		for _, d := range m.Rule.Declarations() {
			pmap.Set(d.Property, d.Value)
		}
	}
	if len(matched) > 0 {
		tracer().Debugf("%s matched %d rules: %s", n, len(matched), pmap)
	}
	return pmap
}

// --- Resolver --------------------------------------------------------------

// Resolve walks a document tree and applies a stylesheet to create a styled
// tree. Resolve is a pure function of its inputs and never fails; for a nil
// document it returns nil.
//
// For limiting the depth of documents or for concurrent styling, use a Resolver.
func Resolve(root *dom.Node, sheet *cssom.StyleSheet) *styledtree.StyNode {
	sn, err := NewResolver(sheet).Resolve(root)
	if err != nil { // only possible for nil documents
		return nil
	}
	return sn
}

// Resolver creates styled trees from document trees.
//
// A Resolver never modifies the stylesheet or any document tree and may be
// used by multiple goroutines.
type Resolver struct {
	sheet    *cssom.StyleSheet
	maxDepth int // maximum nesting depth, 0 for unlimited
	workers  int // max. number of goroutines to style sibling subtrees
}

// Option configures a Resolver.
type Option func(*Resolver)

// MaxDepth limits the nesting depth of documents to style. A document nested
// deeper will be rejected with ErrNestingTooDeep. n ≤ 0 means unlimited,
// which is the default.
func MaxDepth(n int) Option {
	return func(r *Resolver) {
		r.maxDepth = n
	}
}

// Workers sets the number of goroutines used to style the subtrees of the
// root's children concurrently. The resulting styled tree is identical to
// the one created sequentially. Default is 1.
func Workers(n int) Option {
	return func(r *Resolver) {
		r.workers = n
	}
}

// NewResolver creates a resolver for a stylesheet. A nil stylesheet
// is treated as an empty one.
func NewResolver(sheet *cssom.StyleSheet, opts ...Option) *Resolver {
	r := &Resolver{sheet: sheet, workers: 1}
	for _, opt := range opts {
		opt(r)
	}
	if r.sheet == nil {
		r.sheet = cssom.NewStyleSheet()
	}
	return r
}

// Resolve creates a styled tree for a document tree. The styled tree
// mirrors the document tree node by node.
func (r *Resolver) Resolve(root *dom.Node) (*styledtree.StyNode, error) {
	if root == nil {
		return nil, ErrEmptyDocument
	}
	tracer().Debugf("styling document %s with %d rules", root, len(r.sheet.Rules()))
	if r.workers > 1 && root.ChildCount() > 1 {
		return r.resolveConcurrently(root)
	}
	return r.resolve(root, 1)
}

func (r *Resolver) resolve(n *dom.Node, depth int) (*styledtree.StyNode, error) {
	if r.maxDepth > 0 && depth > r.maxDepth {
		return nil, fmt.Errorf("%w: %d at %s", ErrNestingTooDeep, r.maxDepth, n)
	}
	var children []*styledtree.StyNode
	if n.ChildCount() > 0 {
		children = make([]*styledtree.StyNode, n.ChildCount())
		for i, ch := range n.Children() {
			sn, err := r.resolve(ch, depth+1)
			if err != nil {
				return nil, err
			}
			children[i] = sn
		}
	}
	return styledtree.NewNodeForDOMNode(n, r.properties(n), children), nil
}

// resolveConcurrently styles every subtree below the root in its own task.
// Tasks share read access to the stylesheet and the document only.
func (r *Resolver) resolveConcurrently(root *dom.Node) (*styledtree.StyNode, error) {
	if r.maxDepth == 1 {
		return nil, fmt.Errorf("%w: %d at %s", ErrNestingTooDeep, r.maxDepth, root)
	}
	domChildren := root.Children()
	children := make([]*styledtree.StyNode, len(domChildren))
	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, ch := range domChildren {
		i, ch := i, ch
		g.Go(func() error {
			sn, err := r.resolve(ch, 2)
			if err != nil {
				return err
			}
			children[i] = sn // every task writes its own slot
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return styledtree.NewNodeForDOMNode(root, r.properties(root), children), nil
}

func (r *Resolver) properties(n *dom.Node) *style.PropertyMap {
	if !n.IsElement() {
		return style.NewPropertyMap()
	}
	return ElementProperties(n, r.sheet)
}
