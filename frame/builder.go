package frame

import (
	"errors"
	"fmt"

	"github.com/npillmayer/stylebox/dom/style/css"
	"github.com/npillmayer/stylebox/dom/styledtree"
)

// ErrUnlayoutableRoot is returned if the root of a styled tree has display
// mode `none`.
var ErrUnlayoutableRoot = errors.New("root of styled tree has display:none")

// ErrNoStyledTree is returned for a nil styled tree.
var ErrNoStyledTree = errors.New("cannot build box tree without styled tree")

// BuildBoxTree creates a box tree for a styled tree, without limiting the
// depth of the tree.
func BuildBoxTree(sn *styledtree.StyNode) (*Box, error) {
	return NewBuilder().Build(sn)
}

// Builder creates box trees from styled trees.
type Builder struct {
	maxDepth int
}

// Option configures a Builder.
type Option func(*Builder)

// MaxDepth limits the nesting depth of styled trees. A styled tree nested
// deeper will be rejected with css.ErrNestingTooDeep. n ≤ 0 means
// unlimited, which is the default.
func MaxDepth(n int) Option {
	return func(b *Builder) {
		b.maxDepth = n
	}
}

// NewBuilder creates a box tree builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build creates a box tree for a styled tree. If the root of the styled tree
// has display mode `none`, Build returns ErrUnlayoutableRoot and no tree.
func (b *Builder) Build(sn *styledtree.StyNode) (*Box, error) {
	if sn == nil {
		return nil, ErrNoStyledTree
	}
	var root *Box
	switch d := css.DisplayOf(sn); d {
	case css.DisplayNone:
		tracer().Errorf("cannot build box tree for %s", sn.DOMNode())
		return nil, fmt.Errorf("%w: %s", ErrUnlayoutableRoot, sn.DOMNode())
	case css.BlockMode:
		root = newBox(BlockBox, sn)
	default:
		root = newBox(InlineBox, sn)
	}
	if err := b.buildChildren(root, sn, 1); err != nil {
		return nil, err
	}
	return root, nil
}

// buildChildren creates boxes for the children of sn and attaches them to
// box, which has been generated for sn.
func (b *Builder) buildChildren(box *Box, sn *styledtree.StyNode, depth int) error {
	if b.maxDepth > 0 && depth > b.maxDepth {
		return fmt.Errorf("%w: %d at %s", css.ErrNestingTooDeep, b.maxDepth, sn.DOMNode())
	}
	for _, ch := range sn.Children() {
		var chbox *Box
		switch d := css.DisplayOf(ch); d {
		case css.DisplayNone:
			tracer().Debugf("pruning %s", ch.DOMNode())
			continue
		case css.BlockMode:
			chbox = newBox(BlockBox, ch)
		default:
			chbox = newBox(InlineBox, ch)
		}
		if err := b.buildChildren(chbox, ch, depth+1); err != nil {
			return err
		}
		box.attach(chbox)
	}
	return nil
}

// attach appends a child box. Inline boxes below a block box are wrapped into
// an anonymous block, coalescing consecutive inline boxes.
func (b *Box) attach(child *Box) {
	if child.boxType != InlineBox || b.boxType != BlockBox {
		b.children = append(b.children, child)
		return
	}
	if last := b.lastChild(); last != nil && last.boxType == AnonymousBlock {
		last.children = append(last.children, child)
		return
	}
	anon := newBox(AnonymousBlock, nil)
	anon.children = append(anon.children, child)
	b.children = append(b.children, anon)
}
