package css

import (
	"testing"

	"github.com/npillmayer/stylebox/dom"
	"github.com/npillmayer/stylebox/dom/style"
	"github.com/npillmayer/stylebox/dom/styledtree"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestParseDisplay(t *testing.T) {
	for _, tc := range []struct {
		v    style.Value
		mode DisplayMode
	}{
		{style.Keyword("block"), BlockMode},
		{style.Keyword("none"), DisplayNone},
		{style.Keyword("inline"), InlineMode},
		{style.Keyword("flex"), InlineMode},
		{style.NullValue, InlineMode},
		{style.Length(3, style.Px), InlineMode},
	} {
		if m := ParseDisplay(tc.v); m != tc.mode {
			t.Errorf("expected display %v to be %s, is %s", tc.v, tc.mode, m)
		}
	}
}

func TestDisplayOf(t *testing.T) {
	pmap := style.NewPropertyMap()
	pmap.Set("display", style.Keyword("block"))
	sn := styledtree.NewNodeForDOMNode(dom.Element("div", nil), pmap, nil)
	if d := DisplayOf(sn); !d.IsBlockLevel() {
		t.Errorf("expected block level, is %s", d)
	}
	sn = styledtree.NewNodeForDOMNode(dom.Text("x"), nil, nil)
	if d := DisplayOf(sn); !d.IsInlineLevel() {
		t.Errorf("expected text to be inline level, is %s", d)
	}
	if BlockMode.Symbol() == InlineMode.Symbol() {
		t.Errorf("expected different symbols for block and inline")
	}
}

func TestDimenFromValue(t *testing.T) {
	d := DimenFromValue(style.Length(96, style.Px))
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
		pt := 72.27 * float64(dimen.PT)
		if diff := du - dimen.DU(pt); diff < -1 || diff > 1 {
			t.Errorf("expected 96px to be 72.27pt, is %d", du)
		}
	default:
		t.Errorf("expected fixed dimension for 96px")
	}
	if d := DimenFromValue(style.Keyword("auto")); d.Match().IsKind(Auto()) == nil {
		t.Errorf("expected auto dimension")
	}
	if d := DimenFromValue(style.Keyword("inherit")); d.Match().IsKind(Inherit()) == nil {
		t.Errorf("expected inherit dimension")
	}
	if d := DimenFromValue(style.Keyword("red")); !d.IsUnset() {
		t.Errorf("expected keyword red to be an unset dimension")
	}
	if d := DimenFromValue(style.NullValue); !d.IsUnset() || d.Unwrap() != 0 {
		t.Errorf("expected null value to be an unset dimension")
	}
}

func TestDimenPattern(t *testing.T) {
	patterns := DimenPatterns[string]{
		Unset:   "unset",
		Auto:    "auto",
		Inherit: "inherit",
		Initial: "initial",
		Just:    "just",
		Default: "?",
	}
	for _, tc := range []struct {
		d DimenT
		s string
	}{
		{DimenT{}, "unset"},
		{Auto(), "auto"},
		{Inherit(), "inherit"},
		{Initial(), "initial"},
		{JustDimen(10 * dimen.PT), "just"},
	} {
		if s := DimenPattern[string](tc.d).OneOf(patterns); s != tc.s {
			t.Errorf("expected %q, is %q", tc.s, s)
		}
	}
}

func TestDimenString(t *testing.T) {
	for _, tc := range []struct {
		d DimenT
		s string
	}{
		{DimenT{}, "unset"},
		{Auto(), "auto"},
		{Initial(), "initial"},
		{JustDimen(10 * dimen.PT), "10.00pt"},
		{DimenFromValue(style.Length(96, style.Px)), "72.27pt"},
	} {
		if s := tc.d.String(); s != tc.s {
			t.Errorf("expected %q, is %q", tc.s, s)
		}
	}
}
