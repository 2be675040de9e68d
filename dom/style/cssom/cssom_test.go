package cssom

import (
	"testing"

	"github.com/npillmayer/stylebox/dom/style"
)

func TestSpecificityOrdering(t *testing.T) {
	id := Selector{ID: "a"}
	classes := Selector{Classes: []string{"b", "c"}}
	tag := Selector{Tag: "div"}
	if !classes.Specificity().Less(id.Specificity()) {
		t.Errorf("expected #a %v to outrank .b.c %v", id.Specificity(), classes.Specificity())
	}
	if !tag.Specificity().Less(classes.Specificity()) {
		t.Errorf("expected .b.c %v to outrank div %v", classes.Specificity(), tag.Specificity())
	}
	many := Selector{Tag: "p", Classes: []string{"x", "y", "z"}}
	if !many.Specificity().Less(id.Specificity()) {
		t.Errorf("expected id to dominate any number of classes")
	}
	if (Selector{}).Specificity() != (Specificity{0, 0, 0}) {
		t.Errorf("expected universal selector to have specificity (0,0,0)")
	}
	if tag.Specificity().Compare(Selector{Tag: "p"}.Specificity()) != 0 {
		t.Errorf("expected equal specificity for two tag selectors")
	}
}

func TestSelectorString(t *testing.T) {
	sel := Selector{Tag: "h3", ID: "x", Classes: []string{"main", "big"}}
	if sel.String() != "h3#x.main.big" {
		t.Errorf("expected h3#x.main.big, is %q", sel.String())
	}
	if (Selector{}).String() != "*" {
		t.Errorf("expected universal selector to print as '*'")
	}
}

func TestRuleSortsSelectors(t *testing.T) {
	r := NewRule([]Selector{
		{Tag: "h1"},
		{Tag: "h2"},
		{Tag: "h3", Classes: []string{"main"}},
		{ID: "top"},
	}, []Declaration{{"color", style.Keyword("red")}})
	sels := r.Selectors()
	expected := []string{"#top", "h3.main", "h1", "h2"}
	for i, e := range expected {
		if sels[i].String() != e {
			t.Errorf("expected selector #%d to be %s, is %s", i, e, sels[i])
		}
	}
	t.Logf("rule = %s", r)
}

func TestStyleSheetAppend(t *testing.T) {
	s1 := NewStyleSheet(NewRule([]Selector{{Tag: "p"}}, nil))
	s2 := NewStyleSheet(NewRule([]Selector{{Tag: "div"}}, nil), nil)
	if s1.Empty() || len(s2.Rules()) != 1 {
		t.Fatalf("unexpected stylesheets %v, %v", s1, s2)
	}
	s1.AppendRules(s2)
	if len(s1.Rules()) != 2 || s1.Rules()[1].Selectors()[0].Tag != "div" {
		t.Errorf("expected appended rule to come last, have\n%s", s1)
	}
	var empty *StyleSheet
	if !empty.Empty() {
		t.Errorf("expected nil stylesheet to be empty")
	}
}
