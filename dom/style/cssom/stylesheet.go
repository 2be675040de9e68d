package cssom

import (
	"sort"
	"strings"

	"github.com/npillmayer/stylebox/dom/style"
)

// Declaration is a single property declaration of a rule, e.g. `color: red`.
type Declaration struct {
	Property string
	Value    style.Value
}

func (d Declaration) String() string {
	return d.Property + ": " + d.Value.String()
}

// Rule is the type stylesheets consists of. A rule applies to an element if
// any of its selectors matches.
//
// See type StyleSheet.
type Rule struct {
	selectors    []Selector
	declarations []Declaration
}

// NewRule creates a rule from selectors and declarations.
//
// Selectors are stored in order of decreasing specificity; selectors of equal
// specificity keep their relative order. Declarations keep their order.
func NewRule(selectors []Selector, declarations []Declaration) *Rule {
	r := &Rule{
		selectors:    make([]Selector, len(selectors)),
		declarations: make([]Declaration, len(declarations)),
	}
	copy(r.selectors, selectors)
	copy(r.declarations, declarations)
	sort.SliceStable(r.selectors, func(i, j int) bool {
		return r.selectors[j].Specificity().Less(r.selectors[i].Specificity())
	})
	if len(r.selectors) == 0 {
		tracer().Infof("rule without selectors will never match")
	}
	return r
}

// Selectors returns the selectors of a rule, most specific first.
func (r *Rule) Selectors() []Selector {
	return r.selectors
}

// Declarations returns the declarations of a rule in source order.
func (r *Rule) Declarations() []Declaration {
	return r.declarations
}

func (r *Rule) String() string {
	var b strings.Builder
	for i, sel := range r.selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sel.String())
	}
	b.WriteString(" {")
	for _, d := range r.declarations {
		b.WriteString(" ")
		b.WriteString(d.String())
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}

// StyleSheet is an ordered list of rules. Stylesheets are not modified
// during styling and may be shared between concurrent styling runs.
type StyleSheet struct {
	rules []*Rule
}

// NewStyleSheet creates a stylesheet from a list of rules.
func NewStyleSheet(rules ...*Rule) *StyleSheet {
	sheet := &StyleSheet{}
	for _, r := range rules {
		if r != nil {
			sheet.rules = append(sheet.rules, r)
		}
	}
	return sheet
}

// AppendRules appends rules from another stylesheet.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	if other == nil {
		return
	}
	sheet.rules = append(sheet.rules, other.rules...)
}

// Empty checks if this stylesheet contains any rules.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.rules) == 0
}

// Rules returns all the rules of a stylesheet, in source order.
func (sheet *StyleSheet) Rules() []*Rule {
	if sheet == nil {
		return nil
	}
	return sheet.rules
}

func (sheet *StyleSheet) String() string {
	var b strings.Builder
	for _, r := range sheet.Rules() {
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}
