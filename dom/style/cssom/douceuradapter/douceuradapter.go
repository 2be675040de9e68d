/*
Package douceuradapter creates cssom stylesheets from CSS text, using the
CSS parser of github.com/aymerick/douceur.

Selectors are validated with github.com/andybalholm/cascadia. Syntactically
malformed input is rejected with an error. Well-formed selectors outside of
the simple selector grammar of package cssom (combinators, pseudo-classes,
attribute selectors, …) are skipped; a rule left without selectors is dropped.
At-rules are skipped as well.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylebox/dom"
	"github.com/npillmayer/stylebox/dom/htmladapter"
	"github.com/npillmayer/stylebox/dom/style"
	"github.com/npillmayer/stylebox/dom/style/cssom"
)

// tracer traces with key 'stylebox.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("stylebox.cssom")
}

// ErrUnsupportedSelector is returned by ParseSelector for well-formed selectors
// which are not simple selectors.
var ErrUnsupportedSelector = errors.New("not a simple selector")

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*cssom.StyleSheet, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	return Wrap(c)
}

// Wrap converts a stylesheet parsed by douceur into a cssom stylesheet.
func Wrap(c *css.Stylesheet) (*cssom.StyleSheet, error) {
	sheet := cssom.NewStyleSheet()
	if c == nil {
		return sheet, nil
	}
	for _, r := range c.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("skipping at-rule %s", r.Name)
			continue
		}
		rule, err := convertRule(r)
		if err != nil {
			return nil, err
		}
		if rule != nil {
			sheet.AppendRules(cssom.NewStyleSheet(rule))
		}
	}
	return sheet, nil
}

func convertRule(r *css.Rule) (*cssom.Rule, error) {
	var selectors []cssom.Selector
	for _, s := range splitSelectors(r.Prelude) {
		sel, err := ParseSelector(s)
		if errors.Is(err, ErrUnsupportedSelector) {
			tracer().Infof("skipping selector %q: %v", strings.TrimSpace(s), err)
			continue
		} else if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
	}
	if len(selectors) == 0 {
		tracer().Infof("dropping rule %q: no supported selectors", r.Prelude)
		return nil, nil
	}
	decls := make([]cssom.Declaration, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		if d.Important {
			tracer().Debugf("ignoring !important for property %s", d.Property)
		}
		decls = append(decls, cssom.Declaration{
			Property: d.Property,
			Value:    style.ParseValue(d.Value),
		})
	}
	return cssom.NewRule(selectors, decls), nil
}

// splitSelectors splits a selector group at commas which are neither
// quoted nor nested within brackets or parentheses.
func splitSelectors(prelude string) []string {
	var parts []string
	var quote rune
	depth, start, escaped := 0, 0, false
	for i, c := range prelude {
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			if depth > 0 {
				depth--
			}
		case c == ',' && depth == 0:
			parts = append(parts, prelude[start:i])
			start = i + 1
		}
	}
	return append(parts, prelude[start:])
}

// ParseSelector parses a single simple selector, e.g. `h3#top.main`.
//
// Malformed selectors result in an error. Selectors which are well-formed but
// are not simple selectors result in an error wrapping ErrUnsupportedSelector.
func ParseSelector(s string) (cssom.Selector, error) {
	s = strings.TrimSpace(s)
	if _, err := cascadia.Parse(s); err != nil {
		return cssom.Selector{}, fmt.Errorf("malformed selector %q: %w", s, err)
	}
	var sel cssom.Selector
	rest := s
	if strings.HasPrefix(rest, "*") {
		rest = rest[1:]
	} else if tag, r := identifier(rest); tag != "" {
		sel.Tag = strings.ToLower(tag)
		rest = r
	}
	for rest != "" {
		prefix := rest[0]
		if prefix != '#' && prefix != '.' {
			return cssom.Selector{}, fmt.Errorf("%w: %q", ErrUnsupportedSelector, s)
		}
		name, r := identifier(rest[1:])
		if name == "" {
			return cssom.Selector{}, fmt.Errorf("%w: %q", ErrUnsupportedSelector, s)
		}
		if prefix == '#' {
			if sel.ID != "" {
				return cssom.Selector{}, fmt.Errorf("%w: %q has more than one id", ErrUnsupportedSelector, s)
			}
			sel.ID = name
		} else {
			sel.Classes = append(sel.Classes, name)
		}
		rest = r
	}
	return sel, nil
}

// identifier splits off a leading CSS identifier from s.
func identifier(s string) (string, string) {
	for i, r := range s {
		if !isIdentRune(r) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func isIdentRune(r rune) bool {
	return r == '-' || r == '_' || r > unicode.MaxASCII ||
		('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// ExtractStyleSheet visits a document tree, searches for embedded <style>
// elements and returns their content as one stylesheet, in document order.
func ExtractStyleSheet(root *dom.Node) (*cssom.StyleSheet, error) {
	sheet := cssom.NewStyleSheet()
	for _, text := range htmladapter.ExtractStyleElements(root) {
		s, err := Parse(text)
		if err != nil {
			return nil, err
		}
		sheet.AppendRules(s)
	}
	return sheet, nil
}
