package cssom

import (
	"fmt"
	"strings"
)

// Specificity is the CSS specificity of a selector, with the convention
// Specificity = [ids, classes, tags].
type Specificity [3]int

// Compare compares two specificities lexicographically. It returns -1, 0 or +1.
func (s Specificity) Compare(other Specificity) int {
	for i := range s {
		if s[i] < other[i] {
			return -1
		}
		if s[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Less returns true if s < other (strictly), false otherwise.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}

// Selector is a simple selector. Every field is an optional constraint
// for matching elements; the zero Selector matches every element.
type Selector struct {
	Tag     string   // tag name, "" for any tag
	ID      string   // id, "" for any id
	Classes []string // classes which must all be present
}

// Specificity returns the specificity of a selector. It depends on the
// selector only, not on a match context.
func (sel Selector) Specificity() Specificity {
	var s Specificity
	if sel.ID != "" {
		s[0] = 1
	}
	s[1] = len(sel.Classes)
	if sel.Tag != "" {
		s[2] = 1
	}
	return s
}

// IsUniversal is true for selectors without any constraint.
func (sel Selector) IsUniversal() bool {
	return sel.Tag == "" && sel.ID == "" && len(sel.Classes) == 0
}

func (sel Selector) String() string {
	if sel.IsUniversal() {
		return "*"
	}
	var b strings.Builder
	b.WriteString(sel.Tag)
	if sel.ID != "" {
		b.WriteString("#")
		b.WriteString(sel.ID)
	}
	for _, c := range sel.Classes {
		b.WriteString(".")
		b.WriteString(c)
	}
	return b.String()
}
