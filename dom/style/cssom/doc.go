/*
Package cssom provides the CSS object model for styling.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

We strive to separate content from presentation. Presentation
is governed with CSS (Cascading Style Sheets).
CSSOM is the "CSS Object Model", similar to the DOM for HTML.
A stylesheet is an ordered list of rules. Every rule holds a list of
selectors and an ordered list of declarations.

Only simple selectors are supported: an optional tag name, an optional id and
zero or more classes, e.g. `div`, `#main`, `p.note.small` or `*`. Combinators,
pseudo-classes and attribute selectors are not part of the object model.
Parsing of CSS text into the object model is done by adapters, see
package douceuradapter.

Specificity

Every selector has a specificity, a 3-tuple (ids, classes, tags), which is
compared lexicographically. Rules store their selectors ordered by decreasing
specificity; thus the first selector of a rule matching an element is the most
specific one matching. See

   https://www.w3.org/TR/selectors/#specificity-rules

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylebox.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("stylebox.cssom")
}
