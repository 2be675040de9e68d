/*
Package css provides functionality for CSS styling.

The style resolver (the "cascade") computes, for every element of a document
tree, the set of declarations which apply to it and resolves conflicts by
specificity. The result is a styled tree (see package styledtree), mirroring
the document tree node by node.

For every element all rules with a matching selector are collected, together
with the specificity of the first matching selector of the rule. Rules are
then applied in order of ascending specificity, later rules overwriting
earlier ones. Stable sorting preserves stylesheet order for rules of equal
specificity, therefore

    higher specificity wins, and
    within equal specificity, the later rule wins.

There is no inheritance and there are no user-agent defaults: an element
without a matching declaration for a property has no entry for it.

This package also shields clients from the textual nature of CSS properties
where they need interpretation, e.g., for the display mode of a node or for
dimensions.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylebox.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("stylebox.cascade")
}
