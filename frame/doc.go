/*
Package frame builds box trees from styled trees.

Every styled node with a display mode other than `none` generates a box.
Block-level nodes generate block boxes, inline-level nodes generate inline
boxes. A block box never holds inline boxes directly: runs of consecutive
inline boxes below a block box are wrapped into a single anonymous block.

    ▩ body                         ▩ body
    ├── ▩ h1                       ├── ▩ h1
    ├── ► span         ───►        ├── ▭ anonymous
    ├── ► em                       │   ├── ► span
    └── ▩ p                        │   └── ► em
                                   └── ▩ p

Styled nodes with display mode `none` are pruned, together with their
complete subtree. The root of a box tree must not have display mode `none`.

Boxes do not carry geometry. Clients (e.g., a layout engine) walk the box
tree to assign positions and sizes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylebox.frame'.
func tracer() tracing.Trace {
	return tracing.Select("stylebox.frame")
}
