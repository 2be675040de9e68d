/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

A styled tree mirrors the shape of a document tree exactly: for every document
node there is one styled node, with children in the same order. Every styled
node references its document node and holds the property map computed for it
by the cascade (see package css). Text and comment nodes carry an empty
property map.

Styled trees are built once per styling pass and are immutable afterwards.
If either the document or the stylesheet changes, the styled tree is
discarded and rebuilt.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree
