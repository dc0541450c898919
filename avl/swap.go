// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
)

// exchange the contents of two nodes in place
//
// balance factors describe the shape below a position, not the item
// stored there, so each stays with its node while key and value move.
// This gives the same tree as relocating the two nodes and swapping
// their balances; do not swap the balances here as well.
func (tree *Tree) nodeSwap(a *bst.Node, b *bst.Node) {
	tree.base.ContentSwap(a, b)
}
