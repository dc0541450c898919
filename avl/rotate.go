// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

// promote child above pivot
//
// left child gives a right rotation:
//
//         pivot          child
//         /   \          /   \
//      child   c   ->   a   pivot
//      /   \                /   \
//     a     b              b     c
//
// and a right child the mirror image.  Balance factors are not
// touched, the callers set them from the case tables; the sub-tree
// counts of both nodes are recomputed.
func (tree *Tree) rotate(pivot *bst.Node, child *bst.Node) {
	up := pivot.Parent()

	switch child {
	case pivot.Left():
		pivot.SetLeft(child.Right())
		child.SetRight(pivot)
	case pivot.Right():
		pivot.SetRight(child.Left())
		child.SetLeft(pivot)
	default:
		fault.Panicf("avl: rotate: %v is not a child of %v", child.Key(), pivot.Key())
	}
	tree.base.ReplaceChild(up, pivot, child)

	pivot.Recount()
	child.Recount()

	if nil != log {
		log.Tracef("rotate pivot: %v  promoted: %v", pivot.Key(), child.Key())
	}
	if nil != tree.observer {
		tree.observer.Rotated(pivot.Key(), child.Key())
	}
}
