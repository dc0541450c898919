// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Splice - remove a node with at most one child
//
// the child, if any, takes over the slot of the removed node.  Returns
// the former parent (nil if the node was the root) and whether the node
// was its left child.  The node is reclaimed and must not be used again.
func (tree *Tree) Splice(p *Node) (*Node, bool) {
	if nil != p.left && nil != p.right {
		fault.Panicf("bst: splice of node: %v with two children", p.key)
	}

	child := p.left
	if nil == child {
		child = p.right
	}

	up := p.up
	wasLeft := p.IsLeftChild()
	tree.ReplaceChild(up, p, child)

	for q := up; nil != q; q = q.up {
		q.nodes -= 1
	}
	tree.count -= 1
	tree.freeNode(p)
	return up, wasLeft
}
