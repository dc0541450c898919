// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new node into the tree
//
// an existing key has its value overwritten and nothing else changes;
// returns true if a new node was added
func (tree *Tree) Insert(key bst.Item, value interface{}) bool {
	n, added := tree.base.InsertUnbalanced(key, value)
	if !added {
		return false
	}

	p := n.Parent()
	if nil != p {
		if 0 != balance(p) {
			// filled the short side of the parent, height unchanged
			setBalance(p, 0)
		} else {
			if n.IsLeftChild() {
				updateBalance(p, -1)
			} else {
				updateBalance(p, +1)
			}
			tree.insertFix(p, n)
		}
	}

	tree.verify("insert")
	return true
}

// the sub-tree rooted at p has grown by one level and n is the child
// of p on the path to the new node
func (tree *Tree) insertFix(p *bst.Node, n *bst.Node) {
	for {
		g := p.Parent()
		if nil == g {
			return
		}

		s := rightSide
		diff := int8(+1)
		if p.IsLeftChild() {
			s = leftSide
			diff = -1
		}

		updateBalance(g, diff)
		switch balance(g) {
		case 0:
			return
		case -1, +1:
			// g has grown as well
			p, n = g, p
			continue
		case -2, +2:
		default:
			fault.Panicf("avl: insert: %v has balance: %d", g.Key(), balance(g))
		}

		if (leftSide == s) == n.IsLeftChild() {
			// zig-zig
			tree.rotate(g, p)
			setBalance(g, 0)
			setBalance(p, 0)
		} else {
			// zig-zag
			nb := balance(n)
			tree.rotate(p, n)
			tree.rotate(g, n)
			t := insertZigZag[s][nb+1]
			setBalance(p, t[0])
			setBalance(g, t[1])
			setBalance(n, 0)
		}
		if nil != log {
			log.Debugf("insert: rebalanced at: %v", g.Key())
		}
		return
	}
}
