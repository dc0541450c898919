// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

// Remove - removes a specific item from the tree, nothing happens if
// the key is not present
func (tree *Tree) Remove(key bst.Item) {
	tree.Delete(key)
}

// Delete - removes a specific item from the tree
// returns the value that was stored and whether the key was present
func (tree *Tree) Delete(key bst.Item) (interface{}, bool) {
	n := tree.base.Find(key)
	if nil == n {
		return nil, false
	}
	value := n.Value()

	if nil != n.Left() && nil != n.Right() {
		pred := tree.base.Predecessor(n)
		if nil != pred.Right() {
			fault.Panicf("avl: delete: predecessor: %v has a right child", pred.Key())
		}
		tree.nodeSwap(pred, n)
		n = pred // now holds the key being removed
	}

	p, wasLeft := tree.base.Splice(n)
	if nil != p {
		diff := int8(-1)
		if wasLeft {
			diff = +1
		}
		tree.removeFix(p, diff)
	}

	tree.verify("delete")
	return value, true
}

// the sub-tree on one side of n has lost a level: diff is +1 if it
// was the left side and -1 for the right
func (tree *Tree) removeFix(n *bst.Node, diff int8) {
	for nil != n {
		p := n.Parent()
		ndiff := int8(0)
		if nil != p {
			if p.Left() == n {
				ndiff = +1
			} else {
				ndiff = -1
			}
		}

		b := balance(n) + diff
		switch b {
		case -1, +1:
			// was level, now leaning, height unchanged
			setBalance(n, b)
			return
		case 0:
			// lost a level
			setBalance(n, 0)
		case -2, +2:
			if !tree.removeRotate(n, diff) {
				return
			}
		default:
			fault.Panicf("avl: delete: %v has balance: %d", n.Key(), b)
		}
		n, diff = p, ndiff
	}
}

// rebalance n which leans two levels towards the side given by diff;
// true if the rotated sub-tree is now one level shorter
func (tree *Tree) removeRotate(n *bst.Node, diff int8) bool {
	s := rightSide
	c := n.Right()
	if diff < 0 {
		s = leftSide
		c = n.Left()
	}
	if nil == c {
		fault.Panicf("avl: delete: %v leans to an empty side", n.Key())
	}

	if nil != log {
		log.Debugf("delete: rebalance at: %v  child balance: %d", n.Key(), balance(c))
	}

	cb := balance(c)
	switch {
	case cb == diff:
		// zig-zig
		tree.rotate(n, c)
		setBalance(n, 0)
		setBalance(c, 0)
		return true

	case 0 == cb:
		// zig-zig, child level so height is unchanged
		tree.rotate(n, c)
		setBalance(n, diff)
		setBalance(c, -diff)
		return false

	default:
		// zig-zag
		g := c.Left()
		if leftSide == s {
			g = c.Right()
		}
		gb := balance(g)
		tree.rotate(c, g)
		tree.rotate(n, g)
		t := removeZigZag[s][gb+1]
		setBalance(n, t[0])
		setBalance(c, t[1])
		setBalance(g, 0)
		return true
	}
}
