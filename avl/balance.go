// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
)

// side of the parent on which the taller sub-tree hangs
type side int

const (
	leftSide  side = iota
	rightSide side = iota
)

// balances after a double rotation on insert, indexed by the side of
// the parent below the grandparent and by the promoted node's balance
// + 1, giving {parent, grandparent}
var insertZigZag = [2][3][2]int8{
	leftSide: {
		{0, +1}, // promoted: -1
		{0, 0},  // promoted:  0
		{-1, 0}, // promoted: +1
	},
	rightSide: {
		{+1, 0}, // promoted: -1
		{0, 0},  // promoted:  0
		{0, -1}, // promoted: +1
	},
}

// balances after a double rotation on remove, indexed by the heavy
// side and by the grandchild's balance + 1, giving {node, child}
var removeZigZag = [2][3][2]int8{
	leftSide: {
		{+1, 0}, // grandchild: -1
		{0, 0},  // grandchild:  0
		{0, -1}, // grandchild: +1
	},
	rightSide: {
		{0, +1}, // grandchild: -1
		{0, 0},  // grandchild:  0
		{-1, 0}, // grandchild: +1
	},
}

// Balance - the balance factor of a node:
// height(right sub-tree) - height(left sub-tree)
func Balance(n *bst.Node) int {
	return int(n.Aux())
}

func balance(n *bst.Node) int8 {
	return n.Aux()
}

func setBalance(n *bst.Node, b int8) {
	n.SetAux(b)
}

func updateBalance(n *bst.Node, diff int8) {
	n.SetAux(n.Aux() + diff)
}
