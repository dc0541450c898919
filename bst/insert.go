// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// InsertUnbalanced - place a key by plain BST descent
//
// returns the node holding the key and true if it was newly added; an
// existing key only has its value overwritten and the tree shape is
// not changed
func (tree *Tree) InsertUnbalanced(key Item, value interface{}) (*Node, bool) {
	up := (*Node)(nil)
	left := false
	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		if c > 0 { // p.key > key
			up, left = p, true
			p = p.left
		} else if c < 0 { // p.key < key
			up, left = p, false
			p = p.right
		} else {
			p.value = value
			return p, false
		}
	}

	n := tree.newNode(key, value)
	switch {
	case nil == up:
		tree.root = n
	case left:
		up.SetLeft(n)
	default:
		up.SetRight(n)
	}

	for q := up; nil != q; q = q.up {
		q.nodes += 1
	}
	tree.count += 1
	return n, true
}
