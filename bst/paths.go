// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Height - number of nodes on the longest root to leaf path
func (tree *Tree) Height() int {
	return Height(tree.root)
}

// Height - height of the sub-tree rooted at p, zero for nil
func Height(p *Node) int {
	if nil == p {
		return 0
	}
	hl := Height(p.left)
	hr := Height(p.right)
	if hl >= hr {
		return 1 + hl
	}
	return 1 + hr
}

// EqualPaths - true if every leaf is at the same depth
func (tree *Tree) EqualPaths() bool {
	_, ok := equalPaths(tree.root)
	return ok
}

// returns the height of the sub-tree and whether all of its leaves
// are equally deep; an empty side holds no leaves so it cannot differ
func equalPaths(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	if nil == p.left {
		h, ok := equalPaths(p.right)
		return 1 + h, ok
	}
	if nil == p.right {
		h, ok := equalPaths(p.left)
		return 1 + h, ok
	}
	hl, okl := equalPaths(p.left)
	hr, okr := equalPaths(p.right)
	return 1 + hl, okl && okr && hl == hr
}
