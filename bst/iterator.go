// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Predecessor - in-order predecessor of a node, nil for the first node
func (tree *Tree) Predecessor(p *Node) *Node {
	return p.Prev()
}

// Successor - in-order successor of a node, nil for the last node
func (tree *Tree) Successor(p *Node) *Node {
	return p.Next()
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Next() *Node {
	if tree.right != nil {
		return tree.right.first()
	}
	for up := tree.up; up != nil; tree, up = up, up.up {
		if up.left == tree {
			return up
		}
	}
	return nil
}

// Prev - given a node, return the node with the next lowest key value
// or nil if no more nodes
func (tree *Node) Prev() *Node {
	if tree.left != nil {
		return tree.left.last()
	}
	for up := tree.up; up != nil; tree, up = up, up.up {
		if up.right == tree {
			return up
		}
	}
	return nil
}
