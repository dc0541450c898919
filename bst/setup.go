// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
	pool  pool
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// ReplaceChild - make child occupy the slot of old below parent, or
// the root if parent is nil
func (tree *Tree) ReplaceChild(parent *Node, old *Node, child *Node) {
	if nil == parent {
		tree.root = child
	} else if parent.left == old {
		parent.left = child
	} else {
		parent.right = child
	}
	if nil != child {
		child.up = parent
	}
}

// ContentSwap - exchange key and value of two nodes in place
func (tree *Tree) ContentSwap(a *Node, b *Node) {
	a.key, b.key = b.key, a.key
	a.value, b.value = b.value, a.value
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// SetValue - replace the value of a node item
func (p *Node) SetValue(value interface{}) {
	p.value = value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// SetParent - set the parent link only
func (p *Node) SetParent(up *Node) {
	p.up = up
}

// SetLeft - attach a left sub-tree, fixing its parent link
func (p *Node) SetLeft(child *Node) {
	p.left = child
	if nil != child {
		child.up = p
	}
}

// SetRight - attach a right sub-tree, fixing its parent link
func (p *Node) SetRight(child *Node) {
	p.right = child
	if nil != child {
		child.up = p
	}
}

// IsLeftChild - true if the node is the left child of its parent
func (p *Node) IsLeftChild() bool {
	return nil != p.up && p.up.left == p
}

// Aux - the auxiliary value kept for a balancing layer
func (p *Node) Aux() int8 {
	return p.aux
}

// SetAux - store a new auxiliary value
func (p *Node) SetAux(aux int8) {
	p.aux = aux
}

// Size - number of nodes in the sub-tree, zero for nil
func (p *Node) Size() int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// Recount - recompute the sub-tree node count from the two children,
// which must already be correct
func (p *Node) Recount() {
	p.nodes = 1 + p.left.Size() + p.right.Size()
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
