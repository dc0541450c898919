// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Node - a node in the tree
type Node struct {
	left  *Node       // left sub-tree
	right *Node       // right sub-tree
	up    *Node       // points to parent node
	key   Item        // key part for ordering
	value interface{} // value part for data storage
	nodes int         // nodes in the sub-tree rooted here, including this one
	aux   int8        // owned by any balancing layer
	free  bool        // true while the node is in the pool
}

// per-tree pool of reclaimed nodes
type pool struct {
	head  *Node // linked list of reclaimed nodes
	total int   // total nodes created
	free  int   // number of nodes in the pool
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree) newNode(key Item, value interface{}) *Node {
	if nil == tree.pool.head {
		if 0 != tree.pool.free {
			fault.Panicf("bst: pool corrupt: free: %d with empty list", tree.pool.free)
		}
		tree.pool.total += 1
		return &Node{
			key:   key,
			value: value,
			nodes: 1,
		}
	}
	p := tree.pool.head
	tree.pool.head = p.up
	p.key = key
	p.value = value
	p.nodes = 1
	p.aux = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	p.free = false
	tree.pool.free -= 1
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree) freeNode(node *Node) {
	if node.free {
		fault.Panicf("bst: node reclaimed twice")
	}
	node.up = tree.pool.head // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.nodes = 0
	node.aux = 0
	node.free = true
	tree.pool.free += 1

	tree.pool.head = node
}

// PoolStats - number of nodes ever allocated by this tree and the
// number currently waiting for reuse
func (tree *Tree) PoolStats() (allocated int, free int) {
	return tree.pool.total, tree.pool.free
}
