// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -destination=mocks/observer.go -package=mocks github.com/bitmark-inc/avltree/avl Observer

// Observer - receives notice of every single rotation, a double
// rotation is reported as two calls
type Observer interface {
	Rotated(pivot bst.Item, promoted bst.Item)
}

// Tree - type to hold a balanced tree
type Tree struct {
	base     *bst.Tree
	observer Observer
}

// hold a logger channel, nil until Initialise
var log *logger.L

// Initialise - create the logger channel for rebalancing traces
func Initialise() error {
	if nil != log {
		return fault.ErrAlreadyInitialised
	}
	log = logger.New("avl")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - release the logger channel
func Finalise() error {
	if nil == log {
		return fault.ErrNotInitialised
	}
	log.Flush()
	log = nil
	return nil
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		base: bst.New(),
	}
}

// SetObserver - report rotations to o, nil to stop
func (tree *Tree) SetObserver(o Observer) {
	tree.observer = o
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return tree.base.IsEmpty()
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.base.Count()
}

// Root - return the root node of the tree
func (tree *Tree) Root() *bst.Node {
	return tree.base.Root()
}

// First - return the node with the lowest key value
func (tree *Tree) First() *bst.Node {
	return tree.base.First()
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *bst.Node {
	return tree.base.Last()
}

// Find - exact match lookup, nil if not present
func (tree *Tree) Find(key bst.Item) *bst.Node {
	return tree.base.Find(key)
}

// Search - find a specific item and its in-order index
func (tree *Tree) Search(key bst.Item) (*bst.Node, int) {
	return tree.base.Search(key)
}

// Get - index to specific item
func (tree *Tree) Get(index int) *bst.Node {
	return tree.base.Get(index)
}

// Value - the value stored for a key
func (tree *Tree) Value(key bst.Item) (interface{}, error) {
	node := tree.base.Find(key)
	if nil == node {
		return nil, fault.ErrKeyNotFound
	}
	return node.Value(), nil
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree) Height() int {
	return tree.base.Height()
}

// PoolStats - nodes allocated by the tree and nodes waiting for reuse
func (tree *Tree) PoolStats() (int, int) {
	return tree.base.PoolStats()
}

// Print - display an ASCII graphic representation of the tree, the
// signed column is the balance factor
func (tree *Tree) Print(printData bool) int {
	return tree.base.Print(printData)
}

// Fprint - as Print but to a specific writer
func (tree *Tree) Fprint(w io.Writer, printData bool) int {
	return tree.base.Fprint(w, printData)
}
