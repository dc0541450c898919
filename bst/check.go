// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() error {
	if !checkup(tree.root, nil) {
		return fault.ErrParentLink
	}
	return nil
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckOrder - every key must be strictly greater than its predecessor
func (tree *Tree) CheckOrder() error {
	p := tree.First()
	if nil == p {
		return nil
	}
	for q := p.Next(); nil != q; p, q = q, q.Next() {
		if p.key.Compare(q.key) >= 0 {
			return fault.ErrKeyOrder
		}
	}
	return nil
}

// CheckCounts - verify the sub-tree node counts
func (tree *Tree) CheckCounts() error {
	n, ok := checkCounts(tree.root)
	if !ok || n != tree.count {
		return fault.ErrNodeCount
	}
	return nil
}

func checkCounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, ok := checkCounts(p.left)
	if !ok {
		return 0, false
	}
	nr, ok := checkCounts(p.right)
	if !ok {
		return 0, false
	}
	n := 1 + nl + nr
	return n, n == p.nodes
}
