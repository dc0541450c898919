// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/bitmark-inc/avltree/bst"
)

// the right side entries are the mirror of the left side ones
func TestTablesMirror(t *testing.T) {
	tables := map[string]*[2][3][2]int8{
		"insert": &insertZigZag,
		"remove": &removeZigZag,
	}
	for name, table := range tables {
		for i := 0; i < 3; i += 1 {
			l := table[leftSide][i]
			r := table[rightSide][2-i]
			if l[0] != -r[0] || l[1] != -r[1] {
				t.Errorf("%s: [%d]: left: %v  right: %v", name, i, l, r)
			}
		}
	}
}

// a level promoted node always leaves both sides level
func TestTablesLevel(t *testing.T) {
	for s := leftSide; s <= rightSide; s += 1 {
		if insertZigZag[s][1] != [2]int8{0, 0} {
			t.Errorf("insert: side: %d: %v", s, insertZigZag[s][1])
		}
		if removeZigZag[s][1] != [2]int8{0, 0} {
			t.Errorf("remove: side: %d: %v", s, removeZigZag[s][1])
		}
	}
}

func TestRotateNotChild(t *testing.T) {
	tree := New()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(bst.IntKey(k), k)
	}
	defer func() {
		if nil == recover() {
			t.Fatal("rotate of a non-child did not panic")
		}
	}()
	tree.rotate(tree.Root().Left(), tree.Root().Right())
}

func TestNodeSwapKeepsBalance(t *testing.T) {
	tree := New()
	for _, k := range []int{2, 1, 3, 4} {
		tree.Insert(bst.IntKey(k), k)
	}
	root := tree.Root()
	leaf := root.Right().Right()
	tree.nodeSwap(root, leaf)

	if bst.IntKey(4) != root.Key() || 4 != root.Value() {
		t.Errorf("root holds: %v → %v", root.Key(), root.Value())
	}
	if bst.IntKey(2) != leaf.Key() || 2 != leaf.Value() {
		t.Errorf("leaf holds: %v → %v", leaf.Key(), leaf.Value())
	}
	if 1 != balance(root) || 0 != balance(leaf) {
		t.Errorf("balances moved: root: %d  leaf: %d", balance(root), balance(leaf))
	}
}
