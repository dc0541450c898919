// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/bst"
)

// render a sub-tree as key(left,right), a leaf is just its key and an
// empty side is "."
func shape(p *bst.Node) string {
	if nil == p {
		return "."
	}
	if nil == p.Left() && nil == p.Right() {
		return fmt.Sprintf("%v", p.Key())
	}
	return fmt.Sprintf("%v(%s,%s)", p.Key(), shape(p.Left()), shape(p.Right()))
}

// collect all non-zero balance factors
func balances(tree *avl.Tree) map[int]int {
	b := make(map[int]int)
	for p := tree.First(); nil != p; p = p.Next() {
		if bf := avl.Balance(p); 0 != bf {
			b[int(p.Key().(bst.IntKey))] = bf
		}
	}
	return b
}

func makeTree(keys ...int) *avl.Tree {
	tree := avl.New()
	for _, k := range keys {
		tree.Insert(bst.IntKey(k), k)
	}
	return tree
}

func TestInsertRebalance(t *testing.T) {
	tests := []struct {
		name     string
		keys     []int
		shape    string
		balances map[int]int
	}{
		{"empty", []int{}, ".", map[int]int{}},
		{"single", []int{1}, "1", map[int]int{}},
		{"lean right", []int{1, 2}, "1(.,2)", map[int]int{1: +1}},
		{"lean left", []int{2, 1}, "2(1,.)", map[int]int{2: -1}},
		{"right right", []int{1, 2, 3}, "2(1,3)", map[int]int{}},
		{"left left", []int{3, 2, 1}, "2(1,3)", map[int]int{}},
		{"left right", []int{3, 1, 2}, "2(1,3)", map[int]int{}},
		{"right left", []int{1, 3, 2}, "2(1,3)", map[int]int{}},
		{"fill short side", []int{2, 1, 3}, "2(1,3)", map[int]int{}},
		{
			"left zig-zag promoted leans left",
			[]int{50, 20, 80, 10, 30, 25},
			"30(20(10,25),50(.,80))",
			map[int]int{50: +1},
		},
		{
			"left zig-zag promoted leans right",
			[]int{50, 20, 80, 10, 30, 35},
			"30(20(10,.),50(35,80))",
			map[int]int{20: -1},
		},
		{
			"right zig-zag promoted leans right",
			[]int{50, 20, 80, 70, 90, 75},
			"70(50(20,.),80(75,90))",
			map[int]int{50: -1},
		},
		{
			"right zig-zag promoted leans left",
			[]int{50, 20, 80, 70, 90, 65},
			"70(50(20,65),80(.,90))",
			map[int]int{80: +1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tree := makeTree(test.keys...)
			assert.Nil(t, tree.Check(), "check")
			assert.Equal(t, test.shape, shape(tree.Root()), "shape")
			assert.Equal(t, test.balances, balances(tree), "balances")
		})
	}
}

func TestRemoveRebalance(t *testing.T) {
	tests := []struct {
		name     string
		keys     []int
		remove   int
		shape    string
		balances map[int]int
	}{
		{"only node", []int{1}, 1, ".", map[int]int{}},
		{"root with one child", []int{1, 2}, 1, "2", map[int]int{}},
		{"absent key", []int{2, 1, 3}, 4, "2(1,3)", map[int]int{}},
		{
			"leaf no rotation",
			[]int{4, 2, 6, 1, 3, 5, 7},
			1,
			"4(2(.,3),6(5,7))",
			map[int]int{2: +1},
		},
		{
			"single rotation",
			[]int{4, 2, 6, 7},
			2,
			"6(4,7)",
			map[int]int{},
		},
		{
			"single rotation level child",
			[]int{4, 2, 6, 5, 7},
			2,
			"6(4(.,5),7)",
			map[int]int{6: -1, 4: +1},
		},
		{
			"two children uses predecessor",
			[]int{4, 2, 6, 1, 3, 5, 7},
			4,
			"3(2(1,.),6(5,7))",
			map[int]int{2: -1},
		},
		{
			"left heavy zig-zag grandchild leans right",
			[]int{50, 20, 80, 10, 30, 90, 35},
			90,
			"30(20(10,.),50(35,80))",
			map[int]int{20: -1},
		},
		{
			"left heavy zig-zag grandchild level",
			[]int{50, 20, 80, 10, 30, 90, 25, 35},
			90,
			"30(20(10,25),50(35,80))",
			map[int]int{},
		},
		{
			"left heavy zig-zag grandchild leans left",
			[]int{50, 20, 80, 10, 30, 90, 25},
			90,
			"30(20(10,25),50(.,80))",
			map[int]int{50: +1},
		},
		{
			"right heavy zig-zag grandchild leans left",
			[]int{50, 20, 80, 10, 70, 90, 65},
			10,
			"70(50(20,65),80(.,90))",
			map[int]int{80: +1},
		},
		{
			"right heavy zig-zag grandchild level",
			[]int{50, 20, 80, 10, 70, 90, 65, 75},
			10,
			"70(50(20,65),80(75,90))",
			map[int]int{},
		},
		{
			"right heavy zig-zag grandchild leans right",
			[]int{50, 20, 80, 10, 70, 90, 75},
			10,
			"70(50(20,.),80(75,90))",
			map[int]int{50: -1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tree := makeTree(test.keys...)
			if err := tree.Check(); nil != err {
				t.Fatalf("setup: check: %s", err)
			}
			tree.Remove(bst.IntKey(test.remove))
			assert.Nil(t, tree.Check(), "check")
			assert.Equal(t, test.shape, shape(tree.Root()), "shape")
			assert.Equal(t, test.balances, balances(tree), "balances")
		})
	}
}
