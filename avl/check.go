// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify parent links, key ordering, sub-tree counts and that
// every balance factor is in range and matches the sub-tree heights
func (tree *Tree) Check() error {
	if err := tree.base.CheckUp(); nil != err {
		return err
	}
	if err := tree.base.CheckOrder(); nil != err {
		return err
	}
	if err := tree.base.CheckCounts(); nil != err {
		return err
	}
	_, err := checkBalance(tree.base.Root())
	return err
}

// returns the height of the sub-tree
func checkBalance(p *bst.Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	hl, err := checkBalance(p.Left())
	if nil != err {
		return 0, err
	}
	hr, err := checkBalance(p.Right())
	if nil != err {
		return 0, err
	}

	b := balance(p)
	if b < -1 || b > 1 {
		return 0, fault.ErrBalanceRange
	}
	if int(b) != hr-hl {
		return 0, fault.ErrBalanceMismatch
	}

	if hl > hr {
		return 1 + hl, nil
	}
	return 1 + hr, nil
}

// run the full check after a change in debug builds
func (tree *Tree) verify(operation string) {
	if !debugChecks {
		return
	}
	if err := tree.Check(); nil != err {
		tree.Print(true)
		fault.Panicf("avl: %s: %s", operation, err)
	}
}
