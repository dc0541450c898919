// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

// replayer - applies decoded operations to one tree
type replayer struct {
	log       *logger.L
	tree      *avl.Tree
	rotations *rotationCounter
	out       io.Writer
	check     bool
	printData bool
}

// counts the rotations performed
type rotationCounter struct {
	log   *logger.L
	count int
}

func (r *rotationCounter) Rotated(pivot bst.Item, promoted bst.Item) {
	r.count += 1
	r.log.Debugf("rotated pivot: %v  promoted: %v", pivot, promoted)
}

func newReplayer(log *logger.L, out io.Writer, check bool, printData bool) *replayer {
	r := &replayer{
		log:       log,
		tree:      avl.New(),
		rotations: &rotationCounter{log: log},
		out:       out,
		check:     check,
		printData: printData,
	}
	r.tree.SetObserver(r.rotations)
	return r
}

// run all operations of one script
func (r *replayer) run(name string, operations []operation) error {
	for _, o := range operations {
		if err := r.apply(o); nil != err {
			return &lineError{name: name, line: o.line, err: err}
		}
	}
	return nil
}

func (r *replayer) apply(o operation) error {
	switch o.code {

	case opInsert:
		added := r.tree.Insert(o.key, o.value)
		r.log.Debugf("insert: %v → %q  added: %t", o.key, o.value, added)

	case opRemove:
		_, found := r.tree.Delete(o.key)
		r.log.Debugf("remove: %v  found: %t", o.key, found)

	case opFind:
		value, err := r.tree.Value(o.key)
		if fault.IsErrNotFound(err) {
			fmt.Fprintf(r.out, "%v: not found\n", o.key)
		} else if nil != err {
			return err
		} else {
			fmt.Fprintf(r.out, "%v → %v\n", o.key, value)
		}

	case opPrint:
		depth := r.tree.Fprint(r.out, r.printData)
		r.log.Debugf("print: depth: %d  count: %d", depth, r.tree.Count())

	case opCheck:
		if err := r.tree.Check(); nil != err {
			return err
		}
		fmt.Fprintf(r.out, "check: ok  count: %d  height: %d  rotations: %d\n", r.tree.Count(), r.tree.Height(), r.rotations.count)

	default:
		return fault.ErrUnknownOperation
	}

	if r.check {
		switch o.code {
		case opInsert, opRemove:
			if err := r.tree.Check(); nil != err {
				r.log.Criticalf("line: %d: check failed: %s", o.line, err)
				return err
			}
		}
	}
	return nil
}
