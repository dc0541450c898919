// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a plain binary search tree with parent pointers
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree does no balancing of its own.  It supplies the node
// storage, navigation and structural primitives (unbalanced insert,
// splice removal, predecessor lookup, content swap and child
// replacement) that a balancing layer needs, and keeps a count of the
// nodes in every sub-tree so that items can be fetched by index.
//
// Each node carries one small auxiliary value that this package never
// interprets; a balancing layer can keep its per-node state there.
package bst
