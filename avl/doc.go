// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow upward rebalancing and iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Node storage, navigation and plain structural changes are done by
// the bst package; this package keeps each node's balance factor
// (height of right sub-tree minus height of left sub-tree) and runs
// the fix-up passes that restore balance after an insert or remove.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.
//
// Building with the tag "avldebug" verifies the whole tree after
// every insert and remove and panics on the first broken invariant.
package avl
