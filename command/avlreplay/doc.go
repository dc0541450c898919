// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlreplay - run operation scripts against a balanced tree
//
// each script is a text file with one operation per line:
//
//   insert KEY VALUE   add a key or replace its value
//   remove KEY         remove a key, absent keys are ignored
//   find KEY           print the value stored for a key
//   print              print the tree
//   check              verify all tree invariants
//
// blank lines and lines starting with '#' are ignored.  All scripts
// given on the command line operate on the same tree, in order.
package main
