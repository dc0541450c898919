// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"strconv"
	"strings"
)

// Item - a key item must implement the Compare function
//
// Compare returns a negative value if the receiver orders before the
// argument, zero if equal and a positive value if after.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// StringKey - a string with lexical ordering
type StringKey string

// Compare - lexical comparison of two string keys
func (s StringKey) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringKey)))
}

// String - conversion for fmt package
func (s StringKey) String() string {
	return string(s)
}

// IntKey - an integer with numeric ordering
type IntKey int

// Compare - numeric comparison of two integer keys
func (i IntKey) Compare(x interface{}) int {
	j := x.(IntKey)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

// String - conversion for fmt package
func (i IntKey) String() string {
	return strconv.Itoa(int(i))
}
