// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

// key types selectable from the configuration
const (
	keyString  = "string"
	keyInteger = "integer"
)

type opcode int

const (
	opInsert opcode = iota
	opRemove opcode = iota
	opFind   opcode = iota
	opPrint  opcode = iota
	opCheck  opcode = iota
)

// name → opcode and number of arguments
var opcodes = map[string]struct {
	code      opcode
	arguments int
}{
	"insert": {opInsert, 2},
	"remove": {opRemove, 1},
	"find":   {opFind, 1},
	"print":  {opPrint, 0},
	"check":  {opCheck, 0},
}

// a single decoded script line
type operation struct {
	line  int
	code  opcode
	key   bst.Item
	value string
}

// lineError - an error together with the script position
type lineError struct {
	name string
	line int
	err  error
}

func (e *lineError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.name, e.line, e.err)
}

func (e *lineError) Unwrap() error {
	return e.err
}

// read a whole script, stopping at the first bad line
func parseScript(name string, r io.Reader, keys string) ([]operation, error) {
	operations := make([]operation, 0, 64)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line += 1

		text := strings.TrimSpace(scanner.Text())
		if "" == text || strings.HasPrefix(text, "#") {
			continue
		}

		fields := splitLine(text)

		op, ok := opcodes[strings.ToLower(fields[0])]
		if !ok {
			return nil, &lineError{name: name, line: line, err: fault.ErrUnknownOperation}
		}
		if len(fields)-1 < op.arguments {
			return nil, &lineError{name: name, line: line, err: fault.ErrMissingArgument}
		}

		o := operation{
			line: line,
			code: op.code,
		}
		if op.arguments > 0 {
			key, err := makeKey(keys, fields[1])
			if nil != err {
				return nil, &lineError{name: name, line: line, err: err}
			}
			o.key = key
		}
		if op.arguments > 1 {
			o.value = fields[2]
		}
		operations = append(operations, o)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return operations, nil
}

// split off the operation name and key at any run of white space,
// the value is the trimmed remainder and may contain white space
func splitLine(text string) []string {
	fields := make([]string, 0, 3)
	for len(fields) < 2 {
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
		if "" == text {
			return fields
		}
		end := strings.IndexFunc(text, unicode.IsSpace)
		if end < 0 {
			return append(fields, text)
		}
		fields = append(fields, text[:end])
		text = text[end:]
	}
	if rest := strings.TrimSpace(text); "" != rest {
		fields = append(fields, rest)
	}
	return fields
}

// convert text to the configured key type
func makeKey(keys string, text string) (bst.Item, error) {
	switch keys {
	case keyString:
		return bst.StringKey(text), nil
	case keyInteger:
		i, err := strconv.Atoi(text)
		if nil != err {
			return nil, fault.ErrInvalidKeyType
		}
		return bst.IntKey(i), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}
