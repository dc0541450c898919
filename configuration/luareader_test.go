// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type sample struct {
	Name    string            `gluamapper:"name"`
	Count   int               `gluamapper:"count"`
	Enabled bool              `gluamapper:"enabled"`
	Self    string            `gluamapper:"self"`
	Levels  map[string]string `gluamapper:"levels"`
}

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, `
local n = 3
return {
    name = "tree",
    count = n * 2,
    enabled = true,
    self = arg[0],
    levels = {
        avl = "debug",
    },
}
`)
	defer cleanup()

	s := sample{Name: "default"}
	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "tree", s.Name, "name")
	assert.Equal(t, 6, s.Count, "count")
	assert.True(t, s.Enabled, "enabled")
	assert.Equal(t, fileName, s.Self, "arg[0]")
	assert.Equal(t, map[string]string{"avl": "debug"}, s.Levels, "levels")
}

func TestParseKeepsDefaults(t *testing.T) {
	fileName, cleanup := writeFile(t, `return { count = 1 }`)
	defer cleanup()

	s := sample{Name: "default"}
	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "default", s.Name, "name")
	assert.Equal(t, 1, s.Count, "count")
}

func TestParseErrors(t *testing.T) {
	fileName, cleanup := writeFile(t, `return 42`)
	defer cleanup()

	s := sample{}
	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "not a table")

	err = configuration.ParseConfigurationFile(fileName, s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "struct value")

	n := 1
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "int pointer")

	err = configuration.ParseConfigurationFile(filepath.Join(filepath.Dir(fileName), "missing.conf"), &s)
	assert.NotNil(t, err, "missing file")
}

func TestParseSyntaxError(t *testing.T) {
	fileName, cleanup := writeFile(t, `return {`)
	defer cleanup()

	s := sample{}
	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.NotNil(t, err, "syntax error")
}
