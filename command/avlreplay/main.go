// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] --config-file=FILE script...", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	if 0 == len(arguments) {
		exitwithstatus.Message("%s: at least one script is required", program)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// the verbose option shows everything on the console as well
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
		if nil == masterConfiguration.Logging.Levels {
			masterConfiguration.Logging.Levels = make(map[string]string)
		}
		masterConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// set up the fault panic log (now that logging is available
	if err := fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	if err := avl.Initialise(); nil != err {
		exitwithstatus.Message("%s: avl setup failed with error: %s", program, err)
	}
	defer avl.Finalise()

	// ------------------
	// start of real main
	// ------------------

	r := newReplayer(logger.New("replay"), os.Stdout, masterConfiguration.Check, masterConfiguration.PrintData)

	for _, name := range arguments {
		if err := replayFile(r, name, masterConfiguration.Keys); nil != err {
			log.Errorf("script: %q  error: %s", name, err)
			exitwithstatus.Message("%s: %s", program, err)
		}
		log.Infof("script: %q  nodes: %d", name, r.tree.Count())
	}
}

// decode and run one script file
func replayFile(r *replayer, name string, keys string) error {
	f, err := os.Open(name)
	if nil != err {
		return err
	}
	defer f.Close()

	operations, err := parseScript(name, f, keys)
	if nil != err {
		return err
	}
	return r.run(name, operations)
}
