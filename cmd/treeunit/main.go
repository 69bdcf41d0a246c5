/*
Treeunit runs the self-check of the treeunit harness: a test tree which
exercises the assertion functions and the failure interception of leaf
tests through the harness itself.

Usage:

	treeunit [-config file] [-disable]

The flags are:

	-config file
	    read the runner's configuration from given YAML file, e.g.

	        enabled: true
	        output: stdout
	        log_level: info

	-disable
	    disable the run flag; nothing is reported.

Treeunit exits with status 1 if a test of the self-check failed and with
status 2 if the configuration couldn't be loaded.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/slukits/treeunit"
)

func main() {
	cfgFile := flag.String("config", "", "YAML runner configuration")
	disable := flag.Bool("disable", false, "skip the self-check")
	flag.Parse()

	cfg := treeunit.DefaultConfig()
	if *cfgFile != "" {
		var err error
		if cfg, err = treeunit.LoadConfig(*cfgFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *disable {
		cfg.Enabled = false
	}
	runner, err := cfg.Runner()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	_, res := runner.Run(selfCheck())
	if runner.Logger != nil {
		_ = runner.Logger.Sync()
	}
	if res.Failed > 0 {
		os.Exit(1)
	}
}
