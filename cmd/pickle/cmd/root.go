//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "pickle",
		Short:        "pickle",
		SilenceUsage: true,
		Long:         `pickle is a tiny embeddable command-language interpreter, in the lineage of TCL-style "picol" systems.`,
	}

	configPath string
	dumpResult bool
	verbose    bool
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML options file")
	rootCmd.PersistentFlags().BoolVar(&dumpResult, "dump", false, "repr-dump the result, command table and current frame after evaluation (after each line in the REPL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable trace-level interpreter logging")
	return rootCmd.Execute()
}

// newLogger builds the logrus logger handed to the interpreter, wired to
// stderr at trace level under --verbose and otherwise silent.
func newLogger() *logrus.Logger {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.TraceLevel)
	} else {
		log.SetLevel(logrus.PanicLevel)
	}
	return log
}
