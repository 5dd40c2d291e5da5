//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command pickle is a small driver for the pickle interpreter: it wires
// up the I/O commands the core itself deliberately excludes (puts,
// gets, source, clock, heap, getenv, exit) and runs a script file or an
// interactive read-eval-print loop.
package main

import (
	"fmt"
	"os"

	"github.com/nfiedler/pickle/cmd/pickle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
