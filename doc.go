//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package pickle implements a tiny embeddable command-language
// interpreter in the lineage of TCL-style "picol" systems: a program is
// a sequence of commands, each command a list of words, the first word
// naming a callable, and every value a byte string. The package exposes
// the interpreter core only; I/O commands such as puts, gets, source,
// and clock belong to an embedder (see cmd/pickle for a reference
// driver) and are registered through RegisterCommand.
package pickle
