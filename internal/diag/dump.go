//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package diag formats interpreter-facing values for human inspection,
// shared by the core's debug hooks and the pickle CLI's --dump flag.
package diag

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
)

// Dump writes a repr-formatted rendering of v to w, labeled with name.
func Dump(w io.Writer, name string, v interface{}) {
	fmt.Fprintf(w, "%s = %s\n", name, repr.String(v, repr.Indent("  ")))
}

// String returns the repr-formatted rendering of v, for callers that
// want the text without writing it immediately (e.g. to fold into a
// logrus field).
func String(v interface{}) string {
	return repr.String(v)
}
