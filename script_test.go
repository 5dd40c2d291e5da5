// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle_test

import (
	"testing"

	"github.com/nfiedler/pickle/internal/scripttest"
)

func TestScripts(t *testing.T) {
	scripttest.Run(t, "testdata/script/*.txtar")
}
