// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoVersion(t *testing.T) {
	assert.Equal(t, version, evalStr(t, "info version"))
}

func TestInfoExists(t *testing.T) {
	i := NewInterpreter()
	require.NoError(t, i.SetVar("x", "1"))
	r := i.Eval("info exists x")
	require.True(t, r.Ok())
	assert.Equal(t, "1", r.String())
	r = i.Eval("info exists nope")
	require.True(t, r.Ok())
	assert.Equal(t, "0", r.String())
}

func TestInfoCommandsFiltered(t *testing.T) {
	assert.Equal(t, "set", evalStr(t, "info commands set"))
}

func TestInfoProcs(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("proc greet {} {}; info procs")
	require.True(t, r.Ok())
	assert.Equal(t, "greet", r.String())
}

func TestInfoArgsAndBody(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("proc f {x y} {+ $x $y}")
	require.True(t, r.Ok())
	r = i.Eval("info args f")
	require.True(t, r.Ok())
	assert.Equal(t, "x y", r.String())
	r = i.Eval("info body f")
	require.True(t, r.Ok())
	assert.Equal(t, "+ $x $y", r.String())
}

func TestInfoLevel(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("info level")
	require.True(t, r.Ok())
	assert.Equal(t, "0", r.String())
}

func TestInfoCmdcountIncreases(t *testing.T) {
	i := NewInterpreter()
	i.Eval("set x 1")
	before := i.Eval("info cmdcount").String()
	i.Eval("set x 2")
	after := i.Eval("info cmdcount").String()
	assert.NotEqual(t, before, after)
}

func TestInfoComplete(t *testing.T) {
	assert.Equal(t, "1", evalStr(t, `info complete {set x 1}`))
	i := NewInterpreter()
	r := i.Eval(`info complete {set x "unterminated}`)
	require.True(t, r.Ok())
	assert.Equal(t, "0", r.String())
}

func TestInfoSystemAttributes(t *testing.T) {
	assert.Equal(t, "64", evalStr(t, "info system number-bits"))
	assert.Equal(t, "-1", evalStr(t, "info system length"))
}

func TestInfoUnknownSubcommand(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("info bogus")
	assert.False(t, r.Ok())
}

func TestTraceOnOff(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("trace on")
	require.True(t, r.Ok())
	assert.True(t, i.traceEnabled)
	r = i.Eval("trace off")
	require.True(t, r.Ok())
	assert.False(t, i.traceEnabled)
}
