//
// Copyright 2011 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package pickle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandSet(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("set foo bar")
	require.True(t, r.Ok())
	assert.Equal(t, "bar", r.String())
	val, ok, err := i.GetVar("foo")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bar", val)
}

func TestCommandSetUndefined(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("set foo")
	assert.False(t, r.Ok())
	assert.Equal(t, EVariable, r.Code())
}

func TestCommandIf(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("if {1} { set foo bar } else { set foo quux }")
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "bar", r.String())
	val, ok, err := i.GetVar("foo")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bar", val)
}

func TestCommandIfFalseTakesElse(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("if {0} { set foo bar } else { set foo quux }")
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "quux", r.String())
}

func TestCommandIfElseif(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval(`if {0} { set x 1 } elseif {1} { set x 2 } else { set x 3 }`)
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "2", r.String())
}

func TestCommandIfNoElseFalls(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("if {0} { set foo bar }")
	require.True(t, r.Ok())
	assert.Equal(t, "", r.String())
}

func TestCommandIfThenKeyword(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("if {1} then { set foo bar } else { set foo quux }")
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "bar", r.String())
}

func TestCommandIfElseifThenKeyword(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval(`if {0} then { set x 1 } elseif {1} then { set x 2 } else { set x 3 }`)
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "2", r.String())
}

func TestCommandWhile(t *testing.T) {
	i := NewInterpreter()
	script := `
set i 0
set sum 0
while {< $i 5} {
	set sum [+ $sum $i]
	set i [+ $i 1]
}
set sum`
	r := i.Eval(script)
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "10", r.String())
}

func TestCommandWhileBreak(t *testing.T) {
	i := NewInterpreter()
	script := `
set i 0
while {1} {
	if {== $i 3} { break }
	set i [+ $i 1]
}
set i`
	r := i.Eval(script)
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "3", r.String())
}

func TestCommandWhileContinue(t *testing.T) {
	i := NewInterpreter()
	script := `
set i 0
set sum 0
while {< $i 5} {
	set i [+ $i 1]
	if {== [% $i 2] 0} { continue }
	set sum [+ $sum $i]
}
set sum`
	r := i.Eval(script)
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "9", r.String())
}

func TestCommandFor(t *testing.T) {
	i := NewInterpreter()
	script := `
set sum 0
for {set j 0} {< $j 5} {set j [+ $j 1]} {
	set sum [+ $sum $j]
}
set sum`
	r := i.Eval(script)
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "10", r.String())
}

func TestCommandCatchScript(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("catch {set x bad-var-reference-follows; set y $nope} err")
	require.True(t, r.Ok())
	val, _, _ := i.GetVar("err")
	assert.Equal(t, "-1", val)
}

func TestCommandReturnPlain(t *testing.T) {
	i := NewInterpreter()
	script := "proc f {} { return 42; return 99 }; f"
	r := i.Eval(script)
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "42", r.String())
}

func TestCommandReturnCodeOk(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("return -code ok done")
	require.True(t, r.Ok())
	assert.Equal(t, "done", r.String())
}

func TestCommandReturnBareCode(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("return fail -1")
	assert.False(t, r.Ok())
	assert.Equal(t, StatusError, r.Status())
	// The "Error: " prefix is spec §7's grep-for-"Error" contract,
	// applied uniformly to every StatusError result.
	assert.Equal(t, "Error: fail", r.String())
}

func TestCommandProcBasic(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("proc double {x} {* $x 2}; double 21")
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "42", r.String())
}

func TestCommandRename(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("rename set setvar; setvar x 9; set x")
	assert.False(t, r.Ok())
	r = i.Eval("setvar y 9; setvar y")
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "9", r.String())
}

func TestCommandUnset(t *testing.T) {
	i := NewInterpreter()
	require.NoError(t, i.SetVar("foo", "bar"))
	r := i.Eval("unset foo")
	require.True(t, r.Ok())
	_, ok, _ := i.GetVar("foo")
	assert.False(t, ok)
}

func TestCommandEval(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval(`eval {set foo bar}`)
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "bar", r.String())
}

func TestCommandSubst(t *testing.T) {
	i := NewInterpreter()
	require.NoError(t, i.SetVar("name", "world"))
	r := i.Eval(`subst {hello $name}`)
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "hello world", r.String())
}

func TestCommandSubstNoVariables(t *testing.T) {
	i := NewInterpreter()
	require.NoError(t, i.SetVar("name", "world"))
	r := i.Eval(`subst -novariables {hello $name}`)
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "hello $name", r.String())
}

func TestCommandUplevel(t *testing.T) {
	i := NewInterpreter()
	script := `
proc setCaller {} {
	uplevel 1 {set x fromcallee}
}
set x fromcaller
setCaller
set x`
	r := i.Eval(script)
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "fromcallee", r.String())
}

func TestCommandUnsetForbiddenDuringUplevel(t *testing.T) {
	i := NewInterpreter()
	script := `
proc dropCaller {} {
	uplevel 1 {unset x}
}
set x fromcaller
dropCaller`
	r := i.Eval(script)
	assert.False(t, r.Ok(), r.String())
	val, ok, _ := i.GetVar("x")
	assert.True(t, ok)
	assert.Equal(t, "fromcaller", val)
}

func TestCommandApply(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval(`apply {{x y} {+ $x $y}} 3 4`)
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "7", r.String())
}

func TestCommandBreakOutsideLoopIsStatus(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("break")
	assert.Equal(t, StatusBreak, r.Status())
}
