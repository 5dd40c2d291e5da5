// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMathFoldAddition(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("+ 1 2 3")
	require.True(t, r.Ok(), r.String())
	assert.Equal(t, "6", r.String())
}

func TestMathFoldSubtraction(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("- 10 1 2")
	require.True(t, r.Ok())
	assert.Equal(t, "7", r.String())
}

func TestMathFoldArityError(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("+ 1")
	assert.False(t, r.Ok())
	assert.Equal(t, EArgument, r.Code())
}

func TestMathFoldBadOperand(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("+ 1 notanumber")
	assert.False(t, r.Ok())
	assert.Equal(t, ENumber, r.Code())
}

func TestMathDivisionByZero(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("/ 1 0")
	assert.False(t, r.Ok())
	assert.Equal(t, EOperand, r.Code())
}

func TestMathMinMax(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("min 5 2 8")
	require.True(t, r.Ok())
	assert.Equal(t, "2", r.String())
	r = i.Eval("max 5 2 8")
	require.True(t, r.Ok())
	assert.Equal(t, "8", r.String())
}

func TestMathCompareChain(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("< 1 2 3")
	require.True(t, r.Ok())
	assert.Equal(t, "1", r.String())
	r = i.Eval("< 1 3 2")
	require.True(t, r.Ok())
	assert.Equal(t, "0", r.String())
}

func TestMathUnaryNot(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("! 0")
	require.True(t, r.Ok())
	assert.Equal(t, "1", r.String())
	r = i.Eval("! 5")
	require.True(t, r.Ok())
	assert.Equal(t, "0", r.String())
}

func TestMathAbs(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("abs -9")
	require.True(t, r.Ok())
	assert.Equal(t, "9", r.String())
}

func TestMathPow(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("pow 2 10")
	require.True(t, r.Ok())
	assert.Equal(t, "1024", r.String())
}

func TestMathPowNegativeExponentErrors(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("pow 2 -1")
	assert.False(t, r.Ok())
}

func TestMathLog(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("log 100 10")
	require.True(t, r.Ok())
	assert.Equal(t, "2", r.String())
}

func TestMathBitwise(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("& 6 3")
	require.True(t, r.Ok())
	assert.Equal(t, "2", r.String())
	r = i.Eval("<< 1 4")
	require.True(t, r.Ok())
	assert.Equal(t, "16", r.String())
}
