// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalStr(t *testing.T, script string) string {
	t.Helper()
	i := NewInterpreter()
	r := i.Eval(script)
	require.True(t, r.Ok(), "%s: %s", script, r.String())
	return r.String()
}

func TestStringLength(t *testing.T) {
	assert.Equal(t, "5", evalStr(t, "string length hello"))
}

func TestStringIndex(t *testing.T) {
	assert.Equal(t, "e", evalStr(t, "string index hello 1"))
	assert.Equal(t, "o", evalStr(t, "string index hello end"))
}

func TestStringIndexNegativeClampsToFirstByte(t *testing.T) {
	assert.Equal(t, "a", evalStr(t, "string index abc -1"))
	assert.Equal(t, "a", evalStr(t, "string index abc -99"))
}

func TestStringRange(t *testing.T) {
	assert.Equal(t, "ell", evalStr(t, "string range hello 1 3"))
	assert.Equal(t, "llo", evalStr(t, "string range hello 2 end"))
}

func TestStringCase(t *testing.T) {
	assert.Equal(t, "HELLO", evalStr(t, "string toupper hello"))
	assert.Equal(t, "hello", evalStr(t, "string tolower HELLO"))
}

func TestStringReverse(t *testing.T) {
	assert.Equal(t, "olleh", evalStr(t, "string reverse hello"))
}

func TestStringTrim(t *testing.T) {
	assert.Equal(t, "hi", evalStr(t, "string trim {  hi  }"))
	assert.Equal(t, "hixx", evalStr(t, "string trimleft xxhixx x"))
}

func TestStringRepeat(t *testing.T) {
	assert.Equal(t, "abcabcabc", evalStr(t, "string repeat abc 3"))
}

func TestStringFirstLast(t *testing.T) {
	assert.Equal(t, "2", evalStr(t, "string first ll hello"))
	assert.Equal(t, "-1", evalStr(t, "string first zz hello"))
	assert.Equal(t, "3", evalStr(t, "string last l hello"))
}

func TestStringEqualUnequal(t *testing.T) {
	assert.Equal(t, "1", evalStr(t, "string equal foo foo"))
	assert.Equal(t, "0", evalStr(t, "string equal foo bar"))
	assert.Equal(t, "1", evalStr(t, "string unequal foo bar"))
}

func TestStringCompare(t *testing.T) {
	assert.Equal(t, "0", evalStr(t, "string compare abc abc"))
	assert.Equal(t, "-1", evalStr(t, "string compare abc abd"))
}

func TestStringIsInteger(t *testing.T) {
	assert.Equal(t, "1", evalStr(t, "string is integer 42"))
	assert.Equal(t, "0", evalStr(t, "string is integer abc"))
}

func TestStringIsAlpha(t *testing.T) {
	assert.Equal(t, "1", evalStr(t, "string is alpha abc"))
	assert.Equal(t, "0", evalStr(t, "string is alpha abc1"))
	assert.Equal(t, "1", evalStr(t, "string is alpha {}"))
}

func TestStringMatch(t *testing.T) {
	assert.Equal(t, "1", evalStr(t, "string match a*c abc"))
	assert.Equal(t, "1", evalStr(t, "string match -nocase ABC abc"))
}

func TestStringTrDelete(t *testing.T) {
	assert.Equal(t, "hllo", evalStr(t, "string tr d e hello"))
}

func TestStringTrSqueeze(t *testing.T) {
	assert.Equal(t, "helo", evalStr(t, "string tr s l hello"))
}

func TestStringTrReplace(t *testing.T) {
	assert.Equal(t, "hippo", evalStr(t, "string tr r el ip hello"))
}

func TestStringTrComplement(t *testing.T) {
	assert.Equal(t, "-ell-", evalStr(t, "string tr c el - hello"))
}

func TestStringReplace(t *testing.T) {
	assert.Equal(t, "hXXXo", evalStr(t, "string replace hello 1 3 XXX"))
}

func TestStringHashDeterministic(t *testing.T) {
	a := evalStr(t, "string hash hello")
	b := evalStr(t, "string hash hello")
	assert.Equal(t, a, b)
}

func TestStringDec2HexHex2Dec(t *testing.T) {
	assert.Equal(t, "ff", evalStr(t, "string dec2hex 255"))
	assert.Equal(t, "255", evalStr(t, "string hex2dec ff"))
}

func TestStringDec2BaseBase2Dec(t *testing.T) {
	assert.Equal(t, "11111111", evalStr(t, "string dec2base 255 2"))
	assert.Equal(t, "255", evalStr(t, "string base2dec 11111111 2"))
}

func TestStringOrdinalChar(t *testing.T) {
	assert.Equal(t, "97", evalStr(t, "string ordinal a"))
	assert.Equal(t, "a", evalStr(t, "string char 97"))
}

func TestStringUnknownSubcommand(t *testing.T) {
	i := NewInterpreter()
	r := i.Eval("string bogus abc")
	assert.False(t, r.Ok())
	assert.Equal(t, EArgument, r.Code())
}
