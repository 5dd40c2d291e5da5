// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexMatchLiteral(t *testing.T) {
	ok, rng, err := regexMatch("abc", "xxabcxx", false, false, false, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [2]int{2, 4}, rng)
}

func TestRegexMatchGroupAlternation(t *testing.T) {
	ok, rng, err := regexMatch("^a(b|c)?d$", "abd", false, false, false, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 2}, rng)
}

func TestRegexMatchGroupAlternationOtherBranch(t *testing.T) {
	ok, rng, err := regexMatch("^a(b|c)?d$", "acd", false, false, false, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 2}, rng)
}

func TestRegexMatchGroupOptionalAbsent(t *testing.T) {
	ok, rng, err := regexMatch("^a(b|c)?d$", "ad", false, false, false, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 1}, rng)
}

func TestRegexMatchNoMatch(t *testing.T) {
	ok, _, err := regexMatch("^a(b|c)?d$", "axd", false, false, false, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegexMatchStartOffset(t *testing.T) {
	ok, rng, err := regexMatch("a", "banana", false, false, false, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [2]int{3, 3}, rng)
}

func TestRegexMatchGreedyVsLazy(t *testing.T) {
	okGreedy, rngGreedy, err := regexMatch("a.*b", "axbxb", false, false, false, 0)
	require.NoError(t, err)
	assert.True(t, okGreedy)
	assert.Equal(t, [2]int{0, 4}, rngGreedy)

	okLazy, rngLazy, err := regexMatch("a.*b", "axbxb", false, true, false, 0)
	require.NoError(t, err)
	assert.True(t, okLazy)
	assert.Equal(t, [2]int{0, 2}, rngLazy)
}

func TestRegexMatchClassEscape(t *testing.T) {
	ok, rng, err := regexMatch(`\d+`, "ab123cd", false, false, false, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [2]int{2, 4}, rng)
}

func TestRegexMatchNeverEmpty(t *testing.T) {
	ok, _, err := regexMatch("x*", "aaa", false, false, false, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCommandReg(t *testing.T) {
	assert.Equal(t, "0 2", evalStr(t, `reg {^a(b|c)?d$} abd`))
	assert.Equal(t, "-1 -1", evalStr(t, `reg {^a(b|c)?d$} xyz`))
}

func TestCommandRegNocase(t *testing.T) {
	assert.Equal(t, "0 2", evalStr(t, `reg -nocase abc ABC`))
}
