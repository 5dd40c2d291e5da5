// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanAll(src string) []Token {
	sc := NewScanner(src)
	var toks []Token
	for {
		tok := sc.Next()
		toks = append(toks, tok)
		if tok.Kind == KindEOF || tok.Kind == KindError {
			return toks
		}
	}
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScannerWords(t *testing.T) {
	toks := scanAll("set foo bar")
	assert.Equal(t, []Kind{KindWord, KindSeparator, KindWord, KindSeparator, KindWord, KindEOF}, kinds(toks))
}

func TestScannerBraceWord(t *testing.T) {
	toks := scanAll("{a b c}")
	assert.Equal(t, KindWord, toks[0].Kind)
	assert.Equal(t, "{a b c}", toks[0].Text("{a b c}"))
	assert.Equal(t, "a b c", wordText(toks[0], "{a b c}"))
}

func TestScannerNestedBraces(t *testing.T) {
	src := "{a {b c} d}"
	toks := scanAll(src)
	assert.Equal(t, KindWord, toks[0].Kind)
	assert.Equal(t, "a {b c} d", wordText(toks[0], src))
}

func TestScannerUnterminatedBrace(t *testing.T) {
	toks := scanAll("{abc")
	assert.Equal(t, KindError, toks[len(toks)-1].Kind)
}

func TestScannerUnterminatedQuote(t *testing.T) {
	toks := scanAll(`"abc`)
	assert.Equal(t, KindError, toks[len(toks)-1].Kind)
}

func TestScannerVariable(t *testing.T) {
	toks := scanAll("$foo")
	assert.Equal(t, KindVariable, toks[0].Kind)
	assert.Equal(t, "foo", varName(toks[0].Text("$foo")))
}

func TestScannerBracedVariable(t *testing.T) {
	src := "${foo bar}"
	toks := scanAll(src)
	assert.Equal(t, KindVariable, toks[0].Kind)
	assert.Equal(t, "foo bar", varName(toks[0].Text(src)))
}

func TestScannerBareDollarIsWord(t *testing.T) {
	toks := scanAll("$ ")
	assert.Equal(t, KindWord, toks[0].Kind)
}

func TestScannerCommandSubstitution(t *testing.T) {
	toks := scanAll("[+ 1 2]")
	assert.Equal(t, KindCommand, toks[0].Kind)
}

func TestScannerNestedCommandBrackets(t *testing.T) {
	src := "[foo [bar]]"
	toks := scanAll(src)
	assert.Equal(t, KindCommand, toks[0].Kind)
	assert.Equal(t, src, toks[0].Text(src))
}

func TestScannerComment(t *testing.T) {
	toks := scanAll("# a comment\nset x 1")
	assert.Equal(t, KindEOL, toks[0].Kind)
	assert.Equal(t, KindWord, toks[1].Kind)
}

func TestScannerSemicolonIsEOL(t *testing.T) {
	toks := scanAll("a;b")
	assert.Equal(t, []Kind{KindWord, KindEOL, KindWord, KindEOF}, kinds(toks))
}

func TestScannerQuotedWordWithVariable(t *testing.T) {
	src := `"pre$name post"`
	toks := scanAll(src)
	assert.Equal(t, KindWord, toks[0].Kind)
	assert.Equal(t, "pre", toks[0].Text(src))
	assert.Equal(t, KindVariable, toks[1].Kind)
	assert.Equal(t, KindWord, toks[2].Kind)
}

func TestScannerEscapeWord(t *testing.T) {
	src := `a\tb`
	toks := scanAll(src)
	assert.Equal(t, KindEscapeWord, toks[0].Kind)
}

func TestScannerNoCommandsOption(t *testing.T) {
	sc := NewScannerOpts("[x]", ScanOptions{NoCommands: true})
	tok := sc.Next()
	assert.Equal(t, KindWord, tok.Kind)
}

func TestScannerNoVariablesOption(t *testing.T) {
	sc := NewScannerOpts("$x", ScanOptions{NoVariables: true})
	tok := sc.Next()
	assert.Equal(t, KindWord, tok.Kind)
}
