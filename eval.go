// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"bytes"
	"fmt"
	"strings"
)

// escapes maps an escape letter to its literal byte, per spec §4.2.
var escapes = map[byte]byte{
	'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r',
	't': '\t', 'v': '\v', 'e': 0x1b, '\\': '\\', '"': '"', '[': '[', ']': ']',
}

func hexDigit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

// unescape performs the byte-wise escape substitution of spec §4.2:
// `\n \r \t \v \f \a \b \e \\ \" \[ \] \xHH` (1-2 hex digits accepted),
// `\<newline>` as a line continuation (the newline and any following
// leading whitespace collapse to nothing), and an unrecognized escape
// passes its following byte through literally. An isolated trailing
// backslash is an error.
func unescape(s string) (string, error) {
	if strings.IndexByte(s, '\\') == -1 {
		return s, nil
	}
	var buf bytes.Buffer
	buf.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			buf.WriteByte(c)
			continue
		}
		if i == len(s)-1 {
			return "", fmt.Errorf("trailing backslash")
		}
		i++
		n := s[i]
		switch {
		case n == '\n':
			// line continuation: drop the backslash, the newline, and
			// any immediately following spaces/tabs
			for i+1 < len(s) && (s[i+1] == ' ' || s[i+1] == '\t') {
				i++
			}
		case n == 'x':
			v, consumed := readHex(s[i+1:], 2)
			if consumed == 0 {
				return "", fmt.Errorf("malformed \\x escape")
			}
			buf.WriteByte(byte(v))
			i += consumed
		default:
			if lit, ok := escapes[n]; ok {
				buf.WriteByte(lit)
			} else {
				buf.WriteByte(n)
			}
		}
	}
	return buf.String(), nil
}

// readHex reads up to max hex digits from s, returning the parsed value
// and the number of bytes consumed (0 if s does not start with a hex
// digit).
func readHex(s string, max int) (int, int) {
	v := 0
	n := 0
	for n < max && n < len(s) {
		d, ok := hexDigit(s[n])
		if !ok {
			break
		}
		v = v*16 + d
		n++
	}
	return v, n
}

// varName strips the `$` (and braces, for `${name}`) from a KindVariable
// token's full text, returning the bare variable name.
func varName(tok string) string {
	tok = tok[1:] // drop '$'
	if len(tok) >= 2 && tok[0] == '{' && tok[len(tok)-1] == '}' {
		return tok[1 : len(tok)-1]
	}
	return tok
}

// wordText returns the literal content of a KindWord token: brace-word
// tokens carry their delimiters in the byte range and must be trimmed;
// every other word kind is already exactly its content.
func wordText(tok Token, src string) string {
	t := tok.Text(src)
	if len(t) >= 2 && t[0] == '{' && t[len(t)-1] == '}' {
		return t[1 : len(t)-1]
	}
	return t
}

// appendWord folds a newly scanned piece of text into the argument
// vector being assembled, per spec §4.2 step 6: a fresh word starts a
// new argument, while a word immediately following another word (no
// intervening separator/end-of-line) concatenates onto the last one
// (interpolation, e.g. `foo$bar` or `"a${b}c"`).
func appendWord(argv []string, text string, prevKind Kind) []string {
	if prevKind == KindSeparator || prevKind == KindEOL {
		return append(argv, text)
	}
	if len(argv) == 0 {
		return append(argv, text)
	}
	argv[len(argv)-1] += text
	return argv
}

// splitParams splits a procedure's parameter spec on runs of whitespace,
// per spec §4.4's user-procedure call protocol.
func splitParams(spec string) []string {
	return strings.Fields(spec)
}
