// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"fmt"
	"strings"
)

// listScanOpts are spec §4.5's "all substitution toggles off": a list is
// just the parser's word tokens, with `$` and `[` treated as ordinary
// bytes and backslash not consuming a following character.
var listScanOpts = ScanOptions{NoEscape: true, NoVariables: true, NoCommands: true}

// splitList parses s as a Pickle list: the word tokens a substitution-free
// scan of s produces, per spec §4.5.
func splitList(s string) ([]string, error) {
	sc := NewScannerOpts(s, listScanOpts)
	var out []string
	for {
		tok := sc.Next()
		switch tok.Kind {
		case KindEOF:
			return out, nil
		case KindError:
			return nil, fmt.Errorf("%s", tok.Error())
		case KindSeparator, KindEOL:
			continue
		default:
			out = append(out, wordText(tok, s))
		}
	}
}

// needsQuoting reports whether el must be quoted or escaped to round-trip
// as a single list element (spec §4.5: whitespace, braces, `[`, `]`, or
// `$`, or the empty string).
func needsQuoting(el string) bool {
	if el == "" {
		return true
	}
	return strings.ContainsAny(el, " \t\n\r;{}[]$\"")
}

// quoteElement renders el so that splitList(joinList([el])) == [el]. El
// is brace-wrapped when its own braces balance the way scanBrace counts
// them (a backslash hides the byte after it, so a trailing backslash
// never balances); otherwise each special byte is backslash-escaped
// instead of brace-wrapping the whole element.
func quoteElement(el string) string {
	if !needsQuoting(el) {
		return el
	}
	depth := 0
	for i := 0; i < len(el) && depth >= 0; i++ {
		switch {
		case el[i] == '{':
			depth++
		case el[i] == '}':
			depth--
		case el[i] == '\\' && i == len(el)-1:
			depth = -1
		case el[i] == '\\':
			i++
		}
	}
	if depth == 0 {
		return "{" + el + "}"
	}
	var b strings.Builder
	for i := 0; i < len(el); i++ {
		c := el[i]
		switch c {
		case ' ', '\t', '\n', '\r', ';', '{', '}', '[', ']', '$', '"', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// joinList assembles elements into a Pickle list string, quoting each
// element as needed and separating with single spaces.
func joinList(elements []string) string {
	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = quoteElement(e)
	}
	return strings.Join(parts, " ")
}

// joinSep is like joinList but with no quoting and a caller-supplied
// separator, used by `join` and `conjoin`.
func joinSep(elements []string, sep string) string {
	return strings.Join(elements, sep)
}
