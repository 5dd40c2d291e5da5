// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

// globMatchDepth bounds glob recursion at a fixed depth of 4096 nested
// `*` expansions. It does not follow the interpreter's Options.MaxLevel.
const globMatchDepth = 1 << 12

// globMatch implements the mini glob matcher of spec §4.5: `*` (any
// run), `?` (any single byte), `\` escape, and the character classes
// `\w \W \d \D \s \S`; every other byte matches literally. nocase folds
// ASCII letters before comparing.
func globMatch(pattern, text string, nocase bool) (bool, error) {
	return globMatchAt(pattern, text, nocase, 0)
}

func globMatchAt(pattern, text string, nocase bool, depth int) (bool, error) {
	if depth > globMatchDepth {
		return false, exprErrf("glob pattern recursion exceeded")
	}
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			// collapse consecutive '*'
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true, nil
			}
			for i := 0; i <= len(text); i++ {
				ok, err := globMatchAt(pattern, text[i:], nocase, depth+1)
				if err != nil {
					return false, err
				}
				if ok {
					return true, nil
				}
			}
			return false, nil
		case '?':
			if len(text) == 0 {
				return false, nil
			}
			pattern = pattern[1:]
			text = text[1:]
		case '\\':
			if len(pattern) < 2 {
				return false, exprErrf("trailing backslash in pattern")
			}
			cls := pattern[1]
			if ok, isClass := globClass(cls); isClass {
				if len(text) == 0 || !ok(text[0]) {
					return false, nil
				}
				pattern = pattern[2:]
				text = text[1:]
				continue
			}
			if len(text) == 0 || !globByteEq(text[0], cls, nocase) {
				return false, nil
			}
			pattern = pattern[2:]
			text = text[1:]
		default:
			if len(text) == 0 || !globByteEq(text[0], pattern[0], nocase) {
				return false, nil
			}
			pattern = pattern[1:]
			text = text[1:]
		}
	}
	return len(text) == 0, nil
}

func globByteEq(a, b byte, nocase bool) bool {
	if nocase {
		a = lowerByte(a)
		b = lowerByte(b)
	}
	return a == b
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// globClass returns the predicate for one of the `\w \W \d \D \s \S`
// escapes and whether cls names a class at all.
func globClass(cls byte) (func(byte) bool, bool) {
	switch cls {
	case 'w':
		return isWordByte, true
	case 'W':
		return func(b byte) bool { return !isWordByte(b) }, true
	case 'd':
		return func(b byte) bool { return b >= '0' && b <= '9' }, true
	case 'D':
		return func(b byte) bool { return !(b >= '0' && b <= '9') }, true
	case 's':
		return isSpaceByte, true
	case 'S':
		return func(b byte) bool { return !isSpaceByte(b) }, true
	default:
		return nil, false
	}
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
