// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"strconv"
	"strings"
)

func registerStringCommands(i *Interpreter) {
	i.cmds.register("string", commandString)
}

// commandString dispatches `string <subcommand> ...`, per spec §4.5.
func commandString(i *Interpreter, argv []string) Result {
	if len(argv) < 2 {
		return arityError(argv[0], "string subcommand ?arg ...?")
	}
	sub := argv[1]
	args := argv[2:]
	switch sub {
	case "length":
		return stringLength(args)
	case "index":
		return stringIndex(args)
	case "range":
		return stringRange(args)
	case "toupper":
		return stringMap(args, strings.ToUpper)
	case "tolower":
		return stringMap(args, strings.ToLower)
	case "reverse":
		return stringReverse(args)
	case "trim":
		return stringTrim(args, strings.Trim)
	case "trimleft":
		return stringTrim(args, strings.TrimLeft)
	case "trimright":
		return stringTrim(args, strings.TrimRight)
	case "repeat":
		return stringRepeat(args)
	case "first":
		return stringFirst(args)
	case "last":
		return stringLast(args)
	case "equal":
		return stringCompareOp(args, func(c int) bool { return c == 0 }, false)
	case "unequal":
		return stringCompareOp(args, func(c int) bool { return c != 0 }, false)
	case "compare":
		return stringCompareNum(args, false)
	case "compare-no-case":
		return stringCompareNum(args, true)
	case "is":
		return stringIs(args)
	case "match":
		return stringMatch(args)
	case "tr":
		return stringTr(args)
	case "replace":
		return stringReplace(args)
	case "hash":
		return stringHash(args)
	case "dec2hex":
		return stringBaseConv(args, 10, 16)
	case "hex2dec":
		return stringBaseConv(args, 16, 10)
	case "dec2base":
		return stringBaseConvN(args)
	case "base2dec":
		return stringParseBaseN(args)
	case "ordinal":
		return stringOrdinal(args)
	case "char":
		return stringChar(args)
	default:
		return Errorf(EArgument, "unknown or ambiguous subcommand %q", sub)
	}
}

func stringLength(args []string) Result {
	if len(args) != 1 {
		return arityError("string length", "string length string")
	}
	return OkResult(strconv.Itoa(len(args[0])))
}

// clampIndex maps a possibly-negative Tcl-style index to a byte offset,
// clamped to [0, n] (spec §4.5: out-of-range clamps to nearest end).
func clampIndex(idx, n int) int {
	if idx < 0 {
		idx = n + idx
	}
	if idx < 0 {
		return 0
	}
	if idx > n {
		return n
	}
	return idx
}

func parseIndexArg(s string, n int) (int, error) {
	if s == "end" {
		return n - 1, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, exprErrf("bad index %q", s)
	}
	return v, nil
}

func stringIndex(args []string) Result {
	if len(args) != 2 {
		return arityError("string index", "string index string charIndex")
	}
	s := args[0]
	if len(s) == 0 {
		return OkResult("")
	}
	idx, err := parseIndexArg(args[1], len(s))
	if err != nil {
		return Errorf(EArgument, "%s", err.Error())
	}
	// Unlike the from-end clamping clampIndex applies elsewhere, a
	// negative charIndex here clamps to the first byte, not the last
	// (spec §8's explicit boundary).
	switch {
	case idx < 0:
		idx = 0
	case idx >= len(s):
		idx = len(s) - 1
	}
	return OkResult(string(s[idx]))
}

func stringRange(args []string) Result {
	if len(args) != 3 {
		return arityError("string range", "string range string first last")
	}
	s := args[0]
	first, err := parseIndexArg(args[1], len(s))
	if err != nil {
		return Errorf(EArgument, "%s", err.Error())
	}
	last, err := parseIndexArg(args[2], len(s))
	if err != nil {
		return Errorf(EArgument, "%s", err.Error())
	}
	first = clampIndex(first, len(s))
	last = clampIndex(last+1, len(s))
	if first > last {
		return OkResult("")
	}
	return OkResult(s[first:last])
}

func stringMap(args []string, fn func(string) string) Result {
	if len(args) != 1 {
		return arityError("string", "string toupper|tolower string")
	}
	return OkResult(fn(args[0]))
}

func stringReverse(args []string) Result {
	if len(args) != 1 {
		return arityError("string reverse", "string reverse string")
	}
	b := []byte(args[0])
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return OkResult(string(b))
}

func stringTrim(args []string, fn func(string, string) string) Result {
	if len(args) != 1 && len(args) != 2 {
		return arityError("string trim", "string trim string ?chars?")
	}
	cutset := " \t\n\r\v\f"
	if len(args) == 2 {
		cutset = args[1]
	}
	return OkResult(fn(args[0], cutset))
}

func stringRepeat(args []string) Result {
	if len(args) != 2 {
		return arityError("string repeat", "string repeat string count")
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 {
		return Errorf(EArgument, "bad count %q", args[1])
	}
	return OkResult(strings.Repeat(args[0], n))
}

func stringFirst(args []string) Result {
	if len(args) != 2 && len(args) != 3 {
		return arityError("string first", "string first needle haystack ?start?")
	}
	needle, hay := args[0], args[1]
	start := 0
	if len(args) == 3 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return Errorf(EArgument, "bad start index %q", args[2])
		}
		start = clampIndex(n, len(hay))
	}
	if start > len(hay) {
		return OkResult("-1")
	}
	idx := strings.Index(hay[start:], needle)
	if idx < 0 {
		return OkResult("-1")
	}
	return OkResult(strconv.Itoa(idx + start))
}

func stringLast(args []string) Result {
	if len(args) != 2 {
		return arityError("string last", "string last needle haystack")
	}
	idx := strings.LastIndex(args[1], args[0])
	return OkResult(strconv.Itoa(idx))
}

func stringCompareOp(args []string, test func(int) bool, nocase bool) Result {
	if len(args) != 2 {
		return arityError("string equal", "string equal string1 string2")
	}
	a, b := args[0], args[1]
	return OkResult(formatBase(boolInt(test(strings.Compare(a, b))), 10))
}

func stringCompareNum(args []string, nocase bool) Result {
	if len(args) != 2 {
		return arityError("string compare", "string compare string1 string2")
	}
	a, b := args[0], args[1]
	if nocase {
		a, b = strings.ToLower(a), strings.ToLower(b)
	}
	return OkResult(strconv.Itoa(strings.Compare(a, b)))
}

func stringIs(args []string) Result {
	if len(args) != 2 {
		return arityError("string is", "string is class string")
	}
	class, s := args[0], args[1]
	ok := isClass(class, s)
	return OkResult(formatBase(boolInt(ok), 10))
}

func isClass(class, s string) bool {
	switch class {
	case "true":
		return !isFalse(s) && (s != "")
	case "false":
		return isFalse(s)
	case "boolean":
		return isFalse(s) || isTrue(s)
	case "integer":
		_, err := parseInt(s)
		return err == nil
	}
	if s == "" {
		return true // empty string satisfies every character-class test
	}
	for i := 0; i < len(s); i++ {
		if !byteIsClass(class, s[i]) {
			return false
		}
	}
	return true
}

func byteIsClass(class string, b byte) bool {
	switch class {
	case "alnum":
		return isAlphaByte(b) || isDigitByte(b)
	case "alpha":
		return isAlphaByte(b)
	case "digit":
		return isDigitByte(b)
	case "graph":
		return b > ' ' && b < 0x7f
	case "lower":
		return b >= 'a' && b <= 'z'
	case "print":
		return b >= ' ' && b < 0x7f
	case "punct":
		return strings.IndexByte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", b) >= 0
	case "space":
		return isSpaceByte(b)
	case "upper":
		return b >= 'A' && b <= 'Z'
	case "xdigit":
		_, ok := hexDigit(b)
		return ok
	case "ascii":
		return b < 0x80
	case "control":
		return b < 0x20 || b == 0x7f
	case "wordchar":
		return isWordByte(b)
	default:
		return false
	}
}

func isAlphaByte(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func stringMatch(args []string) Result {
	nocase := false
	if len(args) == 3 && args[0] == "-nocase" {
		nocase = true
		args = args[1:]
	}
	if len(args) != 2 {
		return arityError("string match", "string match ?-nocase? pattern string")
	}
	ok, err := globMatch(args[0], args[1], nocase)
	if err != nil {
		return Errorf(ESyntax, "%s", err.Error())
	}
	return OkResult(formatBase(boolInt(ok), 10))
}

// stringTr implements `string tr d|r|c|s set1 ?set2? string`: delete,
// replace, complement, or squeeze bytes drawn from set1.
func stringTr(args []string) Result {
	if len(args) < 3 {
		return arityError("string tr", "string tr d|r|c|s set1 ?set2? string")
	}
	mode := args[0]
	switch mode {
	case "d", "s":
		if len(args) != 3 {
			return arityError("string tr", "string tr d|s set1 string")
		}
		set1, s := args[1], args[2]
		return OkResult(trDeleteOrSqueeze(mode == "s", set1, s))
	case "r", "c":
		if len(args) != 4 {
			return arityError("string tr", "string tr r|c set1 set2 string")
		}
		set1, set2, s := args[1], args[2], args[3]
		return OkResult(trReplaceOrComplement(mode == "c", set1, set2, s))
	default:
		return Errorf(EArgument, "unknown tr mode %q", mode)
	}
}

func trDeleteOrSqueeze(squeeze bool, set1, s string) string {
	var b strings.Builder
	var last byte
	lastSet := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(set1, c) >= 0 {
			if squeeze {
				if !(lastSet && last == c) {
					b.WriteByte(c)
				}
				last, lastSet = c, true
				continue
			}
			continue // delete
		}
		lastSet = false
		b.WriteByte(c)
	}
	return b.String()
}

// trReplaceOrComplement implements `tr r` (replace each byte found in
// set1 with the byte at the same position in set2, clamped to set2's
// last byte once set1 runs longer) and `tr c` (replace every byte NOT
// in set1 with set2's first byte).
func trReplaceOrComplement(complement bool, set1, set2, s string) string {
	if len(set2) == 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if complement {
			if strings.IndexByte(set1, c) >= 0 {
				b.WriteByte(c)
			} else {
				b.WriteByte(set2[0])
			}
			continue
		}
		idx := strings.IndexByte(set1, c)
		if idx < 0 {
			b.WriteByte(c)
			continue
		}
		if idx >= len(set2) {
			idx = len(set2) - 1
		}
		b.WriteByte(set2[idx])
	}
	return b.String()
}

func stringReplace(args []string) Result {
	if len(args) != 4 {
		return arityError("string replace", "string replace string first last newstring")
	}
	s := args[0]
	first, err := parseIndexArg(args[1], len(s))
	if err != nil {
		return Errorf(EArgument, "%s", err.Error())
	}
	last, err := parseIndexArg(args[2], len(s))
	if err != nil {
		return Errorf(EArgument, "%s", err.Error())
	}
	first = clampIndex(first, len(s))
	last = clampIndex(last+1, len(s))
	if first > last {
		return OkResult(s)
	}
	return OkResult(s[:first] + args[3] + s[last:])
}

func stringHash(args []string) Result {
	if len(args) != 1 {
		return arityError("string hash", "string hash string")
	}
	return OkResult(strconv.FormatUint(uint64(djb2(args[0])), 10))
}

func stringBaseConv(args []string, fromBase, toBase int) Result {
	if len(args) != 1 {
		return arityError("string", "string dec2hex|hex2dec value")
	}
	n, err := parseBase(args[0], fromBase)
	if err != nil {
		return numberError(err)
	}
	return OkResult(formatBase(n, toBase))
}

func stringBaseConvN(args []string) Result {
	if len(args) != 2 {
		return arityError("string dec2base", "string dec2base value base")
	}
	base, convErr := strconv.Atoi(args[1])
	if convErr != nil || base < 2 || base > 36 {
		return Errorf(EArgument, "bad base %q", args[1])
	}
	n, err := parseInt(args[0])
	if err != nil {
		return numberError(err)
	}
	return OkResult(formatBase(n, base))
}

func stringParseBaseN(args []string) Result {
	if len(args) != 2 {
		return arityError("string base2dec", "string base2dec value base")
	}
	base, convErr := strconv.Atoi(args[1])
	if convErr != nil || base < 2 || base > 36 {
		return Errorf(EArgument, "bad base %q", args[1])
	}
	n, err := parseBase(args[0], base)
	if err != nil {
		return numberError(err)
	}
	return OkResult(formatBase(n, 10))
}

func stringOrdinal(args []string) Result {
	if len(args) != 1 || len(args[0]) == 0 {
		return arityError("string ordinal", "string ordinal char")
	}
	return OkResult(strconv.Itoa(int(args[0][0])))
}

func stringChar(args []string) Result {
	if len(args) != 1 {
		return arityError("string char", "string char ordinal")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n > 255 {
		return Errorf(EArgument, "bad ordinal %q", args[0])
	}
	return OkResult(string([]byte{byte(n)}))
}
