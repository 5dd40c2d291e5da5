// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"sort"
	"strconv"
	"strings"
)

// registerListCommands installs the list operators of spec §4.5, all
// built atop splitList/joinList (list.go) rather than a dedicated list
// value type, per the byte-string data model.
func registerListCommands(i *Interpreter) {
	i.cmds.register("llength", commandLlength)
	i.cmds.register("lindex", commandLindex)
	i.cmds.register("linsert", commandLinsert)
	i.cmds.register("lset", commandLset)
	i.cmds.register("lreplace", commandLreplace)
	i.cmds.register("lrange", commandLrange)
	i.cmds.register("lreverse", commandLreverse)
	i.cmds.register("lsort", commandLsort)
	i.cmds.register("lsearch", commandLsearch)
	i.cmds.register("lrepeat", commandLrepeat)
	i.cmds.register("lappend", commandLappend)
	i.cmds.register("split", commandSplit)
	i.cmds.register("list", commandList)
	i.cmds.register("concat", commandConcat)
	i.cmds.register("conjoin", commandConjoin)
	i.cmds.register("join", commandJoin)
}

func listError(err error) Result {
	return Errorf(ESyntax, "%s", err.Error())
}

func commandLlength(i *Interpreter, argv []string) Result {
	if len(argv) != 2 {
		return arityError(argv[0], "llength list")
	}
	els, err := splitList(argv[1])
	if err != nil {
		return listError(err)
	}
	return OkResult(strconv.Itoa(len(els)))
}

func commandLindex(i *Interpreter, argv []string) Result {
	if len(argv) != 3 {
		return arityError(argv[0], "lindex list index")
	}
	els, err := splitList(argv[1])
	if err != nil {
		return listError(err)
	}
	idx, perr := parseIndexArg(argv[2], len(els))
	if perr != nil {
		return Errorf(EArgument, "%s", perr.Error())
	}
	if idx < 0 || idx >= len(els) {
		return OkResult("")
	}
	return OkResult(els[idx])
}

func commandLinsert(i *Interpreter, argv []string) Result {
	if len(argv) < 3 {
		return arityError(argv[0], "linsert list index ?element ...?")
	}
	els, err := splitList(argv[1])
	if err != nil {
		return listError(err)
	}
	idx, perr := parseIndexArg(argv[2], len(els))
	if perr != nil {
		return Errorf(EArgument, "%s", perr.Error())
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(els) {
		idx = len(els)
	}
	out := make([]string, 0, len(els)+len(argv)-3)
	out = append(out, els[:idx]...)
	out = append(out, argv[3:]...)
	out = append(out, els[idx:]...)
	return OkResult(joinList(out))
}

func commandLset(i *Interpreter, argv []string) Result {
	if len(argv) != 4 {
		return arityError(argv[0], "lset varName index newValue")
	}
	cur, ok, err := i.GetVar(argv[1])
	if err != nil {
		return Errorf(EVariable, "%s", err.Error())
	}
	if !ok {
		return Errorf(EVariable, "no such variable %q", argv[1])
	}
	els, serr := splitList(cur)
	if serr != nil {
		return listError(serr)
	}
	idx, perr := parseIndexArg(argv[2], len(els))
	if perr != nil {
		return Errorf(EArgument, "%s", perr.Error())
	}
	if idx < 0 || idx >= len(els) {
		return Errorf(ENumRange, "list index %q out of range", argv[2])
	}
	els[idx] = argv[3]
	joined := joinList(els)
	if err := i.SetVar(argv[1], joined); err != nil {
		return Errorf(EVariable, "%s", err.Error())
	}
	return OkResult(joined)
}

func commandLreplace(i *Interpreter, argv []string) Result {
	if len(argv) < 4 {
		return arityError(argv[0], "lreplace list first last ?element ...?")
	}
	els, err := splitList(argv[1])
	if err != nil {
		return listError(err)
	}
	first, perr := parseIndexArg(argv[2], len(els))
	if perr != nil {
		return Errorf(EArgument, "%s", perr.Error())
	}
	last, perr := parseIndexArg(argv[3], len(els))
	if perr != nil {
		return Errorf(EArgument, "%s", perr.Error())
	}
	first = clampIndex(first, len(els))
	last = clampIndex(last+1, len(els))
	if first > last {
		last = first
	}
	out := make([]string, 0, len(els)-(last-first)+len(argv)-4)
	out = append(out, els[:first]...)
	out = append(out, argv[4:]...)
	out = append(out, els[last:]...)
	return OkResult(joinList(out))
}

func commandLrange(i *Interpreter, argv []string) Result {
	if len(argv) != 4 {
		return arityError(argv[0], "lrange list first last")
	}
	els, err := splitList(argv[1])
	if err != nil {
		return listError(err)
	}
	first, perr := parseIndexArg(argv[2], len(els))
	if perr != nil {
		return Errorf(EArgument, "%s", perr.Error())
	}
	last, perr := parseIndexArg(argv[3], len(els))
	if perr != nil {
		return Errorf(EArgument, "%s", perr.Error())
	}
	first = clampIndex(first, len(els))
	last = clampIndex(last+1, len(els))
	if first > last {
		return OkResult("")
	}
	return OkResult(joinList(els[first:last]))
}

func commandLreverse(i *Interpreter, argv []string) Result {
	if len(argv) != 2 {
		return arityError(argv[0], "lreverse list")
	}
	els, err := splitList(argv[1])
	if err != nil {
		return listError(err)
	}
	for a, b := 0, len(els)-1; a < b; a, b = a+1, b-1 {
		els[a], els[b] = els[b], els[a]
	}
	return OkResult(joinList(els))
}

// commandLsort implements `lsort ?-ascii|-integer? ?-decreasing? ?-unique? list`.
func commandLsort(i *Interpreter, argv []string) Result {
	if len(argv) < 2 {
		return arityError(argv[0], "lsort ?-integer? ?-decreasing? ?-unique? list")
	}
	numeric := false
	decreasing := false
	unique := false
	idx := 1
	for idx < len(argv)-1 {
		switch argv[idx] {
		case "-ascii":
			numeric = false
		case "-integer":
			numeric = true
		case "-decreasing":
			decreasing = true
		case "-increasing":
			decreasing = false
		case "-unique":
			unique = true
		default:
			return Errorf(EArgument, "unknown option %q", argv[idx])
		}
		idx++
	}
	if idx >= len(argv) {
		return arityError(argv[0], "lsort ?-integer? ?-decreasing? ?-unique? list")
	}
	els, err := splitList(argv[idx])
	if err != nil {
		return listError(err)
	}
	sorted := append([]string(nil), els...)
	var less func(a, b string) bool
	if numeric {
		less = func(a, b string) bool {
			na, _ := parseInt(a)
			nb, _ := parseInt(b)
			return na < nb
		}
	} else {
		less = func(a, b string) bool { return a < b }
	}
	sort.SliceStable(sorted, func(a, b int) bool {
		if decreasing {
			return less(sorted[b], sorted[a])
		}
		return less(sorted[a], sorted[b])
	})
	if unique {
		sorted = dedupeSorted(sorted)
	}
	return OkResult(joinList(sorted))
}

func dedupeSorted(els []string) []string {
	out := make([]string, 0, len(els))
	for idx, e := range els {
		if idx == 0 || e != els[idx-1] {
			out = append(out, e)
		}
	}
	return out
}

const lsearchUsage = "lsearch ?-glob|-exact|-integer? ?-inline? ?-nocase? ?-not? ?-start n? list pattern"

// commandLsearch implements spec §4.5's `lsearch (-glob|-exact|-integer|
// -inline|-nocase|-not|-start n) list pattern`. -glob is the default
// matching mode; -inline reports the matching element itself instead of
// its index; -not reports the first element that fails to match; -start
// begins the scan at index n (negative counts from the end, as with the
// other list index arguments).
func commandLsearch(i *Interpreter, argv []string) Result {
	if len(argv) < 3 {
		return arityError(argv[0], lsearchUsage)
	}
	mode := "glob"
	nocase := false
	inline := false
	invert := false
	start := 0
	idx := 1
	for idx < len(argv)-2 {
		switch argv[idx] {
		case "-exact":
			mode = "exact"
		case "-glob":
			mode = "glob"
		case "-integer":
			mode = "integer"
		case "-nocase":
			nocase = true
		case "-inline":
			inline = true
		case "-not":
			invert = true
		case "-start":
			if idx+1 >= len(argv)-2 {
				return arityError(argv[0], lsearchUsage)
			}
			n, err := strconv.Atoi(argv[idx+1])
			if err != nil {
				return Errorf(ENumber, "expected integer but got %q", argv[idx+1])
			}
			start = n
			idx++
		default:
			return Errorf(EArgument, "unknown option %q", argv[idx])
		}
		idx++
	}
	if len(argv)-idx != 2 {
		return arityError(argv[0], lsearchUsage)
	}
	els, err := splitList(argv[idx])
	if err != nil {
		return listError(err)
	}
	pattern := argv[idx+1]
	from := clampIndex(start, len(els))
	for pos := from; pos < len(els); pos++ {
		e := els[pos]
		match, merr := lsearchMatch(mode, pattern, e, nocase)
		if merr != nil {
			return Errorf(ESyntax, "%s", merr.Error())
		}
		if match == invert {
			continue
		}
		if inline {
			return OkResult(e)
		}
		return OkResult(strconv.Itoa(pos))
	}
	if inline {
		return OkResult("")
	}
	return OkResult("-1")
}

func lsearchMatch(mode, pattern, value string, nocase bool) (bool, error) {
	switch mode {
	case "exact":
		if nocase {
			return strings.EqualFold(pattern, value), nil
		}
		return pattern == value, nil
	case "glob":
		return globMatch(pattern, value, nocase)
	case "integer":
		want, err := strconv.ParseInt(pattern, 0, 64)
		if err != nil {
			return false, exprErrf("expected integer but got %q", pattern)
		}
		got, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return false, nil
		}
		return want == got, nil
	default:
		return false, exprErrf("unknown lsearch mode %q", mode)
	}
}

func commandLrepeat(i *Interpreter, argv []string) Result {
	if len(argv) < 3 {
		return arityError(argv[0], "lrepeat count element ?element ...?")
	}
	n, err := strconv.Atoi(argv[1])
	if err != nil || n < 0 {
		return Errorf(EArgument, "bad count %q", argv[1])
	}
	elements := argv[2:]
	out := make([]string, 0, n*len(elements))
	for k := 0; k < n; k++ {
		out = append(out, elements...)
	}
	return OkResult(joinList(out))
}

func commandLappend(i *Interpreter, argv []string) Result {
	if len(argv) < 2 {
		return arityError(argv[0], "lappend varName ?value ...?")
	}
	cur, ok, err := i.GetVar(argv[1])
	if err != nil {
		return Errorf(EVariable, "%s", err.Error())
	}
	var els []string
	if ok {
		els, err = splitList(cur)
		if err != nil {
			return listError(err)
		}
	}
	els = append(els, argv[2:]...)
	joined := joinList(els)
	if err := i.SetVar(argv[1], joined); err != nil {
		return Errorf(EVariable, "%s", err.Error())
	}
	return OkResult(joined)
}

// commandSplit implements `split string ?splitChars?`: each byte in
// splitChars is a separate delimiter, defaulting to whitespace.
func commandSplit(i *Interpreter, argv []string) Result {
	if len(argv) != 2 && len(argv) != 3 {
		return arityError(argv[0], "split string ?splitChars?")
	}
	s := argv[1]
	chars := " \t\n\r"
	if len(argv) == 3 {
		chars = argv[2]
	}
	if chars == "" {
		out := make([]string, len(s))
		for k := 0; k < len(s); k++ {
			out[k] = string(s[k])
		}
		return OkResult(joinList(out))
	}
	pieces := strings.FieldsFunc(s, func(r rune) bool {
		return strings.IndexByte(chars, byte(r)) >= 0
	})
	return OkResult(joinList(pieces))
}

func commandList(i *Interpreter, argv []string) Result {
	return OkResult(joinList(argv[1:]))
}

func commandConcat(i *Interpreter, argv []string) Result {
	var all []string
	for _, a := range argv[1:] {
		els, err := splitList(a)
		if err != nil {
			return listError(err)
		}
		all = append(all, els...)
	}
	return OkResult(joinList(all))
}

// commandConjoin is `concat`'s separator-taking sibling, per spec §4.5:
// `conjoin sep args…` flattens the remaining arguments as lists and joins
// the elements with sep, never brace-quoting them.
func commandConjoin(i *Interpreter, argv []string) Result {
	if len(argv) < 2 {
		return arityError(argv[0], "conjoin sep ?arg ...?")
	}
	sep := argv[1]
	var all []string
	for _, a := range argv[2:] {
		els, err := splitList(a)
		if err != nil {
			return listError(err)
		}
		all = append(all, els...)
	}
	return OkResult(joinSep(all, sep))
}

func commandJoin(i *Interpreter, argv []string) Result {
	if len(argv) != 2 && len(argv) != 3 {
		return arityError(argv[0], "join list ?joinString?")
	}
	els, err := splitList(argv[1])
	if err != nil {
		return listError(err)
	}
	sep := " "
	if len(argv) == 3 {
		sep = argv[2]
	}
	return OkResult(joinSep(els, sep))
}
