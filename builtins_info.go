// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"sort"
	"strconv"
)

// version is the pickle language-surface version reported by `info
// version`, independent of any embedder's own release numbering.
const version = "1.0"

// registerInfoCommands installs `info` and `trace`. No `unknown` command
// is installed; that hook name stays free for an embedder (or a script)
// to register.
func registerInfoCommands(i *Interpreter) {
	i.cmds.register("info", commandInfo)
	i.cmds.register("trace", commandTrace)
}

func commandTrace(i *Interpreter, argv []string) Result {
	if len(argv) != 2 || (argv[1] != "on" && argv[1] != "off") {
		return arityError(argv[0], "trace on|off")
	}
	i.SetTrace(argv[1] == "on")
	return OkResult("")
}

func commandInfo(i *Interpreter, argv []string) Result {
	if len(argv) < 2 {
		return arityError(argv[0], "info subcommand ?arg ...?")
	}
	sub := argv[1]
	rest := argv[2:]
	switch sub {
	case "commands":
		return infoFilteredNames(filterNames(i.cmds.names(), patternArg(rest)))
	case "procs":
		return infoFilteredNames(filterNames(procNames(i), patternArg(rest)))
	case "functions":
		return infoFilteredNames(filterNames(exprFunctionNames(), patternArg(rest)))
	case "locals":
		return infoFilteredNames(filterNames(i.frames.top().names(), patternArg(rest)))
	case "globals":
		return infoFilteredNames(filterNames(i.frames.global().names(), patternArg(rest)))
	case "level":
		return OkResult(strconv.Itoa(i.Level()))
	case "cmdcount":
		return OkResult(strconv.FormatInt(i.cmdCount, 10))
	case "version":
		return OkResult(version)
	case "complete":
		return infoComplete(rest)
	case "exists":
		return infoExists(i, rest)
	case "args":
		return infoArgs(i, rest)
	case "body":
		return infoBody(i, rest)
	case "private":
		return infoPrivate(i, rest)
	case "system":
		return infoSystem(i, rest)
	default:
		return Errorf(EArgument, "unknown or ambiguous subcommand %q", sub)
	}
}

func patternArg(rest []string) string {
	if len(rest) == 1 {
		return rest[0]
	}
	return ""
}

func filterNames(names []string, pattern string) []string {
	sort.Strings(names)
	if pattern == "" {
		return names
	}
	out := names[:0:0]
	for _, n := range names {
		if ok, _ := globMatch(pattern, n, false); ok {
			out = append(out, n)
		}
	}
	return out
}

func infoFilteredNames(names []string) Result {
	return OkResult(joinList(names))
}

func procNames(i *Interpreter) []string {
	var out []string
	for _, n := range i.cmds.names() {
		if c := i.cmds.lookup(n); c != nil && c.proc != nil {
			out = append(out, n)
		}
	}
	return out
}

// exprFunctionNames lists the functions `expr` accepts, per spec §4.5.
func exprFunctionNames() []string {
	return []string{"abs", "bool", "not", "max", "min", "pow", "log", "rand"}
}

// infoComplete reports whether script, scanned on its own, forms a
// complete command (no unterminated brace/quote/bracket): spec §4.5
// names this `info complete script`.
func infoComplete(rest []string) Result {
	if len(rest) != 1 {
		return arityError("info complete", "info complete script")
	}
	sc := NewScanner(rest[0])
	for {
		tok := sc.Next()
		switch tok.Kind {
		case KindEOF:
			return OkResult("1")
		case KindError:
			return OkResult("0")
		}
	}
}

func infoExists(i *Interpreter, rest []string) Result {
	if len(rest) != 1 {
		return arityError("info exists", "info exists varName")
	}
	_, ok, _ := i.GetVar(rest[0])
	return OkResult(formatBase(boolInt(ok), 10))
}

func infoArgs(i *Interpreter, rest []string) Result {
	if len(rest) != 1 {
		return arityError("info args", "info args procName")
	}
	c := i.cmds.lookup(rest[0])
	if c == nil || c.proc == nil {
		return Errorf(ECommandUndefined, "no such procedure %q", rest[0])
	}
	return OkResult(c.proc.params)
}

func infoBody(i *Interpreter, rest []string) Result {
	if len(rest) != 1 {
		return arityError("info body", "info body procName")
	}
	c := i.cmds.lookup(rest[0])
	if c == nil || c.proc == nil {
		return Errorf(ECommandUndefined, "no such procedure %q", rest[0])
	}
	return OkResult(c.proc.body)
}

// infoPrivate exposes a command's private data: for a procedure, the
// two-element list of its parameter list and body; for a builtin, the
// word "builtin".
func infoPrivate(i *Interpreter, rest []string) Result {
	if len(rest) != 1 {
		return arityError("info private", "info private commandName")
	}
	c := i.cmds.lookup(rest[0])
	if c == nil {
		return Errorf(ECommandUndefined, "no such command %q", rest[0])
	}
	if c.proc != nil {
		return OkResult(joinList([]string{c.proc.params, c.proc.body}))
	}
	return OkResult("builtin")
}

// infoSystem reports the compile-time/runtime constants spec §4.5 names:
// pointer-bits, number-bits, recursion cap, max-string (or -1), min/max
// number, and which optional modules are compiled in.
func infoSystem(i *Interpreter, rest []string) Result {
	if len(rest) != 1 {
		return arityError("info system", "info system attr")
	}
	switch rest[0] {
	case "pointer-bits":
		return OkResult(strconv.Itoa(32 << (^uint(0) >> 63)))
	case "number-bits":
		return OkResult("64")
	case "recursion":
		return OkResult(strconv.Itoa(i.opts.MaxLevel))
	case "evals":
		return OkResult(strconv.Itoa(i.opts.MaxEvals))
	case "length":
		if i.opts.MaxStringLen <= 0 {
			return OkResult("-1")
		}
		return OkResult(strconv.Itoa(i.opts.MaxStringLen))
	case "min-number":
		return OkResult(strconv.FormatInt(minInt64, 10))
	case "max-number":
		return OkResult(strconv.FormatInt(maxInt64, 10))
	case "modules":
		return OkResult(joinList([]string{"regex", "glob", "allocator"}))
	default:
		return Errorf(EArgument, "unknown system attribute %q", rest[0])
	}
}

const (
	minInt64 = -1 << 63
	maxInt64 = 1<<63 - 1
)
