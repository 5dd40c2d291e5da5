// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"strconv"
	"strings"
)

// registerCoreCommands installs every built-in command spec.md names,
// across the control-flow, arithmetic, string, list, info, and
// introspection groups.
func registerCoreCommands(i *Interpreter) {
	registerControlCommands(i)
	registerMathCommands(i)
	registerStringCommands(i)
	registerListCommands(i)
	registerInfoCommands(i)
	i.cmds.register("reg", commandReg)
}

func registerControlCommands(i *Interpreter) {
	i.cmds.register("set", commandSet)
	i.cmds.register("if", commandIf)
	i.cmds.register("while", commandWhile)
	i.cmds.register("for", commandFor)
	i.cmds.register("break", commandBreak)
	i.cmds.register("continue", commandContinue)
	i.cmds.register("return", commandReturn)
	i.cmds.register("proc", commandProc)
	i.cmds.register("rename", commandRename)
	i.cmds.register("unset", commandUnset)
	i.cmds.register("catch", commandCatch)
	i.cmds.register("eval", commandEval)
	i.cmds.register("subst", commandSubst)
	i.cmds.register("uplevel", commandUplevel)
	i.cmds.register("upvar", commandUpvar)
	i.cmds.register("apply", commandApply)
	i.cmds.register("expr", commandExpr)
}

// commandBreak implements `break`.
func commandBreak(i *Interpreter, argv []string) Result {
	if len(argv) != 1 {
		return arityError(argv[0], "break")
	}
	return NewResult(EOK, StatusBreak, "")
}

// commandContinue implements `continue`.
func commandContinue(i *Interpreter, argv []string) Result {
	if len(argv) != 1 {
		return arityError(argv[0], "continue")
	}
	return NewResult(EOK, StatusContinue, "")
}

// commandSet implements `set name ?value?`.
func commandSet(i *Interpreter, argv []string) Result {
	if len(argv) < 2 || len(argv) > 3 {
		return arityError(argv[0], "set varName ?newValue?")
	}
	if len(argv) == 3 {
		if err := i.SetVar(argv[1], argv[2]); err != nil {
			return Errorf(EVariable, "%s", err.Error())
		}
		return OkResult(argv[2])
	}
	val, ok, err := i.GetVar(argv[1])
	if err != nil {
		return Errorf(EVariable, "%s", err.Error())
	}
	if !ok {
		return Errorf(EVariable, "no such variable %q", argv[1])
	}
	return OkResult(val)
}

// commandIf implements `if expr ?then? body ?elseif expr ?then? body...? ?else body?`.
func commandIf(i *Interpreter, argv []string) Result {
	args := argv[1:]
	for len(args) > 0 {
		if len(args) < 2 {
			return arityError(argv[0], "if expr body ?elseif expr body ...? ?else body?")
		}
		cond := args[0]
		rest := args[1:]
		if rest[0] == "then" {
			rest = rest[1:]
			if len(rest) == 0 {
				return arityError(argv[0], "if expr then body")
			}
		}
		body := rest[0]
		rest = rest[1:]
		truth, r := evalCondition(i, cond)
		if !r.Ok() {
			return r
		}
		if truth {
			return i.Eval(body)
		}
		if len(rest) == 0 {
			return OkResult("")
		}
		switch rest[0] {
		case "elseif":
			args = rest[1:]
			continue
		case "else":
			if len(rest) != 2 {
				return arityError(argv[0], "if expr body ... else body")
			}
			return i.Eval(rest[1])
		default:
			return Errorf(ESyntax, "expected \"elseif\" or \"else\", got %q", rest[0])
		}
	}
	return OkResult("")
}

// commandWhile implements `while cond body`.
func commandWhile(i *Interpreter, argv []string) Result {
	if len(argv) != 3 {
		return arityError(argv[0], "while test body")
	}
	for {
		truth, r := evalCondition(i, argv[1])
		if !r.Ok() {
			return r
		}
		if !truth {
			return OkResult("")
		}
		r = i.Eval(argv[2])
		switch r.Status() {
		case StatusBreak:
			return OkResult("")
		case StatusContinue, StatusOk:
			// fall through to next iteration
		default:
			return r
		}
	}
}

// commandFor implements `for init cond step body`.
func commandFor(i *Interpreter, argv []string) Result {
	if len(argv) != 5 {
		return arityError(argv[0], "for start test next command")
	}
	if r := i.Eval(argv[1]); !r.Ok() {
		return r
	}
	for {
		truth, r := evalCondition(i, argv[2])
		if !r.Ok() {
			return r
		}
		if !truth {
			return OkResult("")
		}
		r = i.Eval(argv[4])
		switch r.Status() {
		case StatusBreak:
			return OkResult("")
		case StatusContinue, StatusOk:
			// proceed to the step clause below
		default:
			return r
		}
		if r := i.Eval(argv[3]); !r.Ok() {
			return r
		}
	}
}

// commandCatch implements `catch script ?varName?`: always returns ok,
// recording script's numeric status (and message, as the outer result)
// into varName when given (spec §4.5).
func commandCatch(i *Interpreter, argv []string) Result {
	if len(argv) != 2 && len(argv) != 3 {
		return arityError(argv[0], "catch script ?varName?")
	}
	r := i.Eval(argv[1])
	if len(argv) == 3 {
		i.SetVar(argv[2], strconv.Itoa(int(r.Status())))
	}
	return OkResult(r.String())
}

// commandReturn implements `return ?string? ?code?`, spec §4.5's grammar,
// plus the explicit `-code code` flag form: a trailing bare integer after
// the value is an implicit status code, e.g. `return fail -1` gives
// status error(-1) with the value "fail" (reported as "Error: fail" per
// the §7 grep-for-"Error" convention applied to every StatusError result).
func commandReturn(i *Interpreter, argv []string) Result {
	status := StatusReturn
	value := ""
	haveValue := false
	rest := argv[1:]
	for len(rest) > 0 {
		if rest[0] == "-code" {
			if len(rest) < 2 {
				return arityError(argv[0], "return ?string? ?-code code?")
			}
			switch rest[1] {
			case "ok":
				status = StatusOk
			case "error":
				status = StatusError
			case "return":
				status = StatusReturn
			case "break":
				status = StatusBreak
			case "continue":
				status = StatusContinue
			default:
				n, err := parseInt(rest[1])
				if err != nil {
					return Errorf(EArgument, "bad -code value %q", rest[1])
				}
				status = StatusCode(n)
			}
			rest = rest[2:]
			continue
		}
		if !haveValue {
			value = rest[0]
			haveValue = true
			rest = rest[1:]
			continue
		}
		n, err := parseInt(rest[0])
		if err != nil {
			return Errorf(EArgument, "bad return code %q", rest[0])
		}
		status = StatusCode(n)
		rest = rest[1:]
	}
	if status == StatusError {
		return ErrResult(EFatal, value)
	}
	return NewResult(EOK, status, value)
}

// commandProc implements `proc name args-spec body`.
func commandProc(i *Interpreter, argv []string) Result {
	if len(argv) != 4 {
		return arityError(argv[0], "proc name args body")
	}
	i.cmds.registerProc(argv[1], procSpec{params: argv[2], body: argv[3]})
	return OkResult("")
}

// invokeProcedure is the shared proc-call handler spec §4.4 describes:
// every user-defined procedure's table entry points here, and the
// frame/binding mechanics live in Interpreter.callProc.
func invokeProcedure(i *Interpreter, argv []string) Result {
	c := i.cmds.lookup(argv[0])
	if c == nil || c.proc == nil {
		return Errorf(EBadState, "proc %q missing its definition", argv[0])
	}
	return i.callProc(c.proc, argv)
}

// commandRename implements `rename old new`.
func commandRename(i *Interpreter, argv []string) Result {
	if len(argv) != 3 {
		return arityError(argv[0], "rename oldName newName")
	}
	if err := i.cmds.rename(argv[1], argv[2]); err != nil {
		return Errorf(ECommandUndefined, "%s", err.Error())
	}
	return OkResult("")
}

// commandUnset implements `unset name ...`. Forbidden while a script is
// running against a frame retargeted by uplevel (spec §4.3), since that
// could delete a variable in a frame still being evaluated from above.
func commandUnset(i *Interpreter, argv []string) Result {
	if len(argv) < 2 {
		return arityError(argv[0], "unset varName ?varName ...?")
	}
	if i.frames.uplevelActive() {
		return Errorf(EBadState, "can't unset while uplevel is active")
	}
	for _, name := range argv[1:] {
		i.frames.top().unset(name)
	}
	return OkResult("")
}

// commandEval implements `eval args...`: the arguments are joined with a
// single space and evaluated as one script.
func commandEval(i *Interpreter, argv []string) Result {
	if len(argv) < 2 {
		return arityError(argv[0], "eval arg ?arg ...?")
	}
	return i.Eval(strings.Join(argv[1:], " "))
}

// commandSubst implements `subst ?-nobackslashes? ?-novariables? ?-nocommands? string`.
func commandSubst(i *Interpreter, argv []string) Result {
	opts := ScanOptions{}
	idx := 1
	for idx < len(argv)-1 {
		switch argv[idx] {
		case "-nobackslashes":
			opts.NoEscape = true
		case "-novariables":
			opts.NoVariables = true
		case "-nocommands":
			opts.NoCommands = true
		default:
			return Errorf(EArgument, "unknown option %q", argv[idx])
		}
		idx++
	}
	if idx >= len(argv) {
		return arityError(argv[0], "subst ?-nobackslashes? ?-novariables? ?-nocommands? string")
	}
	return substString(i, argv[idx], opts)
}

// substString is the shared substitution pipeline behind subst: it runs
// the scanner with the given toggles and concatenates the interpreted
// pieces without dispatching a command (spec §4.2).
func substString(i *Interpreter, text string, opts ScanOptions) Result {
	sc := NewScannerOpts(text, opts)
	var out strings.Builder
	for {
		tok := sc.Next()
		switch tok.Kind {
		case KindEOF:
			return OkResult(out.String())
		case KindError:
			return Errorf(ESyntax, "%s", tok.Error())
		case KindSeparator:
			out.WriteByte(' ')
		case KindEOL:
			out.WriteByte('\n')
		case KindVariable:
			name := varName(tok.Text(text))
			val, ok, err := i.GetVar(name)
			if err != nil || !ok {
				return Errorf(EVariable, "no such variable %q", name)
			}
			out.WriteString(val)
		case KindCommand:
			inner := tok.Text(text)
			r := i.Eval(inner[1 : len(inner)-1])
			if !r.Ok() {
				return r
			}
			out.WriteString(r.String())
		case KindEscapeWord:
			w, err := unescape(tok.Text(text))
			if err != nil {
				return Errorf(ESyntax, "%s", err.Error())
			}
			out.WriteString(w)
		case KindWord:
			out.WriteString(wordText(tok, text))
		}
	}
}

// commandUplevel implements `uplevel level script...`.
func commandUplevel(i *Interpreter, argv []string) Result {
	if len(argv) < 2 {
		return arityError(argv[0], "uplevel ?level? command ?arg ...?")
	}
	levelSpec := "1"
	scripts := argv[1:]
	if _, err := i.frames.atLevel(argv[1]); err == nil {
		levelSpec = argv[1]
		scripts = argv[2:]
	}
	target, err := i.frames.atLevel(levelSpec)
	if err != nil {
		return Errorf(ELevel, "%s", err.Error())
	}
	if len(scripts) == 0 {
		return arityError(argv[0], "uplevel ?level? command ?arg ...?")
	}
	saved := i.frames.top()
	i.frames.retarget(target)
	i.frames.beginUplevel()
	defer i.frames.endUplevel()
	defer i.frames.retarget(saved)
	return i.Eval(strings.Join(scripts, " "))
}

// commandUpvar implements `upvar level otherName localName`.
func commandUpvar(i *Interpreter, argv []string) Result {
	if len(argv) != 4 {
		return arityError(argv[0], "upvar level otherVar localVar")
	}
	target, err := i.frames.atLevel(argv[1])
	if err != nil {
		return Errorf(ELevel, "%s", err.Error())
	}
	if err := i.frames.top().link(argv[3], target, argv[2]); err != nil {
		return Errorf(EVariable, "%s", err.Error())
	}
	return OkResult("")
}

// commandApply implements `apply {args body} actuals...`.
func commandApply(i *Interpreter, argv []string) Result {
	if len(argv) < 2 {
		return arityError(argv[0], "apply {args body} ?arg ...?")
	}
	parts, err := splitList(argv[1])
	if err != nil || len(parts) != 2 {
		return Errorf(ESyntax, "bad apply lambda expression %q", argv[1])
	}
	spec := &procSpec{params: parts[0], body: parts[1]}
	callArgv := append([]string{"apply"}, argv[2:]...)
	return i.callProc(spec, callArgv)
}
