// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"io"
	"sort"

	"github.com/nfiedler/pickle/internal/diag"
	"github.com/sirupsen/logrus"
	"github.com/smasher164/xid"
)

// Options configures an Interpreter at construction time. The zero value
// is not meant to be used directly; start from DefaultOptions.
type Options struct {
	// MaxLevel bounds procedure/apply nesting depth (spec §4.2).
	MaxLevel int
	// MaxEvals bounds evaluator re-entrancy depth (spec §4.2).
	MaxEvals int
	// LenientUnterminated selects the looser "silently closes at
	// end-of-input" behaviour for an unterminated brace/quote/command,
	// instead of the default error (spec §9 open question).
	LenientUnterminated bool
	// MaxStringLen, when non-zero, is the per-string byte cap reported
	// by `info system length`; zero means no cap is enforced, which is
	// itself reported as -1 (spec §9 open question).
	MaxStringLen int
	// Allocator is consulted by SetVar each time it stores a value (and so
	// by set, lappend, lset and catch); procedure parameter binding does
	// not go through it. DefaultAllocator() is used when nil.
	Allocator Allocator
	// Logger receives trace and diagnostic output; a discarding logger
	// is used when nil, matching the teacher's logfn == nil short
	// circuit.
	Logger *logrus.Logger
}

// DefaultOptions returns the configuration used when NewInterpreter is
// called with no overrides: generous recursion caps (spec requires at
// least 128), no length cap, strict (error-on-unterminated) parsing.
func DefaultOptions() Options {
	return Options{
		MaxLevel: 1000,
		MaxEvals: 1000,
	}
}

// Interpreter is the state described in spec §3: an allocator, the
// current result, the command table, the call-frame stack, the two
// recursion counters, trace/fatal flags, and the last-evaluated line
// number for diagnostics.
type Interpreter struct {
	opts   Options
	alloc  Allocator
	frames *frameStack
	cmds   *commandTable
	result Result

	level int
	evals int

	traceEnabled bool
	tracing      bool // one-shot guard: tracer does not trace itself
	inUnknown    bool // one-shot guard: unknown does not recurse into itself

	lastLine int
	fatal    error
	cmdCount int64
	valueBuf []byte

	id     string
	logger *logrus.Entry
}

// NewInterpreter creates an interpreter with default options, registers
// all core built-in commands, and initializes an empty global frame.
func NewInterpreter() *Interpreter {
	return NewInterpreterOpts(DefaultOptions())
}

// NewInterpreterOpts creates an interpreter honoring opts.
func NewInterpreterOpts(opts Options) *Interpreter {
	if opts.MaxLevel <= 0 {
		opts.MaxLevel = 128
	}
	if opts.MaxEvals <= 0 {
		opts.MaxEvals = 128
	}
	alloc := opts.Allocator
	if alloc == nil {
		alloc = DefaultAllocator()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	i := &Interpreter{
		opts:   opts,
		alloc:  alloc,
		frames: newFrameStack(),
		cmds:   newCommandTable(),
		result: OkResult(""),
		id:     xid.New().String(),
	}
	i.logger = log.WithField("interp_id", i.id)
	registerCoreCommands(i)
	return i
}

// Close tears down the interpreter: per spec §3's lifecycle, destruction
// frees all frames, all command entries (including proc bodies), and
// releases the current result. Go's garbage collector performs the
// actual reclamation; Close exists so the observable contract (nothing
// is reachable from the Interpreter afterward) is explicit and testable.
func (i *Interpreter) Close() {
	if i.alloc != nil {
		i.valueBuf, _ = i.alloc.Alloc(i.valueBuf, 0)
	}
	i.valueBuf = nil
	i.frames = nil
	i.cmds = nil
	i.result = OkResult("")
}

// Result returns the most recent evaluation's result.
func (i *Interpreter) Result() Result { return i.result }

// Level reports the current procedure-nesting depth.
func (i *Interpreter) Level() int { return i.level }

// SetTrace enables or disables the `tracer` dispatch hook (spec §4.4).
func (i *Interpreter) SetTrace(on bool) { i.traceEnabled = on }

// Allocator returns the interpreter's configured Allocator.
func (i *Interpreter) Allocator() Allocator { return i.alloc }

// dumpSnapshot is the shape repr renders for Dump: command names sorted
// for stable output, the current frame's local variable names, and the
// nesting depth they were captured at.
type dumpSnapshot struct {
	Commands []string
	Locals   []string
	Level    int
}

// Dump renders the command table and the current frame through
// internal/diag, the same repr-backed formatter the pickle CLI's
// --dump flag uses for its own output.
func (i *Interpreter) Dump(w io.Writer) {
	cmds := i.cmds.names()
	sort.Strings(cmds)
	locals := i.frames.top().names()
	sort.Strings(locals)
	diag.Dump(w, "interpreter", dumpSnapshot{
		Commands: cmds,
		Locals:   locals,
		Level:    i.level,
	})
}

// RegisterCommand adds a native command, per the embedding contract
// (spec §6 command-register).
func (i *Interpreter) RegisterCommand(name string, fn func(i *Interpreter, argv []string) Result) error {
	return i.cmds.register(name, fn)
}

// RenameCommand renames or (if newName == "") deletes a command.
func (i *Interpreter) RenameCommand(oldName, newName string) error {
	return i.cmds.rename(oldName, newName)
}

// GetVar reads a variable from the current frame, resolving links.
func (i *Interpreter) GetVar(name string) (string, bool, error) {
	if i.fatal != nil {
		return "", false, i.fatal
	}
	return i.frames.top().get(name)
}

// SetVar writes a variable in the current frame, resolving links. The
// value's bytes are grown through the configured Allocator first (spec
// §4.2's "every value buffer grown by the interpreter" contract); an
// ErrAllocFailed here latches the interpreter fatal per spec §7/§8, so a
// script that exhausts a bounded Allocator sees every subsequent call
// fail instead of silently continuing on an unaccounted allocation.
func (i *Interpreter) SetVar(name, value string) error {
	if i.fatal != nil {
		return i.fatal
	}
	buf, err := i.alloc.Alloc(i.valueBuf, len(value))
	if err != nil {
		i.fail(err)
		return err
	}
	i.valueBuf = buf
	copy(i.valueBuf, value)
	return i.frames.top().set(name, value)
}

// fail records result as a fatal, one-way error (spec §4.2 "Fatal
// failures"): every subsequent public call short-circuits without doing
// further work.
func (i *Interpreter) fail(err error) Result {
	i.fatal = err
	i.result = Errorf(EFatal, "%s", err.Error())
	return i.result
}

// Eval evaluates a program text, per spec §4.2's evaluator algorithm.
func (i *Interpreter) Eval(text string) Result {
	if i.fatal != nil {
		return i.result
	}
	i.evals++
	defer func() { i.evals-- }()
	if i.evals > i.opts.MaxEvals {
		i.evals--
		return i.setResult(Errorf(ERecursion, "evaluator recursion limit exceeded"))
	}

	sc := NewScanner(text)
	var argv []string
	prevKind := KindEOL

	for {
		tok := sc.Next()
		switch tok.Kind {
		case KindError:
			if i.opts.LenientUnterminated {
				if len(argv) > 0 {
					return i.dispatch(argv)
				}
				return i.setResult(OkResult(""))
			}
			return i.setResult(Errorf(ESyntax, "%s", tok.Error()))

		case KindEOF:
			if len(argv) > 0 {
				r := i.dispatch(argv)
				if !r.Ok() {
					return r
				}
			}
			if len(argv) == 0 {
				i.result = OkResult(i.result.String())
			}
			return i.result

		case KindSeparator:
			prevKind = tok.Kind
			continue

		case KindEOL:
			if len(argv) > 0 {
				r := i.dispatch(argv)
				if !r.Ok() {
					return r
				}
				argv = nil
			}
			prevKind = tok.Kind
			continue

		case KindVariable:
			name := varName(tok.Text(text))
			val, ok, err := i.lookupVariable(name)
			if err != nil {
				return i.setResult(Errorf(EVariable, "%s", err.Error()))
			}
			if !ok {
				return i.setResult(Errorf(EVariable, "no such variable %q", name))
			}
			argv = appendWord(argv, val, prevKind)

		case KindCommand:
			inner := tok.Text(text)
			inner = inner[1 : len(inner)-1]
			r := i.Eval(inner)
			if !r.Ok() {
				return r
			}
			argv = appendWord(argv, r.String(), prevKind)

		case KindEscapeWord:
			word, err := unescape(tok.Text(text))
			if err != nil {
				return i.setResult(Errorf(ESyntax, "%s", err.Error()))
			}
			argv = appendWord(argv, word, prevKind)

		case KindWord:
			argv = appendWord(argv, wordText(tok, text), prevKind)
		}
		prevKind = tok.Kind
	}
}

// EvalArgs evaluates a pre-parsed argument vector directly, without
// re-scanning: each element is dispatched as-is with no substitution,
// matching the embedding contract's eval-args operation.
func (i *Interpreter) EvalArgs(argv []string) Result {
	if i.fatal != nil {
		return i.result
	}
	if len(argv) == 0 {
		return i.setResult(OkResult(""))
	}
	return i.dispatch(append([]string(nil), argv...))
}

// setResult records result as the interpreter's current result and
// returns it, for convenient `return i.setResult(...)` call sites.
func (i *Interpreter) setResult(r Result) Result {
	i.result = r
	return r
}

// lookupVariable resolves name in the current frame.
func (i *Interpreter) lookupVariable(name string) (string, bool, error) {
	return i.frames.top().get(name)
}

// dispatch looks up argv[0] and invokes it, falling back to `unknown` on
// a miss, and firing the trace hook first when enabled (spec §4.4).
func (i *Interpreter) dispatch(argv []string) Result {
	i.cmdCount++
	if i.traceEnabled && !i.tracing {
		if tracer := i.cmds.lookup("tracer"); tracer != nil {
			i.tracing = true
			r := tracer.fn(i, append([]string{"tracer"}, argv...))
			i.tracing = false
			if !r.Ok() {
				i.traceEnabled = false
				return i.setResult(r)
			}
		}
	}

	c := i.cmds.lookup(argv[0])
	if c == nil {
		if !i.inUnknown {
			if unk := i.cmds.lookup("unknown"); unk != nil {
				i.inUnknown = true
				r := unk.fn(i, append([]string{"unknown"}, argv...))
				i.inUnknown = false
				return i.setResult(r)
			}
		}
		return i.setResult(Errorf(ECommandUndefined, "no such command %q", argv[0]))
	}
	i.logger.WithField("depth", i.level).Trace("dispatch ", argv[0])
	return i.setResult(c.fn(i, argv))
}

// callProc pushes a frame, binds formal parameters to actuals (spec
// §4.4's user-procedure call protocol), evaluates the body, and pops the
// frame on every exit path.
func (i *Interpreter) callProc(spec *procSpec, argv []string) Result {
	i.level++
	if i.level > i.opts.MaxLevel {
		i.level--
		return Errorf(ERecursion, "procedure nesting limit exceeded")
	}
	f := i.frames.push()
	defer func() {
		i.frames.pop()
		i.level--
	}()

	params := splitParams(spec.params)
	actuals := argv[1:]
	variadic := len(params) > 0 && params[len(params)-1] == "args"
	if variadic {
		fixed := params[:len(params)-1]
		if len(actuals) < len(fixed) {
			return arityError(argv[0], "")
		}
		for idx, p := range fixed {
			f.set(p, actuals[idx])
		}
		rest := actuals[len(fixed):]
		f.set("args", joinList(rest))
	} else {
		if len(actuals) != len(params) {
			return arityError(argv[0], "")
		}
		for idx, p := range params {
			f.set(p, actuals[idx])
		}
	}

	r := i.Eval(spec.body)
	switch r.Status() {
	case StatusReturn:
		return OkResult(r.String())
	case StatusOk, StatusError:
		return r
	default: // break/continue escaping a procedure body is an error
		return Errorf(EBadState, "invoked %q outside a loop", r.Status())
	}
}
