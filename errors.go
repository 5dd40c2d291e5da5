// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import "fmt"

// StatusCode is the fixed set of completion codes a public call can return,
// per the embedding contract: every evaluation ends in exactly one of
// these. catch turns any of them into Ok, loops consume break and
// continue, and a procedure call turns return into Ok.
type StatusCode int

const (
	StatusError    StatusCode = -1
	StatusOk       StatusCode = 0
	StatusReturn   StatusCode = 1
	StatusBreak    StatusCode = 2
	StatusContinue StatusCode = 3
)

func (s StatusCode) String() string {
	switch s {
	case StatusError:
		return "error"
	case StatusOk:
		return "ok"
	case StatusReturn:
		return "return"
	case StatusBreak:
		return "break"
	case StatusContinue:
		return "continue"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ErrorCode classifies *why* a StatusError result occurred, independent of
// the result string an embedder greps for the leading "Error" word. It has
// no script-visible representation; it exists so Go callers (and tests) can
// distinguish error kinds without string matching.
type ErrorCode int

const (
	EOK ErrorCode = iota
	ELex
	EVariable
	ECommandDefined
	ECommandUndefined
	ENoFrame
	EArgument
	EBadBool
	ESyntax
	EOperand
	EOperator
	EBadState
	ENumber
	ENumRange
	ERecursion
	EOutOfMemory
	EFatal
	ELevel
)

func (e ErrorCode) String() string {
	switch e {
	case EOK:
		return "ok"
	case ELex:
		return "lex"
	case EVariable:
		return "no such variable"
	case ECommandDefined:
		return "command already defined"
	case ECommandUndefined:
		return "no such command"
	case ENoFrame:
		return "no call frame"
	case EArgument:
		return "wrong number of arguments"
	case EBadBool:
		return "not a boolean"
	case ESyntax:
		return "syntax error"
	case EOperand:
		return "bad operand"
	case EOperator:
		return "bad operator"
	case EBadState:
		return "bad interpreter state"
	case ENumber:
		return "bad number"
	case ENumRange:
		return "number out of range"
	case ERecursion:
		return "recursion limit exceeded"
	case EOutOfMemory:
		return "out of memory"
	case EFatal:
		return "fatal"
	case ELevel:
		return "invalid level"
	default:
		return "unknown error"
	}
}

// Result carries the outcome of evaluating a command or script: a status
// code, the result string (valid regardless of status, per the data-model
// invariant that the interpreter's result is always a valid string), and,
// when the status is StatusError, a finer-grained ErrorCode.
type Result struct {
	code   ErrorCode
	status StatusCode
	value  string
}

// NewResult builds a Result from its three parts.
func NewResult(code ErrorCode, status StatusCode, value string) Result {
	return Result{code, status, value}
}

// OkResult builds a successful Result carrying value.
func OkResult(value string) Result {
	return Result{EOK, StatusOk, value}
}

// ErrResult builds an error Result whose message begins with the literal
// word "Error", so embedders can grep for it per the §7 user-visible
// contract.
func ErrResult(code ErrorCode, message string) Result {
	return Result{code, StatusError, "Error: " + message}
}

// Errorf is a convenience wrapper around ErrResult using fmt.Sprintf.
func Errorf(code ErrorCode, format string, args ...interface{}) Result {
	return ErrResult(code, fmt.Sprintf(format, args...))
}

// Ok reports whether the result represents successful completion.
func (r Result) Ok() bool { return r.status == StatusOk }

// Status returns the control-flow status code of the result.
func (r Result) Status() StatusCode { return r.status }

// Code returns the fine-grained error classification; EOK when not an error.
func (r Result) Code() ErrorCode { return r.code }

// String returns the result's value string (always valid, per invariant).
func (r Result) String() string { return r.value }

// arityError is a convenience method for commands to report an error with
// the number of arguments given to the command, including usage text when
// known (spec §7: arity errors name the offending command and, when
// available, its usage).
func arityError(name, usage string) Result {
	if usage != "" {
		return Errorf(EArgument, "wrong # args: should be \"%s\"", usage)
	}
	return Errorf(EArgument, "wrong number of arguments for %q", name)
}

// fatalError is the one-way latch described in §4.2 ("Fatal failures"): any
// allocator failure, or a malformed internal state detected by the
// allocator contract, sets this; all subsequent public calls short-circuit
// to StatusError without further work.
type fatalError struct {
	cause error
}

func (e *fatalError) Error() string {
	if e.cause != nil {
		return "pickle: fatal: " + e.cause.Error()
	}
	return "pickle: fatal"
}

func (e *fatalError) Unwrap() error { return e.cause }
