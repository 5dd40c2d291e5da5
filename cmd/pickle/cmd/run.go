//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/nfiedler/pickle"
	"github.com/nfiedler/pickle/internal/diag"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = runPickle
}

// runPickle is the root command's action: given a script path, evaluate
// it and exit; given none, run an interactive loop reading from stdin.
func runPickle(c *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	interp := pickle.NewInterpreterOpts(opts)
	registerIOCommands(interp)

	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		r := interp.Eval(string(data))
		return finish(c, interp, r)
	}
	return repl(c, interp)
}

func repl(c *cobra.Command, interp *pickle.Interpreter) error {
	stdin := bufio.NewScanner(os.Stdin)
	out := c.OutOrStdout()
	for {
		fmt.Fprint(out, "pickle> ")
		if !stdin.Scan() {
			return nil
		}
		r := interp.Eval(stdin.Text())
		fmt.Fprintln(out, r.String())
		if dumpResult {
			diag.Dump(out, "result", r)
			interp.Dump(out)
		}
	}
}

func finish(c *cobra.Command, interp *pickle.Interpreter, r pickle.Result) error {
	out := c.OutOrStdout()
	fmt.Fprintln(out, r.String())
	if dumpResult {
		diag.Dump(out, "result", r)
		interp.Dump(out)
	}
	if !r.Ok() {
		return fmt.Errorf("%s", r.String())
	}
	return nil
}

// registerIOCommands wires the driver-level commands spec.md's Out of
// scope section names: puts, gets, source, clock, heap, getenv, exit.
// These never live in the core interpreter, since they reach outside the
// Allocator/Command-Registration contracts into the host environment.
func registerIOCommands(interp *pickle.Interpreter) {
	interp.RegisterCommand("puts", commandPuts)
	interp.RegisterCommand("gets", commandGets)
	interp.RegisterCommand("source", commandSource(interp))
	interp.RegisterCommand("clock", commandClock)
	interp.RegisterCommand("heap", commandHeap(interp))
	interp.RegisterCommand("getenv", commandGetenv)
	interp.RegisterCommand("exit", commandExit)
}

func commandPuts(i *pickle.Interpreter, argv []string) pickle.Result {
	nonewline := false
	args := argv[1:]
	if len(args) > 0 && args[0] == "-nonewline" {
		nonewline = true
		args = args[1:]
	}
	w := io.Writer(os.Stdout)
	if len(args) > 0 && (args[0] == "stdout" || args[0] == "stderr") {
		if args[0] == "stderr" {
			w = os.Stderr
		}
		args = args[1:]
	}
	if len(args) != 1 {
		return pickle.Errorf(pickle.EArgument, "wrong # args: should be \"puts ?-nonewline? ?channel? string\"")
	}
	if nonewline {
		fmt.Fprint(w, args[0])
	} else {
		fmt.Fprintln(w, args[0])
	}
	return pickle.OkResult("")
}

func commandGets(i *pickle.Interpreter, argv []string) pickle.Result {
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return pickle.OkResult("")
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return pickle.OkResult(line)
}

func commandSource(interp *pickle.Interpreter) func(*pickle.Interpreter, []string) pickle.Result {
	return func(i *pickle.Interpreter, argv []string) pickle.Result {
		if len(argv) != 2 {
			return pickle.Errorf(pickle.EArgument, "wrong # args: should be \"source fileName\"")
		}
		data, err := os.ReadFile(argv[1])
		if err != nil {
			return pickle.Errorf(pickle.EFatal, "%s", err.Error())
		}
		return interp.Eval(string(data))
	}
}

func commandClock(i *pickle.Interpreter, argv []string) pickle.Result {
	if len(argv) != 2 {
		return pickle.Errorf(pickle.EArgument, "wrong # args: should be \"clock seconds|milliseconds\"")
	}
	now := time.Now()
	switch argv[1] {
	case "seconds":
		return pickle.OkResult(strconv.FormatInt(now.Unix(), 10))
	case "milliseconds":
		return pickle.OkResult(strconv.FormatInt(now.UnixMilli(), 10))
	default:
		return pickle.Errorf(pickle.EArgument, "unknown clock option %q", argv[1])
	}
}

func commandHeap(interp *pickle.Interpreter) func(*pickle.Interpreter, []string) pickle.Result {
	return func(i *pickle.Interpreter, argv []string) pickle.Result {
		if arena, ok := interp.Allocator().(*pickle.ArenaAllocator); ok {
			return pickle.OkResult(strconv.Itoa(arena.Used()))
		}
		return pickle.OkResult("-1")
	}
}

func commandGetenv(i *pickle.Interpreter, argv []string) pickle.Result {
	if len(argv) != 2 {
		return pickle.Errorf(pickle.EArgument, "wrong # args: should be \"getenv name\"")
	}
	return pickle.OkResult(os.Getenv(argv[1]))
}

func commandExit(i *pickle.Interpreter, argv []string) pickle.Result {
	code := 0
	if len(argv) == 2 {
		n, err := strconv.Atoi(argv[1])
		if err == nil {
			code = n
		}
	}
	os.Exit(code)
	return pickle.OkResult("")
}
