//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package scripttest adapts rsc.io/script for driving Pickle's
// end-to-end seed scenarios from txtar fixtures, in the style of
// tmc-covutil's scripttest overlay.
package scripttest

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nfiedler/pickle"
	"golang.org/x/tools/txtar"
	"rsc.io/script"
)

// Cmds returns script.DefaultCmds() plus "pickle", which evaluates its
// single argument as a Pickle program against a fresh Interpreter and
// writes "<status> <result>" to the script's stdout buffer.
func Cmds() map[string]script.Cmd {
	cmds := script.DefaultCmds()
	cmds["pickle"] = pickleCmd()
	return cmds
}

func pickleCmd() script.Cmd {
	return script.Command(
		script.CmdUsage{
			Summary: "evaluate a Pickle program and record its status and result",
			Args:    "program",
		},
		func(s *script.State, args ...string) (script.WaitFunc, error) {
			if len(args) != 1 {
				return nil, script.ErrUsage
			}
			program := args[0]
			return func(*script.State) (stdout, stderr string, err error) {
				interp := pickle.NewInterpreter()
				r := interp.Eval(program)
				out := r.Status().String() + " " + r.String() + "\n"
				return out, "", nil
			}, nil
		})
}

// Run executes every testdata/script/*.txtar file matching pattern,
// reporting each as its own subtest named after the file's base name.
func Run(t *testing.T, pattern string) {
	t.Helper()
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata")
	}
	engine := &script.Engine{
		Cmds:  Cmds(),
		Conds: script.DefaultConds(),
	}
	for _, file := range files {
		file := file
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			workdir := t.TempDir()
			s, err := script.NewState(context.Background(), workdir, nil)
			if err != nil {
				t.Fatal(err)
			}
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			if err := s.ExtractFiles(a); err != nil {
				t.Fatal(err)
			}
			log := new(strings.Builder)
			err = engine.Execute(s, file, bufio.NewReader(bytes.NewReader(a.Comment)), log)
			if closeErr := s.CloseAndWait(log); err == nil {
				err = closeErr
			}
			if log.Len() > 0 {
				t.Log(log.String())
			}
			if err != nil {
				t.Errorf("FAIL: %v", err)
			}
		})
	}
}
