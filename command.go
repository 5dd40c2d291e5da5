// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

// commandFunc implements a built-in (or generated) command. argv holds the
// command name followed by its actual arguments; the returned Result
// becomes the interpreter's result and status.
type commandFunc func(i *Interpreter, argv []string) Result

// procSpec is the private data owned by a user-defined procedure's table
// entry: its formal parameter spec (space-separated names, with a trailing
// "args" making it variadic, per spec §4.4) and its body text. Renaming a
// procedure deep-copies this pair, per §4.4, so the new name is independent
// of the definition site; since Go strings are immutable, a value copy of
// procSpec already achieves that.
type procSpec struct {
	params string
	body   string
}

// command is an entry in the command table: a name, its handler, and,
// for user-defined procedures, the args/body pair the shared proc-call
// handler dispatches through.
type command struct {
	name    string
	fn      commandFunc
	proc    *procSpec // non-nil for user-defined procedures
	builtin bool
}

// commandTable is the chained lookup structure of spec §4.4. A real
// picol/pickle implementation sizes a fixed hash table so the built-ins fit
// without resizing and chains collisions by name; Go's map already gives
// that behavior (amortized O(1) lookup, no manual resizing logic to get
// wrong) so it stands in for the hand-rolled hash table, which is what an
// idiomatic Go rewrite of this component looks like. The DJB2 hash itself
// is still implemented and exposed to scripts via `string hash`, since
// spec §4.5 names it as an observable built-in, not merely an
// implementation detail of the table.
type commandTable struct {
	byName map[string]*command
}

func newCommandTable() *commandTable {
	return &commandTable{byName: make(map[string]*command, 64)}
}

// register adds name to the table; it is an error (per §4.4) if name
// already exists. Only registerProc overwrites an existing entry (proc
// redefinition, which drops the prior body).
func (t *commandTable) register(name string, fn commandFunc) error {
	if _, exists := t.byName[name]; exists {
		return Errorf(ECommandDefined, "command %q already defined", name).asError()
	}
	t.byName[name] = &command{name: name, fn: fn, builtin: true}
	return nil
}

// registerProc installs (or replaces) a user-defined procedure. Replacing
// an existing proc is allowed -- unlike register, proc redefinition is a
// normal, expected operation in Tcl-like languages -- and frees (by simply
// dropping the reference to) the prior args/body pair.
func (t *commandTable) registerProc(name string, spec procSpec) {
	t.byName[name] = &command{name: name, fn: invokeProcedure, proc: &spec}
}

// lookup returns the entry for name, or nil if none exists.
func (t *commandTable) lookup(name string) *command {
	return t.byName[name]
}

// rename renames old to new. new == "" deletes old (spec §4.4). Renaming a
// user-defined procedure deep-copies its args/body pair so that it is
// independent of the original name's definition.
func (t *commandTable) rename(old, new string) error {
	c, ok := t.byName[old]
	if !ok {
		return Errorf(ECommandUndefined, "no such command %q", old).asError()
	}
	delete(t.byName, old)
	if new == "" {
		return nil
	}
	cp := *c
	cp.name = new
	if c.proc != nil {
		spec := *c.proc
		cp.proc = &spec
	}
	t.byName[new] = &cp
	return nil
}

// unset removes name from the table, if present.
func (t *commandTable) unset(name string) bool {
	if _, ok := t.byName[name]; ok {
		delete(t.byName, name)
		return true
	}
	return false
}

// names returns all registered command names, for `info commands`.
func (t *commandTable) names() []string {
	out := make([]string, 0, len(t.byName))
	for n := range t.byName {
		out = append(out, n)
	}
	return out
}

// djb2 computes Dan Bernstein's string hash, the algorithm spec §4.4 names
// for bucket placement and which §4.5 exposes directly via `string hash`.
func djb2(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}
