// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import "fmt"

// variable is a named slot in a call frame. Its payload is either a value
// (small-string optimized per value.go) or a link: a non-owning reference
// to another variable, possibly in a different frame, used to implement
// upvar aliasing (spec §3, §4.3). Following a chain of links must
// terminate in a value payload; link traversal is bounded (see resolve)
// so a cycle that somehow formed cannot hang a lookup.
type variable struct {
	name  smallString
	value smallString
	link  *variable // non-nil means this variable aliases another
}

// frame is a call-frame scope: a flat list of variables plus a parent
// pointer, per spec §3/§4.3. The top frame has no parent. Procedure entry
// and apply push a frame; returning by any path pops exactly one.
type frame struct {
	vars   map[string]*variable
	parent *frame
}

func newFrame(parent *frame) *frame {
	return &frame{vars: make(map[string]*variable), parent: parent}
}

// resolve follows a variable's link chain to the value-holding variable at
// the end of it, bounded by maxLinkDepth so that even a pathological cycle
// terminates with an error rather than an infinite loop (spec §9: "link
// traversal always terminates").
const maxLinkDepth = 1 << 16

func resolve(v *variable) (*variable, error) {
	for depth := 0; v.link != nil; depth++ {
		if depth > maxLinkDepth {
			return nil, fmt.Errorf("variable link chain too deep (possible cycle)")
		}
		v = v.link
	}
	return v, nil
}

// lookupLocal finds a variable by name in f only, without walking parents
// (call frames do not nest lexically; only upvar/uplevel cross frames).
func (f *frame) lookupLocal(name string) (*variable, bool) {
	v, ok := f.vars[name]
	return v, ok
}

// set creates or updates a variable named name in frame f with the literal
// string value. If the existing variable is a link, the value is written
// through to the link's target, matching Tcl's "set follows the alias"
// semantics used by upvar.
func (f *frame) set(name, value string) error {
	if v, ok := f.vars[name]; ok {
		target, err := resolve(v)
		if err != nil {
			return err
		}
		target.value = newSmallString(value)
		return nil
	}
	f.vars[name] = &variable{name: newSmallString(name), value: newSmallString(value)}
	return nil
}

// get returns the current string value of name in frame f, resolving any
// link chain.
func (f *frame) get(name string) (string, bool, error) {
	v, ok := f.vars[name]
	if !ok {
		return "", false, nil
	}
	target, err := resolve(v)
	if err != nil {
		return "", true, err
	}
	return target.value.String(), true, nil
}

// unset removes the named variable from frame f, if present.
func (f *frame) unset(name string) bool {
	if _, ok := f.vars[name]; ok {
		delete(f.vars, name)
		return true
	}
	return false
}

// names returns the variable names currently defined directly in f.
func (f *frame) names() []string {
	out := make([]string, 0, len(f.vars))
	for n := range f.vars {
		out = append(out, n)
	}
	return out
}

// link makes f's variable named local an alias for the variable named
// other in frame target (the upvar builtin). If local already names a
// plain value in f, it is replaced by the link; a link may not point at
// itself (spec §9: "a self-loop is rejected with a descriptive error").
func (f *frame) link(local string, target *frame, other string) error {
	if target == f && local == other {
		return fmt.Errorf("can't upvar from variable to itself")
	}
	tv, ok := target.vars[other]
	if !ok {
		// upvar may create the target variable, matching Tcl semantics
		// where the aliased name need not exist yet.
		tv = &variable{name: newSmallString(other)}
		target.vars[other] = tv
	}
	f.vars[local] = &variable{name: newSmallString(local), link: tv}
	return nil
}

// frameStack is the call-frame stack described in spec §3: a linked list
// (here, a slice used as a stack) grown on procedure entry and apply,
// shrunk on exit. uplevel temporarily retargets "current" without
// altering ownership of the stack itself.
type frameStack struct {
	frames []*frame // frames[0] is the global frame

	// uplevelDepth counts active uplevel retargets (possibly nested).
	// While it is non-zero, unset is forbidden (spec §4.3: "uplevel
	// forbids unset while active to avoid deleting a frame currently
	// being evaluated from above").
	uplevelDepth int
}

func newFrameStack() *frameStack {
	fs := &frameStack{}
	fs.frames = append(fs.frames, newFrame(nil))
	return fs
}

// top is the currently active frame (may be retargeted temporarily by
// uplevel without changing push/pop bookkeeping).
func (fs *frameStack) top() *frame { return fs.frames[len(fs.frames)-1] }

// global is the outermost frame (level "#0").
func (fs *frameStack) global() *frame { return fs.frames[0] }

// push adds a new empty frame, parented at the current top, and returns it.
func (fs *frameStack) push() *frame {
	f := newFrame(fs.top())
	fs.frames = append(fs.frames, f)
	return f
}

// pop removes the top-most frame from the stack. The caller must ensure a
// push/pop pair always executes on every exit path (success, error, or
// non-local return), per spec §5 "Scoped acquisition".
func (fs *frameStack) pop() {
	fs.frames = fs.frames[:len(fs.frames)-1]
}

// retarget temporarily substitutes f as the active (top) frame, used by
// uplevel to run a script against an outer frame without altering the
// push/pop bookkeeping of the stack itself. The caller must restore the
// previous top (typically via defer) once done.
func (fs *frameStack) retarget(f *frame) {
	fs.frames[len(fs.frames)-1] = f
}

// beginUplevel marks an uplevel retarget as active; pair with
// endUplevel, typically via defer, for the duration of the retargeted
// script.
func (fs *frameStack) beginUplevel() { fs.uplevelDepth++ }

// endUplevel undoes beginUplevel.
func (fs *frameStack) endUplevel() { fs.uplevelDepth-- }

// uplevelActive reports whether a script is currently running against a
// frame retargeted by uplevel.
func (fs *frameStack) uplevelActive() bool { return fs.uplevelDepth > 0 }

// depth is the current number of active frames (the global frame counts
// as depth 1), used by upvar/uplevel level-spec resolution.
func (fs *frameStack) depth() int { return len(fs.frames) }

// atLevel resolves a Tcl level-spec ("#0" for global, or a bare integer N
// meaning N frames up from the current frame, 0 = current) to a concrete
// frame, per spec §4.3.
func (fs *frameStack) atLevel(spec string) (*frame, error) {
	if spec == "#0" {
		return fs.global(), nil
	}
	n, err := parseInt(spec)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("bad level %q", spec)
	}
	idx := len(fs.frames) - 1 - int(n)
	if idx < 0 || idx >= len(fs.frames) {
		return nil, fmt.Errorf("bad level %q", spec)
	}
	return fs.frames[idx], nil
}
