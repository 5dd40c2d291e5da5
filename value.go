// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

import (
	"strconv"
	"strings"
)

// inlineCap is the number of bytes a value may occupy, terminator included,
// before it must be stored on the heap instead of inline. It mirrors the
// source material's "fits in a machine word including its NUL" rule: on a
// 64-bit host a word holds 8 bytes, 7 of which are usable once the
// terminator is accounted for.
const inlineCap = 7

// smallString is the tagged-variant value representation described in
// spec §3 and §9 ("Compact-string union"): a short byte string lives
// inline in a fixed array, a long one is an ordinary Go string on the
// heap. The discriminant is just whether the stored length exceeds
// inlineCap; Go's garbage collector owns the heap case, so there is no
// manual free path, but the inline/heap split itself is preserved so the
// data model's invariants (§3) remain testable and so callers that care
// about allocation behavior (the arena allocator in alloc.go) can account
// for it.
type smallString struct {
	inline [inlineCap]byte
	n      int8   // -1 means "heap", else inline length
	heap   string // valid only when n < 0
}

// newSmallString builds a smallString holding s.
func newSmallString(s string) smallString {
	var v smallString
	if len(s) <= inlineCap {
		copy(v.inline[:], s)
		v.n = int8(len(s))
		return v
	}
	v.n = -1
	v.heap = s
	return v
}

// String returns the string value, regardless of storage mode.
func (v smallString) String() string {
	if v.n < 0 {
		return v.heap
	}
	return string(v.inline[:v.n])
}

// isInline reports whether the value is stored inline (small-string
// optimization engaged) rather than on the heap.
func (v smallString) isInline() bool { return v.n >= 0 }

// isFalse implements the truthiness test from spec §4.5 / glossary: a
// value is "false" iff it case-insensitively equals 0, false, off, or no.
func isFalse(s string) bool {
	switch strings.ToLower(s) {
	case "0", "false", "off", "no":
		return true
	default:
		return false
	}
}

// isTrue is the complement of isFalse, named for call-site clarity.
func isTrue(s string) bool { return !isFalse(s) }

// parseInt performs the strict integer conversion spec §4.5 requires:
// reject empty strings, a lone sign, or trailing garbage. Supports the
// standard Go literal prefixes (0x, 0o, 0b) in addition to plain decimal,
// matching the base-autodetection a Tcl-like dialect's integer commands
// expect.
func parseInt(s string) (int64, error) {
	if s == "" {
		return 0, Errorf(ENumber, "expected integer but got \"\"").asError()
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, Errorf(ENumRange, "integer value too large: %q", s).asError()
		}
		return 0, Errorf(ENumber, "expected integer but got %q", s).asError()
	}
	return n, nil
}

// formatBase renders n in the given base (2..36), using the digit set
// 0-9a-z as spec §4.5 requires for string dec2base/base2dec.
func formatBase(n int64, base int) string {
	return strconv.FormatInt(n, base)
}

// parseBase parses s as a signed integer in the given base (2..36).
func parseBase(s string, base int) (int64, error) {
	n, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, Errorf(ENumber, "expected base-%d integer but got %q", base, s).asError()
	}
	return n, nil
}

// asError adapts a Result produced for error reporting into a Go error,
// for the handful of internal helpers (parseInt, parseBase) that are
// shared between command implementations and the expr evaluator, the
// latter of which threads plain errors rather than Results.
func (r Result) asError() error {
	if r.Ok() {
		return nil
	}
	return resultError{r}
}

// resultError adapts a Result to the error interface.
type resultError struct{ r Result }

func (e resultError) Error() string { return e.r.String() }
