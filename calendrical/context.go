// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

// A Context configures how a Merger treats its input.
//
// Strictness decides how values outside a rule's bounds are handled: a
// strict merge rejects them with a RangeError, a lenient merge normalizes
// them arithmetically, so an hour-of-day of 24 becomes midnight of the
// next day. Conflicting values are errors under both.
//
// The unused-fields flag decides the fate of fields that survive the merge
// alongside a resolved date or time but disagree with it: checked contexts
// report an InvalidFieldError, discarding contexts drop the field silently.
type Context struct {
	strict      bool
	checkUnused bool
}

// Predefined contexts covering the four configurations.
var (
	Strict            = Context{strict: true, checkUnused: true}
	StrictDiscarding  = Context{strict: true, checkUnused: false}
	Lenient           = Context{strict: false, checkUnused: true}
	LenientDiscarding = Context{strict: false, checkUnused: false}
)

// NewContext returns the context with the given strictness and
// unused-field checking.
func NewContext(strict, checkUnusedFields bool) Context {
	return Context{strict: strict, checkUnused: checkUnusedFields}
}

// IsStrict reports whether out-of-range values are rejected rather than
// normalized.
func (c Context) IsStrict() bool { return c.strict }

// IsCheckUnusedFields reports whether leftover fields that contradict a
// resolved date or time are errors rather than silently dropped.
func (c Context) IsCheckUnusedFields() bool { return c.checkUnused }

func (c Context) String() string {
	s := "lenient"
	if c.strict {
		s = "strict"
	}
	if !c.checkUnused {
		s += " discarding"
	}
	return s
}
