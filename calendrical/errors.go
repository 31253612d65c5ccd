// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

import "fmt"

// This file defines the error taxonomy of the merge engine.
// Every inconsistency detected during a merge is reported through one of
// these types, attributing the field rule at fault where one exists.
// Failures are scoped to a single merge invocation and are never retried
// internally.

// An UnsupportedFieldError indicates that a requested rule is absent from a
// field set entirely, as opposed to present with an invalid value.
type UnsupportedFieldError struct {
	Rule *Rule
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("field %s is not present", e.Rule)
}

// A RangeError indicates a value outside its rule's declared bounds.
// It is raised under strict validation only; lenient merges normalize
// out-of-range values arithmetically instead.
type RangeError struct {
	Rule  *Rule
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %d for %s is out of range [%d, %d]",
		e.Value, e.Rule, e.Rule.Minimum(), e.Rule.Maximum())
}

// An InvalidFieldError indicates a field whose stored value contradicts a
// value derivable from other fields or from the resolved date or time.
// Rule identifies the field whose stored value disagrees, which is not
// necessarily the rule that triggered resolution.
type InvalidFieldError struct {
	Rule    *Rule
	Value   int    // the stored, disagreeing value
	Derived int    // the value implied by the rest of the input
	From    string // what Derived was computed from, e.g. "date 2008-06-30"
}

func (e *InvalidFieldError) Error() string {
	if e.From != "" {
		return fmt.Sprintf("%s derived from %s is %d, inconsistent with input value %d",
			e.Rule, e.From, e.Derived, e.Value)
	}
	return fmt.Sprintf("merge produced value %d for %s, inconsistent with input value %d",
		e.Derived, e.Rule, e.Value)
}

// A MergeError indicates that the merge as a whole could not complete:
// two independent primary sets resolved different dates or times, or a
// misimplemented rule kept the merge loop from reaching a fixed point.
// It is raised regardless of context strictness.
type MergeError struct {
	Msg string
}

func (e *MergeError) Error() string { return e.Msg }

func mergeErrorf(format string, args ...interface{}) error {
	return &MergeError{Msg: fmt.Sprintf(format, args...)}
}

// A ConversionError indicates that no primary set of fields sufficed to
// produce a required date or time. It is returned by the ToDate family
// only; the MergeToDate family reports plain absence instead.
type ConversionError struct {
	What   string // "date", "time" or "date-time"
	Fields *Fields
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %v to a %s", e.Fields, e.What)
}
