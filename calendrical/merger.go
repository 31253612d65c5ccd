// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

import (
	"fmt"
	"sort"
)

// A Merger is the working state of a single merge: it reduces a field set
// to the most specific representation the fields can support, ideally a
// concrete Date, TimeOfDay or both, while detecting inconsistent input.
//
// Rule merge hooks drive the process. Each hook reads its inputs with Get,
// stores results with StoreField, StoreDate or StoreTime, and retires its
// inputs with MarkProcessed. The engine repeats passes over the working
// set until no store changes it.
//
// A Merger is single use: create one with NewMerger, call Merge once, then
// query the Merged* accessors. It must not be shared between goroutines.
type Merger struct {
	original *Fields
	ctx      Context

	values    map[*Rule]int  // fields not yet fully merged
	processed map[*Rule]bool // retired, removed from values after the loop
	changed   bool           // did the current pass alter values?

	date   *Date
	time   *Overflow
	offset *ZoneOffset
}

// Passes beyond this indicate a merge hook that never stops storing.
const maxMergePasses = 100

// NewMerger returns a merger over the given fields and context.
func NewMerger(fields *Fields, ctx Context) *Merger {
	m := &Merger{
		original:  fields,
		ctx:       ctx,
		values:    make(map[*Rule]int, fields.Len()),
		processed: make(map[*Rule]bool),
	}
	for _, e := range fields.entries {
		m.values[e.Rule] = e.Value
	}
	return m
}

// OriginalFields returns the field set the merger was created with.
func (m *Merger) OriginalFields() *Fields { return m.original }

// Context returns the merger's context.
func (m *Merger) Context() Context { return m.ctx }

// IsStrict reports whether the merger validates values against rule bounds.
func (m *Merger) IsStrict() bool { return m.ctx.IsStrict() }

// Get returns the working value for r. The second result reports whether
// the field is present; absence is not an error. Under a strict context a
// present value outside the rule's bounds is a *RangeError citing r.
func (m *Merger) Get(r *Rule) (int, bool, error) {
	v, ok := m.values[r]
	if !ok {
		return 0, false, nil
	}
	if m.IsStrict() {
		if err := r.CheckValue(v); err != nil {
			return 0, true, err
		}
	}
	return v, true, nil
}

// Value is like Get but reports absence as an *UnsupportedFieldError.
func (m *Merger) Value(r *Rule) (int, error) {
	v, ok, err := m.Get(r)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &UnsupportedFieldError{Rule: r}
	}
	return v, nil
}

// MarkProcessed retires the given rules. Retired fields stay visible to
// merge hooks for the rest of the loop, keeping hooks idempotent, and are
// removed from the working set before cross-validation.
func (m *Merger) MarkProcessed(rules ...*Rule) {
	for _, r := range rules {
		m.processed[r] = true
	}
}

// StoreField records a merged value for r in the working set.
// Storing the value already present is a no-op. Storing a different value
// is an *InvalidFieldError citing r: the input carried a value for r that
// contradicts the one its sibling fields imply.
func (m *Merger) StoreField(r *Rule, value int) error {
	if old, ok := m.values[r]; ok {
		if old == value {
			return nil
		}
		return &InvalidFieldError{Rule: r, Value: old, Derived: value}
	}
	m.values[r] = value
	m.changed = true
	return nil
}

// StoreDate records the merged date. The date is settable once; a second
// store of a different date means two primary sets disagreed, which is a
// *MergeError regardless of strictness.
func (m *Merger) StoreDate(d Date) error {
	if m.date != nil {
		if *m.date == d {
			return nil
		}
		return mergeErrorf("merge resolved two different dates, %v and %v", *m.date, d)
	}
	m.date = &d
	m.changed = true
	return nil
}

// StoreTime records the merged time with its overflow days. Like the date
// it is settable once; a differing second store is a *MergeError.
func (m *Merger) StoreTime(o Overflow) error {
	if m.time != nil {
		if *m.time == o {
			return nil
		}
		return mergeErrorf("merge resolved two different times, %v and %v", *m.time, o)
	}
	m.time = &o
	m.changed = true
	return nil
}

// StoreOffset records the merged zone offset, settable once.
func (m *Merger) StoreOffset(o ZoneOffset) error {
	if m.offset != nil {
		if *m.offset == o {
			return nil
		}
		return mergeErrorf("merge resolved two different zone offsets, %v and %v", *m.offset, o)
	}
	m.offset = &o
	m.changed = true
	return nil
}

// MergedFields returns the fields that remain after merging, most
// significant first. Before Merge it returns the original fields.
func (m *Merger) MergedFields() *Fields { return FieldsFromMap(m.values) }

// MergedDate returns the resolved date, if any.
func (m *Merger) MergedDate() (Date, bool) {
	if m.date == nil {
		return Date{}, false
	}
	return *m.date, true
}

// MergedTime returns the resolved time with overflow days, if any.
func (m *Merger) MergedTime() (Overflow, bool) {
	if m.time == nil {
		return Overflow{}, false
	}
	return *m.time, true
}

// MergedOffset returns the resolved zone offset, if any.
func (m *Merger) MergedOffset() (ZoneOffset, bool) {
	if m.offset == nil {
		return ZoneOffset{}, false
	}
	return *m.offset, true
}

// Merge runs the merge to completion: the merge loop first, then
// cross-validation of whatever fields remain against the resolved date,
// time, and each other. On error the merger's intermediate state is
// unspecified.
func (m *Merger) Merge() error {
	if len(m.values) == 0 {
		return nil
	}
	if err := m.mergeLoop(); err != nil {
		return err
	}
	for r := range m.processed {
		delete(m.values, r)
	}
	return m.crossValidate()
}

// mergeLoop repeatedly invokes the merge hook of every rule present,
// most significant rule first, until a pass stores nothing new.
func (m *Merger) mergeLoop() error {
	for i := 0; i < maxMergePasses; i++ {
		m.changed = false
		// Snapshot: hooks mutate values as they run.
		for _, r := range m.sortedRules() {
			if r.merge == nil {
				continue
			}
			if err := r.merge(m); err != nil {
				return err
			}
		}
		if !m.changed {
			return nil
		}
	}
	return mergeErrorf("merge did not converge after %d passes, badly implemented rule?", maxMergePasses)
}

func (m *Merger) sortedRules() []*Rule {
	rules := make([]*Rule, 0, len(m.values))
	for r := range m.values {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool {
		return compareRules(rules[i], rules[j]) > 0
	})
	return rules
}

// crossValidate checks every remaining field first against the resolved
// date and time, then against values derivable from the other remaining
// fields. A checked field is consumed either way: consistent values are
// redundant, inconsistent ones are an *InvalidFieldError, or are silently
// dropped when the context discards unused fields.
func (m *Merger) crossValidate() error {
	if m.date != nil || m.time != nil {
		if err := m.crossValidateDateTime(); err != nil {
			return err
		}
	}

	fs := m.MergedFields()
	for _, e := range fs.entries {
		if e.Rule.derive == nil {
			continue
		}
		derived, ok := e.Rule.derive(fs)
		if !ok {
			continue
		}
		if derived != e.Value && m.ctx.IsCheckUnusedFields() {
			return &InvalidFieldError{
				Rule:    e.Rule,
				Value:   e.Value,
				Derived: derived,
				From:    "related fields",
			}
		}
		delete(m.values, e.Rule)
	}
	return nil
}

func (m *Merger) crossValidateDateTime() error {
	// When both are resolved the time's overflow days shift the date.
	var (
		date    Date
		time    TimeOfDay
		hasDate = m.date != nil
		hasTime = m.time != nil
		from    string
	)
	switch {
	case hasDate && hasTime:
		dt := m.time.ToDateTime(*m.date)
		date, time = dt.Date(), dt.Time()
		from = fmt.Sprintf("date-time %v", dt)
	case hasDate:
		date = *m.date
		from = fmt.Sprintf("date %v", date)
	default:
		time = m.time.Time()
		from = fmt.Sprintf("time %v", m.time)
	}

	for _, r := range m.sortedRules() {
		var derived int
		switch {
		case hasDate && r.fromDate != nil:
			derived = r.fromDate(date)
		case hasTime && r.fromTime != nil:
			derived = r.fromTime(time)
		default:
			continue
		}
		if v := m.values[r]; v != derived && m.ctx.IsCheckUnusedFields() {
			return &InvalidFieldError{Rule: r, Value: v, Derived: derived, From: from}
		}
		delete(m.values, r)
	}
	return nil
}

// Merge merges the fields under the given context and returns the
// completed merger for inspection of its results.
func (fs *Fields) Merge(ctx Context) (*Merger, error) {
	m := NewMerger(fs, ctx)
	if err := m.Merge(); err != nil {
		return nil, err
	}
	return m, nil
}

// MergeStrict merges under the Strict context.
func (fs *Fields) MergeStrict() (*Merger, error) { return fs.Merge(Strict) }

// MergeLenient merges under the Lenient context.
func (fs *Fields) MergeLenient() (*Merger, error) { return fs.Merge(Lenient) }

// MergeToDate merges the fields under ctx and returns the resolved date.
// The second result reports whether the fields sufficed to form one;
// insufficiency is not an error, inconsistency is.
func (fs *Fields) MergeToDate(ctx Context) (Date, bool, error) {
	m, err := fs.Merge(ctx)
	if err != nil {
		return Date{}, false, err
	}
	d, ok := m.MergedDate()
	return d, ok, nil
}

// MergeToTime merges the fields under ctx and returns the resolved time
// with its overflow days. The second result reports whether the fields
// sufficed to form one.
func (fs *Fields) MergeToTime(ctx Context) (Overflow, bool, error) {
	m, err := fs.Merge(ctx)
	if err != nil {
		return Overflow{}, false, err
	}
	t, ok := m.MergedTime()
	return t, ok, nil
}

// MergeToDateTime merges the fields under ctx and returns the combined
// date-time, with the time's overflow days applied to the date. The second
// result reports whether the fields resolved both a date and a time.
func (fs *Fields) MergeToDateTime(ctx Context) (DateTime, bool, error) {
	m, err := fs.Merge(ctx)
	if err != nil {
		return DateTime{}, false, err
	}
	d, okD := m.MergedDate()
	t, okT := m.MergedTime()
	if !okD || !okT {
		return DateTime{}, false, nil
	}
	return t.ToDateTime(d), true, nil
}

// ToDate merges the fields under ctx and returns the resolved date,
// reporting a *ConversionError if no primary set formed one.
func (fs *Fields) ToDate(ctx Context) (Date, error) {
	d, ok, err := fs.MergeToDate(ctx)
	if err != nil {
		return Date{}, err
	}
	if !ok {
		return Date{}, &ConversionError{What: "date", Fields: fs}
	}
	return d, nil
}

// ToTime merges the fields under ctx and returns the resolved time of day,
// discarding overflow days, and reporting a *ConversionError if no primary
// set formed one.
func (fs *Fields) ToTime(ctx Context) (TimeOfDay, error) {
	t, ok, err := fs.MergeToTime(ctx)
	if err != nil {
		return TimeOfDay{}, err
	}
	if !ok {
		return TimeOfDay{}, &ConversionError{What: "time", Fields: fs}
	}
	return t.Time(), nil
}

// ToDateTime merges the fields under ctx and returns the combined
// date-time, reporting a *ConversionError unless both a date and a time
// were resolved.
func (fs *Fields) ToDateTime(ctx Context) (DateTime, error) {
	dt, ok, err := fs.MergeToDateTime(ctx)
	if err != nil {
		return DateTime{}, err
	}
	if !ok {
		return DateTime{}, &ConversionError{What: "date-time", Fields: fs}
	}
	return dt, nil
}
