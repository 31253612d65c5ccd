// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendrical implements a calendar and time-field calculation
// engine.
//
// The central abstraction is the field rule, a singleton descriptor for one
// calendrical quantity such as Year or MinuteOfHour. A set of (rule, value)
// pairs is held in an immutable Fields container, and a Merger reduces such
// a set to the most specific representation it can support, ideally a
// concrete Date, TimeOfDay or both, while detecting and reporting
// inconsistent input.
//
// Fields and rules are immutable and safe for concurrent use. A Merger is
// mutable working state for a single merge and must not be shared between
// goroutines.
package calendrical // import "go.calendrical.net/calendrical"

import (
	"fmt"
	"sort"
	"sync"
)

// A Unit is a granularity of civil time, used to order field rules by
// significance. Units compare by size: Nanos is the smallest, Forever the
// largest.
type Unit int8

const (
	Nanos Unit = iota
	Millis
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Quarters
	Years
	Decades
	Centuries
	Forever // unbounded range, e.g. the range of Year
)

var unitNames = [...]string{
	Nanos:     "nanos",
	Millis:    "millis",
	Seconds:   "seconds",
	Minutes:   "minutes",
	Hours:     "hours",
	HalfDays:  "halfdays",
	Days:      "days",
	Weeks:     "weeks",
	Months:    "months",
	Quarters:  "quarters",
	Years:     "years",
	Decades:   "decades",
	Centuries: "centuries",
	Forever:   "forever",
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("unit(%d)", int8(u))
}

// A Rule describes one calendrical quantity: its name, the outer range of
// valid values, the unit it measures and the larger unit it is bounded
// within, and hooks that relate it to neighbouring rules.
//
// Rules are singletons; equality is pointer identity, and a *Rule is a
// valid map key. All built-in rules are created during package
// initialization; see Year, MonthOfYear, and friends.
type Rule struct {
	name     string
	unit     Unit // the granularity measured ("hour" in hour-of-day)
	rng      Unit // the bound ("day" in hour-of-day)
	min, max int

	// derive computes this rule's value from other fields already known,
	// reporting false when the set carries insufficient information.
	// It must not consult the rule's own entry.
	derive func(fs *Fields) (int, bool)

	// merge combines this rule's value with sibling values into a more
	// significant field, date or time, storing the result via the Merger.
	// It is only invoked when the rule is present in the working set, and
	// must be idempotent.
	merge func(m *Merger) error

	// fromDate and fromTime extract the rule's value from a resolved
	// date or time. Nil when the rule has no such projection.
	fromDate func(d Date) int
	fromTime func(t TimeOfDay) int
}

// A RuleSpec describes a Rule to be created by NewRule.
// The hook fields mirror the unexported hooks of Rule and may be nil.
type RuleSpec struct {
	Name     string
	Unit     Unit
	Range    Unit
	Min, Max int
	Derive   func(fs *Fields) (int, bool)
	Merge    func(m *Merger) error
	FromDate func(d Date) int
	FromTime func(t TimeOfDay) int
}

var (
	registryMu sync.Mutex
	registry   = make(map[string]*Rule)
)

// NewRule creates and registers a field rule.
// It panics if the name is empty or already registered, or if Min > Max.
// The returned pointer is the rule's identity for the life of the process.
func NewRule(spec RuleSpec) *Rule {
	if spec.Name == "" {
		panic("calendrical.NewRule: empty rule name")
	}
	if spec.Min > spec.Max {
		panic(fmt.Sprintf("calendrical.NewRule: %s: minimum %d exceeds maximum %d", spec.Name, spec.Min, spec.Max))
	}
	r := &Rule{
		name:     spec.Name,
		unit:     spec.Unit,
		rng:      spec.Range,
		min:      spec.Min,
		max:      spec.Max,
		derive:   spec.Derive,
		merge:    spec.Merge,
		fromDate: spec.FromDate,
		fromTime: spec.FromTime,
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[r.name]; ok {
		panic(fmt.Sprintf("calendrical.NewRule: duplicate rule %q", r.name))
	}
	registry[r.name] = r
	return r
}

// LookupRule returns the rule registered under name.
// For an unknown name the error suggests the nearest registered name,
// if any is close enough.
func LookupRule(name string) (*Rule, error) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if r, ok := registry[name]; ok {
		return r, nil
	}
	var names []string
	for n := range registry {
		names = append(names, n)
	}
	if n := nearestName(name, names); n != "" {
		return nil, fmt.Errorf("no field rule %q; did you mean %s?", name, n)
	}
	return nil, fmt.Errorf("no field rule %q", name)
}

// RuleNames returns the names of all registered rules, sorted.
func RuleNames() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Name returns the rule's name, e.g. "MonthOfYear".
func (r *Rule) Name() string { return r.name }

// Unit returns the granularity the rule measures.
func (r *Rule) Unit() Unit { return r.unit }

// Range returns the larger unit the rule is bounded within.
func (r *Rule) Range() Unit { return r.rng }

// Minimum returns the smallest valid value for the rule.
func (r *Rule) Minimum() int { return r.min }

// Maximum returns the largest valid value for the rule.
func (r *Rule) Maximum() int { return r.max }

// IsValidValue reports whether v lies within the rule's declared bounds.
func (r *Rule) IsValidValue(v int) bool { return v >= r.min && v <= r.max }

// CheckValue returns a *RangeError if v lies outside the rule's declared
// bounds, and nil otherwise.
func (r *Rule) CheckValue(v int) error {
	if !r.IsValidValue(v) {
		return &RangeError{Rule: r, Value: v}
	}
	return nil
}

func (r *Rule) String() string { return r.name }

// compareRules orders rules by significance: first by unit, then by range.
// DayOfWeek sorts below DayOfMonth, which sorts below DayOfYear.
// Iteration in this package runs most significant first, i.e. descending.
func compareRules(a, b *Rule) int {
	if a.unit != b.unit {
		return int(a.unit) - int(b.unit)
	}
	if a.rng != b.rng {
		return int(a.rng) - int(b.rng)
	}
	// Equal unit and range: fall back to name for a total order.
	if a.name < b.name {
		return -1
	} else if a.name > b.name {
		return +1
	}
	return 0
}
