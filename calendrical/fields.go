// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

import (
	"fmt"
	"sort"
	"strings"
)

// Fields is an immutable set of (rule, value) pairs representing a full or
// partial view of a date, time or date-time. Values are not validated
// against their rules' bounds; a Fields may hold a day-of-month of -3.
// Use Validate to check, or let a strict Merger reject bad values.
//
// All methods that would modify a Fields return a new instance, returning
// the receiver itself when the operation is a no-op. The empty set is a
// shared singleton, obtainable from EmptyFields.
type Fields struct {
	// entries is kept sorted most significant rule first, giving a
	// canonical order for iteration, display and equality.
	entries []FieldValue
}

// A FieldValue is a single (rule, value) pair.
type FieldValue struct {
	Rule  *Rule
	Value int
}

var emptyFields = new(Fields)

// EmptyFields returns the canonical empty field set.
func EmptyFields() *Fields { return emptyFields }

// NewFields returns a field set holding the given pairs.
// When the same rule appears more than once the last value wins.
// It panics if any rule is nil. With no arguments it returns the empty
// singleton.
func NewFields(pairs ...FieldValue) *Fields {
	if len(pairs) == 0 {
		return emptyFields
	}
	fs := &Fields{entries: make([]FieldValue, 0, len(pairs))}
	for _, p := range pairs {
		if p.Rule == nil {
			panic("calendrical.NewFields: nil rule")
		}
		fs.put(p.Rule, p.Value)
	}
	return fs
}

// FieldsFromMap returns a field set holding the pairs of m.
// It panics if any key is nil.
func FieldsFromMap(m map[*Rule]int) *Fields {
	if len(m) == 0 {
		return emptyFields
	}
	fs := &Fields{entries: make([]FieldValue, 0, len(m))}
	for r, v := range m {
		if r == nil {
			panic("calendrical.FieldsFromMap: nil rule")
		}
		fs.put(r, v)
	}
	return fs
}

// put inserts or overwrites in place, preserving the canonical order.
// The receiver must not be shared yet.
func (fs *Fields) put(r *Rule, v int) {
	i := sort.Search(len(fs.entries), func(i int) bool {
		return compareRules(fs.entries[i].Rule, r) <= 0
	})
	if i < len(fs.entries) && fs.entries[i].Rule == r {
		fs.entries[i].Value = v
		return
	}
	fs.entries = append(fs.entries, FieldValue{})
	copy(fs.entries[i+1:], fs.entries[i:])
	fs.entries[i] = FieldValue{r, v}
}

func (fs *Fields) index(r *Rule) int {
	if r == nil {
		return -1
	}
	i := sort.Search(len(fs.entries), func(i int) bool {
		return compareRules(fs.entries[i].Rule, r) <= 0
	})
	if i < len(fs.entries) && fs.entries[i].Rule == r {
		return i
	}
	return -1
}

// Len returns the number of fields in the set.
func (fs *Fields) Len() int { return len(fs.entries) }

// Has reports whether the set holds a value for r. A nil rule reports
// false.
func (fs *Fields) Has(r *Rule) bool { return fs.index(r) >= 0 }

// Get returns the raw value for r, without range validation.
// The second result reports whether the field is present; a nil rule
// reports absent.
func (fs *Fields) Get(r *Rule) (int, bool) {
	if i := fs.index(r); i >= 0 {
		return fs.entries[i].Value, true
	}
	return 0, false
}

// Value returns the raw value for r, without range validation.
// It returns an *UnsupportedFieldError if the field is absent.
func (fs *Fields) Value(r *Rule) (int, error) {
	if r == nil {
		panic("calendrical.Fields.Value: nil rule")
	}
	if i := fs.index(r); i >= 0 {
		return fs.entries[i].Value, nil
	}
	return 0, &UnsupportedFieldError{Rule: r}
}

// WithValue returns a set with the given pair inserted or overwritten.
// If r already maps to value, the receiver itself is returned.
// It panics if r is nil.
func (fs *Fields) WithValue(r *Rule, value int) *Fields {
	if r == nil {
		panic("calendrical.Fields.WithValue: nil rule")
	}
	if i := fs.index(r); i >= 0 && fs.entries[i].Value == value {
		return fs
	}
	out := &Fields{entries: make([]FieldValue, len(fs.entries), len(fs.entries)+1)}
	copy(out.entries, fs.entries)
	out.put(r, value)
	return out
}

// WithAll returns a set holding the union of fs and other, with values
// from other winning on overlap. If the result would equal the receiver,
// the receiver itself is returned.
func (fs *Fields) WithAll(other *Fields) *Fields {
	out := fs
	for _, e := range other.entries {
		out = out.WithValue(e.Rule, e.Value)
	}
	return out
}

// Without returns a set with r removed. If r is absent the receiver
// itself is returned; if the result is empty the canonical empty
// singleton is returned.
func (fs *Fields) Without(r *Rule) *Fields {
	i := fs.index(r)
	if i < 0 {
		return fs
	}
	if len(fs.entries) == 1 {
		return emptyFields
	}
	out := &Fields{entries: make([]FieldValue, 0, len(fs.entries)-1)}
	out.entries = append(out.entries, fs.entries[:i]...)
	out.entries = append(out.entries, fs.entries[i+1:]...)
	return out
}

// Validate checks every value against its rule's declared bounds and
// returns a *RangeError for the first invalid entry, in significance
// order. It returns nil if all values are valid.
func (fs *Fields) Validate() error {
	for _, e := range fs.entries {
		if err := e.Rule.CheckValue(e.Value); err != nil {
			return err
		}
	}
	return nil
}

// IsValid reports whether every value lies within its rule's bounds.
func (fs *Fields) IsValid() bool { return fs.Validate() == nil }

// Rules returns the rules present, most significant first.
func (fs *Fields) Rules() []*Rule {
	rules := make([]*Rule, len(fs.entries))
	for i, e := range fs.entries {
		rules[i] = e.Rule
	}
	return rules
}

// Pairs returns a copy of the (rule, value) pairs, most significant first.
func (fs *Fields) Pairs() []FieldValue {
	return append([]FieldValue(nil), fs.entries...)
}

// Map returns the fields as a freshly allocated map.
func (fs *Fields) Map() map[*Rule]int {
	m := make(map[*Rule]int, len(fs.entries))
	for _, e := range fs.entries {
		m[e.Rule] = e.Value
	}
	return m
}

// Equal reports whether fs and other hold exactly the same pairs,
// regardless of how either was built.
func (fs *Fields) Equal(other *Fields) bool {
	if fs == other {
		return true
	}
	if len(fs.entries) != len(other.entries) {
		return false
	}
	for i, e := range fs.entries {
		if other.entries[i] != e {
			return false
		}
	}
	return true
}

// MatchesDate reports whether every field whose value can be extracted
// from d matches it. Fields with no date projection are ignored, so an
// empty set matches vacuously.
func (fs *Fields) MatchesDate(d Date) bool {
	for _, e := range fs.entries {
		if e.Rule.fromDate != nil && e.Rule.fromDate(d) != e.Value {
			return false
		}
	}
	return true
}

// MatchesTime reports whether every field whose value can be extracted
// from t matches it. Fields with no time projection are ignored.
func (fs *Fields) MatchesTime(t TimeOfDay) bool {
	for _, e := range fs.entries {
		if e.Rule.fromTime != nil && e.Rule.fromTime(t) != e.Value {
			return false
		}
	}
	return true
}

// String returns the fields in significance order,
// e.g. "{Year=2008, MonthOfYear=6}".
func (fs *Fields) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range fs.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%d", e.Rule, e.Value)
	}
	b.WriteByte('}')
	return b.String()
}
