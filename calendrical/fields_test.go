// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewFields(t *testing.T) {
	fs := NewFields(fv(DayOfMonth, 30), fv(Year, 2008), fv(MonthOfYear, 6))
	if fs.Len() != 3 {
		t.Fatalf("Len = %d, want 3", fs.Len())
	}
	// Display order is most significant first, however the set was built.
	if got, want := fs.String(), "{Year=2008, MonthOfYear=6, DayOfMonth=30}"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}

	// Duplicate rules: last value wins.
	fs = NewFields(fv(Year, 2007), fv(Year, 2008))
	if v, _ := fs.Get(Year); fs.Len() != 1 || v != 2008 {
		t.Errorf("got %v, want {Year=2008}", fs)
	}

	if NewFields() != EmptyFields() {
		t.Error("NewFields() did not return the empty singleton")
	}
}

func TestFieldsGet(t *testing.T) {
	fs := NewFields(fv(Year, 2008), fv(MonthOfYear, 6))
	if v, ok := fs.Get(Year); !ok || v != 2008 {
		t.Errorf("Get(Year) = %d, %v, want 2008, true", v, ok)
	}
	if _, ok := fs.Get(DayOfMonth); ok {
		t.Error("Get(DayOfMonth) reported present, want absent")
	}
	if fs.Has(DayOfMonth) || !fs.Has(MonthOfYear) {
		t.Error("Has gave wrong answers")
	}

	if _, err := fs.Value(DayOfMonth); err == nil {
		t.Error("Value(DayOfMonth) succeeded, want UnsupportedFieldError")
	}
	if v, err := fs.Value(MonthOfYear); err != nil || v != 6 {
		t.Errorf("Value(MonthOfYear) = %d, %v, want 6, nil", v, err)
	}
}

func TestFieldsWithValue(t *testing.T) {
	fs := NewFields(fv(Year, 2008))

	fs2 := fs.WithValue(MonthOfYear, 6)
	if fs.Len() != 1 {
		t.Errorf("WithValue mutated the receiver: %v", fs)
	}
	if want := NewFields(fv(Year, 2008), fv(MonthOfYear, 6)); !fs2.Equal(want) {
		t.Errorf("got %v, want %v", fs2, want)
	}

	// Setting the value already present returns the receiver itself.
	if fs.WithValue(Year, 2008) != fs {
		t.Error("no-op WithValue allocated a new set")
	}

	fs3 := fs2.WithValue(Year, 1972)
	if v, _ := fs3.Get(Year); v != 1972 || fs3.Len() != 2 {
		t.Errorf("got %v, want {Year=1972, MonthOfYear=6}", fs3)
	}
}

func TestFieldsWithout(t *testing.T) {
	fs := NewFields(fv(Year, 2008), fv(MonthOfYear, 6))

	if fs.Without(DayOfMonth) != fs {
		t.Error("removing an absent rule allocated a new set")
	}
	fs2 := fs.Without(Year)
	if want := NewFields(fv(MonthOfYear, 6)); !fs2.Equal(want) {
		t.Errorf("got %v, want %v", fs2, want)
	}
	if fs2.Without(MonthOfYear) != EmptyFields() {
		t.Error("removing the last field did not return the empty singleton")
	}
}

func TestFieldsWithAll(t *testing.T) {
	a := NewFields(fv(Year, 2008), fv(MonthOfYear, 6))
	b := NewFields(fv(MonthOfYear, 7), fv(DayOfMonth, 1))

	got := a.WithAll(b)
	want := NewFields(fv(Year, 2008), fv(MonthOfYear, 7), fv(DayOfMonth, 1))
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Merging a subset with equal values is a no-op.
	if a.WithAll(NewFields(fv(Year, 2008))) != a {
		t.Error("no-op WithAll allocated a new set")
	}
}

func TestFieldsValidate(t *testing.T) {
	if err := NewFields(fv(Year, 2008), fv(MonthOfYear, 6)).Validate(); err != nil {
		t.Errorf("valid set failed validation: %v", err)
	}
	fs := NewFields(fv(Year, 2008), fv(MonthOfYear, 13), fv(DayOfMonth, 40))
	wantRangeError(t, fs.Validate(), MonthOfYear)
	if fs.IsValid() {
		t.Error("IsValid = true for an out-of-range set")
	}
	// A set can hold values no real date has; validation checks bounds only.
	if !NewFields(fv(MonthOfYear, 2), fv(DayOfMonth, 31)).IsValid() {
		t.Error("Feb 31 should pass per-field validation")
	}
}

func TestFieldsEqual(t *testing.T) {
	a := NewFields(fv(Year, 2008), fv(MonthOfYear, 6))
	b := NewFields(fv(MonthOfYear, 6), fv(Year, 2008))
	if !a.Equal(b) {
		t.Errorf("%v and %v should be equal regardless of construction order", a, b)
	}
	if a.Equal(a.WithValue(MonthOfYear, 7)) {
		t.Error("sets with different values compared equal")
	}
	if a.Equal(a.Without(MonthOfYear)) {
		t.Error("sets of different size compared equal")
	}
	// go-cmp picks up the Equal method.
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("cmp.Diff reported a difference: %s", d)
	}
}

func TestFieldsRulesAndMap(t *testing.T) {
	fs := NewFields(fv(DayOfMonth, 30), fv(Year, 2008), fv(MonthOfYear, 6))
	want := []*Rule{Year, MonthOfYear, DayOfMonth}
	// Rules are package-level singletons, so identity is the right equality;
	// without a Comparer, cmp panics on Rule's unexported fields.
	sameRule := cmp.Comparer(func(x, y *Rule) bool { return x == y })
	if d := cmp.Diff(want, fs.Rules(), sameRule); d != "" {
		t.Errorf("Rules mismatch (-want +got):\n%s", d)
	}

	m := fs.Map()
	if len(m) != 3 || m[Year] != 2008 || m[MonthOfYear] != 6 || m[DayOfMonth] != 30 {
		t.Errorf("Map = %v", m)
	}
	// The map is a copy.
	m[Year] = 1972
	if v, _ := fs.Get(Year); v != 2008 {
		t.Errorf("mutating the map changed the set: %v", fs)
	}

	if !fs.Equal(FieldsFromMap(fs.Map())) {
		t.Error("FieldsFromMap(Map()) did not round-trip")
	}
}

func TestFieldsMatchesDate(t *testing.T) {
	d := MustDate(2008, 6, 30)
	for _, test := range []struct {
		fs   *Fields
		want bool
	}{
		{EmptyFields(), true}, // vacuous
		{NewFields(fv(Year, 2008), fv(MonthOfYear, 6), fv(DayOfMonth, 30)), true},
		{NewFields(fv(DayOfWeek, 1), fv(QuarterOfYear, 2)), true},
		{NewFields(fv(Year, 2008), fv(DayOfMonth, 29)), false},
		{NewFields(fv(DayOfWeek, 5)), false},
		// Time fields have no date projection and are ignored.
		{NewFields(fv(HourOfDay, 11)), true},
	} {
		if got := test.fs.MatchesDate(d); got != test.want {
			t.Errorf("%v.MatchesDate(%v) = %v, want %v", test.fs, d, got, test.want)
		}
	}
}

func TestFieldsMatchesTime(t *testing.T) {
	tm := MustTimeOfDay(11, 30, 0, 0)
	for _, test := range []struct {
		fs   *Fields
		want bool
	}{
		{EmptyFields(), true},
		{NewFields(fv(HourOfDay, 11), fv(MinuteOfHour, 30)), true},
		{NewFields(fv(AmPmOfDay, 0), fv(HourOfAmPm, 11)), true},
		{NewFields(fv(MilliOfDay, 41_400_000)), true},
		{NewFields(fv(SecondOfMinute, 1)), false},
		{NewFields(fv(Year, 2008)), true}, // no time projection
	} {
		if got := test.fs.MatchesTime(tm); got != test.want {
			t.Errorf("%v.MatchesTime(%v) = %v, want %v", test.fs, tm, got, test.want)
		}
	}
}
