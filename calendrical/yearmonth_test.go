// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

import "testing"

func TestNewYearMonth(t *testing.T) {
	ym, err := NewYearMonth(2008, 6)
	if err != nil || ym.Year() != 2008 || ym.Month() != 6 {
		t.Errorf("got %v, %v", ym, err)
	}
	_, err = NewYearMonth(2008, 13)
	wantRangeError(t, err, MonthOfYear)
	_, err = NewYearMonth(MinYear-1, 1)
	wantRangeError(t, err, Year)

	var zero YearMonth
	if zero.Year() != 0 || zero.Month() != 1 {
		t.Errorf("zero YearMonth = %v, want 0000-01", zero)
	}
}

func TestYearMonthAtDay(t *testing.T) {
	ym, _ := NewYearMonth(2008, 6)
	d, err := ym.AtDay(30)
	if err != nil || d != MustDate(2008, 6, 30) {
		t.Errorf("AtDay(30) = %v, %v", d, err)
	}
	_, err = ym.AtDay(31)
	wantInvalidField(t, err, DayOfMonth)
}

func TestYearMonthFields(t *testing.T) {
	ym, _ := NewYearMonth(2008, 6)
	want := NewFields(fv(Year, 2008), fv(MonthOfYear, 6))
	if got := ym.Fields(); !got.Equal(want) {
		t.Errorf("Fields = %v, want %v", got, want)
	}
	if got, err := ym.Fields().ToYearMonth(Strict); err != nil || got != ym {
		t.Errorf("Fields().ToYearMonth() = %v, %v, want %v", got, err, ym)
	}
	if got := ym.String(); got != "2008-06" {
		t.Errorf("String = %q", got)
	}
}
