// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

import "fmt"

// A YearMonth is a year with a month-of-year but no day, such as 2008-06.
// The zero value is 0000-01.
type YearMonth struct {
	year  int
	month int // 1..12; 0 means January for the zero value
}

// NewYearMonth returns the year-month with the given year and month.
func NewYearMonth(year, month int) (YearMonth, error) {
	if year < MinYear || year > MaxYear {
		return YearMonth{}, &RangeError{Rule: Year, Value: year}
	}
	if month < 1 || month > 12 {
		return YearMonth{}, &RangeError{Rule: MonthOfYear, Value: month}
	}
	return YearMonth{year, month}, nil
}

// Year returns the year.
func (ym YearMonth) Year() int { return ym.year }

// Month returns the month-of-year, from 1 to 12.
func (ym YearMonth) Month() int {
	if ym.month == 0 {
		return 1
	}
	return ym.month
}

// AtDay returns the date of the given day in the year-month.
func (ym YearMonth) AtDay(day int) (Date, error) {
	return NewDate(ym.year, ym.Month(), day)
}

// Fields exports the year-month as a Year + MonthOfYear field set,
// suitable for input to a Merger.
func (ym YearMonth) Fields() *Fields {
	return NewFields(
		FieldValue{Year, ym.year},
		FieldValue{MonthOfYear, ym.Month()},
	)
}

// String returns the year-month in ISO-8601 format, e.g. "2008-06".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.year, ym.Month())
}

// ToYearMonth merges the fields under ctx and extracts a year-month,
// either from a resolved date or from merged Year and MonthOfYear fields.
// It reports a *ConversionError if neither is available.
func (fs *Fields) ToYearMonth(ctx Context) (YearMonth, error) {
	m, err := fs.Merge(ctx)
	if err != nil {
		return YearMonth{}, err
	}
	if d, ok := m.MergedDate(); ok {
		return YearMonth{d.Year(), d.Month()}, nil
	}
	merged := m.MergedFields()
	y, okY := merged.Get(Year)
	moy, okM := merged.Get(MonthOfYear)
	if !okY || !okM {
		return YearMonth{}, &ConversionError{What: "year-month", Fields: fs}
	}
	return NewYearMonth(y, moy)
}
