// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

import "fmt"

// A Date is a calendar date in the ISO-8601 (proleptic Gregorian) calendar,
// without a time of day or a time zone. The zero value is 0000-01-01.
//
// Date is immutable and safe for concurrent use.
type Date struct {
	year  int
	month int // 1..12; 0 means January for the zero value
	day   int // 1..31; 0 means day 1 for the zero value
}

const (
	// MinYear and MaxYear bound the years representable by Date.
	MinYear = -999_999_999
	MaxYear = +999_999_999
)

// daysBefore[m-1] is the number of days in a non-leap year before month m.
var daysBefore = [13]int{
	0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365,
}

// NewDate returns the date with the given year, month and day.
// An out-of-range month or day yields a *RangeError; a day that is valid
// in general but not for the given month and year (June 31st) yields an
// *InvalidFieldError citing DayOfMonth.
func NewDate(year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, &RangeError{Rule: Year, Value: year}
	}
	if month < 1 || month > 12 {
		return Date{}, &RangeError{Rule: MonthOfYear, Value: month}
	}
	if day < 1 || day > 31 {
		return Date{}, &RangeError{Rule: DayOfMonth, Value: day}
	}
	if max := DaysInMonth(year, month); day > max {
		return Date{}, &InvalidFieldError{
			Rule:    DayOfMonth,
			Value:   day,
			Derived: max,
			From:    fmt.Sprintf("month %04d-%02d (%d days)", year, month, max),
		}
	}
	return Date{year, month, day}, nil
}

// MustDate is like NewDate but panics on invalid input.
// It simplifies initialization of valid constant dates.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromYearDay returns the date with the given year and day-of-year.
// A day-of-year of 366 in a non-leap year yields an *InvalidFieldError
// citing DayOfYear.
func DateFromYearDay(year, dayOfYear int) (Date, error) {
	if dayOfYear < 1 || dayOfYear > 366 {
		return Date{}, &RangeError{Rule: DayOfYear, Value: dayOfYear}
	}
	if dayOfYear == 366 && !IsLeapYear(year) {
		return Date{}, &InvalidFieldError{
			Rule:    DayOfYear,
			Value:   dayOfYear,
			Derived: 365,
			From:    fmt.Sprintf("non-leap year %d", year),
		}
	}
	doy := dayOfYear
	leapAdj := 0
	if IsLeapYear(year) && doy > 59 {
		if doy == 60 {
			return Date{year, 2, 29}, nil
		}
		leapAdj = 1
	}
	doy -= leapAdj
	month := 1
	for doy > daysBefore[month] {
		month++
	}
	return Date{year, month, doy - daysBefore[month-1]}, nil
}

// DateFromEpochDay returns the date for the given number of days since the
// epoch 1970-01-01. Negative values are days before the epoch.
//
// The conversion uses the civil-from-days algorithm; see
// https://howardhinnant.github.io/date_algorithms.html.
func DateFromEpochDay(epochDay int) Date {
	z := epochDay + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097                                  // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	day := doy - (153*mp+2)/5 + 1            // [1, 31]
	month := mp + 3
	if mp >= 10 {
		month = mp - 9
	}
	if month <= 2 {
		y++
	}
	return Date{y, month, day}
}

// IsLeapYear reports whether the given ISO year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length in days of the given month of the given
// year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month-of-year, from 1 to 12.
func (d Date) Month() int {
	if d.month == 0 {
		return 1
	}
	return d.month
}

// Day returns the day-of-month, from 1 to 31.
func (d Date) Day() int {
	if d.day == 0 {
		return 1
	}
	return d.day
}

// DayOfYear returns the day-of-year, from 1 to 365 (366 in a leap year).
func (d Date) DayOfYear() int {
	doy := daysBefore[d.Month()-1] + d.Day()
	if d.Month() > 2 && IsLeapYear(d.year) {
		doy++
	}
	return doy
}

// Weekday returns the ISO day-of-week, from 1 (Monday) to 7 (Sunday).
func (d Date) Weekday() int {
	// 1970-01-01 was a Thursday.
	return floorMod(d.EpochDay()+3, 7) + 1
}

// Quarter returns the quarter-of-year, from 1 to 4.
func (d Date) Quarter() int { return (d.Month()-1)/3 + 1 }

// EpochDay returns the number of days since the epoch 1970-01-01;
// earlier dates are negative.
func (d Date) EpochDay() int {
	y := d.year
	if d.Month() <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	mp := d.Month() + 9
	if d.Month() > 2 {
		mp = d.Month() - 3
	}
	doy := (153*mp+2)/5 + d.Day() - 1      // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468
}

// AddDays returns the date n days after d (before, if n is negative).
func (d Date) AddDays(n int) Date {
	if n == 0 {
		return d
	}
	return DateFromEpochDay(d.EpochDay() + n)
}

// AddMonths returns the date n months after d, with the day-of-month
// reduced to the last valid day of the resulting month if necessary.
func (d Date) AddMonths(n int) Date {
	if n == 0 {
		return d
	}
	months := d.year*12 + (d.Month() - 1) + n
	y := floorDiv(months, 12)
	m := floorMod(months, 12) + 1
	day := d.Day()
	if max := DaysInMonth(y, m); day > max {
		day = max
	}
	return Date{y, m, day}
}

// Fields exports the date as a Year + MonthOfYear + DayOfMonth field set,
// suitable for input to a Merger.
func (d Date) Fields() *Fields {
	return NewFields(
		FieldValue{Year, d.Year()},
		FieldValue{MonthOfYear, d.Month()},
		FieldValue{DayOfMonth, d.Day()},
	)
}

// String returns the date in ISO-8601 extended format, e.g. "2008-06-30".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.Month(), d.Day())
}

// floorDiv returns the floored quotient of x and y, rounding toward
// negative infinity. y must be positive.
func floorDiv(x, y int) int {
	q := x / y
	if x%y < 0 {
		q--
	}
	return q
}

// floorMod returns the non-negative remainder of floorDiv(x, y).
func floorMod(x, y int) int {
	r := x % y
	if r < 0 {
		r += y
	}
	return r
}
