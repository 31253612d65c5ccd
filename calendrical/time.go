// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

import "fmt"

// Nanosecond counts per larger unit.
const (
	nanosPerSecond = int64(1_000_000_000)
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
	nanosPerDay    = 24 * nanosPerHour
	millisPerDay   = 24 * 60 * 60 * 1000
)

// A TimeOfDay is a wall-clock time without a date or a time zone, to
// nanosecond precision. The zero value is midnight.
//
// TimeOfDay is immutable and safe for concurrent use.
type TimeOfDay struct {
	hour, minute, second, nano int
}

// NewTimeOfDay returns the time with the given hour, minute, second and
// nanosecond. Each component outside its range yields a *RangeError citing
// the corresponding rule.
func NewTimeOfDay(hour, minute, second, nano int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, &RangeError{Rule: HourOfDay, Value: hour}
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, &RangeError{Rule: MinuteOfHour, Value: minute}
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, &RangeError{Rule: SecondOfMinute, Value: second}
	}
	if nano < 0 || nano > 999_999_999 {
		return TimeOfDay{}, &RangeError{Rule: NanoOfSecond, Value: nano}
	}
	return TimeOfDay{hour, minute, second, nano}, nil
}

// MustTimeOfDay is like NewTimeOfDay but panics on invalid input.
func MustTimeOfDay(hour, minute, second, nano int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeFromNanoOfDay returns the time at the given nanosecond of the day.
// The argument must lie in [0, 86_400_000_000_000).
func TimeFromNanoOfDay(nanoOfDay int64) TimeOfDay {
	if nanoOfDay < 0 || nanoOfDay >= nanosPerDay {
		panic(fmt.Sprintf("calendrical.TimeFromNanoOfDay: %d out of range", nanoOfDay))
	}
	hour := int(nanoOfDay / nanosPerHour)
	nanoOfDay -= int64(hour) * nanosPerHour
	minute := int(nanoOfDay / nanosPerMinute)
	nanoOfDay -= int64(minute) * nanosPerMinute
	second := int(nanoOfDay / nanosPerSecond)
	nano := int(nanoOfDay - int64(second)*nanosPerSecond)
	return TimeOfDay{hour, minute, second, nano}
}

// Hour returns the hour-of-day, from 0 to 23.
func (t TimeOfDay) Hour() int { return t.hour }

// Minute returns the minute-of-hour, from 0 to 59.
func (t TimeOfDay) Minute() int { return t.minute }

// Second returns the second-of-minute, from 0 to 59.
func (t TimeOfDay) Second() int { return t.second }

// Nano returns the nano-of-second, from 0 to 999,999,999.
func (t TimeOfDay) Nano() int { return t.nano }

// NanoOfDay returns the time as a nanosecond of the day.
func (t TimeOfDay) NanoOfDay() int64 {
	return int64(t.hour)*nanosPerHour +
		int64(t.minute)*nanosPerMinute +
		int64(t.second)*nanosPerSecond +
		int64(t.nano)
}

// MilliOfDay returns the time as a millisecond of the day, truncating any
// sub-millisecond component.
func (t TimeOfDay) MilliOfDay() int { return int(t.NanoOfDay() / 1_000_000) }

// Fields exports the time as an HourOfDay + MinuteOfHour + SecondOfMinute +
// NanoOfSecond field set, suitable for input to a Merger.
func (t TimeOfDay) Fields() *Fields {
	return NewFields(
		FieldValue{HourOfDay, t.hour},
		FieldValue{MinuteOfHour, t.minute},
		FieldValue{SecondOfMinute, t.second},
		FieldValue{NanoOfSecond, t.nano},
	)
}

// String returns the time in ISO-8601 format, omitting trailing zero
// components: "23:05", "23:05:09", or "23:05:09.123456789".
func (t TimeOfDay) String() string {
	switch {
	case t.nano != 0:
		s := fmt.Sprintf("%02d:%02d:%02d.%09d", t.hour, t.minute, t.second, t.nano)
		for s[len(s)-1] == '0' {
			s = s[:len(s)-1]
		}
		return s
	case t.second != 0:
		return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	default:
		return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
	}
}

// An Overflow is a time of day plus a whole number of days carried out of
// lenient arithmetic, e.g. hour 24 minute 30 normalizes to 00:30 plus one
// day. A strict merge always produces an Overflow of zero days.
type Overflow struct {
	time TimeOfDay
	days int
}

// NewOverflow returns an Overflow of the given time and excess days.
func NewOverflow(t TimeOfDay, days int) Overflow { return Overflow{t, days} }

// overflowFromNanos normalizes a total (possibly negative or multi-day)
// nanosecond count into a time of day and excess days.
func overflowFromNanos(total int64) Overflow {
	days := floorDiv64(total, nanosPerDay)
	return Overflow{TimeFromNanoOfDay(total - days*nanosPerDay), int(days)}
}

// Time returns the time of day, with any overflow days discarded.
func (o Overflow) Time() TimeOfDay { return o.time }

// Days returns the number of days carried beyond the time of day.
func (o Overflow) Days() int { return o.days }

// ToDateTime applies the overflow days to the given date and returns the
// combined date-time.
func (o Overflow) ToDateTime(d Date) DateTime {
	return DateTime{d.AddDays(o.days), o.time}
}

func (o Overflow) String() string {
	if o.days == 0 {
		return o.time.String()
	}
	return fmt.Sprintf("%v%+dd", o.time, o.days)
}

// A DateTime is a date with a time of day, without a time zone.
type DateTime struct {
	date Date
	time TimeOfDay
}

// NewDateTime returns the date-time combining d and t.
func NewDateTime(d Date, t TimeOfDay) DateTime { return DateTime{d, t} }

// Date returns the date component.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time-of-day component.
func (dt DateTime) Time() TimeOfDay { return dt.time }

// String returns the date-time in ISO-8601 format, e.g.
// "2008-06-30T23:05".
func (dt DateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}

func floorDiv64(x, y int64) int64 {
	q := x / y
	if x%y < 0 {
		q--
	}
	return q
}
