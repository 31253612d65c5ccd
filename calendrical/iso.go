// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

// This file defines the built-in field rules of the ISO-8601 calendar and
// the hooks that relate them. Merge hooks are owned by the more
// significant rule of each combining pair, so Year owns the assembly of
// complete dates and QuarterOfYear owns QuarterOfYear+MonthOfQuarter.
//
// The hooks are installed by init rather than in the var block: they
// reference the rule variables themselves, which would otherwise make the
// declarations cyclic.

// The built-in field rules, in decreasing significance.
var (
	Century = NewRule(RuleSpec{
		Name: "Century", Unit: Centuries, Range: Forever,
		Min: MinYear / 100, Max: MaxYear / 100,
	})
	DecadeOfCentury = NewRule(RuleSpec{
		Name: "DecadeOfCentury", Unit: Decades, Range: Centuries, Min: 0, Max: 9,
	})
	Year = NewRule(RuleSpec{
		Name: "Year", Unit: Years, Range: Forever, Min: MinYear, Max: MaxYear,
	})
	YearOfCentury = NewRule(RuleSpec{
		Name: "YearOfCentury", Unit: Years, Range: Centuries, Min: 0, Max: 99,
	})
	YearOfDecade = NewRule(RuleSpec{
		Name: "YearOfDecade", Unit: Years, Range: Decades, Min: 0, Max: 9,
	})
	QuarterOfYear = NewRule(RuleSpec{
		Name: "QuarterOfYear", Unit: Quarters, Range: Years, Min: 1, Max: 4,
	})
	MonthOfYear = NewRule(RuleSpec{
		Name: "MonthOfYear", Unit: Months, Range: Years, Min: 1, Max: 12,
	})
	MonthOfQuarter = NewRule(RuleSpec{
		Name: "MonthOfQuarter", Unit: Months, Range: Quarters, Min: 1, Max: 3,
	})
	DayOfYear = NewRule(RuleSpec{
		Name: "DayOfYear", Unit: Days, Range: Years, Min: 1, Max: 366,
	})
	DayOfMonth = NewRule(RuleSpec{
		Name: "DayOfMonth", Unit: Days, Range: Months, Min: 1, Max: 31,
	})
	DayOfWeek = NewRule(RuleSpec{
		Name: "DayOfWeek", Unit: Days, Range: Weeks, Min: 1, Max: 7,
	})
	AmPmOfDay = NewRule(RuleSpec{
		Name: "AmPmOfDay", Unit: HalfDays, Range: Days, Min: 0, Max: 1,
	})
	HourOfDay = NewRule(RuleSpec{
		Name: "HourOfDay", Unit: Hours, Range: Days, Min: 0, Max: 23,
	})
	HourOfAmPm = NewRule(RuleSpec{
		Name: "HourOfAmPm", Unit: Hours, Range: HalfDays, Min: 0, Max: 11,
	})
	MilliOfDay = NewRule(RuleSpec{
		Name: "MilliOfDay", Unit: Millis, Range: Days, Min: 0, Max: millisPerDay - 1,
	})
	MinuteOfHour = NewRule(RuleSpec{
		Name: "MinuteOfHour", Unit: Minutes, Range: Hours, Min: 0, Max: 59,
	})
	SecondOfMinute = NewRule(RuleSpec{
		Name: "SecondOfMinute", Unit: Seconds, Range: Minutes, Min: 0, Max: 59,
	})
	NanoOfSecond = NewRule(RuleSpec{
		Name: "NanoOfSecond", Unit: Nanos, Range: Seconds, Min: 0, Max: 999_999_999,
	})
)

func init() {
	Century.merge = mergeCentury
	Century.derive = deriveFrom(Year, func(y int) int { return floorDiv(y, 100) })
	Century.fromDate = func(d Date) int { return floorDiv(d.Year(), 100) }

	DecadeOfCentury.merge = mergeDecadeOfCentury
	DecadeOfCentury.derive = deriveYearPart(func(yoc int) int { return yoc / 10 })
	DecadeOfCentury.fromDate = func(d Date) int { return floorMod(d.Year(), 100) / 10 }

	Year.merge = mergeYear
	Year.fromDate = Date.Year

	YearOfCentury.derive = deriveFrom(Year, func(y int) int { return floorMod(y, 100) })
	YearOfCentury.fromDate = func(d Date) int { return floorMod(d.Year(), 100) }

	YearOfDecade.derive = deriveYearPart(func(yoc int) int { return yoc % 10 })
	YearOfDecade.fromDate = func(d Date) int { return floorMod(d.Year(), 100) % 10 }

	QuarterOfYear.merge = mergeQuarterOfYear
	QuarterOfYear.derive = deriveFrom(MonthOfYear, func(moy int) int { return (moy-1)/3 + 1 })
	QuarterOfYear.fromDate = Date.Quarter

	MonthOfYear.derive = deriveMonthOfYear
	MonthOfYear.fromDate = Date.Month

	MonthOfQuarter.derive = deriveFrom(MonthOfYear, func(moy int) int { return (moy-1)%3 + 1 })
	MonthOfQuarter.fromDate = func(d Date) int { return (d.Month()-1)%3 + 1 }

	DayOfYear.fromDate = Date.DayOfYear
	DayOfMonth.fromDate = Date.Day
	DayOfWeek.fromDate = Date.Weekday

	AmPmOfDay.merge = mergeAmPmOfDay
	AmPmOfDay.derive = deriveHourPart(func(h int) int { return h / 12 })
	AmPmOfDay.fromTime = func(t TimeOfDay) int { return t.Hour() / 12 }

	HourOfDay.merge = mergeHourOfDay
	HourOfDay.fromTime = TimeOfDay.Hour

	HourOfAmPm.derive = deriveHourPart(func(h int) int { return h % 12 })
	HourOfAmPm.fromTime = func(t TimeOfDay) int { return t.Hour() % 12 }

	MilliOfDay.merge = mergeMilliOfDay
	MilliOfDay.derive = deriveMilliOfDay
	MilliOfDay.fromTime = TimeOfDay.MilliOfDay

	MinuteOfHour.fromTime = TimeOfDay.Minute
	SecondOfMinute.fromTime = TimeOfDay.Second
	NanoOfSecond.fromTime = TimeOfDay.Nano
}

// deriveFrom builds a derive hook computing a value from a single other
// field.
func deriveFrom(src *Rule, f func(int) int) func(*Fields) (int, bool) {
	return func(fs *Fields) (int, bool) {
		if v, ok := fs.Get(src); ok {
			return f(v), true
		}
		return 0, false
	}
}

// deriveYearPart builds a derive hook for the decade and year-of-decade
// subdivisions, preferring an explicit YearOfCentury over a full Year.
func deriveYearPart(f func(yearOfCentury int) int) func(*Fields) (int, bool) {
	return func(fs *Fields) (int, bool) {
		if yoc, ok := fs.Get(YearOfCentury); ok {
			return f(yoc), true
		}
		if y, ok := fs.Get(Year); ok {
			return f(floorMod(y, 100)), true
		}
		return 0, false
	}
}

// deriveHourPart builds a derive hook splitting a valid HourOfDay.
func deriveHourPart(f func(hourOfDay int) int) func(*Fields) (int, bool) {
	return func(fs *Fields) (int, bool) {
		if h, ok := fs.Get(HourOfDay); ok && h >= 0 && h <= 23 {
			return f(h), true
		}
		return 0, false
	}
}

func deriveMonthOfYear(fs *Fields) (int, bool) {
	qoy, ok1 := fs.Get(QuarterOfYear)
	moq, ok2 := fs.Get(MonthOfQuarter)
	if !ok1 || !ok2 {
		return 0, false
	}
	return (qoy-1)*3 + moq, true
}

func deriveMilliOfDay(fs *Fields) (int, bool) {
	h, ok := fs.Get(HourOfDay)
	if !ok {
		return 0, false
	}
	min, _ := fs.Get(MinuteOfHour)
	sec, _ := fs.Get(SecondOfMinute)
	nano, _ := fs.Get(NanoOfSecond)
	total := int64(h)*nanosPerHour + int64(min)*nanosPerMinute +
		int64(sec)*nanosPerSecond + int64(nano)
	return int(total / 1_000_000), true
}

// mergeCentury combines Century with YearOfCentury into Year.
func mergeCentury(m *Merger) error {
	cen, ok, err := m.Get(Century)
	if !ok || err != nil {
		return err
	}
	yoc, ok, err := m.Get(YearOfCentury)
	if !ok || err != nil {
		return err
	}
	if err := m.StoreField(Year, cen*100+yoc); err != nil {
		return err
	}
	m.MarkProcessed(Century, YearOfCentury)
	return nil
}

// mergeDecadeOfCentury combines DecadeOfCentury with YearOfDecade into
// YearOfCentury, one level below the Century merge.
func mergeDecadeOfCentury(m *Merger) error {
	doc, ok, err := m.Get(DecadeOfCentury)
	if !ok || err != nil {
		return err
	}
	yod, ok, err := m.Get(YearOfDecade)
	if !ok || err != nil {
		return err
	}
	if err := m.StoreField(YearOfCentury, doc*10+yod); err != nil {
		return err
	}
	m.MarkProcessed(DecadeOfCentury, YearOfDecade)
	return nil
}

// mergeQuarterOfYear combines QuarterOfYear with MonthOfQuarter into
// MonthOfYear.
func mergeQuarterOfYear(m *Merger) error {
	qoy, ok, err := m.Get(QuarterOfYear)
	if !ok || err != nil {
		return err
	}
	moq, ok, err := m.Get(MonthOfQuarter)
	if !ok || err != nil {
		return err
	}
	if err := m.StoreField(MonthOfYear, (qoy-1)*3+moq); err != nil {
		return err
	}
	m.MarkProcessed(QuarterOfYear, MonthOfQuarter)
	return nil
}

// mergeAmPmOfDay combines AmPmOfDay with HourOfAmPm into HourOfDay.
func mergeAmPmOfDay(m *Merger) error {
	ampm, ok, err := m.Get(AmPmOfDay)
	if !ok || err != nil {
		return err
	}
	hap, ok, err := m.Get(HourOfAmPm)
	if !ok || err != nil {
		return err
	}
	if err := m.StoreField(HourOfDay, ampm*12+hap); err != nil {
		return err
	}
	m.MarkProcessed(AmPmOfDay, HourOfAmPm)
	return nil
}

// mergeYear assembles a complete date from either primary date set:
// Year + MonthOfYear + DayOfMonth, or Year + DayOfYear. When both sets are
// present both dates are formed, and StoreDate rejects any disagreement.
func mergeYear(m *Merger) error {
	y, ok, err := m.Get(Year)
	if !ok || err != nil {
		return err
	}

	moy, okM, err := m.Get(MonthOfYear)
	if err != nil {
		return err
	}
	dom, okD, err := m.Get(DayOfMonth)
	if err != nil {
		return err
	}
	if okM && okD {
		var d Date
		if m.IsStrict() {
			d, err = NewDate(y, moy, dom)
		} else {
			// Lenient: month 14 rolls into the next year, day 0 into the
			// previous month, and so on.
			var base Date
			base, err = NewDate(y, 1, 1)
			d = base.AddMonths(moy - 1).AddDays(dom - 1)
		}
		if err != nil {
			return err
		}
		if err := m.StoreDate(d); err != nil {
			return err
		}
		m.MarkProcessed(Year, MonthOfYear, DayOfMonth)
	}

	doy, okY, err := m.Get(DayOfYear)
	if err != nil {
		return err
	}
	if okY {
		var d Date
		if m.IsStrict() {
			d, err = DateFromYearDay(y, doy)
		} else {
			var base Date
			base, err = NewDate(y, 1, 1)
			d = base.AddDays(doy - 1)
		}
		if err != nil {
			return err
		}
		if err := m.StoreDate(d); err != nil {
			return err
		}
		m.MarkProcessed(Year, DayOfYear)
	}
	return nil
}

// mergeHourOfDay assembles the time of day from HourOfDay plus whichever
// of MinuteOfHour, SecondOfMinute and NanoOfSecond are present, the absent
// ones defaulting to zero.
func mergeHourOfDay(m *Merger) error {
	h, ok, err := m.Get(HourOfDay)
	if !ok || err != nil {
		return err
	}
	min, _, err := m.Get(MinuteOfHour)
	if err != nil {
		return err
	}
	sec, _, err := m.Get(SecondOfMinute)
	if err != nil {
		return err
	}
	nano, _, err := m.Get(NanoOfSecond)
	if err != nil {
		return err
	}

	var o Overflow
	if m.IsStrict() {
		t, err := NewTimeOfDay(h, min, sec, nano)
		if err != nil {
			return err
		}
		o = NewOverflow(t, 0)
	} else {
		o = overflowFromNanos(int64(h)*nanosPerHour + int64(min)*nanosPerMinute +
			int64(sec)*nanosPerSecond + int64(nano))
	}
	if err := m.StoreTime(o); err != nil {
		return err
	}
	m.MarkProcessed(HourOfDay, MinuteOfHour, SecondOfMinute, NanoOfSecond)
	return nil
}

// mergeMilliOfDay resolves MilliOfDay directly to a time of day.
func mergeMilliOfDay(m *Merger) error {
	v, ok, err := m.Get(MilliOfDay)
	if !ok || err != nil {
		return err
	}
	o := overflowFromNanos(int64(v) * 1_000_000)
	if err := m.StoreTime(o); err != nil {
		return err
	}
	m.MarkProcessed(MilliOfDay)
	return nil
}
