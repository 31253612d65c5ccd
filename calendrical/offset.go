// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

import "fmt"

const maxOffsetSeconds = 18 * 60 * 60

// A ZoneOffset is a fixed offset from UTC, in whole seconds, between
// -18:00 and +18:00 inclusive. The zero value is UTC.
//
// An offset carries no daylight-saving behaviour. It participates in a
// merge only as an opaque resolved component: a rule's merge hook may
// attach one to the Merger, and conflicting attachments are a MergeError.
type ZoneOffset struct {
	seconds int
}

// UTC is the zero offset.
var UTC = ZoneOffset{}

// OffsetFromSeconds returns the offset for the given total seconds east of
// UTC. Offsets beyond eighteen hours in either direction are rejected.
func OffsetFromSeconds(seconds int) (ZoneOffset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return ZoneOffset{}, fmt.Errorf("zone offset %d seconds exceeds +/-18:00", seconds)
	}
	return ZoneOffset{seconds}, nil
}

// OffsetFromHMS returns the offset for the given hours, minutes and
// seconds. The nonzero components must agree in sign.
func OffsetFromHMS(hours, minutes, seconds int) (ZoneOffset, error) {
	if (hours > 0 && (minutes < 0 || seconds < 0)) ||
		(hours < 0 && (minutes > 0 || seconds > 0)) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		return ZoneOffset{}, fmt.Errorf("zone offset components %d:%d:%d differ in sign", hours, minutes, seconds)
	}
	if minutes < -59 || minutes > 59 || seconds < -59 || seconds > 59 {
		return ZoneOffset{}, fmt.Errorf("zone offset minutes and seconds must be in [-59, 59]")
	}
	return OffsetFromSeconds(hours*3600 + minutes*60 + seconds)
}

// TotalSeconds returns the offset in seconds east of UTC.
func (o ZoneOffset) TotalSeconds() int { return o.seconds }

// String returns the offset in ISO-8601 format: "Z" for UTC, otherwise
// "+02:00", "-05:30" or "+05:45:30".
func (o ZoneOffset) String() string {
	if o.seconds == 0 {
		return "Z"
	}
	s := o.seconds
	sign := "+"
	if s < 0 {
		sign = "-"
		s = -s
	}
	if s%60 == 0 {
		return fmt.Sprintf("%s%02d:%02d", sign, s/3600, s/60%60)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, s/3600, s/60%60, s%60)
}
