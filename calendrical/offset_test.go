// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

import "testing"

func TestOffsetFromSeconds(t *testing.T) {
	o, err := OffsetFromSeconds(2 * 3600)
	if err != nil || o.TotalSeconds() != 7200 {
		t.Errorf("got %v, %v", o, err)
	}
	if _, err := OffsetFromSeconds(18*3600 + 1); err == nil {
		t.Error("offset beyond +18:00 accepted")
	}
	if _, err := OffsetFromSeconds(-18*3600 - 1); err == nil {
		t.Error("offset beyond -18:00 accepted")
	}
	if _, err := OffsetFromSeconds(18 * 3600); err != nil {
		t.Errorf("+18:00 rejected: %v", err)
	}
}

func TestOffsetFromHMS(t *testing.T) {
	for _, test := range []struct {
		h, m, s int
		want    int
	}{
		{2, 0, 0, 7200},
		{-5, -30, 0, -19800},
		{5, 45, 30, 20730},
		{0, 0, 0, 0},
	} {
		o, err := OffsetFromHMS(test.h, test.m, test.s)
		if err != nil || o.TotalSeconds() != test.want {
			t.Errorf("OffsetFromHMS(%d, %d, %d) = %v, %v, want %d seconds",
				test.h, test.m, test.s, o, err, test.want)
		}
	}

	// Components must agree in sign.
	for _, test := range [][3]int{{2, -30, 0}, {-2, 30, 0}, {0, 30, -1}, {0, -30, 1}} {
		if _, err := OffsetFromHMS(test[0], test[1], test[2]); err == nil {
			t.Errorf("OffsetFromHMS(%d, %d, %d) accepted mixed signs", test[0], test[1], test[2])
		}
	}
	if _, err := OffsetFromHMS(0, 75, 0); err == nil {
		t.Error("minutes beyond 59 accepted")
	}
}

func TestOffsetString(t *testing.T) {
	for _, test := range []struct {
		seconds int
		want    string
	}{
		{0, "Z"},
		{2 * 3600, "+02:00"},
		{-5*3600 - 30*60, "-05:30"},
		{5*3600 + 45*60 + 30, "+05:45:30"},
	} {
		o, err := OffsetFromSeconds(test.seconds)
		if err != nil {
			t.Fatal(err)
		}
		if got := o.String(); got != test.want {
			t.Errorf("OffsetFromSeconds(%d).String() = %q, want %q", test.seconds, got, test.want)
		}
	}
	if UTC.String() != "Z" {
		t.Errorf("UTC.String() = %q", UTC.String())
	}
}
