// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendrical

import "strings"

// nearestName returns the element of candidates closest to name under the
// Levenshtein metric, ignoring case, or "" if every candidate needs more
// than half of name's characters changed. It backs the "did you mean"
// suggestion in LookupRule errors.
func nearestName(name string, candidates []string) string {
	name = strings.ToLower(name)

	var best string
	bestDist := (len(name) + 1) / 2 // allow up to 50% typos
	for _, c := range candidates {
		if d := editDistance(name, strings.ToLower(c), bestDist); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// editDistance returns the Levenshtein edit distance between x and y,
// computed over a single row of the distance matrix. If the distance
// exceeds max the function may return early with an approximation > max.
func editDistance(x, y string, max int) int {
	// Let x be the shorter string, and strip any common prefix: neither
	// changes the distance.
	if len(x) > len(y) {
		x, y = y, x
	}
	for i := 0; i < len(x); i++ {
		if x[i] != y[i] {
			x, y = x[i:], y[i:]
			break
		}
	}
	if x == "" {
		return len(y)
	}

	row := make([]int, len(y)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(x); i++ {
		prev := row[0] // the matrix cell diagonally up-left
		row[0] = i
		best := i
		for j := 1; j <= len(y); j++ {
			d := prev // substitution
			if x[i-1] != y[j-1] {
				d++
			}
			if del := row[j-1] + 1; del < d {
				d = del
			}
			if ins := row[j] + 1; ins < d {
				d = ins
			}
			prev, row[j] = row[j], d
			if d < best {
				best = d
			}
		}
		if best > max {
			return best
		}
	}
	return row[len(y)]
}
