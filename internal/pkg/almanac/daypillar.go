// Package almanac provides the perpetual day-pillar lookup: the continuous
// sexagenary day count every published almanac agrees on. Callers must treat
// this as the single source of truth for day pillars and never re-derive them.
package almanac

import (
	"github.com/pkg/errors"

	"mingpan.dev/backend/internal/pkg/ganzhi"
)

// The continuous day count is anchored on the Julian Day Number: JDN 2451545
// (2000-01-01) is a 戊午 day, sexagenary index 54, which fixes the offset at
// 49. Verified against 1949-10-01 (甲子) among other reference dates; see the
// package tests and the verify-almanac CLI command.
const jdnOffset = 49

// Supported range. Day pillars outside it have not been cross-checked against
// reference almanacs, and proleptic-Gregorian arithmetic before the calendar
// reform would silently disagree with historical dates anyway.
const (
	MinYear = 1600
	MaxYear = 2200
)

var ErrOutOfRange = errors.Errorf("almanac: date outside supported range [%d, %d]", MinYear, MaxYear)

// jdn computes the Julian Day Number of the Gregorian calendar day using
// integer arithmetic (Fliegel-Van Flandern).
func jdn(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// DayPillar returns the stem and branch of the Gregorian calendar day.
func DayPillar(year, month, day int) (ganzhi.Stem, ganzhi.Branch, error) {
	if year < MinYear || year > MaxYear {
		return 0, 0, ErrOutOfRange
	}
	idx := (jdn(year, month, day) + jdnOffset) % 60
	return ganzhi.Stem(idx % ganzhi.NumStems), ganzhi.Branch(idx % ganzhi.NumBranches), nil
}
