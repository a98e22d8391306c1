// Package solarterm resolves dates against the twelve solar-month boundaries
// (节气). The boundary days are the fixed per-month approximations used by
// traditional almanac sources, NOT a true solar-longitude computation;
// borderline charts depend on reproducing exactly these days.
package solarterm

import (
	"time"

	"mingpan.dev/backend/internal/pkg/ganzhi"
)

// boundaryDays holds the approximate day-of-month on which the section term
// (节) of each Gregorian month falls, indexed by time.Month - 1: 小寒, 立春,
// 惊蛰, 清明, 立夏, 芒种, 小暑, 立秋, 白露, 寒露, 立冬, 大雪.
var boundaryDays = [12]int{6, 4, 6, 5, 6, 6, 7, 8, 8, 8, 7, 7}

var termNames = [12]string{
	"小寒", "立春", "惊蛰", "清明", "立夏", "芒种",
	"小暑", "立秋", "白露", "寒露", "立冬", "大雪",
}

// monthBranches maps each Gregorian month's section term onto the branch of
// the solar month it opens: 立春 (Feb) opens the 寅 month, and so on around
// the cycle; 小寒 (Jan) opens the 丑 month of the previous cycle year.
var monthBranches = [12]ganzhi.Branch{
	ganzhi.BranchChou, ganzhi.BranchYin, ganzhi.BranchMao, ganzhi.BranchChen,
	ganzhi.BranchSi, ganzhi.BranchWu, ganzhi.BranchWei, ganzhi.BranchShen,
	ganzhi.BranchYou, ganzhi.BranchXu, ganzhi.BranchHai, ganzhi.BranchZi,
}

// TermName returns the section term name that opens the solar month the given
// instant falls in.
func TermName(t time.Time) string {
	m := int(t.Month()) - 1
	if t.Day() < boundaryDays[m] {
		m = (m + 11) % 12
	}
	return termNames[m]
}

// MonthBranch maps the instant to the branch of the solar month it falls in.
// A day before the month's section term still belongs to the previous solar
// month.
func MonthBranch(t time.Time) ganzhi.Branch {
	m := int(t.Month()) - 1
	if t.Day() < boundaryDays[m] {
		m = (m + 11) % 12
	}
	return monthBranches[m]
}

// IsAfterSpringBoundary reports whether the instant is on or after that
// calendar year's Start of Spring (立春). Dates before it belong to the
// previous cycle year.
func IsAfterSpringBoundary(t time.Time) bool {
	m := t.Month()
	if m > time.February {
		return true
	}
	if m < time.February {
		return false
	}
	return t.Day() >= boundaryDays[time.February-1]
}
