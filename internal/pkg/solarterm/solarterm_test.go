package solarterm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mingpan.dev/backend/internal/pkg/ganzhi"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestIsAfterSpringBoundary(t *testing.T) {
	testCases := []struct {
		t      time.Time
		expect bool
	}{
		{date(1990, time.January, 15), false},
		{date(1990, time.February, 3), false},
		{date(1990, time.February, 4), true},
		{date(1990, time.February, 5), true},
		{date(1990, time.July, 1), true},
		{date(1990, time.December, 31), true},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, IsAfterSpringBoundary(tc.t), "%s", tc.t)
	}
}

func TestMonthBranch(t *testing.T) {
	testCases := []struct {
		t      time.Time
		expect ganzhi.Branch
	}{
		{date(1990, time.February, 4), ganzhi.BranchYin},
		{date(1990, time.February, 3), ganzhi.BranchChou},
		{date(1990, time.March, 6), ganzhi.BranchMao},
		{date(1990, time.March, 5), ganzhi.BranchYin},
		{date(1990, time.June, 10), ganzhi.BranchWu},
		{date(1990, time.December, 7), ganzhi.BranchZi},
		{date(1990, time.December, 6), ganzhi.BranchHai},
		{date(1990, time.January, 5), ganzhi.BranchZi},
		{date(1990, time.January, 6), ganzhi.BranchChou},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, MonthBranch(tc.t), "%s", tc.t)
	}
}

func TestTermName(t *testing.T) {
	assert.Equal(t, "立春", TermName(date(1990, time.February, 10)))
	assert.Equal(t, "小寒", TermName(date(1990, time.January, 20)))
	assert.Equal(t, "大雪", TermName(date(1990, time.December, 25)))
}
