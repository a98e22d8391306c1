package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingpan.dev/backend/internal/pkg/ganzhi"
)

// Reference dates cross-checked against published perpetual calendars.
func TestDayPillarReferenceDates(t *testing.T) {
	testCases := []struct {
		year, month, day int
		stem             ganzhi.Stem
		branch           ganzhi.Branch
	}{
		{1949, 10, 1, ganzhi.StemJia, ganzhi.BranchZi},  // 甲子
		{2000, 1, 1, ganzhi.StemWu, ganzhi.BranchWu},    // 戊午
		{2000, 1, 2, ganzhi.StemJi, ganzhi.BranchWei},   // 己未
		{1999, 12, 31, ganzhi.StemDing, ganzhi.BranchSi}, // 丁巳
	}
	for _, tc := range testCases {
		stem, branch, err := DayPillar(tc.year, tc.month, tc.day)
		require.NoError(t, err)
		assert.Equal(t, tc.stem, stem, "%d-%d-%d", tc.year, tc.month, tc.day)
		assert.Equal(t, tc.branch, branch, "%d-%d-%d", tc.year, tc.month, tc.day)
	}
}

func TestDayPillarSixtyCycle(t *testing.T) {
	// sixty days apart, same pillar
	s1, b1, err := DayPillar(1984, 3, 1)
	require.NoError(t, err)
	s2, b2, err := DayPillar(1984, 4, 30)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.Equal(t, b1, b2)
}

func TestDayPillarOutOfRange(t *testing.T) {
	_, _, err := DayPillar(1599, 12, 31)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, _, err = DayPillar(2201, 1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
