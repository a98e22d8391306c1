package ganzhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStemAttributes(t *testing.T) {
	assert.Equal(t, Wood, StemJia.Element())
	assert.Equal(t, Yang, StemJia.Polarity())
	assert.Equal(t, Wood, StemYi.Element())
	assert.Equal(t, Yin, StemYi.Polarity())
	assert.Equal(t, Water, StemGui.Element())
	assert.Equal(t, Yin, StemGui.Polarity())
}

func TestCyclesArePermutations(t *testing.T) {
	seenProduces := map[Element]bool{}
	seenDestroys := map[Element]bool{}
	for e := Element(0); e < NumElements; e++ {
		seenProduces[e.Produces()] = true
		seenDestroys[e.Destroys()] = true

		assert.Equal(t, e, e.Produces().ProducedBy())
		assert.Equal(t, e, e.Destroys().DestroyedBy())
	}
	assert.Len(t, seenProduces, int(NumElements))
	assert.Len(t, seenDestroys, int(NumElements))
}

func TestRelate(t *testing.T) {
	assert.Equal(t, RelationSame, Relate(Wood, Wood))
	assert.Equal(t, RelationProducing, Relate(Wood, Water))
	assert.Equal(t, RelationProduced, Relate(Wood, Fire))
	assert.Equal(t, RelationDestroying, Relate(Wood, Metal))
	assert.Equal(t, RelationDestroyed, Relate(Wood, Earth))
}

func TestSexagenaryIndex(t *testing.T) {
	assert.Equal(t, 0, SexagenaryIndex(StemJia, BranchZi))
	assert.Equal(t, 59, SexagenaryIndex(StemGui, BranchHai))
	assert.Equal(t, 54, SexagenaryIndex(StemWu, BranchWu)) // 戊午

	// parity mismatch never occurs in the cycle
	assert.Equal(t, -1, SexagenaryIndex(StemJia, BranchChou))
}

func TestNormNegative(t *testing.T) {
	assert.Equal(t, StemGui, NormStem(-1))
	assert.Equal(t, BranchHai, NormBranch(-1))
	assert.Equal(t, StemJia, NormStem(-10))
	assert.Equal(t, BranchZi, NormBranch(-24))
}

func TestTenGodOfIdentity(t *testing.T) {
	for s := Stem(0); s < NumStems; s++ {
		assert.Equal(t, Parallel, TenGodOf(s, s), "stem %s against itself", s)
	}
}

func TestTenGodOfAgainstJia(t *testing.T) {
	testCases := []struct {
		target Stem
		expect TenGod
	}{
		{StemYi, RobWealth},
		{StemBing, EatingGod},
		{StemDing, HurtingOfficer},
		{StemWu, IndirectWealth},
		{StemJi, DirectWealth},
		{StemGeng, SevenKillings},
		{StemXin, DirectOfficer},
		{StemRen, IndirectSeal},
		{StemGui, DirectSeal},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, TenGodOf(StemJia, tc.target), "甲 vs %s", tc.target)
	}
}

func TestTenGodOfAsymmetry(t *testing.T) {
	// 甲 produces 丙 (wood feeds fire): the two directions must classify
	// differently.
	assert.NotEqual(t, TenGodOf(StemJia, StemBing), TenGodOf(StemBing, StemJia))
	assert.Equal(t, EatingGod, TenGodOf(StemJia, StemBing))
	assert.Equal(t, IndirectSeal, TenGodOf(StemBing, StemJia))
}

func TestHiddenStems(t *testing.T) {
	yin := BranchYin.HiddenStems()
	require.Len(t, yin, 3)
	assert.Equal(t, HiddenStem{StemJia, TierMain}, yin[0])
	assert.Equal(t, HiddenStem{StemBing, TierMiddle}, yin[1])
	assert.Equal(t, HiddenStem{StemWu, TierResidual}, yin[2])

	zi := BranchZi.HiddenStems()
	require.Len(t, zi, 1)
	assert.Equal(t, StemGui, zi[0].Stem)

	for b := Branch(0); b < NumBranches; b++ {
		n := len(b.HiddenStems())
		assert.GreaterOrEqual(t, n, 1, "branch %s", b)
		assert.LessOrEqual(t, n, 3, "branch %s", b)
	}
}

func TestHiddenTierWeights(t *testing.T) {
	assert.InDelta(t, 1.0, TierMain.Weight(), 1e-9)
	assert.InDelta(t, 0.6, TierMiddle.Weight(), 1e-9)
	assert.InDelta(t, 0.3, TierResidual.Weight(), 1e-9)
}

func TestNayin(t *testing.T) {
	testCases := []struct {
		stem   Stem
		branch Branch
		expect string
	}{
		{StemJia, BranchZi, "海中金"},
		{StemYi, BranchChou, "海中金"},
		{StemGeng, BranchWu, "路旁土"},
		{StemWu, BranchWu, "天上火"},
		{StemRen, BranchXu, "大海水"},
		{StemGui, BranchHai, "大海水"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, Nayin(tc.stem, tc.branch), "%s%s", tc.stem, tc.branch)
	}

	assert.Empty(t, Nayin(StemJia, BranchChou))
}

func TestSeasonTable(t *testing.T) {
	assert.Equal(t, StateProsperous, SeasonStateOf(Wood, BranchYin))
	assert.Equal(t, 4, SeasonStateOf(Wood, BranchYin).Weight())

	assert.Equal(t, StateVoid, SeasonStateOf(Metal, BranchYin))
	assert.Equal(t, -4, SeasonStateOf(Metal, BranchYin).Weight())

	assert.Equal(t, StateResidual, SeasonStateOf(Water, BranchChou))
	assert.Equal(t, StateStored, SeasonStateOf(Fire, BranchXu))
	assert.Equal(t, StateNascent, SeasonStateOf(Wood, BranchHai))
	assert.Equal(t, StateDead, SeasonStateOf(Fire, BranchZi))
}

func TestMonthStemFiveTiger(t *testing.T) {
	// 甲/己 years start the 寅 month at 丙
	assert.Equal(t, StemBing, MonthStem(StemJia, BranchYin))
	assert.Equal(t, StemBing, MonthStem(StemJi, BranchYin))
	// advancing one solar month advances one stem
	assert.Equal(t, StemDing, MonthStem(StemJia, BranchMao))
	// 丑 is the twelfth solar month counted from 寅
	assert.Equal(t, StemDing, MonthStem(StemJia, BranchChou))
}

func TestHourStemRatStart(t *testing.T) {
	assert.Equal(t, StemJia, HourStem(StemJia, BranchZi))
	assert.Equal(t, StemRen, HourStem(StemGui, BranchZi))
	assert.Equal(t, StemYi, HourStem(StemJia, BranchChou))
}

func TestHourBranch(t *testing.T) {
	assert.Equal(t, BranchZi, HourBranch(23))
	assert.Equal(t, BranchZi, HourBranch(0))
	assert.Equal(t, BranchChou, HourBranch(1))
	assert.Equal(t, BranchWu, HourBranch(12))
	assert.Equal(t, BranchHai, HourBranch(22))
}
