package ganzhi

// fiveTigerStarts maps each year stem to the stem of the first solar month
// (寅月), per the traditional 五虎遁 rule. Two year stems share each starting
// point, five years apart in the cycle.
var fiveTigerStarts = [NumStems]Stem{
	StemJia:  StemBing,
	StemYi:   StemWu,
	StemBing: StemGeng,
	StemDing: StemRen,
	StemWu:   StemJia,
	StemJi:   StemBing,
	StemGeng: StemWu,
	StemXin:  StemGeng,
	StemRen:  StemRen,
	StemGui:  StemJia,
}

// MonthStem derives the stem of a solar month from the year stem. monthBranch
// is the branch of the solar month; the count starts at 寅 (the first solar
// month) and advances one stem per month.
func MonthStem(yearStem Stem, monthBranch Branch) Stem {
	offset := int(NormBranch(int(monthBranch) - int(BranchYin)))
	return NormStem(int(fiveTigerStarts[yearStem]) + offset)
}

// ratStarts maps each day stem to the stem of the 子 hour, per the traditional
// 五鼠遁 rule.
var ratStarts = [NumStems]Stem{
	StemJia:  StemJia,
	StemYi:   StemBing,
	StemBing: StemWu,
	StemDing: StemGeng,
	StemWu:   StemRen,
	StemJi:   StemJia,
	StemGeng: StemBing,
	StemXin:  StemWu,
	StemRen:  StemGeng,
	StemGui:  StemRen,
}

// HourStem derives the stem of an hour pillar from the effective day stem and
// the hour branch.
func HourStem(dayStem Stem, hourBranch Branch) Stem {
	return NormStem(int(ratStarts[dayStem]) + int(hourBranch))
}

// HourBranch maps a 0-23 clock hour onto the twelve double-hours. Both hour 23
// and hour 0 belong to the 子 hour.
func HourBranch(hour int) Branch {
	return NormBranch((hour + 1) / 2)
}
