// Package hexagram implements the time-seeded hexagram cast used by the
// divination endpoint. A hexagram is six lines encoded as six bits, bottom
// line in bit 0, yang lines set; the changing hexagram is a single bit flip.
package hexagram

import "time"

// Trigram is a three-line figure encoded in the low three bits.
type Trigram int

const (
	TrigramKun  Trigram = 0 // 坤 ☷
	TrigramZhen Trigram = 1 // 震 ☳
	TrigramKan  Trigram = 2 // 坎 ☵
	TrigramDui  Trigram = 3 // 兑 ☱
	TrigramGen  Trigram = 4 // 艮 ☶
	TrigramLi   Trigram = 5 // 离 ☲
	TrigramXun  Trigram = 6 // 巽 ☴
	TrigramQian Trigram = 7 // 乾 ☰
)

var trigramNames = [8]string{"坤", "震", "坎", "兑", "艮", "离", "巽", "乾"}

func (t Trigram) String() string {
	return trigramNames[t]
}

func (t Trigram) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// fuxiOrder is the early-heaven trigram sequence 乾一兑二离三震四巽五坎六艮七坤八
// used to map a count onto a trigram.
var fuxiOrder = [8]Trigram{
	TrigramQian, TrigramDui, TrigramLi, TrigramZhen,
	TrigramXun, TrigramKan, TrigramGen, TrigramKun,
}

func trigramFromCount(n int) Trigram {
	return fuxiOrder[((n-1)%8+8)%8]
}

// Hexagram is a six-line figure: lower trigram in bits 0-2, upper in bits 3-5.
type Hexagram int

func New(upper, lower Trigram) Hexagram {
	return Hexagram(int(upper)<<3 | int(lower))
}

func (h Hexagram) Upper() Trigram {
	return Trigram(h >> 3 & 0b111)
}

func (h Hexagram) Lower() Trigram {
	return Trigram(h & 0b111)
}

// Name returns the King Wen name of the hexagram.
func (h Hexagram) Name() string {
	return hexagramNames[h.Upper()][h.Lower()]
}

// Lines returns the six lines bottom-to-top; true is yang.
func (h Hexagram) Lines() [6]bool {
	var lines [6]bool
	for i := 0; i < 6; i++ {
		lines[i] = h>>i&1 == 1
	}
	return lines
}

// Flip returns the hexagram with the given line (0 = bottom) inverted.
func (h Hexagram) Flip(line int) Hexagram {
	return h ^ Hexagram(1<<line)
}

// hexagramNames is the 8x8 King Wen name table keyed by [upper][lower]
// trigram.
var hexagramNames = [8][8]string{
	TrigramQian: {
		TrigramQian: "乾为天", TrigramDui: "天泽履", TrigramLi: "天火同人", TrigramZhen: "天雷无妄",
		TrigramXun: "天风姤", TrigramKan: "天水讼", TrigramGen: "天山遁", TrigramKun: "天地否",
	},
	TrigramDui: {
		TrigramQian: "泽天夬", TrigramDui: "兑为泽", TrigramLi: "泽火革", TrigramZhen: "泽雷随",
		TrigramXun: "泽风大过", TrigramKan: "泽水困", TrigramGen: "泽山咸", TrigramKun: "泽地萃",
	},
	TrigramLi: {
		TrigramQian: "火天大有", TrigramDui: "火泽睽", TrigramLi: "离为火", TrigramZhen: "火雷噬嗑",
		TrigramXun: "火风鼎", TrigramKan: "火水未济", TrigramGen: "火山旅", TrigramKun: "火地晋",
	},
	TrigramZhen: {
		TrigramQian: "雷天大壮", TrigramDui: "雷泽归妹", TrigramLi: "雷火丰", TrigramZhen: "震为雷",
		TrigramXun: "雷风恒", TrigramKan: "雷水解", TrigramGen: "雷山小过", TrigramKun: "雷地豫",
	},
	TrigramXun: {
		TrigramQian: "风天小畜", TrigramDui: "风泽中孚", TrigramLi: "风火家人", TrigramZhen: "风雷益",
		TrigramXun: "巽为风", TrigramKan: "风水涣", TrigramGen: "风山渐", TrigramKun: "风地观",
	},
	TrigramKan: {
		TrigramQian: "水天需", TrigramDui: "水泽节", TrigramLi: "水火既济", TrigramZhen: "水雷屯",
		TrigramXun: "水风井", TrigramKan: "坎为水", TrigramGen: "水山蹇", TrigramKun: "水地比",
	},
	TrigramGen: {
		TrigramQian: "山天大畜", TrigramDui: "山泽损", TrigramLi: "山火贲", TrigramZhen: "山雷颐",
		TrigramXun: "山风蛊", TrigramKan: "山水蒙", TrigramGen: "艮为山", TrigramKun: "山地剥",
	},
	TrigramKun: {
		TrigramQian: "地天泰", TrigramDui: "地泽临", TrigramLi: "地火明夷", TrigramZhen: "地雷复",
		TrigramXun: "地风升", TrigramKan: "地水师", TrigramGen: "地山谦", TrigramKun: "坤为地",
	},
}

// Cast derives a hexagram and its changing line from an instant, after the
// hour-method convention: the date sum selects the upper trigram, date sum
// plus hour the lower, and the same total picks the moving line.
type Cast struct {
	Primary      Hexagram
	Changed      Hexagram
	ChangingLine int // 0 = bottom line
}

func CastAt(t time.Time) Cast {
	dateSum := t.Year() + int(t.Month()) + t.Day()
	hourSum := dateSum + t.Hour()

	primary := New(trigramFromCount(dateSum), trigramFromCount(hourSum))
	line := ((hourSum-1)%6 + 6) % 6

	return Cast{
		Primary:      primary,
		Changed:      primary.Flip(line),
		ChangingLine: line,
	}
}
