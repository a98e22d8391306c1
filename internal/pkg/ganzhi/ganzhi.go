// Package ganzhi holds the sexagenary (Heavenly Stem / Earthly Branch) tables
// and the pure relation algebra defined over them. Everything in this package
// is static data or total functions over it; there is no I/O and no state.
package ganzhi

// Element is one of the five phases (五行).
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water

	NumElements = 5
)

var elementNames = [...]string{"木", "火", "土", "金", "水"}

func (e Element) String() string {
	return elementNames[e]
}

func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Polarity is the yin/yang attribute of a stem.
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

func (p Polarity) String() string {
	if p == Yang {
		return "阳"
	}
	return "阴"
}

func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Stem is one of the ten Heavenly Stems (天干), indexed 0 (甲) through 9 (癸).
type Stem int

const (
	StemJia Stem = iota
	StemYi
	StemBing
	StemDing
	StemWu
	StemJi
	StemGeng
	StemXin
	StemRen
	StemGui

	NumStems = 10
)

var stemNames = [NumStems]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// stemElements pairs each consecutive stem couple with one element, in
// production-cycle order.
var stemElements = [NumStems]Element{Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water}

func (s Stem) String() string {
	return stemNames[s]
}

func (s Stem) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s Stem) Element() Element {
	return stemElements[s]
}

// Polarity alternates along the cycle: even indexes are yang, odd are yin.
func (s Stem) Polarity() Polarity {
	if s%2 == 0 {
		return Yang
	}
	return Yin
}

// Branch is one of the twelve Earthly Branches (地支), indexed 0 (子) through 11 (亥).
type Branch int

const (
	BranchZi Branch = iota
	BranchChou
	BranchYin
	BranchMao
	BranchChen
	BranchSi
	BranchWu
	BranchWei
	BranchShen
	BranchYou
	BranchXu
	BranchHai

	NumBranches = 12
)

var branchNames = [NumBranches]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var branchElements = [NumBranches]Element{
	Water, Earth, Wood, Wood, Earth, Fire,
	Fire, Earth, Metal, Metal, Earth, Water,
}

func (b Branch) String() string {
	return branchNames[b]
}

func (b Branch) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b Branch) Element() Element {
	return branchElements[b]
}

// NormStem maps an arbitrary (possibly negative) cycle offset into [0, 10).
func NormStem(i int) Stem {
	return Stem(((i % NumStems) + NumStems) % NumStems)
}

// NormBranch maps an arbitrary (possibly negative) cycle offset into [0, 12).
func NormBranch(i int) Branch {
	return Branch(((i % NumBranches) + NumBranches) % NumBranches)
}

// SexagenaryIndex returns the position of the stem+branch pair in the 60-cycle,
// in [0, 60), or -1 if the stem and branch parities disagree and the pair never
// occurs in the cycle.
func SexagenaryIndex(s Stem, b Branch) int {
	if int(s)%2 != int(b)%2 {
		return -1
	}
	for i := int(s); i < 60; i += NumStems {
		if Branch(i%NumBranches) == b {
			return i
		}
	}
	return -1
}
