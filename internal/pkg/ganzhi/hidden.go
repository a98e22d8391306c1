package ganzhi

// HiddenTier is the weight class of a stem stored inside a branch (藏干).
type HiddenTier int

const (
	TierMain HiddenTier = iota
	TierMiddle
	TierResidual
)

var tierNames = [...]string{"本气", "中气", "余气"}

func (t HiddenTier) String() string {
	return tierNames[t]
}

func (t HiddenTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Weight is the positional multiplier applied to a hidden stem's contribution
// in elemental-strength scoring.
func (t HiddenTier) Weight() float64 {
	switch t {
	case TierMain:
		return 1.0
	case TierMiddle:
		return 0.6
	default:
		return 0.3
	}
}

// HiddenStem is one stored stem with its tier.
type HiddenStem struct {
	Stem Stem       `json:"stem"`
	Tier HiddenTier `json:"tier"`
}

// hiddenStems lists, per branch, the 1-3 stored stems ordered main, middle,
// residual, per the traditional 藏干 table.
var hiddenStems = [NumBranches][]Stem{
	BranchZi:   {StemGui},
	BranchChou: {StemJi, StemGui, StemXin},
	BranchYin:  {StemJia, StemBing, StemWu},
	BranchMao:  {StemYi},
	BranchChen: {StemWu, StemYi, StemGui},
	BranchSi:   {StemBing, StemWu, StemGeng},
	BranchWu:   {StemDing, StemJi},
	BranchWei:  {StemJi, StemDing, StemYi},
	BranchShen: {StemGeng, StemRen, StemWu},
	BranchYou:  {StemXin},
	BranchXu:   {StemWu, StemXin, StemDing},
	BranchHai:  {StemRen, StemJia},
}

// HiddenStems returns a fresh copy of the branch's stored stems with tiers
// assigned by position.
func (b Branch) HiddenStems() []HiddenStem {
	src := hiddenStems[b]
	out := make([]HiddenStem, len(src))
	for i, s := range src {
		out[i] = HiddenStem{Stem: s, Tier: HiddenTier(i)}
	}
	return out
}
