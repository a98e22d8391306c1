package ganzhi

// SeasonState is the month-order strength (月令旺衰) of an element in a given
// solar-month branch.
type SeasonState int

const (
	StateProsperous SeasonState = iota // 旺
	StateSupported                     // 相
	StateResting                       // 休
	StateTrapped                       // 囚
	StateDead                          // 死
	StateVoid                          // 绝
	StateStored                        // 墓
	StateNascent                       // 生
	StateResidual                      // 余气
)

var seasonStateNames = [...]string{"旺", "相", "休", "囚", "死", "绝", "墓", "生", "余气"}

func (s SeasonState) String() string {
	return seasonStateNames[s]
}

func (s SeasonState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// seasonStateWeights is the fixed label-to-score map consumed by the strength
// scorer.
var seasonStateWeights = [...]int{
	StateProsperous: 4,
	StateSupported:  2,
	StateResting:    0,
	StateTrapped:    -2,
	StateDead:       -3,
	StateVoid:       -4,
	StateStored:     -1,
	StateNascent:    1,
	StateResidual:   1,
}

func (s SeasonState) Weight() int {
	return seasonStateWeights[s]
}

// seasonTable is the full 5x12 month-order table. The base pattern follows the
// classical 旺相休囚死 season rule; the storage (墓), residual-qi (余气),
// growth (长生) and extinction (绝) branches of each element override it, per
// the almanac convention this system reproduces.
var seasonTable = [NumElements][NumBranches]SeasonState{
	Wood: {
		BranchZi: StateSupported, BranchChou: StateTrapped, BranchYin: StateProsperous,
		BranchMao: StateProsperous, BranchChen: StateResidual, BranchSi: StateResting,
		BranchWu: StateResting, BranchWei: StateStored, BranchShen: StateVoid,
		BranchYou: StateDead, BranchXu: StateTrapped, BranchHai: StateNascent,
	},
	Fire: {
		BranchZi: StateDead, BranchChou: StateResting, BranchYin: StateNascent,
		BranchMao: StateSupported, BranchChen: StateResting, BranchSi: StateProsperous,
		BranchWu: StateProsperous, BranchWei: StateResidual, BranchShen: StateTrapped,
		BranchYou: StateTrapped, BranchXu: StateStored, BranchHai: StateVoid,
	},
	Earth: {
		BranchZi: StateTrapped, BranchChou: StateProsperous, BranchYin: StateDead,
		BranchMao: StateDead, BranchChen: StateProsperous, BranchSi: StateSupported,
		BranchWu: StateSupported, BranchWei: StateProsperous, BranchShen: StateResting,
		BranchYou: StateResting, BranchXu: StateProsperous, BranchHai: StateTrapped,
	},
	Metal: {
		BranchZi: StateResting, BranchChou: StateStored, BranchYin: StateVoid,
		BranchMao: StateTrapped, BranchChen: StateSupported, BranchSi: StateNascent,
		BranchWu: StateDead, BranchWei: StateSupported, BranchShen: StateProsperous,
		BranchYou: StateProsperous, BranchXu: StateResidual, BranchHai: StateResting,
	},
	Water: {
		BranchZi: StateProsperous, BranchChou: StateResidual, BranchYin: StateResting,
		BranchMao: StateResting, BranchChen: StateStored, BranchSi: StateVoid,
		BranchWu: StateTrapped, BranchWei: StateDead, BranchShen: StateNascent,
		BranchYou: StateSupported, BranchXu: StateDead, BranchHai: StateProsperous,
	},
}

// SeasonStateOf looks up the month-order strength of an element in the given
// solar-month branch.
func SeasonStateOf(e Element, monthBranch Branch) SeasonState {
	return seasonTable[e][monthBranch]
}
