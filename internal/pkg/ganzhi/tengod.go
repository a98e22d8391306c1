package ganzhi

// TenGod is the classification of a stem's relation to the day master,
// combining the five-phase relation with polarity match.
type TenGod int

const (
	Parallel TenGod = iota // 比肩
	RobWealth              // 劫财
	EatingGod              // 食神
	HurtingOfficer         // 伤官
	IndirectWealth         // 偏财
	DirectWealth           // 正财
	SevenKillings          // 七杀
	DirectOfficer          // 正官
	IndirectSeal           // 偏印
	DirectSeal             // 正印

	// DayMaster is the sentinel label carried by the day pillar itself. It is
	// never produced by TenGodOf.
	DayMaster
)

var tenGodNames = [...]string{
	"比肩", "劫财", "食神", "伤官", "偏财", "正财", "七杀", "正官", "偏印", "正印",
	"日主",
}

func (g TenGod) String() string {
	return tenGodNames[g]
}

func (g TenGod) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// TenGodOf classifies target relative to the day master stem. Each of the five
// element relations offers two labels; polarity match picks between them. A
// stem compared against itself always yields Parallel (same element, same
// polarity).
func TenGodOf(dayMaster, target Stem) TenGod {
	samePolarity := dayMaster.Polarity() == target.Polarity()
	switch Relate(dayMaster.Element(), target.Element()) {
	case RelationSame:
		if samePolarity {
			return Parallel
		}
		return RobWealth
	case RelationProduced: // day master produces target: output
		if samePolarity {
			return EatingGod
		}
		return HurtingOfficer
	case RelationDestroyed: // day master destroys target: wealth
		if samePolarity {
			return IndirectWealth
		}
		return DirectWealth
	case RelationDestroying: // target destroys day master: officer
		if samePolarity {
			return SevenKillings
		}
		return DirectOfficer
	default: // RelationProducing; target produces day master: seal
		if samePolarity {
			return IndirectSeal
		}
		return DirectSeal
	}
}
