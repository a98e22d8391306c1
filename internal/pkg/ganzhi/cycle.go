package ganzhi

// The two canonical five-phase cycles. Every directional relation in this
// package (ten gods, strength scoring, use-god sets) is derived from these two
// tables; they must never be duplicated as per-case literals elsewhere.
var (
	// production cycle (相生): 木→火→土→金→水→木
	produces = [NumElements]Element{Wood: Fire, Fire: Earth, Earth: Metal, Metal: Water, Water: Wood}

	// destruction cycle (相克): 木→土→水→火→金→木
	destroys = [NumElements]Element{Wood: Earth, Earth: Water, Water: Fire, Fire: Metal, Metal: Wood}
)

// Produces returns the element e generates (生).
func (e Element) Produces() Element {
	return produces[e]
}

// Destroys returns the element e overcomes (克).
func (e Element) Destroys() Element {
	return destroys[e]
}

// ProducedBy returns the element that generates e.
func (e Element) ProducedBy() Element {
	for p, c := range produces {
		if c == e {
			return Element(p)
		}
	}
	panic("unreachable: production cycle is a permutation")
}

// DestroyedBy returns the element that overcomes e.
func (e Element) DestroyedBy() Element {
	for p, c := range destroys {
		if c == e {
			return Element(p)
		}
	}
	panic("unreachable: destruction cycle is a permutation")
}

// Relation describes how some element stands relative to a reference element.
type Relation int

const (
	RelationSame      Relation = iota // identical element
	RelationProducing                 // the other element produces the reference
	RelationProduced                  // the reference produces the other element
	RelationDestroying                // the other element destroys the reference
	RelationDestroyed                 // the reference destroys the other element
)

var relationNames = [...]string{"同", "生我", "我生", "克我", "我克"}

func (r Relation) String() string {
	return relationNames[r]
}

func (r Relation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Relate classifies other against reference. The five phases form two
// permutation cycles, so exactly one case always holds.
func Relate(reference, other Element) Relation {
	switch {
	case reference == other:
		return RelationSame
	case other.Produces() == reference:
		return RelationProducing
	case reference.Produces() == other:
		return RelationProduced
	case other.Destroys() == reference:
		return RelationDestroying
	default:
		return RelationDestroyed
	}
}
