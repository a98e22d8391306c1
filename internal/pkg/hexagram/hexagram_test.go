package hexagram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNames(t *testing.T) {
	assert.Equal(t, "乾为天", New(TrigramQian, TrigramQian).Name())
	assert.Equal(t, "坤为地", New(TrigramKun, TrigramKun).Name())
	assert.Equal(t, "地天泰", New(TrigramKun, TrigramQian).Name())
	assert.Equal(t, "天地否", New(TrigramQian, TrigramKun).Name())
	assert.Equal(t, "水火既济", New(TrigramKan, TrigramLi).Name())
	assert.Equal(t, "山水蒙", New(TrigramGen, TrigramKan).Name())
}

func TestAllNamesDistinct(t *testing.T) {
	seen := map[string]bool{}
	for h := Hexagram(0); h < 64; h++ {
		name := h.Name()
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 64)
}

func TestFlipIsSingleLine(t *testing.T) {
	h := New(TrigramQian, TrigramKun)
	for line := 0; line < 6; line++ {
		flipped := h.Flip(line)
		assert.NotEqual(t, h, flipped)
		// flipping the same line restores the original
		assert.Equal(t, h, flipped.Flip(line))

		diff := 0
		for i, l := range h.Lines() {
			if l != flipped.Lines()[i] {
				diff++
			}
		}
		assert.Equal(t, 1, diff)
	}
}

func TestCastDeterministic(t *testing.T) {
	at := time.Date(2024, time.May, 17, 9, 30, 0, 0, time.UTC)
	c1 := CastAt(at)
	c2 := CastAt(at)
	assert.Equal(t, c1, c2)

	assert.GreaterOrEqual(t, c1.ChangingLine, 0)
	assert.Less(t, c1.ChangingLine, 6)
	assert.Equal(t, c1.Changed, c1.Primary.Flip(c1.ChangingLine))
}

func TestCastKnownValue(t *testing.T) {
	// 2024+5+17 = 2046; 2046 mod 8 = 6 -> 坎 (sixth in the early-heaven
	// order); +9h = 2055; 2055 mod 8 = 7 -> 艮; line (2055-1) mod 6 = 2.
	c := CastAt(time.Date(2024, time.May, 17, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, TrigramKan, c.Primary.Upper())
	assert.Equal(t, TrigramGen, c.Primary.Lower())
	assert.Equal(t, "水山蹇", c.Primary.Name())
	assert.Equal(t, 2, c.ChangingLine)
}
