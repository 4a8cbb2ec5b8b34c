package scoring

import (
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/pkg/tile"
)

// ranks is the set of numeral ranks present, as a bit mask.
func ranks(ms *tile.Stats) (mask uint16, n int) {
	for _, t := range ms.Tiles() {
		if !t.IsNumeral() {
			continue
		}
		bit := uint16(1) << uint(t.Rank())
		if mask&bit == 0 {
			mask |= bit
			n++
		}
	}
	return
}

func suits(ms *tile.Stats) map[tile.Suit]bool {
	out := map[tile.Suit]bool{}
	for _, t := range ms.Tiles() {
		if t.IsNumeral() {
			out[t.Suit()] = true
		}
	}
	return out
}

// evalNumbers pays standard hands built from only two or three different
// ranks.
func evalNumbers(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	if in.special() {
		return c, f
	}
	_, n := ranks(&in.Body)
	switch {
	case n == 3 && f.HasFan:
		c.pay(in.Table, rule.ThreeNumbersFan, "")
	case n == 3:
		c.pay(in.Table, rule.ThreeNumbersNoFan, "")
	case n == 2 && f.HasFan:
		c.pay(in.Table, rule.TwoNumbersFan, "")
	case n == 2:
		c.pay(in.Table, rule.TwoNumbersNoFan, "")
	}
	return c, f
}

func evalOnlyFan(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	if in.special() || in.Body.Total() == 0 {
		return c, f
	}
	for _, t := range in.Body.Tiles() {
		if !t.IsHonor() {
			return c, f
		}
	}
	c.pay(in.Table, rule.OnlyFan, "")
	return c, f
}

// evalOneNine pays standard hands whose numeral tiles are all terminals.
func evalOneNine(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	if in.special() {
		return c, f
	}
	mask, n := ranks(&in.Body)
	if n == 0 || mask&^(1<<1|1<<9) != 0 {
		return c, f
	}
	if f.HasFan {
		c.pay(in.Table, rule.OneNineWithFan, "全么/腰九 有番子")
	} else {
		c.pay(in.Table, rule.OnlyOneNine, "全么/腰九 無番子")
	}
	return c, f
}

// evalBreakWaist pays hands without terminals and honors.
func evalBreakWaist(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	if in.special() || in.flowerWin() || f.HasFan {
		return c, f
	}
	for _, t := range in.Body.Tiles() {
		if t.IsTerminal() || t.IsHonor() {
			return c, f
		}
	}
	c.pay(in.Table, rule.BreakWaist, "")
	return c, f
}

// evalSameHouse pays standard hands whose numeral tiles share one suit.
func evalSameHouse(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	if in.special() || len(suits(&in.Body)) != 1 {
		return c, f
	}
	if f.HasFan {
		c.pay(in.Table, rule.SameHouseWithFan, "")
	} else {
		c.pay(in.Table, rule.AllSameHouse, "")
	}
	return c, f
}

// evalLessDoor pays a fanless standard hand whose groups span exactly two
// suits. The pair does not count.
func evalLessDoor(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	if in.special() || f.HasFan {
		return c, f
	}
	doors := map[tile.Suit]bool{}
	for _, g := range in.Deco.Groups {
		doors[g.First().Suit()] = true
	}
	if len(doors) == 2 {
		c.pay(in.Table, rule.LessOneDoor, "")
	}
	return c, f
}

// evalFiveDoor pays melds covering all three suits, winds and dragons.
func evalFiveDoor(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	if in.special() {
		return c, f
	}
	doors := map[tile.Suit]bool{}
	for _, g := range in.Deco.Melds() {
		doors[g.First().Suit()] = true
	}
	if len(doors) == 5 {
		c.pay(in.Table, rule.FiveDoor, "")
	}
	return c, f
}
