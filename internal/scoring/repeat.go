package scoring

import (
	"fmt"

	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/pkg/tile"
)

// evalBanGao pays identical three-tile groups: 2, 3 or 4 copies.
func evalBanGao(in *Input, f Flags) (Contribution, Flags) {
	var (
		c     Contribution
		order []string
		count = map[string]int{}
	)
	for _, g := range in.Deco.Groups {
		if len(g.Tiles) != 3 {
			continue
		}
		k := g.String()
		if count[k] == 0 {
			order = append(order, k)
		}
		count[k]++
	}

	for _, k := range order {
		switch count[k] {
		case 2:
			c.pay(in.Table, rule.BanGao, "")
		case 3:
			c.pay(in.Table, rule.TwoBanGao, "")
		case 4:
			c.pay(in.Table, rule.ThreeBanGao, "")
		}
	}
	return c, f
}

func removeSuit(ss []tile.Suit, s tile.Suit) []tile.Suit {
	for i, v := range ss {
		if v == s {
			return append(ss[:i:i], ss[i+1:]...)
		}
	}
	return ss
}

// evalStepHigh pays three sequences stepping up one rank at a time (步步高).
// A same-suit ladder consumes its sequences before the mixed-suit check.
func evalStepHigh(in *Input, f Flags) (Contribution, Flags) {
	var (
		c   Contribution
		seq = starts(in.Deco)
	)
	for r := 1; r <= 7; r++ {
		s1, ok1 := seq[r]
		s2, ok2 := seq[r+1]
		s3, ok3 := seq[r+2]
		if !ok1 || !ok2 || !ok3 {
			continue
		}

		if in.Table.Enabled(rule.SameBuBuGao) {
			for _, s := range s1 {
				if hasSuit(s2, s) && hasSuit(s3, s) {
					c.pay(in.Table, rule.SameBuBuGao, fmt.Sprintf("清步步高%s", s))
					s1, s2, s3 = removeSuit(s1, s), removeSuit(s2, s), removeSuit(s3, s)
					seq[r], seq[r+1], seq[r+2] = s1, s2, s3
					break
				}
			}
		}

		if len(s1) == 0 || len(s2) == 0 || len(s3) == 0 {
			continue
		}
		all := map[tile.Suit]bool{}
		common := false
		for _, s := range s1 {
			all[s] = true
			if hasSuit(s2, s) && hasSuit(s3, s) {
				common = true
			}
		}
		for _, s := range append(s2, s3...) {
			all[s] = true
		}
		if !common && len(all) == 3 {
			c.pay(in.Table, rule.MixedBuBuGao, "")
		}
	}
	return c, f
}

// evalSister pays the same sequence repeated in two or three suits.
func evalSister(in *Input, f Flags) (Contribution, Flags) {
	var (
		c   Contribution
		seq = starts(in.Deco)
	)
	for r := 1; r <= 7; r++ {
		n := distinct(seq[r])
		switch {
		case n == 3:
			c.pay(in.Table, rule.ThreeSister, "")
		case n == 2:
			c.pay(in.Table, rule.Sister, "")
		}
	}
	return c, f
}

// evalSisterPong pays numeral triplets of the same rank in two or three suits.
func evalSisterPong(in *Input, f Flags) (Contribution, Flags) {
	var (
		c    Contribution
		pong = map[int][]tile.Suit{}
	)
	for _, g := range in.Deco.Groups {
		if g.IsSet() && g.First().IsNumeral() {
			r := g.First().Rank()
			pong[r] = append(pong[r], g.First().Suit())
		}
	}
	for r := 1; r <= 9; r++ {
		switch distinct(pong[r]) {
		case 3:
			c.pay(in.Table, rule.ThreeSisterPong, "")
		case 2:
			c.pay(in.Table, rule.SisterPong, "")
		}
	}
	return c, f
}

func distinct(ss []tile.Suit) int {
	seen := map[tile.Suit]bool{}
	for _, s := range ss {
		seen[s] = true
	}
	return len(seen)
}
