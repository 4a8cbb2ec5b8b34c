package scoring

import (
	"github.com/lonng/twmj/internal/hand"
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/pkg/tile"
)

var numeralSuits = [...]tile.Suit{tile.SuitM, tile.SuitT, tile.SuitS}

// starts maps a sequence start rank to the suits holding such a sequence,
// in group order and with repeats.
func starts(d *hand.Decomposition) map[int][]tile.Suit {
	out := map[int][]tile.Suit{}
	for _, g := range d.Groups {
		if g.Kind != hand.Sequence {
			continue
		}
		r := g.First().Rank()
		out[r] = append(out[r], g.First().Suit())
	}
	return out
}

func hasSuit(ss []tile.Suit, s tile.Suit) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// evalDragon pays a 1-9 straight: 清龍 in one suit, 雜龍 across all three.
// The suit of a pure straight is published for lao_shao.
func evalDragon(in *Input, f Flags) (Contribution, Flags) {
	var (
		c      Contribution
		seq    = starts(in.Deco)
		same   = rule.LightSameDragon
		mixed  = rule.LightMixedDragon
		s1, s4 = seq[1], seq[4]
		s7     = seq[7]
	)
	if in.Ctx.Concealed {
		same, mixed = rule.DarkSameDragon, rule.DarkMixedDragon
	}

	for _, s := range numeralSuits {
		if hasSuit(s1, s) && hasSuit(s4, s) && hasSuit(s7, s) {
			f.DragonSuit = s
			c.pay(in.Table, same, "")
			return c, f
		}
	}

	for _, a := range s1 {
		for _, b := range s4 {
			for _, x := range s7 {
				if a != b && b != x && a != x {
					c.pay(in.Table, mixed, "")
					return c, f
				}
			}
		}
	}
	return c, f
}

// evalLaoShao pays 123 with 789 of the same suit, once per suit. The suit
// already paid as a pure straight is skipped.
func evalLaoShao(in *Input, f Flags) (Contribution, Flags) {
	var (
		c   Contribution
		seq = starts(in.Deco)
	)
	for _, s := range numeralSuits {
		if s == f.DragonSuit {
			continue
		}
		if hasSuit(seq[1], s) && hasSuit(seq[7], s) {
			c.pay(in.Table, rule.LaoShao, "")
		}
	}
	return c, f
}
