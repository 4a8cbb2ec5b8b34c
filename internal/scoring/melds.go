package scoring

import (
	"github.com/lonng/twmj/internal/hand"
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/pkg/tile"
)

// evalGeneralEyes pays a 2, 5 or 8 numeral pair.
func evalGeneralEyes(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	if p := in.Deco.Pair; p.IsNumeral() {
		switch p.Rank() {
		case 2, 5, 8:
			c.pay(in.Table, rule.GeneralEye, "")
		}
	}
	return c, f
}

// evalGong pays every quad, and every four of a kind that was not declared
// as one (四歸一). Both are dark when the hand is concealed. Special shapes
// hold no melds and pay neither.
func evalGong(in *Input, f Flags) (Contribution, Flags) {
	if in.special() {
		return Contribution{}, f
	}

	var (
		c      Contribution
		t      = in.Table
		dark   = in.Ctx.Concealed
		quads  = map[tile.Tile]bool{}
		gong   = rule.Gong
		turtle = rule.LightFourTurtle
	)
	if dark {
		gong, turtle = rule.DarkGong, rule.DarkFourTurtle
	}

	for _, g := range in.Deco.Groups {
		if g.Kind != hand.Quad {
			continue
		}
		quads[g.First()] = true
		c.pay(t, gong, gong.Label()+g.First().String())
	}

	for x := tile.M1; x <= tile.Bak; x++ {
		if in.Body.Count(x) == 4 && !quads[x] {
			c.pay(t, turtle, turtle.Label()+x.String())
		}
	}
	return c, f
}

// evalDarkPong counts concealed triplets and quads. A triplet finished by a
// discard is exposed at the moment of winning. Exposure of single melds is
// not tracked, so only a concealed hand can hold dark pongs.
func evalDarkPong(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	if !in.Ctx.Concealed {
		return c, f
	}

	n := 0
	for _, g := range in.Deco.Groups {
		if !g.IsSet() {
			continue
		}
		if in.Ctx.SelfDraw || !g.Contains(in.Ctx.WinningTile) {
			n++
		}
	}

	switch n {
	case 2:
		c.pay(in.Table, rule.TwoDarkPong, "")
	case 3:
		c.pay(in.Table, rule.ThreeDarkPong, "")
	case 4:
		c.pay(in.Table, rule.FourDarkPong, "")
	case 5:
		// paid as 坎坎胡 already
		if f.Shape != ShapeKangKang {
			c.pay(in.Table, rule.FiveDarkPong, "")
		}
	}
	return c, f
}
