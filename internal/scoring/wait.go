package scoring

import (
	"github.com/lonng/twmj/internal/hand"
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/pkg/tile"
)

// Wait is the shape of the wait the winning tile completed.
type Wait int

const (
	WaitNone       Wait = iota
	WaitRealSolo        // 獨獨, only one tile could have won
	WaitFakeSolo        // 假獨, a single-tile wait among several readings
	WaitDoublePong      // 對碰, two pairs waiting to become a triplet
)

type completion int

const (
	completeNone completion = iota
	completeEyes
	completePong
	completeShang
)

// complete reports which group the partial tiles are waiting to become and
// how many different tiles would finish it.
func complete(partial []tile.Tile) (completion, int) {
	switch len(partial) {
	case 1:
		return completeEyes, 1
	case 2:
	default:
		return completeNone, 0
	}

	a, b := partial[0], partial[1]
	if a > b {
		a, b = b, a
	}
	switch {
	case a == b:
		return completePong, 1
	case !a.IsNumeral() || a.Suit() != b.Suit():
		return completeNone, 0
	case b == a+2:
		return completeShang, 1
	case b == a+1:
		n := 0
		if a.Rank() > 1 {
			n++
		}
		if b.Rank() < 9 {
			n++
		}
		return completeShang, n
	}
	return completeNone, 0
}

// classifyWait looks at every distinct group holding the winning tile. One
// such group finished by a single tile is a real solo wait. With several
// candidate groups a single-tile finish is only a fake solo.
func classifyWait(d *hand.Decomposition, win tile.Tile) Wait {
	if win == tile.None || d.HuType != hand.Standard {
		return WaitNone
	}

	var (
		seen    = map[string]bool{}
		groups  []hand.Group
		partial [][]tile.Tile
	)
	for _, g := range d.Melds() {
		if !g.Contains(win) || seen[g.String()+g.Kind.String()] {
			continue
		}
		seen[g.String()+g.Kind.String()] = true
		groups = append(groups, g)

		rest := make([]tile.Tile, 0, len(g.Tiles)-1)
		removed := false
		for _, t := range g.Tiles {
			if t == win && !removed {
				removed = true
				continue
			}
			rest = append(rest, t)
		}
		partial = append(partial, rest)
	}

	single := func(p []tile.Tile) bool {
		kind, n := complete(p)
		return (kind == completeShang || kind == completeEyes) && n == 1
	}

	switch {
	case len(groups) == 1 && (groups[0].Kind == hand.Pair || single(partial[0])):
		return WaitRealSolo
	case len(groups) > 1:
		for _, p := range partial {
			if single(p) {
				return WaitFakeSolo
			}
		}
	}
	for _, p := range partial {
		if kind, _ := complete(p); kind == completePong {
			return WaitDoublePong
		}
	}
	return WaitNone
}

func evalWait(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	switch classifyWait(in.Deco, in.Ctx.WinningTile) {
	case WaitRealSolo:
		c.pay(in.Table, rule.RealSolo, "")
	case WaitFakeSolo:
		c.pay(in.Table, rule.FakeSolo, "")
	case WaitDoublePong:
		c.pay(in.Table, rule.DoublePong, "")
	}
	return c, f
}
