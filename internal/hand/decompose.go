package hand

import (
	"github.com/lonng/twmj/pkg/tile"
)

const (
	// Groups is the number of melds beside the pair in a Taiwanese hand.
	Groups = 5
	// Size is the tile count of a completed hand without quads and flowers.
	Size = Groups*3 + 2
)

// Result is the outcome of decomposing one hand.
type Result struct {
	Valid      bool            `json:"valid"`
	Candidates []Decomposition `json:"candidates"`
}

// Decompose enumerates every legal reading of the hand.
//
// Candidates come in a fixed order: flower win, thirteen waist, sixteen
// scattered, ligu, then standard partitions by ascending pair tile and
// sequence-before-triplet-before-quad extraction. Callers break ties on that
// order, so it must stay stable. A hand holding more copies of a tile than
// a set contains has no reading.
func Decompose(hand tile.Stats) Result {
	if hand.Check() != nil {
		return Result{}
	}

	var (
		flowers = hand.Flowers()
		body    = hand.WithoutFlowers()
		c       = &collector{seen: map[string]bool{}}
	)

	if n := len(flowers); n == 7 || n == 8 {
		c.push(Decomposition{HuType: FlowerWin, Flowers: flowers})
	}

	total := body.Total()
	if total == Size {
		if isThirteenWaist(body) {
			c.push(Decomposition{HuType: ThirteenWaist})
		}
		if isSixteenScattered(body) {
			c.push(Decomposition{HuType: SixteenScattered})
		}
		if isLigu(body) {
			c.push(Decomposition{HuType: Ligu})
		}
	}

	// every quad consumes one replacement tile on top of Size
	if total >= Size && total <= Size+Groups {
		s := &searcher{collector: c}
		s.run(body)
	}

	return Result{Valid: len(c.out) > 0, Candidates: c.out}
}

type collector struct {
	seen map[string]bool
	out  []Decomposition
}

func (c *collector) push(d Decomposition) {
	k := d.key()
	if c.seen[k] {
		return
	}
	c.seen[k] = true
	c.out = append(c.out, d)
}

type searcher struct {
	*collector
	pair tile.Tile
}

func (s *searcher) run(body tile.Stats) {
	for t := tile.M1; t <= tile.Bak; t++ {
		if body[t] < 2 {
			continue
		}
		work := body
		work[t] -= 2
		s.pair = t
		s.partition(&work, make([]Group, 0, Groups))
	}
}

func lowest(ms *tile.Stats) tile.Tile {
	for t := tile.M1; t <= tile.Bak; t++ {
		if ms[t] > 0 {
			return t
		}
	}
	return tile.None
}

// partition always extracts a group holding the lowest remaining tile, so
// each grouping is reached through exactly one path per pair.
func (s *searcher) partition(ms *tile.Stats, groups []Group) {
	t := lowest(ms)
	if t == tile.None {
		if len(groups) == Groups {
			s.emit(groups)
		}
		return
	}
	if len(groups) == Groups {
		return
	}

	if t.IsNumeral() && t.Rank() <= 7 && ms[t+1] > 0 && ms[t+2] > 0 {
		ms[t]--
		ms[t+1]--
		ms[t+2]--
		s.partition(ms, append(groups, newSequence(t)))
		ms[t]++
		ms[t+1]++
		ms[t+2]++
	}

	if ms[t] >= 3 {
		ms[t] -= 3
		s.partition(ms, append(groups, newSet(Triplet, t, 3)))
		ms[t] += 3
	}

	if ms[t] >= 4 {
		ms[t] -= 4
		s.partition(ms, append(groups, newSet(Quad, t, 4)))
		ms[t] += 4
	}
}

func (s *searcher) emit(groups []Group) {
	gs := make([]Group, len(groups))
	copy(gs, groups)
	s.push(Decomposition{HuType: Standard, Pair: s.pair, Groups: gs})
}
