package hand

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lonng/twmj/pkg/tile"
	"github.com/pkg/errors"
)

type HuType int

const (
	Standard         HuType = iota // 普通胡
	FlowerWin                      // 花胡
	SixteenScattered               // 十六不搭
	ThirteenWaist                  // 十三么
	Ligu                           // 嚦咕嚦咕
)

var huTypeNames = [...]string{
	Standard:         "standard",
	FlowerWin:        "flower_win",
	SixteenScattered: "sixteen_scattered",
	ThirteenWaist:    "thirteen_waist",
	Ligu:             "ligu",
}

var huTypeLabels = [...]string{
	Standard:         "普通胡",
	FlowerWin:        "花胡",
	SixteenScattered: "16不搭",
	ThirteenWaist:    "十三么/腰",
	Ligu:             "嚦咕嚦咕",
}

func (h HuType) String() string { return huTypeNames[h] }

// Label is the table-side name shown in score breakdowns.
func (h HuType) Label() string { return huTypeLabels[h] }

func (h HuType) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *HuType) UnmarshalText(text []byte) error {
	for i, name := range huTypeNames {
		if name == string(text) {
			*h = HuType(i)
			return nil
		}
	}
	return errors.Errorf("unknown hu type %q", text)
}

// IsSpecial reports the whole-hand shapes that bypass meld partitioning.
// All of them require a fully concealed hand.
func (h HuType) IsSpecial() bool {
	return h == SixteenScattered || h == ThirteenWaist || h == Ligu
}

// Decomposition is one candidate reading of a completed hand.
//
// Standard decompositions carry the pair and exactly Groups melds. Special
// shapes carry only the hu type; flower wins also list the flowers drawn.
type Decomposition struct {
	HuType  HuType      `json:"hu_type"`
	Pair    tile.Tile   `json:"pair,omitempty"`
	Groups  []Group     `json:"groups,omitempty"`
	Flowers []tile.Tile `json:"flowers,omitempty"`
}

// Melds returns the groups followed by the pair as a group of its own.
func (d *Decomposition) Melds() []Group {
	out := make([]Group, 0, len(d.Groups)+1)
	out = append(out, d.Groups...)
	if d.Pair != tile.None {
		out = append(out, newSet(Pair, d.Pair, 2))
	}
	return out
}

// Stats is the multiset union of the groups and the pair.
func (d *Decomposition) Stats() tile.Stats {
	var ms tile.Stats
	for _, g := range d.Melds() {
		for _, t := range g.Tiles {
			ms.Add(t, 1)
		}
	}
	return ms
}

// Sets counts triplets and quads.
func (d *Decomposition) Sets() int {
	n := 0
	for _, g := range d.Groups {
		if g.IsSet() {
			n++
		}
	}
	return n
}

func (d *Decomposition) key() string {
	keys := make([]string, 0, len(d.Groups))
	for _, g := range d.Groups {
		keys = append(keys, g.key())
	}
	sort.Strings(keys)
	return strconv.Itoa(int(d.HuType)) + "|" + strconv.Itoa(int(d.Pair)) + "|" + strings.Join(keys, ",")
}

func (d *Decomposition) String() string {
	if d.HuType != Standard {
		return d.HuType.Label()
	}
	parts := make([]string, 0, len(d.Groups)+1)
	parts = append(parts, d.Pair.String()+d.Pair.String())
	for _, g := range d.Groups {
		parts = append(parts, g.String())
	}
	return strings.Join(parts, " ")
}
