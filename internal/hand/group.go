package hand

import (
	"fmt"
	"strings"

	"github.com/lonng/twmj/pkg/tile"
	"github.com/pkg/errors"
)

type Kind int

const (
	Sequence Kind = iota // 順子
	Triplet              // 刻子
	Quad                 // 槓
	Pair                 // 眼
)

var kindNames = [...]string{
	Sequence: "sequence",
	Triplet:  "triplet",
	Quad:     "quad",
	Pair:     "pair",
}

func (k Kind) String() string { return kindNames[k] }

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return errors.Errorf("unknown group kind %q", text)
}

// Group is one scoring unit. Tiles are kept ascending.
type Group struct {
	Kind  Kind        `json:"kind"`
	Tiles []tile.Tile `json:"tiles"`
}

func newSequence(start tile.Tile) Group {
	return Group{Kind: Sequence, Tiles: []tile.Tile{start, start + 1, start + 2}}
}

func newSet(k Kind, t tile.Tile, n int) Group {
	g := Group{Kind: k, Tiles: make([]tile.Tile, n)}
	for i := range g.Tiles {
		g.Tiles[i] = t
	}
	return g
}

// First is the lowest tile of the group.
func (g Group) First() tile.Tile { return g.Tiles[0] }

// IsSet reports triplets and quads, the groups made of identical tiles.
func (g Group) IsSet() bool { return g.Kind == Triplet || g.Kind == Quad }

func (g Group) Contains(t tile.Tile) bool {
	for _, v := range g.Tiles {
		if v == t {
			return true
		}
	}
	return false
}

func (g Group) key() string {
	return fmt.Sprintf("%d:%d", g.Kind, g.First())
}

func (g Group) String() string {
	parts := make([]string, len(g.Tiles))
	for i, t := range g.Tiles {
		parts[i] = t.String()
	}
	return strings.Join(parts, "")
}
