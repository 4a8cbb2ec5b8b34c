package tile

import (
	"bytes"
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrTooManyCopies is returned for hands holding more copies of a tile than
// a set contains.
var ErrTooManyCopies = errors.New("too many copies of a tile")

// Copies is how many of the tile one set contains: four of each suited and
// honor tile, one of each flower.
func Copies(t Tile) int {
	switch {
	case !t.Valid():
		return 0
	case t.IsFlower():
		return 1
	}
	return 4
}

// Stats is a tile multiset: the count of each tile index in a hand.
// It is a value type; copies never alias.
type Stats [Max + 1]uint8

// NewStats counts the given tiles, ignoring anything outside the vocabulary.
func NewStats(tiles ...Tile) Stats {
	var ms Stats
	for _, t := range tiles {
		ms.Add(t, 1)
	}
	return ms
}

func (ms *Stats) Add(t Tile, n int) {
	if !t.Valid() {
		return
	}
	v := int(ms[t]) + n
	if v < 0 {
		v = 0
	}
	if v > math.MaxUint8 {
		v = math.MaxUint8
	}
	ms[t] = uint8(v)
}

// Check rejects a multiset no real set of tiles could produce.
func (ms *Stats) Check() error {
	for i, c := range ms {
		t := Tile(i)
		if int(c) > Copies(t) {
			return errors.Wrapf(ErrTooManyCopies, "%s x%d", t.Name(), c)
		}
	}
	return nil
}

func (ms *Stats) Count(t Tile) int {
	if t < 0 || t > Max {
		return 0
	}
	return int(ms[t])
}

func (ms *Stats) Total() int {
	n := 0
	for _, c := range ms {
		n += int(c)
	}
	return n
}

// Distinct is the number of different tiles present.
func (ms *Stats) Distinct() int {
	n := 0
	for _, c := range ms {
		if c > 0 {
			n++
		}
	}
	return n
}

// Flowers lists flower tiles in index order, one entry per copy.
func (ms *Stats) Flowers() []Tile {
	var out []Tile
	for t := F1; t <= Max; t++ {
		for i := 0; i < int(ms[t]); i++ {
			out = append(out, t)
		}
	}
	return out
}

// WithoutFlowers returns a copy holding only numeral and honor tiles.
func (ms Stats) WithoutFlowers() Stats {
	for t := F1; t <= Max; t++ {
		ms[t] = 0
	}
	return ms
}

func (ms *Stats) HasFlower() bool {
	for t := F1; t <= Max; t++ {
		if ms[t] > 0 {
			return true
		}
	}
	return false
}

func (ms *Stats) HasHonor() bool {
	for t := East; t <= Bak; t++ {
		if ms[t] > 0 {
			return true
		}
	}
	return false
}

// Tiles expands the multiset into a sorted tile list.
func (ms *Stats) Tiles() []Tile {
	out := make([]Tile, 0, ms.Total())
	for t, c := range ms {
		for i := 0; i < int(c); i++ {
			out = append(out, Tile(t))
		}
	}
	return out
}

// Names is the wire form: tile name to count.
func (ms *Stats) Names() map[string]int {
	out := make(map[string]int)
	for t, c := range ms {
		if c > 0 {
			out[Tile(t).Name()] = int(c)
		}
	}
	return out
}

func (ms *Stats) String() string {
	buf := &bytes.Buffer{}
	for t, c := range ms {
		if c == 0 {
			continue
		}
		fmt.Fprintf(buf, "%s:%d ", Tile(t), c)
	}
	return buf.String()
}
