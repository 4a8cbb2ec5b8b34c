package tile

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/width"
)

// ErrUnknownTile is returned for names outside the vocabulary.
var ErrUnknownTile = errors.New("unknown tile")

var byName = func() map[string]Tile {
	m := make(map[string]Tile)
	for _, t := range All() {
		m[t.Name()] = t
		m[t.String()] = t
	}
	// common aliases used by the classifier and manual input
	m["white"] = Bak
	m["red"] = Zhong
	m["green"] = Fa
	m["bai"] = Bak
	m["中"] = Zhong
	m["發"] = Fa
	m["发"] = Fa
	m["白"] = Bak
	return m
}()

// Parse resolves a tile name. Full-width input ("ｍ１") is folded first.
func Parse(name string) (Tile, error) {
	key := strings.ToLower(strings.TrimSpace(width.Fold.String(name)))
	if t, ok := byName[key]; ok {
		return t, nil
	}
	return None, errors.Wrapf(ErrUnknownTile, "%q", name)
}

// ParseList parses a whitespace or comma separated tile list.
func ParseList(s string) ([]Tile, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	tiles := make([]Tile, 0, len(fields))
	for _, f := range fields {
		t, err := Parse(f)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// FromNames builds a multiset from the wire form. Aliases of one tile are
// summed before the copy limit is checked.
func FromNames(m map[string]int) (Stats, error) {
	var ms Stats
	for name, n := range m {
		t, err := Parse(name)
		if err != nil {
			return ms, err
		}
		if n < 0 {
			return ms, errors.Errorf("tile %s: illegal count %d", name, n)
		}
		if n > Copies(t) {
			return ms, errors.Wrapf(ErrTooManyCopies, "%s x%d", name, n)
		}
		ms.Add(t, n)
	}
	if err := ms.Check(); err != nil {
		return Stats{}, err
	}
	return ms, nil
}
