package tile

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	cases := []struct {
		tile  Tile
		valid bool
	}{
		{M1, true},
		{10, false},
		{T9, true},
		{30, false},
		{North, true},
		{35, false},
		{Bak, true},
		{44, false},
		{F4, true},
		{55, false},
		{FF4, true},
		{65, false},
	}

	for _, c := range cases {
		if c.tile.Valid() != c.valid {
			t.Fatalf("tile %d: expect valid=%v", c.tile, c.valid)
		}
	}
	assert.Len(t, All(), 27+4+3+8)
}

func TestNameRoundTrip(t *testing.T) {
	for _, tl := range All() {
		got, err := Parse(tl.Name())
		require.NoError(t, err)
		assert.Equal(t, tl, got)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Tile
	}{
		{"m1", M1},
		{" S9 ", S9},
		{"ｔ５", Numeral(SuitT, 5)},
		{"東", East},
		{"white", Bak},
		{"ff3", FF1 + 2},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := Parse("m0")
	assert.Error(t, err)
	_, err = Parse("joker")
	assert.Error(t, err)
}

func TestAttributes(t *testing.T) {
	assert.Equal(t, SuitT, Numeral(SuitT, 4).Suit())
	assert.Equal(t, 4, Numeral(SuitT, 4).Rank())
	assert.Equal(t, 0, East.Rank())
	assert.True(t, Fa.IsHonor())
	assert.False(t, F1.IsHonor())
	assert.Equal(t, 2, (F1 + 1).FlowerSeat())
	assert.Equal(t, 2, (FF1 + 1).FlowerSeat())
	assert.Equal(t, None, M9.Next())
	assert.Equal(t, South, SeatWind(2))
	assert.Equal(t, None, SeatWind(5))
}

func TestStats(t *testing.T) {
	tiles, err := ParseList("m1,m1 m2 east f1 ff2")
	require.NoError(t, err)

	ms := NewStats(tiles...)
	assert.Equal(t, 6, ms.Total())
	assert.Equal(t, 5, ms.Distinct())
	assert.Equal(t, 2, ms.Count(M1))
	assert.True(t, ms.HasFlower())
	assert.True(t, ms.HasHonor())
	assert.Equal(t, []Tile{F1, FF1 + 1}, ms.Flowers())

	bare := ms.WithoutFlowers()
	assert.Equal(t, 4, bare.Total())
	assert.False(t, bare.HasFlower())
	// receiver untouched
	assert.Equal(t, 6, ms.Total())

	back, err := FromNames(ms.Names())
	require.NoError(t, err)
	assert.Equal(t, ms, back)

	_, err = FromNames(map[string]int{"m1": 5})
	assert.Error(t, err)
}

func TestStatsCopies(t *testing.T) {
	assert.Equal(t, 4, Copies(M1))
	assert.Equal(t, 4, Copies(Bak))
	assert.Equal(t, 1, Copies(F1))
	assert.Equal(t, 0, Copies(None))

	tiles, err := ParseList("m1 m1 m1 m1 m1")
	require.NoError(t, err)
	ms := NewStats(tiles...)
	assert.Equal(t, ErrTooManyCopies, errors.Cause(ms.Check()))

	ms = NewStats(F1, F1)
	assert.Equal(t, ErrTooManyCopies, errors.Cause(ms.Check()))

	ms = NewStats(F1, FF1, M1, M1, M1, M1)
	assert.NoError(t, ms.Check())

	// counts saturate instead of wrapping around
	ms = Stats{}
	ms.Add(M1, 300)
	assert.Equal(t, 255, ms.Count(M1))
	assert.Error(t, ms.Check())

	// aliases of one tile add up
	_, err = FromNames(map[string]int{"bak": 4, "white": 4})
	assert.Equal(t, ErrTooManyCopies, errors.Cause(err))
	_, err = FromNames(map[string]int{"f1": 2})
	assert.Equal(t, ErrTooManyCopies, errors.Cause(err))
	_, err = FromNames(map[string]int{"bak": 2, "white": 2})
	assert.NoError(t, err)
}
