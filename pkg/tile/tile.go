// Package tile defines the closed vocabulary of Taiwanese mahjong tiles.
//
// A tile is an index: numeral tiles are suit*10+rank (1~9 萬, 11~19 筒, 21~29 索),
// winds live at 31~34, dragons at 41~43 and the two flower sets at 51~54 and 61~64.
package tile

import "fmt"

type Tile int

type Suit int

const (
	SuitNone Suit = iota - 1
	SuitM         // 萬
	SuitT         // 筒
	SuitS         // 索
	SuitWind
	SuitDragon
	SuitFlower
	SuitFlower2
)

const (
	None Tile = 0

	M1 Tile = 1
	M9 Tile = 9
	T1 Tile = 11
	T9 Tile = 19
	S1 Tile = 21
	S9 Tile = 29

	East  Tile = 31
	South Tile = 32
	West  Tile = 33
	North Tile = 34

	Zhong Tile = 41 // 紅中
	Fa    Tile = 42 // 發財
	Bak   Tile = 43 // 白板

	F1  Tile = 51 // 春/梅 set, f1~f4
	F4  Tile = 54
	FF1 Tile = 61 // 菊/竹 set, ff1~ff4
	FF4 Tile = 64

	Max = FF4
)

var suitPrefix = [...]string{SuitM: "m", SuitT: "t", SuitS: "s"}

var honorNames = map[Tile]string{
	East:  "east",
	South: "south",
	West:  "west",
	North: "north",
	Zhong: "zhong",
	Fa:    "fa",
	Bak:   "bak",
}

var labels = map[Tile]string{
	East:  "東",
	South: "南",
	West:  "西",
	North: "北",
	Zhong: "中",
	Fa:    "發",
	Bak:   "白",
}

var suitLabels = [...]string{SuitM: "萬", SuitT: "筒", SuitS: "索", SuitWind: "風", SuitDragon: "元", SuitFlower: "花", SuitFlower2: "花"}

func (s Suit) String() string {
	if s < SuitM || s > SuitFlower2 {
		return "?"
	}
	return suitLabels[s]
}

// Numeral builds the tile of the given numeral suit and rank.
func Numeral(s Suit, rank int) Tile {
	if s < SuitM || s > SuitS || rank < 1 || rank > 9 {
		return None
	}
	return Tile(int(s)*10 + rank)
}

// Valid reports whether t belongs to the vocabulary.
func (t Tile) Valid() bool {
	switch {
	case t >= M1 && t <= S9:
		return t%10 != 0
	case t >= East && t <= North:
		return true
	case t >= Zhong && t <= Bak:
		return true
	case t >= F1 && t <= F4, t >= FF1 && t <= FF4:
		return true
	}
	return false
}

func (t Tile) Suit() Suit {
	if !t.Valid() {
		return SuitNone
	}
	return Suit(t / 10)
}

// Rank is 1~9 for numeral tiles and 0 otherwise.
func (t Tile) Rank() int {
	if !t.IsNumeral() {
		return 0
	}
	return int(t % 10)
}

func (t Tile) IsNumeral() bool { return t.Valid() && t <= S9 }
func (t Tile) IsWind() bool    { return t >= East && t <= North }
func (t Tile) IsDragon() bool  { return t >= Zhong && t <= Bak }
func (t Tile) IsFlower() bool  { return t.Valid() && t >= F1 }

// IsHonor reports wind and dragon tiles, the "fan" tiles.
func (t Tile) IsHonor() bool { return t.IsWind() || t.IsDragon() }

func (t Tile) IsTerminal() bool {
	r := t.Rank()
	return r == 1 || r == 9
}

// FlowerSeat is the seat (1~4) a flower belongs to, 0 for non-flowers.
func (t Tile) FlowerSeat() int {
	if !t.IsFlower() {
		return 0
	}
	return int(t % 10)
}

// Next returns the tile one rank higher in the same numeral suit.
func (t Tile) Next() Tile {
	if !t.IsNumeral() || t.Rank() == 9 {
		return None
	}
	return t + 1
}

// Name is the wire identifier, e.g. "m1", "east", "ff2".
func (t Tile) Name() string {
	switch {
	case t.IsNumeral():
		return fmt.Sprintf("%s%d", suitPrefix[t.Suit()], t.Rank())
	case t.IsHonor():
		return honorNames[t]
	case t >= F1 && t <= F4:
		return fmt.Sprintf("f%d", t-F1+1)
	case t >= FF1 && t <= FF4:
		return fmt.Sprintf("ff%d", t-FF1+1)
	}
	return fmt.Sprintf("illegal(%d)", int(t))
}

func (t Tile) String() string {
	switch {
	case t.IsNumeral():
		return fmt.Sprintf("%d%s", t.Rank(), suitLabels[t.Suit()])
	case t.IsHonor():
		return labels[t]
	case t.IsFlower():
		return "花" + t.Name()
	}
	return t.Name()
}

// Winds in seat order: seat 1 is east.
var Winds = [...]Tile{East, South, West, North}

var Dragons = [...]Tile{Zhong, Fa, Bak}

// Orphans are the thirteen terminal and honor tiles.
var Orphans = [...]Tile{M1, M9, T1, T9, S1, S9, East, South, West, North, Zhong, Fa, Bak}

// SeatWind maps seat 1~4 to its wind, None when out of range.
func SeatWind(seat int) Tile {
	if seat < 1 || seat > 4 {
		return None
	}
	return Winds[seat-1]
}

// All lists every valid tile in index order.
func All() []Tile {
	tiles := make([]Tile, 0, 42)
	for t := Tile(1); t <= Max; t++ {
		if t.Valid() {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

func (t Tile) MarshalText() ([]byte, error) {
	return []byte(t.Name()), nil
}

// UnmarshalText reads an empty name as None.
func (t *Tile) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*t = None
		return nil
	}
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
