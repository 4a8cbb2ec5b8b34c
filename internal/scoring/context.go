package scoring

import (
	"github.com/lonng/twmj/internal/errutil"
	"github.com/lonng/twmj/pkg/tile"
	"github.com/pkg/errors"
)

// DealerRole says how the winner relates to the dealer. Exactly one case
// holds for a validated context.
type DealerRole int

const (
	NotDealer DealerRole = iota
	Dealer               // 莊家
	AteDealer            // 食莊家, won off the dealer's discard
)

// GameContext is the situation a hand was won in.
type GameContext struct {
	Seat        int       `json:"seat"`
	Wind        tile.Tile `json:"wind"`
	WinningTile tile.Tile `json:"winning_tile,omitempty"`
	SelfDraw    bool      `json:"self_draw"`
	Concealed   bool      `json:"concealed"`
	Dealer      bool      `json:"dealer"`
	AteDealer   bool      `json:"ate_dealer"`
	Streak      int       `json:"consecutive_dealer"`
}

// Validate rejects contexts no table could produce. The engine never
// normalizes them, since any silent repair would change scores.
func (c *GameContext) Validate() error {
	switch {
	case c.Seat < 1 || c.Seat > 4:
		return errors.Wrapf(errutil.ErrIllegalContext, "seat %d", c.Seat)
	case !c.Wind.IsWind():
		return errors.Wrapf(errutil.ErrIllegalContext, "prevailing wind %s", c.Wind.Name())
	case c.Dealer && c.AteDealer:
		return errors.Wrap(errutil.ErrIllegalContext, "dealer cannot eat the dealer")
	case c.Streak < 0:
		return errors.Wrapf(errutil.ErrIllegalContext, "consecutive dealer %d", c.Streak)
	case c.WinningTile != tile.None && (!c.WinningTile.Valid() || c.WinningTile.IsFlower()):
		return errors.Wrapf(errutil.ErrIllegalContext, "winning tile %s", c.WinningTile.Name())
	}
	return nil
}

func (c *GameContext) Role() DealerRole {
	switch {
	case c.Dealer:
		return Dealer
	case c.AteDealer:
		return AteDealer
	}
	return NotDealer
}

func (c *GameContext) SeatWind() tile.Tile { return tile.SeatWind(c.Seat) }
