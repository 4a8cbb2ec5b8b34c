package scoring

import (
	"github.com/lonng/twmj/internal/hand"
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/pkg/tile"
)

// Input is everything a stage may look at. Stages never modify it.
type Input struct {
	Deco  *hand.Decomposition
	Hand  tile.Stats // as declared, flowers included
	Body  tile.Stats // Hand without flowers
	Ctx   *GameContext
	Table *rule.Table
}

func newInput(d *hand.Decomposition, ms tile.Stats, ctx *GameContext, t *rule.Table) *Input {
	return &Input{Deco: d, Hand: ms, Body: ms.WithoutFlowers(), Ctx: ctx, Table: t}
}

func (in *Input) special() bool   { return in.Deco.HuType.IsSpecial() }
func (in *Input) flowerWin() bool { return in.Deco.HuType == hand.FlowerWin }

// Flags carries what earlier stages established to the stages after them.
// It is passed by value, so a stage can only publish through its return.
type Flags struct {
	HasFlower  bool
	HasFan     bool
	FlowerSeat bool // a flower matched the winner's seat and was paid
	WindSeat   bool // the seat wind triplet was paid
	Shape      Shape
	DragonSuit tile.Suit // suit of a pure 1-9 straight, SuitNone otherwise
}

type Stage struct {
	Name string
	Eval func(in *Input, f Flags) (Contribution, Flags)
	// flower wins have no melds, their pass ends after a closing stage
	closesFlowerWin bool
}

// Pipeline is the rule cascade in evaluation order. Several stages read
// flags raised by earlier ones, so the order is part of the scoring rules.
var Pipeline = []Stage{
	{Name: "draw", Eval: evalDraw},
	{Name: "dealer", Eval: evalDealer},
	{Name: "flower", Eval: evalFlower, closesFlowerWin: true},
	{Name: "fan", Eval: evalFan},
	{Name: "shape", Eval: evalShape},
	{Name: "no_zifa", Eval: evalNoZifa},
	{Name: "seat_bonus", Eval: evalSeatBonus},
	{Name: "sixteen_scattered", Eval: evalSixteenScattered},
	{Name: "thirteen_waist", Eval: evalThirteenWaist},
	{Name: "ligu", Eval: evalLigu},
	{Name: "wait", Eval: evalWait},
	{Name: "general_eyes", Eval: evalGeneralEyes},
	{Name: "gong", Eval: evalGong},
	{Name: "dark_pong", Eval: evalDarkPong},
	{Name: "numbers", Eval: evalNumbers},
	{Name: "only_fan", Eval: evalOnlyFan},
	{Name: "one_nine", Eval: evalOneNine},
	{Name: "break_waist", Eval: evalBreakWaist},
	{Name: "same_house", Eval: evalSameHouse},
	{Name: "less_door", Eval: evalLessDoor},
	{Name: "five_door", Eval: evalFiveDoor},
	{Name: "dragon", Eval: evalDragon},
	{Name: "lao_shao", Eval: evalLaoShao},
	{Name: "ban_gao", Eval: evalBanGao},
	{Name: "step_high", Eval: evalStepHigh},
	{Name: "sister", Eval: evalSister},
	{Name: "sister_pong", Eval: evalSisterPong},
}

// tally is one full pass of the cascade over a decomposition.
type tally struct {
	points float64
	log    []string
	rules  []Contribution
	flags  Flags
}

func evaluate(in *Input) tally {
	var (
		t = tally{log: []string{}}
		f = Flags{DragonSuit: tile.SuitNone}
	)
	for _, s := range Pipeline {
		var c Contribution
		c, f = s.Eval(in, f)
		c.Stage = s.Name
		t.points += c.Value
		t.log = append(t.log, c.Log...)
		t.rules = append(t.rules, c)
		if s.closesFlowerWin && in.flowerWin() {
			break
		}
	}
	t.flags = f
	return t
}
