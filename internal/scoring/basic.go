package scoring

import (
	"fmt"

	"github.com/lonng/twmj/internal/rule"
)

// Draw is the single self-draw/concealment bonus a hand earns.
type Draw int

const (
	DrawNone          Draw = iota
	DrawConcealed          // 門清
	DrawSelf               // 自摸
	DrawConcealedSelf      // 門清自摸
)

// classifyDraw applies the priority 門清自摸 > 自摸 > 門清. A disabled case
// yields to the next one. Special shapes and flower wins are already
// concealed by construction and never earn the concealment part.
func classifyDraw(in *Input) Draw {
	var (
		t      = in.Table
		exempt = in.special() || in.flowerWin()
	)
	switch {
	case in.Ctx.SelfDraw && in.Ctx.Concealed && !exempt && t.Enabled(rule.DoorClearZimo):
		return DrawConcealedSelf
	case in.Ctx.SelfDraw && t.Enabled(rule.MyselfMo):
		return DrawSelf
	case in.Ctx.Concealed && !exempt && t.Enabled(rule.DoorClear):
		return DrawConcealed
	}
	return DrawNone
}

func evalDraw(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	switch classifyDraw(in) {
	case DrawConcealedSelf:
		c.pay(in.Table, rule.DoorClearZimo, "")
	case DrawSelf:
		c.pay(in.Table, rule.MyselfMo, "")
	case DrawConcealed:
		c.pay(in.Table, rule.DoorClear, "")
	}
	return c, f
}

func evalDealer(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	switch in.Ctx.Role() {
	case NotDealer:
		return c, f
	case Dealer:
		c.pay(in.Table, rule.Zhuang, "莊家")
	case AteDealer:
		c.pay(in.Table, rule.Zhuang, "食莊家")
	}

	if n := in.Ctx.Streak; n > 0 {
		if v, ok := in.Table.Pay(rule.MultipleZhuang); ok {
			total := float64(n) * v
			c.Value += total
			c.Log = append(c.Log, fmt.Sprintf("連莊 %dx +%s", n, num(total)))
			c.Applicable = true
		}
	}
	return c, f
}

// evalFlower pays each flower and the flower matching the winner's seat. On
// a flower win the per-flower payout is replaced by the 7 or 8 flower prize.
func evalFlower(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	flowers := in.Hand.Flowers()
	if len(flowers) == 0 {
		return c, f
	}
	f.HasFlower = true

	for _, t := range flowers {
		c.pay(in.Table, rule.Flower, "花"+t.Name())
		if t.FlowerSeat() == in.Ctx.Seat && c.pay(in.Table, rule.FlowerSeat, "花位"+t.Name()) {
			f.FlowerSeat = true
		}
	}
	c.Applicable = true

	if in.flowerWin() {
		k := rule.SevenFlower
		if len(in.Deco.Flowers) == 8 {
			k = rule.EightFlower
		}
		win := Contribution{Applicable: true}
		win.pay(in.Table, k, "花胡")
		return win, f
	}
	return c, f
}
