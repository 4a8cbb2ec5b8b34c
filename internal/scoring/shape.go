package scoring

import (
	"github.com/lonng/twmj/internal/hand"
	"github.com/lonng/twmj/internal/rule"
)

// Shape classifies a standard hand by its triplet count.
type Shape int

const (
	ShapeMixed    Shape = iota
	ShapePing           // 平胡, no triplets
	ShapeDuiDui         // 對對胡, all triplets
	ShapeKangKang       // 坎坎胡, all triplets, self drawn and concealed
)

func classifyShape(in *Input) Shape {
	if in.Deco.HuType != hand.Standard {
		return ShapeMixed
	}
	switch sets := in.Deco.Sets(); {
	case sets == hand.Groups && in.Ctx.SelfDraw && in.Ctx.Concealed:
		return ShapeKangKang
	case sets == hand.Groups:
		return ShapeDuiDui
	case sets == 0:
		return ShapePing
	}
	return ShapeMixed
}

func evalShape(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	f.Shape = classifyShape(in)
	switch f.Shape {
	case ShapeKangKang:
		c.pay(in.Table, rule.FiveDarkPongZimo, "")
	case ShapeDuiDui:
		c.pay(in.Table, rule.DuiDuiHu, "")
	case ShapePing:
		// without flowers and fan the ping prize is paid by no_zifa instead
		if f.HasFlower || f.HasFan {
			c.pay(in.Table, rule.PingHu, "")
		}
	}
	return c, f
}

// evalNoZifa rewards hands missing flowers, fan tiles or both.
func evalNoZifa(in *Input, f Flags) (Contribution, Flags) {
	var (
		c Contribution
		t = in.Table
	)
	switch {
	case f.HasFlower && f.HasFan:
	case !f.HasFlower && !f.HasFan:
		if f.Shape == ShapePing && c.pay(t, rule.NoZifaPingHu, "") {
			break
		}
		c.pay(t, rule.NoZifa, "")
	case f.HasFan:
		c.pay(t, rule.Flower, "無花")
	default:
		c.pay(t, rule.Wind, "無字")
	}
	return c, f
}

// evalSeatBonus pays when both the seat flower and the seat wind landed.
func evalSeatBonus(in *Input, f Flags) (Contribution, Flags) {
	var c Contribution
	if f.FlowerSeat && f.WindSeat {
		c.pay(in.Table, rule.FlowerWindSeatAddOn, "正花正位再加")
	}
	return c, f
}

func specialStage(ht hand.HuType, k rule.Key) func(*Input, Flags) (Contribution, Flags) {
	return func(in *Input, f Flags) (Contribution, Flags) {
		var c Contribution
		if in.Deco.HuType == ht && in.Ctx.Concealed {
			c.pay(in.Table, k, "")
		}
		return c, f
	}
}

var (
	evalSixteenScattered = specialStage(hand.SixteenScattered, rule.SixteenBD)
	evalThirteenWaist    = specialStage(hand.ThirteenWaist, rule.ThirteenWaist)
	evalLigu             = specialStage(hand.Ligu, rule.LiGu)
)
