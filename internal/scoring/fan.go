package scoring

import (
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/pkg/tile"
)

// evalFan scores wind and dragon triplets. The whole-hand wind and dragon
// prizes replace what the single triplets earned rather than adding to it.
func evalFan(in *Input, f Flags) (Contribution, Flags) {
	var (
		c     Contribution
		t     = in.Table
		body  = &in.Body
		winds Contribution
	)

	small, big := 0, 0
	for _, w := range tile.Winds {
		n := body.Count(w)
		if n == 0 {
			continue
		}
		f.HasFan = true
		if n >= 2 {
			small++
		}
		if n >= 3 {
			big++
			winds.pay(t, rule.Wind, w.String())
		}
	}
	replace := func(k rule.Key) {
		if t.Enabled(k) {
			winds = Contribution{}
			winds.pay(t, k, "")
		}
	}
	if small == 3 {
		replace(rule.Small3Wind)
	}
	if big == 3 {
		replace(rule.Big3Wind)
	}
	if small == 4 {
		replace(rule.Small4Wind)
	}
	if big == 4 {
		replace(rule.Big4Wind)
	}

	if w := in.Ctx.Wind; body.Count(w) >= 3 {
		winds.pay(t, rule.WindWind, "正"+w.String()+"圈")
	}
	if w := in.Ctx.SeatWind(); body.Count(w) >= 3 && winds.pay(t, rule.WindSeat, "正"+w.String()+"位") {
		f.WindSeat = true
	}
	c.merge(winds)

	var dragons Contribution
	small, big = 0, 0
	for _, d := range tile.Dragons {
		n := body.Count(d)
		if n == 0 {
			continue
		}
		f.HasFan = true
		if n >= 2 {
			small++
		}
		if n >= 3 {
			big++
			dragons.pay(t, rule.ZFB, d.String())
		}
	}
	if small == 3 && t.Enabled(rule.Small3ZFB) {
		dragons = Contribution{}
		dragons.pay(t, rule.Small3ZFB, "")
	}
	if big == 3 && t.Enabled(rule.Big3ZFB) {
		dragons = Contribution{}
		dragons.pay(t, rule.Big3ZFB, "")
	}
	c.merge(dragons)

	return c, f
}
