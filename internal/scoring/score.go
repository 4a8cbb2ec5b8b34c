// Package scoring turns a declared hand and its game context into the best
// score any reading of the hand earns under a rule table.
package scoring

import (
	"fmt"

	"github.com/lonng/twmj/internal/hand"
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/pkg/tile"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "scoring")

// Score decomposes the hand and scores every reading, returning the best.
//
// Ties keep the reading the decomposer produced first. A hand with no
// reading, or whose only readings are special shapes on an open hand, takes
// the bomb penalty. A hand no tile set could deal is an error. The table is
// used as a snapshot and never modified.
func Score(ms tile.Stats, ctx GameContext, t rule.Table) (*ScoreResult, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	if err := ms.Check(); err != nil {
		return nil, err
	}

	r := hand.Decompose(ms)
	candidates := make([]hand.Decomposition, 0, len(r.Candidates))
	for _, d := range r.Candidates {
		// special shapes are only legal on a concealed hand
		if d.HuType.IsSpecial() && !ctx.Concealed {
			continue
		}
		candidates = append(candidates, d)
	}
	if len(candidates) == 0 {
		return bomb(ms, &t), nil
	}

	var (
		best       *ScoreResult
		multiplier = t.Value(rule.MultiplierValue)
		base       = t.Value(rule.BaseValue)
	)
	for i := range candidates {
		d := &candidates[i]
		tl := evaluate(newInput(d, ms, &ctx, &t))
		reported := tl.points*multiplier + base
		if best == nil || reported > best.Value {
			best = &ScoreResult{
				Value:            reported,
				Log:              tl.log,
				Winning:          d,
				CalculatedPoints: tl.points,
				Multiplier:       multiplier,
				BaseValue:        base,
				Rules:            tl.rules,
			}
		}
	}
	return best, nil
}

// Explain runs the cascade over one given reading.
func Explain(d *hand.Decomposition, ms tile.Stats, ctx GameContext, t rule.Table) ([]Contribution, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	return evaluate(newInput(d, ms, &ctx, &t)).rules, nil
}

// bomb is the misdeclared hand: the winner pays every other player.
func bomb(ms tile.Stats, t *rule.Table) *ScoreResult {
	res := &ScoreResult{
		Log:        []string{},
		Multiplier: t.Value(rule.MultiplierValue),
		BaseValue:  t.Value(rule.BaseValue),
		Bomb:       true,
	}
	if v, ok := t.Pay(rule.ExplodeHu); ok {
		res.Value = v * 3
		res.Log = append(res.Log, fmt.Sprintf("炸胡， 每家賠%s", num(v)))
	}
	logger.Infof("Hand %scannot be scored, penalty %s", ms.String(), num(res.Value))
	return res
}
