package scoring

import (
	"strconv"

	"github.com/lonng/twmj/internal/hand"
	"github.com/lonng/twmj/internal/rule"
)

// Contribution is what one stage of the cascade added to a hand.
type Contribution struct {
	Stage      string   `json:"stage"`
	Value      float64  `json:"value"`
	Log        []string `json:"log,omitempty"`
	Applicable bool     `json:"applicable"`
}

// pay credits k when the table enables it. An empty label uses the key's own.
func (c *Contribution) pay(t *rule.Table, k rule.Key, label string) bool {
	v, ok := t.Pay(k)
	if !ok {
		return false
	}
	if label == "" {
		label = k.Label()
	}
	c.Value += v
	c.Log = append(c.Log, label+" +"+num(v))
	c.Applicable = true
	return true
}

func (c *Contribution) merge(o Contribution) {
	c.Value += o.Value
	c.Log = append(c.Log, o.Log...)
	c.Applicable = c.Applicable || o.Applicable
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// ScoreResult is the best reading of a hand.
//
// For every result off the bomb path Value == CalculatedPoints*Multiplier +
// BaseValue holds exactly.
type ScoreResult struct {
	Value            float64             `json:"value"`
	Log              []string            `json:"log"`
	Winning          *hand.Decomposition `json:"winning_decomposition"`
	CalculatedPoints float64             `json:"calculated_points"`
	Multiplier       float64             `json:"multiplier"`
	BaseValue        float64             `json:"base_value"`
	Bomb             bool                `json:"bomb"`
	Rules            []Contribution      `json:"rules,omitempty"`
}
