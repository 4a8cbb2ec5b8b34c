package protocol

import (
	"github.com/lonng/twmj/internal/scoring"
)

type Record struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	Tiles      Tiles                `json:"tiles"`
	Context    scoring.GameContext  `json:"context"`
	TemplateID int64                `json:"template_id"`
	Value      float64              `json:"value"`
	Bomb       bool                 `json:"bomb"`
	Result     *scoring.ScoreResult `json:"result,omitempty"`
	CreatedAt  int64                `json:"created_at"`
}

type RecordListResponse struct {
	Data  []Record `json:"data"`
	Total int64    `json:"total"`
}
