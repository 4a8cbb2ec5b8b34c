package protocol

import (
	"bytes"
	"encoding/json"

	"github.com/lonng/twmj/internal/hand"
	"github.com/lonng/twmj/internal/scoring"
	"github.com/lonng/twmj/pkg/tile"
	"github.com/pkg/errors"
)

// Tiles is a hand on the wire. It decodes from a count object
// ({"m1":2}), a name array (["m1","m1"]) or a space separated string, and
// always encodes as the count object.
type Tiles struct {
	tile.Stats
}

func (t Tiles) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Names())
}

func (t *Tiles) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Stats = tile.Stats{}
		return nil
	}

	switch data[0] {
	case '{':
		counts := map[string]int{}
		if err := json.Unmarshal(data, &counts); err != nil {
			return errors.Wrap(err, "tiles")
		}
		ms, err := tile.FromNames(counts)
		if err != nil {
			return err
		}
		t.Stats = ms
		return nil

	case '[':
		var list []tile.Tile
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		return t.set(list)

	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "tiles")
		}
		list, err := tile.ParseList(s)
		if err != nil {
			return err
		}
		return t.set(list)
	}
	return errors.Errorf("tiles: unexpected %s", data)
}

func (t *Tiles) set(list []tile.Tile) error {
	ms := tile.NewStats(list...)
	if err := ms.Check(); err != nil {
		return err
	}
	t.Stats = ms
	return nil
}

// ScoreRequest asks for the best score of a completed hand. A zero template
// id picks the default template.
type ScoreRequest struct {
	Tiles Tiles `json:"tiles"`
	scoring.GameContext
	TemplateID int64  `json:"template_id,omitempty"`
	Save       bool   `json:"save,omitempty"`
	Name       string `json:"name,omitempty"`
}

type ScoreResponse struct {
	*scoring.ScoreResult
	TemplateID int64 `json:"template_id"`
	RecordID   int64 `json:"record_id,omitempty"`
}

type DecomposeRequest struct {
	Tiles Tiles `json:"tiles"`
}

type DecomposeResponse = hand.Result
