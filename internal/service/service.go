// Package service joins the scoring engine with the template and history
// store. The web api, the game server and the cli all go through it.
package service

import (
	"encoding/json"

	"github.com/lonng/twmj/db"
	"github.com/lonng/twmj/db/model"
	"github.com/lonng/twmj/internal/errutil"
	"github.com/lonng/twmj/internal/hand"
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/internal/scoring"
	"github.com/lonng/twmj/pkg/tile"
	"github.com/lonng/twmj/protocol"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "service")

// Template resolves a template id. Zero means the default template.
func Template(id int64) (*model.ScoringTemplate, error) {
	if id == 0 {
		return db.QueryDefaultTemplate()
	}
	return db.QueryTemplate(id)
}

// Score scores the hand against the requested template and, when asked,
// keeps the outcome in the history.
func Score(req *protocol.ScoreRequest) (*protocol.ScoreResponse, error) {
	if req == nil {
		return nil, errutil.ErrInvalidParameter
	}

	tpl, err := Template(req.TemplateID)
	if err != nil {
		return nil, err
	}
	table, err := rule.Load(tpl.Rules, tpl.RulesEnabled)
	if err != nil {
		return nil, errors.Wrapf(err, "template %d", tpl.Id)
	}

	result, err := scoring.Score(req.Tiles.Stats, req.GameContext, table)
	if err != nil {
		return nil, err
	}

	resp := &protocol.ScoreResponse{ScoreResult: result, TemplateID: tpl.Id}
	if !req.Save {
		return resp, nil
	}

	record, err := newRecord(req, tpl.Id, result)
	if err != nil {
		return nil, err
	}
	if err := db.InsertRecord(record); err != nil {
		return nil, err
	}
	logger.Debugf("saved record %d, value %v", record.Id, result.Value)
	resp.RecordID = record.Id
	return resp, nil
}

func newRecord(req *protocol.ScoreRequest, templateID int64, result *scoring.ScoreResult) (*model.GameRecord, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrServerInternal, err.Error())
	}
	ctx := req.GameContext
	return &model.GameRecord{
		Name:        req.Name,
		Tiles:       req.Tiles.Names(),
		Seat:        ctx.Seat,
		Wind:        ctx.Wind.Name(),
		WinningTile: winningName(ctx.WinningTile),
		SelfDraw:    ctx.SelfDraw,
		Concealed:   ctx.Concealed,
		Dealer:      ctx.Dealer,
		AteDealer:   ctx.AteDealer,
		Streak:      ctx.Streak,
		TemplateId:  templateID,
		Value:       result.Value,
		Bomb:        result.Bomb,
		Result:      string(payload),
	}, nil
}

func winningName(t tile.Tile) string {
	if t == tile.None {
		return ""
	}
	return t.Name()
}

// Decompose lists every reading of a hand without scoring it.
func Decompose(req *protocol.DecomposeRequest) (*protocol.DecomposeResponse, error) {
	if req == nil {
		return nil, errutil.ErrInvalidParameter
	}
	r := hand.Decompose(req.Tiles.Stats)
	return &r, nil
}

// Rules lists the rule vocabulary in key order.
func Rules() *protocol.RuleListResponse {
	keys := rule.Keys()
	list := make([]protocol.RuleInfo, 0, len(keys))
	for _, k := range keys {
		list = append(list, protocol.RuleInfo{Key: k.String(), Label: k.Label(), Default: k.Default()})
	}
	return &protocol.RuleListResponse{Data: list, Total: len(list)}
}
