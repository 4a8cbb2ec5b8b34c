package service

import (
	"encoding/json"

	"github.com/lonng/twmj/db"
	"github.com/lonng/twmj/db/model"
	"github.com/lonng/twmj/internal/scoring"
	"github.com/lonng/twmj/internal/types"
	"github.com/lonng/twmj/pkg/tile"
	"github.com/lonng/twmj/protocol"
)

func recordInfo(r *model.GameRecord) protocol.Record {
	info := protocol.Record{
		ID:         r.Id,
		Name:       r.Name,
		TemplateID: r.TemplateId,
		Value:      r.Value,
		Bomb:       r.Bomb,
		CreatedAt:  r.CreatedAt,
		Context: scoring.GameContext{
			Seat:      r.Seat,
			SelfDraw:  r.SelfDraw,
			Concealed: r.Concealed,
			Dealer:    r.Dealer,
			AteDealer: r.AteDealer,
			Streak:    r.Streak,
		},
	}

	// rows were written by this package, a bad name only means an old row
	if ms, err := tile.FromNames(r.Tiles); err == nil {
		info.Tiles.Stats = ms
	} else {
		logger.Warnf("record %d: %v", r.Id, err)
	}
	info.Context.Wind, _ = tile.Parse(r.Wind)
	if r.WinningTile != "" {
		info.Context.WinningTile, _ = tile.Parse(r.WinningTile)
	}

	result := &scoring.ScoreResult{}
	if err := json.Unmarshal([]byte(r.Result), result); err == nil {
		info.Result = result
	} else {
		logger.Warnf("record %d: %v", r.Id, err)
	}
	return info
}

func RecordList(p types.Pager) (*protocol.RecordListResponse, error) {
	list, total, err := db.RecordList(p.Offset, p.Count)
	if err != nil {
		return nil, err
	}
	data := make([]protocol.Record, 0, len(list))
	for i := range list {
		data = append(data, recordInfo(&list[i]))
	}
	return &protocol.RecordListResponse{Data: data, Total: total}, nil
}

func RecordInfo(id int64) (*protocol.Record, error) {
	r, err := db.QueryRecord(id)
	if err != nil {
		return nil, err
	}
	info := recordInfo(r)
	return &info, nil
}

func DeleteRecord(id int64) error {
	return db.DeleteRecord(id)
}

func ClearRecords() error {
	if err := db.ClearRecords(); err != nil {
		return err
	}
	logger.Info("history cleared")
	return nil
}
