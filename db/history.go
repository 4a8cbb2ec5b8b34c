package db

import (
	"time"

	"github.com/lonng/twmj/db/model"
	"github.com/lonng/twmj/internal/errutil"
)

func InsertRecord(r *model.GameRecord) error {
	if r == nil {
		return errutil.ErrInvalidParameter
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().Unix()
	}
	if _, err := database.Insert(r); err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	return nil
}

func QueryRecord(id int64) (*model.GameRecord, error) {
	r := &model.GameRecord{}
	has, err := database.Where("id=?", id).Get(r)
	if err != nil {
		logger.Error(err)
		return nil, errutil.ErrDBOperation
	}
	if !has {
		return nil, errutil.ErrHistoryNotFound
	}
	return r, nil
}

// RecordList pages through the history, newest first, and returns the total
// number of records alongside the page.
func RecordList(offset, count int) ([]model.GameRecord, int64, error) {
	if offset < 0 {
		offset = 0
	}
	if count <= 0 {
		count = DefaultPageSize
	}

	total, err := database.Count(&model.GameRecord{})
	if err != nil {
		logger.Error(err)
		return nil, 0, errutil.ErrDBOperation
	}

	list := make([]model.GameRecord, 0)
	if err := database.Desc("created_at", "id").Limit(count, offset).Find(&list); err != nil {
		logger.Error(err)
		return nil, 0, errutil.ErrDBOperation
	}
	return list, total, nil
}

func DeleteRecord(id int64) error {
	n, err := database.Where("id=?", id).Delete(&model.GameRecord{})
	if err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	if n == 0 {
		return errutil.ErrHistoryNotFound
	}
	return nil
}

// ClearRecords drops the whole history.
func ClearRecords() error {
	if _, err := database.Exec("DELETE FROM `game_record`"); err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	return nil
}
