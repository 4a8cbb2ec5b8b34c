package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lonng/nex"
	"github.com/lonng/twmj/internal/service"
	"github.com/lonng/twmj/internal/types"
	"github.com/lonng/twmj/protocol"
)

func MakeHistoryService() http.Handler {
	router := mux.NewRouter()
	router.Handle("/v1/history/", nex.Handler(historyList)).Methods("GET")                                     // 歷史列表
	router.Handle("/v1/history/", nex.Handler(clearHistory).Before(writeFilter)).Methods("DELETE")             // 清空歷史
	router.Handle("/v1/history/{id:[0-9]+}", nex.Handler(historyByID)).Methods("GET")                          // 歷史詳情
	router.Handle("/v1/history/{id:[0-9]+}", nex.Handler(deleteHistory).Before(writeFilter)).Methods("DELETE") // 刪除歷史
	return router
}

func historyList(form *nex.Form) (*protocol.RecordListResponse, error) {
	return service.RecordList(types.Pager{
		Offset: form.IntOrDefault("offset", 0),
		Count:  form.IntOrDefault("count", 0),
	})
}

func historyByID(r *http.Request) (*protocol.Record, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	return service.RecordInfo(id)
}

func deleteHistory(r *http.Request) (*protocol.StringResponse, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	if err := service.DeleteRecord(id); err != nil {
		return nil, err
	}
	return &protocol.SuccessResponse, nil
}

func clearHistory() (*protocol.StringResponse, error) {
	if err := service.ClearRecords(); err != nil {
		return nil, err
	}
	return &protocol.SuccessResponse, nil
}
