package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lonng/nex"
	"github.com/lonng/twmj/internal/service"
	"github.com/lonng/twmj/protocol"
)

func MakeScoreService() http.Handler {
	router := mux.NewRouter()
	router.Handle("/v1/score", nex.Handler(scoreHandler)).Methods("POST")         // 算台
	router.Handle("/v1/decompose", nex.Handler(decomposeHandler)).Methods("POST") // 拆牌
	router.Handle("/v1/rules", nex.Handler(rulesHandler)).Methods("GET")          // 規則列表
	return router
}

// scoreHandler only saves to the history for whitelisted clients.
func scoreHandler(r *http.Request, req *protocol.ScoreRequest) (*protocol.ScoreResponse, error) {
	if req.Save {
		if _, err := writeFilter(r.Context(), r); err != nil {
			return nil, err
		}
	}
	return service.Score(req)
}

func decomposeHandler(req *protocol.DecomposeRequest) (*protocol.DecomposeResponse, error) {
	return service.Decompose(req)
}

func rulesHandler() (*protocol.RuleListResponse, error) {
	return service.Rules(), nil
}
