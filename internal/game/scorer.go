package game

import (
	"github.com/lonng/nano/component"
	"github.com/lonng/nano/session"
	"github.com/lonng/twmj/internal/async"
	"github.com/lonng/twmj/internal/encoding"
	"github.com/lonng/twmj/internal/service"
	"github.com/lonng/twmj/protocol"
)

// Scorer answers scoring requests from table clients. Requests and
// responses are the ones of the http api.
type Scorer struct {
	component.Base
}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score is routed as "Scorer.Score". The database work runs off the
// session goroutine and answers the request it came from.
func (c *Scorer) Score(s *session.Session, req *protocol.ScoreRequest) error {
	mid := s.LastMid()
	async.Run(func() {
		s.ResponseMID(mid, c.score(req))
	})
	return nil
}

// Decompose is routed as "Scorer.Decompose".
func (c *Scorer) Decompose(s *session.Session, req *protocol.DecomposeRequest) error {
	r, err := service.Decompose(req)
	if err != nil {
		return s.Response(encoding.SimpleEncodeError(err))
	}
	return s.Response(r)
}

func (c *Scorer) score(req *protocol.ScoreRequest) interface{} {
	resp, err := service.Score(req)
	if err != nil {
		logger.Debugf("score failed: %v", err)
		return encoding.SimpleEncodeError(err)
	}
	return resp
}
