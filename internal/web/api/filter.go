package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/lonng/twmj/internal/errutil"
	"github.com/lonng/twmj/internal/whitelist"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "api")

// writeFilter guards the endpoints that change stored data.
func writeFilter(ctx context.Context, r *http.Request) (context.Context, error) {
	if whitelist.Enabled() && !whitelist.VerifyAddr(r.RemoteAddr) {
		logger.Warnf("rejected %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
		return ctx, errutil.ErrPermissionDenied
	}
	return ctx, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, errutil.ErrInvalidParameter
	}
	return id, nil
}
