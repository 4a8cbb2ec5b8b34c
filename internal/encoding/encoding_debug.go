//go:build debug
// +build debug

package encoding

import (
	"github.com/lonng/twmj/internal/errutil"
	"github.com/lonng/twmj/protocol"
)

func encodeError(e error) interface{} {
	e = classify(e)
	return protocol.ErrorResponse{Code: errutil.Code(e), Error: e.Error()}
}
