//go:build !debug
// +build !debug

package encoding

import (
	"github.com/lonng/twmj/internal/errutil"
	"github.com/lonng/twmj/protocol"
)

func encodeError(e error) interface{} {
	e = classify(e)
	var (
		code = errutil.Code(e)
		err  = e.Error()
	)

	if code == errutil.Unknown {
		err = errutil.ErrServerInternal.Error()
	}
	return protocol.ErrorResponse{Code: code, Error: err}
}
