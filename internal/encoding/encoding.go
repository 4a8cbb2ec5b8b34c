//Package encoding encoding the error or response
package encoding

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/lonng/twmj/internal/errutil"
	"github.com/pkg/errors"
)

func EncodeResponse(w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

func EncodeError(w http.ResponseWriter, e error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(encodeError(e))
}

// SimpleEncodeError is the nex error encoder.
func SimpleEncodeError(err error) interface{} {
	return encodeError(err)
}

// classify gives malformed request bodies the illegal parameter code.
func classify(e error) error {
	cause := errors.Cause(e)
	if cause == io.EOF || cause == io.ErrUnexpectedEOF {
		return errors.Wrap(errutil.ErrIllegalParameter, e.Error())
	}
	switch cause.(type) {
	case *json.SyntaxError, *json.UnmarshalTypeError:
		return errors.Wrap(errutil.ErrIllegalParameter, e.Error())
	}
	return e
}
