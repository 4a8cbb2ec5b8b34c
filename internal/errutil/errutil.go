package errutil

import (
	"github.com/lonng/twmj/pkg/tile"
	"github.com/pkg/errors"
)

var (
	ErrBadRoute         = errors.New("bad route")
	ErrNotFound         = errors.New("not found")
	ErrIllegalParameter = errors.New("illegal parameter")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrDBOperation      = errors.New("database opertaion failed")
	ErrServerInternal   = errors.New("server internal error")
	ErrInitFailed       = errors.New("initialize failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrTemplateNotFound = errors.New("template not found")
	ErrHistoryNotFound  = errors.New("history not found")
	ErrTransferNotFound = errors.New("transfer not found or expired")
	ErrTransferExists   = errors.New("transfer uuid still alive")
	ErrIllegalContext   = errors.New("illegal game context")
	ErrMissingBaseValue = errors.New("template misses base_value or multiplier_value")
	ErrUnknownRuleKey   = errors.New("unknown rule key")
	ErrUnknownTile      = tile.ErrUnknownTile
	ErrTooManyCopies    = tile.ErrTooManyCopies
)

// Code maps err, unwrapping any context added with errors.Wrap, to the
// numeric code sent to clients.
func Code(err error) int {
	if c, ok := errs[errors.Cause(err)]; ok {
		return c
	}
	return Unknown
}
