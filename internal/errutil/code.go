package errutil

const (
	codeBase = 1000
)

const (
	Unknown = codeBase + iota
	codeBadRoute
	codeNotFound
	codeIllegalParameter
	codeInvalidParameter
	codeDBOperation
	codeServerInternal
	codeInitFailed
	codePermissionDenied
	codeTemplateNotFound
	codeHistoryNotFound
	codeTransferNotFound
	codeTransferExists
	codeIllegalContext
	codeMissingBaseValue
	codeUnknownRuleKey
	codeUnknownTile
	codeTooManyCopies
)

var errs = map[error]int{
	ErrBadRoute:         codeBadRoute,
	ErrNotFound:         codeNotFound,
	ErrIllegalParameter: codeIllegalParameter,
	ErrInvalidParameter: codeInvalidParameter,
	ErrDBOperation:      codeDBOperation,
	ErrServerInternal:   codeServerInternal,
	ErrInitFailed:       codeInitFailed,
	ErrPermissionDenied: codePermissionDenied,
	ErrTemplateNotFound: codeTemplateNotFound,
	ErrHistoryNotFound:  codeHistoryNotFound,
	ErrTransferNotFound: codeTransferNotFound,
	ErrTransferExists:   codeTransferExists,
	ErrIllegalContext:   codeIllegalContext,
	ErrMissingBaseValue: codeMissingBaseValue,
	ErrUnknownRuleKey:   codeUnknownRuleKey,
	ErrUnknownTile:      codeUnknownTile,
	ErrTooManyCopies:    codeTooManyCopies,
}
