//Package types define all common types
package types

//Closer the close handler
type Closer func()

// Pager is the offset/count pair of a listing request.
type Pager struct {
	Offset int
	Count  int
}
