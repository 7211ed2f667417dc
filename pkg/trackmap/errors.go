package trackmap

import "errors"

var (
	// ErrEmptyMap indicates an operation that needs at least one entry
	// was called on an empty map.
	ErrEmptyMap = errors.New("trackmap: empty map")
)
