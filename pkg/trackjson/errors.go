package trackjson

import "errors"

var (
	// ErrMalformedInput indicates input that is not a valid JSON object.
	ErrMalformedInput = errors.New("trackjson: malformed input")

	// ErrInvalidRequest indicates an unusable call shape, such as a
	// non-string key type with no DecodeKey configured.
	ErrInvalidRequest = errors.New("trackjson: invalid request")

	// ErrKeyNotFound indicates the requested key is not in the map.
	ErrKeyNotFound = errors.New("trackjson: key not found")
)
