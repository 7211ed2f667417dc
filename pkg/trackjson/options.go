package trackjson

import "fmt"

// Options controls key conversion between JSON object keys and the
// container's key type. A nil *Options is valid and uses the defaults,
// which require K to be string.
type Options[K comparable] struct {
	// DecodeKey converts a decoded JSON object key into the
	// container's canonical key representation. Optional when K is
	// string (identity is used).
	DecodeKey func(key string) (K, error)

	// EncodeKey converts a container key into a JSON object key.
	// Optional when K is string; other key types fall back to
	// fmt.Sprint.
	EncodeKey func(key K) string
}

func (o *Options[K]) decodeKey(s string) (K, error) {
	if o != nil && o.DecodeKey != nil {
		return o.DecodeKey(s)
	}
	if k, ok := any(s).(K); ok {
		return k, nil
	}
	var zero K
	return zero, fmt.Errorf("%w: no DecodeKey configured for key type %T", ErrInvalidRequest, zero)
}

func (o *Options[K]) encodeKey(k K) string {
	if o != nil && o.EncodeKey != nil {
		return o.EncodeKey(k)
	}
	if s, ok := any(k).(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
