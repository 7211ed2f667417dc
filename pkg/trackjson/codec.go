// Package trackjson converts trackmap containers to and from JSON
// objects.
//
// The adapter is a plain collaborator of the container: decoding goes
// through Replace and Merge only, so change tracking behaves exactly
// as if the caller had made those calls itself. Object key order is
// preserved in both directions.
package trackjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/trackmap/pkg/trackmap"
)

// Marshal encodes the map's live entries as a JSON object in iteration
// order.
func Marshal[K comparable, V any](m *trackmap.Map[K, V], opts *Options[K]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var encErr error
	m.Range(func(k K, v V) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		kb, err := json.Marshal(opts.encodeKey(k))
		if err != nil {
			encErr = fmt.Errorf("encode key %v: %w", k, err)
			return false
		}
		buf.Write(kb)
		buf.WriteByte(':')

		vb, err := json.Marshal(v)
		if err != nil {
			encErr = fmt.Errorf("encode value for key %v: %w", k, err)
			return false
		}
		buf.Write(vb)
		return true
	})
	if encErr != nil {
		return nil, encErr
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalKey encodes the value stored under key. Returns ErrKeyNotFound
// when the key is absent; the map's default policy does not apply.
func MarshalKey[K comparable, V any](m *trackmap.Map[K, V], key K) ([]byte, error) {
	v, ok := m.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return json.Marshal(v)
}

// Unmarshal decodes a JSON object and REPLACES the map's contents with
// it, in document order. Input may be UTF-8 (optionally BOM-prefixed)
// or UTF-16 with BOM. Decode failures are reported as
// ErrMalformedInput.
func Unmarshal[K comparable, V any](m *trackmap.Map[K, V], data []byte, opts *Options[K]) error {
	entries, err := decodeObject[K, V](data, opts)
	if err != nil {
		return err
	}
	m.Replace(entries)
	return nil
}

// UnmarshalMerge decodes a JSON object and MERGES it into the map, in
// document order, with incoming values winning on collision.
func UnmarshalMerge[K comparable, V any](m *trackmap.Map[K, V], data []byte, opts *Options[K]) error {
	entries, err := decodeObject[K, V](data, opts)
	if err != nil {
		return err
	}
	m.Merge(entries)
	return nil
}

// decodeObject walks the top-level object token by token so document
// order survives the decode. Duplicate keys follow encoding/json
// semantics: the last occurrence wins once the entries hit the map.
func decodeObject[K comparable, V any](data []byte, opts *Options[K]) ([]trackmap.Entry[K, V], error) {
	text, err := toUTF8(data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(text))
	tok, err := dec.Token()
	if err != nil {
		return nil, malformed(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrMalformedInput)
	}

	var entries []trackmap.Entry[K, V]
	for dec.More() {
		kTok, err := dec.Token()
		if err != nil {
			return nil, malformed(err)
		}
		ks, ok := kTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is not a string", ErrMalformedInput)
		}
		key, err := opts.decodeKey(ks)
		if err != nil {
			return nil, err
		}

		var value V
		if err := dec.Decode(&value); err != nil {
			return nil, malformed(err)
		}
		entries = append(entries, trackmap.Entry[K, V]{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, malformed(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing content after object", ErrMalformedInput)
	}
	return entries, nil
}

func malformed(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformedInput, err)
}

// toUTF8 normalizes the input encoding. JSON interchange is UTF-8, but
// Windows tooling routinely emits UTF-16 with a BOM, so both UTF-16
// byte orders are transcoded and a UTF-8 BOM is stripped.
func toUTF8(data []byte) ([]byte, error) {
	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return data[3:], nil
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return transcodeUTF16(data, unicode.LittleEndian)
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return transcodeUTF16(data, unicode.BigEndian)
	}
	return data, nil
}

func transcodeUTF16(data []byte, endianness unicode.Endianness) ([]byte, error) {
	decoder := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, malformed(err)
	}
	return out, nil
}
