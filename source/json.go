// Package source adapts external document formats into the untyped value
// model the codec algebra validates: map[string]any, []any, string,
// float64, bool, and nil.
package source

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// JSONBytes decodes a JSON document into the untyped value model. Numbers
// decode as float64, matching the number primitive.
func JSONBytes(data []byte) (any, error) {
	var v any
	if err := gojson.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// JSONReader decodes a JSON document from r into the untyped value model.
func JSONReader(r io.Reader) (any, error) {
	var v any
	dec := gojson.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
