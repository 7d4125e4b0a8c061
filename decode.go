package iocodec

import (
	"errors"
	"fmt"

	"github.com/reoring/iocodec/source"
)

// CodecProvider is implemented by derived schema types that expose an
// underlying codec (for example DTO wrappers). The facade resolves either a
// *Codec or a CodecProvider.
type CodecProvider interface {
	Codec() *Codec
}

// DecodeError is the structured failure raised by the facade: the formatted
// field-level error list plus the transport-shaped response the
// request-pipeline collaborator maps to HTTP.
type DecodeError struct {
	errs []ValidationError
}

// NewDecodeError wraps formatted validation errors.
func NewDecodeError(errs []ValidationError) *DecodeError {
	return &DecodeError{errs: errs}
}

func (e *DecodeError) Error() string {
	if len(e.errs) == 0 {
		return "iocodec: validation failed"
	}
	first := e.errs[0]
	if len(e.errs) == 1 {
		return fmt.Sprintf("iocodec: validation failed: %s: %s", first.Field, first.Message)
	}
	return fmt.Sprintf("iocodec: validation failed: %s: %s (and %d more)", first.Field, first.Message, len(e.errs)-1)
}

// Errors returns the field-level diagnostics.
func (e *DecodeError) Errors() []ValidationError { return e.errs }

// Response is the transport-level shape of a validation failure.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Error      string            `json:"error"`
	Errors     []ValidationError `json:"errors"`
}

// Response returns the 400 Bad Request payload for this failure.
func (e *DecodeError) Response() Response {
	return Response{
		StatusCode: 400,
		Message:    "Validation failed",
		Error:      "Bad Request",
		Errors:     e.errs,
	}
}

// AsDecodeError extracts a *DecodeError using errors.As internally.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// ResolveCodec resolves schema to its underlying codec. It accepts a
// *Codec or any CodecProvider and panics on anything else: passing a
// non-codec is a construction-time programmer error, not a validation
// failure.
func ResolveCodec(schema any) *Codec {
	switch t := schema.(type) {
	case *Codec:
		if t == nil {
			panic("iocodec: nil codec")
		}
		return t
	case CodecProvider:
		c := t.Codec()
		if c == nil {
			panic("iocodec: CodecProvider returned nil codec")
		}
		return c
	}
	panic(fmt.Sprintf("iocodec: %T is not a codec or CodecProvider", schema))
}

// Decode validates v against schema and returns the decoded value, or a
// *DecodeError carrying the formatted error list. This is the only layer
// that converts collected failures into an error; everything beneath it
// returns result values.
func Decode(schema any, v any) (any, error) {
	c := ResolveCodec(schema)
	out, fs := c.Decode(v)
	if len(fs) > 0 {
		return nil, NewDecodeError(Format(fs))
	}
	return out, nil
}

// MustDecode is Decode with throw semantics: it panics with the
// *DecodeError on failure. Callers binding the engine into a request
// pipeline recover the error at the transport boundary.
func MustDecode(schema any, v any) any {
	out, err := Decode(schema, v)
	if err != nil {
		panic(err)
	}
	return out
}

// DecodeJSON decodes a JSON document and validates it against schema.
func DecodeJSON(schema any, data []byte) (any, error) {
	v, err := source.JSONBytes(data)
	if err != nil {
		return nil, NewDecodeError([]ValidationError{{
			Field:    "root",
			Message:  "Invalid JSON: " + err.Error(),
			Expected: ResolveCodec(schema).Name(),
			Code:     CodeInvalidFormat,
		}})
	}
	return Decode(schema, v)
}

// DecodeYAML decodes a YAML document and validates it against schema.
func DecodeYAML(schema any, data []byte) (any, error) {
	v, err := source.YAMLBytes(data)
	if err != nil {
		return nil, NewDecodeError([]ValidationError{{
			Field:    "root",
			Message:  "Invalid YAML: " + err.Error(),
			Expected: ResolveCodec(schema).Name(),
			Code:     CodeInvalidFormat,
		}})
	}
	return Decode(schema, v)
}
