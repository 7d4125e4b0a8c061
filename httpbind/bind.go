// Package httpbind binds the decode facade into a net/http handler:
// request bodies (and query strings) are decoded against a schema and
// failures are written back as the standard 400 response shape. The
// package is framework-agnostic; adapters for specific routers belong in
// the caller's code.
package httpbind

import (
	"io"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	iocodec "github.com/reoring/iocodec"
)

// Bind decodes the JSON request body against schema. On success it
// returns the decoded value and true. On failure it writes the
// 400 validation response to w and returns false; the handler should
// return immediately.
func Bind(w http.ResponseWriter, r *http.Request, schema any) (any, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, iocodec.NewDecodeError([]iocodec.ValidationError{{
			Field:    "root",
			Message:  "Unable to read request body",
			Expected: iocodec.ResolveCodec(schema).Name(),
			Code:     iocodec.CodeInvalidFormat,
		}}))
		return nil, false
	}
	out, derr := iocodec.DecodeJSON(schema, body)
	if derr != nil {
		de, _ := iocodec.AsDecodeError(derr)
		writeError(w, de)
		return nil, false
	}
	return out, true
}

// BindQuery decodes the URL query string against schema. Query values are
// strings on the wire, so scalar fields are coerced first: "true"/"false"
// to booleans, numeric strings to numbers, "null" to null, and absent
// keys stay absent. Multi-valued keys become arrays.
func BindQuery(w http.ResponseWriter, r *http.Request, schema any) (any, bool) {
	values := r.URL.Query()
	obj := make(map[string]any, len(values))
	for k, vs := range values {
		if len(vs) == 1 {
			obj[k] = coerceScalar(vs[0])
			continue
		}
		arr := make([]any, len(vs))
		for i, v := range vs {
			arr[i] = coerceScalar(v)
		}
		obj[k] = arr
	}
	out, err := iocodec.Decode(schema, obj)
	if err != nil {
		de, _ := iocodec.AsDecodeError(err)
		writeError(w, de)
		return nil, false
	}
	return out, true
}

func coerceScalar(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	case "undefined":
		return iocodec.Undefined
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	return s
}

func writeError(w http.ResponseWriter, de *iocodec.DecodeError) {
	resp := de.Response()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
