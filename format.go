package iocodec

import "github.com/reoring/iocodec/i18n"

// ValidationError is the user-facing diagnostic derived from a raw
// Failure: a dot/bracket field path, a human message, the offending value,
// the expected type name, a machine-readable code, and an optional
// remediation hint.
type ValidationError struct {
	Field      string `json:"field"`
	Message    string `json:"message"`
	Value      any    `json:"value,omitempty"`
	Expected   string `json:"expected"`
	Code       string `json:"code"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Format converts raw failures into deduplicated, field-addressed
// diagnostics. At most one ValidationError per unique field path is
// retained, first seen wins, and first-seen order is preserved.
func Format(fs Failures) []ValidationError {
	out := make([]ValidationError, 0, len(fs))
	seen := make(map[string]struct{}, len(fs))
	for _, f := range fs {
		field := f.Context.FieldPath()
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		out = append(out, formatOne(field, f))
	}
	return out
}

func formatOne(field string, f Failure) ValidationError {
	deepest := f.Context.Deepest().Type
	expected := "unknown"
	var msgs *Messages
	if deepest != nil {
		expected = deepest.Name()
		msgs = messageBinding(deepest)
	}
	absent := IsAbsent(f.Value)
	received := ValueCategory(f.Value)

	ve := ValidationError{Field: field, Expected: expected}
	if !absent {
		ve.Value = f.Value
	}

	// Precedence: custom required > custom invalid > reason text > branded
	// metadata > generic REQUIRED > generic INVALID_TYPE.
	if msgs != nil && absent && msgs.Required != "" {
		ve.Code = overrideCode(msgs, CodeRequired)
		ve.Message = msgs.Required
		ve.Suggestion = msgs.Suggestion
		return ve
	}
	if msgs != nil && !absent && (msgs.InvalidFunc != nil || msgs.Invalid != "") {
		ve.Code = overrideCode(msgs, invalidCodeFor(expected))
		if msgs.InvalidFunc != nil {
			ve.Message = msgs.InvalidFunc(f.Value)
		} else {
			ve.Message = msgs.Invalid
		}
		ve.Suggestion = msgs.Suggestion
		return ve
	}
	if f.Reason != "" {
		ve.Code = CodeUnknown
		if msgs != nil && msgs.Code != "" {
			ve.Code = msgs.Code
		}
		ve.Message = f.Reason
		if msgs != nil {
			ve.Suggestion = msgs.Suggestion
		}
		return ve
	}
	if meta, ok := LookupTypeMeta(expected); ok && !absent {
		ve.Code = meta.Code
		ve.Message = meta.Message
		ve.Suggestion = meta.Suggestion
		return ve
	}
	if absent {
		ve.Code = CodeRequired
		ve.Message = i18n.T(CodeRequired, map[string]string{"field": field})
		ve.Suggestion = "Provide a value of type " + expected
		return ve
	}
	ve.Code = CodeInvalidType
	ve.Message = i18n.T(CodeInvalidType, map[string]string{"expected": expected, "received": received})
	ve.Suggestion = "Change the value to type " + expected
	return ve
}

// messageBinding unwraps WithMessage wrappers (possibly stacked) and
// returns the outermost binding.
func messageBinding(c *Codec) *Messages {
	for c != nil {
		if c.Kind() == KindWithMessage {
			return c.Messages()
		}
		if c.Kind() == KindRecursive {
			c = c.Target()
			continue
		}
		return nil
	}
	return nil
}

func overrideCode(msgs *Messages, fallback string) string {
	if msgs.Code != "" {
		return msgs.Code
	}
	return fallback
}

// invalidCodeFor picks the default code for a custom invalid message:
// the brand's registered code when the type is branded, INVALID_FORMAT
// otherwise.
func invalidCodeFor(expected string) string {
	if meta, ok := LookupTypeMeta(expected); ok {
		return meta.Code
	}
	return CodeInvalidFormat
}
