package iocodec

import (
	"errors"
	"fmt"
	"strings"
)

// Failure is a single raw validation failure: the full path context of the
// failing position, the offending input value, and an optional free-text
// reason (set by cross-field validators and transform mappings).
type Failure struct {
	Context Context
	Value   any
	Reason  string
}

// Fail builds a single-entry failure list for the given position.
func Fail(ctx Context, v any) Failures {
	return Failures{{Context: ctx, Value: v}}
}

// FailReason builds a single-entry failure list carrying a free-text
// reason.
func FailReason(ctx Context, v any, reason string) Failures {
	return Failures{{Context: ctx, Value: v, Reason: reason}}
}

// Failures is the collection of raw validation failures produced by a
// decode. It implements error; one failed decode may carry many entries,
// one per violated leaf, never a single flattened string.
type Failures []Failure

// Error summarizes the first few failures.
func (fs Failures) Error() string {
	if len(fs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(fs)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		f := fs[i]
		name := "unknown"
		if t := f.Context.Deepest().Type; t != nil {
			name = t.Name()
		}
		fmt.Fprintf(b, "%s expected at %s", name, f.Context.FieldPath())
	}
	if len(fs) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(fs))
	}
	return b.String()
}

// Append appends failures to the destination, initializing the slice when
// needed.
func Append(dst Failures, more ...Failure) Failures {
	if dst == nil {
		dst = Failures{}
	}
	return append(dst, more...)
}

// AsFailures extracts Failures from an error using errors.As internally.
func AsFailures(err error) (Failures, bool) {
	if err == nil {
		return nil, false
	}
	var fs Failures
	if errors.As(err, &fs) {
		return fs, true
	}
	return nil, false
}
