package iocodec

import "sort"

// UndefinedValue is the sentinel for an absent value. JSON null maps to Go
// nil; absence (a missing object key, or an omitted argument) maps to
// Undefined so optional and nullable stay distinguishable.
type UndefinedValue struct{}

// Undefined marks an absent value.
var Undefined UndefinedValue

// IsUndefined reports whether v is the absence sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(UndefinedValue)
	return ok
}

// IsAbsent reports whether v is null or undefined.
func IsAbsent(v any) bool {
	return v == nil || IsUndefined(v)
}

// ValueCategory names the runtime category of an input value the way
// diagnostics report it: null, undefined, array, object, or the primitive
// kind.
func ValueCategory(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case UndefinedValue:
		return "undefined"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

// NumberValue normalizes the numeric kinds accepted by the number primitive
// to float64.
func NumberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func sortStrings(ss []string) { sort.Strings(ss) }
