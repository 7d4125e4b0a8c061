package dsl

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	iocodec "github.com/reoring/iocodec"
)

// Literal builds a codec accepting exactly the given value.
func Literal(value any) *iocodec.Codec {
	return iocodec.New(iocodec.Def{
		Kind:    iocodec.KindLiteral,
		Name:    literalName(value),
		Literal: value,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			if !literalEqual(v, value) {
				return nil, iocodec.Fail(ctx, v)
			}
			return value, nil
		},
	})
}

// Keyof builds a string-enum codec over the own keys of obj.
func Keyof(obj map[string]any) *iocodec.Codec {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	set := make(map[string]struct{}, len(keys))
	quoted := make([]string, len(keys))
	for i, k := range keys {
		set[k] = struct{}{}
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return iocodec.New(iocodec.Def{
		Kind: iocodec.KindKeyof,
		Name: strings.Join(quoted, " | "),
		Keys: keys,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			s, ok := v.(string)
			if !ok {
				return nil, iocodec.Fail(ctx, v)
			}
			if _, member := set[s]; !member {
				return nil, iocodec.Fail(ctx, v)
			}
			return s, nil
		},
	})
}

func literalEqual(a, b any) bool {
	if an, ok := iocodec.NumberValue(a); ok {
		if bn, ok2 := iocodec.NumberValue(b); ok2 {
			return an == bn
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func literalName(v any) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("%q", t)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", t)
	}
}
