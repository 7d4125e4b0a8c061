package dsl

import (
	"strconv"
	"strings"

	iocodec "github.com/reoring/iocodec"
)

// Array builds a codec validating every element of a slice against elem,
// pushing a numeric-string context key per index.
func Array(elem *iocodec.Codec) *iocodec.Codec {
	return iocodec.New(iocodec.Def{
		Kind: iocodec.KindArray,
		Name: "Array<" + elem.Name() + ">",
		Elem: elem,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			src, ok := v.([]any)
			if !ok {
				return nil, iocodec.Fail(ctx, v)
			}
			out := make([]any, len(src))
			var fs iocodec.Failures
			for i, el := range src {
				dec, ffs := elem.ValidateAt(el, ctx.Child(strconv.Itoa(i), elem))
				if len(ffs) > 0 {
					fs = iocodec.Append(fs, ffs...)
					continue
				}
				out[i] = dec
			}
			if len(fs) > 0 {
				return nil, fs
			}
			return out, nil
		},
		Encode: func(v any) any {
			src, ok := v.([]any)
			if !ok {
				return v
			}
			out := make([]any, len(src))
			for i, el := range src {
				out[i] = elem.Encode(el)
			}
			return out
		},
	})
}

// Tuple builds a fixed-length positional codec. A length mismatch is a
// single failure at the tuple's own path.
func Tuple(members ...*iocodec.Codec) *iocodec.Codec {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name()
	}
	return iocodec.New(iocodec.Def{
		Kind:    iocodec.KindTuple,
		Name:    "[" + strings.Join(names, ", ") + "]",
		Members: members,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			src, ok := v.([]any)
			if !ok {
				return nil, iocodec.Fail(ctx, v)
			}
			if len(src) != len(members) {
				return nil, iocodec.FailReason(ctx, v,
					"Expected tuple of length "+strconv.Itoa(len(members))+" but received length "+strconv.Itoa(len(src)))
			}
			out := make([]any, len(src))
			var fs iocodec.Failures
			for i, m := range members {
				dec, ffs := m.ValidateAt(src[i], ctx.Child(strconv.Itoa(i), m))
				if len(ffs) > 0 {
					fs = iocodec.Append(fs, ffs...)
					continue
				}
				out[i] = dec
			}
			if len(fs) > 0 {
				return nil, fs
			}
			return out, nil
		},
		Encode: func(v any) any {
			src, ok := v.([]any)
			if !ok {
				return v
			}
			out := make([]any, len(src))
			for i, el := range src {
				if i < len(members) {
					out[i] = members[i].Encode(el)
				} else {
					out[i] = el
				}
			}
			return out
		},
	})
}
