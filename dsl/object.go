package dsl

import (
	"sort"
	"strings"

	iocodec "github.com/reoring/iocodec"
)

// Record builds an object codec with every declared field required.
// Validation checks all fields and collects all failures; a missing,
// null, or undefined required field fails with the field's codec as the
// expected type at that path. Unknown keys pass through unchanged.
func Record(fields map[string]*iocodec.Codec) *iocodec.Codec {
	order := fieldOrder(fields)
	return iocodec.New(iocodec.Def{
		Kind:   iocodec.KindRecord,
		Name:   recordName(fields, order),
		Fields: fields,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			src, ok := v.(map[string]any)
			if !ok {
				return nil, iocodec.Fail(ctx, v)
			}
			out := copyMap(src)
			var fs iocodec.Failures
			for _, k := range order {
				f := fields[k]
				val, exists := src[k]
				if !exists {
					val = iocodec.Undefined
				}
				dec, ffs := f.ValidateAt(val, ctx.Child(k, f))
				if len(ffs) > 0 {
					fs = iocodec.Append(fs, ffs...)
					continue
				}
				if iocodec.IsUndefined(dec) {
					// field is absent and its codec allows absence
					delete(out, k)
					continue
				}
				out[k] = dec
			}
			if len(fs) > 0 {
				return nil, fs
			}
			return out, nil
		},
		Encode: func(v any) any { return encodeFields(v, fields) },
	})
}

// PartialRecord builds an object codec where absence of a declared key is
// not a failure; present values must still validate.
func PartialRecord(fields map[string]*iocodec.Codec) *iocodec.Codec {
	order := fieldOrder(fields)
	return iocodec.New(iocodec.Def{
		Kind:   iocodec.KindPartialRecord,
		Name:   "Partial<" + recordName(fields, order) + ">",
		Fields: fields,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			src, ok := v.(map[string]any)
			if !ok {
				return nil, iocodec.Fail(ctx, v)
			}
			out := copyMap(src)
			var fs iocodec.Failures
			for _, k := range order {
				f := fields[k]
				val, exists := src[k]
				if !exists || iocodec.IsUndefined(val) {
					continue
				}
				dec, ffs := f.ValidateAt(val, ctx.Child(k, f))
				if len(ffs) > 0 {
					fs = iocodec.Append(fs, ffs...)
					continue
				}
				out[k] = dec
			}
			if len(fs) > 0 {
				return nil, fs
			}
			return out, nil
		},
		Encode: func(v any) any { return encodeFields(v, fields) },
	})
}

// Dictionary builds a codec for a string-keyed map whose every value must
// validate against elem. Keys are visited in sorted order so failure order
// is deterministic.
func Dictionary(elem *iocodec.Codec) *iocodec.Codec {
	return iocodec.New(iocodec.Def{
		Kind: iocodec.KindDictionary,
		Name: "{ [key: string]: " + elem.Name() + " }",
		Elem: elem,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			src, ok := v.(map[string]any)
			if !ok {
				return nil, iocodec.Fail(ctx, v)
			}
			keys := make([]string, 0, len(src))
			for k := range src {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			out := make(map[string]any, len(src))
			var fs iocodec.Failures
			for _, k := range keys {
				dec, ffs := elem.ValidateAt(src[k], ctx.Child(k, elem))
				if len(ffs) > 0 {
					fs = iocodec.Append(fs, ffs...)
					continue
				}
				out[k] = dec
			}
			if len(fs) > 0 {
				return nil, fs
			}
			return out, nil
		},
		Encode: func(v any) any {
			src, ok := v.(map[string]any)
			if !ok {
				return v
			}
			out := make(map[string]any, len(src))
			for k, val := range src {
				out[k] = elem.Encode(val)
			}
			return out
		},
	})
}

func fieldOrder(fields map[string]*iocodec.Codec) []string {
	ks := make([]string, 0, len(fields))
	for k := range fields {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

func recordName(fields map[string]*iocodec.Codec, order []string) string {
	if len(order) == 0 {
		return "{}"
	}
	b := &strings.Builder{}
	b.WriteString("{ ")
	for i, k := range order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(fields[k].Name())
	}
	b.WriteString(" }")
	return b.String()
}

func copyMap(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func encodeFields(v any, fields map[string]*iocodec.Codec) any {
	src, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := copyMap(src)
	for k, f := range fields {
		if val, present := src[k]; present {
			out[k] = f.Encode(val)
		}
	}
	return out
}
