package dsl

import (
	iocodec "github.com/reoring/iocodec"
)

// primitive builds a leaf codec from an acceptance function. accept returns
// the decoded value and whether the input belongs to the primitive type.
func primitive(name string, accept func(any) (any, bool)) *iocodec.Codec {
	return iocodec.New(iocodec.Def{
		Kind: iocodec.KindPrimitive,
		Name: name,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			out, ok := accept(v)
			if !ok {
				return nil, iocodec.Fail(ctx, v)
			}
			return out, nil
		},
	})
}

var (
	stringCodec = primitive("string", func(v any) (any, bool) {
		s, ok := v.(string)
		return s, ok
	})
	numberCodec = primitive("number", func(v any) (any, bool) {
		n, ok := iocodec.NumberValue(v)
		return n, ok
	})
	booleanCodec = primitive("boolean", func(v any) (any, bool) {
		b, ok := v.(bool)
		return b, ok
	})
	nullCodec = primitive("null", func(v any) (any, bool) {
		return nil, v == nil
	})
	undefinedCodec = primitive("undefined", func(v any) (any, bool) {
		return iocodec.Undefined, iocodec.IsUndefined(v)
	})
	unknownCodec = primitive("unknown", func(v any) (any, bool) {
		return v, true
	})
)

// String returns the string primitive.
func String() *iocodec.Codec { return stringCodec }

// Number returns the number primitive. All numeric inputs normalize to
// float64.
func Number() *iocodec.Codec { return numberCodec }

// Boolean returns the boolean primitive.
func Boolean() *iocodec.Codec { return booleanCodec }

// Null accepts exactly JSON null.
func Null() *iocodec.Codec { return nullCodec }

// Undef accepts exactly the absence sentinel iocodec.Undefined.
func Undef() *iocodec.Codec { return undefinedCodec }

// Unknown accepts any value unchanged.
func Unknown() *iocodec.Codec { return unknownCodec }
