package dsl

import (
	iocodec "github.com/reoring/iocodec"
)

// BrandString narrows the string primitive with a refinement predicate
// under a stable name. Decoding succeeds only when the value is a string
// AND the predicate holds; encode is the identity back to the string.
// Predicate failure is atomic: a branded leaf reports a single failure
// tagged with the brand name as the expected type.
func BrandString(name string, pred func(s string) bool) *iocodec.Codec {
	return iocodec.New(iocodec.Def{
		Kind:  iocodec.KindBranded,
		Name:  name,
		Inner: String(),
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			s, ok := v.(string)
			if !ok || !pred(s) {
				return nil, iocodec.Fail(ctx, v)
			}
			return s, nil
		},
	})
}

// BrandNumber narrows the number primitive with a refinement predicate
// under a stable name.
func BrandNumber(name string, pred func(n float64) bool) *iocodec.Codec {
	return iocodec.New(iocodec.Def{
		Kind:  iocodec.KindBranded,
		Name:  name,
		Inner: Number(),
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			n, ok := iocodec.NumberValue(v)
			if !ok || !pred(n) {
				return nil, iocodec.Fail(ctx, v)
			}
			return n, nil
		},
	})
}
