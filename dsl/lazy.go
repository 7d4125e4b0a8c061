package dsl

import (
	iocodec "github.com/reoring/iocodec"
)

// Lazy builds a recursive codec: thunk is resolved at first use, so a
// schema can be defined in terms of itself without infinite construction.
// Resolving the thunk re-entrantly (the thunk calling back into the codec
// it is constructing) is a programmer error and panics.
func Lazy(name string, thunk func() *iocodec.Codec) *iocodec.Codec {
	var c *iocodec.Codec
	c = iocodec.New(iocodec.Def{
		Kind:    iocodec.KindRecursive,
		Name:    name,
		Resolve: thunk,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			return c.Target().ValidateAt(v, ctx)
		},
		Encode: func(v any) any {
			return c.Target().Encode(v)
		},
	})
	return c
}

// Readonly wraps a codec without changing its validation behavior. The
// wrapper only marks intent (decoded values should not be mutated) and is
// transparent in diagnostics.
func Readonly(inner *iocodec.Codec) *iocodec.Codec {
	return iocodec.New(iocodec.Def{
		Kind:  iocodec.KindReadonly,
		Name:  inner.Name(),
		Inner: inner,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			return inner.ValidateAt(v, ctx.Retag(inner))
		},
		Encode: inner.Encode,
	})
}
