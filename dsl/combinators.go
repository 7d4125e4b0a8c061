package dsl

import (
	"fmt"

	iocodec "github.com/reoring/iocodec"
)

// Optional accepts the base type or absence (undefined). Null is rejected;
// use Nullable for that.
func Optional(c *iocodec.Codec) *iocodec.Codec {
	return Union(c, Undef())
}

// Nullable accepts the base type or null. Absence is rejected; use
// Optional for that.
func Nullable(c *iocodec.Codec) *iocodec.Codec {
	return Union(c, Null())
}

// Default substitutes d when the input is exactly absent (undefined),
// without invoking the inner codec on d. Any explicit value, including
// null and invalid ones, delegates fully to the inner codec.
func Default(c *iocodec.Codec, d any) *iocodec.Codec {
	return iocodec.New(iocodec.Def{
		Kind:    iocodec.KindDefault,
		Name:    c.Name(),
		Inner:   c,
		Default: d,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			if iocodec.IsUndefined(v) {
				return d, nil
			}
			return c.ValidateAt(v, ctx.Retag(c))
		},
		Encode: c.Encode,
	})
}

// FieldError is one cross-field violation reported by a CrossValidate
// function: the field path the violation addresses and its message.
type FieldError struct {
	Field   string
	Message string
}

// CrossValidate runs fn over the decoded value after the base codec
// succeeds. Base failures are returned untouched and fn is never run in
// that case. Each returned FieldError becomes a distinct leaf failure at
// its field path, preserving per-field granularity. A panic inside fn is
// caught and converted into an ordinary failure.
func CrossValidate(c *iocodec.Codec, fn func(decoded any) []FieldError) *iocodec.Codec {
	return iocodec.New(iocodec.Def{
		Kind:  iocodec.KindRefinement,
		Name:  c.Name(),
		Inner: c,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			dec, fs := c.ValidateAt(v, ctx.Retag(c))
			if len(fs) > 0 {
				return nil, fs
			}
			pairs, err := runCross(fn, dec)
			if err != "" {
				return nil, iocodec.FailReason(ctx, v, err)
			}
			if len(pairs) == 0 {
				return dec, nil
			}
			var out iocodec.Failures
			for _, p := range pairs {
				leaf := crossFieldCodec(c, p.Field)
				out = iocodec.Append(out, iocodec.Failure{
					Context: ctx.Child(p.Field, leaf),
					Value:   crossFieldValue(dec, p.Field),
					Reason:  p.Message,
				})
			}
			return nil, out
		},
		Encode: c.Encode,
	})
}

func runCross(fn func(any) []FieldError, dec any) (pairs []FieldError, panicMsg string) {
	defer func() {
		if r := recover(); r != nil {
			pairs = nil
			panicMsg = fmt.Sprint(r)
		}
	}()
	return fn(dec), ""
}

// crossFieldCodec resolves the codec expected at a cross-validated field,
// falling back to the base codec when the field is not declared.
func crossFieldCodec(c *iocodec.Codec, field string) *iocodec.Codec {
	base := c.Target()
	for base.Inner() != nil {
		base = base.Inner().Target()
	}
	if fields := base.Fields(); fields != nil {
		if f, ok := fields[field]; ok {
			return f
		}
	}
	return c
}

func crossFieldValue(dec any, field string) any {
	if m, ok := dec.(map[string]any); ok {
		if v, present := m[field]; present {
			return v
		}
	}
	return nil
}

// Transform maps the decoded value after the base codec succeeds. An error
// or panic raised by mapFn is converted into an ordinary decode failure
// carrying the message; it never propagates out of the decode call.
// Encoding delegates to the base codec: the transform is one-directional
// and has no implicit inverse. Is reports decode success, so it accepts
// wire-shaped input, not the post-transform shape.
func Transform(c *iocodec.Codec, mapFn func(decoded any) (any, error)) *iocodec.Codec {
	return iocodec.New(iocodec.Def{
		Kind:  iocodec.KindTransform,
		Name:  c.Name(),
		Inner: c,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			dec, fs := c.ValidateAt(v, ctx.Retag(c))
			if len(fs) > 0 {
				return nil, fs
			}
			out, errMsg := runTransform(mapFn, dec)
			if errMsg != "" {
				return nil, iocodec.FailReason(ctx, v, errMsg)
			}
			return out, nil
		},
		Encode: c.Encode,
	})
}

func runTransform(fn func(any) (any, error), dec any) (out any, errMsg string) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			errMsg = fmt.Sprint(r)
		}
	}()
	v, err := fn(dec)
	if err != nil {
		return nil, err.Error()
	}
	return v, ""
}

// WithMessage attaches custom diagnostic text to a codec. The binding
// never alters the pass/fail decision; it is consulted only by the error
// formatter, and only for failures at the wrapped codec's own position.
func WithMessage(c *iocodec.Codec, m iocodec.Messages) *iocodec.Codec {
	msgs := m
	return iocodec.New(iocodec.Def{
		Kind:     iocodec.KindWithMessage,
		Name:     c.Name(),
		Inner:    c,
		Messages: &msgs,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			// context deliberately not retagged: the deepest entry stays on
			// the wrapper so the formatter can find the binding
			return c.ValidateAt(v, ctx)
		},
		Encode: c.Encode,
	})
}

// WithMessageFunc is the shorthand binding a single value-aware invalid
// message.
func WithMessageFunc(c *iocodec.Codec, invalid func(v any) string) *iocodec.Codec {
	return WithMessage(c, iocodec.Messages{InvalidFunc: invalid})
}
