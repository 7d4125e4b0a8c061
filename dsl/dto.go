package dsl

import (
	"fmt"

	iocodec "github.com/reoring/iocodec"
)

// DTO derivation helpers operate purely on record field maps at schema
// construction time, never on data. Passing a non-record schema is a
// programmer error and fails immediately and loudly.

// Pick derives a record codec keeping only the named fields.
func Pick(schema any, keys ...string) *iocodec.Codec {
	base := recordBase(schema, "Pick")
	fields := make(map[string]*iocodec.Codec, len(keys))
	for _, k := range keys {
		f, ok := base.Fields()[k]
		if !ok {
			panic(fmt.Sprintf("dsl.Pick: field %q is not declared on %s", k, base.Name()))
		}
		fields[k] = f
	}
	return rebuildRecord(base, fields)
}

// Omit derives a record codec dropping the named fields.
func Omit(schema any, keys ...string) *iocodec.Codec {
	base := recordBase(schema, "Omit")
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := base.Fields()[k]; !ok {
			panic(fmt.Sprintf("dsl.Omit: field %q is not declared on %s", k, base.Name()))
		}
		drop[k] = struct{}{}
	}
	fields := make(map[string]*iocodec.Codec)
	for k, f := range base.Fields() {
		if _, skip := drop[k]; !skip {
			fields[k] = f
		}
	}
	return rebuildRecord(base, fields)
}

// Partial derives a partial-record codec where every declared field
// becomes optional-by-absence.
func Partial(schema any) *iocodec.Codec {
	base := recordBase(schema, "Partial")
	fields := make(map[string]*iocodec.Codec, len(base.Fields()))
	for k, f := range base.Fields() {
		fields[k] = f
	}
	return PartialRecord(fields)
}

// Intersect derives a record codec whose field map is the union of two
// record codecs' field maps; fields of b win on collision.
func Intersect(a, b any) *iocodec.Codec {
	ba := recordBase(a, "Intersect")
	bb := recordBase(b, "Intersect")
	fields := make(map[string]*iocodec.Codec, len(ba.Fields())+len(bb.Fields()))
	for k, f := range ba.Fields() {
		fields[k] = f
	}
	for k, f := range bb.Fields() {
		fields[k] = f
	}
	if ba.Kind() == iocodec.KindPartialRecord && bb.Kind() == iocodec.KindPartialRecord {
		return PartialRecord(fields)
	}
	return Record(fields)
}

// recordBase resolves schema to its underlying record-shaped codec,
// unwrapping recursive references and combinator wrappers.
func recordBase(schema any, op string) *iocodec.Codec {
	c := iocodec.ResolveCodec(schema)
	for {
		c = c.Target()
		switch c.Kind() {
		case iocodec.KindRecord, iocodec.KindPartialRecord:
			return c
		case iocodec.KindReadonly, iocodec.KindWithMessage, iocodec.KindDefault, iocodec.KindRefinement, iocodec.KindTransform:
			c = c.Inner()
		default:
			panic(fmt.Sprintf("dsl.%s: requires a record codec, got %s", op, c.Name()))
		}
	}
}

func rebuildRecord(base *iocodec.Codec, fields map[string]*iocodec.Codec) *iocodec.Codec {
	if base.Kind() == iocodec.KindPartialRecord {
		return PartialRecord(fields)
	}
	return Record(fields)
}
