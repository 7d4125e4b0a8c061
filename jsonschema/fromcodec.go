package jsonschema

import (
	iocodec "github.com/reoring/iocodec"
)

// FromCodec converts a codec's algebraic shape into a JSON Schema.
// Recursive codecs are guarded by a visiting set keyed on codec identity:
// re-entering a codec currently being exported emits a $ref to its name
// instead of descending forever.
func FromCodec(schema any) *Schema {
	c := iocodec.ResolveCodec(schema)
	e := &exporter{visiting: map[*iocodec.Codec]bool{}}
	return e.export(c)
}

type exporter struct {
	visiting map[*iocodec.Codec]bool
}

func (e *exporter) export(c *iocodec.Codec) *Schema {
	switch c.Kind() {
	case iocodec.KindPrimitive:
		return primitiveSchema(c.Name())
	case iocodec.KindRecord:
		return e.recordSchema(c, true)
	case iocodec.KindPartialRecord:
		return e.recordSchema(c, false)
	case iocodec.KindDictionary:
		return &Schema{Type: "object", AdditionalProperties: e.export(c.Elem())}
	case iocodec.KindArray:
		return &Schema{Type: "array", Items: e.export(c.Elem())}
	case iocodec.KindTuple:
		n := len(c.Members())
		items := make([]*Schema, n)
		for i, m := range c.Members() {
			items[i] = e.export(m)
		}
		return &Schema{Type: "array", PrefixItems: items, MinItems: &n, MaxItems: &n}
	case iocodec.KindUnion:
		return e.unionSchema(c)
	case iocodec.KindIntersection:
		all := make([]*Schema, len(c.Members()))
		for i, m := range c.Members() {
			all[i] = e.export(m)
		}
		return &Schema{AllOf: all}
	case iocodec.KindLiteral:
		return literalSchema(c.LiteralValue())
	case iocodec.KindKeyof:
		enum := make([]any, len(c.Keys()))
		for i, k := range c.Keys() {
			enum[i] = k
		}
		return &Schema{Type: "string", Enum: enum}
	case iocodec.KindBranded:
		s := e.export(c.Inner())
		s.Format = brandFormat(c.Name())
		return s
	case iocodec.KindRecursive:
		if e.visiting[c] {
			return &Schema{Ref: "#/$defs/" + c.Name()}
		}
		e.visiting[c] = true
		defer delete(e.visiting, c)
		return e.export(c.Target())
	case iocodec.KindDefault:
		s := e.export(c.Inner())
		s.Default = c.DefaultValue()
		return s
	case iocodec.KindReadonly, iocodec.KindWithMessage, iocodec.KindRefinement, iocodec.KindTransform:
		return e.export(c.Inner())
	default:
		return &Schema{}
	}
}

func (e *exporter) recordSchema(c *iocodec.Codec, withRequired bool) *Schema {
	props := make(map[string]*Schema, len(c.Fields()))
	var required []string
	for _, k := range c.FieldOrder() {
		f := c.Fields()[k]
		props[k] = e.export(f)
		if withRequired && !acceptsUndefined(f) {
			required = append(required, k)
		}
	}
	return &Schema{Type: "object", Properties: props, Required: required}
}

func (e *exporter) unionSchema(c *iocodec.Codec) *Schema {
	var branches []*Schema
	for _, m := range c.Members() {
		// undefined has no JSON representation; an optional field is
		// already expressed by omission from required
		if m.Kind() == iocodec.KindPrimitive && m.Name() == "undefined" {
			continue
		}
		branches = append(branches, e.export(m))
	}
	if len(branches) == 1 {
		return branches[0]
	}
	return &Schema{OneOf: branches}
}

func primitiveSchema(name string) *Schema {
	switch name {
	case "string", "number", "boolean":
		return &Schema{Type: name}
	case "null", "undefined":
		return &Schema{Type: "null"}
	default:
		// unknown accepts anything
		return &Schema{}
	}
}

func literalSchema(v any) *Schema {
	s := &Schema{Const: v}
	switch v.(type) {
	case string:
		s.Type = "string"
	case bool:
		s.Type = "boolean"
	case nil:
		s.Type = "null"
		s.Const = nil
	default:
		if _, ok := iocodec.NumberValue(v); ok {
			s.Type = "number"
		}
	}
	return s
}

// acceptsUndefined reports whether a field codec tolerates absence, which
// decides membership in a record schema's required list.
func acceptsUndefined(c *iocodec.Codec) bool {
	c = c.Target()
	switch c.Kind() {
	case iocodec.KindPrimitive:
		return c.Name() == "undefined"
	case iocodec.KindUnion:
		for _, m := range c.Members() {
			if acceptsUndefined(m) {
				return true
			}
		}
		return false
	case iocodec.KindDefault:
		return true
	case iocodec.KindReadonly, iocodec.KindWithMessage, iocodec.KindRefinement, iocodec.KindTransform, iocodec.KindBranded:
		return acceptsUndefined(c.Inner())
	default:
		return false
	}
}

func brandFormat(name string) string {
	switch name {
	case "Email":
		return "email"
	case "UUID":
		return "uuid"
	case "URL":
		return "uri"
	case "DateString":
		return "date"
	case "DateTimeString":
		return "date-time"
	case "IPv4":
		return "ipv4"
	case "IPv6":
		return "ipv6"
	default:
		return name
	}
}
