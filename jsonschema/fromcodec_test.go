package jsonschema_test

import (
	"reflect"
	"testing"

	iocodec "github.com/reoring/iocodec"
	"github.com/reoring/iocodec/brands"
	g "github.com/reoring/iocodec/dsl"
	js "github.com/reoring/iocodec/jsonschema"
)

// TestFromCodec_Record exports properties and a required list that
// excludes optional and defaulted fields.
func TestFromCodec_Record(t *testing.T) {
	user := g.Record(map[string]*iocodec.Codec{
		"name":     g.String(),
		"age":      g.Number(),
		"nickname": g.Optional(g.String()),
		"active":   g.Default(g.Boolean(), true),
	})
	s := js.FromCodec(user)
	if s.Type != "object" {
		t.Fatalf("expected object, got %q", s.Type)
	}
	if s.Properties["name"].Type != "string" || s.Properties["age"].Type != "number" {
		t.Fatalf("unexpected properties: %+v", s.Properties)
	}
	// optional member collapses to its inner branch
	if s.Properties["nickname"].Type != "string" {
		t.Fatalf("expected optional to export inner type, got %+v", s.Properties["nickname"])
	}
	if s.Properties["active"].Default != true {
		t.Fatalf("expected default carried, got %+v", s.Properties["active"])
	}
	want := []string{"age", "name"}
	if !reflect.DeepEqual(s.Required, want) {
		t.Fatalf("expected required %v, got %v", want, s.Required)
	}
}

// TestFromCodec_Collections covers array, tuple, and dictionary export.
func TestFromCodec_Collections(t *testing.T) {
	arr := js.FromCodec(g.Array(g.String()))
	if arr.Type != "array" || arr.Items.Type != "string" {
		t.Fatalf("unexpected array schema: %+v", arr)
	}

	tup := js.FromCodec(g.Tuple(g.String(), g.Number()))
	if len(tup.PrefixItems) != 2 || *tup.MinItems != 2 || *tup.MaxItems != 2 {
		t.Fatalf("unexpected tuple schema: %+v", tup)
	}

	dict := js.FromCodec(g.Dictionary(g.Number()))
	ap, ok := dict.AdditionalProperties.(*js.Schema)
	if !ok || ap.Type != "number" {
		t.Fatalf("unexpected dictionary schema: %+v", dict)
	}
}

// TestFromCodec_UnionsAndLiterals covers oneOf, const, and enum export.
func TestFromCodec_UnionsAndLiterals(t *testing.T) {
	u := js.FromCodec(g.Union(g.String(), g.Number()))
	if len(u.OneOf) != 2 {
		t.Fatalf("expected 2 branches, got %+v", u)
	}

	lit := js.FromCodec(g.Literal("on"))
	if lit.Type != "string" || lit.Const != "on" {
		t.Fatalf("unexpected literal schema: %+v", lit)
	}

	enum := js.FromCodec(g.Keyof(map[string]any{"admin": 1, "user": 2}))
	if enum.Type != "string" || !reflect.DeepEqual(enum.Enum, []any{"admin", "user"}) {
		t.Fatalf("unexpected keyof schema: %+v", enum)
	}
}

// TestFromCodec_BrandFormat maps well-known brands to standard formats.
func TestFromCodec_BrandFormat(t *testing.T) {
	email := js.FromCodec(brands.Email)
	if email.Type != "string" || email.Format != "email" {
		t.Fatalf("unexpected email schema: %+v", email)
	}
	port := js.FromCodec(brands.Port)
	if port.Type != "number" || port.Format != "Port" {
		t.Fatalf("unexpected port schema: %+v", port)
	}
}

// TestFromCodec_RecursiveCycleGuard: re-entering a codec being exported
// emits a $ref instead of recursing forever.
func TestFromCodec_RecursiveCycleGuard(t *testing.T) {
	var category *iocodec.Codec
	category = g.Lazy("Category", func() *iocodec.Codec {
		return g.Record(map[string]*iocodec.Codec{
			"name":     g.String(),
			"children": g.Array(category),
		})
	})
	s := js.FromCodec(category)
	if s.Type != "object" {
		t.Fatalf("expected object, got %+v", s)
	}
	child := s.Properties["children"]
	if child.Type != "array" || child.Items.Ref != "#/$defs/Category" {
		t.Fatalf("expected $ref cycle guard, got %+v", child)
	}
}
