package dsl_test

import (
	"reflect"
	"testing"

	iocodec "github.com/reoring/iocodec"
	g "github.com/reoring/iocodec/dsl"
)

// TestRecord_AllFieldsChecked verifies validation never short-circuits:
// every failing field is collected.
func TestRecord_AllFieldsChecked(t *testing.T) {
	user := g.Record(map[string]*iocodec.Codec{
		"name": g.String(),
		"age":  g.Number(),
		"ok":   g.Boolean(),
	})
	_, fs := user.Decode(map[string]any{"name": 1, "age": "x", "ok": true})
	if len(fs) != 2 {
		t.Fatalf("expected 2 failures, got %d: %v", len(fs), fs)
	}
}

// TestRecord_MissingFieldSingleFailure: omitting a required field yields
// exactly one failure at that field path.
func TestRecord_MissingFieldSingleFailure(t *testing.T) {
	user := g.Record(map[string]*iocodec.Codec{
		"name": g.String(),
		"age":  g.Number(),
	})
	for _, in := range []map[string]any{
		{"age": 30.0},
		{"name": nil, "age": 30.0},
		{"name": iocodec.Undefined, "age": 30.0},
	} {
		_, fs := user.Decode(in)
		if len(fs) != 1 {
			t.Fatalf("input %v: expected 1 failure, got %d", in, len(fs))
		}
		if got := fs[0].Context.FieldPath(); got != "name" {
			t.Fatalf("input %v: expected path name, got %q", in, got)
		}
	}
}

// TestRecord_UnknownKeysPassThrough verifies undeclared keys survive
// decoding unchanged.
func TestRecord_UnknownKeysPassThrough(t *testing.T) {
	user := g.Record(map[string]*iocodec.Codec{"name": g.String()})
	out, fs := user.Decode(map[string]any{"name": "Reo", "extra": 1})
	if len(fs) != 0 {
		t.Fatalf("unexpected failures: %v", fs)
	}
	m := out.(map[string]any)
	if m["extra"] != 1 {
		t.Fatalf("expected extra key to pass through, got %v", m)
	}
}

// TestRecord_OptionalFieldOmittedFromOutput: a field decoded to absence
// is deleted rather than stored as a sentinel.
func TestRecord_OptionalFieldOmittedFromOutput(t *testing.T) {
	user := g.Record(map[string]*iocodec.Codec{
		"name":     g.String(),
		"nickname": g.Optional(g.String()),
	})
	out, fs := user.Decode(map[string]any{"name": "Reo"})
	if len(fs) != 0 {
		t.Fatalf("unexpected failures: %v", fs)
	}
	if _, present := out.(map[string]any)["nickname"]; present {
		t.Fatalf("absent optional field must not appear in output: %v", out)
	}
}

// TestRecord_RejectsNonObject covers the shape mismatch at the record's
// own path.
func TestRecord_RejectsNonObject(t *testing.T) {
	user := g.Record(map[string]*iocodec.Codec{"name": g.String()})
	_, fs := user.Decode("not an object")
	if len(fs) != 1 || fs[0].Context.FieldPath() != "root" {
		t.Fatalf("expected single root failure, got %v", fs)
	}
}

// TestPartialRecord accepts absence per field but validates present
// values.
func TestPartialRecord(t *testing.T) {
	patch := g.PartialRecord(map[string]*iocodec.Codec{
		"name": g.String(),
		"age":  g.Number(),
	})
	if _, fs := patch.Decode(map[string]any{}); len(fs) != 0 {
		t.Fatalf("empty patch should pass, got %v", fs)
	}
	if _, fs := patch.Decode(map[string]any{"name": "Reo"}); len(fs) != 0 {
		t.Fatalf("partial patch should pass, got %v", fs)
	}
	_, fs := patch.Decode(map[string]any{"age": "x"})
	if len(fs) != 1 || fs[0].Context.FieldPath() != "age" {
		t.Fatalf("present invalid value must fail, got %v", fs)
	}
}

// TestDictionary validates every value and addresses failures by key.
func TestDictionary(t *testing.T) {
	scores := g.Dictionary(g.Number())
	out, fs := scores.Decode(map[string]any{"a": 1.0, "b": 2.0})
	if len(fs) != 0 {
		t.Fatalf("unexpected failures: %v", fs)
	}
	if !reflect.DeepEqual(out, map[string]any{"a": 1.0, "b": 2.0}) {
		t.Fatalf("unexpected decode: %v", out)
	}
	_, fs = scores.Decode(map[string]any{"a": 1.0, "bad": "x"})
	if len(fs) != 1 || fs[0].Context.FieldPath() != "bad" {
		t.Fatalf("expected failure at bad, got %v", fs)
	}
}
