package dsl_test

import (
	"errors"
	"strings"
	"testing"

	iocodec "github.com/reoring/iocodec"
	g "github.com/reoring/iocodec/dsl"
)

// TestDefault substitutes only for absence: explicit values, including
// invalid ones, go through the inner codec and the default itself is
// never revalidated.
func TestDefault(t *testing.T) {
	flag := g.Default(g.Boolean(), true)
	if v, fs := flag.Decode(iocodec.Undefined); len(fs) != 0 || v != true {
		t.Fatalf("expected default true, v=%v fs=%v", v, fs)
	}
	if v, fs := flag.Decode(false); len(fs) != 0 || v != false {
		t.Fatalf("explicit value must win, v=%v fs=%v", v, fs)
	}
	if _, fs := flag.Decode("not-bool"); len(fs) == 0 {
		t.Fatalf("invalid explicit value must fail")
	}
	if _, fs := flag.Decode(nil); len(fs) == 0 {
		t.Fatalf("null is not absence for Default")
	}

	// the default value bypasses the inner codec entirely
	odd := g.Default(g.String(), 42)
	if v, fs := odd.Decode(iocodec.Undefined); len(fs) != 0 || v != 42 {
		t.Fatalf("default must not be revalidated, v=%v fs=%v", v, fs)
	}
}

// TestCrossValidate_NotRunOnBaseFailure: the cross-field function never
// runs when the base schema fails.
func TestCrossValidate_NotRunOnBaseFailure(t *testing.T) {
	ran := false
	signup := g.CrossValidate(g.Record(map[string]*iocodec.Codec{
		"password": g.String(),
		"confirm":  g.String(),
	}), func(decoded any) []g.FieldError {
		ran = true
		return nil
	})
	_, fs := signup.Decode(map[string]any{"password": "a"})
	if len(fs) == 0 {
		t.Fatalf("expected base failure")
	}
	if ran {
		t.Fatalf("cross validator must not run on base failure")
	}
}

// TestCrossValidate_FieldErrors: each reported violation becomes a
// distinct failure at its field path.
func TestCrossValidate_FieldErrors(t *testing.T) {
	signup := g.CrossValidate(g.Record(map[string]*iocodec.Codec{
		"password": g.String(),
		"confirm":  g.String(),
	}), func(decoded any) []g.FieldError {
		m := decoded.(map[string]any)
		if m["password"] != m["confirm"] {
			return []g.FieldError{{Field: "confirm", Message: "Passwords do not match"}}
		}
		return nil
	})

	if _, fs := signup.Decode(map[string]any{"password": "a", "confirm": "a"}); len(fs) != 0 {
		t.Fatalf("matching passwords should pass, got %v", fs)
	}

	_, fs := signup.Decode(map[string]any{"password": "a", "confirm": "b"})
	if len(fs) != 1 {
		t.Fatalf("expected 1 failure, got %v", fs)
	}
	if fs[0].Context.FieldPath() != "confirm" || fs[0].Reason != "Passwords do not match" {
		t.Fatalf("unexpected failure: %+v", fs[0])
	}
}

// TestCrossValidate_PanicBecomesFailure: a panic inside the validator is
// caught and reported, never propagated.
func TestCrossValidate_PanicBecomesFailure(t *testing.T) {
	c := g.CrossValidate(g.String(), func(any) []g.FieldError {
		panic("boom")
	})
	_, fs := c.Decode("x")
	if len(fs) != 1 || !strings.Contains(fs[0].Reason, "boom") {
		t.Fatalf("expected panic converted to failure, got %v", fs)
	}
}

// TestTransform maps the decoded value; mapper errors and panics become
// ordinary failures.
func TestTransform(t *testing.T) {
	upper := g.Transform(g.String(), func(decoded any) (any, error) {
		return strings.ToUpper(decoded.(string)), nil
	})
	if v, fs := upper.Decode("abc"); len(fs) != 0 || v != "ABC" {
		t.Fatalf("expected ABC, v=%v fs=%v", v, fs)
	}
	if _, fs := upper.Decode(1); len(fs) == 0 {
		t.Fatalf("base failure must propagate")
	}

	failing := g.Transform(g.String(), func(any) (any, error) {
		return nil, errors.New("cannot map")
	})
	_, fs := failing.Decode("x")
	if len(fs) != 1 || fs[0].Reason != "cannot map" {
		t.Fatalf("mapper error must become a failure, got %v", fs)
	}

	panicking := g.Transform(g.String(), func(any) (any, error) {
		panic("mapper exploded")
	})
	_, fs = panicking.Decode("x")
	if len(fs) != 1 || !strings.Contains(fs[0].Reason, "mapper exploded") {
		t.Fatalf("mapper panic must become a failure, got %v", fs)
	}
}

// TestTransform_EncodeUsesBase: the transform has no implicit inverse.
func TestTransform_EncodeUsesBase(t *testing.T) {
	upper := g.Transform(g.String(), func(decoded any) (any, error) {
		return strings.ToUpper(decoded.(string)), nil
	})
	if got := upper.Encode("abc"); got != "abc" {
		t.Fatalf("encode must delegate to the base codec, got %v", got)
	}
}

// TestWithMessage_DoesNotAlterOutcome: the binding is formatting-only.
func TestWithMessage_DoesNotAlterOutcome(t *testing.T) {
	c := g.WithMessage(g.String(), iocodec.Messages{Invalid: "nope"})
	if v, fs := c.Decode("x"); len(fs) != 0 || v != "x" {
		t.Fatalf("valid value must still pass, v=%v fs=%v", v, fs)
	}
	if _, fs := c.Decode(1); len(fs) != 1 {
		t.Fatalf("invalid value must still fail, got %v", fs)
	}
}

// TestReadonly is transparent in validation and diagnostics.
func TestReadonly(t *testing.T) {
	c := g.Readonly(g.String())
	if v, fs := c.Decode("x"); len(fs) != 0 || v != "x" {
		t.Fatalf("readonly must delegate, v=%v fs=%v", v, fs)
	}
	_, fs := c.Decode(1)
	if len(fs) != 1 || fs[0].Context.Deepest().Type.Name() != "string" {
		t.Fatalf("readonly must report the inner type, got %v", fs)
	}
}
