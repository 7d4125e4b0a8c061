package httpbind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	iocodec "github.com/reoring/iocodec"
	"github.com/reoring/iocodec/brands"
	g "github.com/reoring/iocodec/dsl"
	"github.com/reoring/iocodec/httpbind"
)

func loginSchema() *iocodec.Codec {
	return g.Record(map[string]*iocodec.Codec{
		"email":    brands.Email,
		"password": g.String(),
	})
}

// TestBind_Success decodes a valid body and leaves the response
// untouched.
func TestBind_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"user@example.com","password":"secret"}`))
	w := httptest.NewRecorder()

	v, ok := httpbind.Bind(w, req, loginSchema())
	if !ok {
		t.Fatalf("expected bind success, body: %s", w.Body.String())
	}
	m := v.(map[string]any)
	if m["email"] != "user@example.com" {
		t.Fatalf("unexpected decode: %v", m)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("success must not write a response, got %d", w.Code)
	}
}

// TestBind_ValidationFailure writes the standard 400 payload.
func TestBind_ValidationFailure(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"nope","password":123}`))
	w := httptest.NewRecorder()

	_, ok := httpbind.Bind(w, req, loginSchema())
	if ok {
		t.Fatalf("expected bind failure")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON response, got %q", ct)
	}

	var resp iocodec.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response must be valid JSON: %v", err)
	}
	if resp.StatusCode != 400 || resp.Message != "Validation failed" || resp.Error != "Bad Request" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", resp.Errors)
	}
	if resp.Errors[0].Field != "email" || resp.Errors[0].Code != "INVALID_EMAIL" {
		t.Fatalf("unexpected first error: %+v", resp.Errors[0])
	}
}

// TestBind_MalformedBody rejects unparseable JSON with the same shape.
func TestBind_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{oops`))
	w := httptest.NewRecorder()

	if _, ok := httpbind.Bind(w, req, loginSchema()); ok {
		t.Fatalf("expected bind failure")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// TestBindQuery coerces scalar query values before validation.
func TestBindQuery(t *testing.T) {
	paging := g.Record(map[string]*iocodec.Codec{
		"page":  brands.PositiveInteger,
		"all":   g.Boolean(),
		"query": g.Optional(g.String()),
	})
	req := httptest.NewRequest(http.MethodGet, "/items?page=2&all=true", nil)
	w := httptest.NewRecorder()

	v, ok := httpbind.BindQuery(w, req, paging)
	if !ok {
		t.Fatalf("expected bind success, body: %s", w.Body.String())
	}
	m := v.(map[string]any)
	if m["page"] != 2.0 || m["all"] != true {
		t.Fatalf("unexpected coercion: %v", m)
	}

	req = httptest.NewRequest(http.MethodGet, "/items?page=zero&all=true", nil)
	w = httptest.NewRecorder()
	if _, ok := httpbind.BindQuery(w, req, paging); ok {
		t.Fatalf("expected bind failure for non-numeric page")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// TestBindQuery_MultiValue turns repeated keys into arrays.
func TestBindQuery_MultiValue(t *testing.T) {
	filter := g.Record(map[string]*iocodec.Codec{
		"tag": g.Array(g.String()),
	})
	req := httptest.NewRequest(http.MethodGet, "/items?tag=a&tag=b", nil)
	w := httptest.NewRecorder()

	v, ok := httpbind.BindQuery(w, req, filter)
	if !ok {
		t.Fatalf("expected bind success, body: %s", w.Body.String())
	}
	tags := v.(map[string]any)["tag"].([]any)
	if len(tags) != 2 || tags[0] != "a" || tags[1] != "b" {
		t.Fatalf("unexpected tags: %v", tags)
	}
}
