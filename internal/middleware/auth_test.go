package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tajobs/internal/auth"
)

const testSecret = "test-secret"

func protected(t *testing.T, sawIdentity *Identity) http.Handler {
	t.Helper()
	return RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		if !ok {
			t.Fatal("identity missing in gated handler")
		}
		*sawIdentity = id
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequireAuth_NoCookie(t *testing.T) {
	t.Parallel()

	var id Identity
	rec := httptest.NewRecorder()
	protected(t, &id).ServeHTTP(rec, httptest.NewRequest("GET", "/verify", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	var id Identity
	req := httptest.NewRequest("GET", "/verify", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	protected(t, &id).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	t.Parallel()

	tok, err := auth.GenerateToken(7, "prof@x.edu", "instructor", testSecret)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	var id Identity
	req := httptest.NewRequest("GET", "/verify", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tok})
	rec := httptest.NewRecorder()
	protected(t, &id).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := Identity{UserID: 7, Email: "prof@x.edu", Role: "instructor"}
	if id != want {
		t.Fatalf("identity mismatch: got %+v want %+v", id, want)
	}
}
