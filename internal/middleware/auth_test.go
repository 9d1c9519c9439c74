package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// SetLoginCookie + WithAuth: the user id lands in the request context.
func TestWithAuth_ValidCookieSetsUserID(t *testing.T) {
	const secret = "test-secret"

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if uid != "alice@example.com" {
			t.Fatalf("unexpected user id in context: %q", uid)
		}
		w.WriteHeader(http.StatusOK)
	})

	h := WithAuth(secret)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rrCookie := httptest.NewRecorder()
	if err := SetLoginCookie(rrCookie, "alice@example.com", secret); err != nil {
		t.Fatalf("SetLoginCookie: %v", err)
	}
	for _, c := range rrCookie.Result().Cookies() {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid cookie, got %d", rr.Code)
	}
}

// No cookie: the request stays anonymous but is not rejected here.
func TestWithAuth_NoCookieLeavesAnonymous(t *testing.T) {
	h := WithAuth("any-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set without cookie")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// A token signed with a different secret leaves the request anonymous.
func TestWithAuth_InvalidToken(t *testing.T) {
	rrCookie := httptest.NewRecorder()
	if err := SetLoginCookie(rrCookie, "bob@example.com", "secret-A"); err != nil {
		t.Fatalf("SetLoginCookie: %v", err)
	}

	h := WithAuth("secret-B")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set with invalid token")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rrCookie.Result().Cookies() {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// ClearLoginCookie expires the auth cookie.
func TestClearLoginCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	ClearLoginCookie(rr)

	var found bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == authCookieName {
			found = true
			if c.MaxAge >= 0 {
				t.Fatalf("cookie must be expired, MaxAge=%d", c.MaxAge)
			}
		}
	}
	if !found {
		t.Fatalf("auth cookie not set")
	}
}
