package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/decklens/core/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
)

func newAuthedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	whoami := func(c *gin.Context) { c.String(http.StatusOK, CurrentUserID(c)) }
	r.GET("/private", Auth(), whoami)
	r.GET("/mixed", OptionalAuth(), whoami)
	return r
}

func get(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiresToken(t *testing.T) {
	r := newAuthedRouter()

	if w := get(r, "/private", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
	if w := get(r, "/private", "Bearer not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", w.Code)
	}
}

func TestAuthAcceptsValidToken(t *testing.T) {
	r := newAuthedRouter()

	token, err := jwt.Sign("user-123", "alice", time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	w := get(r, "/private", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "user-123" {
		t.Errorf("user id = %q", w.Body.String())
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	r := newAuthedRouter()

	token, err := jwt.Sign("user-123", "alice", -time.Minute)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if w := get(r, "/private", "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", w.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	r := newAuthedRouter()

	// Anonymous requests pass with no identity set.
	w := get(r, "/mixed", "")
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous: status = %d, want 200", w.Code)
	}
	if w.Body.String() != "" {
		t.Errorf("anonymous user id = %q, want empty", w.Body.String())
	}

	// Invalid tokens are ignored, not rejected.
	if w := get(r, "/mixed", "Bearer not-a-jwt"); w.Code != http.StatusOK {
		t.Errorf("bad token: status = %d, want 200", w.Code)
	}

	token, err := jwt.Sign("user-123", "alice", time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	w = get(r, "/mixed", "Bearer "+token)
	if w.Body.String() != "user-123" {
		t.Errorf("authenticated user id = %q", w.Body.String())
	}
}

func TestNormalizeToken(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"   ", ""},
		{"abc.def.ghi", "abc.def.ghi"},
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc.def.ghi", "abc.def.ghi"},
		{"  Bearer   abc.def.ghi  ", "abc.def.ghi"},
	}
	for _, tc := range cases {
		if got := NormalizeToken(tc.in); got != tc.want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
