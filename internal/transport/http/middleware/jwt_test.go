package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"encheres-api/internal/pkg/jwtutil"
)

func newProtectedRouter(issuer *jwtutil.Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthJWT(issuer), func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":       id,
			"username": c.GetString(ContextUsernameKey),
			"email":    c.GetString(ContextEmailKey),
		})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthJWT_MissingToken(t *testing.T) {
	t.Parallel()

	router := newProtectedRouter(jwtutil.NewIssuer("secret", time.Hour))

	if w := doRequest(router, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no header: expected 401, got %d", w.Code)
	}
	if w := doRequest(router, "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme: expected 401, got %d", w.Code)
	}
	if w := doRequest(router, "Bearer "); w.Code != http.StatusUnauthorized {
		t.Fatalf("empty token: expected 401, got %d", w.Code)
	}
}

func TestAuthJWT_InvalidToken(t *testing.T) {
	t.Parallel()

	router := newProtectedRouter(jwtutil.NewIssuer("secret", time.Hour))

	if w := doRequest(router, "Bearer not.a.jwt"); w.Code != http.StatusForbidden {
		t.Fatalf("malformed: expected 403, got %d", w.Code)
	}

	foreign, err := jwtutil.NewIssuer("other-secret", time.Hour).Issue(1, "alice", "alice@test.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if w := doRequest(router, "Bearer "+foreign); w.Code != http.StatusForbidden {
		t.Fatalf("wrong signature: expected 403, got %d", w.Code)
	}
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	t.Parallel()

	issuer := jwtutil.NewIssuer("secret", time.Hour)
	router := newProtectedRouter(issuer)

	expired, err := jwtutil.NewIssuer("secret", -time.Minute).Issue(1, "alice", "alice@test.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if w := doRequest(router, "Bearer "+expired); w.Code != http.StatusForbidden {
		t.Fatalf("expired: expected 403, got %d", w.Code)
	}
}

func TestAuthJWT_ValidToken(t *testing.T) {
	t.Parallel()

	issuer := jwtutil.NewIssuer("secret", time.Hour)
	router := newProtectedRouter(issuer)

	tok, err := issuer.Issue(7, "bob", "bob@test.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	w := doRequest(router, "Bearer "+tok)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{`"id":7`, `"username":"bob"`, `"email":"bob@test.com"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %s: %s", want, body)
		}
	}
}
