package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/factorytrack/internal/pkg/auth"
	testhelpers "github.com/polkiloo/factorytrack/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeMessage(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body %q: %v", body.String(), err)
	}
	return payload.Message
}

func protectedRouter(parser TokenParser, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(AuthRequired(parser))
	if handler == nil {
		handler = func(c *gin.Context) { c.Status(http.StatusOK) }
	}
	router.GET("/", handler)
	return router
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	router := protectedRouter(testhelpers.TokenParserStub{}, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", resp.Code)
	}
	if msg := decodeMessage(t, resp.Body); msg != "Token Authorization Required" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	router := protectedRouter(testhelpers.TokenParserStub{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for header without token, got %d", resp.Code)
	}
	if msg := decodeMessage(t, resp.Body); msg != "Invalid Token" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	router := protectedRouter(testhelpers.TokenParserStub{Err: pkgAuth.ErrTokenExpired}, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", resp.Code)
	}
	if msg := decodeMessage(t, resp.Body); msg != "Token has expired" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	router := protectedRouter(testhelpers.TokenParserStub{Err: pkgAuth.ErrInvalidToken}, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}
	if msg := decodeMessage(t, resp.Body); msg != "Invalid Token" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAuthRequiredStoresClaims(t *testing.T) {
	var storedID int64
	var storedRole string
	parser := testhelpers.TokenParserStub{Claims: &pkgAuth.Claims{UserID: 42, Role: "Admin"}}
	router := protectedRouter(parser, func(c *gin.Context) {
		if v, ok := c.Get(UserIDContextKey); ok {
			storedID = v.(int64)
		}
		if v, ok := c.Get(RoleContextKey); ok {
			storedRole = v.(string)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if storedID != 42 {
		t.Fatalf("expected user id 42, got %d", storedID)
	}
	if storedRole != "Admin" {
		t.Fatalf("expected role Admin, got %q", storedRole)
	}
}

func TestAuthRequiredIgnoresSchemeWord(t *testing.T) {
	var seen string
	parser := testhelpers.TokenParserStub{ParseFn: func(token string) (*pkgAuth.Claims, error) {
		seen = token
		return &pkgAuth.Claims{UserID: 1}, nil
	}}
	router := protectedRouter(parser, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Whatever the-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if seen != "the-token" {
		t.Fatalf("expected second field to be used, got %q", seen)
	}
}

func TestAdminRequired(t *testing.T) {
	newRouter := func(role string) *gin.Engine {
		router := gin.New()
		router.Use(AuthRequired(testhelpers.TokenParserStub{Claims: &pkgAuth.Claims{UserID: 1, Role: role}}))
		router.Use(AdminRequired())
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	newRouter("Operator").ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin role, got %d", resp.Code)
	}
	if msg := decodeMessage(t, resp.Body); msg != "Admin role required" {
		t.Fatalf("unexpected message %q", msg)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	newRouter("Admin").ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin role, got %d", resp.Code)
	}
}

func TestAdminRequiredWithoutAuthContext(t *testing.T) {
	router := gin.New()
	router.Use(AdminRequired())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth context, got %d", resp.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/ping")) {
		t.Fatalf("expected log to contain path, got %s", buf.String())
	}
}

func TestDecompressRequest(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	var received string
	router.POST("/", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		received = string(body)
		c.Status(http.StatusOK)
	})

	var compressed bytes.Buffer
	writer := gzip.NewWriter(&compressed)
	if _, err := writer.Write([]byte("payload")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if received != "payload" {
		t.Fatalf("expected decompressed body, got %q", received)
	}

	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("not-gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for corrupt gzip, got %d", resp.Code)
	}
}
