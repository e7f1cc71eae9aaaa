package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trivia-api/internal/trivia"
)

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	server := newTestServer(t)

	targets := []struct {
		method string
		target string
	}{
		{method: http.MethodGet, target: "/categories"},
		{method: http.MethodGet, target: "/questions"},
		{method: http.MethodGet, target: "/no/such/route"},
		{method: http.MethodPost, target: "/questions/45"},
	}

	for _, tt := range targets {
		rec, _ := server.do(t, tt.method, tt.target, "")
		header := rec.Header()
		assert.Equal(t, "*", header.Get("Access-Control-Allow-Origin"), tt.target)
		assert.Equal(t, "Content-Type,Authorization,true", header.Get("Access-Control-Allow-Headers"), tt.target)
		assert.Equal(t, "GET,PUT,POST,DELETE,OPTIONS", header.Get("Access-Control-Allow-Methods"), tt.target)
	}
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/questions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type,Authorization,true", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "GET,PUT,POST,DELETE,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSPreflightIsCounted(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/quizzes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `trivia_http_requests_total{method="OPTIONS",path="unmatched",status="204"}`)
}

func TestUnknownRoute(t *testing.T) {
	server := newTestServer(t)

	rec, payload := server.do(t, http.MethodGet, "/nowhere", "")

	assertErrorEnvelope(t, rec, payload, http.StatusNotFound, "resource not found")
}

func TestMethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	rec, payload := server.do(t, http.MethodPut, "/categories", "")
	assertErrorEnvelope(t, rec, payload, http.StatusMethodNotAllowed, "method not allowed")

	rec, payload = server.do(t, http.MethodGet, "/quizzes", "")
	assertErrorEnvelope(t, rec, payload, http.StatusMethodNotAllowed, "method not allowed")
}

func TestRequestIDHeader(t *testing.T) {
	server := newTestServer(t)

	rec, _ := server.do(t, http.MethodGet, "/categories", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	rec, payload := server.do(t, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", payload["status"])
}

func TestHealthWithoutStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(NewAPI(trivia.NewService(nil, nil), nil, nil), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t)
	server.addQuestion(t, "only", 1)

	server.do(t, http.MethodGet, "/categories", "")
	server.do(t, http.MethodPost, "/quizzes", `{"previous_questions":[],"quiz_category":{"id":0}}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "trivia_http_requests_total"), "request counter missing")
	assert.True(t, strings.Contains(body, "trivia_quiz_draws_total"), "quiz counter missing")
}

func TestPanicRecoveredAsInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(NewAPI(trivia.NewService(nil, nil), nil, zap.NewNop()), zap.NewNop())
	router.GET("/boom", func(*gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":500,"message":"internal server error"}`, rec.Body.String())
}
