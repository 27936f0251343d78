package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newEngine(t *testing.T) *ginext.Engine {
	t.Helper()
	log := newTestLogger(t)

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/ok", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"request_id": c.GetString(RequestIDKey)})
	})
	r.GET("/panic", func(*ginext.Context) {
		panic("boom")
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	r := newEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestID_Propagated(t *testing.T) {
	r := newEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Contains(t, w.Body.String(), "abc-123")
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	r := newEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}
