package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Logger(logger), Recovery(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func serve(r http.Handler, target, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// accessEntries فقط لاگ‌های دسترسی (پیام "request")
func accessEntries(logs *observer.ObservedLogs) []observer.LoggedEntry {
	return logs.FilterMessage("request").All()
}

func TestRecovery_PanicReturns500(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := newTestEngine(zap.New(core))

	w := serve(r, "/panic", "req-panic")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"internal server error"}` {
		t.Errorf("body = %s", got)
	}

	recovered := logs.FilterMessage("❌ panic recovered").All()
	if len(recovered) != 1 {
		t.Fatalf("panic log entries = %d, want 1", len(recovered))
	}
	if recovered[0].ContextMap()["requestID"] != "req-panic" {
		t.Errorf("requestID = %v", recovered[0].ContextMap()["requestID"])
	}
}

func TestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		target string
		status int
		level  zapcore.Level
	}{
		{"/ok", http.StatusOK, zapcore.InfoLevel},
		{"/bad", http.StatusBadRequest, zapcore.WarnLevel},
		{"/fail", http.StatusServiceUnavailable, zapcore.ErrorLevel},
		{"/panic", http.StatusInternalServerError, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			r := newTestEngine(zap.New(core))

			serve(r, tt.target, "req-1")

			entries := accessEntries(logs)
			if len(entries) != 1 {
				t.Fatalf("access log entries = %d, want 1", len(entries))
			}
			e := entries[0]
			if e.Level != tt.level {
				t.Errorf("level = %v, want %v", e.Level, tt.level)
			}
			fields := e.ContextMap()
			if fields["requestID"] != "req-1" {
				t.Errorf("requestID = %v, want req-1", fields["requestID"])
			}
			if fields["status"] != int64(tt.status) {
				t.Errorf("status field = %v, want %d", fields["status"], tt.status)
			}
			if fields["path"] != tt.target {
				t.Errorf("path = %v, want %s", fields["path"], tt.target)
			}
		})
	}
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := newTestEngine(zap.New(core))

	w := serve(r, "/ok", "")
	id := w.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatal("missing generated request id")
	}
	entries := accessEntries(logs)
	if len(entries) != 1 || entries[0].ContextMap()["requestID"] != id {
		t.Errorf("logged requestID does not match header %q", id)
	}
}
