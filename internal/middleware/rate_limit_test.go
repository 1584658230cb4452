package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(ratePerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(noopLogger{}, ratePerMin)

	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("Allows Within Limit", func(t *testing.T) {
		r := newTestRouter(60)

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})

	t.Run("Rejects Over Burst", func(t *testing.T) {
		r := newTestRouter(2)

		codes := make([]int, 0, 4)
		for i := 0; i < 4; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Errorf("first requests should pass, got %v", codes)
		}
		if codes[3] != http.StatusTooManyRequests {
			t.Errorf("expected 429 after burst, got %v", codes)
		}
	})

	t.Run("Disabled When Zero", func(t *testing.T) {
		r := newTestRouter(0)

		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})
}
