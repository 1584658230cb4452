package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"financial-assistant/internal/chat"
	"financial-assistant/internal/model"
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

type mockUseCase struct {
	askFunc func(sc model.Scope, input chat.AskInput) (chat.AskOutput, error)
}

func (m *mockUseCase) Ask(ctx context.Context, sc model.Scope, input chat.AskInput) (chat.AskOutput, error) {
	if m.askFunc != nil {
		return m.askFunc(sc, input)
	}
	return chat.AskOutput{Answer: "ok"}, nil
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(noopLogger{}, uc)
	r.POST("/ask", h.Ask)
	return r
}

func postAsk(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAskHandler(t *testing.T) {
	t.Run("Success With Portfolio Data", func(t *testing.T) {
		uc := &mockUseCase{
			askFunc: func(sc model.Scope, input chat.AskInput) (chat.AskOutput, error) {
				if sc.UserID != "u-1" {
					t.Errorf("expected scope user u-1, got %q", sc.UserID)
				}
				if len(input.History) != 1 || input.History[0].Role != "user" {
					t.Errorf("history not forwarded: %+v", input.History)
				}
				return chat.AskOutput{
					Answer:       "Your portfolio is up.",
					GeneratedSQL: "SELECT 1",
					Results:      &model.ResultSet{Columns: []string{"x"}, Rows: [][]string{{"1"}}},
				}, nil
			},
		}
		r := newTestRouter(uc)

		w := postAsk(t, r, gin.H{
			"question": "What is my YTD return?",
			"user_id":  "u-1",
			"history":  []gin.H{{"role": "user", "content": "hi"}},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data askResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Data.Answer != "Your portfolio is up." {
			t.Errorf("unexpected answer: %q", resp.Data.Answer)
		}
		if resp.Data.GeneratedSQL != "SELECT 1" || resp.Data.Results == nil {
			t.Errorf("portfolio fields missing: %+v", resp.Data)
		}
	})

	t.Run("Omits SQL And Results When Absent", func(t *testing.T) {
		uc := &mockUseCase{
			askFunc: func(sc model.Scope, input chat.AskInput) (chat.AskOutput, error) {
				return chat.AskOutput{Answer: "Hello!"}, nil
			},
		}
		r := newTestRouter(uc)

		w := postAsk(t, r, gin.H{"question": "hi"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if bytes.Contains([]byte(body), []byte("generated_sql")) || bytes.Contains([]byte(body), []byte("results")) {
			t.Errorf("non-portfolio response must omit SQL fields: %s", body)
		}
	})

	t.Run("Missing Question Is Bad Request", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := postAsk(t, r, gin.H{"history": []gin.H{}})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Empty Question Error Maps To Bad Request", func(t *testing.T) {
		uc := &mockUseCase{
			askFunc: func(sc model.Scope, input chat.AskInput) (chat.AskOutput, error) {
				return chat.AskOutput{}, chat.ErrEmptyQuestion
			},
		}
		r := newTestRouter(uc)

		w := postAsk(t, r, gin.H{"question": "   "})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Invalid History Role Is Bad Request", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := postAsk(t, r, gin.H{
			"question": "hi",
			"history":  []gin.H{{"role": "system", "content": "x"}},
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
