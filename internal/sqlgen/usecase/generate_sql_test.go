package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"financial-assistant/internal/sqlgen"
	"financial-assistant/internal/sqlgen/repository"
	"financial-assistant/pkg/ollama"
)

// newGenerateServer returns a fake Ollama that always answers with text.
func newGenerateServer(t *testing.T, respond func(prompt string) (string, int)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		text, status := respond(req.Prompt)
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"response": text, "done": true})
	}))
}

func TestGenerateSQL(t *testing.T) {
	t.Run("Empty Question Error", func(t *testing.T) {
		uc := New(&mockLogger{}, ollama.NewClient("http://unused"), &mockVectorRepo{}, &mockDataRepo{})
		_, err := uc.GenerateSQL(context.Background(), "   ")
		if !errors.Is(err, sqlgen.ErrEmptyQuestion) {
			t.Errorf("expected ErrEmptyQuestion, got %v", err)
		}
	})

	t.Run("Vector Search Error", func(t *testing.T) {
		vRepo := &mockVectorRepo{
			searchFunc: func(opt repository.SearchSimilarOptions) ([]repository.RetrievedItem, error) {
				return nil, errors.New("search fail")
			},
		}
		uc := New(&mockLogger{}, ollama.NewClient("http://unused"), vRepo, &mockDataRepo{})
		_, err := uc.GenerateSQL(context.Background(), "What is my YTD return?")
		if err == nil {
			t.Errorf("expected search error")
		}
	})

	t.Run("Generates SQL With Retrieved Context", func(t *testing.T) {
		var seenPrompt string
		ts := newGenerateServer(t, func(prompt string) (string, int) {
			seenPrompt = prompt
			return "SELECT portfolio_name, ytd_return FROM ai_trading.portfolio_summary", http.StatusOK
		})
		defer ts.Close()

		vRepo := &mockVectorRepo{
			searchFunc: func(opt repository.SearchSimilarOptions) ([]repository.RetrievedItem, error) {
				if opt.Limit != MaxContextItems {
					t.Errorf("expected limit %d, got %d", MaxContextItems, opt.Limit)
				}
				return []repository.RetrievedItem{
					{Kind: sqlgen.KindDocumentation, Documentation: "Table ai_trading.portfolio_summary holds returns."},
					{Kind: sqlgen.KindQuestionSQL, Question: "Best portfolio?", SQL: "SELECT 1"},
				}, nil
			},
		}

		uc := New(&mockLogger{}, ollama.NewClient(ts.URL), vRepo, &mockDataRepo{})
		query, err := uc.GenerateSQL(context.Background(), "What is my YTD return?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(query, "SELECT") {
			t.Errorf("unexpected query: %q", query)
		}
		if !strings.Contains(seenPrompt, "portfolio_summary holds returns") {
			t.Errorf("prompt missing documentation context: %q", seenPrompt)
		}
		if !strings.Contains(seenPrompt, "Best portfolio?") {
			t.Errorf("prompt missing question-SQL context: %q", seenPrompt)
		}
	})

	t.Run("Strips Markdown Fences", func(t *testing.T) {
		ts := newGenerateServer(t, func(prompt string) (string, int) {
			return "```sql\nSELECT 1\n```", http.StatusOK
		})
		defer ts.Close()

		uc := New(&mockLogger{}, ollama.NewClient(ts.URL), &mockVectorRepo{}, &mockDataRepo{})
		query, err := uc.GenerateSQL(context.Background(), "count things")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if query != "SELECT 1" {
			t.Errorf("expected fenced SQL stripped, got %q", query)
		}
	})

	t.Run("LLM Error Propagates", func(t *testing.T) {
		ts := newGenerateServer(t, func(prompt string) (string, int) {
			return "", http.StatusInternalServerError
		})
		defer ts.Close()

		uc := New(&mockLogger{}, ollama.NewClient(ts.URL), &mockVectorRepo{}, &mockDataRepo{})
		_, err := uc.GenerateSQL(context.Background(), "anything")
		if err == nil {
			t.Errorf("expected LLM error")
		}
	})

	t.Run("Empty SQL Error", func(t *testing.T) {
		ts := newGenerateServer(t, func(prompt string) (string, int) {
			return "   ", http.StatusOK
		})
		defer ts.Close()

		uc := New(&mockLogger{}, ollama.NewClient(ts.URL), &mockVectorRepo{}, &mockDataRepo{})
		_, err := uc.GenerateSQL(context.Background(), "anything")
		if !errors.Is(err, sqlgen.ErrEmptySQL) {
			t.Errorf("expected ErrEmptySQL, got %v", err)
		}
	})
}
