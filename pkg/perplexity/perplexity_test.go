package perplexity_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"financial-assistant/pkg/perplexity"
)

func TestNew(t *testing.T) {
	t.Run("Requires API Key", func(t *testing.T) {
		_, err := perplexity.New(perplexity.Config{})
		if err == nil {
			t.Errorf("expected error for missing API key")
		}
	})

	t.Run("Defaults Model", func(t *testing.T) {
		client, err := perplexity.New(perplexity.Config{APIKey: "key"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.Model() == "" {
			t.Errorf("expected default model to be set")
		}
	})
}

func TestSearch(t *testing.T) {
	newServer := func(t *testing.T, handler http.HandlerFunc) (perplexity.ISearch, *httptest.Server) {
		t.Helper()
		ts := httptest.NewServer(handler)
		client, err := perplexity.New(perplexity.Config{
			APIKey:  "test-key",
			BaseURL: ts.URL,
		})
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		return client, ts
	}

	t.Run("Returns Answer", func(t *testing.T) {
		client, ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer test-key" {
				t.Errorf("missing bearer auth: %q", r.Header.Get("Authorization"))
			}

			var req struct {
				Messages []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Messages) != 2 || req.Messages[1].Content != "What moved the market today?" {
				t.Errorf("unexpected messages: %+v", req.Messages)
			}

			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "Tech stocks rallied."}},
				},
			})
		})
		defer ts.Close()

		answer, err := client.Search(context.Background(), "What moved the market today?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if answer != "Tech stocks rallied." {
			t.Errorf("unexpected answer: %q", answer)
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		client, ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer ts.Close()

		_, err := client.Search(context.Background(), "anything")
		if err == nil {
			t.Errorf("expected error on 500")
		}
	})

	t.Run("Empty Choices", func(t *testing.T) {
		client, ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		})
		defer ts.Close()

		_, err := client.Search(context.Background(), "anything")
		if err == nil {
			t.Errorf("expected error for empty choices")
		}
	})
}
