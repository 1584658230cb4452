package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"financial-assistant/pkg/ollama"
)

func TestOllamaClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/generate":
			var req struct {
				Model  string `json:"model"`
				Prompt string `json:"prompt"`
				Stream bool   `json:"stream"`
			}
			json.NewDecoder(r.Body).Decode(&req)

			if req.Stream {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if req.Prompt == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"model":    req.Model,
				"response": "generated text",
				"done":     true,
			})

		case "/api/embeddings":
			var req struct {
				Model  string `json:"model"`
				Prompt string `json:"prompt"`
			}
			json.NewDecoder(r.Body).Decode(&req)

			if req.Prompt == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"embedding": []float32{0.1, 0.2, 0.3},
			})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	ctx := context.Background()

	t.Run("Generate", func(t *testing.T) {
		client := ollama.NewClient(ts.URL).WithModel("llama3")

		text, err := client.Generate(ctx, "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "generated text" {
			t.Errorf("unexpected response: %q", text)
		}
	})

	t.Run("Generate Server Error", func(t *testing.T) {
		client := ollama.NewClient(ts.URL)

		_, err := client.Generate(ctx, "cause_500")
		if err == nil {
			t.Errorf("expected error on 500")
		}
	})

	t.Run("Embed", func(t *testing.T) {
		client := ollama.NewClient(ts.URL).WithEmbedModel("nomic-embed-text")

		vec, err := client.Embed(ctx, "some text")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(vec) != 3 {
			t.Errorf("unexpected embedding: %v", vec)
		}
	})

	t.Run("Embed Empty Text", func(t *testing.T) {
		client := ollama.NewClient(ts.URL)

		_, err := client.Embed(ctx, "")
		if err == nil {
			t.Errorf("expected error for empty text")
		}
	})

	t.Run("Model Accessor", func(t *testing.T) {
		client := ollama.NewClient(ts.URL).WithModel("custom")
		if client.Model() != "custom" {
			t.Errorf("unexpected model: %q", client.Model())
		}
	})
}
