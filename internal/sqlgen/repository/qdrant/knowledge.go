package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"financial-assistant/internal/sqlgen"
	"financial-assistant/internal/sqlgen/repository"
	pkgQdrant "financial-assistant/pkg/qdrant"
)

// EnsureCollection creates the knowledge collection if it does not exist.
func (r *implRepository) EnsureCollection(ctx context.Context) error {
	exists, err := r.client.CollectionExists(ctx, r.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: r.collectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     r.vectorSize,
			Distance: "Cosine",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: created collection %s (size=%d)", r.collectionName, r.vectorSize)
	return nil
}

// StoreTrainingItem embeds a knowledge-base entry and upserts it into Qdrant.
func (r *implRepository) StoreTrainingItem(ctx context.Context, item sqlgen.TrainingItem) error {
	text := embeddingText(item)
	if text == "" {
		return fmt.Errorf("%w: empty training item", repository.ErrFailedToStore)
	}

	vector, err := r.embed(ctx, text)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: %v", err)
		return repository.ErrFailedToEmbed
	}

	point := pkgQdrant.Point{
		ID:     itemUUID(text),
		Vector: vector,
		Payload: map[string]interface{}{
			"kind":          string(item.Kind),
			"question":      item.Question,
			"sql":           item.SQL,
			"documentation": item.Documentation,
		},
	}

	req := pkgQdrant.UpsertPointsRequest{Points: []pkgQdrant.Point{point}}
	if err := r.client.UpsertPoints(ctx, r.collectionName, req); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert point: %v", err)
		return repository.ErrFailedToStore
	}

	return nil
}

// SearchSimilar returns the knowledge entries most relevant to the question.
func (r *implRepository) SearchSimilar(ctx context.Context, opt repository.SearchSimilarOptions) ([]repository.RetrievedItem, error) {
	vector, err := r.embed(ctx, opt.Question)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: %v", err)
		return nil, repository.ErrFailedToEmbed
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vector,
		Limit:       opt.Limit,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, repository.ErrFailedToSearch
	}

	results := make([]repository.RetrievedItem, 0, len(resp.Result))
	for _, scored := range resp.Result {
		results = append(results, repository.RetrievedItem{
			Kind:          sqlgen.TrainingKind(payloadString(scored.Payload, "kind")),
			Question:      payloadString(scored.Payload, "question"),
			SQL:           payloadString(scored.Payload, "sql"),
			Documentation: payloadString(scored.Payload, "documentation"),
			Score:         scored.Score,
		})
	}

	return results, nil
}

// embed generates (or reuses a cached) embedding for the given text.
func (r *implRepository) embed(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := r.embedCache.Get(text); ok {
		return cached, nil
	}

	vector, err := r.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}
	if len(vector) == 0 {
		return nil, fmt.Errorf("embedding is empty")
	}

	r.embedCache.Add(text, vector)
	return vector, nil
}

// embeddingText builds the text to embed for a training item.
func embeddingText(item sqlgen.TrainingItem) string {
	if item.Kind == sqlgen.KindDocumentation {
		return item.Documentation
	}
	return item.Question
}

// itemUUID derives a deterministic UUID for a knowledge entry so re-training
// the same content upserts rather than duplicates.
// Qdrant requires point IDs to be UUIDs or unsigned integers.
func itemUUID(text string) string {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8") // DNS namespace
	return uuid.NewSHA1(namespace, []byte(text)).String()
}

func payloadString(payload map[string]interface{}, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}
