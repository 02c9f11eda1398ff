package service

import "context"

// EmbeddingProvider turns text into a vector for semantic comparison.
// Implementations are expected to be safe for concurrent use.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Name() string
}
