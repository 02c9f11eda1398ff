package service

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ptmanh/examcore/internal/apperror"
)

type geminiEmbeddingProvider struct {
	model *genai.EmbeddingModel
}

// NewGeminiEmbeddingProvider builds the alternative embedding backend using
// the Gemini embeddings API, selected with SCORING_PROVIDER=gemini.
func NewGeminiEmbeddingProvider(apiKey, model string) (EmbeddingProvider, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiEmbeddingProvider{model: client.EmbeddingModel(model)}, nil
}

func (p *geminiEmbeddingProvider) Name() string { return "gemini" }

func (p *geminiEmbeddingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	res, err := p.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("%w: gemini embeddings: %v", apperror.ErrScoringProvider, err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("%w: gemini returned empty embedding", apperror.ErrScoringProvider)
	}
	return res.Embedding.Values, nil
}
