package service

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ptmanh/examcore/internal/apperror"
)

type openAIEmbeddingProvider struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAIEmbeddingProvider builds the default embedding backend using the
// OpenAI embeddings API.
func NewOpenAIEmbeddingProvider(apiKey, model string) EmbeddingProvider {
	return &openAIEmbeddingProvider{
		client: openai.NewClient(apiKey),
		model:  openai.EmbeddingModel(model),
	}
}

func (p *openAIEmbeddingProvider) Name() string { return "openai" }

func (p *openAIEmbeddingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: p.model,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: openai embeddings: %v", apperror.ErrScoringProvider, err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("%w: openai returned empty embedding", apperror.ErrScoringProvider)
	}
	return resp.Data[0].Embedding, nil
}
