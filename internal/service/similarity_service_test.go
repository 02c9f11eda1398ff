package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical vectors", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal vectors", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposed vectors clamp to zero", []float32{1, 0}, []float32{-1, 0}, 0},
		{"mismatched lengths", []float32{1, 2}, []float32{1, 2, 3}, 0},
		{"empty vectors", nil, nil, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarityFraction(t *testing.T) {
	tests := []struct {
		similarity float64
		want       float64
	}{
		{0.95, 1.0},
		{0.90, 1.0},
		{0.89, 0.8},
		{0.80, 0.8},
		{0.79, 0.6},
		{0.65, 0.6},
		{0.64, 0.4},
		{0.50, 0.4},
		{0.49, 0.2},
		{0.35, 0.2},
		{0.34, 0},
		{0, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("similarity %.2f", tt.similarity), func(t *testing.T) {
			assert.Equal(t, tt.want, similarityFraction(tt.similarity))
		})
	}
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 4.0, roundScore(4.2, 5))
	assert.Equal(t, 5.0, roundScore(4.5, 5))
	assert.Equal(t, 5.0, roundScore(5.4, 5), "never exceeds max")
	assert.Equal(t, 0.0, roundScore(-1, 5))
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "the mitochondria is the powerhouse",
		normalizeText("  The   Mitochondria\tis the  POWERHOUSE  "))
	assert.Equal(t, "", normalizeText("   \t\n  "))
}

func TestCalculateSimilarityScore_Bands(t *testing.T) {
	reference := "Question: What is photosynthesis?\nCorrect answer: Plants convert light into energy"
	candidate := "Question: What is photosynthesis?\nStudent answer: Light is turned into energy by plants"

	tests := []struct {
		name      string
		cos       float64
		wantScore float64
	}{
		{"near identical gets full marks", 0.95, 10},
		{"strong match gets 80 percent", 0.85, 8},
		{"moderate match gets 60 percent", 0.70, 6},
		{"weak match gets 40 percent", 0.55, 4},
		{"marginal match gets 20 percent", 0.40, 2},
		{"unrelated gets zero", 0.10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubEmbeddingProvider{
				vectors: map[string][]float32{
					reference: {1, 0},
					candidate: {float32(tt.cos), float32(math.Sqrt(1 - tt.cos*tt.cos))},
				},
			}
			svc := NewSimilarityService(provider, time.Second)

			resp := svc.CalculateSimilarityScore(context.Background(), SimilarityScoreRequest{
				QuestionText:  "What is photosynthesis?",
				CorrectAnswer: "Plants convert light into energy",
				StudentAnswer: "Light is turned into energy by plants",
				Marks:         10,
			})

			assert.False(t, resp.UsedFallback)
			assert.InDelta(t, tt.cos, resp.Similarity, 1e-6)
			assert.Equal(t, tt.wantScore, resp.Score)
			assert.NotEmpty(t, resp.Feedback)
		})
	}
}

func TestCalculateSimilarityScore_RubricInReference(t *testing.T) {
	provider := &stubEmbeddingProvider{fallback: []float32{1, 0}}
	svc := NewSimilarityService(provider, time.Second)

	resp := svc.CalculateSimilarityScore(context.Background(), SimilarityScoreRequest{
		QuestionText:  "Explain osmosis",
		CorrectAnswer: "Movement of water across a membrane",
		Rubric:        "Mention concentration gradient",
		StudentAnswer: "Water moves across a membrane",
		Marks:         5,
	})

	require.False(t, resp.UsedFallback)
	assert.Equal(t, 5.0, resp.Score, "identical embeddings score full marks")
	assert.Equal(t, 2, provider.calls)
}

func TestCalculateSimilarityScore_ProviderFailureFallsBack(t *testing.T) {
	provider := &stubEmbeddingProvider{failWith: errors.New("rate limited")}
	svc := NewSimilarityService(provider, time.Second)

	resp := svc.CalculateSimilarityScore(context.Background(), SimilarityScoreRequest{
		QuestionText:  "What organ pumps blood?",
		CorrectAnswer: "The heart pumps blood",
		StudentAnswer: "the heart pumps blood through the body",
		Marks:         4,
	})

	assert.True(t, resp.UsedFallback)
	assert.Equal(t, 4.0, resp.Score, "all keywords present gives full marks")
}

func TestFallbackKeywordScore(t *testing.T) {
	tests := []struct {
		name      string
		correct   string
		student   string
		marks     float64
		wantScore float64
	}{
		{"full keyword overlap", "gravity pulls objects down", "Gravity pulls all objects down", 6, 6},
		{"no overlap", "photosynthesis needs sunlight", "the sky is blue today", 6, 0},
		{"half overlap rounds", "water boils hundred degrees", "water reaches hundred quickly", 6, 3},
		{"short tokens ignored", "an ox ran far", "ran far", 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := fallbackKeywordScore(SimilarityScoreRequest{
				CorrectAnswer: tt.correct,
				StudentAnswer: tt.student,
				Marks:         tt.marks,
			})
			assert.True(t, resp.UsedFallback)
			assert.Equal(t, tt.wantScore, resp.Score)
		})
	}
}

func TestSimilarityFeedbackTiers(t *testing.T) {
	assert.Contains(t, similarityFeedback(1.0), "Excellent")
	assert.Contains(t, similarityFeedback(0.6), "Good")
	assert.Contains(t, similarityFeedback(0.2), "Partial")
	assert.Contains(t, similarityFeedback(0), "does not match")
}
