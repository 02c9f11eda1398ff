package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// SimilarityScoreRequest carries everything needed to grade one free-text
// answer against its reference.
type SimilarityScoreRequest struct {
	QuestionText  string
	CorrectAnswer string
	Rubric        string
	StudentAnswer string
	Marks         float64
}

type SimilarityScoreResponse struct {
	Score      float64
	Similarity float64
	Feedback   string
	// UsedFallback is set when the embedding provider was unavailable and
	// the keyword heuristic graded instead.
	UsedFallback bool
}

// SimilarityService grades short answers and essays by embedding the
// reference and the student response and comparing them. It never returns
// an error: provider failures degrade to a keyword heuristic so grading
// always completes.
type SimilarityService interface {
	CalculateSimilarityScore(ctx context.Context, req SimilarityScoreRequest) SimilarityScoreResponse
}

type similarityService struct {
	provider     EmbeddingProvider
	embedTimeout time.Duration
}

func NewSimilarityService(provider EmbeddingProvider, embedTimeout time.Duration) SimilarityService {
	if embedTimeout <= 0 {
		embedTimeout = 15 * time.Second
	}
	return &similarityService{provider: provider, embedTimeout: embedTimeout}
}

func (s *similarityService) CalculateSimilarityScore(ctx context.Context, req SimilarityScoreRequest) SimilarityScoreResponse {
	reference := fmt.Sprintf("Question: %s\nCorrect answer: %s", req.QuestionText, req.CorrectAnswer)
	if req.Rubric != "" {
		reference += "\nRubric: " + req.Rubric
	}
	candidate := fmt.Sprintf("Question: %s\nStudent answer: %s", req.QuestionText, req.StudentAnswer)

	embedCtx, cancel := context.WithTimeout(ctx, s.embedTimeout)
	defer cancel()

	refVec, err := s.provider.Embed(embedCtx, reference)
	if err != nil {
		log.Warn().Err(err).Str("provider", s.provider.Name()).Msg("Embedding failed, falling back to keyword scoring")
		return fallbackKeywordScore(req)
	}
	ansVec, err := s.provider.Embed(embedCtx, candidate)
	if err != nil {
		log.Warn().Err(err).Str("provider", s.provider.Name()).Msg("Embedding failed, falling back to keyword scoring")
		return fallbackKeywordScore(req)
	}

	similarity := cosineSimilarity(refVec, ansVec)
	fraction := similarityFraction(similarity)
	score := roundScore(fraction*req.Marks, req.Marks)

	return SimilarityScoreResponse{
		Score:      score,
		Similarity: similarity,
		Feedback:   similarityFeedback(fraction),
	}
}

// similarityFraction maps cosine similarity onto discrete award bands so
// near-identical answers get full marks and unrelated text gets zero.
func similarityFraction(similarity float64) float64 {
	switch {
	case similarity >= 0.90:
		return 1.0
	case similarity >= 0.80:
		return 0.8
	case similarity >= 0.65:
		return 0.6
	case similarity >= 0.50:
		return 0.4
	case similarity >= 0.35:
		return 0.2
	default:
		return 0
	}
}

func similarityFeedback(fraction float64) string {
	switch {
	case fraction >= 0.8:
		return "Excellent answer! Your response closely matches the expected answer."
	case fraction >= 0.5:
		return "Good answer. Your response covers most of the expected content."
	case fraction > 0:
		return "Partial credit. Your response touches on some relevant points but misses key content."
	default:
		return "Your response does not match the expected answer."
	}
}

// cosineSimilarity is clamped to [0, 1]; opposed vectors score zero rather
// than negative.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// fallbackKeywordScore awards marks proportional to how many keywords of the
// reference answer appear in the student's response.
func fallbackKeywordScore(req SimilarityScoreRequest) SimilarityScoreResponse {
	correct := normalizeText(req.CorrectAnswer)
	student := normalizeText(req.StudentAnswer)

	var keywords []string
	for _, tok := range strings.Fields(correct) {
		if len(tok) > 2 {
			keywords = append(keywords, tok)
		}
	}
	if len(keywords) == 0 {
		return SimilarityScoreResponse{
			Feedback:     "Your response could not be graded automatically and is pending review.",
			UsedFallback: true,
		}
	}

	matched := 0
	for _, kw := range keywords {
		if strings.Contains(student, kw) || strings.Contains(kw, student) {
			matched++
		}
	}

	ratio := float64(matched) / float64(len(keywords))
	score := roundScore(ratio*req.Marks, req.Marks)

	return SimilarityScoreResponse{
		Score:        score,
		Similarity:   ratio,
		Feedback:     similarityFeedback(ratio),
		UsedFallback: true,
	}
}

// normalizeText lowercases, trims, and collapses internal whitespace.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// roundScore rounds to the nearest whole mark and never exceeds max.
func roundScore(score, max float64) float64 {
	rounded := math.Round(score)
	if rounded > max {
		return max
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}
