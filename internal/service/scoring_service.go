package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ptmanh/examcore/internal/apperror"
	"github.com/ptmanh/examcore/internal/dto"
	"github.com/ptmanh/examcore/internal/model"
	"github.com/ptmanh/examcore/internal/repository"
)

// ScoringConfig tunes aggregation behavior.
type ScoringConfig struct {
	// CountUnanswered keeps every exam question in the attempt's total
	// marks, so questions the student skipped count against them. When
	// false only answered questions contribute to the total.
	CountUnanswered bool
}

// ScoringService grades a submitted attempt: each answer is scored by type,
// persisted individually, then the attempt totals are aggregated. ScoreExam
// is idempotent per attempt.
type ScoringService interface {
	ScoreExam(ctx context.Context, attemptID uint) error
	GetScoringProgress(attemptID uint) (*dto.ScoringProgressResponse, error)
	RegradeAnswer(ctx context.Context, answerID uint) (*model.Answer, error)
}

type scoringService struct {
	attemptRepo repository.AttemptRepository
	answerRepo  repository.AnswerRepository
	examRepo    repository.ExamRepository
	similarity  SimilarityService
	cfg         ScoringConfig
}

func NewScoringService(
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	examRepo repository.ExamRepository,
	similarity SimilarityService,
	cfg ScoringConfig,
) ScoringService {
	return &scoringService{
		attemptRepo: attemptRepo,
		answerRepo:  answerRepo,
		examRepo:    examRepo,
		similarity:  similarity,
		cfg:         cfg,
	}
}

func (s *scoringService) ScoreExam(ctx context.Context, attemptID uint) error {
	attempt, err := s.attemptRepo.FindByIDWithAnswers(attemptID)
	if err != nil {
		return fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, attemptID)
	}
	if attempt.IsGraded {
		log.Info().Uint("attempt_id", attemptID).Msg("Attempt already graded, skipping")
		return nil
	}
	if !attempt.IsTerminal() {
		return fmt.Errorf("%w: attempt %d is still %s", apperror.ErrBadRequest, attemptID, attempt.Status)
	}

	exam, err := s.examRepo.FindByIDWithQuestions(attempt.ExamID)
	if err != nil {
		return fmt.Errorf("%w: exam %d", apperror.ErrNotFound, attempt.ExamID)
	}
	questions := exam.AllQuestions()
	questionByID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		questionByID[questions[i].ID] = &questions[i]
	}

	var totalScore float64
	var answeredMarks float64

	for i := range attempt.Answers {
		answer := &attempt.Answers[i]
		question, ok := questionByID[answer.QuestionID]
		if !ok {
			return fmt.Errorf("%w: question %d for answer %d", apperror.ErrNotFound, answer.QuestionID, answer.ID)
		}

		if !answer.IsGraded {
			s.scoreAnswer(ctx, answer, question)
			if err := s.answerRepo.Update(answer); err != nil {
				return fmt.Errorf("persist answer %d: %w", answer.ID, err)
			}
		}

		totalScore += answer.Score
		answeredMarks += question.Marks
	}

	totalMarks := answeredMarks
	if s.cfg.CountUnanswered {
		totalMarks = exam.AllMarks()
	}

	attempt.Score = totalScore
	attempt.TotalMarks = totalMarks
	attempt.Percentage = 0
	if totalMarks > 0 {
		attempt.Percentage = totalScore / totalMarks * 100
	}
	attempt.IsGraded = true

	if err := s.attemptRepo.Update(attempt); err != nil {
		return fmt.Errorf("persist attempt totals: %w", err)
	}

	log.Info().Uint("attempt_id", attemptID).
		Float64("score", totalScore).
		Float64("total_marks", totalMarks).
		Msg("Attempt graded")
	return nil
}

// scoreAnswer grades a single answer in place. It never fails: similarity
// scoring degrades internally, and unknown question types score zero.
func (s *scoringService) scoreAnswer(ctx context.Context, answer *model.Answer, question *model.Question) {
	answer.MaxScore = question.Marks

	switch question.Kind() {
	case model.ObjectiveQuestion:
		s.scoreObjective(answer, question)
	case model.SimilarityQuestion:
		s.scoreSimilarity(ctx, answer, question)
	default:
		answer.Score = 0
		answer.IsCorrect = false
		answer.Feedback = "This question type is not auto-gradable."
	}
	answer.IsGraded = true
}

func (s *scoringService) scoreObjective(answer *model.Answer, question *model.Question) {
	given := normalizeText(answer.FormattedAnswer())
	expected := normalizeText(question.CorrectAnswer)

	if given != "" && given == expected {
		answer.Score = question.Marks
		answer.IsCorrect = true
		answer.Feedback = "Correct."
		return
	}
	answer.Score = 0
	answer.IsCorrect = false
	if given == "" {
		answer.Feedback = "No answer provided."
		return
	}
	answer.Feedback = fmt.Sprintf("Incorrect. The correct answer is: %s", question.CorrectAnswer)
}

func (s *scoringService) scoreSimilarity(ctx context.Context, answer *model.Answer, question *model.Question) {
	student := answer.FormattedAnswer()
	if normalizeText(student) == "" {
		answer.Score = 0
		answer.IsCorrect = false
		answer.Feedback = "No answer provided."
		return
	}

	resp := s.similarity.CalculateSimilarityScore(ctx, SimilarityScoreRequest{
		QuestionText:  question.QuestionText,
		CorrectAnswer: question.CorrectAnswer,
		Rubric:        question.Explanation,
		StudentAnswer: student,
		Marks:         question.Marks,
	})

	answer.Score = resp.Score
	// Any credit counts as correct; correctness tracks partial awards too.
	answer.IsCorrect = resp.Score > 0
	answer.Feedback = resp.Feedback
}

func (s *scoringService) GetScoringProgress(attemptID uint) (*dto.ScoringProgressResponse, error) {
	if _, err := s.attemptRepo.FindByID(attemptID); err != nil {
		return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, attemptID)
	}

	total, err := s.answerRepo.CountByAttempt(attemptID)
	if err != nil {
		return nil, err
	}
	graded, err := s.answerRepo.CountGradedByAttempt(attemptID)
	if err != nil {
		return nil, err
	}

	progress := &dto.ScoringProgressResponse{
		TotalAnswers:  int(total),
		GradedAnswers: int(graded),
		IsComplete:    total > 0 && graded == total,
	}
	if total > 0 {
		progress.ProgressPercentage = float64(graded) / float64(total) * 100
	}
	return progress, nil
}

// RegradeAnswer rescores a single answer and refreshes the attempt totals.
// Used after a rubric or correct-answer fix.
func (s *scoringService) RegradeAnswer(ctx context.Context, answerID uint) (*model.Answer, error) {
	answer, err := s.answerRepo.FindByID(answerID)
	if err != nil {
		return nil, fmt.Errorf("%w: answer %d", apperror.ErrNotFound, answerID)
	}

	answer.IsGraded = false
	s.scoreAnswer(ctx, answer, &answer.Question)
	if err := s.answerRepo.Update(answer); err != nil {
		return nil, fmt.Errorf("persist answer %d: %w", answerID, err)
	}

	if err := s.reaggregate(answer.AttemptID); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *scoringService) reaggregate(attemptID uint) error {
	attempt, err := s.attemptRepo.FindByIDWithAnswers(attemptID)
	if err != nil {
		return fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, attemptID)
	}
	if !attempt.IsGraded {
		return nil
	}

	var totalScore float64
	for i := range attempt.Answers {
		totalScore += attempt.Answers[i].Score
	}
	attempt.Score = totalScore
	attempt.Percentage = 0
	if attempt.TotalMarks > 0 {
		attempt.Percentage = totalScore / attempt.TotalMarks * 100
	}
	return s.attemptRepo.Update(attempt)
}
