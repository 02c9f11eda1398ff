package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ptmanh/examcore/internal/apperror"
	"github.com/ptmanh/examcore/internal/dto"
	"github.com/ptmanh/examcore/internal/model"
	"github.com/ptmanh/examcore/internal/repository"
)

// GradingPolicy converts a percentage into a grade and a pass verdict. The
// pass threshold is configuration, not a compile-time constant.
type GradingPolicy struct {
	PassPercentage float64
}

func (p GradingPolicy) GradeFor(percentage float64) model.Grade {
	switch {
	case percentage >= 95:
		return model.GradeAPlus
	case percentage >= 90:
		return model.GradeA
	case percentage >= 85:
		return model.GradeBPlus
	case percentage >= 80:
		return model.GradeB
	case percentage >= 75:
		return model.GradeCPlus
	case percentage >= 70:
		return model.GradeC
	case percentage >= 60:
		return model.GradeD
	default:
		return model.GradeF
	}
}

func (p GradingPolicy) IsPassed(percentage float64) bool {
	return percentage >= p.PassPercentage
}

// ResultService turns a graded terminal attempt into its durable result and
// serves result queries. GenerateResult is idempotent per attempt.
type ResultService interface {
	GenerateResult(ctx context.Context, attemptID uint) (*model.Result, error)
	GetResultWithBreakdown(attemptID uint) (*dto.ResultResponse, error)
	GetExamResults(examID uint) ([]model.Result, error)
	GetStudentResults(studentID uint) ([]model.Result, error)
	Publish(resultID uint) (*model.Result, error)
}

type resultService struct {
	resultRepo  repository.ResultRepository
	attemptRepo repository.AttemptRepository
	answerRepo  repository.AnswerRepository
	scoringSvc  ScoringService
	policy      GradingPolicy

	nowFunc func() time.Time
}

func NewResultService(
	resultRepo repository.ResultRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	scoringSvc ScoringService,
	policy GradingPolicy,
) ResultService {
	if policy.PassPercentage <= 0 {
		policy.PassPercentage = 50
	}
	return &resultService{
		resultRepo:  resultRepo,
		attemptRepo: attemptRepo,
		answerRepo:  answerRepo,
		scoringSvc:  scoringSvc,
		policy:      policy,
		nowFunc:     time.Now,
	}
}

func (s *resultService) GenerateResult(ctx context.Context, attemptID uint) (*model.Result, error) {
	if existing, err := s.resultRepo.FindByAttemptID(attemptID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attempt, err := s.attemptRepo.FindByIDWithAnswers(attemptID)
	if err != nil {
		return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, attemptID)
	}
	if !attempt.IsTerminal() {
		return nil, fmt.Errorf("%w: attempt %d is still %s", apperror.ErrInvalidTransition, attemptID, attempt.Status)
	}

	if !attempt.IsGraded {
		if err := s.scoringSvc.ScoreExam(ctx, attemptID); err != nil {
			return nil, fmt.Errorf("score before result: %w", err)
		}
		attempt, err = s.attemptRepo.FindByIDWithAnswers(attemptID)
		if err != nil {
			return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, attemptID)
		}
	}

	correct := 0
	for i := range attempt.Answers {
		if attempt.Answers[i].IsCorrect {
			correct++
		}
	}

	higher, err := s.resultRepo.CountStrictlyGreater(attempt.ExamID, attempt.Score)
	if err != nil {
		return nil, err
	}
	totalStudents, err := s.attemptRepo.CountDistinctSubmittedStudents(attempt.ExamID)
	if err != nil {
		return nil, err
	}

	result := &model.Result{
		StudentID:         attempt.StudentID,
		ExamID:            attempt.ExamID,
		AttemptID:         attempt.ID,
		Score:             attempt.Score,
		TotalMarks:        attempt.TotalMarks,
		Percentage:        attempt.Percentage,
		Grade:             s.policy.GradeFor(attempt.Percentage),
		Rank:              int(higher) + 1,
		TotalStudents:     int(totalStudents),
		QuestionsAnswered: attempt.QuestionsAnswered,
		TotalQuestions:    attempt.TotalQuestions,
		CorrectAnswers:    correct,
		WrongAnswers:      attempt.QuestionsAnswered - correct,
		TimeSpent:         attempt.TimeSpent,
		IsPassed:          s.policy.IsPassed(attempt.Percentage),
		PassPercentage:    s.policy.PassPercentage,
	}

	if err := s.resultRepo.Create(result); err != nil {
		// A concurrent caller may have won the unique index race.
		if existing, ferr := s.resultRepo.FindByAttemptID(attemptID); ferr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("create result: %w", err)
	}

	log.Info().Uint("attempt_id", attemptID).Str("grade", string(result.Grade)).Int("rank", result.Rank).
		Msg("Result generated")
	return result, nil
}

func (s *resultService) GetResultWithBreakdown(attemptID uint) (*dto.ResultResponse, error) {
	result, err := s.resultRepo.FindByAttemptID(attemptID)
	if err != nil {
		return nil, fmt.Errorf("%w: result for attempt %d", apperror.ErrNotFound, attemptID)
	}

	var resp dto.ResultResponse
	if err := copier.Copy(&resp, result); err != nil {
		return nil, fmt.Errorf("map result: %w", err)
	}
	resp.Grade = string(result.Grade)

	answers, err := s.answerRepo.FindByAttemptID(attemptID)
	if err != nil {
		return nil, err
	}
	for i := range answers {
		a := &answers[i]
		if !a.IsGraded {
			continue
		}
		resp.Breakdown = append(resp.Breakdown, dto.QuestionResultDTO{
			QuestionID:    a.QuestionID,
			QuestionText:  a.Question.QuestionText,
			Type:          string(a.Question.Type),
			StudentAnswer: a.FormattedAnswer(),
			CorrectAnswer: a.Question.CorrectAnswer,
			StudentScore:  a.Score,
			MaxScore:      a.MaxScore,
			IsCorrect:     a.IsCorrect,
			Explanation:   a.Question.Explanation,
			Feedback:      a.Feedback,
		})
	}
	return &resp, nil
}

func (s *resultService) GetExamResults(examID uint) ([]model.Result, error) {
	return s.resultRepo.FindByExamID(examID)
}

func (s *resultService) GetStudentResults(studentID uint) ([]model.Result, error) {
	return s.resultRepo.FindByStudentID(studentID)
}

func (s *resultService) Publish(resultID uint) (*model.Result, error) {
	result, err := s.resultRepo.FindByID(resultID)
	if err != nil {
		return nil, fmt.Errorf("%w: result %d", apperror.ErrNotFound, resultID)
	}
	if result.IsPublished {
		return result, nil
	}

	now := s.nowFunc()
	result.IsPublished = true
	result.PublishedAt = &now
	if err := s.resultRepo.Update(result); err != nil {
		return nil, fmt.Errorf("publish result: %w", err)
	}
	return result, nil
}
