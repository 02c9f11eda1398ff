package service

import (
	"fmt"

	"github.com/ptmanh/examcore/internal/apperror"
	"github.com/ptmanh/examcore/internal/dto"
	"github.com/ptmanh/examcore/internal/model"
	"github.com/ptmanh/examcore/internal/repository"
)

// AnswerService records student answers while an attempt is live. Saving the
// same question twice replaces the previous answer.
type AnswerService interface {
	Save(attemptID uint, req dto.SaveAnswerRequest) (*model.Answer, error)
	ListByAttempt(attemptID uint) ([]model.Answer, error)
}

type answerService struct {
	attemptRepo repository.AttemptRepository
	answerRepo  repository.AnswerRepository
	examRepo    repository.ExamRepository
}

func NewAnswerService(
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	examRepo repository.ExamRepository,
) AnswerService {
	return &answerService{
		attemptRepo: attemptRepo,
		answerRepo:  answerRepo,
		examRepo:    examRepo,
	}
}

func (s *answerService) Save(attemptID uint, req dto.SaveAnswerRequest) (*model.Answer, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, attemptID)
	}
	if attempt.IsTerminal() {
		return nil, fmt.Errorf("%w: attempt %d is %s", apperror.ErrAttemptTerminal, attemptID, attempt.Status)
	}
	if attempt.Status != model.AttemptInProgress {
		return nil, fmt.Errorf("%w: cannot answer while %s", apperror.ErrInvalidTransition, attempt.Status)
	}

	exam, err := s.examRepo.FindByIDWithQuestions(attempt.ExamID)
	if err != nil {
		return nil, fmt.Errorf("%w: exam %d", apperror.ErrNotFound, attempt.ExamID)
	}

	var question *model.Question
	for _, q := range exam.AllQuestions() {
		if q.ID == req.QuestionID {
			question = &q
			break
		}
	}
	if question == nil {
		return nil, fmt.Errorf("%w: question %d does not belong to exam %d", apperror.ErrBadRequest, req.QuestionID, exam.ID)
	}

	answer := &model.Answer{
		AttemptID:       attemptID,
		QuestionID:      req.QuestionID,
		StudentID:       attempt.StudentID,
		AnswerText:      req.AnswerText,
		SelectedOptions: req.SelectedOptions,
		MaxScore:        question.Marks,
	}
	if err := s.answerRepo.Upsert(answer); err != nil {
		return nil, fmt.Errorf("save answer: %w", err)
	}

	if answered, err := s.answerRepo.CountByAttempt(attemptID); err == nil {
		attempt.QuestionsAnswered = int(answered)
		if err := s.attemptRepo.Update(attempt); err != nil {
			return nil, fmt.Errorf("update answered count: %w", err)
		}
	}

	return answer, nil
}

func (s *answerService) ListByAttempt(attemptID uint) ([]model.Answer, error) {
	if _, err := s.attemptRepo.FindByID(attemptID); err != nil {
		return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, attemptID)
	}
	return s.answerRepo.FindByAttemptID(attemptID)
}
