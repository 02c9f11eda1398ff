package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ptmanh/examcore/internal/apperror"
	"github.com/ptmanh/examcore/internal/dto"
	"github.com/ptmanh/examcore/internal/lock"
	"github.com/ptmanh/examcore/internal/model"
	"github.com/ptmanh/examcore/internal/repository"
)

// AttemptConfig tunes attempt lifecycle behavior.
type AttemptConfig struct {
	MaxCheatingWarnings int
}

// AttemptService drives an attempt through its lifecycle:
//
//	in_progress -> paused -> in_progress -> submitted | timed_out | disqualified
//
// Terminal transitions are serialized per attempt so that a submit racing a
// timeout finalizes exactly once.
type AttemptService interface {
	Create(ctx context.Context, req dto.CreateAttemptRequest) (*model.ExamAttempt, error)
	Get(id uint) (*model.ExamAttempt, error)
	ListByStudent(studentID uint) ([]model.ExamAttempt, error)
	Pause(id uint) (*model.ExamAttempt, error)
	Resume(id uint) (*model.ExamAttempt, error)
	Submit(ctx context.Context, id uint) (*model.ExamAttempt, error)
	CheckTimeRemaining(ctx context.Context, id uint) (*dto.TimeRemainingResponse, error)
	AddViolation(id uint, req dto.ViolationRequest) (*dto.CheatingWarningResponse, error)
	GetCheatingWarnings(id uint) (*dto.CheatingWarningResponse, error)
	ResetCheatingWarnings(id uint) (*dto.CheatingWarningResponse, error)
}

type attemptService struct {
	attemptRepo repository.AttemptRepository
	examRepo    repository.ExamRepository
	answerRepo  repository.AnswerRepository
	scoringSvc  ScoringService
	cache       repository.CacheRepository
	locks       *lock.KeyedMutex
	cfg         AttemptConfig

	// nowFunc is swapped in tests to drive the attempt clock.
	nowFunc func() time.Time
}

func NewAttemptService(
	attemptRepo repository.AttemptRepository,
	examRepo repository.ExamRepository,
	answerRepo repository.AnswerRepository,
	scoringSvc ScoringService,
	cache repository.CacheRepository,
	locks *lock.KeyedMutex,
	cfg AttemptConfig,
) AttemptService {
	if cfg.MaxCheatingWarnings <= 0 {
		cfg.MaxCheatingWarnings = 3
	}
	return &attemptService{
		attemptRepo: attemptRepo,
		examRepo:    examRepo,
		answerRepo:  answerRepo,
		scoringSvc:  scoringSvc,
		cache:       cache,
		locks:       locks,
		cfg:         cfg,
		nowFunc:     time.Now,
	}
}

func (s *attemptService) Create(ctx context.Context, req dto.CreateAttemptRequest) (*model.ExamAttempt, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(req.ExamID)
	if err != nil {
		return nil, fmt.Errorf("%w: exam %d", apperror.ErrNotFound, req.ExamID)
	}
	if exam.Status != model.ExamStatusPublished || !exam.IsActive {
		return nil, fmt.Errorf("%w: exam %d is not open for attempts", apperror.ErrBadRequest, req.ExamID)
	}

	existing, err := s.attemptRepo.FindByStudentAndExam(req.StudentID, req.ExamID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, priorAttemptError(existing)
	}

	now := s.nowFunc()
	attempt := &model.ExamAttempt{
		StudentID:           req.StudentID,
		ExamID:              req.ExamID,
		Status:              model.AttemptInProgress,
		StartedAt:           &now,
		TotalQuestions:      len(exam.AllQuestions()),
		MaxCheatingWarnings: s.cfg.MaxCheatingWarnings,
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		// A concurrent Create may have hit the unique (student, exam)
		// index first; report the winner's status.
		if prior, ferr := s.attemptRepo.FindByStudentAndExam(req.StudentID, req.ExamID); ferr == nil {
			return nil, priorAttemptError(prior)
		}
		return nil, fmt.Errorf("create attempt: %w", err)
	}

	log.Info().Uint("attempt_id", attempt.ID).Uint("exam_id", req.ExamID).Uint("student_id", req.StudentID).
		Msg("Attempt started")
	return attempt, nil
}

// priorAttemptError maps an existing attempt onto the create-time error: a
// submitted prior means the exam was taken, anything else is a duplicate.
func priorAttemptError(prior *model.ExamAttempt) error {
	if prior.Status == model.AttemptSubmitted {
		return fmt.Errorf("%w: attempt %d", apperror.ErrAlreadySubmitted, prior.ID)
	}
	return fmt.Errorf("%w: attempt %d is %s", apperror.ErrDuplicateAttempt, prior.ID, prior.Status)
}

func (s *attemptService) Get(id uint) (*model.ExamAttempt, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, id)
	}
	return attempt, nil
}

func (s *attemptService) ListByStudent(studentID uint) ([]model.ExamAttempt, error) {
	return s.attemptRepo.FindByStudent(studentID)
}

func (s *attemptService) Pause(id uint) (*model.ExamAttempt, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, id)
	}
	if attempt.Status != model.AttemptInProgress {
		return nil, fmt.Errorf("%w: cannot pause from %s", apperror.ErrInvalidTransition, attempt.Status)
	}

	now := s.nowFunc()
	attempt.TimeSpent += s.elapsedSeconds(attempt, now)
	attempt.Status = model.AttemptPaused
	attempt.PausedAt = &now

	if err := s.attemptRepo.Update(attempt); err != nil {
		return nil, fmt.Errorf("pause attempt: %w", err)
	}
	return attempt, nil
}

func (s *attemptService) Resume(id uint) (*model.ExamAttempt, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, id)
	}
	if attempt.Status != model.AttemptPaused {
		return nil, fmt.Errorf("%w: cannot resume from %s", apperror.ErrInvalidTransition, attempt.Status)
	}

	// The clock anchor restarts so the paused interval never counts.
	now := s.nowFunc()
	attempt.Status = model.AttemptInProgress
	attempt.StartedAt = &now
	attempt.ResumedAt = &now
	attempt.PausedAt = nil

	if err := s.attemptRepo.Update(attempt); err != nil {
		return nil, fmt.Errorf("resume attempt: %w", err)
	}
	return attempt, nil
}

func (s *attemptService) Submit(ctx context.Context, id uint) (*model.ExamAttempt, error) {
	s.locks.Lock(id)
	defer s.locks.Unlock(id)
	return s.finalize(ctx, id, model.AttemptSubmitted)
}

// finalize moves the attempt to a terminal status and triggers scoring.
// Callers must hold the attempt's lock.
func (s *attemptService) finalize(ctx context.Context, id uint, terminal model.AttemptStatus) (*model.ExamAttempt, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, id)
	}
	if attempt.IsTerminal() {
		return nil, fmt.Errorf("%w: attempt %d is %s", apperror.ErrAttemptTerminal, id, attempt.Status)
	}

	now := s.nowFunc()
	if attempt.Status == model.AttemptInProgress {
		// A paused attempt's clock is already stopped.
		attempt.TimeSpent += s.elapsedSeconds(attempt, now)
	}
	attempt.Status = terminal
	attempt.SubmittedAt = &now

	if answered, err := s.answerRepo.CountByAttempt(id); err == nil {
		attempt.QuestionsAnswered = int(answered)
	}

	if err := s.attemptRepo.Update(attempt); err != nil {
		return nil, fmt.Errorf("finalize attempt: %w", err)
	}

	if err := s.cache.Set(ctx, repository.AttemptFinalizedKey(id), string(terminal), 24*time.Hour); err != nil {
		log.Warn().Err(err).Uint("attempt_id", id).Msg("Failed to cache finalized flag")
	}

	// Scoring failure never rolls back the terminal transition; the attempt
	// can be rescored later.
	if err := s.scoringSvc.ScoreExam(ctx, id); err != nil {
		log.Error().Err(err).Uint("attempt_id", id).Msg("Automatic scoring failed after finalization")
	}

	log.Info().Uint("attempt_id", id).Str("status", string(terminal)).Int("time_spent", attempt.TimeSpent).
		Msg("Attempt finalized")
	return attempt, nil
}

// CheckTimeRemaining reports seconds left and times the attempt out when the
// budget is exhausted.
func (s *attemptService) CheckTimeRemaining(ctx context.Context, id uint) (*dto.TimeRemainingResponse, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, id)
	}
	if attempt.IsTerminal() {
		return &dto.TimeRemainingResponse{TimeRemainingSeconds: 0, Status: string(attempt.Status)}, nil
	}

	exam, err := s.examRepo.FindByID(attempt.ExamID)
	if err != nil {
		return nil, fmt.Errorf("%w: exam %d", apperror.ErrNotFound, attempt.ExamID)
	}

	elapsed := 0
	if attempt.Status == model.AttemptInProgress {
		elapsed = s.elapsedSeconds(attempt, s.nowFunc())
	}
	remaining := exam.DurationMinutes*60 - attempt.TimeSpent - elapsed
	if remaining <= 0 {
		// Only a running clock can expire the attempt; a paused one just
		// reports zero and times out after resuming.
		if attempt.Status != model.AttemptInProgress {
			return &dto.TimeRemainingResponse{TimeRemainingSeconds: 0, Status: string(attempt.Status)}, nil
		}
		s.locks.Lock(id)
		finalized, ferr := s.finalize(ctx, id, model.AttemptTimedOut)
		s.locks.Unlock(id)
		if ferr != nil && !errors.Is(ferr, apperror.ErrAttemptTerminal) {
			return nil, ferr
		}
		status := model.AttemptTimedOut
		if finalized != nil {
			status = finalized.Status
		}
		return &dto.TimeRemainingResponse{TimeRemainingSeconds: 0, Status: string(status)}, nil
	}

	return &dto.TimeRemainingResponse{
		TimeRemainingSeconds: remaining,
		Status:               string(attempt.Status),
	}, nil
}

func (s *attemptService) AddViolation(id uint, req dto.ViolationRequest) (*dto.CheatingWarningResponse, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, id)
	}
	if attempt.IsTerminal() {
		return nil, fmt.Errorf("%w: attempt %d is %s", apperror.ErrAttemptTerminal, id, attempt.Status)
	}

	attempt.Violations = append(attempt.Violations, model.Violation{
		Type:        req.Type,
		Description: req.Description,
		Timestamp:   s.nowFunc(),
		Metadata:    req.Metadata,
	})
	attempt.CheatingWarnings++

	if err := s.attemptRepo.Update(attempt); err != nil {
		return nil, fmt.Errorf("record violation: %w", err)
	}

	log.Warn().Uint("attempt_id", id).Str("type", req.Type).Int("warnings", attempt.CheatingWarnings).
		Msg("Cheating violation recorded")
	return warningResponse(attempt), nil
}

func (s *attemptService) GetCheatingWarnings(id uint) (*dto.CheatingWarningResponse, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, id)
	}
	return warningResponse(attempt), nil
}

func (s *attemptService) ResetCheatingWarnings(id uint) (*dto.CheatingWarningResponse, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: attempt %d", apperror.ErrNotFound, id)
	}
	if attempt.IsTerminal() {
		return nil, fmt.Errorf("%w: attempt %d is %s", apperror.ErrAttemptTerminal, id, attempt.Status)
	}

	// The violation log is kept for audit; only the live counter resets.
	attempt.CheatingWarnings = 0
	if err := s.attemptRepo.Update(attempt); err != nil {
		return nil, fmt.Errorf("reset warnings: %w", err)
	}
	return warningResponse(attempt), nil
}

func (s *attemptService) elapsedSeconds(attempt *model.ExamAttempt, now time.Time) int {
	if attempt.StartedAt == nil {
		return 0
	}
	elapsed := int(now.Sub(*attempt.StartedAt).Seconds())
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func warningResponse(attempt *model.ExamAttempt) *dto.CheatingWarningResponse {
	return &dto.CheatingWarningResponse{
		WarningCount:     attempt.CheatingWarnings,
		MaxWarnings:      attempt.MaxCheatingWarnings,
		RemainingWarning: attempt.RemainingWarnings(),
		ShouldAutoSubmit: attempt.ShouldAutoSubmit(),
		Violations:       attempt.Violations,
	}
}
