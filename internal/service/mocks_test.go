package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ptmanh/examcore/internal/dto"
	"github.com/ptmanh/examcore/internal/model"
)

// ============================================================================
// Shared repository and service mocks
// ============================================================================

type MockAttemptRepo struct {
	mock.Mock
}

func (m *MockAttemptRepo) Create(attempt *model.ExamAttempt) error {
	args := m.Called(attempt)
	return args.Error(0)
}

func (m *MockAttemptRepo) Update(attempt *model.ExamAttempt) error {
	args := m.Called(attempt)
	return args.Error(0)
}

func (m *MockAttemptRepo) FindByID(id uint) (*model.ExamAttempt, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExamAttempt), args.Error(1)
}

func (m *MockAttemptRepo) FindByIDWithAnswers(id uint) (*model.ExamAttempt, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExamAttempt), args.Error(1)
}

func (m *MockAttemptRepo) FindByStudentAndExam(studentID, examID uint) (*model.ExamAttempt, error) {
	args := m.Called(studentID, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExamAttempt), args.Error(1)
}

func (m *MockAttemptRepo) FindByStudent(studentID uint) ([]model.ExamAttempt, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExamAttempt), args.Error(1)
}

func (m *MockAttemptRepo) CountDistinctSubmittedStudents(examID uint) (int64, error) {
	args := m.Called(examID)
	return args.Get(0).(int64), args.Error(1)
}

type MockAnswerRepo struct {
	mock.Mock
}

func (m *MockAnswerRepo) Upsert(answer *model.Answer) error {
	args := m.Called(answer)
	return args.Error(0)
}

func (m *MockAnswerRepo) Update(answer *model.Answer) error {
	args := m.Called(answer)
	return args.Error(0)
}

func (m *MockAnswerRepo) FindByID(id uint) (*model.Answer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

func (m *MockAnswerRepo) FindByAttemptID(attemptID uint) ([]model.Answer, error) {
	args := m.Called(attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Answer), args.Error(1)
}

func (m *MockAnswerRepo) FindByAttemptAndQuestion(attemptID, questionID uint) (*model.Answer, error) {
	args := m.Called(attemptID, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

func (m *MockAnswerRepo) CountByAttempt(attemptID uint) (int64, error) {
	args := m.Called(attemptID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnswerRepo) CountGradedByAttempt(attemptID uint) (int64, error) {
	args := m.Called(attemptID)
	return args.Get(0).(int64), args.Error(1)
}

type MockExamRepo struct {
	mock.Mock
}

func (m *MockExamRepo) FindByID(id uint) (*model.Exam, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Exam), args.Error(1)
}

func (m *MockExamRepo) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Exam), args.Error(1)
}

type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) Create(result *model.Result) error {
	args := m.Called(result)
	return args.Error(0)
}

func (m *MockResultRepo) Update(result *model.Result) error {
	args := m.Called(result)
	return args.Error(0)
}

func (m *MockResultRepo) FindByID(id uint) (*model.Result, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockResultRepo) FindByAttemptID(attemptID uint) (*model.Result, error) {
	args := m.Called(attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockResultRepo) FindByExamID(examID uint) ([]model.Result, error) {
	args := m.Called(examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Result), args.Error(1)
}

func (m *MockResultRepo) FindByStudentID(studentID uint) ([]model.Result, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Result), args.Error(1)
}

func (m *MockResultRepo) CountStrictlyGreater(examID uint, score float64) (int64, error) {
	args := m.Called(examID, score)
	return args.Get(0).(int64), args.Error(1)
}

type MockCacheRepo struct {
	mock.Mock
}

func (m *MockCacheRepo) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepo) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepo) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepo) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockScoringService struct {
	mock.Mock
}

func (m *MockScoringService) ScoreExam(ctx context.Context, attemptID uint) error {
	args := m.Called(ctx, attemptID)
	return args.Error(0)
}

func (m *MockScoringService) GetScoringProgress(attemptID uint) (*dto.ScoringProgressResponse, error) {
	args := m.Called(attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ScoringProgressResponse), args.Error(1)
}

func (m *MockScoringService) RegradeAnswer(ctx context.Context, answerID uint) (*model.Answer, error) {
	args := m.Called(ctx, answerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

// stubEmbeddingProvider returns canned vectors per text, or an error for
// every call when failWith is set.
type stubEmbeddingProvider struct {
	vectors  map[string][]float32
	fallback []float32
	failWith error
	calls    int
}

func (s *stubEmbeddingProvider) Name() string { return "stub" }

func (s *stubEmbeddingProvider) Embed(_ context.Context, text string) ([]float32, error) {
	s.calls++
	if s.failWith != nil {
		return nil, s.failWith
	}
	if vec, ok := s.vectors[text]; ok {
		return vec, nil
	}
	return s.fallback, nil
}
