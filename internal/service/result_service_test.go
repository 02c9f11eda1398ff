package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ptmanh/examcore/internal/apperror"
	"github.com/ptmanh/examcore/internal/model"
)

func TestGradingPolicy_GradeFor(t *testing.T) {
	policy := GradingPolicy{PassPercentage: 50}
	tests := []struct {
		percentage float64
		want       model.Grade
	}{
		{100, model.GradeAPlus},
		{95, model.GradeAPlus},
		{94.9, model.GradeA},
		{90, model.GradeA},
		{89, model.GradeBPlus},
		{85, model.GradeBPlus},
		{84, model.GradeB},
		{80, model.GradeB},
		{79, model.GradeCPlus},
		{75, model.GradeCPlus},
		{74, model.GradeC},
		{70, model.GradeC},
		{69, model.GradeD},
		{60, model.GradeD},
		{59.9, model.GradeF},
		{0, model.GradeF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, policy.GradeFor(tt.percentage), "percentage %.1f", tt.percentage)
	}
}

func TestGradingPolicy_IsPassed(t *testing.T) {
	policy := GradingPolicy{PassPercentage: 50}
	assert.True(t, policy.IsPassed(50))
	assert.False(t, policy.IsPassed(49.9))

	strict := GradingPolicy{PassPercentage: 70}
	assert.False(t, strict.IsPassed(60))
}

type resultFixture struct {
	svc         ResultService
	resultRepo  *MockResultRepo
	attemptRepo *MockAttemptRepo
	answerRepo  *MockAnswerRepo
	scoringSvc  *MockScoringService
}

func newResultFixture(t *testing.T) *resultFixture {
	t.Helper()
	f := &resultFixture{
		resultRepo:  new(MockResultRepo),
		attemptRepo: new(MockAttemptRepo),
		answerRepo:  new(MockAnswerRepo),
		scoringSvc:  new(MockScoringService),
	}
	f.svc = NewResultService(f.resultRepo, f.attemptRepo, f.answerRepo, f.scoringSvc, GradingPolicy{PassPercentage: 50})
	return f
}

func gradedAttempt() *model.ExamAttempt {
	submitted := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return &model.ExamAttempt{
		ID:                40,
		StudentID:         7,
		ExamID:            1,
		Status:            model.AttemptSubmitted,
		SubmittedAt:       &submitted,
		IsGraded:          true,
		Score:             8,
		TotalMarks:        10,
		Percentage:        80,
		TimeSpent:         1800,
		QuestionsAnswered: 3,
		TotalQuestions:    3,
		Answers: []model.Answer{
			{ID: 400, QuestionID: 1, Score: 5, IsCorrect: true, IsGraded: true},
			{ID: 401, QuestionID: 2, Score: 3, IsCorrect: true, IsGraded: true},
			{ID: 402, QuestionID: 3, Score: 0, IsCorrect: false, IsGraded: true},
		},
	}
}

func TestGenerateResult(t *testing.T) {
	f := newResultFixture(t)

	f.resultRepo.On("FindByAttemptID", uint(40)).Return(nil, gorm.ErrRecordNotFound)
	f.attemptRepo.On("FindByIDWithAnswers", uint(40)).Return(gradedAttempt(), nil)
	f.resultRepo.On("CountStrictlyGreater", uint(1), 8.0).Return(int64(2), nil)
	f.attemptRepo.On("CountDistinctSubmittedStudents", uint(1)).Return(int64(10), nil)
	f.resultRepo.On("Create", mock.AnythingOfType("*model.Result")).Return(nil)

	result, err := f.svc.GenerateResult(context.Background(), 40)
	require.NoError(t, err)

	assert.Equal(t, uint(40), result.AttemptID)
	assert.Equal(t, 8.0, result.Score)
	assert.Equal(t, 80.0, result.Percentage)
	assert.Equal(t, model.GradeB, result.Grade)
	assert.Equal(t, 3, result.Rank, "two higher scores give rank three")
	assert.Equal(t, 10, result.TotalStudents)
	assert.Equal(t, 2, result.CorrectAnswers, "a partially credited answer still counts as correct")
	assert.Equal(t, 1, result.WrongAnswers)
	assert.True(t, result.IsPassed)
	assert.Equal(t, 50.0, result.PassPercentage)
	assert.False(t, result.IsPublished)
}

func TestGenerateResult_TopScoreTiesShareRankOne(t *testing.T) {
	f := newResultFixture(t)

	f.resultRepo.On("FindByAttemptID", uint(40)).Return(nil, gorm.ErrRecordNotFound)
	f.attemptRepo.On("FindByIDWithAnswers", uint(40)).Return(gradedAttempt(), nil)
	f.resultRepo.On("CountStrictlyGreater", uint(1), 8.0).Return(int64(0), nil)
	f.attemptRepo.On("CountDistinctSubmittedStudents", uint(1)).Return(int64(4), nil)
	f.resultRepo.On("Create", mock.AnythingOfType("*model.Result")).Return(nil)

	result, err := f.svc.GenerateResult(context.Background(), 40)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Rank, "no strictly greater score means rank one, ties included")
}

func TestGenerateResult_ExistingResultReturned(t *testing.T) {
	f := newResultFixture(t)

	existing := &model.Result{ID: 1, AttemptID: 40, Grade: model.GradeA}
	f.resultRepo.On("FindByAttemptID", uint(40)).Return(existing, nil)

	result, err := f.svc.GenerateResult(context.Background(), 40)
	require.NoError(t, err)
	assert.Same(t, existing, result)
	f.resultRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGenerateResult_LiveAttemptRejected(t *testing.T) {
	f := newResultFixture(t)

	f.resultRepo.On("FindByAttemptID", uint(41)).Return(nil, gorm.ErrRecordNotFound)
	f.attemptRepo.On("FindByIDWithAnswers", uint(41)).
		Return(&model.ExamAttempt{ID: 41, Status: model.AttemptInProgress}, nil)

	_, err := f.svc.GenerateResult(context.Background(), 41)
	assert.ErrorIs(t, err, apperror.ErrInvalidTransition)
}

func TestGenerateResult_UngradedAttemptIsScoredFirst(t *testing.T) {
	f := newResultFixture(t)

	ungraded := gradedAttempt()
	ungraded.IsGraded = false
	graded := gradedAttempt()

	f.resultRepo.On("FindByAttemptID", uint(40)).Return(nil, gorm.ErrRecordNotFound)
	f.attemptRepo.On("FindByIDWithAnswers", uint(40)).Return(ungraded, nil).Once()
	f.scoringSvc.On("ScoreExam", mock.Anything, uint(40)).Return(nil)
	f.attemptRepo.On("FindByIDWithAnswers", uint(40)).Return(graded, nil)
	f.resultRepo.On("CountStrictlyGreater", uint(1), 8.0).Return(int64(0), nil)
	f.attemptRepo.On("CountDistinctSubmittedStudents", uint(1)).Return(int64(1), nil)
	f.resultRepo.On("Create", mock.AnythingOfType("*model.Result")).Return(nil)

	result, err := f.svc.GenerateResult(context.Background(), 40)
	require.NoError(t, err)
	assert.Equal(t, model.GradeB, result.Grade)
	f.scoringSvc.AssertNumberOfCalls(t, "ScoreExam", 1)
}

func TestGenerateResult_UniqueIndexRaceReturnsWinner(t *testing.T) {
	f := newResultFixture(t)

	winner := &model.Result{ID: 2, AttemptID: 40}
	f.resultRepo.On("FindByAttemptID", uint(40)).Return(nil, gorm.ErrRecordNotFound).Once()
	f.attemptRepo.On("FindByIDWithAnswers", uint(40)).Return(gradedAttempt(), nil)
	f.resultRepo.On("CountStrictlyGreater", uint(1), 8.0).Return(int64(0), nil)
	f.attemptRepo.On("CountDistinctSubmittedStudents", uint(1)).Return(int64(1), nil)
	f.resultRepo.On("Create", mock.AnythingOfType("*model.Result")).Return(errors.New("duplicate key value violates unique constraint"))
	f.resultRepo.On("FindByAttemptID", uint(40)).Return(winner, nil)

	result, err := f.svc.GenerateResult(context.Background(), 40)
	require.NoError(t, err)
	assert.Same(t, winner, result)
}

func TestPublishResult(t *testing.T) {
	f := newResultFixture(t)

	result := &model.Result{ID: 3, AttemptID: 40}
	f.resultRepo.On("FindByID", uint(3)).Return(result, nil)
	f.resultRepo.On("Update", result).Return(nil)

	published, err := f.svc.Publish(3)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
	require.NotNil(t, published.PublishedAt)

	firstPublishedAt := *published.PublishedAt
	again, err := f.svc.Publish(3)
	require.NoError(t, err)
	assert.Equal(t, firstPublishedAt, *again.PublishedAt, "republishing does not move the timestamp")
	f.resultRepo.AssertNumberOfCalls(t, "Update", 1)
}

func TestGetResultWithBreakdown(t *testing.T) {
	f := newResultFixture(t)

	result := &model.Result{ID: 4, AttemptID: 40, Score: 8, TotalMarks: 10, Grade: model.GradeB}
	answers := []model.Answer{
		{ID: 400, QuestionID: 1, SelectedOptions: []string{"A"}, Score: 5, MaxScore: 5, IsCorrect: true, IsGraded: true,
			Question: model.Question{ID: 1, QuestionText: "Which option is correct?", Type: model.QuestionMultipleChoice, CorrectAnswer: "A"}},
		{ID: 401, QuestionID: 2, AnswerText: "Plants make food from light", Score: 3, MaxScore: 5, IsCorrect: true, IsGraded: true, Feedback: "Good answer.",
			Question: model.Question{ID: 2, QuestionText: "Explain photosynthesis.", Type: model.QuestionEssay,
				CorrectAnswer: "Plants convert light into chemical energy", Explanation: "Photosynthesis stores light energy as glucose."}},
		{ID: 402, QuestionID: 3, AnswerText: "pending",
			Question: model.Question{ID: 3, QuestionText: "Bonus question.", Type: model.QuestionEssay}},
	}
	f.resultRepo.On("FindByAttemptID", uint(40)).Return(result, nil)
	f.answerRepo.On("FindByAttemptID", uint(40)).Return(answers, nil)

	resp, err := f.svc.GetResultWithBreakdown(40)
	require.NoError(t, err)

	assert.Equal(t, "B", resp.Grade)
	require.Len(t, resp.Breakdown, 2, "ungraded answers stay out of the breakdown")
	assert.Equal(t, "A", resp.Breakdown[0].StudentAnswer)
	assert.Equal(t, "A", resp.Breakdown[0].CorrectAnswer)
	essay := resp.Breakdown[1]
	assert.Equal(t, "essay", essay.Type)
	assert.Equal(t, "Plants make food from light", essay.StudentAnswer)
	assert.Equal(t, "Plants convert light into chemical energy", essay.CorrectAnswer)
	assert.Equal(t, 3.0, essay.StudentScore)
	assert.Equal(t, "Photosynthesis stores light energy as glucose.", essay.Explanation)
	assert.Equal(t, "Good answer.", essay.Feedback)
}
