package dto

import (
	"time"

	"github.com/ptmanh/examcore/internal/model"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type AttemptResponse struct {
	ID                uint       `json:"id"`
	StudentID         uint       `json:"student_id"`
	ExamID            uint       `json:"exam_id"`
	Status            string     `json:"status"`
	StartedAt         *time.Time `json:"started_at,omitempty"`
	PausedAt          *time.Time `json:"paused_at,omitempty"`
	ResumedAt         *time.Time `json:"resumed_at,omitempty"`
	SubmittedAt       *time.Time `json:"submitted_at,omitempty"`
	TimeSpent         int        `json:"time_spent"`
	QuestionsAnswered int        `json:"questions_answered"`
	TotalQuestions    int        `json:"total_questions"`
	Score             float64    `json:"score"`
	TotalMarks        float64    `json:"total_marks"`
	Percentage        float64    `json:"percentage"`
	IsGraded          bool       `json:"is_graded"`
	CheatingWarnings  int        `json:"cheating_warnings"`
	CreatedAt         time.Time  `json:"created_at"`
}

type AnswerResponse struct {
	ID              uint      `json:"id"`
	AttemptID       uint      `json:"attempt_id"`
	QuestionID      uint      `json:"question_id"`
	AnswerText      string    `json:"answer_text,omitempty"`
	SelectedOptions []string  `json:"selected_options,omitempty"`
	Score           float64   `json:"score"`
	MaxScore        float64   `json:"max_score"`
	IsCorrect       bool      `json:"is_correct"`
	IsGraded        bool      `json:"is_graded"`
	Feedback        string    `json:"feedback,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TimeRemainingResponse struct {
	TimeRemainingSeconds int    `json:"time_remaining_seconds"`
	Status               string `json:"status"`
}

type CheatingWarningResponse struct {
	WarningCount     int               `json:"warning_count"`
	MaxWarnings      int               `json:"max_warnings"`
	RemainingWarning int               `json:"remaining_warnings"`
	ShouldAutoSubmit bool              `json:"should_auto_submit"`
	Violations       []model.Violation `json:"violations"`
}

type ScoringProgressResponse struct {
	TotalAnswers       int     `json:"total_answers"`
	GradedAnswers      int     `json:"graded_answers"`
	ProgressPercentage float64 `json:"progress_percentage"`
	IsComplete         bool    `json:"is_complete"`
}

// QuestionResultDTO is the per-question line of a result breakdown, built
// from graded answers only.
type QuestionResultDTO struct {
	QuestionID    uint    `json:"question_id"`
	QuestionText  string  `json:"question_text"`
	Type          string  `json:"type"`
	StudentAnswer string  `json:"student_answer"`
	CorrectAnswer string  `json:"correct_answer,omitempty"`
	StudentScore  float64 `json:"student_score"`
	MaxScore      float64 `json:"max_score"`
	IsCorrect     bool    `json:"is_correct"`
	Explanation   string  `json:"explanation,omitempty"`
	Feedback      string  `json:"feedback,omitempty"`
}

type ResultResponse struct {
	ID                uint                `json:"id"`
	StudentID         uint                `json:"student_id"`
	ExamID            uint                `json:"exam_id"`
	AttemptID         uint                `json:"attempt_id"`
	Score             float64             `json:"score"`
	TotalMarks        float64             `json:"total_marks"`
	Percentage        float64             `json:"percentage"`
	Grade             string              `json:"grade"`
	Rank              int                 `json:"rank"`
	TotalStudents     int                 `json:"total_students"`
	QuestionsAnswered int                 `json:"questions_answered"`
	TotalQuestions    int                 `json:"total_questions"`
	CorrectAnswers    int                 `json:"correct_answers"`
	WrongAnswers      int                 `json:"wrong_answers"`
	TimeSpent         int                 `json:"time_spent"`
	IsPassed          bool                `json:"is_passed"`
	PassPercentage    float64             `json:"pass_percentage"`
	IsPublished       bool                `json:"is_published"`
	PublishedAt       *time.Time          `json:"published_at,omitempty"`
	Breakdown         []QuestionResultDTO `json:"breakdown,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}
