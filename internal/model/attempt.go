package model

import (
	"time"

	"gorm.io/gorm"
)

type AttemptStatus string

const (
	AttemptInProgress   AttemptStatus = "in_progress"
	AttemptPaused       AttemptStatus = "paused"
	AttemptSubmitted    AttemptStatus = "submitted"
	AttemptTimedOut     AttemptStatus = "timed_out"
	AttemptDisqualified AttemptStatus = "disqualified"
)

// IsTerminal reports whether no further mutation is allowed, apart from the
// one-time scoring write.
func (s AttemptStatus) IsTerminal() bool {
	return s == AttemptSubmitted || s == AttemptTimedOut || s == AttemptDisqualified
}

// Violation is one anti-cheating event recorded against an attempt (tab
// switch, fullscreen exit, copy attempt, ...).
type Violation struct {
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// ExamAttempt is one student's session against one exam. The unique index
// on (student, exam) allows at most one attempt per pair; retakes go
// through an operator clearing the prior attempt.
type ExamAttempt struct {
	ID        uint          `gorm:"primarykey" json:"id"`
	StudentID uint          `json:"student_id" gorm:"not null;uniqueIndex:idx_attempts_student_exam"`
	ExamID    uint          `json:"exam_id" gorm:"not null;uniqueIndex:idx_attempts_student_exam"`
	Exam      Exam          `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
	Status    AttemptStatus `json:"status" gorm:"default:'in_progress';index"`

	StartedAt   *time.Time `json:"started_at,omitempty"`
	PausedAt    *time.Time `json:"paused_at,omitempty"`
	ResumedAt   *time.Time `json:"resumed_at,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`

	// TimeSpent accumulates whole seconds of in-progress wall clock; it only
	// ever grows.
	TimeSpent         int `json:"time_spent" gorm:"default:0"`
	QuestionsAnswered int `json:"questions_answered" gorm:"default:0"`
	TotalQuestions    int `json:"total_questions" gorm:"default:0"`

	// Scoring fields, written exactly once when the attempt is graded.
	Score      float64 `json:"score" gorm:"default:0"`
	TotalMarks float64 `json:"total_marks" gorm:"default:0"`
	Percentage float64 `json:"percentage" gorm:"default:0"`
	IsGraded   bool    `json:"is_graded" gorm:"default:false"`

	CheatingWarnings    int         `json:"cheating_warnings" gorm:"default:0"`
	MaxCheatingWarnings int         `json:"max_cheating_warnings" gorm:"default:3"`
	Violations          []Violation `json:"violations,omitempty" gorm:"serializer:json"`

	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:AttemptID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *ExamAttempt) IsTerminal() bool {
	return a.Status.IsTerminal()
}

func (a *ExamAttempt) RemainingWarnings() int {
	remaining := a.MaxCheatingWarnings - a.CheatingWarnings
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ShouldAutoSubmit is advisory only: the caller decides whether to force a
// submit, recording a violation never transitions the attempt by itself.
func (a *ExamAttempt) ShouldAutoSubmit() bool {
	return a.CheatingWarnings >= a.MaxCheatingWarnings
}
