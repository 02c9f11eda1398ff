package model

import (
	"time"

	"gorm.io/gorm"
)

type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// Result is the durable, student-visible outcome of a terminal attempt.
// The unique index on AttemptID is the hard guarantee that an attempt is
// finalized into at most one result, whatever races the callers manage.
type Result struct {
	ID        uint `gorm:"primarykey" json:"id"`
	StudentID uint `json:"student_id" gorm:"not null;index"`
	ExamID    uint `json:"exam_id" gorm:"not null;index"`
	AttemptID uint `json:"attempt_id" gorm:"not null;uniqueIndex"`

	Score      float64 `json:"score"`
	TotalMarks float64 `json:"total_marks"`
	Percentage float64 `json:"percentage"`
	Grade      Grade   `json:"grade"`

	Rank          int `json:"rank"`
	TotalStudents int `json:"total_students"`

	QuestionsAnswered int `json:"questions_answered"`
	TotalQuestions    int `json:"total_questions"`
	CorrectAnswers    int `json:"correct_answers"`
	WrongAnswers      int `json:"wrong_answers"`
	TimeSpent         int `json:"time_spent"`

	IsPassed       bool    `json:"is_passed"`
	PassPercentage float64 `json:"pass_percentage"`

	IsPublished bool       `json:"is_published" gorm:"default:false"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
