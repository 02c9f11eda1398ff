package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Answer holds one student's response to one question within an attempt.
// MaxScore is snapshotted from the question at creation time and never
// re-read, so later authoring edits cannot skew an in-flight attempt.
type Answer struct {
	ID         uint     `gorm:"primarykey" json:"id"`
	AttemptID  uint     `json:"attempt_id" gorm:"not null;uniqueIndex:idx_answers_attempt_question"`
	QuestionID uint     `json:"question_id" gorm:"not null;uniqueIndex:idx_answers_attempt_question"`
	Question   Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	StudentID  uint     `json:"student_id" gorm:"not null;index"`

	AnswerText      string   `json:"answer_text,omitempty" gorm:"type:text"`
	SelectedOptions []string `json:"selected_options,omitempty" gorm:"serializer:json"`

	Score     float64 `json:"score" gorm:"default:0"`
	MaxScore  float64 `json:"max_score" gorm:"not null"`
	IsCorrect bool    `json:"is_correct" gorm:"default:false"`
	IsGraded  bool    `json:"is_graded" gorm:"default:false"`
	Feedback  string  `json:"feedback,omitempty" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// FormattedAnswer renders the response for display and for similarity
// scoring: selected options joined, otherwise the free text.
func (a *Answer) FormattedAnswer() string {
	if len(a.SelectedOptions) > 0 {
		return strings.Join(a.SelectedOptions, ", ")
	}
	return a.AnswerText
}
