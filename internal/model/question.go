package model

import (
	"time"

	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionShortAnswer    QuestionType = "short_answer"
	QuestionEssay          QuestionType = "essay"
)

// QuestionKind is the closed scoring dispatch, resolved once at the boundary
// instead of switching on the raw type string inside the scorer.
type QuestionKind int

const (
	ObjectiveQuestion QuestionKind = iota
	SimilarityQuestion
	UnknownQuestion
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SectionID     uint           `json:"section_id" gorm:"not null;index"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	Type          QuestionType   `json:"type" gorm:"not null"`
	Options       []string       `json:"options,omitempty" gorm:"serializer:json"`
	CorrectAnswer string         `json:"correct_answer,omitempty" gorm:"type:text"`
	Marks         float64        `json:"marks" gorm:"not null"`
	Order         int            `json:"order" gorm:"column:question_order;not null"`
	Explanation   string         `json:"explanation,omitempty" gorm:"type:text"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q *Question) Kind() QuestionKind {
	switch q.Type {
	case QuestionMultipleChoice, QuestionTrueFalse:
		return ObjectiveQuestion
	case QuestionShortAnswer, QuestionEssay:
		return SimilarityQuestion
	default:
		return UnknownQuestion
	}
}
