package model

import (
	"time"

	"gorm.io/gorm"
)

type ExamStatus string

const (
	ExamStatusDraft     ExamStatus = "draft"
	ExamStatusPublished ExamStatus = "published"
	ExamStatusClosed    ExamStatus = "closed"
)

// Exam is a read-only projection here: authoring lives in a separate
// subsystem and published exams are never edited while attempts run.
type Exam struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Title           string         `json:"title" gorm:"not null"`
	Description     string         `json:"description,omitempty"`
	DurationMinutes int            `json:"duration_minutes" gorm:"not null"`
	Status          ExamStatus     `json:"status" gorm:"default:'draft';index"`
	TotalMarks      float64        `json:"total_marks" gorm:"default:0"`
	TotalQuestions  int            `json:"total_questions" gorm:"default:0"`
	IsActive        bool           `json:"is_active" gorm:"default:true"`
	Sections        []Section      `json:"sections,omitempty" gorm:"foreignKey:ExamID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

type Section struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	ExamID    uint           `json:"exam_id" gorm:"not null;index"`
	Title     string         `json:"title" gorm:"not null"`
	Order     int            `json:"order" gorm:"column:section_order;not null"`
	Questions []Question     `json:"questions,omitempty" gorm:"foreignKey:SectionID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AllQuestions flattens every section; the full question set of an exam is
// the union over all its sections.
func (e *Exam) AllQuestions() []Question {
	var questions []Question
	for _, section := range e.Sections {
		questions = append(questions, section.Questions...)
	}
	return questions
}

// AllMarks sums marks over every question in every section, answered or not.
func (e *Exam) AllMarks() float64 {
	total := 0.0
	for _, section := range e.Sections {
		for _, q := range section.Questions {
			total += q.Marks
		}
	}
	return total
}
