package repository

import (
	"github.com/ptmanh/examcore/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	FindByID(id uint) (*model.Exam, error)
	// FindByIDWithQuestions eager loads sections and their questions in
	// display order.
	FindByIDWithQuestions(id uint) (*model.Exam, error)
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("section_order asc")
		}).
		Preload("Sections.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("question_order asc")
		}).
		First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}
