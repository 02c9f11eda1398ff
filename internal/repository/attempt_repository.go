package repository

import (
	"github.com/ptmanh/examcore/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.ExamAttempt) error
	Update(attempt *model.ExamAttempt) error
	FindByID(id uint) (*model.ExamAttempt, error)
	// FindByIDWithAnswers eager loads the attempt's answers and their
	// questions for scoring and result building.
	FindByIDWithAnswers(id uint) (*model.ExamAttempt, error)
	FindByStudentAndExam(studentID, examID uint) (*model.ExamAttempt, error)
	FindByStudent(studentID uint) ([]model.ExamAttempt, error)
	// CountDistinctSubmittedStudents counts students with a submitted
	// attempt for the exam, used as the ranking population.
	CountDistinctSubmittedStudents(examID uint) (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.ExamAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) Update(attempt *model.ExamAttempt) error {
	return r.db.Save(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByIDWithAnswers(id uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	err := r.db.
		Preload("Answers").
		Preload("Answers.Question").
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByStudentAndExam(studentID, examID uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	err := r.db.
		Where("student_id = ? AND exam_id = ?", studentID, examID).
		Order("created_at desc").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByStudent(studentID uint) ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	err := r.db.
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) CountDistinctSubmittedStudents(examID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.ExamAttempt{}).
		Where("exam_id = ? AND status = ?", examID, model.AttemptSubmitted).
		Distinct("student_id").
		Count(&count).Error
	return count, err
}
