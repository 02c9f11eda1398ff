package repository

import (
	"github.com/ptmanh/examcore/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	// Create relies on the unique index on attempt_id to reject a second
	// result for the same attempt.
	Create(result *model.Result) error
	Update(result *model.Result) error
	FindByID(id uint) (*model.Result, error)
	FindByAttemptID(attemptID uint) (*model.Result, error)
	FindByExamID(examID uint) ([]model.Result, error)
	FindByStudentID(studentID uint) ([]model.Result, error)
	// CountStrictlyGreater counts results for the exam with a score above
	// the given one. Rank is that count plus one, so ties share a rank.
	CountStrictlyGreater(examID uint, score float64) (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) Update(result *model.Result) error {
	return r.db.Save(result).Error
}

func (r *resultRepository) FindByID(id uint) (*model.Result, error) {
	var result model.Result
	if err := r.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindByAttemptID(attemptID uint) (*model.Result, error) {
	var result model.Result
	err := r.db.Where("attempt_id = ?", attemptID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindByExamID(examID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.
		Where("exam_id = ?", examID).
		Order("score desc").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) FindByStudentID(studentID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) CountStrictlyGreater(examID uint, score float64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Result{}).
		Where("exam_id = ? AND score > ?", examID, score).
		Count(&count).Error
	return count, err
}
