package repository

import (
	"github.com/ptmanh/examcore/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository interface {
	// Upsert inserts the answer or replaces the student's previous answer
	// for the same (attempt, question) pair.
	Upsert(answer *model.Answer) error
	Update(answer *model.Answer) error
	FindByID(id uint) (*model.Answer, error)
	FindByAttemptID(attemptID uint) ([]model.Answer, error)
	FindByAttemptAndQuestion(attemptID, questionID uint) (*model.Answer, error)
	CountByAttempt(attemptID uint) (int64, error)
	CountGradedByAttempt(attemptID uint) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Upsert(answer *model.Answer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "attempt_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"answer_text", "selected_options", "updated_at",
		}),
	}).Create(answer).Error
}

func (r *answerRepository) Update(answer *model.Answer) error {
	return r.db.Save(answer).Error
}

func (r *answerRepository) FindByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.Preload("Question").First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindByAttemptID(attemptID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Preload("Question").
		Where("attempt_id = ?", attemptID).
		Order("question_id asc").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) FindByAttemptAndQuestion(attemptID, questionID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.
		Where("attempt_id = ? AND question_id = ?", attemptID, questionID).
		First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) CountByAttempt(attemptID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).
		Where("attempt_id = ?", attemptID).
		Count(&count).Error
	return count, err
}

func (r *answerRepository) CountGradedByAttempt(attemptID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).
		Where("attempt_id = ? AND is_graded = ?", attemptID, true).
		Count(&count).Error
	return count, err
}
