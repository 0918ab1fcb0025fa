package repository

import (
	"syllabus_ai_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) WithTx(tx *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: tx}
}

func (r *SessionRepository) CreateBatch(sessions []model.Session) error {
	return r.DB.Create(&sessions).Error
}

func (r *SessionRepository) FindByWeekID(weekID uint) ([]model.Session, error) {
	var sessions []model.Session
	err := r.DB.Where("week_id = ?", weekID).Order("session_no ASC").Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) DeleteByWeekID(weekID uint) error {
	return r.DB.Where("week_id = ?", weekID).Delete(&model.Session{}).Error
}
