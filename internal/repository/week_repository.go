package repository

import (
	"syllabus_ai_backend/internal/model"

	"gorm.io/gorm"
)

type WeekRepository struct {
	DB *gorm.DB
}

func NewWeekRepository(db *gorm.DB) *WeekRepository {
	return &WeekRepository{DB: db}
}

func (r *WeekRepository) WithTx(tx *gorm.DB) *WeekRepository {
	return &WeekRepository{DB: tx}
}

func (r *WeekRepository) FindByID(id uint) (*model.Week, error) {
	var week model.Week
	err := r.DB.Preload("Course").First(&week, id).Error
	if err != nil {
		return nil, err
	}
	return &week, nil
}

func (r *WeekRepository) CreateBatch(weeks []model.Week) error {
	return r.DB.Create(&weeks).Error
}

func (r *WeekRepository) MarkPlanned(id uint) error {
	return r.DB.Model(&model.Week{}).Where("id = ?", id).Update("planned", true).Error
}
