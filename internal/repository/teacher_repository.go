package repository

import (
	"syllabus_ai_backend/internal/model"

	"gorm.io/gorm"
)

type TeacherRepository struct {
	DB *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) *TeacherRepository {
	return &TeacherRepository{DB: db}
}

// WithTx 返回绑定到事务的仓库副本
func (r *TeacherRepository) WithTx(tx *gorm.DB) *TeacherRepository {
	return &TeacherRepository{DB: tx}
}

func (r *TeacherRepository) FindByEmail(email string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.DB.Where("email = ?", email).First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *TeacherRepository) Create(teacher *model.Teacher) error {
	return r.DB.Create(teacher).Error
}
