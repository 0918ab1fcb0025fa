package repository

import (
	"syllabus_ai_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) WithTx(tx *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: tx}
}

// FindByCode 课程代码仅在查询层做存在性检查，存储层不加唯一约束
func (r *CourseRepository) FindByCode(code string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("code = ?", code).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

// FindAllWithWeeks 全量课程及其教学周，周按 week_number 升序
func (r *CourseRepository) FindAllWithWeeks() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Weeks", func(db *gorm.DB) *gorm.DB {
		return db.Order("week_number ASC")
	}).Find(&courses).Error
	return courses, err
}
