package model

// Week 课程的一个教学周，topic/summary 由 AI 起草
type Week struct {
	BaseModel
	CourseID   uint   `gorm:"uniqueIndex:idx_course_week;not null" json:"courseId"`
	WeekNumber int    `gorm:"uniqueIndex:idx_course_week;not null" json:"week_number"`
	Topic      string `gorm:"size:200;not null" json:"topic"`
	Summary    string `gorm:"type:text;not null" json:"summary"`
	Planned    bool   `gorm:"not null;default:false" json:"planned"` // 生成课次后置 true，不再复位

	Course   *Course   `json:"course,omitempty"`
	Sessions []Session `gorm:"constraint:OnDelete:CASCADE" json:"sessions,omitempty"`
}

func (Week) TableName() string {
	return "weeks"
}
