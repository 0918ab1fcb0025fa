package model

// Teacher 教师身份，以校内邮箱为自然键，首次建课时惰性创建
type Teacher struct {
	BaseModel
	Email  string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Handle string `gorm:"size:80;not null" json:"handle"` // 邮箱 @ 前的本地部分

	Courses []Course `gorm:"constraint:OnDelete:CASCADE" json:"courses,omitempty"`
}

func (Teacher) TableName() string {
	return "teachers"
}
