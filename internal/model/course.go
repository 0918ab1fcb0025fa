package model

import (
	"encoding/json"
)

// CourseMeta 课程元数据，整体序列化到 courses.meta_data JSON 列
type CourseMeta struct {
	Objectives      string `json:"objectives"`
	Prerequisites   string `json:"prerequisites"`
	Duration        int    `json:"duration"`          // 周数
	SessionsPerWeek int    `json:"sessions_per_week"` // 每周课次，同时作为排课时的 session 数量
	HomeworkHours   int    `json:"homework_hours"`
	HoursPerSession int    `json:"hours_per_session,omitempty"` // 历史行可能携带，排课时缺省为 2
}

type Course struct {
	BaseModel
	TeacherID uint            `gorm:"index;not null" json:"teacherId"`
	Code      string          `gorm:"size:20;index;not null" json:"code"` // 例如 "CS101"，跨教师不唯一
	Name      string          `gorm:"size:200;not null" json:"name"`
	Content   string          `gorm:"type:text;not null" json:"content"`
	MetaData  json.RawMessage `gorm:"type:json;not null" json:"metaData"`

	Teacher *Teacher `json:"teacher,omitempty"`
	Weeks   []Week   `gorm:"constraint:OnDelete:CASCADE" json:"weeks,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Meta 解码 meta_data 列；损坏或为空时返回零值而不是报错，
// 调用方依赖字段级默认值兜底
func (c *Course) Meta() CourseMeta {
	var meta CourseMeta
	if len(c.MetaData) > 0 {
		_ = json.Unmarshal(c.MetaData, &meta)
	}
	return meta
}

func (c *Course) SetMeta(meta CourseMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	c.MetaData = data
	return nil
}
