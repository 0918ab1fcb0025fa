package model

import (
	"encoding/json"
)

// Session 某教学周下的一个课次，Data 为 AI 生成的分时段讲课内容；
// 所属课程经由 Week 间接得到，不冗余存储
type Session struct {
	BaseModel
	WeekID    uint            `gorm:"index;not null" json:"weekId"`
	SessionNo int             `gorm:"not null" json:"session_no"`
	Data      json.RawMessage `gorm:"type:json" json:"data"`

	Week *Week `json:"week,omitempty"`
}

func (Session) TableName() string {
	return "sessions"
}
