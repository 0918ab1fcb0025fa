package service

import (
	"bytes"
	"syllabus_ai_backend/internal/config"
	"text/template"
)

// CoursePromptData 课程级提示词上下文，每个字段都会原样嵌入模板
type CoursePromptData struct {
	CourseName      string
	Content         string
	Objectives      string
	Prerequisites   string
	Duration        int
	SessionsPerWeek int
	HomeworkHours   int
}

// SessionPromptData 课次级提示词上下文
type SessionPromptData struct {
	CourseName      string
	Content         string
	Objectives      string
	Topic           string
	Summary         string
	SessionCount    int
	HoursPerSession int
	ExtraPrompt     string // 重新生成时教师附加的要求，可为空
}

// PromptBuilder 渲染外部模板文件。模板每次调用时读取，
// 文件缺失或语法错误对调用方而言是致命前置条件失败。
type PromptBuilder struct {
	cfg config.PromptConfig
}

func NewPromptBuilder(cfg config.PromptConfig) *PromptBuilder {
	return &PromptBuilder{cfg: cfg}
}

func (b *PromptBuilder) BuildCoursePrompt(data CoursePromptData) (string, error) {
	return b.render(b.cfg.CourseTemplate, data)
}

func (b *PromptBuilder) BuildSessionPrompt(data SessionPromptData) (string, error) {
	return b.render(b.cfg.SessionTemplate, data)
}

func (b *PromptBuilder) render(path string, data interface{}) (string, error) {
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
