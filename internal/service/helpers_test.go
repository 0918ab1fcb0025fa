package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"syllabus_ai_backend/internal/config"
	"syllabus_ai_backend/internal/model"
	"syllabus_ai_backend/internal/repository"
	"syllabus_ai_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 每个测试独立的共享缓存内存库，连接池内可见同一数据
	testDBSeq++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Teacher{},
		&model.Course{},
		&model.Week{},
		&model.Session{},
	))
	return db
}

// fakeGenerator 替代外部 AI，记录收到的提示词
type fakeGenerator struct {
	response string
	err      error
	prompts  []string
	calls    int
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// newTestPrompts 写出极简模板文件，保证工作流测试不依赖 configs 目录
func newTestPrompts(t *testing.T) *PromptBuilder {
	t.Helper()

	dir := t.TempDir()
	coursePath := filepath.Join(dir, "course.tmpl")
	sessionPath := filepath.Join(dir, "session.tmpl")

	courseTmpl := `Course {{.CourseName}} for {{.Duration}} weeks, {{.SessionsPerWeek}} sessions/week, homework {{.HomeworkHours}}h. Content: {{.Content}} Objectives: {{.Objectives}} Prerequisites: {{.Prerequisites}}`
	sessionTmpl := `Week {{.Topic}} ({{.Summary}}) of {{.CourseName}}: {{.SessionCount}} sessions x {{.HoursPerSession}}h.{{if .ExtraPrompt}} Extra: {{.ExtraPrompt}}{{end}}`

	require.NoError(t, os.WriteFile(coursePath, []byte(courseTmpl), 0644))
	require.NoError(t, os.WriteFile(sessionPath, []byte(sessionTmpl), 0644))

	return NewPromptBuilder(config.PromptConfig{
		CourseTemplate:  coursePath,
		SessionTemplate: sessionPath,
	})
}

func newCourseService(t *testing.T, db *gorm.DB, ai Generator) *CourseService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Teacher.EmailDomain = "university.edu"
	return NewCourseService(
		repository.NewTeacherRepository(db),
		repository.NewCourseRepository(db),
		repository.NewWeekRepository(db),
		newTestPrompts(t),
		ai,
		cfg,
		db,
		nil,
	)
}

func newSessionService(t *testing.T, db *gorm.DB, ai Generator) *SessionService {
	t.Helper()
	return NewSessionService(
		repository.NewWeekRepository(db),
		repository.NewSessionRepository(db),
		newTestPrompts(t),
		ai,
		db,
	)
}
