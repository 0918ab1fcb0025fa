package service

import (
	"context"
	"testing"

	"syllabus_ai_backend/internal/model"
	"syllabus_ai_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const sessionAIResponse = `{
	"session 1": {"Minutes 00-30": {"topic": "Recap", "content": "Review previous week"}},
	"session 2": {"Minutes 00-30": {"topic": "New material", "content": "Introduce sorting"}}
}`

// seedWeek 建一个含教师/课程/单周的最小数据集
func seedWeek(t *testing.T, db *gorm.DB, planned bool) *model.Week {
	t.Helper()

	teacher := model.Teacher{Email: "jdoe@university.edu", Handle: "jdoe"}
	require.NoError(t, db.Create(&teacher).Error)

	course := model.Course{TeacherID: teacher.ID, Code: "CS101", Name: "Intro to CS", Content: "Fundamentals"}
	require.NoError(t, course.SetMeta(model.CourseMeta{
		Objectives:      "Write small programs",
		Duration:        3,
		SessionsPerWeek: 2,
		HomeworkHours:   4,
	}))
	require.NoError(t, db.Create(&course).Error)

	week := model.Week{CourseID: course.ID, WeekNumber: 1, Topic: "Sorting", Summary: "Comparison sorts", Planned: planned}
	require.NoError(t, db.Create(&week).Error)
	return &week
}

func TestGenerateWeekSessions(t *testing.T) {
	db := newTestDB(t)
	week := seedWeek(t, db, false)
	ai := &fakeGenerator{response: sessionAIResponse}
	svc := newSessionService(t, db, ai)

	resp, err := svc.GenerateWeekSessions(context.Background(), week.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sorting", resp.Topic)
	require.Len(t, resp.Sessions, 2)

	var sessions []model.Session
	require.NoError(t, db.Where("week_id = ?", week.ID).Order("session_no").Find(&sessions).Error)
	require.Len(t, sessions, 2)
	assert.Equal(t, 1, sessions[0].SessionNo)
	assert.Equal(t, 2, sessions[1].SessionNo)

	var reloaded model.Week
	require.NoError(t, db.First(&reloaded, week.ID).Error)
	assert.True(t, reloaded.Planned)

	// 提示词应包含周主题与课次数
	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Sorting")
	assert.Contains(t, ai.prompts[0], "2")
}

func TestGenerateWeekSessionsMissingID(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db, &fakeGenerator{})

	_, err := svc.GenerateWeekSessions(context.Background(), 0)
	assert.ErrorIs(t, err, util.ErrMissingWeekID)
}

func TestGenerateWeekSessionsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db, &fakeGenerator{})

	_, err := svc.GenerateWeekSessions(context.Background(), 999)
	assert.ErrorIs(t, err, util.ErrWeekNotFound)
}

func TestGenerateWeekSessionsAlreadyPlanned(t *testing.T) {
	db := newTestDB(t)
	week := seedWeek(t, db, true)
	ai := &fakeGenerator{response: sessionAIResponse}
	svc := newSessionService(t, db, ai)

	_, err := svc.GenerateWeekSessions(context.Background(), week.ID)
	assert.ErrorIs(t, err, util.ErrWeekAlreadyPlanned)

	// 冲突时不触发 AI，也不建任何课次
	assert.Zero(t, ai.calls)
	var count int64
	require.NoError(t, db.Model(&model.Session{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGenerateWeekSessionsSkipsMissingKeys(t *testing.T) {
	db := newTestDB(t)
	week := seedWeek(t, db, false)
	ai := &fakeGenerator{response: `{"session 1": {"Minutes 00-30": {"topic": "Recap", "content": "Review"}}}`}
	svc := newSessionService(t, db, ai)

	resp, err := svc.GenerateWeekSessions(context.Background(), week.ID)
	require.NoError(t, err)

	// 缺失的 session 2 静默跳过，不造占位行；planned 照样置位
	require.Len(t, resp.Sessions, 1)
	var count int64
	require.NoError(t, db.Model(&model.Session{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var reloaded model.Week
	require.NoError(t, db.First(&reloaded, week.ID).Error)
	assert.True(t, reloaded.Planned)
}

func TestGenerateWeekSessionsBadAIJSONWritesNothing(t *testing.T) {
	db := newTestDB(t)
	week := seedWeek(t, db, false)
	ai := &fakeGenerator{response: "not json"}
	svc := newSessionService(t, db, ai)

	_, err := svc.GenerateWeekSessions(context.Background(), week.ID)
	assert.ErrorIs(t, err, util.ErrInvalidAIJSON)

	var count int64
	require.NoError(t, db.Model(&model.Session{}).Count(&count).Error)
	assert.Zero(t, count)

	var reloaded model.Week
	require.NoError(t, db.First(&reloaded, week.ID).Error)
	assert.False(t, reloaded.Planned)
}

func TestGetWeekSessions(t *testing.T) {
	db := newTestDB(t)
	week := seedWeek(t, db, true)
	require.NoError(t, db.Create(&model.Session{
		WeekID: week.ID, SessionNo: 1, Data: []byte(`{"Minutes 00-30": {"topic": "Recap", "content": "Review"}}`),
	}).Error)

	svc := newSessionService(t, db, &fakeGenerator{})
	resp, err := svc.GetWeekSessions(week.ID)
	require.NoError(t, err)

	assert.Equal(t, "Sorting", resp.Topic)
	assert.Equal(t, "Comparison sorts", resp.Summary)
	require.Len(t, resp.Sessions, 1)
	assert.JSONEq(t, `{"Minutes 00-30": {"topic": "Recap", "content": "Review"}}`, string(resp.Sessions[0].MinutesData))
}

func TestRegenerateWeekSessionsReplacesRows(t *testing.T) {
	db := newTestDB(t)
	week := seedWeek(t, db, true)
	require.NoError(t, db.Create(&model.Session{
		WeekID: week.ID, SessionNo: 1, Data: []byte(`{"old": true}`),
	}).Error)

	ai := &fakeGenerator{response: sessionAIResponse}
	svc := newSessionService(t, db, ai)

	resp, err := svc.RegenerateWeekSessions(context.Background(), week.ID, "focus on quicksort")
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 2)

	var sessions []model.Session
	require.NoError(t, db.Where("week_id = ?", week.ID).Find(&sessions).Error)
	require.Len(t, sessions, 2)
	for _, s := range sessions {
		assert.NotContains(t, string(s.Data), "old")
	}

	// 教师附加要求要进提示词
	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "focus on quicksort")
}

func TestRegenerateWeekSessionsRequiresPlanned(t *testing.T) {
	db := newTestDB(t)
	week := seedWeek(t, db, false)
	svc := newSessionService(t, db, &fakeGenerator{response: sessionAIResponse})

	_, err := svc.RegenerateWeekSessions(context.Background(), week.ID, "")
	assert.ErrorIs(t, err, util.ErrWeekNotPlanned)
}
