package service

import (
	"context"
	"testing"

	"syllabus_ai_backend/internal/model"
	"syllabus_ai_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const courseAIResponse = `{
	"week 1": {"topic": "Introduction", "summary": "Course overview"},
	"week 2": {"topic": "Variables", "summary": "Types and bindings"},
	"week 3": {"topic": "Control flow", "summary": "Branches and loops"}
}`

func validCourseRequest() CreateCourseRequest {
	return CreateCourseRequest{
		TeacherEmail:    "jdoe@university.edu",
		Code:            "CS101",
		Name:            "Intro to CS",
		Content:         "Programming fundamentals",
		Objectives:      "Write small programs",
		Prerequisites:   "None",
		Duration:        3,
		SessionsPerWeek: 2,
		HomeworkHours:   4,
	}
}

func TestCreateCourseStructure(t *testing.T) {
	db := newTestDB(t)
	ai := &fakeGenerator{response: courseAIResponse}
	svc := newCourseService(t, db, ai)

	status, err := svc.CreateCourseStructure(context.Background(), validCourseRequest())
	require.NoError(t, err)
	assert.Equal(t, "New course created: Intro to CS", status)

	var teacher model.Teacher
	require.NoError(t, db.Where("email = ?", "jdoe@university.edu").First(&teacher).Error)
	assert.Equal(t, "jdoe", teacher.Handle)

	var course model.Course
	require.NoError(t, db.Where("code = ?", "CS101").First(&course).Error)
	assert.Equal(t, teacher.ID, course.TeacherID)

	meta := course.Meta()
	assert.Equal(t, 3, meta.Duration)
	assert.Equal(t, 2, meta.SessionsPerWeek)
	assert.Equal(t, 4, meta.HomeworkHours)

	var weeks []model.Week
	require.NoError(t, db.Where("course_id = ?", course.ID).Order("week_number").Find(&weeks).Error)
	require.Len(t, weeks, 3)
	assert.Equal(t, "Introduction", weeks[0].Topic)
	assert.Equal(t, "Control flow", weeks[2].Topic)
	for _, w := range weeks {
		assert.False(t, w.Planned)
	}
}

func TestCreateCourseStructureMissingWeekGetsPlaceholder(t *testing.T) {
	db := newTestDB(t)
	ai := &fakeGenerator{response: `{
		"week 1": {"topic": "Introduction", "summary": "Course overview"},
		"week 3": {"topic": "Control flow", "summary": "Branches and loops"}
	}`}
	svc := newCourseService(t, db, ai)

	_, err := svc.CreateCourseStructure(context.Background(), validCourseRequest())
	require.NoError(t, err)

	var weeks []model.Week
	require.NoError(t, db.Order("week_number").Find(&weeks).Error)
	require.Len(t, weeks, 3)
	assert.Equal(t, "WIP", weeks[1].Topic)
	assert.Equal(t, "WIP", weeks[1].Summary)
	assert.Equal(t, "Introduction", weeks[0].Topic)
	assert.Equal(t, "Control flow", weeks[2].Topic)
}

func TestCreateCourseStructureIdempotentOnCode(t *testing.T) {
	db := newTestDB(t)
	ai := &fakeGenerator{response: courseAIResponse}
	svc := newCourseService(t, db, ai)

	_, err := svc.CreateCourseStructure(context.Background(), validCourseRequest())
	require.NoError(t, err)

	status, err := svc.CreateCourseStructure(context.Background(), validCourseRequest())
	require.NoError(t, err)
	assert.Equal(t, "Course already exists: CS101", status)

	var weekCount, courseCount int64
	require.NoError(t, db.Model(&model.Week{}).Count(&weekCount).Error)
	require.NoError(t, db.Model(&model.Course{}).Count(&courseCount).Error)
	assert.EqualValues(t, 3, weekCount)
	assert.EqualValues(t, 1, courseCount)
}

func TestCreateCourseStructureInvalidEmail(t *testing.T) {
	db := newTestDB(t)
	ai := &fakeGenerator{response: courseAIResponse}
	svc := newCourseService(t, db, ai)

	req := validCourseRequest()
	req.TeacherEmail = "jdoe@gmail.com"

	_, err := svc.CreateCourseStructure(context.Background(), req)
	assert.ErrorIs(t, err, util.ErrInvalidTeacherEmail)

	// 校验失败前不应有任何写入，也不应调用 AI
	assert.Zero(t, ai.calls)
	var teacherCount int64
	require.NoError(t, db.Model(&model.Teacher{}).Count(&teacherCount).Error)
	assert.Zero(t, teacherCount)
}

func TestCreateCourseStructureBadAIJSON(t *testing.T) {
	db := newTestDB(t)
	ai := &fakeGenerator{response: "Sure! Here is the syllabus you asked for."}
	svc := newCourseService(t, db, ai)

	_, err := svc.CreateCourseStructure(context.Background(), validCourseRequest())
	assert.ErrorIs(t, err, util.ErrInvalidAIJSON)

	var teacherCount, courseCount int64
	require.NoError(t, db.Model(&model.Teacher{}).Count(&teacherCount).Error)
	require.NoError(t, db.Model(&model.Course{}).Count(&courseCount).Error)
	assert.Zero(t, teacherCount)
	assert.Zero(t, courseCount)
}

func TestCreateCourseStructureDefaults(t *testing.T) {
	db := newTestDB(t)
	ai := &fakeGenerator{response: courseAIResponse}
	svc := newCourseService(t, db, ai)

	req := validCourseRequest()
	req.Duration = 0
	req.SessionsPerWeek = 0
	req.HomeworkHours = 0
	req.Content = ""

	_, err := svc.CreateCourseStructure(context.Background(), req)
	require.NoError(t, err)

	var course model.Course
	require.NoError(t, db.First(&course).Error)
	meta := course.Meta()
	assert.Equal(t, 12, meta.Duration)
	assert.Equal(t, 2, meta.SessionsPerWeek)
	assert.Equal(t, 6, meta.HomeworkHours)
	assert.NotEmpty(t, course.Content)

	var weekCount int64
	require.NoError(t, db.Model(&model.Week{}).Count(&weekCount).Error)
	assert.EqualValues(t, 12, weekCount)
}

func TestGetAllCoursesWeeksSorted(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(t, db, &fakeGenerator{})

	teacher := model.Teacher{Email: "jdoe@university.edu", Handle: "jdoe"}
	require.NoError(t, db.Create(&teacher).Error)

	course := model.Course{TeacherID: teacher.ID, Code: "CS101", Name: "Intro to CS", Content: "x"}
	require.NoError(t, course.SetMeta(model.CourseMeta{Duration: 3, SessionsPerWeek: 2}))
	require.NoError(t, db.Create(&course).Error)

	// 乱序插入，读取时必须按 week_number 升序
	for _, n := range []int{3, 1, 2} {
		require.NoError(t, db.Create(&model.Week{
			CourseID: course.ID, WeekNumber: n, Topic: "T", Summary: "S",
		}).Error)
	}

	result, err := svc.GetAllCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Len(t, result[0].Weeks, 3)
	assert.Equal(t, 1, result[0].Weeks[0].WeekNumber)
	assert.Equal(t, 2, result[0].Weeks[1].WeekNumber)
	assert.Equal(t, 3, result[0].Weeks[2].WeekNumber)
	assert.Equal(t, 3, result[0].Duration)
}
