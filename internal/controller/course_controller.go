package controller

import (
	"strconv"
	"syllabus_ai_backend/internal/service"
	"syllabus_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	service *service.CourseService
}

func NewCourseController(s *service.CourseService) *CourseController {
	return &CourseController{service: s}
}

type GenerateCourseRequest struct {
	TeacherEmail    string `form:"teacherEmail" binding:"required"`
	CourseCode      string `form:"courseCode" binding:"required"`
	CourseName      string `form:"courseName" binding:"required"`
	Content         string `form:"content"`
	Objectives      string `form:"objectives"`
	Prerequisites   string `form:"prerequisites"`
	Duration        string `form:"duration"`
	SessionsPerWeek string `form:"sessionsPerWeek"`
	Homework        string `form:"homework"`
}

// GenerateCourseStructure godoc
// @Summary 生成课程结构
// @Description 根据课程元数据调用 AI 起草逐周大纲并入库；课程代码已存在时为空操作
// @Tags 课程
// @Accept x-www-form-urlencoded
// @Produce json
// @Param teacherEmail formData string true "教师校内邮箱"
// @Param courseCode formData string true "课程代码"
// @Param courseName formData string true "课程名称"
// @Param content formData string false "课程内容"
// @Param objectives formData string false "教学目标"
// @Param prerequisites formData string false "先修要求"
// @Param duration formData int false "周数" default(12)
// @Param sessionsPerWeek formData int false "每周课次" default(2)
// @Param homework formData int false "每周作业小时数" default(6)
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /generate-course-structure [post]
func (c *CourseController) GenerateCourseStructure(ctx *gin.Context) {
	var req GenerateCourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// 数值字段缺失或非法时落到工作流默认值
	duration, _ := strconv.Atoi(req.Duration)
	sessionsPerWeek, _ := strconv.Atoi(req.SessionsPerWeek)
	homework, _ := strconv.Atoi(req.Homework)

	status, err := c.service.CreateCourseStructure(ctx.Request.Context(), service.CreateCourseRequest{
		TeacherEmail:    req.TeacherEmail,
		Code:            req.CourseCode,
		Name:            req.CourseName,
		Content:         req.Content,
		Objectives:      req.Objectives,
		Prerequisites:   req.Prerequisites,
		Duration:        duration,
		SessionsPerWeek: sessionsPerWeek,
		HomeworkHours:   homework,
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	util.Status(ctx, status)
}

// GetAllCourses godoc
// @Summary 查询全部课程
// @Description 返回全部课程及其教学周，周按 week_number 升序
// @Tags 课程
// @Produce json
// @Success 200 {array} service.CourseResponse
// @Failure 500 {object} map[string]string
// @Router /get-all-courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.service.GetAllCourses(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}
