package controller

import (
	"syllabus_ai_backend/internal/service"
	"syllabus_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	service *service.SessionService
}

func NewSessionController(s *service.SessionService) *SessionController {
	return &SessionController{service: s}
}

type WeekRequest struct {
	WeekID uint   `json:"week_id"`
	Prompt string `json:"prompt"` // 仅重新生成时使用
}

// GetWeekSessions godoc
// @Summary 查询某周课次
// @Tags 课次
// @Accept json
// @Produce json
// @Param body body WeekRequest true "周ID"
// @Success 200 {object} service.WeekSessionsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /get-week-sessions [post]
func (c *SessionController) GetWeekSessions(ctx *gin.Context) {
	var req WeekRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrMissingWeekID.Error())
		return
	}

	resp, err := c.service.GetWeekSessions(req.WeekID)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// GenerateWeekSessions godoc
// @Summary 为某周生成课次
// @Description 调用 AI 生成分时段的课次计划并将该周标记为已排课；重复调用返回冲突
// @Tags 课次
// @Accept json
// @Produce json
// @Param body body WeekRequest true "周ID"
// @Success 200 {object} service.WeekSessionsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /generate-week-sessions [post]
func (c *SessionController) GenerateWeekSessions(ctx *gin.Context) {
	var req WeekRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrMissingWeekID.Error())
		return
	}

	resp, err := c.service.GenerateWeekSessions(ctx.Request.Context(), req.WeekID)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// RegenerateWeekSessions godoc
// @Summary 按教师要求重排某周课次
// @Description 删除已有课次并结合附加提示词重新生成，仅对已排课的周有效
// @Tags 课次
// @Accept json
// @Produce json
// @Param body body WeekRequest true "周ID与附加要求"
// @Success 200 {object} service.WeekSessionsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /regenerate-week-sessions [post]
func (c *SessionController) RegenerateWeekSessions(ctx *gin.Context) {
	var req WeekRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrMissingWeekID.Error())
		return
	}

	resp, err := c.service.RegenerateWeekSessions(ctx.Request.Context(), req.WeekID, req.Prompt)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}
