package controller

import (
	"errors"
	"syllabus_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// writeServiceError 按错误分类映射 HTTP 状态：
// 校验/格式/冲突 400，资源缺失 404，其余（含 AI 上游失败）500
func writeServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidTeacherEmail),
		errors.Is(err, util.ErrMissingWeekID),
		errors.Is(err, util.ErrWeekAlreadyPlanned),
		errors.Is(err, util.ErrWeekNotPlanned),
		errors.Is(err, util.ErrInvalidAIJSON):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrWeekNotFound):
		util.NotFound(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
