package controller

import (
	"syllabus_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

var dumpTables = []string{"teachers", "courses", "weeks", "sessions"}

// DBDump godoc
// @Summary 导出全部表数据
// @Description 调试用，逐表全量导出，无分页无脱敏
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string][]map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /db-dump [get]
func (c *AdminController) DBDump(ctx *gin.Context) {
	dump := make(map[string][]map[string]interface{}, len(dumpTables))

	for _, table := range dumpTables {
		var rows []map[string]interface{}
		if err := c.DB.Table(table).Find(&rows).Error; err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		dump[table] = rows
	}

	util.Success(ctx, dump)
}
