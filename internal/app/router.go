package app

import (
	"syllabus_ai_backend/docs"
	"syllabus_ai_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.POST("/generate-course-structure", c.course.GenerateCourseStructure)

		// 前端历史原因，查询类接口 GET/POST 都接受
		api.GET("/get-all-courses", c.course.GetAllCourses)
		api.POST("/get-all-courses", c.course.GetAllCourses)

		api.GET("/get-week-sessions", c.session.GetWeekSessions)
		api.POST("/get-week-sessions", c.session.GetWeekSessions)

		api.GET("/generate-week-sessions", c.session.GenerateWeekSessions)
		api.POST("/generate-week-sessions", c.session.GenerateWeekSessions)

		api.POST("/regenerate-week-sessions", c.session.RegenerateWeekSessions)

		// 调试用
		api.GET("/db-dump", c.admin.DBDump)
	}
}
