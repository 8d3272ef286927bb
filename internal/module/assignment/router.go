package assignment

import (
	"campaign-manager/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleAssignment) InitRouter(r *gin.RouterGroup) {
	// 分配模块路由组：活动与达人的关联关系
	assignmentGroup := r.Group("/assignment")
	assignmentGroup.Use(middleware.Auth())
	{
		assignmentGroup.POST("/assign", Assign)
		assignmentGroup.DELETE("/unassign", Unassign)
		assignmentGroup.GET("/count", Count)
	}
}
