package user

import (
	"campaign-manager/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	// 用户模块路由组，所有端点以 /user 为前缀
	userGroup := r.Group("/user")

	// 注册与登录不要求已有会话
	userGroup.POST("/register", Register)
	userGroup.POST("/login", Login)

	authGroup := userGroup.Group("")
	authGroup.Use(middleware.Auth())
	{
		authGroup.POST("/logout", Logout)
		authGroup.GET("/me", GetMe)
		authGroup.PUT("/password", ChangePassword)
	}
}
