package middleware

import (
	"campaign-manager/internal/global/jwt"
	"campaign-manager/internal/global/response"
	"strings"

	"github.com/gin-gonic/gin"
)

// Auth 解析 Authorization 头中的 Bearer 令牌，校验通过后将用户信息写入上下文
// 所有需要身份的端点都必须挂载该中间件
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		// 检查 Bearer 前缀并提取 token
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		payload, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		// 已注销的令牌同样拒绝
		if jwt.IsRevoked(c.Request.Context(), payload.Id) {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		c.Set("payload", payload)
		c.Next()
	}
}
