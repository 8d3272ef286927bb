package response

import (
	"campaign-manager/config"
	"campaign-manager/internal/global/logger"
	"campaign-manager/internal/global/sentry"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应体，code 为 200 表示成功
type ResponseBody struct {
	Code   int32  `json:"code"`
	Msg    string `json:"msg"`
	Data   any    `json:"data,omitempty"`
	Origin string `json:"origin,omitempty"`
}

const successCode int32 = 200

// Success 返回成功响应，data 最多传一个
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: successCode,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应；非 *Error 的错误一律包装为 ErrDatabase
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrDatabase.WithOrigin(err)
	}

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	// 原始错误只在 debug 模式下暴露给前端
	if config.Get().Mode == config.ModeDebug {
		body.Origin = e.Origin
	}

	c.Set(ErrorContextKey, e)
	c.Set(ResponseContextKey, body)
	sentry.CaptureException(c, e)
	c.JSON(http.StatusOK, body)
}

// Recovery 捕获 handler panic，记录堆栈后返回统一的系统错误
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Recovery").Error("panic recovered",
			"panic", fmt.Sprintf("%v", r),
			"path", c.Request.URL.Path,
			"stack", string(debug.Stack()),
		)
		Fail(c, ErrDatabase.WithOrigin(fmt.Errorf("panic: %v", r)))
		c.Abort()
	}
}
