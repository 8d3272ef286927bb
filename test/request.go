package test

import (
	"bytes"
	"campaign-manager/internal/global/jwt"
	"campaign-manager/internal/global/response"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// RequestOption 在执行 handler 前修改测试上下文
type RequestOption func(c *gin.Context)

// AsUser 以指定用户身份执行请求，模拟认证中间件写入的载荷
func AsUser(userID uint) RequestOption {
	return func(c *gin.Context) {
		c.Set("payload", &jwt.Claims{UserID: userID, Email: "test@example.com"})
	}
}

// WithParam 设置路径参数
func WithParam(key, value string) RequestOption {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: key, Value: value})
	}
}

// WithQuery 设置查询参数
func WithQuery(query string) RequestOption {
	return func(c *gin.Context) {
		c.Request.URL.RawQuery = query
	}
}

func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any, opts ...RequestOption) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var body *bytes.Reader
	if request != nil {
		requestBytes, err := json.Marshal(request)
		require.NoError(t, err)
		body = bytes.NewReader(requestBytes)
	} else {
		body = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(http.MethodPost, "/test", body)
	for _, opt := range opts {
		opt(c)
	}
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}
