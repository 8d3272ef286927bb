package test

import (
	"campaign-manager/internal/global/response"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
	require.Equal(t, expected.Message, resp.Msg)
}

func NoError(t *testing.T, resp response.ResponseBody) {
	require.Equal(t, int32(200), resp.Code)
}

// CodeEqual 只比较错误码，用于 handler 附加了提示信息的场景
func CodeEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
}

// DecodeData 把响应的 data 字段解析到目标结构体
func DecodeData(t *testing.T, resp response.ResponseBody, target any) {
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, target))
}
