package response

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorIsComparesByCode(t *testing.T) {
	require.ErrorIs(t, ErrNotFound.WithTips("活动不存在"), ErrNotFound)
	require.ErrorIs(t, ErrDatabase.WithOrigin(fmt.Errorf("boom")), ErrDatabase)
	require.NotErrorIs(t, ErrNotFound, ErrAlreadyExists)
}

func TestWithTipsKeepsCode(t *testing.T) {
	err := ErrInvalidRequest.WithTips("预算必须为正数")
	require.Equal(t, ErrInvalidRequest.Code, err.Code)
	require.Contains(t, err.Message, "预算必须为正数")
	// 原错误不被篡改
	require.NotContains(t, ErrInvalidRequest.Message, "预算")
}

func TestWithOriginPreservesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := ErrDatabase.WithOrigin(cause)
	require.Equal(t, ErrDatabase.Code, err.Code)
	require.NotEmpty(t, err.Origin)
	require.ErrorContains(t, err.Unwrap(), "connection refused")
	require.NotNil(t, err.StackTrace())
}
