package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordEncryptAndCompare(t *testing.T) {
	hash := PasswordEncrypt("password123")
	require.NotEmpty(t, hash)
	require.NotEqual(t, "password123", hash)

	require.True(t, PasswordCompare("password123", hash))
	require.False(t, PasswordCompare("wrongpass1", hash))
	require.False(t, PasswordCompare("password123", "not-a-hash"))
}

func TestPasswordEncryptSalted(t *testing.T) {
	// 相同明文两次加密得到不同密文
	require.NotEqual(t, PasswordEncrypt("password123"), PasswordEncrypt("password123"))
}
