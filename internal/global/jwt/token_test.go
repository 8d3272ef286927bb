package jwt

import (
	"campaign-manager/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAndParseToken(t *testing.T) {
	config.Get().JWT.AccessSecret = "test-secret"
	config.Get().JWT.AccessExpire = 3600

	token := CreateToken(Payload{UserID: 42, Email: "alice@example.com"})
	require.NotEmpty(t, token)

	claims, valid := ParseToken(token)
	require.True(t, valid)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.NotEmpty(t, claims.Id)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	config.Get().JWT.AccessSecret = "test-secret"

	_, valid := ParseToken("not-a-token")
	require.False(t, valid)

	_, valid = ParseToken("")
	require.False(t, valid)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	config.Get().JWT.AccessSecret = "test-secret"
	token := CreateToken(Payload{UserID: 1, Email: "a@b.com"})

	config.Get().JWT.AccessSecret = "another-secret"
	defer func() { config.Get().JWT.AccessSecret = "test-secret" }()

	_, valid := ParseToken(token)
	require.False(t, valid)
}

func TestIsRevokedWithoutRedis(t *testing.T) {
	// Redis 未接入时一律视为未注销
	require.False(t, IsRevoked(t.Context(), "some-jti"))
}
