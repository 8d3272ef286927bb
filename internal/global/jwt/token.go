package jwt

import (
	"campaign-manager/config"
	"campaign-manager/internal/global/cache"
	"context"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// Payload 签发令牌时携带的用户信息
type Payload struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

// revokePrefix 注销令牌在 Redis 中的键前缀
const revokePrefix = "jwt:revoked:"

// CreateToken 签发访问令牌，过期时间由配置决定
func CreateToken(payload Payload) string {
	now := time.Now()
	claims := Claims{
		UserID: payload.UserID,
		Email:  payload.Email,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(config.Get().JWT.AccessExpire) * time.Second).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Get().JWT.AccessSecret))
	if err != nil {
		return ""
	}
	return signed
}

// ParseToken 解析并校验令牌，valid 为 false 时 payload 为 nil
func ParseToken(tokenStr string) (*Claims, bool) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}

// Revoke 将令牌加入注销名单，保留到令牌自然过期为止
func Revoke(ctx context.Context, claims *Claims) error {
	if cache.Client == nil || claims.Id == "" {
		return nil
	}
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 {
		return nil
	}
	return cache.Client.Set(ctx, revokePrefix+claims.Id, 1, ttl).Err()
}

// IsRevoked 检查令牌是否已注销；Redis 未接入时视为未注销
func IsRevoked(ctx context.Context, jti string) bool {
	if cache.Client == nil || jti == "" {
		return false
	}
	n, err := cache.Client.Exists(ctx, revokePrefix+jti).Result()
	return err == nil && n > 0
}
