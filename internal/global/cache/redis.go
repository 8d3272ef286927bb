package cache

import (
	"campaign-manager/config"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

func Init() {
	cfg := config.Get().Redis
	if cfg.Host == "" {
		return
	}
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// GetJSON 读取缓存的 JSON 字符串，未命中返回空串
func GetJSON(ctx context.Context, key string) string {
	if Client == nil {
		return ""
	}
	val, err := Client.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetJSON 写入缓存，失败只影响性能，不影响正确性，错误直接吞掉
func SetJSON(ctx context.Context, key, val string, ttl time.Duration) {
	if Client == nil {
		return
	}
	Client.Set(ctx, key, val, ttl)
}

// Delete 删除缓存键，用于写操作后的失效
func Delete(ctx context.Context, keys ...string) {
	if Client == nil {
		return
	}
	Client.Del(ctx, keys...)
}
