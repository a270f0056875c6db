package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 服务层依赖的最小缓存接口
type Cache interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DeleteKey(ctx context.Context, key string) error
}

type Client struct {
	rdb *redis.Client
}

// GetValue 获取字符串类型的值，不存在时返回空串
func (s *Client) GetValue(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// SetWithExpiration 设置键值对并设置过期时间
func (s *Client) SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.rdb.Set(ctx, key, value, expiration).Err()
}

// DeleteKey 删除键
func (s *Client) DeleteKey(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

func (s *Client) Close() error {
	return s.rdb.Close()
}

// NopCache 未配置 Redis 时使用，永远未命中
type NopCache struct{}

func (NopCache) GetValue(context.Context, string) (string, error) { return "", nil }

func (NopCache) SetWithExpiration(context.Context, string, interface{}, time.Duration) error {
	return nil
}

func (NopCache) DeleteKey(context.Context, string) error { return nil }
