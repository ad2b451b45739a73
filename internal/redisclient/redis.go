package redisclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/superman-store/internal/config"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "superman"

// Client Redis 客户端与 key 前缀
type Client struct {
	*redis.Client
	prefix string
}

// New 根据配置创建客户端；未启用时返回 nil
func New(cfg *config.RedisConfig) *Client {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:        fmt.Sprintf("%s:%d", host, port),
			Password:    cfg.Password,
			DB:          cfg.DB,
			DialTimeout: 2 * time.Second,
		}),
		prefix: prefix,
	}
}

// Key 拼接带前缀的 key
func (c *Client) Key(parts ...string) string {
	prefix := defaultPrefix
	if c != nil && c.prefix != "" {
		prefix = c.prefix
	}
	segments := []string{prefix}
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	return strings.Join(segments, ":")
}

// Ping 连通性检查，客户端为空时视为正常
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Ping(ctx).Err()
}

// Close 关闭连接
func (c *Client) Close() error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Close()
}
