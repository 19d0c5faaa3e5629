package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient اتصال به Redis را راه‌اندازی و با Ping بررسی می‌کند
func NewRedisClient(ctx context.Context, cfg *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,     // آدرس Redis
		Password: cfg.RedisPassword, // رمز عبور
		DB:       cfg.RedisDB,       // شماره دیتابیس
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// بررسی اتصال به Redis
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error connecting to redis at %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}
