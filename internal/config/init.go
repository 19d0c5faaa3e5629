package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	AppPort         string
	GinMode         string
	PostIDStrategy  string
	CORSOrigins     []string
	ShutdownTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisChannel  string
	RedisFeedKey  string
	RedisFeedSize int64

	EventBatchSize     int
	EventBufferSize    int
	EventFlushInterval time.Duration
}

// LoadDotEnv بارگذاری .env در صورت وجود؛ نبودن فایل خطا نیست
func LoadDotEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// Load تنظیمات را از متغیرهای محیطی می‌خواند
// مقادیر عددی نامعتبر به مقدار پیش‌فرض برمی‌گردند
func Load() *Config {
	return &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		AppPort:         getEnv("APP_PORT", "5002"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		PostIDStrategy:  getEnv("POST_ID_STRATEGY", "max"),
		CORSOrigins:     splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 5*time.Second),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),
		RedisChannel:  getEnv("REDIS_CHANNEL", "posts:events"),
		RedisFeedKey:  getEnv("REDIS_FEED_KEY", "posts:feed"),
		RedisFeedSize: int64(getInt("REDIS_FEED_SIZE", 100)),

		EventBatchSize:     getInt("EVENT_BATCH_SIZE", 100),
		EventBufferSize:    getInt("EVENT_BUFFER_SIZE", 1024),
		EventFlushInterval: getDuration("EVENT_FLUSH_INTERVAL", time.Second),
	}
}

// Validate تنظیماتی که با مقدار نامعتبر نباید سرویس را بالا بیاورند
// هر origin باید * باشد یا با http:// یا https:// شروع شود
func (c *Config) Validate() error {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS origin %q: must be * or start with http:// or https://", origin)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
