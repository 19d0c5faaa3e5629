package config

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger ساخت zap logger بر اساس محیط اجرا
func NewLogger(appEnv string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	// می‌توان logger production یا development انتخاب کرد
	if appEnv == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment() // برای توسعه
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize zap logger: %w", err)
	}

	logger.Info("✅ Zap logger initialized", zap.String("env", appEnv))
	return logger, nil
}
