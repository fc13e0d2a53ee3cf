package impl

import (
	"io"
	"log/slog"
	"time"

	"snaptext/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 10,
			SessionTTL: 7 * 24 * time.Hour,
		},
		Retention: &config.RetentionConfig{
			Window:        24 * time.Hour,
			SweepInterval: time.Hour,
		},
		Admin: &config.AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
	}
}
