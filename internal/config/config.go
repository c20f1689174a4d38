package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hitoshi/formacao/internal/i18n"
	"github.com/hitoshi/formacao/internal/logger"
	"github.com/hitoshi/formacao/internal/model"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Presentation
	Locale string

	// Logging
	LogLevel slog.Level

	// Track
	TrackName  string
	TrackLevel model.Level

	// Metrics
	MetricsTextfile string
}

// DefaultTrackName はTRACK_NAME未設定時のトラック名。
const DefaultTrackName = "Desenvolvimento Kotlin"

// Load は環境変数からConfigを読み込む。
// 値が不正な環境変数がある場合はエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{}

	var invalid []string

	cfg.Locale = getEnvString("APP_LOCALE", i18n.DefaultLocale)
	if !i18n.Supported(cfg.Locale) {
		invalid = append(invalid, "APP_LOCALE")
	}

	level, err := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		invalid = append(invalid, "LOG_LEVEL")
	}
	cfg.LogLevel = level

	trackLevel, err := model.ParseLevel(os.Getenv("TRACK_LEVEL"))
	if err != nil {
		invalid = append(invalid, "TRACK_LEVEL")
	}
	cfg.TrackLevel = trackLevel

	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid environment variables: %v", invalid)
	}

	// TRACK_NAMEの空白チェックはトラック構築時に行う
	cfg.TrackName = getEnvString("TRACK_NAME", DefaultTrackName)
	cfg.MetricsTextfile = getEnvString("METRICS_TEXTFILE", "")

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
