// Package config は環境変数からのアプリケーション設定の読み込みを提供する。
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultCutoffDate は対象セッションの既定の基準日。
// この日付より後に開始したセッションのみが適格性判定の対象になる。
const DefaultCutoffDate = "2023-01-04"

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Database
	DatabaseURL string

	// Eligibility
	// CutoffDate より後に開始したセッションが集計対象。
	CutoffDate time.Time
	// MinSessions を厳密に超えるセッション数を持つユーザーのみ対象。
	MinSessions int

	// Batch
	BatchInterval      time.Duration
	BatchMaxConcurrent int

	// Server
	ServerPort string

	// Rate Limit (ops endpoints, req/min)
	RateLimitOps int
}

// Load は環境変数からConfigを読み込む。
// 必須環境変数が未設定の場合はエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{}

	// Required fields
	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	// Optional fields with defaults
	cutoff, err := time.Parse("2006-01-02", getEnvString("CUTOFF_DATE", DefaultCutoffDate))
	if err != nil {
		return nil, fmt.Errorf("invalid CUTOFF_DATE (want YYYY-MM-DD): %w", err)
	}
	cfg.CutoffDate = cutoff

	cfg.MinSessions = getEnvInt("MIN_SESSIONS", 7)
	cfg.BatchInterval = getEnvDuration("BATCH_INTERVAL", 24*time.Hour)
	cfg.BatchMaxConcurrent = getEnvInt("BATCH_MAX_CONCURRENT", 8)
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.RateLimitOps = getEnvInt("RATE_LIMIT_OPS", 60)

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
