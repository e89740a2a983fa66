package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"vprompt-web/internal/domain"

	"github.com/shouni/netarmor/securenet"
)

// --- バリデーション ---

// ValidateEssentialConfig はアプリケーション実行に不可欠な設定を検証します。
func ValidateEssentialConfig(cfg *Config) error {
	if !IsSecureURL(cfg.ServiceURL) {
		return fmt.Errorf("security error: SERVICE_URL ('%s') must be HTTPS in production", cfg.ServiceURL)
	}

	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("configuration error: GEMINI_API_KEY is not set")
	}

	if _, err := domain.ParseLanguage(cfg.DefaultLanguage); err != nil {
		return fmt.Errorf("configuration error: DEFAULT_LANGUAGE: %w", err)
	}

	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("configuration error: SESSION_TTL must be positive")
	}

	return nil
}

// IsSecureURL は指定された URL が HTTPS または localhost であるか判定します。
func IsSecureURL(rawURL string) bool {
	return securenet.IsSecureServiceURL(rawURL)
}

// Language は DefaultLanguage を domain.Language として返します。不正な値なら韓国語です。
func (c Config) Language() domain.Language {
	lang, err := domain.ParseLanguage(c.DefaultLanguage)
	if err != nil {
		return domain.LanguageKorean
	}
	return lang
}

// parseDuration は "30s" 形式の値を解析します。空文字や不正値は既定値になります。
func parseDuration(raw string, def time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("不正な期間指定のため既定値を使用します", "value", raw, "default", def)
		return def
	}
	return d
}

func parsePositiveInt(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		slog.Warn("不正な数値指定のため既定値を使用します", "value", raw, "default", def)
		return def
	}
	return n
}
