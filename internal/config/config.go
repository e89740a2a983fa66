package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

const (
	DefaultModel = "gemini-2.5-flash"
	// DefaultHTTPTimeout 構造化生成の応答時間を考慮したタイムアウト
	DefaultHTTPTimeout     = 60 * time.Second
	DefaultRateInterval    = 1 * time.Second
	DefaultRateBurst       = 2
	DefaultSessionTTL      = 2 * time.Hour
	DefaultShutdownTimeout = 15 * time.Second
	DefaultLanguage        = "ko"
)

// Config は環境変数から読み込まれたアプリケーションの全設定を保持します。
type Config struct {
	ServiceURL string
	Port       string

	// Gemini
	GeminiAPIKey          string
	GeminiModel           string // 完全生成用モデル
	GeminiSuggestionModel string // 項目提案用モデル (空なら GeminiModel)
	GeminiTimeout         time.Duration
	GeminiRateInterval    time.Duration
	GeminiRateBurst       int

	SessionTTL      time.Duration
	LocaleCatalog   string // 翻訳カタログの JSON (ローカルパスまたは gs://)
	SlackWebhookURL string
	DefaultLanguage string
	ShutdownTimeout time.Duration
}

// LoadConfig は環境変数から設定を読み込み、Config 構造体を生成します。
func LoadConfig() *Config {
	return &Config{
		ServiceURL: envutil.GetEnv("SERVICE_URL", "http://localhost:8080"),
		Port:       envutil.GetEnv("PORT", "8080"),

		GeminiAPIKey:          envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:           envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		GeminiSuggestionModel: envutil.GetEnv("GEMINI_SUGGESTION_MODEL", ""),
		GeminiTimeout:         parseDuration(envutil.GetEnv("GEMINI_TIMEOUT", ""), DefaultHTTPTimeout),
		GeminiRateInterval:    parseDuration(envutil.GetEnv("GEMINI_RATE_INTERVAL", ""), DefaultRateInterval),
		GeminiRateBurst:       parsePositiveInt(envutil.GetEnv("GEMINI_RATE_BURST", ""), DefaultRateBurst),

		SessionTTL:      parseDuration(envutil.GetEnv("SESSION_TTL", ""), DefaultSessionTTL),
		LocaleCatalog:   envutil.GetEnv("LOCALE_CATALOG", ""),
		SlackWebhookURL: envutil.GetEnv("SLACK_WEBHOOK_URL", ""),
		DefaultLanguage: envutil.GetEnv("DEFAULT_LANGUAGE", DefaultLanguage),
		ShutdownTimeout: parseDuration(envutil.GetEnv("SHUTDOWN_TIMEOUT", ""), DefaultShutdownTimeout),
	}
}
