package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vprompt-web/internal/domain"
	"vprompt-web/internal/metrics"
	"vprompt-web/internal/prompts"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const (
	defaultGeminiTemperature = float32(0.9)
	kindStructured           = "structured"
	kindText                 = "text"
)

// structuredModel は genai.Models のうち構造化生成で使うメソッドだけを切り出したものです。
type structuredModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// textGenerateFunc は自由テキスト生成の呼び出しです。
type textGenerateFunc func(ctx context.Context, prompt string) (string, error)

// GeminiConfig は GeminiAdapter の設定です。
type GeminiConfig struct {
	APIKey          string
	Model           string
	SuggestionModel string
	Timeout         time.Duration
	RateInterval    time.Duration
	RateBurst       int
}

// GeminiAdapter は Gemini API を使って構造化生成と提案テキスト生成を行います。
// 構造化生成は genai のスキーマ指定、提案は go-gemini-client を使います。
type GeminiAdapter struct {
	structured structuredModel
	generate   textGenerateFunc
	model      string
	timeout    time.Duration
	limiter    *rate.Limiter
}

// NewGeminiAdapter は Gemini クライアントを初期化して GeminiAdapter を返します。
func NewGeminiAdapter(ctx context.Context, cfg GeminiConfig) (*GeminiAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY が設定されていません")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai クライアントの初期化に失敗しました: %w", err)
	}

	aiClient, err := initializeAIClient(ctx, cfg.APIKey)
	if err != nil {
		return nil, err
	}

	suggestionModel := cfg.SuggestionModel
	if suggestionModel == "" {
		suggestionModel = cfg.Model
	}
	generate := func(ctx context.Context, prompt string) (string, error) {
		resp, err := aiClient.GenerateContent(ctx, prompt, suggestionModel)
		if err != nil {
			return "", err
		}
		return resp.Text, nil
	}

	return newGeminiAdapter(genaiClient.Models, generate, cfg), nil
}

func newGeminiAdapter(structured structuredModel, generate textGenerateFunc, cfg GeminiConfig) *GeminiAdapter {
	limit := rate.Inf
	if cfg.RateInterval > 0 {
		limit = rate.Every(cfg.RateInterval)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	return &GeminiAdapter{
		structured: structured,
		generate:   generate,
		model:      cfg.Model,
		timeout:    cfg.Timeout,
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// initializeAIClient は gemini クライアントを初期化します。
func initializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// GenerateStructured はスキーマ付きで完全生成を行い、厳密に検証した JsonOutput を返します。
func (a *GeminiAdapter) GenerateStructured(ctx context.Context, req prompts.GenerationRequest) (out domain.JsonOutput, err error) {
	start := time.Now()
	defer func() {
		metrics.GeminiRequestDuration.WithLabelValues(kindStructured, metrics.StatusOf(err)).Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.limiter.Wait(ctx); err != nil {
		return domain.JsonOutput{}, &domain.GenerationError{Message: "interrupted while waiting for rate limiter", Err: err}
	}

	slog.InfoContext(ctx, "Gemini: 構造化生成を呼び出します", "model", a.model, "segments", req.Segments, "language", req.Language)
	contents := []*genai.Content{{Parts: []*genai.Part{{Text: req.Prompt}}}}
	resp, err := a.structured.GenerateContent(ctx, a.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	})
	if err != nil {
		return domain.JsonOutput{}, &domain.GenerationError{Message: "gemini request failed", Err: err}
	}

	raw, err := firstCandidateText(resp)
	if err != nil {
		return domain.JsonOutput{}, err
	}

	return decodeJsonOutput(raw, req.Segments, req.Duration)
}

// GenerateText は提案用の自由テキストを生成し、前後の空白を除いて返します。
func (a *GeminiAdapter) GenerateText(ctx context.Context, req prompts.SuggestionRequest) (text string, err error) {
	start := time.Now()
	defer func() {
		metrics.GeminiRequestDuration.WithLabelValues(kindText, metrics.StatusOf(err)).Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.limiter.Wait(ctx); err != nil {
		return "", &domain.GenerationError{Message: "interrupted while waiting for rate limiter", Err: err}
	}

	slog.InfoContext(ctx, "Gemini: 提案を生成します", "field", req.Field, "language", req.Language)
	raw, err := a.generate(ctx, req.Prompt)
	if err != nil {
		return "", &domain.GenerationError{Message: "gemini request failed", Err: err}
	}
	return strings.TrimSpace(raw), nil
}

func (a *GeminiAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

// firstCandidateText は最初の候補のテキスト部分を連結して返します。
func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", &domain.GenerationError{Message: "gemini returned no candidates"}
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		msg := "gemini response has no content"
		if cand.FinishReason != "" {
			msg = fmt.Sprintf("%s (finish_reason: %s)", msg, cand.FinishReason)
		}
		return "", &domain.GenerationError{Message: msg}
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
