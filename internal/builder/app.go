package builder

import (
	"context"
	"fmt"
	"log/slog"

	"vprompt-web/internal/adapters"
	"vprompt-web/internal/app"
	"vprompt-web/internal/config"
	"vprompt-web/internal/engine"
	"vprompt-web/internal/locale"
	"vprompt-web/internal/pipeline"
	"vprompt-web/internal/prompts"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

// sessionCleanupRatio は期限切れセッションを掃除する間隔を TTL に対する比で表します。
const sessionCleanupRatio = 4

// BuildContainer は外部サービスとの接続を確立し、依存関係を組み立てます。
func BuildContainer(ctx context.Context, cfg *config.Config) (container *app.Container, err error) {
	// 1. 基盤クライアントの初期化
	httpClient := httpkit.New(config.DefaultHTTPTimeout)

	// 2. I/O インフラ (GCS等) の初期化。カタログ指定がある場合のみ
	var rio *app.RemoteIO
	if cfg.LocaleCatalog != "" {
		rio, err = buildRemoteIO(ctx)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err != nil {
				if closeErr := rio.Factory.Close(); closeErr != nil {
					slog.Error("failed to close IOFactory", "error", closeErr)
				}
			}
		}()
	}

	// 3. ロケールカタログの読み込み
	resolver, err := buildResolver(ctx, cfg, rio)
	if err != nil {
		return nil, err
	}

	// 4. 生成エンジンの構築
	eng, err := buildEngine(ctx, cfg, resolver)
	if err != nil {
		return nil, err
	}

	// 5. アダプターの初期化
	slack, err := adapters.NewSlackAdapter(httpClient, cfg.SlackWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Slack adapter: %w", err)
	}

	return &app.Container{
		Config:   cfg,
		RemoteIO: rio,
		Engine:   eng,
		Pipeline: pipeline.NewGenerationPipeline(eng, slack),
		Resolver: resolver,
	}, nil
}

// buildRemoteIO は、GCS ベースの入力コンポーネントを初期化します。
func buildRemoteIO(ctx context.Context) (*app.RemoteIO, error) {
	factory, err := gcsfactory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS factory: %w", err)
	}
	r, err := factory.InputReader()
	if err != nil {
		_ = factory.Close()
		return nil, fmt.Errorf("failed to create input reader: %w", err)
	}
	return &app.RemoteIO{
		Factory: factory,
		Reader:  r,
	}, nil
}

func buildResolver(ctx context.Context, cfg *config.Config, rio *app.RemoteIO) (*locale.Resolver, error) {
	var reader locale.CatalogReader
	if rio != nil {
		reader = rio.Reader
	}
	resolver, err := locale.LoadResolver(ctx, reader, cfg.LocaleCatalog, cfg.Language())
	if err != nil {
		return nil, fmt.Errorf("failed to load locale catalog: %w", err)
	}
	return resolver, nil
}

// buildEngine は Gemini アダプター、プロンプト組み立て、セッションストアから Engine を構築します。
func buildEngine(ctx context.Context, cfg *config.Config, resolver *locale.Resolver) (*engine.Engine, error) {
	gemini, err := adapters.NewGeminiAdapter(ctx, adapters.GeminiConfig{
		APIKey:          cfg.GeminiAPIKey,
		Model:           cfg.GeminiModel,
		SuggestionModel: cfg.GeminiSuggestionModel,
		Timeout:         cfg.GeminiTimeout,
		RateInterval:    cfg.GeminiRateInterval,
		RateBurst:       cfg.GeminiRateBurst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini adapter: %w", err)
	}

	assembler, err := prompts.NewAssembler()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prompt assembler: %w", err)
	}

	store := engine.NewStore(cfg.SessionTTL, cfg.SessionTTL/sessionCleanupRatio)
	return engine.New(gemini, assembler, resolver, store), nil
}
