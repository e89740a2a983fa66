package pipeline

import (
	"context"
	"time"

	"vprompt-web/internal/adapters"
	"vprompt-web/internal/domain"
	"vprompt-web/internal/engine"
)

// Pipeline は1回の完全生成を、通知と計測を含めて実行する契約です。
type Pipeline interface {
	Execute(ctx context.Context, sess *engine.Session, lang domain.Language) (domain.GeneratedOutput, error)
}

// Submitter は Pipeline が呼び出す生成処理です。*engine.Engine がこれを満たします。
type Submitter interface {
	Generate(ctx context.Context, sess *engine.Session, lang domain.Language) (engine.Generation, error)
}

// GenerationPipeline は Engine.Generate を包み、完了・失敗時の Slack 通知と指標の記録を行います。
type GenerationPipeline struct {
	submitter Submitter
	notifier  adapters.SlackNotifier
	now       func() time.Time
}

// NewGenerationPipeline は GenerationPipeline を初期化します。
func NewGenerationPipeline(submitter Submitter, notifier adapters.SlackNotifier) *GenerationPipeline {
	return &GenerationPipeline{
		submitter: submitter,
		notifier:  notifier,
		now:       time.Now,
	}
}

// Execute は完全生成を実行します。生成の成否はそのまま返し、通知の失敗は結果に影響させません。
func (p *GenerationPipeline) Execute(ctx context.Context, sess *engine.Session, lang domain.Language) (domain.GeneratedOutput, error) {
	exec := &generationExecution{
		pipeline:  p,
		session:   sess,
		language:  lang,
		startTime: p.now(),
	}
	return exec.run(context.WithoutCancel(ctx))
}
