package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"vprompt-web/internal/domain"
	"vprompt-web/internal/engine"
	"vprompt-web/internal/metrics"
)

// generationExecution は一回の生成実行に関する状態（開始時刻や入力のスナップショットなど）を保持します。
type generationExecution struct {
	pipeline  *GenerationPipeline
	session   *engine.Session
	language  domain.Language
	startTime time.Time
	inputs    domain.PromptInputs
}

// run は生成を実行し、結果に応じて計測と通知を行います。
func (e *generationExecution) run(ctx context.Context) (out domain.GeneratedOutput, err error) {
	// 失敗時の通知と計測を defer 文で一括管理します。
	defer func() {
		if errors.Is(err, engine.ErrGenerationInFlight) {
			return
		}
		metrics.GenerationTotal.WithLabelValues(string(e.language), metrics.StatusOf(err)).Inc()
		metrics.GenerationDuration.WithLabelValues(string(e.language)).Observe(time.Since(e.startTime).Seconds())
		if err != nil && shouldReport(err) {
			e.pipeline.notifyError(ctx, e.notificationRequest(domain.CategoryNotAvailable), err)
		}
	}()

	slog.InfoContext(ctx, "Pipeline execution started", "session_id", e.session.ID, "language", e.language)

	gen, err := e.pipeline.submitter.Generate(ctx, e.session, e.language)
	// 通知には、生成中に編集された現在の入力ではなく生成に使った入力を載せます。
	e.inputs = gen.Inputs
	if err != nil {
		return domain.GeneratedOutput{}, err
	}
	out = gen.Output

	metrics.GenerationScenes.Observe(float64(len(out.JSON.Scenes)))

	// 成功時の通知処理を行います。通知処理自体の失敗は、生成の成否には影響させません。
	if notifyErr := e.pipeline.notifier.Notify(ctx, out, e.notificationRequest(out.JSON.Title)); notifyErr != nil {
		slog.ErrorContext(ctx, "Notification failed", "error", notifyErr)
	}

	slog.InfoContext(ctx, "Pipeline execution finished", "session_id", e.session.ID, "elapsed", time.Since(e.startTime))
	return out, nil
}

func (e *generationExecution) notificationRequest(title string) domain.NotificationRequest {
	return domain.NotificationRequest{
		SessionID:   e.session.ID,
		Idea:        e.inputs.SimpleIdea,
		TargetTitle: title,
		Language:    e.language,
		Segments:    e.inputs.Segments,
	}
}
