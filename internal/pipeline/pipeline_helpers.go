package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"vprompt-web/internal/domain"
)

// notifyError はエラー発生時に SlackNotifier を通じて通知を行います。
func (p *GenerationPipeline) notifyError(ctx context.Context, req domain.NotificationRequest, opErr error) {
	if err := p.notifier.NotifyError(ctx, opErr, req); err != nil {
		slog.ErrorContext(ctx, "Failed to send error notification", "error", err)
	}
}

// shouldReport は運用者へ通知すべき失敗かを判定します。入力不備は利用者側の問題なので通知しません。
func shouldReport(err error) bool {
	var vErr *domain.ValidationError
	return !errors.As(err, &vErr)
}
