package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"vprompt-web/internal/domain"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-notifier/pkg/factory"
)

// --- インターフェース定義 ---

type SlackNotifier interface {
	Notify(ctx context.Context, output domain.GeneratedOutput, req domain.NotificationRequest) error
	NotifyError(ctx context.Context, errDetail error, req domain.NotificationRequest) error
}

// slackSender は go-notifier の Slack クライアントのうち、このアダプターが使う操作です。
type slackSender interface {
	SendTextWithHeader(ctx context.Context, header, content string) error
}

// --- 具象アダプター ---

type SlackAdapter struct {
	slackClient slackSender
}

// NewSlackAdapter は Webhook URL が設定されている場合だけ Slack クライアントを初期化します。
func NewSlackAdapter(httpClient httpkit.ClientInterface, webhookURL string) (*SlackAdapter, error) {
	if webhookURL == "" {
		return &SlackAdapter{}, nil
	}
	client, err := factory.GetSlackClient(httpClient)
	if err != nil {
		return nil, fmt.Errorf("Slackクライアントの初期化に失敗しました: %w", err)
	}

	return &SlackAdapter{slackClient: client}, nil
}

// Notify は生成完了時にタイトルとシナリオ要約を Slack に送信します。
func (a *SlackAdapter) Notify(ctx context.Context, output domain.GeneratedOutput, req domain.NotificationRequest) error {
	if a.slackClient == nil {
		slog.InfoContext(ctx, "Slackクライアントが初期化されていないため、通知をスキップします。", "session_id", req.SessionID)
		return nil
	}

	title := "🎬 映像プロンプトの生成が完了しました"
	content := buildSlackContent(output, req)

	if err := a.slackClient.SendTextWithHeader(ctx, title, content); err != nil {
		return fmt.Errorf("Slackへの投稿に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "Slack に完了通知を送信しました。", "session_id", req.SessionID, "title", req.TargetTitle)
	return nil
}

// NotifyError はエラー詳細と実行メタデータを含むエラー通知を送信します。
func (a *SlackAdapter) NotifyError(ctx context.Context, errDetail error, req domain.NotificationRequest) error {
	if a.slackClient == nil {
		slog.InfoContext(ctx, "Slackクライアントが初期化されていないため、エラー通知をスキップします。", "error", errDetail)
		return nil
	}

	// Slackのmrkdwn形式では、アスタリスク(*)でテキストを囲むと太字として解釈されます。
	title := "❌ 映像プロンプトの生成中にエラーが発生しました"

	var sb strings.Builder
	fmt.Fprintf(&sb, "*セッション:* `%s`\n", req.SessionID)
	fmt.Fprintf(&sb, "*アイデア:* %s\n", truncateString(req.Idea, 200))
	fmt.Fprintf(&sb, "*言語 / シーン数:* `%s` / `%d`\n\n", req.Language, req.Segments)

	sb.WriteString("*エラー内容:*\n")
	fmt.Fprintf(&sb, "```\n%v\n```\n", errDetail)

	if req.TargetTitle != "" && req.TargetTitle != domain.CategoryNotAvailable {
		fmt.Fprintf(&sb, "\n📍 *タイトル:* `%s`", req.TargetTitle)
	}

	if err := a.slackClient.SendTextWithHeader(ctx, title, sb.String()); err != nil {
		return fmt.Errorf("Slackへのエラー通知に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "Slack にエラー通知を送信しました。", "error", errDetail)
	return nil
}

// buildSlackContent は生成結果から Slack メッセージ本文を組み立てます。
func buildSlackContent(output domain.GeneratedOutput, req domain.NotificationRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*作品タイトル:* `%s`\n", output.JSON.Title)
	fmt.Fprintf(&sb, "*セッション:* `%s`\n", req.SessionID)
	fmt.Fprintf(&sb, "*アイデア:* %s\n", truncateString(req.Idea, 200))
	fmt.Fprintf(&sb, "*ジャンル / ムード:* %s / %s\n", output.JSON.Genre, output.JSON.Mood)
	fmt.Fprintf(&sb, "*シーン数 / 尺:* %d / %gs\n\n", len(output.JSON.Scenes), output.JSON.TotalDuration)

	sb.WriteString("*シナリオ:*\n")
	fmt.Fprintf(&sb, "> %s\n", truncateString(output.Scenario, 1000))

	return sb.String()
}
