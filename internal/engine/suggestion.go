package engine

import (
	"context"
	"log/slog"
	"strings"

	"vprompt-web/internal/domain"
	"vprompt-web/internal/locale"
	"vprompt-web/internal/metrics"

	"golang.org/x/sync/errgroup"
)

// SuggestionStatus は提案1件の結果種別です。
type SuggestionStatus string

const (
	SuggestionApplied SuggestionStatus = "applied"
	SuggestionFailed  SuggestionStatus = "failed"
	SuggestionSkipped SuggestionStatus = "skipped"
)

// SuggestionResult は提案1件の結果です。成功時は Text、失敗時は Err と Message を持ちます。
type SuggestionResult struct {
	Field   domain.Field     `json:"field"`
	Status  SuggestionStatus `json:"status"`
	Text    string           `json:"text,omitempty"`
	Message string           `json:"error,omitempty"`
	Err     error            `json:"-"`
}

// RequestSuggestion は1項目の提案を生成し、成功すれば入力に上書きします。
//
// アイデアが未入力、または提案対象外の項目では外部呼び出しも提案中集合の変更も行わず Skipped を返します。
// 同じセッションの同じ項目に対する同時要求は1回の呼び出しにまとめられ、全員が同じ結果を受け取ります。
// 失敗時は現在のエラーを設定し、入力と出力は変更しません。提案中集合からは必ず外れます。
func (e *Engine) RequestSuggestion(ctx context.Context, sess *Session, field domain.Field, lang domain.Language) SuggestionResult {
	ctx = context.WithoutCancel(ctx)

	req, ok, err := e.assembler.BuildSuggestionRequest(field, sess.Inputs(), lang)
	if err != nil {
		msg := e.localizer.Resolve(lang, locale.KeyUnexpected, nil)
		slog.ErrorContext(ctx, "提案リクエストの組み立てに失敗しました", "session_id", sess.ID, "field", field, "error", err)
		metrics.SuggestionTotal.WithLabelValues(string(field), metrics.StatusError).Inc()
		return SuggestionResult{Field: field, Status: SuggestionFailed, Message: msg, Err: err}
	}
	if !ok {
		metrics.SuggestionTotal.WithLabelValues(string(field), metrics.StatusSkipped).Inc()
		return SuggestionResult{Field: field, Status: SuggestionSkipped}
	}

	key := sess.ID + "/" + string(field)
	if sess.IsPending(field) {
		slog.DebugContext(ctx, "実行中の提案に合流します", "session_id", sess.ID, "field", field)
	}
	v, err, _ := e.suggestions.Do(key, func() (interface{}, error) {
		sess.beginSuggestion(field)

		completed := false
		defer func() {
			if !completed {
				sess.completeSuggestion(field, "", e.localizer.Resolve(lang, locale.KeyUnexpected, nil))
			}
		}()

		text, err := e.client.GenerateText(ctx, req)
		if err == nil && strings.HasPrefix(text, SuggestionErrorPrefix) {
			err = &domain.GenerationError{Message: strings.TrimPrefix(text, SuggestionErrorPrefix)}
		}
		if err != nil {
			slog.WarnContext(ctx, "提案の生成に失敗しました", "session_id", sess.ID, "field", field, "error", err)
			metrics.SuggestionTotal.WithLabelValues(string(field), metrics.StatusError).Inc()
			sess.completeSuggestion(field, "", e.suggestionMessage(lang, err))
			completed = true
			return nil, err
		}

		metrics.SuggestionTotal.WithLabelValues(string(field), metrics.StatusSuccess).Inc()
		sess.completeSuggestion(field, text, "")
		completed = true
		return text, nil
	})
	if err != nil {
		return SuggestionResult{Field: field, Status: SuggestionFailed, Message: e.suggestionMessage(lang, err), Err: err}
	}

	return SuggestionResult{Field: field, Status: SuggestionApplied, Text: v.(string)}
}

// RequestSuggestions は複数項目の提案を並行に実行します。
// 各項目は独立しており、1件の失敗が他の項目を中断することはありません。結果は fields と同じ順に並びます。
func (e *Engine) RequestSuggestions(ctx context.Context, sess *Session, fields []domain.Field, lang domain.Language) []SuggestionResult {
	results := make([]SuggestionResult, len(fields))

	var g errgroup.Group
	for i, f := range fields {
		g.Go(func() error {
			results[i] = e.RequestSuggestion(ctx, sess, f, lang)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// suggestionMessage は提案の失敗を "Error: ..." 形式のユーザー向けメッセージにします。
func (e *Engine) suggestionMessage(lang domain.Language, err error) string {
	return e.localizer.Resolve(lang, locale.KeySuggestion, map[string]string{"message": err.Error()})
}
