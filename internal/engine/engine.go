// Package engine は映像プロンプト生成のセッション状態と、その上で動く生成・提案・履歴の各操作を提供します。
package engine

import (
	"context"
	"errors"

	"vprompt-web/internal/domain"
	"vprompt-web/internal/locale"
	"vprompt-web/internal/prompts"

	"golang.org/x/sync/singleflight"
)

// GenerationClient は外部の構造化生成サービスとの境界です。
type GenerationClient interface {
	GenerateStructured(ctx context.Context, req prompts.GenerationRequest) (domain.JsonOutput, error)
	GenerateText(ctx context.Context, req prompts.SuggestionRequest) (string, error)
}

// Localizer はユーザー向けエラーメッセージを解決します。
type Localizer interface {
	Resolve(lang domain.Language, key string, subs map[string]string) string
}

// Engine はセッションに対する生成・提案・リセット・再利用の操作をまとめます。
// セッションのロックは外部呼び出しの間は保持しません。
type Engine struct {
	client    GenerationClient
	assembler *prompts.Assembler
	localizer Localizer
	sessions  *Store

	// suggestions は (セッション, 項目) ごとに同時実行中の提案を1つにまとめます。
	suggestions singleflight.Group
}

// New は Engine を初期化します。
func New(client GenerationClient, assembler *prompts.Assembler, localizer Localizer, sessions *Store) *Engine {
	return &Engine{
		client:    client,
		assembler: assembler,
		localizer: localizer,
		sessions:  sessions,
	}
}

// Sessions はセッションストアを返します。
func (e *Engine) Sessions() *Store {
	return e.sessions
}

// UpdateInputs はユーザーによる直接編集を反映します。
// 数値・列挙項目が定義域外の場合は *domain.ValidationError を返し、何も変更しません。
func (e *Engine) UpdateInputs(sess *Session, inputs domain.PromptInputs) error {
	if err := inputs.ValidateRanges(); err != nil {
		return err
	}
	sess.setInputs(inputs)
	return nil
}

// Reset は入力を既定値に戻し、出力とエラーを消去します。履歴と実行中フラグは変更しません。
func (e *Engine) Reset(sess *Session) {
	sess.reset()
}

// Reuse は履歴の項目を現在の出力として再表示します。生成も履歴の追加も行いません。
func (e *Engine) Reuse(sess *Session, itemID int64) (domain.GeneratedOutput, error) {
	return sess.reuse(itemID)
}

// Message は err をユーザー向けの言語別メッセージに変換します。
func (e *Engine) Message(lang domain.Language, err error) string {
	var vErr *domain.ValidationError
	var gErr *domain.GenerationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &vErr) && vErr.Field == domain.FieldSimpleIdea:
		return e.localizer.Resolve(lang, locale.KeyIdeaRequired, nil)
	case errors.As(err, &vErr):
		return e.localizer.Resolve(lang, locale.KeyInvalidInput, map[string]string{"message": vErr.Error()})
	case errors.As(err, &gErr):
		return e.localizer.Resolve(lang, locale.KeyGeneration, map[string]string{"message": gErr.Error()})
	case errors.Is(err, ErrGenerationInFlight):
		return e.localizer.Resolve(lang, locale.KeyGenerationInFlight, nil)
	case errors.Is(err, ErrSessionNotFound):
		return e.localizer.Resolve(lang, locale.KeySessionNotFound, nil)
	case errors.Is(err, ErrHistoryItemNotFound):
		return e.localizer.Resolve(lang, locale.KeyHistoryItemNotFound, nil)
	}
	return e.localizer.Resolve(lang, locale.KeyUnexpected, nil)
}
