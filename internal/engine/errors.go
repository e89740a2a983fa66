package engine

import "errors"

var (
	// ErrGenerationInFlight は同じセッションで完全生成が既に実行中であることを示します。
	ErrGenerationInFlight = errors.New("generation already in progress")
	// ErrSessionNotFound はセッションが存在しないか期限切れであることを示します。
	ErrSessionNotFound = errors.New("session not found")
	// ErrHistoryItemNotFound は指定された履歴項目が存在しないことを示します。
	ErrHistoryItemNotFound = errors.New("history item not found")
)

// SuggestionErrorPrefix で始まる提案テキストは失敗として扱います。
const SuggestionErrorPrefix = "Error: "
