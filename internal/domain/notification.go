package domain

const CategoryNotAvailable = "N/A"

// NotificationRequest は Slack 等の通知コンポーネントで共有されるデータ構造です。
// 生成された映像プロンプトのメタデータを通知先に伝えるために使用します。
type NotificationRequest struct {
	// SessionID は生成を要求したセッションの識別子です。
	SessionID string `json:"session_id"`

	// Idea は生成の元になった中核アイデアです。
	Idea string `json:"idea"`

	// TargetTitle は生成物のタイトルです。失敗時は CategoryNotAvailable になります。
	TargetTitle string `json:"target_title"`

	// Language は出力言語です。(例: "ko")
	Language Language `json:"language"`

	// Segments は要求されたシーン数です。
	Segments int `json:"segments"`
}
