package prompts

import (
	"embed"

	"vprompt-web/internal/domain"

	"google.golang.org/genai"
)

const (
	ModeGeneration         = "generation"
	ModeSuggestionDialogue = "suggestion_dialogue"
	ModeSuggestionField    = "suggestion_field"

	// NotSpecified は未入力項目の代わりにプロンプトへ埋め込む文字列です。
	NotSpecified = "not specified"
	// DefaultDialogueStyle は台詞提案でスタイル未入力のときに使う既定値です。
	DefaultDialogueStyle = "Natural conversation"
)

// templateFS は templates/prompt_<mode>.md 形式の埋め込みテンプレートです。
//
//go:embed templates/*.md
var templateFS embed.FS

const (
	templateDir    = "templates"
	templatePrefix = "prompt_"
)

// GenerationRequest は構造化生成サービスへ送る完全なリクエストです。
type GenerationRequest struct {
	Prompt   string
	Schema   *genai.Schema
	Language domain.Language
	// Segments と Duration は応答の検証に使います。
	Segments int
	Duration int
}

// SuggestionRequest は単一項目の提案テキストを要求するリクエストです。
type SuggestionRequest struct {
	Field    domain.Field
	Prompt   string
	Language domain.Language
}

// generationData は generation.md に渡すデータです。
type generationData struct {
	LanguageName   string
	Idea           string
	Genre          string
	Style          string
	Subject        string
	Action         string
	Setting        string
	Camera         string
	Mood           string
	BGM            string
	SFX            string
	Voice          string
	SpeakerDetails string
	DialogueStyle  string
	Dialogue       string
	HasDialogue    bool
	Duration       int
	Segments       int
}

// suggestionData は提案用テンプレートに渡すデータです。
type suggestionData struct {
	LanguageName   string
	Idea           string
	Genre          string
	Mood           string
	SpeakerDetails string
	DialogueStyle  string
	FieldLabel     string
	GenreContext   bool
}
