package domain

import (
	"fmt"
	"strings"
)

// 入力値の定義域とデフォルト値
const (
	MinDuration         = 6
	MaxDuration         = 15
	MinSegments         = 1
	MaxSegments         = 10
	MinSpeakerCount     = 2
	DefaultDuration     = MinDuration
	DefaultSegments     = MinSegments
	DefaultSpeakerCount = MinSpeakerCount
)

// SpeakerGender は台詞の話者構成を表します。
type SpeakerGender string

const (
	SpeakerUnspecified SpeakerGender = "unspecified"
	SpeakerMale        SpeakerGender = "male"
	SpeakerFemale      SpeakerGender = "female"
	SpeakerMultiple    SpeakerGender = "multiple"
)

// Valid は既知の話者構成かどうかを返します。
func (g SpeakerGender) Valid() bool {
	switch g {
	case SpeakerUnspecified, SpeakerMale, SpeakerFemale, SpeakerMultiple:
		return true
	}
	return false
}

// PromptInputs はユーザーが入力した創作フィールドの集合です。
// セッションごとに保持され、コアは1回の組み立て処理の間だけ参照します。
type PromptInputs struct {
	SimpleIdea    string        `json:"simpleIdea"`
	Genre         string        `json:"genre"`
	Style         string        `json:"style"`
	Subject       string        `json:"subject"`
	Action        string        `json:"action"`
	Setting       string        `json:"setting"`
	Camera        string        `json:"camera"`
	Mood          string        `json:"mood"`
	BGM           string        `json:"bgm"`
	SFX           string        `json:"sfx"`
	Voice         string        `json:"voice"`
	Dialogue      string        `json:"dialogue"`
	DialogueStyle string        `json:"dialogueStyle"`
	Duration      int           `json:"duration"`
	Segments      int           `json:"segments"`
	SpeakerGender SpeakerGender `json:"speakerGender"`
	// SpeakerCount は SpeakerGender が multiple のときだけ意味を持ちますが、最後に設定された値を常に保持します。
	SpeakerCount int `json:"speakerCount"`
}

// DefaultInputs はリセット時の初期値を返します。
func DefaultInputs() PromptInputs {
	return PromptInputs{
		Duration:      DefaultDuration,
		Segments:      DefaultSegments,
		SpeakerGender: SpeakerUnspecified,
		SpeakerCount:  DefaultSpeakerCount,
	}
}

// HasIdea は中核となるアイデアが空白以外で入力されているかを返します。
func (p PromptInputs) HasIdea() bool {
	return strings.TrimSpace(p.SimpleIdea) != ""
}

// Text は指定されたテキスト項目の値を返します。数値・列挙項目の場合は false を返します。
func (p PromptInputs) Text(f Field) (string, bool) {
	ptr := p.textField(f)
	if ptr == nil {
		return "", false
	}
	return *ptr, true
}

// SetText は指定されたテキスト項目を上書きします。
func (p *PromptInputs) SetText(f Field, value string) error {
	ptr := p.textField(f)
	if ptr == nil {
		return fmt.Errorf("field %q is not a text field", f)
	}
	*ptr = value
	return nil
}

// textField は Text と SetText で共有するフィールドの参照表です。
func (p *PromptInputs) textField(f Field) *string {
	switch f {
	case FieldSimpleIdea:
		return &p.SimpleIdea
	case FieldGenre:
		return &p.Genre
	case FieldStyle:
		return &p.Style
	case FieldSubject:
		return &p.Subject
	case FieldAction:
		return &p.Action
	case FieldSetting:
		return &p.Setting
	case FieldCamera:
		return &p.Camera
	case FieldMood:
		return &p.Mood
	case FieldBGM:
		return &p.BGM
	case FieldSFX:
		return &p.SFX
	case FieldVoice:
		return &p.Voice
	case FieldDialogue:
		return &p.Dialogue
	case FieldDialogueStyle:
		return &p.DialogueStyle
	}
	return nil
}

// ValidateRanges は数値・列挙項目が定義域内にあるかを検証します。
// 入力途中の編集を許容するため、アイデアの有無は確認しません。
func (p PromptInputs) ValidateRanges() error {
	if p.Duration < MinDuration || p.Duration > MaxDuration {
		return &ValidationError{Field: FieldDuration, Reason: fmt.Sprintf("must be between %d and %d seconds", MinDuration, MaxDuration)}
	}
	if p.Segments < MinSegments || p.Segments > MaxSegments {
		return &ValidationError{Field: FieldSegments, Reason: fmt.Sprintf("must be between %d and %d", MinSegments, MaxSegments)}
	}
	if !p.SpeakerGender.Valid() {
		return &ValidationError{Field: FieldSpeakerGender, Reason: fmt.Sprintf("unknown value %q", p.SpeakerGender)}
	}
	if p.SpeakerGender == SpeakerMultiple && p.SpeakerCount < MinSpeakerCount {
		return &ValidationError{Field: FieldSpeakerCount, Reason: fmt.Sprintf("must be at least %d", MinSpeakerCount)}
	}
	return nil
}

// Validate は生成リクエストを組み立てる前の完全な検証を行います。
func (p PromptInputs) Validate() error {
	if !p.HasIdea() {
		return &ValidationError{Field: FieldSimpleIdea, Reason: "is required"}
	}
	return p.ValidateRanges()
}
