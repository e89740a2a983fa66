package domain

import "fmt"

// Field は PromptInputs の各項目を指すキーです。JSON のキー名と一致します。
type Field string

const (
	FieldSimpleIdea    Field = "simpleIdea"
	FieldGenre         Field = "genre"
	FieldStyle         Field = "style"
	FieldSubject       Field = "subject"
	FieldAction        Field = "action"
	FieldSetting       Field = "setting"
	FieldCamera        Field = "camera"
	FieldMood          Field = "mood"
	FieldBGM           Field = "bgm"
	FieldSFX           Field = "sfx"
	FieldVoice         Field = "voice"
	FieldDialogue      Field = "dialogue"
	FieldDialogueStyle Field = "dialogueStyle"
	FieldDuration      Field = "duration"
	FieldSegments      Field = "segments"
	FieldSpeakerGender Field = "speakerGender"
	FieldSpeakerCount  Field = "speakerCount"
)

// AllFields はフォームの表示順に並んだ全項目です。
var AllFields = []Field{
	FieldSimpleIdea,
	FieldGenre,
	FieldStyle,
	FieldSubject,
	FieldAction,
	FieldSetting,
	FieldCamera,
	FieldMood,
	FieldBGM,
	FieldSFX,
	FieldVoice,
	FieldDialogue,
	FieldDialogueStyle,
	FieldDuration,
	FieldSegments,
	FieldSpeakerGender,
	FieldSpeakerCount,
}

// nonSuggestible は提案の対象外となる項目です。
var nonSuggestible = map[Field]struct{}{
	FieldSimpleIdea:    {},
	FieldDuration:      {},
	FieldSegments:      {},
	FieldSpeakerGender: {},
	FieldSpeakerCount:  {},
}

// ParseField は文字列を既知の Field に変換します。
func ParseField(s string) (Field, error) {
	for _, f := range AllFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field: %q", s)
}

// Suggestible はこの項目に対して提案を要求できるかを返します。
func (f Field) Suggestible() bool {
	if _, ok := nonSuggestible[f]; ok {
		return false
	}
	for _, known := range AllFields {
		if known == f {
			return true
		}
	}
	return false
}
