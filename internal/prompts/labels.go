package prompts

import "vprompt-web/internal/domain"

// fieldLabels は提案プロンプトに埋め込む項目名の言語別表記です。
var fieldLabels = map[domain.Language]map[domain.Field]string{
	domain.LanguageEnglish: {
		domain.FieldGenre:         "Genre",
		domain.FieldStyle:         "Style",
		domain.FieldSubject:       "Subject",
		domain.FieldAction:        "Action/Scene",
		domain.FieldSetting:       "Setting/Environment",
		domain.FieldCamera:        "Camera Shot/Movement",
		domain.FieldMood:          "Mood/Lighting",
		domain.FieldBGM:           "Background Music (BGM)",
		domain.FieldSFX:           "Sound Effects (SFX)",
		domain.FieldVoice:         "Voice / Narration",
		domain.FieldDialogueStyle: "Dialogue Style",
		domain.FieldDialogue:      "Dialogue Content",
	},
	domain.LanguageKorean: {
		domain.FieldGenre:         "장르",
		domain.FieldStyle:         "스타일",
		domain.FieldSubject:       "주제",
		domain.FieldAction:        "액션/장면",
		domain.FieldSetting:       "배경/환경",
		domain.FieldCamera:        "카메라 샷/움직임",
		domain.FieldMood:          "분위기/조명",
		domain.FieldBGM:           "배경음악 (BGM)",
		domain.FieldSFX:           "음향 효과 (SFX)",
		domain.FieldVoice:         "보이스 / 나레이션",
		domain.FieldDialogueStyle: "대화 스타일",
		domain.FieldDialogue:      "대화 내용",
	},
}

// FieldLabel は項目の表示名を返します。未知の言語は英語、未知の項目はキー名にフォールバックします。
func FieldLabel(lang domain.Language, f domain.Field) string {
	labels, ok := fieldLabels[lang]
	if !ok {
		labels = fieldLabels[domain.LanguageEnglish]
	}
	if label, ok := labels[f]; ok {
		return label
	}
	return string(f)
}
