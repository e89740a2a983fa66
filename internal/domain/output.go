package domain

import (
	"fmt"
	"math"
)

// SceneDetails は生成された1シーン分の内容です。
type SceneDetails struct {
	SceneNumber int    `json:"scene_number"`
	Description string `json:"description"`
	Camera      string `json:"camera"`
	SFX         string `json:"sfx"`
	// Dialogue は空文字列を許容し、その場合は台詞なしのシーンを意味します。
	Dialogue string `json:"dialogue"`
}

// DialogueDetails は話者と台詞スタイルの要約です。
type DialogueDetails struct {
	Speakers string `json:"speakers"`
	Style    string `json:"style"`
}

// JsonOutput は生成サービスが返す構造化ドキュメント全体です。
type JsonOutput struct {
	Title           string          `json:"title"`
	OverallPrompt   string          `json:"overall_prompt"`
	Genre           string          `json:"genre"`
	Style           string          `json:"style"`
	Mood            string          `json:"mood"`
	BGM             string          `json:"bgm"`
	VoiceNarration  string          `json:"voice_narration"`
	TotalDuration   float64         `json:"total_duration"`
	DialogueDetails DialogueDetails `json:"dialogue_details"`
	Scenes          []SceneDetails  `json:"scenes"`
}

// durationTolerance は total_duration の比較で許容する誤差 (秒) です。
const durationTolerance = 1e-6

// Validate は要求したシーン数、シーン番号の連続性、合計秒数を検証します。
func (j JsonOutput) Validate(segments, duration int) error {
	if math.Abs(j.TotalDuration-float64(duration)) > durationTolerance {
		return fmt.Errorf("expected total_duration %d, got %g", duration, j.TotalDuration)
	}
	if len(j.Scenes) != segments {
		return fmt.Errorf("expected %d scenes, got %d", segments, len(j.Scenes))
	}
	for i, s := range j.Scenes {
		if s.SceneNumber != i+1 {
			return fmt.Errorf("scene at index %d has scene_number %d, want %d", i, s.SceneNumber, i+1)
		}
	}
	return nil
}

// GeneratedOutput は画面に公開される生成結果です。
// Scenario は常に JSON.OverallPrompt の写しであり、独立して生成されることはありません。
type GeneratedOutput struct {
	Scenario string     `json:"scenario"`
	JSON     JsonOutput `json:"json"`
}

// NewGeneratedOutput は Scenario を OverallPrompt から導出して GeneratedOutput を組み立てます。
func NewGeneratedOutput(doc JsonOutput) GeneratedOutput {
	scenes := make([]SceneDetails, len(doc.Scenes))
	copy(scenes, doc.Scenes)
	doc.Scenes = scenes
	return GeneratedOutput{
		Scenario: doc.OverallPrompt,
		JSON:     doc,
	}
}

// HistoryItem は過去の成功した生成結果です。作成後に変更されることはありません。
type HistoryItem struct {
	ID     int64           `json:"id"`
	Output GeneratedOutput `json:"output"`
}
