package adapters

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"vprompt-web/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJsonOutput_Fenced(t *testing.T) {
	raw := "```json\n" + threeSceneDoc + "\n```"

	doc, err := decodeJsonOutput(raw, 3, 12)
	require.NoError(t, err)
	assert.Equal(t, "A keeper's final night as the storm closes in.", doc.OverallPrompt)
	assert.Equal(t, "one male speaker", doc.DialogueDetails.Speakers)
}

func TestDecodeJsonOutput_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", "   "},
		{"not json", "sorry, I cannot help with that"},
		{"missing envelope key", strings.Replace(threeSceneDoc, `"bgm": "solo cello",`, "", 1)},
		{"null envelope key", strings.Replace(threeSceneDoc, `"mood": "melancholic"`, `"mood": null`, 1)},
		{"missing dialogue key", strings.Replace(threeSceneDoc, `"style": "quiet"`, `"tone": "quiet"`, 1)},
		{"missing scene dialogue", strings.Replace(threeSceneDoc, `"sfx": "gulls", "dialogue": ""`, `"sfx": "gulls"`, 1)},
		{"wrong type", strings.Replace(threeSceneDoc, `"total_duration": 12`, `"total_duration": "twelve"`, 1)},
		{"scenes not array", strings.Replace(threeSceneDoc, `"scenes": [`, `"scenes": {"x": [`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeJsonOutput(tt.raw, 3, 12)

			var gErr *domain.GenerationError
			assert.True(t, errors.As(err, &gErr), "got %v", err)
		})
	}
}

func TestDecodeJsonOutput_SceneNumbering(t *testing.T) {
	raw := strings.Replace(threeSceneDoc, `"scene_number": 3`, `"scene_number": 7`, 1)

	_, err := decodeJsonOutput(raw, 3, 12)
	assert.Error(t, err)
}

func TestDecodeJsonOutput_TotalDurationMismatch(t *testing.T) {
	// 12 秒の文書を 9 秒の要求として受け取った場合
	_, err := decodeJsonOutput(threeSceneDoc, 3, 9)

	var gErr *domain.GenerationError
	require.True(t, errors.As(err, &gErr), "got %v", err)
	assert.Contains(t, err.Error(), "total_duration")
}

func TestTruncateString_KeepsRuneBoundaries(t *testing.T) {
	s := strings.Repeat("등대지기", 100)

	got := truncateString(s, 201)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 201, utf8.RuneCountInString(strings.TrimSuffix(got, "...")))
	assert.Equal(t, "짧은 응답", truncateString("짧은 응답", 200))
}

func TestBuildSlackContent_TruncatesKoreanIdeaOnRuneBoundary(t *testing.T) {
	idea := strings.Repeat("한밤의 사막을 건너는 야간열차", 20)
	out := domain.NewGeneratedOutput(domain.JsonOutput{Title: "야간열차", TotalDuration: 8})

	content := buildSlackContent(out, domain.NotificationRequest{SessionID: "sess-1", Idea: idea})
	assert.True(t, utf8.ValidString(content))
	assert.Contains(t, content, string([]rune(idea)[:200])+"...")
}
