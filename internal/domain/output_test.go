package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratedOutput_ScenarioMirrorsOverallPrompt(t *testing.T) {
	doc := JsonOutput{
		Title:         "The Keeper",
		OverallPrompt: "A lone keeper tends the light.",
		Scenes:        []SceneDetails{{SceneNumber: 1, Description: "storm"}},
	}
	out := NewGeneratedOutput(doc)

	assert.Equal(t, doc.OverallPrompt, out.Scenario)
	assert.Equal(t, out.JSON.OverallPrompt, out.Scenario)

	doc.Scenes[0].Description = "changed"
	assert.Equal(t, "storm", out.JSON.Scenes[0].Description)
}

func TestJsonOutput_Validate(t *testing.T) {
	doc := JsonOutput{TotalDuration: 9, Scenes: []SceneDetails{{SceneNumber: 1}, {SceneNumber: 2}, {SceneNumber: 3}}}
	assert.NoError(t, doc.Validate(3, 9))
	assert.Error(t, doc.Validate(2, 9))

	// 合計秒数が要求と異なる文書は受け入れない
	err := doc.Validate(3, 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total_duration")

	doc.Scenes[2].SceneNumber = 4
	assert.Error(t, doc.Validate(3, 9))
}

func TestGenerationError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &GenerationError{Message: "gemini call failed", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "gemini call failed: connection reset", err.Error())
	assert.Equal(t, "plain", (&GenerationError{Message: "plain"}).Error())
}
