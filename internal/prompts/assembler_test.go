package prompts

import (
	"errors"
	"strings"
	"testing"

	"vprompt-web/internal/domain"

	"github.com/shouni/go-prompt-kit/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newAssembler(t *testing.T) *Assembler {
	t.Helper()
	a, err := NewAssembler()
	require.NoError(t, err)
	return a
}

func TestEmbeddedTemplates_LoadEveryMode(t *testing.T) {
	templates, err := resource.Load(templateFS, templateDir, templatePrefix)
	require.NoError(t, err)

	assert.Len(t, templates, 3)
	for _, mode := range []string{ModeGeneration, ModeSuggestionDialogue, ModeSuggestionField} {
		assert.NotEmpty(t, strings.TrimSpace(templates[mode]), mode)
	}
}

func TestBuildGenerationRequest_RequiresIdea(t *testing.T) {
	a := newAssembler(t)
	in := domain.DefaultInputs()
	in.SimpleIdea = "  \t"

	_, err := a.BuildGenerationRequest(in, domain.LanguageEnglish)

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, domain.FieldSimpleIdea, vErr.Field)
}

func TestBuildGenerationRequest_EmbedsEveryField(t *testing.T) {
	a := newAssembler(t)
	in := domain.DefaultInputs()
	in.SimpleIdea = "a lighthouse keeper's last night"
	in.Genre = "drama"
	in.Segments = 3
	in.Duration = 12

	req, err := a.BuildGenerationRequest(in, domain.LanguageEnglish)
	require.NoError(t, err)

	assert.Contains(t, req.Prompt, `Core Idea: "a lighthouse keeper's last night"`)
	assert.Contains(t, req.Prompt, `Genre: "drama"`)
	assert.Contains(t, req.Prompt, `Style: "not specified"`)
	assert.Contains(t, req.Prompt, `BGM: "not specified"`)
	assert.Contains(t, req.Prompt, `Dialogue Speaker Details: "not specified"`)
	assert.Contains(t, req.Prompt, `Dialogue Content: "not specified"`)
	assert.Contains(t, req.Prompt, "exactly 3 scenes")
	assert.Contains(t, req.Prompt, "total duration of 12 seconds")
	assert.Contains(t, req.Prompt, "entirely in English")
	assert.Contains(t, req.Prompt, "Write original dialogue")
	assert.Contains(t, req.Prompt, "empty string")
	assert.Equal(t, 3, req.Segments)
	assert.Equal(t, 12, req.Duration)
	assert.Equal(t, domain.LanguageEnglish, req.Language)
}

func TestBuildGenerationRequest_SuppliedDialogueIsThematicGuide(t *testing.T) {
	a := newAssembler(t)
	in := domain.DefaultInputs()
	in.SimpleIdea = "two rivals meet again"
	in.Dialogue = "You came back."

	req, err := a.BuildGenerationRequest(in, domain.LanguageKorean)
	require.NoError(t, err)

	assert.Contains(t, req.Prompt, `Dialogue Content: "You came back."`)
	assert.Contains(t, req.Prompt, "thematic guide")
	assert.NotContains(t, req.Prompt, "Write original dialogue")
	assert.Contains(t, req.Prompt, "entirely in Korean")
}

func TestBuildGenerationRequest_Schema(t *testing.T) {
	a := newAssembler(t)
	in := domain.DefaultInputs()
	in.SimpleIdea = "idea"

	req, err := a.BuildGenerationRequest(in, domain.LanguageEnglish)
	require.NoError(t, err)
	require.NotNil(t, req.Schema)

	assert.Equal(t, genai.TypeObject, req.Schema.Type)
	assert.ElementsMatch(t, RequiredEnvelopeKeys, req.Schema.Required)
	for _, k := range RequiredEnvelopeKeys {
		assert.Contains(t, req.Schema.Properties, k)
	}

	scenes := req.Schema.Properties["scenes"]
	require.NotNil(t, scenes.Items)
	assert.Equal(t, genai.TypeArray, scenes.Type)
	assert.ElementsMatch(t, RequiredSceneKeys, scenes.Items.Required)
	assert.ElementsMatch(t, RequiredDialogueKeys, req.Schema.Properties["dialogue_details"].Required)
}

func TestSpeakerDetails(t *testing.T) {
	tests := []struct {
		gender domain.SpeakerGender
		count  int
		want   string
	}{
		{domain.SpeakerMale, 9, "one male speaker"},
		{domain.SpeakerFemale, 9, "one female speaker"},
		{domain.SpeakerMultiple, 4, "4 speakers"},
		{domain.SpeakerUnspecified, 4, "not specified"},
	}
	for _, tt := range tests {
		t.Run(string(tt.gender), func(t *testing.T) {
			in := domain.DefaultInputs()
			in.SpeakerGender = tt.gender
			in.SpeakerCount = tt.count
			assert.Equal(t, tt.want, SpeakerDetails(in))
		})
	}
}

func TestBuildSuggestionRequest_Skips(t *testing.T) {
	a := newAssembler(t)

	empty := domain.DefaultInputs()
	_, ok, err := a.BuildSuggestionRequest(domain.FieldGenre, empty, domain.LanguageEnglish)
	require.NoError(t, err)
	assert.False(t, ok)

	in := domain.DefaultInputs()
	in.SimpleIdea = "idea"
	for _, f := range []domain.Field{domain.FieldSimpleIdea, domain.FieldDuration, domain.FieldSegments, domain.FieldSpeakerGender, domain.FieldSpeakerCount} {
		_, ok, err := a.BuildSuggestionRequest(f, in, domain.LanguageEnglish)
		require.NoError(t, err)
		assert.False(t, ok, f)
	}
}

func TestBuildSuggestionRequest_Dialogue(t *testing.T) {
	a := newAssembler(t)
	in := domain.DefaultInputs()
	in.SimpleIdea = "two detectives at a crime scene"
	in.SpeakerGender = domain.SpeakerMultiple
	in.SpeakerCount = 3

	req, ok, err := a.BuildSuggestionRequest(domain.FieldDialogue, in, domain.LanguageKorean)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, domain.FieldDialogue, req.Field)
	assert.Contains(t, req.Prompt, `Dialogue Style: "Natural conversation"`)
	assert.Contains(t, req.Prompt, `Speaker Details: "3 speakers"`)
	assert.Contains(t, req.Prompt, `Genre: "not specified"`)
	assert.Contains(t, req.Prompt, "must be in Korean")
}

func TestBuildSuggestionRequest_GenreContext(t *testing.T) {
	a := newAssembler(t)
	in := domain.DefaultInputs()
	in.SimpleIdea = "a knight fighting a dragon"
	in.Genre = "dark fantasy"

	bgm, ok, err := a.BuildSuggestionRequest(domain.FieldBGM, in, domain.LanguageEnglish)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, bgm.Prompt, `The specified genre is: "dark fantasy".`)
	assert.Contains(t, bgm.Prompt, `"Background Music (BGM)"`)

	mood, ok, err := a.BuildSuggestionRequest(domain.FieldMood, in, domain.LanguageKorean)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, strings.Contains(mood.Prompt, "The specified genre is"))
	assert.Contains(t, mood.Prompt, `"분위기/조명"`)
}
