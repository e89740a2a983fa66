package adapters

import (
	"context"
	"errors"
	"testing"

	"vprompt-web/internal/domain"
	"vprompt-web/internal/prompts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const threeSceneDoc = `{
  "title": "The Last Light",
  "overall_prompt": "A keeper's final night as the storm closes in.",
  "genre": "drama",
  "style": "cinematic",
  "mood": "melancholic",
  "bgm": "solo cello",
  "voice_narration": "none",
  "total_duration": 12,
  "dialogue_details": {"speakers": "one male speaker", "style": "quiet"},
  "scenes": [
    {"scene_number": 1, "description": "The lamp flickers.", "camera": "wide", "sfx": "wind", "dialogue": ""},
    {"scene_number": 2, "description": "He climbs the stairs.", "camera": "tracking", "sfx": "footsteps", "dialogue": "One more night."},
    {"scene_number": 3, "description": "Dawn breaks.", "camera": "crane", "sfx": "gulls", "dialogue": ""}
  ]
}`

type fakeStructured struct {
	resp    *genai.GenerateContentResponse
	err     error
	gotCfg  *genai.GenerateContentConfig
	gotText string
}

func (f *fakeStructured) GenerateContent(_ context.Context, _ string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotCfg = cfg
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.gotText = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}}},
	}
}

func TestGeminiAdapter_GenerateStructured(t *testing.T) {
	fake := &fakeStructured{resp: textResponse(threeSceneDoc)}
	a := newGeminiAdapter(fake, nil, GeminiConfig{Model: "gemini-2.5-flash"})
	req := prompts.GenerationRequest{Prompt: "make it", Schema: prompts.ResponseSchema(), Segments: 3, Duration: 12}

	doc, err := a.GenerateStructured(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "The Last Light", doc.Title)
	assert.Len(t, doc.Scenes, 3)
	assert.Equal(t, "", doc.Scenes[0].Dialogue)
	assert.Equal(t, "One more night.", doc.Scenes[1].Dialogue)
	assert.Equal(t, float64(12), doc.TotalDuration)

	require.NotNil(t, fake.gotCfg)
	assert.Equal(t, "application/json", fake.gotCfg.ResponseMIMEType)
	assert.Same(t, req.Schema, fake.gotCfg.ResponseSchema)
	assert.Equal(t, "make it", fake.gotText)
}

func TestGeminiAdapter_GenerateStructuredErrors(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeStructured
	}{
		{"transport", &fakeStructured{err: errors.New("dial tcp: timeout")}},
		{"no candidates", &fakeStructured{resp: &genai.GenerateContentResponse{}}},
		{"empty content", &fakeStructured{resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}}},
		{"scene count mismatch", &fakeStructured{resp: textResponse(threeSceneDoc)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newGeminiAdapter(tt.fake, nil, GeminiConfig{})
			_, err := a.GenerateStructured(context.Background(), prompts.GenerationRequest{Segments: 2})

			var gErr *domain.GenerationError
			assert.True(t, errors.As(err, &gErr))
		})
	}
}

func TestGeminiAdapter_GenerateStructuredRejectsWrongDuration(t *testing.T) {
	a := newGeminiAdapter(&fakeStructured{resp: textResponse(threeSceneDoc)}, nil, GeminiConfig{})

	_, err := a.GenerateStructured(context.Background(), prompts.GenerationRequest{Segments: 3, Duration: 9})

	var gErr *domain.GenerationError
	require.True(t, errors.As(err, &gErr), "got %v", err)
	assert.Contains(t, err.Error(), "total_duration")
}

func TestGeminiAdapter_GenerateText(t *testing.T) {
	var gotPrompt string
	gen := func(_ context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "  A haunting cello line.\n", nil
	}
	a := newGeminiAdapter(nil, gen, GeminiConfig{})

	text, err := a.GenerateText(context.Background(), prompts.SuggestionRequest{Field: domain.FieldBGM, Prompt: "suggest bgm"})
	require.NoError(t, err)
	assert.Equal(t, "A haunting cello line.", text)
	assert.Equal(t, "suggest bgm", gotPrompt)

	failing := newGeminiAdapter(nil, func(context.Context, string) (string, error) {
		return "", errors.New("quota exceeded")
	}, GeminiConfig{})
	_, err = failing.GenerateText(context.Background(), prompts.SuggestionRequest{Field: domain.FieldMood})

	var gErr *domain.GenerationError
	require.True(t, errors.As(err, &gErr))
	assert.Contains(t, gErr.Error(), "quota exceeded")
}
