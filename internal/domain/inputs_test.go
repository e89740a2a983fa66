package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInputs(t *testing.T) {
	in := DefaultInputs()

	assert.Equal(t, 6, in.Duration)
	assert.Equal(t, 1, in.Segments)
	assert.Equal(t, SpeakerUnspecified, in.SpeakerGender)
	assert.Equal(t, 2, in.SpeakerCount)
	assert.False(t, in.HasIdea())
	assert.NoError(t, in.ValidateRanges())
}

func TestPromptInputs_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *PromptInputs)
		wantField Field
	}{
		{"ok", func(p *PromptInputs) { p.SimpleIdea = "a lighthouse keeper" }, ""},
		{"blank idea", func(p *PromptInputs) { p.SimpleIdea = "   " }, FieldSimpleIdea},
		{"duration too short", func(p *PromptInputs) { p.SimpleIdea = "x"; p.Duration = 5 }, FieldDuration},
		{"duration too long", func(p *PromptInputs) { p.SimpleIdea = "x"; p.Duration = 16 }, FieldDuration},
		{"segments zero", func(p *PromptInputs) { p.SimpleIdea = "x"; p.Segments = 0 }, FieldSegments},
		{"segments eleven", func(p *PromptInputs) { p.SimpleIdea = "x"; p.Segments = 11 }, FieldSegments},
		{"unknown gender", func(p *PromptInputs) { p.SimpleIdea = "x"; p.SpeakerGender = "robot" }, FieldSpeakerGender},
		{"multiple needs two", func(p *PromptInputs) {
			p.SimpleIdea = "x"
			p.SpeakerGender = SpeakerMultiple
			p.SpeakerCount = 1
		}, FieldSpeakerCount},
		{"count ignored unless multiple", func(p *PromptInputs) {
			p.SimpleIdea = "x"
			p.SpeakerGender = SpeakerFemale
			p.SpeakerCount = 0
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInputs()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestPromptInputs_TextAccess(t *testing.T) {
	in := DefaultInputs()

	require.NoError(t, in.SetText(FieldMood, "melancholic"))
	v, ok := in.Text(FieldMood)
	assert.True(t, ok)
	assert.Equal(t, "melancholic", v)
	assert.Equal(t, "melancholic", in.Mood)

	_, ok = in.Text(FieldDuration)
	assert.False(t, ok)
	assert.Error(t, in.SetText(FieldSegments, "3"))
}

func TestField_Suggestible(t *testing.T) {
	for _, f := range []Field{FieldSimpleIdea, FieldDuration, FieldSegments, FieldSpeakerGender, FieldSpeakerCount} {
		assert.False(t, f.Suggestible(), f)
	}
	for _, f := range []Field{FieldGenre, FieldBGM, FieldSFX, FieldDialogue, FieldDialogueStyle} {
		assert.True(t, f.Suggestible(), f)
	}
	assert.False(t, Field("nope").Suggestible())

	f, err := ParseField("dialogueStyle")
	require.NoError(t, err)
	assert.Equal(t, FieldDialogueStyle, f)
	_, err = ParseField("Genre")
	assert.Error(t, err)
}

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage(" KO ")
	require.NoError(t, err)
	assert.Equal(t, LanguageKorean, l)
	assert.Equal(t, "Korean", l.Name())
	assert.Equal(t, "English", LanguageEnglish.Name())

	_, err = ParseLanguage("ja")
	assert.Error(t, err)
}
