package locale

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"vprompt-web/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	files map[string]string
}

func (s stubReader) Open(_ context.Context, path string) (io.ReadCloser, error) {
	body, ok := s.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(domain.LanguageEnglish)

	msg := r.Resolve(domain.LanguageEnglish, KeyGeneration, map[string]string{"message": "quota exceeded"})
	assert.Equal(t, "An error occurred: quota exceeded. Please check your API key and network connection.", msg)

	ko := r.Resolve(domain.LanguageKorean, KeySuggestion, map[string]string{"message": "timeout"})
	assert.Equal(t, "오류: timeout", ko)

	assert.Equal(t, "unknown.key", r.Resolve(domain.LanguageKorean, "unknown.key", nil))
}

func TestResolver_FallbackLanguage(t *testing.T) {
	r := NewResolver(domain.LanguageEnglish)
	delete(r.catalog[domain.LanguageKorean], KeyUnexpected)

	assert.Equal(t, "An unexpected error occurred.", r.Resolve(domain.LanguageKorean, KeyUnexpected, nil))
}

func TestLoadResolver_Overrides(t *testing.T) {
	reader := stubReader{files: map[string]string{
		"locale.json": `{"en": {"error.unexpected": "Something broke."}}`,
		"broken.json": `{"fr": {"x": "y"}}`,
	}}
	ctx := context.Background()

	r, err := LoadResolver(ctx, reader, "locale.json", domain.LanguageKorean)
	require.NoError(t, err)
	assert.Equal(t, "Something broke.", r.Resolve(domain.LanguageEnglish, KeyUnexpected, nil))
	assert.Equal(t, "Session not found.", r.Resolve(domain.LanguageEnglish, KeySessionNotFound, nil))

	// 組み込みカタログは変更されない
	assert.Equal(t, "An unexpected error occurred.", NewResolver(domain.LanguageEnglish).Resolve(domain.LanguageEnglish, KeyUnexpected, nil))

	_, err = LoadResolver(ctx, reader, "broken.json", domain.LanguageKorean)
	assert.Error(t, err)

	_, err = LoadResolver(ctx, reader, "missing.json", domain.LanguageKorean)
	assert.Error(t, err)

	r, err = LoadResolver(ctx, nil, "", domain.LanguageKorean)
	require.NoError(t, err)
	assert.NotNil(t, r)
}
