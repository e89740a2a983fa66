package domain

import (
	"fmt"
	"strings"
)

// Language は生成テキストを書く自然言語です。
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageKorean  Language = "ko"
)

// ParseLanguage は "en" / "ko" を Language に変換します。
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageEnglish:
		return LanguageEnglish, nil
	case LanguageKorean:
		return LanguageKorean, nil
	}
	return "", fmt.Errorf("unsupported language: %q", s)
}

// Name はプロンプト内で指示に使う言語名を返します。
func (l Language) Name() string {
	if l == LanguageKorean {
		return "Korean"
	}
	return "English"
}
