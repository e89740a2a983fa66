package locale

import "vprompt-web/internal/domain"

// メッセージキー
const (
	KeyIdeaRequired        = "error.idea_required"
	KeyGeneration          = "error.generation"
	KeySuggestion          = "error.suggestion"
	KeyUnexpected          = "error.unexpected"
	KeyGenerationInFlight  = "error.generation_in_flight"
	KeySessionNotFound     = "error.session_not_found"
	KeyHistoryItemNotFound = "error.history_not_found"
	KeyInvalidInput        = "error.invalid_input"
	KeyInvalidField        = "error.invalid_field"
	KeyInvalidLanguage     = "error.invalid_language"
)

// Catalog は言語ごとのキーとメッセージテンプレートの対応表です。
// テンプレート中の {name} は Resolve の subs で置換されます。
type Catalog map[domain.Language]map[string]string

// builtinCatalog は外部カタログが無い場合でも必ず使える既定のメッセージです。
var builtinCatalog = Catalog{
	domain.LanguageEnglish: {
		KeyIdeaRequired:        "Please enter a simple idea first.",
		KeyGeneration:          "An error occurred: {message}. Please check your API key and network connection.",
		KeySuggestion:          "Error: {message}",
		KeyUnexpected:          "An unexpected error occurred.",
		KeyGenerationInFlight:  "A generation is already in progress.",
		KeySessionNotFound:     "Session not found.",
		KeyHistoryItemNotFound: "History item not found.",
		KeyInvalidInput:        "Invalid input: {message}",
		KeyInvalidField:        "Unknown field: {field}",
		KeyInvalidLanguage:     "Unsupported language: {language}",
	},
	domain.LanguageKorean: {
		KeyIdeaRequired:        "먼저 간단한 아이디어를 입력해 주세요.",
		KeyGeneration:          "오류가 발생했습니다: {message}. API 키와 네트워크 연결을 확인해 주세요.",
		KeySuggestion:          "오류: {message}",
		KeyUnexpected:          "예기치 않은 오류가 발생했습니다.",
		KeyGenerationInFlight:  "이미 생성이 진행 중입니다.",
		KeySessionNotFound:     "세션을 찾을 수 없습니다.",
		KeyHistoryItemNotFound: "기록 항목을 찾을 수 없습니다.",
		KeyInvalidInput:        "잘못된 입력: {message}",
		KeyInvalidField:        "알 수 없는 항목: {field}",
		KeyInvalidLanguage:     "지원하지 않는 언어: {language}",
	},
}

// clone は上書きマージ用に Catalog を深くコピーします。
func (c Catalog) clone() Catalog {
	out := make(Catalog, len(c))
	for lang, msgs := range c {
		m := make(map[string]string, len(msgs))
		for k, v := range msgs {
			m[k] = v
		}
		out[lang] = m
	}
	return out
}

// merge は other のエントリで c を上書きします。
func (c Catalog) merge(other Catalog) {
	for lang, msgs := range other {
		dst, ok := c[lang]
		if !ok {
			dst = make(map[string]string, len(msgs))
			c[lang] = dst
		}
		for k, v := range msgs {
			dst[k] = v
		}
	}
}
