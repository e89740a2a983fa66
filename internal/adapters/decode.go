package adapters

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"vprompt-web/internal/domain"
	"vprompt-web/internal/prompts"
)

var jsonBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*\\S)\\s*```")

// decodeJsonOutput は生成サービスの応答を厳密に JsonOutput へ変換します。
// 必須キーの欠落、型の不一致、シーン数や合計秒数の不一致はすべて *domain.GenerationError になり、部分的な結果は返しません。
func decodeJsonOutput(raw string, segments, duration int) (domain.JsonOutput, error) {
	body := extractJSON(raw)
	if body == "" {
		return domain.JsonOutput{}, &domain.GenerationError{Message: "empty response from generation service"}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return domain.JsonOutput{}, &domain.GenerationError{
			Message: fmt.Sprintf("malformed JSON in response (excerpt: %q)", truncateString(raw, 200)),
			Err:     err,
		}
	}
	if err := requireKeys("response", envelope, prompts.RequiredEnvelopeKeys); err != nil {
		return domain.JsonOutput{}, err
	}

	var details map[string]json.RawMessage
	if err := json.Unmarshal(envelope["dialogue_details"], &details); err != nil {
		return domain.JsonOutput{}, &domain.GenerationError{Message: "dialogue_details is not an object", Err: err}
	}
	if err := requireKeys("dialogue_details", details, prompts.RequiredDialogueKeys); err != nil {
		return domain.JsonOutput{}, err
	}

	var scenes []map[string]json.RawMessage
	if err := json.Unmarshal(envelope["scenes"], &scenes); err != nil {
		return domain.JsonOutput{}, &domain.GenerationError{Message: "scenes is not an array", Err: err}
	}
	for i, scene := range scenes {
		if err := requireKeys(fmt.Sprintf("scenes[%d]", i), scene, prompts.RequiredSceneKeys); err != nil {
			return domain.JsonOutput{}, err
		}
	}

	var doc domain.JsonOutput
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return domain.JsonOutput{}, &domain.GenerationError{Message: "response does not match the output schema", Err: err}
	}

	if err := doc.Validate(segments, duration); err != nil {
		return domain.JsonOutput{}, &domain.GenerationError{Message: "response does not match the requested scenes and duration", Err: err}
	}
	return doc, nil
}

// requireKeys は obj に keys がすべて存在し、null でないことを確認します。
func requireKeys(scope string, obj map[string]json.RawMessage, keys []string) error {
	for _, k := range keys {
		v, ok := obj[k]
		if !ok || string(v) == "null" {
			return &domain.GenerationError{Message: fmt.Sprintf("missing required key %s.%s", scope, k)}
		}
	}
	return nil
}

// extractJSON はコードフェンスで囲まれた応答から JSON 本体を取り出します。
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if matches := jsonBlockRegex.FindStringSubmatch(raw); len(matches) > 1 {
		return matches[1]
	}
	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first != -1 && last > first {
		return raw[first : last+1]
	}
	return raw
}

// truncateString は s を先頭から maxLen 文字（rune 単位）に切り詰めます。
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
