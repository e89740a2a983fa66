package prompts

import (
	"fmt"
	"strings"

	"vprompt-web/internal/domain"

	promptkit "github.com/shouni/go-prompt-kit/prompts"
	"github.com/shouni/go-prompt-kit/resource"
)

// Assembler は PromptInputs から生成サービス向けのリクエストを組み立てます。
// 入力を変更せず、外部 I/O も行いません。
type Assembler struct {
	builder *promptkit.Builder
}

// NewAssembler は埋め込みテンプレートを読み込んで Assembler を初期化します。
func NewAssembler() (*Assembler, error) {
	templates, err := resource.Load(templateFS, templateDir, templatePrefix)
	if err != nil {
		return nil, fmt.Errorf("プロンプトテンプレートの読み込みに失敗しました: %w", err)
	}
	for _, mode := range []string{ModeGeneration, ModeSuggestionDialogue, ModeSuggestionField} {
		if _, ok := templates[mode]; !ok {
			return nil, fmt.Errorf("プロンプトテンプレート '%s' が見つかりません", mode)
		}
	}

	builder, err := promptkit.NewBuilder(templates)
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗しました: %w", err)
	}
	return &Assembler{builder: builder}, nil
}

// BuildGenerationRequest は完全生成用のリクエストを組み立てます。
// アイデアが空白のみの場合は *domain.ValidationError を返します。
func (a *Assembler) BuildGenerationRequest(inputs domain.PromptInputs, lang domain.Language) (GenerationRequest, error) {
	if err := inputs.Validate(); err != nil {
		return GenerationRequest{}, err
	}

	data := generationData{
		LanguageName:   lang.Name(),
		Idea:           inputs.SimpleIdea,
		Genre:          orNotSpecified(inputs.Genre),
		Style:          orNotSpecified(inputs.Style),
		Subject:        orNotSpecified(inputs.Subject),
		Action:         orNotSpecified(inputs.Action),
		Setting:        orNotSpecified(inputs.Setting),
		Camera:         orNotSpecified(inputs.Camera),
		Mood:           orNotSpecified(inputs.Mood),
		BGM:            orNotSpecified(inputs.BGM),
		SFX:            orNotSpecified(inputs.SFX),
		Voice:          orNotSpecified(inputs.Voice),
		SpeakerDetails: SpeakerDetails(inputs),
		DialogueStyle:  orNotSpecified(inputs.DialogueStyle),
		Dialogue:       orNotSpecified(inputs.Dialogue),
		HasDialogue:    inputs.Dialogue != "",
		Duration:       inputs.Duration,
		Segments:       inputs.Segments,
	}

	prompt, err := a.execute(ModeGeneration, data)
	if err != nil {
		return GenerationRequest{}, err
	}

	return GenerationRequest{
		Prompt:   prompt,
		Schema:   ResponseSchema(),
		Language: lang,
		Segments: inputs.Segments,
		Duration: inputs.Duration,
	}, nil
}

// BuildSuggestionRequest は単一項目の提案リクエストを組み立てます。
// アイデアが未入力、または提案対象外の項目の場合は ok=false を返し、呼び出し側は何もしません。
func (a *Assembler) BuildSuggestionRequest(field domain.Field, inputs domain.PromptInputs, lang domain.Language) (req SuggestionRequest, ok bool, err error) {
	if !inputs.HasIdea() || !field.Suggestible() {
		return SuggestionRequest{}, false, nil
	}

	var prompt string
	if field == domain.FieldDialogue {
		style := inputs.DialogueStyle
		if style == "" {
			style = DefaultDialogueStyle
		}
		prompt, err = a.execute(ModeSuggestionDialogue, suggestionData{
			LanguageName:   lang.Name(),
			Idea:           inputs.SimpleIdea,
			Genre:          orNotSpecified(inputs.Genre),
			Mood:           orNotSpecified(inputs.Mood),
			SpeakerDetails: SpeakerDetails(inputs),
			DialogueStyle:  style,
		})
	} else {
		prompt, err = a.execute(ModeSuggestionField, suggestionData{
			LanguageName: lang.Name(),
			Idea:         inputs.SimpleIdea,
			Genre:        inputs.Genre,
			FieldLabel:   FieldLabel(lang, field),
			GenreContext: (field == domain.FieldBGM || field == domain.FieldSFX) && inputs.Genre != "",
		})
	}
	if err != nil {
		return SuggestionRequest{}, false, err
	}

	return SuggestionRequest{Field: field, Prompt: prompt, Language: lang}, true, nil
}

// SpeakerDetails は話者構成を人が読める説明に変換します。
func SpeakerDetails(inputs domain.PromptInputs) string {
	switch inputs.SpeakerGender {
	case domain.SpeakerMale:
		return "one male speaker"
	case domain.SpeakerFemale:
		return "one female speaker"
	case domain.SpeakerMultiple:
		return fmt.Sprintf("%d speakers", inputs.SpeakerCount)
	}
	return NotSpecified
}

func (a *Assembler) execute(mode string, data any) (string, error) {
	prompt, err := a.builder.Build(mode, data)
	if err != nil {
		return "", fmt.Errorf("%s プロンプトの組み立てに失敗しました: %w", mode, err)
	}
	return strings.TrimSpace(prompt), nil
}

func orNotSpecified(s string) string {
	if s == "" {
		return NotSpecified
	}
	return s
}
