package prompts

import "google.golang.org/genai"

// RequiredEnvelopeKeys は JsonOutput の最上位で必須となるキーです。
var RequiredEnvelopeKeys = []string{
	"title", "overall_prompt", "genre", "style", "mood", "bgm",
	"voice_narration", "total_duration", "dialogue_details", "scenes",
}

// RequiredDialogueKeys は dialogue_details の必須キーです。
var RequiredDialogueKeys = []string{"speakers", "style"}

// RequiredSceneKeys は各シーンの必須キーです。
var RequiredSceneKeys = []string{"scene_number", "description", "camera", "sfx", "dialogue"}

// ResponseSchema は生成サービスに渡す JsonOutput のスキーマを返します。
// 呼び出しごとに新しい値を返すため、呼び出し側で変更しても共有されません。
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":           {Type: genai.TypeString, Description: "A creative title for the video concept."},
			"overall_prompt":  {Type: genai.TypeString, Description: "A single narrative paragraph that synthesizes all scenes. This is the main scenario text."},
			"genre":           {Type: genai.TypeString},
			"style":           {Type: genai.TypeString},
			"mood":            {Type: genai.TypeString},
			"bgm":             {Type: genai.TypeString, Description: "Description of the background music."},
			"voice_narration": {Type: genai.TypeString, Description: "Description of any voiceover or narration."},
			"total_duration":  {Type: genai.TypeNumber, Description: "The total duration of the video in seconds."},
			"dialogue_details": {
				Type:        genai.TypeObject,
				Description: "Details about the dialogue speakers and style.",
				Properties: map[string]*genai.Schema{
					"speakers": {Type: genai.TypeString, Description: "Description of the speakers."},
					"style":    {Type: genai.TypeString, Description: "The style of the dialogue."},
				},
				Required: append([]string(nil), RequiredDialogueKeys...),
			},
			"scenes": {
				Type:        genai.TypeArray,
				Description: "One object per scene, in order.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"scene_number": {Type: genai.TypeInteger},
						"description":  {Type: genai.TypeString, Description: "A detailed visual and narrative description of this scene."},
						"camera":       {Type: genai.TypeString, Description: "Camera shot and movement for this scene."},
						"sfx":          {Type: genai.TypeString, Description: "Sound effects for this scene."},
						"dialogue":     {Type: genai.TypeString, Description: "Dialogue spoken in this scene. Empty string if there is none."},
					},
					Required: append([]string(nil), RequiredSceneKeys...),
				},
			},
		},
		Required: append([]string(nil), RequiredEnvelopeKeys...),
	}
}
