package handlers

import (
	"log/slog"
	"net/http"

	"vprompt-web/internal/domain"
	"vprompt-web/internal/engine"
	"vprompt-web/internal/locale"

	"github.com/go-chi/chi/v5"
)

// generateResponse は完全生成の応答です。失敗時もセッションの状態を含みます。
type generateResponse struct {
	Session engine.Snapshot `json:"session"`
	Error   string          `json:"error,omitempty"`
}

// suggestionResponse は1項目の提案の応答です。
type suggestionResponse struct {
	Session engine.Snapshot         `json:"session"`
	Result  engine.SuggestionResult `json:"result"`
}

// batchSuggestionRequest は複数項目の提案要求です。
type batchSuggestionRequest struct {
	Fields []string `json:"fields"`
}

// batchSuggestionResponse は複数項目の提案の応答です。Results は要求と同じ順に並びます。
type batchSuggestionResponse struct {
	Session engine.Snapshot           `json:"session"`
	Results []engine.SuggestionResult `json:"results"`
}

// Generate は現在の入力から完全生成を実行し、完了まで待って結果を返します。
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}
	sess, ok := h.session(w, r, lang)
	if !ok {
		return
	}

	if _, err := h.pipeline.Execute(r.Context(), sess, lang); err != nil {
		slog.WarnContext(r.Context(), "完全生成に失敗しました", "session_id", sess.ID, "error", err)
		writeJSON(w, statusOf(err), generateResponse{
			Session: sess.Snapshot(),
			Error:   h.engine.Message(lang, err),
		})
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{Session: sess.Snapshot()})
}

// Suggest は URL の {field} について提案を生成します。
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}
	sess, ok := h.session(w, r, lang)
	if !ok {
		return
	}

	raw := chi.URLParam(r, "field")
	field, err := domain.ParseField(raw)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, lang, locale.KeyInvalidField, map[string]string{"field": raw})
		return
	}

	result := h.engine.RequestSuggestion(r.Context(), sess, field, lang)
	status := http.StatusOK
	if result.Status == engine.SuggestionFailed {
		status = statusOf(result.Err)
	}
	writeJSON(w, status, suggestionResponse{Session: sess.Snapshot(), Result: result})
}

// SuggestBatch は複数項目の提案を並行に生成します。
// 各項目の成否は Results で個別に返し、一部が失敗しても 200 を返します。
func (h *Handler) SuggestBatch(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}
	sess, ok := h.session(w, r, lang)
	if !ok {
		return
	}

	var req batchSuggestionRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeMessage(w, http.StatusBadRequest, lang, locale.KeyInvalidInput, map[string]string{"message": err.Error()})
		return
	}

	fields := make([]domain.Field, 0, len(req.Fields))
	for _, raw := range req.Fields {
		f, err := domain.ParseField(raw)
		if err != nil {
			h.writeMessage(w, http.StatusBadRequest, lang, locale.KeyInvalidField, map[string]string{"field": raw})
			return
		}
		fields = append(fields, f)
	}

	results := h.engine.RequestSuggestions(r.Context(), sess, fields, lang)
	writeJSON(w, http.StatusOK, batchSuggestionResponse{Session: sess.Snapshot(), Results: results})
}
