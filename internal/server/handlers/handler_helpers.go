package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"vprompt-web/internal/domain"
	"vprompt-web/internal/engine"
	"vprompt-web/internal/locale"

	"github.com/go-chi/chi/v5"
)

// errorResponse は API のエラー応答です。
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON は v を JSON として書き込みます。
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("レスポンスの書き込みに失敗しました", "error", err)
	}
}

// writeError は err を言語別メッセージに変換し、種類に応じたステータスで書き込みます。
func (h *Handler) writeError(w http.ResponseWriter, lang domain.Language, err error) {
	writeJSON(w, statusOf(err), errorResponse{Error: h.engine.Message(lang, err)})
}

// writeMessage はカタログのキーを直接解決してエラー応答を書き込みます。
func (h *Handler) writeMessage(w http.ResponseWriter, status int, lang domain.Language, key string, subs map[string]string) {
	writeJSON(w, status, errorResponse{Error: h.resolver.Resolve(lang, key, subs)})
}

func statusOf(err error) int {
	var vErr *domain.ValidationError
	var gErr *domain.GenerationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &gErr):
		return http.StatusBadGateway
	case errors.Is(err, engine.ErrGenerationInFlight):
		return http.StatusConflict
	case errors.Is(err, engine.ErrSessionNotFound), errors.Is(err, engine.ErrHistoryItemNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// language は ?lang= を解釈します。未指定なら既定の言語を使います。
func (h *Handler) language(w http.ResponseWriter, r *http.Request) (domain.Language, bool) {
	raw := r.URL.Query().Get("lang")
	if raw == "" {
		return h.defaultLang, true
	}
	lang, err := domain.ParseLanguage(raw)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, h.defaultLang, locale.KeyInvalidLanguage, map[string]string{"language": raw})
		return "", false
	}
	return lang, true
}

// session は URL の {id} からセッションを取り出します。見つからなければ 404 を書き込みます。
func (h *Handler) session(w http.ResponseWriter, r *http.Request, lang domain.Language) (*engine.Session, bool) {
	sess, err := h.engine.Sessions().Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, lang, err)
		return nil, false
	}
	return sess, true
}

// decodeBody はサイズ上限付きで JSON ボディを読み込みます。
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
