package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"vprompt-web/internal/locale"

	"github.com/go-chi/chi/v5"
)

// CreateSession は既定値の入力を持つ新しいセッションを作成します。
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.engine.Sessions().Create()
	slog.InfoContext(r.Context(), "セッションを作成しました", "session_id", sess.ID)
	writeJSON(w, http.StatusCreated, sess.Snapshot())
}

// GetSession はセッションの現在の状態を返します。
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}
	sess, ok := h.session(w, r, lang)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// UpdateInputs はユーザーによる入力の直接編集を反映します。
// ボディに含まれない項目は現在の値のままです。
func (h *Handler) UpdateInputs(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}
	sess, ok := h.session(w, r, lang)
	if !ok {
		return
	}

	inputs := sess.Inputs()
	if err := decodeBody(w, r, &inputs); err != nil {
		slog.WarnContext(r.Context(), "入力の解析に失敗しました", "session_id", sess.ID, "error", err)
		h.writeMessage(w, http.StatusBadRequest, lang, locale.KeyInvalidInput, map[string]string{"message": err.Error()})
		return
	}

	if err := h.engine.UpdateInputs(sess, inputs); err != nil {
		h.writeError(w, lang, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// Reset は入力を既定値に戻し、出力とエラーを消去します。
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}
	sess, ok := h.session(w, r, lang)
	if !ok {
		return
	}
	h.engine.Reset(sess)
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// ReuseHistory は履歴の項目を現在の出力として再表示します。
func (h *Handler) ReuseHistory(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}
	sess, ok := h.session(w, r, lang)
	if !ok {
		return
	}

	raw := chi.URLParam(r, "itemID")
	itemID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, lang, locale.KeyInvalidInput, map[string]string{"message": "itemID: " + raw})
		return
	}

	if _, err := h.engine.Reuse(sess, itemID); err != nil {
		h.writeError(w, lang, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// DeleteSession はセッションを破棄します。
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.engine.Sessions().Delete(id)
	w.WriteHeader(http.StatusNoContent)
}
