package engine

import (
	"time"

	"vprompt-web/internal/domain"
)

// HistoryLimit は履歴に保持する最大件数です。
const HistoryLimit = 10

// History は成功した生成結果を新しい順に最大 HistoryLimit 件保持します。
// 排他制御は所有する Session が行います。
type History struct {
	items  []domain.HistoryItem
	lastID int64
	now    func() time.Time
}

func newHistory(now func() time.Time) *History {
	if now == nil {
		now = time.Now
	}
	return &History{now: now}
}

// Record は output を先頭に追加し、上限を超えた古い項目を捨てます。
// ID はミリ秒時刻を基にしますが、同一ミリ秒内でも単調増加します。
func (h *History) Record(output domain.GeneratedOutput) domain.HistoryItem {
	id := h.now().UnixMilli()
	if id <= h.lastID {
		id = h.lastID + 1
	}
	h.lastID = id

	item := domain.HistoryItem{ID: id, Output: output}
	items := make([]domain.HistoryItem, 0, HistoryLimit)
	items = append(items, item)
	items = append(items, h.items...)
	if len(items) > HistoryLimit {
		items = items[:HistoryLimit]
	}
	h.items = items
	return item
}

// Find は ID に一致する項目を返します。
func (h *History) Find(id int64) (domain.HistoryItem, bool) {
	for _, it := range h.items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.HistoryItem{}, false
}

// Items は新しい順の履歴のコピーを返します。
func (h *History) Items() []domain.HistoryItem {
	out := make([]domain.HistoryItem, len(h.items))
	copy(out, h.items)
	return out
}
