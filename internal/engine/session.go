package engine

import (
	"log/slog"
	"sync"
	"time"

	"vprompt-web/internal/domain"
	"vprompt-web/internal/metrics"
)

// State は完全生成の状態です。
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "idle"
}

// Session は1人の利用者の作業状態です。
// 入力、現在の出力、現在のエラー、提案中の項目、履歴を保持し、すべて mu で保護されます。
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	inputs  domain.PromptInputs
	output  *domain.GeneratedOutput
	errMsg  string
	state   State
	pending map[domain.Field]struct{}
	history *History
}

// NewSession は既定の入力を持つ新しいセッションを返します。
func NewSession(id string) *Session {
	return newSessionAt(id, time.Now)
}

func newSessionAt(id string, now func() time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now(),
		inputs:    domain.DefaultInputs(),
		pending:   make(map[domain.Field]struct{}),
		history:   newHistory(now),
	}
}

// Snapshot はある時点のセッション状態の読み取り専用コピーです。
type Snapshot struct {
	ID            string                  `json:"id"`
	Inputs        domain.PromptInputs     `json:"inputs"`
	Output        *domain.GeneratedOutput `json:"output"`
	Error         string                  `json:"error"`
	Loading       bool                    `json:"loading"`
	State         string                  `json:"state"`
	PendingFields []domain.Field          `json:"pendingFields"`
	History       []domain.HistoryItem    `json:"history"`
}

// Snapshot は現在の状態をコピーして返します。
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out *domain.GeneratedOutput
	if s.output != nil {
		cp := *s.output
		out = &cp
	}

	pending := make([]domain.Field, 0, len(s.pending))
	for _, f := range domain.AllFields {
		if _, ok := s.pending[f]; ok {
			pending = append(pending, f)
		}
	}

	return Snapshot{
		ID:            s.ID,
		Inputs:        s.inputs,
		Output:        out,
		Error:         s.errMsg,
		Loading:       s.state == StateLoading,
		State:         s.state.String(),
		PendingFields: pending,
		History:       s.history.Items(),
	}
}

// Inputs は現在の入力のコピーを返します。
func (s *Session) Inputs() domain.PromptInputs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputs
}

func (s *Session) setInputs(in domain.PromptInputs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = in
}

// IsPending は項目の提案が実行中かを返します。
func (s *Session) IsPending(f domain.Field) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[f]
	return ok
}

func (s *Session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = domain.DefaultInputs()
	s.output = nil
	s.errMsg = ""
	if s.state != StateLoading {
		s.state = StateIdle
	}
}

func (s *Session) reuse(id int64) (domain.GeneratedOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.history.Find(id)
	if !ok {
		return domain.GeneratedOutput{}, ErrHistoryItemNotFound
	}
	out := item.Output
	s.output = &out
	return out, nil
}

// beginGeneration は Loading に遷移し、前回の出力とエラーを消去して入力のスナップショットを返します。
func (s *Session) beginGeneration() (domain.PromptInputs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLoading {
		return domain.PromptInputs{}, ErrGenerationInFlight
	}
	s.state = StateLoading
	s.output = nil
	s.errMsg = ""
	return s.inputs, nil
}

// finishGeneration は Loading を抜けます。output が nil でなければ成功として履歴に記録します。
func (s *Session) finishGeneration(output *domain.GeneratedOutput, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if output != nil {
		s.output = output
		s.errMsg = ""
		s.history.Record(*output)
		s.state = StateSucceeded
		return
	}
	s.output = nil
	s.errMsg = errMsg
	s.state = StateFailed
}

// beginSuggestion は項目を提案中に加え、現在のエラーを消去します。
func (s *Session) beginSuggestion(f domain.Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[f]; !ok {
		s.pending[f] = struct{}{}
		metrics.SuggestionsPending.Inc()
	}
	s.errMsg = ""
}

// completeSuggestion は提案の結果を反映し、項目を提案中から外します。
// errMsg が空でなければ失敗として扱い、入力は変更しません。
func (s *Session) completeSuggestion(f domain.Field, text, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if errMsg != "" {
		s.errMsg = errMsg
	} else if err := s.inputs.SetText(f, text); err != nil {
		s.errMsg = err.Error()
		slog.Error("提案を入力に反映できませんでした", "session_id", s.ID, "field", f, "error", err)
	}
	if _, ok := s.pending[f]; ok {
		delete(s.pending, f)
		metrics.SuggestionsPending.Dec()
	}
}
