package engine

import (
	"log/slog"
	"time"

	"vprompt-web/internal/metrics"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Store はセッションを TTL 付きでメモリに保持します。プロセス再起動をまたいだ永続化は行いません。
type Store struct {
	cache *cache.Cache
}

// NewStore は ttl 経過で失効するセッションストアを作成します。ttl はアクセスのたびに延長されます。
func NewStore(ttl, cleanupInterval time.Duration) *Store {
	s := &Store{cache: cache.New(ttl, cleanupInterval)}
	s.cache.OnEvicted(func(id string, _ interface{}) {
		s.updateGauge()
		slog.Info("セッションを破棄しました", "session_id", id)
	})
	return s
}

// updateGauge は保持数をそのまま SessionsActive に反映します。
func (s *Store) updateGauge() {
	metrics.SessionsActive.Set(float64(s.Count()))
}

// Create は新しいセッションを登録して返します。
func (s *Store) Create() *Session {
	sess := NewSession(uuid.NewString())
	s.cache.Set(sess.ID, sess, cache.DefaultExpiration)
	s.updateGauge()
	return sess
}

// Get はセッションを取得し、有効期限を延長します。
func (s *Store) Get(id string) (*Session, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess, ok := v.(*Session)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.cache.Set(id, sess, cache.DefaultExpiration)
	return sess, nil
}

// Delete はセッションを破棄します。
func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

// Count は保持しているセッション数です。期限切れで未掃除のものを含みます。
func (s *Store) Count() int {
	return s.cache.ItemCount()
}
