package cache

import (
	"encoding/json"
	"log"
	"time"

	"oficina_facil/internal/metrics"
	"oficina_facil/internal/usecase/interfaces"
)

const keyPrefix = "oficinafacil_cache_"

type envelope struct {
	Data     json.RawMessage `json:"data"`
	StoredAt time.Time       `json:"storedAt"`
}

// Store persists one envelope per collection key through the local store.
type Store struct {
	local interfaces.ILocalStore
	now   func() time.Time
}

var _ interfaces.ICacheStore = (*Store)(nil)

func New(local interfaces.ILocalStore) *Store {
	return &Store{local: local, now: time.Now}
}

func (s *Store) Put(key string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("[cache] marshal failed key=%s err=%v", key, err)
		return
	}
	env, err := json.Marshal(envelope{Data: raw, StoredAt: s.now()})
	if err != nil {
		log.Printf("[cache] envelope marshal failed key=%s err=%v", key, err)
		return
	}
	if err := s.local.Put(keyPrefix+key, env); err != nil {
		// Non-fatal: the previous (stale) entry simply persists.
		log.Printf("[cache] persist failed key=%s err=%v", key, err)
	}
}

func (s *Store) Get(key string, out any) bool {
	env, ok := s.read(key)
	if !ok {
		metrics.CacheReadsTotal.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		log.Printf("[cache] decode failed key=%s err=%v", key, err)
		metrics.CacheReadsTotal.WithLabelValues("miss").Inc()
		return false
	}
	metrics.CacheReadsTotal.WithLabelValues("hit").Inc()
	return true
}

func (s *Store) StoredAt(key string) (time.Time, bool) {
	env, ok := s.read(key)
	if !ok {
		return time.Time{}, false
	}
	return env.StoredAt, true
}

func (s *Store) IsFresh(key string, ttl time.Duration) bool {
	env, ok := s.read(key)
	if !ok {
		return false
	}
	return s.now().Sub(env.StoredAt) < ttl
}

func (s *Store) read(key string) (envelope, bool) {
	b, ok := s.local.Get(keyPrefix + key)
	if !ok {
		return envelope{}, false
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		// Corrupt entries are treated as absent.
		log.Printf("[cache] corrupt entry key=%s err=%v", key, err)
		return envelope{}, false
	}
	return env, true
}
