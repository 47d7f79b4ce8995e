package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"oficina_facil/internal/metrics"
	"oficina_facil/internal/usecase/interfaces"
)

// RedisStore is an alternative cache backend for server deployments where
// the process is not the only reader. Entries keep the same envelope shape
// as the file-backed store; freshness stays a TTL check at read time rather
// than a redis key expiry, so a stale entry can still serve the offline
// fallback path.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

var _ interfaces.ICacheStore = (*RedisStore)(nil)

// NewRedis connects to addr; a nil store and error are returned when the
// server is unreachable so the caller can fall back to the file store.
func NewRedis(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisStore{client: client, now: time.Now}, nil
}

func (s *RedisStore) Put(key string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("[cache][redis] marshal failed key=%s err=%v", key, err)
		return
	}
	env, _ := json.Marshal(envelope{Data: raw, StoredAt: s.now()})
	if err := s.client.Set(context.Background(), keyPrefix+key, env, 0).Err(); err != nil {
		log.Printf("[cache][redis] persist failed key=%s err=%v", key, err)
	}
}

func (s *RedisStore) Get(key string, out any) bool {
	env, ok := s.read(key)
	if !ok {
		metrics.CacheReadsTotal.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		log.Printf("[cache][redis] decode failed key=%s err=%v", key, err)
		metrics.CacheReadsTotal.WithLabelValues("miss").Inc()
		return false
	}
	metrics.CacheReadsTotal.WithLabelValues("hit").Inc()
	return true
}

func (s *RedisStore) StoredAt(key string) (time.Time, bool) {
	env, ok := s.read(key)
	if !ok {
		return time.Time{}, false
	}
	return env.StoredAt, true
}

func (s *RedisStore) IsFresh(key string, ttl time.Duration) bool {
	env, ok := s.read(key)
	if !ok {
		return false
	}
	return s.now().Sub(env.StoredAt) < ttl
}

func (s *RedisStore) read(key string) (envelope, bool) {
	b, err := s.client.Get(context.Background(), keyPrefix+key).Bytes()
	if err != nil {
		return envelope{}, false
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		log.Printf("[cache][redis] corrupt entry key=%s err=%v", key, err)
		return envelope{}, false
	}
	return env, true
}
