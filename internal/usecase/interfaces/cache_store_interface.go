package interfaces

import "time"

// ICacheStore is the local collection cache. A persistence failure on Put is
// logged and swallowed (stale cache simply persists); a corrupt entry on Get
// is treated as absent.
type ICacheStore interface {
	Put(key string, data any)
	// Get decodes the cached blob for key into out and reports whether a
	// usable entry existed.
	Get(key string, out any) bool
	// StoredAt returns the write timestamp of the entry, if present.
	StoredAt(key string) (time.Time, bool)
	// IsFresh reports whether an entry exists and now-storedAt < ttl
	// (strict less-than).
	IsFresh(key string, ttl time.Duration) bool
}
