package localstore

import (
	"os"
	"path/filepath"
	"strings"

	"oficina_facil/internal/usecase/interfaces"
)

// Store is keyed blob storage backed by one file per key under a data
// directory. It plays the role the browser's localStorage played in the
// original deployment: device-local, single-writer, survives restarts.
type Store struct {
	dir string
}

var _ interfaces.ILocalStore = (*Store)(nil)

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Get(key string) ([]byte, bool) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return b, true
}

func (s *Store) Put(key string, data []byte) error {
	return os.WriteFile(s.path(key), data, 0o644)
}

func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, sanitize(key)+".json")
}

// sanitize keeps keys filesystem-safe; cache keys may embed sheet titles
// with spaces, colons and accents.
func sanitize(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
