// Package favorites persists the list of favorited destination names.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Key is the fixed storage key of the favorites list.
const Key = "favoriteCities"

// Store loads and saves the whole list. The list is JSON-encoded as an
// array of strings in every backend.
type Store interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, cities []string) error
}

// Toggle flips city's membership and rewrites the list. It returns the new
// list and whether city is now a favorite.
func Toggle(ctx context.Context, s Store, city string) ([]string, bool, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return nil, false, err
	}

	next := make([]string, 0, len(list)+1)
	found := false
	for _, c := range list {
		if c == city {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		next = append(next, city)
	}

	if err := s.Save(ctx, next); err != nil {
		return nil, false, err
	}
	return next, !found, nil
}

func decode(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

func encode(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}

// FileStore keeps the list in a single JSON file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read favorites: %w", err)
	}
	return decode(data)
}

func (s *FileStore) Save(_ context.Context, cities []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := encode(cities)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create favorites dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	return os.Rename(tmp, s.path)
}

// RedisStore keeps the list under Key, optionally prefixed.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key() string {
	if s.prefix == "" {
		return Key
	}
	return s.prefix + ":" + Key
}

func (s *RedisStore) Load(ctx context.Context) ([]string, error) {
	val, err := s.client.Get(ctx, s.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get favorites: %w", err)
	}
	return decode(val)
}

func (s *RedisStore) Save(ctx context.Context, cities []string) error {
	data, err := encode(cities)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set favorites: %w", err)
	}
	return nil
}
