// Package cache remembers computed answers keyed by day, part and a hash of
// the puzzle input, so repeated runs over the same input return instantly.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

// Sentinel errors for store construction.
var (
	// ErrNoURL is returned by NewRedisStore when no URL is configured.
	ErrNoURL = errors.New("cache: redis URL is empty")

	// ErrNoDir is returned by NewFileStore when no directory is configured.
	ErrNoDir = errors.New("cache: directory is empty")
)

// Record is a cached answer.
type Record struct {
	Day       int     `json:"day"`
	Part      int     `json:"part"`
	Answer    string  `json:"answer"`
	ElapsedMS float64 `json:"elapsed_ms"`
}

// Store is a key/value store for Records.
type Store interface {
	// Get returns the record under key; ok is false on a miss.
	Get(ctx context.Context, key string) (rec Record, ok bool, err error)
	// Set stores rec under key.
	Set(ctx context.Context, key string, rec Record) error
}

// Key derives the cache key of a day/part run over input.
func Key(day, part int, input []byte) string {
	sum := sha256.Sum256(input)
	return fmt.Sprintf("day%02d:part%d:%s", day, part, hex.EncodeToString(sum[:]))
}

// RedisStore keeps records in Redis as JSON strings with a TTL.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to the Redis instance at url and verifies it with a
// PING. Keys are stored as "<prefix>:<key>"; ttl <= 0 means no expiry.
func NewRedisStore(ctx context.Context, url, prefix string, ttl time.Duration) (*RedisStore, error) {
	if url == "" {
		return nil, ErrNoURL
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}

	return &RedisStore{client: client, prefix: prefix, ttl: ttl}, nil
}

func (r *RedisStore) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

// Get implements Store.
func (r *RedisStore) Get(ctx context.Context, key string) (Record, bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to get cached answer: %w", err)
	}
	var rec Record
	if err := sonic.Unmarshal(data, &rec); err != nil {
		return Record{}, false, fmt.Errorf("failed to unmarshal cached answer: %w", err)
	}

	return rec, true, nil
}

// Set implements Store.
func (r *RedisStore) Set(ctx context.Context, key string, rec Record) error {
	data, err := sonic.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	if err := r.client.Set(ctx, r.key(key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache answer: %w", err)
	}

	return nil
}

// Close releases the Redis connection pool.
func (r *RedisStore) Close() error { return r.client.Close() }

// FileStore keeps one JSON file per record under a directory, so answers
// survive between runs without a Redis server. Entries older than the TTL
// read as misses.
type FileStore struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewFileStore creates dir if needed; ttl <= 0 means no expiry.
func NewFileStore(dir string, ttl time.Duration) (*FileStore, error) {
	if dir == "" {
		return nil, ErrNoDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &FileStore{dir: dir, ttl: max(ttl, 0), now: time.Now}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, strings.ReplaceAll(key, ":", "_")+".json")
}

// Get implements Store.
func (f *FileStore) Get(_ context.Context, key string) (Record, bool, error) {
	p := f.path(key)
	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to stat cached answer: %w", err)
	}
	if f.ttl > 0 && f.now().Sub(info.ModTime()) > f.ttl {
		return Record{}, false, nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to read cached answer: %w", err)
	}
	var rec Record
	if err := sonic.Unmarshal(data, &rec); err != nil {
		return Record{}, false, fmt.Errorf("failed to unmarshal cached answer: %w", err)
	}

	return rec, true, nil
}

// Set implements Store. The record is written to a temporary file and
// renamed into place.
func (f *FileStore) Set(_ context.Context, key string, rec Record) error {
	data, err := sonic.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	tmp, err := os.CreateTemp(f.dir, ".record-*")
	if err != nil {
		return fmt.Errorf("failed to cache answer: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to cache answer: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to cache answer: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return fmt.Errorf("failed to cache answer: %w", err)
	}

	return nil
}
