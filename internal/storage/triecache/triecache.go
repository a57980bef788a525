// Package triecache caches a sealed trie's gob encoding in a LevelDB store,
// keyed by a hash of the path, size and modification time of the dictionary
// file it was built from. This is
// a pure ambient optimization: it never changes tokenization behavior, only
// how often a dictionary file gets re-parsed and re-sealed.
package triecache

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/syndtr/goleveldb/leveldb"

	"thaitok/internal/lib/logger/sl"
	"thaitok/trie"
)

// ErrNotFound is returned by Get when no cached entry exists for a key.
var ErrNotFound = errors.New("triecache: entry not found")

// Store is a LevelDB-backed cache of sealed tries.
type Store struct {
	log *slog.Logger
	db  *leveldb.DB
}

// Open opens (creating if necessary) a LevelDB database at path for use as
// a trie cache.
func Open(log *slog.Logger, path string) (*Store, error) {
	const op = "triecache.Open"

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{log: log, db: db}, nil
}

// Close releases the underlying LevelDB handles.
func (s *Store) Close() error {
	return s.db.Close()
}

// KeyForFile derives a cache key from a dictionary file's path, size, and
// modification time, so a changed dictionary never hits a stale cache
// entry.
func KeyForFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("triecache: stat %s: %w", path, err)
	}

	h := sha256.New()
	fmt.Fprintf(h, "%s:%d:%d", path, info.Size(), info.ModTime().UnixNano())
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Get returns the sealed trie cached under key, or ErrNotFound if absent.
func (s *Store) Get(key string) (*trie.Sealed, error) {
	data, err := s.db.Get([]byte("trie:"+key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var sealed trie.Sealed
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&sealed); err != nil {
		s.log.Error("Failed to decode cached trie", "error", sl.Err(err))
		return nil, err
	}
	return &sealed, nil
}

// Put stores sealed under key, overwriting any existing entry.
func (s *Store) Put(key string, sealed *trie.Sealed) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(sealed); err != nil {
		return fmt.Errorf("triecache: encode: %w", err)
	}

	if err := s.db.Put([]byte("trie:"+key), buf.Bytes(), nil); err != nil {
		s.log.Error("Failed to write cached trie", "error", sl.Err(err))
		return err
	}
	return nil
}
