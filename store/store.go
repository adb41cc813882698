package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when an operation targets a record id that does not
// exist in its collection.
var ErrNotFound = errors.New("record not found")

// Store persists each collection as a single JSON array file under Dir.
// All mutations go through Update, which holds a per-collection lock for the
// whole read-modify-write cycle so concurrent writers cannot lose each
// other's changes.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a store rooted at dir. The directory is created lazily on the
// first write.
func New(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// Dir returns the root data directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// collectionLock returns the mutex guarding a collection's file, creating it
// on first use.
func (s *Store) collectionLock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[collection]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[collection] = lock
	}
	return lock
}

// ReadAll returns every record currently persisted for the collection, in
// insertion order. A missing file is first-use bootstrap and yields an empty
// slice. A file that exists but cannot be parsed is logged and also yields an
// empty slice; readers are never failed by a bad file on disk.
func ReadAll[T any](s *Store, collection string) []T {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read collection %s: %v", collection, err)
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("⚠️ Failed to parse collection %s, treating as empty: %v", collection, err)
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// WriteAll replaces the collection's contents with records. The array is
// written to a temporary file in the same directory and renamed over the
// target, so a concurrent reader sees either the old array or the new one,
// never a partial write. Write faults propagate to the caller.
func WriteAll[T any](s *Store, collection string, records []T) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize collection %s: %w", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", collection, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}

	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace collection %s: %w", collection, err)
	}
	return nil
}

// Update runs a read-modify-write cycle under the collection's lock. fn
// receives the current records and returns the records to persist; returning
// an error aborts the cycle without touching the file.
func Update[T any](s *Store, collection string, fn func([]T) ([]T, error)) error {
	lock := s.collectionLock(collection)
	lock.Lock()
	defer lock.Unlock()

	records := ReadAll[T](s, collection)
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return WriteAll(s, collection, updated)
}
