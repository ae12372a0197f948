// Package source owns the bytes of every file handed to the front-end and
// assigns the SourceIDs that spans refer back to. The store is append-only:
// once added, a source is never mutated or evicted, so concurrent readers
// need no coordination beyond the internal lock.
package source

import (
	"os"
	"sync"

	"github.com/tarn-lang/tarn/internal/span"
)

type file struct {
	name string
	text string
}

// Store maps SourceIDs to named source texts.
type Store struct {
	mu    sync.RWMutex
	files []file
}

// NewStore returns an empty source store.
func NewStore() *Store {
	return &Store{}
}

// Add registers a source text under name and returns its id. IDs start at 1
// so the zero SourceID stays "no source".
func (s *Store) Add(name, text string) span.SourceID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files = append(s.files, file{name: name, text: text})
	return span.SourceID(len(s.files))
}

// Load reads a file from disk and registers it.
func (s *Store) Load(path string) (span.SourceID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return s.Add(path, string(data)), nil
}

// Name returns the registered name for id, or "" if id is unknown.
func (s *Store) Name(id span.SourceID) string {
	f, ok := s.lookup(id)
	if !ok {
		return ""
	}
	return f.name
}

// Text returns the source text for id. The boolean is false if id is unknown.
func (s *Store) Text(id span.SourceID) (string, bool) {
	f, ok := s.lookup(id)
	if !ok {
		return "", false
	}
	return f.text, true
}

func (s *Store) lookup(id span.SourceID) (file, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id == 0 || int(id) > len(s.files) {
		return file{}, false
	}
	return s.files[id-1], true
}
