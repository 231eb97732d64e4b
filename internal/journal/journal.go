package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Entry records one completed repair run against a file.
type Entry struct {
	File    string    `json:"file"`
	FixedAt time.Time `json:"fixed_at"`
	Inserts int       `json:"inserts"`
	Deletes int       `json:"deletes"`
	Backup  string    `json:"backup,omitempty"` // path of the .bak copy, if one was written
}

// Store abstracts journal persistence for testability.
type Store interface {
	Load() ([]Entry, error)
	Append(Entry) error
}

// FileStore implements Store using a JSON file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (fs *FileStore) Load() ([]Entry, error) {
	f, err := os.Open(fs.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open journal %s: %w", fs.Path, err)
	}
	defer f.Close()

	var entries []Entry
	dec := json.NewDecoder(f)
	if err := dec.Decode(&entries); err != nil && err.Error() != "EOF" {
		return nil, fmt.Errorf("failed to decode journal %s: %w", fs.Path, err)
	}
	return entries, nil
}

func (fs *FileStore) Append(e Entry) error {
	entries, err := fs.Load()
	if err != nil {
		return err
	}
	entries = append(entries, e)

	f, err := os.Create(fs.Path)
	if err != nil {
		return fmt.Errorf("failed to write journal %s: %w", fs.Path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// MemStore implements Store in memory (no disk I/O), for tests.
type MemStore struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (ms *MemStore) Load() ([]Entry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	cpy := make([]Entry, len(ms.entries))
	copy(cpy, ms.entries)
	return cpy, nil
}

func (ms *MemStore) Append(e Entry) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.entries = append(ms.entries, e)
	return nil
}

// LastFor returns the most recent entry for file, scanning from the end.
func LastFor(entries []Entry, file string) (Entry, bool) {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].File == file {
			return entries[i], true
		}
	}
	return Entry{}, false
}
