// Package kvstore provides the small persistent key/value area the user
// store serializes into: a handful of fixed keys mapping to text values.
package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Store is a flat text key/value area.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Memory is a volatile Store, used in tests and when no data file is
// configured.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// File is a Store backed by a single JSON file on disk, rewritten on every
// mutation. Values survive process restarts the way browser-local storage
// survives page loads.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFile opens (or lazily creates) the store at path.
func NewFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: read %s: %w", path, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &f.values); err != nil {
			return nil, fmt.Errorf("kvstore: decode %s: %w", path, err)
		}
	}
	return f, nil
}

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.flush()
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return f.flush()
}

func (f *File) flush() error {
	data, err := json.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("kvstore: encode: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("kvstore: write %s: %w", f.path, err)
	}
	return nil
}
