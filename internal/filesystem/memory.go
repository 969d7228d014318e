package filesystem

import (
	"io/fs"
	"sync"
)

// Memory is an in-memory FileSystem for tests. It records every write.
type Memory struct {
	mu     sync.Mutex
	files  map[string]string
	writes []string

	// ReadErr and WriteErr, when set, are returned by every read or write
	ReadErr  error
	WriteErr error
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() *Memory {
	return &Memory{files: map[string]string{}}
}

// Exists reports whether path has been written or seeded
func (m *Memory) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok
}

// ReadFile returns the stored contents of path
func (m *Memory) ReadFile(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	contents, ok := m.files[path]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return contents, nil
}

// WriteFile stores contents under path
func (m *Memory) WriteFile(path, contents string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.files[path] = contents
	m.writes = append(m.writes, path)
	return nil
}

// Seed stores contents under path without counting it as a write
func (m *Memory) Seed(path, contents string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = contents
}

// Writes returns the paths written so far, in order
func (m *Memory) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}
