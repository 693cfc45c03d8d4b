package generator

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// MemFS is an in-memory FS for tests. Directories are implied by MkdirAll
// and tracked only so tests can assert on them.
type MemFS struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool
	// FailWrites makes every WriteFile return this error.
	FailWrites error
}

func NewMemFS() *MemFS {
	return &MemFS{files: map[string][]byte{}, dirs: map[string]bool{}}
}

func (m *MemFS) Exists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	_, isFile := m.files[path]
	return isFile || m.dirs[path], nil
}

func (m *MemFS) MkdirAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		m.dirs[p] = true
		if filepath.Dir(p) == p {
			return nil
		}
	}
}

func (m *MemFS) WriteFile(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	path = filepath.Clean(path)
	if _, ok := m.files[path]; ok {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrExist}
	}
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// Put stores a file directly, bypassing the exclusive-create check.
func (m *MemFS) Put(path, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = []byte(content)
}

// Files lists stored file paths in sorted order.
func (m *MemFS) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func CreateTestWorkspace(dir string) error {
	return os.WriteFile(filepath.Join(dir, WorkspaceMarker), []byte(`{"name": "test-app"}`), 0644)
}

func CreateTestFile(dir, filename, content string) error {
	path := filepath.Join(dir, filename)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
