package utils

import (
	"os"
	"sync"
	"time"
)

// fileStamp identifies one version of a file on disk
type fileStamp struct {
	modTime time.Time
	size    int64
}

func stampOf(path string) (fileStamp, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}, false
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size()}, true
}

func (s fileStamp) matches(other fileStamp) bool {
	return s.size == other.size && s.modTime.Equal(other.modTime)
}

type stampedValue[V any] struct {
	value V
	stamp fileStamp
}

// FileCache memoizes values derived from files, keyed by path. An entry is
// reused until the file's size or modification time changes.
type FileCache[V any] struct {
	mu      sync.Mutex
	entries map[string]stampedValue[V]
}

func NewFileCache[V any]() *FileCache[V] {
	return &FileCache[V]{entries: make(map[string]stampedValue[V])}
}

// Load returns the value cached for path, calling load when there is no
// entry or the file changed since it was stored. Load errors are not cached.
func (c *FileCache[V]) Load(path string, load func(string) (V, error)) (V, error) {
	stamp, statOK := stampOf(path)

	c.mu.Lock()
	entry, hit := c.entries[path]
	if hit && statOK && entry.stamp.matches(stamp) {
		c.mu.Unlock()
		return entry.value, nil
	}
	delete(c.entries, path)
	c.mu.Unlock()

	value, err := load(path)
	if err != nil {
		var zero V
		return zero, err
	}

	// Unstattable files are served but never cached.
	if statOK {
		c.mu.Lock()
		c.entries[path] = stampedValue[V]{value: value, stamp: stamp}
		c.mu.Unlock()
	}
	return value, nil
}

func (c *FileCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
