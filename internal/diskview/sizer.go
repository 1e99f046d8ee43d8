package diskview

import (
	"os"
	"path/filepath"
	"strings"
)

// Sizer computes recursive directory sizes with an in-memory cache keyed
// by path, so re-entering a directory does not re-walk subtrees already
// measured. Symbolic links are skipped entirely to keep the walk acyclic.
type Sizer struct {
	cache map[string]int64
}

func NewSizer() *Sizer {
	return &Sizer{cache: make(map[string]int64)}
}

func (s *Sizer) DirSize(path string) int64 {
	if cached, ok := s.cache[path]; ok {
		return cached
	}
	var total int64
	entries, err := os.ReadDir(path)
	if err != nil {
		// Unreadable directories count as empty; the walk goes on.
		s.cache[path] = 0
		return 0
	}
	for _, entry := range entries {
		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		child := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			total += s.DirSize(child)
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	s.cache[path] = total
	return total
}

// Invalidate drops cached sizes for path and everything beneath it.
func (s *Sizer) Invalidate(path string) {
	prefix := path + string(filepath.Separator)
	for key := range s.cache {
		if key == path || strings.HasPrefix(key, prefix) {
			delete(s.cache, key)
		}
	}
}
