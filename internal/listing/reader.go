package listing

import (
	"os"
	"sort"
	"strings"

	"shea/internal/domain"
)

// DirReader decouples the renderers from the filesystem so traversal
// failures can be exercised without real permission setups.
type DirReader interface {
	Stat(path string) (domain.DirEntry, error)
	ReadDir(path string) ([]domain.DirEntry, error)
}

type osReader struct{}

func NewOSReader() DirReader {
	return osReader{}
}

func (osReader) Stat(path string) (domain.DirEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.DirEntry{}, err
	}
	return domain.DirEntry{Name: info.Name(), IsDir: info.IsDir()}, nil
}

// ReadDir returns the immediate entries of a directory. Entry types come
// from the directory read itself, so symbolic links are never followed and
// a link to a directory lists as a plain file.
func (osReader) ReadDir(path string) ([]domain.DirEntry, error) {
	raw, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.DirEntry, 0, len(raw))
	for _, entry := range raw {
		entries = append(entries, domain.DirEntry{
			Name:  entry.Name(),
			IsDir: entry.IsDir() && entry.Type()&os.ModeSymlink == 0,
		})
	}
	return entries, nil
}

// SortEntries orders entries directories-first, each group
// case-insensitively by name. The sort is stable, so names equal under
// folding keep the byte order the directory read produced.
func SortEntries(entries []domain.DirEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".")
}
