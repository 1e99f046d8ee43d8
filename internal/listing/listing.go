package listing

import (
	"fmt"
	"io"
	"path/filepath"

	"shea/internal/domain"
)

const (
	iconDir  = "📁"
	iconFile = "📄"
	iconWarn = "⚠"

	connectorTee    = "├── "
	connectorCorner = "└── "
	prefixBar       = "│   "
	prefixBlank     = "    "
)

// Options controls which entries a Lister shows.
type Options struct {
	ShowHidden bool
}

// Lister renders flat and tree listings of a directory.
type Lister struct {
	reader DirReader
	opts   Options
}

func NewLister(reader DirReader, opts Options) *Lister {
	return &Lister{reader: reader, opts: opts}
}

// Flat prints the immediate entries of path, directories first, one line
// per entry. A file target prints as a single file line.
func (l *Lister) Flat(w io.Writer, path string) error {
	target, err := l.reader.Stat(path)
	if err != nil {
		return pathErrorFrom(path, err)
	}
	if !target.IsDir {
		fmt.Fprintf(w, "%s %s\n", iconFile, target.Name)
		return nil
	}
	entries, err := l.entries(path)
	if err != nil {
		return pathErrorFrom(path, err)
	}
	for _, entry := range entries {
		fmt.Fprintf(w, "%s %s\n", entryIcon(entry), entry.Name)
	}
	return nil
}

// Tree prints path and its descendants with box-drawing connectors.
// maxDepth bounds recursion: 0 prints only the root line, negative means
// unlimited. Unreadable subtrees render a single inline warning leaf and
// do not stop their siblings.
func (l *Lister) Tree(w io.Writer, path string, maxDepth int) error {
	target, err := l.reader.Stat(path)
	if err != nil {
		return pathErrorFrom(path, err)
	}
	if !target.IsDir {
		fmt.Fprintf(w, "%s %s\n", iconFile, target.Name)
		return nil
	}
	fmt.Fprintln(w, rootLabel(path))
	if maxDepth == 0 {
		return nil
	}
	depthLeft := maxDepth - 1
	if maxDepth < 0 {
		depthLeft = -1
	}
	l.walk(w, path, nil, depthLeft)
	return nil
}

// walk renders one directory level. trail carries, per ancestor level,
// whether that ancestor was the last sibling, which determines its prefix
// segment on every descendant line.
func (l *Lister) walk(w io.Writer, dir string, trail []bool, depthLeft int) {
	prefix := prefixFor(trail)
	entries, err := l.entries(dir)
	if err != nil {
		fmt.Fprintf(w, "%s%s%s %s\n", prefix, connectorCorner, iconWarn, reasonFor(err))
		return
	}
	for index, entry := range entries {
		last := index == len(entries)-1
		connector := connectorTee
		if last {
			connector = connectorCorner
		}
		fmt.Fprintf(w, "%s%s%s %s\n", prefix, connector, entryIcon(entry), entry.Name)
		if entry.IsDir && depthLeft != 0 {
			next := depthLeft - 1
			if depthLeft < 0 {
				next = -1
			}
			l.walk(w, filepath.Join(dir, entry.Name), append(trail, last), next)
		}
	}
}

func (l *Lister) entries(path string) ([]domain.DirEntry, error) {
	raw, err := l.reader.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.DirEntry, 0, len(raw))
	for _, entry := range raw {
		if !l.opts.ShowHidden && isHiddenName(entry.Name) {
			continue
		}
		entries = append(entries, entry)
	}
	SortEntries(entries)
	return entries, nil
}

func prefixFor(trail []bool) string {
	var prefix string
	for _, last := range trail {
		if last {
			prefix += prefixBlank
		} else {
			prefix += prefixBar
		}
	}
	return prefix
}

func entryIcon(entry domain.DirEntry) string {
	if entry.IsDir {
		return iconDir
	}
	return iconFile
}

func rootLabel(path string) string {
	label := filepath.Base(filepath.Clean(path))
	if label == "" {
		return "."
	}
	return label
}
