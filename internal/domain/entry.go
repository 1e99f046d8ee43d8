package domain

// DirEntry is a single name inside a directory, read once per listing
// and discarded after output.
type DirEntry struct {
	Name  string
	IsDir bool
}
