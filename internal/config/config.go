package config

import "time"

// ListConfig holds the lister's options. Depth applies to tree mode only;
// a negative depth means unlimited.
type ListConfig struct {
	Path       string
	Tree       bool
	ShowHidden bool
	Depth      int
}

func DefaultList() ListConfig {
	return ListConfig{Path: ".", Depth: -1}
}

// TopConfig holds the process monitor's cadence and table size.
type TopConfig struct {
	Tick    time.Duration
	TopRows int
}

func DefaultTop() TopConfig {
	return TopConfig{Tick: time.Second, TopRows: 50}
}

// DiskConfig holds the disk explorer's start path; empty means print the
// partition table instead of entering the explorer.
type DiskConfig struct {
	Path string
}

func DefaultDisk() DiskConfig {
	return DiskConfig{}
}
