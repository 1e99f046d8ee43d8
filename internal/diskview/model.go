package diskview

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shea/internal/domain"
	"shea/internal/services"
)

type entry struct {
	name  string
	path  string
	isDir bool
	isUp  bool
	size  int64
}

type entriesMsg struct {
	path    string
	entries []entry
	usage   domain.PartitionUsage
	usageOK bool
	err     error
}

// Model is the interactive size explorer: one directory at a time, entries
// sorted largest-first, enter descends and backspace climbs.
type Model struct {
	disk  services.DiskCollector
	sizer *Sizer
	keys  KeyMap

	path    string
	entries []entry
	usage   domain.PartitionUsage
	usageOK bool
	cursor  int
	width   int
	height  int
	loading bool
	status  string
}

func NewModel(disk services.DiskCollector, sizer *Sizer, startPath string) Model {
	return Model{
		disk:    disk,
		sizer:   sizer,
		keys:    DefaultKeyMap(),
		path:    startPath,
		loading: true,
		status:  "Scanning...",
		width:   100,
		height:  30,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd(m.path)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case entriesMsg:
		m.loading = false
		if typed.err != nil {
			m.status = fmt.Sprintf("List error: %v", typed.err)
			return m, nil
		}
		m.path = typed.path
		m.entries = typed.entries
		m.usage = typed.usage
		m.usageOK = typed.usageOK
		m.cursor = 0
		m.status = fmt.Sprintf("%d entries", len(typed.entries))
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if m.cursor >= len(m.entries) {
			return m, nil
		}
		selected := m.entries[m.cursor]
		if !selected.isDir {
			m.status = fmt.Sprintf("File: %s (%s)", selected.name, formatBytes(uint64(selected.size)))
			return m, nil
		}
		m.loading = true
		m.status = "Scanning..."
		return m, m.loadCmd(selected.path)
	case key.Matches(msg, m.keys.Back):
		parent := filepath.Dir(m.path)
		if parent == m.path {
			m.status = "Already at root"
			return m, nil
		}
		m.loading = true
		m.status = "Scanning..."
		return m, m.loadCmd(parent)
	case key.Matches(msg, m.keys.Refresh):
		m.sizer.Invalidate(m.path)
		m.loading = true
		m.status = "Rescanning..."
		return m, m.loadCmd(m.path)
	default:
		return m, nil
	}
}

func (m Model) loadCmd(path string) tea.Cmd {
	disk := m.disk
	sizer := m.sizer
	return func() tea.Msg {
		return loadEntries(disk, sizer, path)
	}
}

func loadEntries(disk services.DiskCollector, sizer *Sizer, path string) entriesMsg {
	msg := entriesMsg{path: path}

	raw, err := os.ReadDir(path)
	if err != nil {
		msg.err = err
		return msg
	}

	if usage, err := disk.Usage(context.Background(), path); err == nil {
		msg.usage = usage
		msg.usageOK = true
	}

	entries := make([]entry, 0, len(raw)+1)
	for _, item := range raw {
		if item.Type()&os.ModeSymlink != 0 {
			continue
		}
		child := entry{
			name:  item.Name(),
			path:  filepath.Join(path, item.Name()),
			isDir: item.IsDir(),
		}
		if child.isDir {
			child.size = sizer.DirSize(child.path)
		} else if info, err := item.Info(); err == nil {
			child.size = info.Size()
		}
		entries = append(entries, child)
	}
	sortEntriesBySize(entries)

	if parent := filepath.Dir(path); parent != path {
		entries = append([]entry{{name: "..", path: parent, isDir: true, isUp: true}}, entries...)
	}
	msg.entries = entries
	return msg
}
