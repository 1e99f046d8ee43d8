package top

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shea/internal/config"
	"shea/internal/domain"
	"shea/internal/services"
)

// Model is the monitor session. Bubbletea serializes Update calls, so the
// sort state and the cursor need no locking; the snapshot query runs in a
// command and lands back here as a refreshMsg.
type Model struct {
	system    services.SystemCollector
	processes services.ProcessCollector
	keys      KeyMap
	cfg       config.TopConfig

	seq     int
	snap    domain.SystemSnapshot
	records []domain.ProcessRecord
	rows    []domain.ProcessRecord
	sort    domain.SortState
	cursor  int
	width   int
	height  int
	stale   bool
}

func NewModel(system services.SystemCollector, processes services.ProcessCollector, cfg config.TopConfig) Model {
	return Model{
		system:    system,
		processes: processes,
		keys:      DefaultKeyMap(),
		cfg:       cfg,
		sort:      domain.DefaultSortState(),
		width:     100,
		height:    30,
	}
}

// Primed fetches the first snapshot synchronously so the first frame is
// never empty. A failed first fetch just starts the session stale.
func (m Model) Primed() Model {
	m.apply(m.fetch(m.seq))
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.MouseMsg:
		return m.handleMouse(typed)
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case tickMsg:
		if typed.seq != m.seq {
			return m, nil
		}
		return m, m.refreshCmd()
	case refreshMsg:
		if typed.seq != m.seq {
			return m, nil
		}
		m.apply(typed)
		return m, m.tickCmd()
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		m.seq++
		return m, m.refreshCmd()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.SortCPU):
		m.selectColumn(domain.SortByCPU)
		return m, nil
	case key.Matches(msg, m.keys.SortMem):
		m.selectColumn(domain.SortByMem)
		return m, nil
	case key.Matches(msg, m.keys.SortTime):
		m.selectColumn(domain.SortByTime)
		return m, nil
	case key.Matches(msg, m.keys.SortPID):
		m.selectColumn(domain.SortByPID)
		return m, nil
	case key.Matches(msg, m.keys.SortCommand):
		m.selectColumn(domain.SortByCommand)
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.MouseLeft {
		return m, nil
	}
	if msg.Y != m.headerLine() {
		return m, nil
	}
	if column, ok := columnAt(msg.X); ok {
		m.selectColumn(column)
	}
	return m, nil
}

// selectColumn re-sorts the last fetched list; it never re-queries.
func (m *Model) selectColumn(column domain.SortColumn) {
	m.sort.Select(column)
	m.resort()
}

func (m *Model) apply(msg refreshMsg) {
	if msg.err != nil {
		m.stale = true
		return
	}
	m.snap = msg.snap
	m.records = msg.records
	m.stale = false
	m.resort()
}

func (m *Model) resort() {
	rows := make([]domain.ProcessRecord, len(m.records))
	copy(rows, m.records)
	m.sort.Apply(rows)
	if len(rows) > m.cfg.TopRows {
		rows = rows[:m.cfg.TopRows]
	}
	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) tickCmd() tea.Cmd {
	seq := m.seq
	return tea.Tick(m.cfg.Tick, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

func (m Model) refreshCmd() tea.Cmd {
	seq := m.seq
	return func() tea.Msg {
		return m.fetch(seq)
	}
}

func (m Model) fetch(seq int) refreshMsg {
	ctx := context.Background()
	snap, err := m.system.Snapshot(ctx)
	if err != nil {
		return refreshMsg{seq: seq, err: err}
	}
	records, err := m.processes.Processes(ctx)
	if err != nil {
		return refreshMsg{seq: seq, err: err}
	}
	return refreshMsg{seq: seq, snap: snap, records: records}
}

// headerLine is the screen row of the column header, which is where a
// click changes the sort: title, one bar per core, average, RAM, swap,
// info line and a blank line sit above it.
func (m Model) headerLine() int {
	return len(m.snap.PerCoreLoad) + 6
}
