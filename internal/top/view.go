package top

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shea/internal/domain"
)

const (
	barWidth = 20

	colPIDWidth  = 7
	colCPUWidth  = 7
	colMemWidth  = 7
	colTimeWidth = 9
)

type uiStyles struct {
	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
	warnStyle   lipgloss.Style
	cursorStyle lipgloss.Style
	activeStyle lipgloss.Style
	barRed      lipgloss.Style
	barYellow   lipgloss.Style
	barCyan     lipgloss.Style
	barGreen    lipgloss.Style
}

func defaultStyles() uiStyles {
	return uiStyles{
		titleStyle:  lipgloss.NewStyle().Bold(true),
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		activeStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		barRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		barYellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		barCyan:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		barGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func (m Model) View() string {
	styles := defaultStyles()
	lines := make([]string, 0, m.headerLine()+len(m.rows)+2)

	status := styles.mutedStyle.Render("RUNNING")
	if m.stale {
		status = styles.warnStyle.Render("STALE")
	}
	lines = append(lines, padLine(styles.titleStyle.Render("shea top"), status, m.width))

	for index, load := range m.snap.PerCoreLoad {
		lines = append(lines, fmt.Sprintf("CPU%3d %s %5.1f%%", index, usageBar(load, styles), load))
	}
	average := m.snap.AverageLoad()
	lines = append(lines, fmt.Sprintf("  avg  %s %5.1f%%", usageBar(average, styles), average))

	memPercent := m.snap.MemPercent()
	lines = append(lines, fmt.Sprintf("RAM    %s %5.1f%%  %s / %s",
		usageBar(memPercent, styles), memPercent, formatBytes(m.snap.MemUsed), formatBytes(m.snap.MemTotal)))
	swapPercent := m.snap.SwapPercent()
	lines = append(lines, fmt.Sprintf("Swap   %s %5.1f%%  %s / %s",
		usageBar(swapPercent, styles), swapPercent, formatBytes(m.snap.SwapUsed), formatBytes(m.snap.SwapTotal)))

	lines = append(lines, styles.mutedStyle.Render(fmt.Sprintf("Uptime %s   Processes %d",
		formatDuration(m.snap.Uptime), m.snap.ProcessCount)))
	lines = append(lines, "")

	lines = append(lines, m.renderColumnHeader(styles))
	for index, row := range m.visibleRows() {
		line := fmt.Sprintf("%*d %*s %*s %*s  %s",
			colPIDWidth, row.PID,
			colCPUWidth, fmt.Sprintf("%.1f%%", row.CPUPercent),
			colMemWidth, fmt.Sprintf("%.1f%%", row.MemPercent),
			colTimeWidth, formatDuration(row.Elapsed),
			row.Command)
		if index == m.cursor {
			line = styles.cursorStyle.Render(line)
		}
		lines = append(lines, line)
	}

	footer := "↑/↓ move  c cpu  m mem  t time  p pid  n name  r refresh  q quit"
	lines = append(lines, styles.mutedStyle.Render(footer))
	return strings.Join(lines, "\n")
}

func (m Model) renderColumnHeader(styles uiStyles) string {
	cells := []string{
		fmt.Sprintf("%*s", colPIDWidth, m.headerCell(domain.SortByPID, "PID")),
		fmt.Sprintf("%*s", colCPUWidth, m.headerCell(domain.SortByCPU, "CPU%")),
		fmt.Sprintf("%*s", colMemWidth, m.headerCell(domain.SortByMem, "MEM%")),
		fmt.Sprintf("%*s", colTimeWidth, m.headerCell(domain.SortByTime, "TIME")),
		" " + m.headerCell(domain.SortByCommand, "COMMAND"),
	}
	for index, cell := range cells {
		if m.columnFor(index) == m.sort.Column {
			cells[index] = styles.activeStyle.Render(cell)
		} else {
			cells[index] = styles.headerStyle.Render(cell)
		}
	}
	return strings.Join(cells, " ")
}

func (m Model) headerCell(column domain.SortColumn, label string) string {
	if column != m.sort.Column {
		return label
	}
	if m.sort.Direction == domain.Ascending {
		return label + "↑"
	}
	return label + "↓"
}

func (m Model) columnFor(index int) domain.SortColumn {
	columns := []domain.SortColumn{
		domain.SortByPID, domain.SortByCPU, domain.SortByMem,
		domain.SortByTime, domain.SortByCommand,
	}
	return columns[index]
}

// visibleRows caps the table to the terminal height; the header block,
// column header and footer take headerLine()+2 lines.
func (m Model) visibleRows() []domain.ProcessRecord {
	if m.height <= 0 {
		return m.rows
	}
	available := m.height - m.headerLine() - 2
	if available < 1 || available >= len(m.rows) {
		return m.rows
	}
	return m.rows[:available]
}

// columnAt maps a click column to a sort column using the fixed widths of
// the header cells.
func columnAt(x int) (domain.SortColumn, bool) {
	boundaries := []struct {
		end    int
		column domain.SortColumn
	}{
		{colPIDWidth + 1, domain.SortByPID},
		{colPIDWidth + colCPUWidth + 2, domain.SortByCPU},
		{colPIDWidth + colCPUWidth + colMemWidth + 3, domain.SortByMem},
		{colPIDWidth + colCPUWidth + colMemWidth + colTimeWidth + 4, domain.SortByTime},
	}
	if x < 0 {
		return "", false
	}
	for _, boundary := range boundaries {
		if x < boundary.end {
			return boundary.column, true
		}
	}
	return domain.SortByCommand, true
}

func usageBar(percent float64, styles uiStyles) string {
	return barStyle(percent, styles).Render(bar(percent, barWidth))
}

func bar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func barStyle(percent float64, styles uiStyles) lipgloss.Style {
	switch {
	case percent >= 90:
		return styles.barRed
	case percent >= 70:
		return styles.barYellow
	case percent >= 50:
		return styles.barCyan
	default:
		return styles.barGreen
	}
}

func padLine(left, right string, width int) string {
	if width <= 0 {
		return left
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", space) + right
}
