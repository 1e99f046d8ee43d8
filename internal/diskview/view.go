package diskview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shea/internal/domain"
)

const (
	iconDir  = "📁"
	iconFile = "📄"
	iconDisk = "💾"
	iconUp   = "⬆"

	barWidth = 30
)

type uiStyles struct {
	headerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
	cursorStyle lipgloss.Style
	barRed      lipgloss.Style
	barYellow   lipgloss.Style
	barCyan     lipgloss.Style
	barGreen    lipgloss.Style
}

func defaultStyles() uiStyles {
	return uiStyles{
		headerStyle: lipgloss.NewStyle().Bold(true),
		mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		barRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		barYellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		barCyan:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		barGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func (m Model) View() string {
	styles := defaultStyles()
	lines := []string{
		styles.headerStyle.Render(fmt.Sprintf("%s %s", iconDisk, m.path)),
	}

	if m.usageOK {
		percent := m.usage.UsedPercent
		lines = append(lines, fmt.Sprintf("Disk %5.1f%%  %s  %s / %s",
			percent,
			usageBar(percent, styles, barWidth),
			formatBytes(m.usage.Used), formatBytes(m.usage.Total)))
	} else {
		lines = append(lines, styles.mutedStyle.Render("Disk usage: n/a"))
	}
	lines = append(lines, "")

	visible := m.visibleEntries()
	for index, item := range visible {
		icon := iconFile
		switch {
		case item.isUp:
			icon = iconUp
		case item.isDir:
			icon = iconDir
		}
		size := "<DIR>"
		if !item.isUp {
			size = formatBytes(uint64(item.size))
		}
		line := fmt.Sprintf("%9s  %s %s", size, icon, item.name)
		if index == m.cursor {
			line = styles.cursorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	if len(m.entries) == 0 && !m.loading {
		lines = append(lines, styles.mutedStyle.Render("(empty)"))
	}

	lines = append(lines, "", styles.mutedStyle.Render(m.status))
	lines = append(lines, styles.mutedStyle.Render("↑/↓ move  enter open  backspace up  r refresh  q quit"))
	return strings.Join(lines, "\n")
}

// visibleEntries trims the list to the rows the terminal can show; the
// header and footer take five lines.
func (m Model) visibleEntries() []entry {
	if m.height <= 0 {
		return m.entries
	}
	available := m.height - 5
	if available < 1 || available >= len(m.entries) {
		return m.entries
	}
	return m.entries[:available]
}

// RenderPartitions formats the partition table shown when no path was
// given: device, usage percent, used/total, bar and mountpoint per line.
func RenderPartitions(parts []domain.PartitionUsage) string {
	styles := defaultStyles()
	rule := strings.Repeat("=", 100)
	lines := []string{
		fmt.Sprintf("%s Disk Usage", iconDisk),
		rule,
		fmt.Sprintf("%-20s %-8s %-24s %-*s %s", "Device", "Usage", "Used / Total", barWidth, "Bar", "Mount Point"),
		strings.Repeat("-", 100),
	}
	for _, part := range parts {
		usedTotal := fmt.Sprintf("%s / %s", formatBytes(part.Used), formatBytes(part.Total))
		percent := barStyle(part.UsedPercent, styles).Render(fmt.Sprintf("%6.1f%%", part.UsedPercent))
		lines = append(lines, fmt.Sprintf("%-20s %s %-24s %s %s",
			part.Device, percent, usedTotal,
			usageBar(part.UsedPercent, styles, barWidth), part.Mountpoint))
	}
	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}

func sortEntriesBySize(entries []entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].size > entries[j].size
	})
}

func usageBar(percent float64, styles uiStyles, width int) string {
	return barStyle(percent, styles).Render(bar(percent, width))
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

func formatBytes(value uint64) string {
	const unit = 1024.0
	size := float64(value)
	for _, suffix := range []string{"B", "KB", "MB", "GB", "TB"} {
		if size < unit {
			return fmt.Sprintf("%.1f%s", size, suffix)
		}
		size /= unit
	}
	return fmt.Sprintf("%.1fPB", size)
}
