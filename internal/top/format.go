package top

import (
	"fmt"
	"time"
)

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

func formatDuration(value time.Duration) string {
	seconds := int(value.Seconds())
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm%ds", seconds/60, seconds%60)
	default:
		return fmt.Sprintf("%dh%dm", seconds/3600, (seconds%3600)/60)
	}
}
