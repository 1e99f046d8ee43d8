package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"shea/internal/domain"
)

const maxCommandRunes = 60

// GopsutilProcesses builds the per-process table. Handles are kept across
// calls because CPU percentages are deltas against the previous reading of
// the same handle; vanished PIDs are dropped on the next call.
type GopsutilProcesses struct {
	handles map[int32]*process.Process
}

func NewProcessCollector() *GopsutilProcesses {
	return &GopsutilProcesses{handles: make(map[int32]*process.Process)}
}

func (c *GopsutilProcesses) Processes(ctx context.Context) ([]domain.ProcessRecord, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pids: %w", err)
	}

	now := time.Now()
	seen := make(map[int32]bool, len(pids))
	records := make([]domain.ProcessRecord, 0, len(pids))
	for _, pid := range pids {
		seen[pid] = true
		handle, ok := c.handles[pid]
		if !ok {
			handle, err = process.NewProcessWithContext(ctx, pid)
			if err != nil {
				continue
			}
			c.handles[pid] = handle
		}
		record, err := c.gather(ctx, handle, now)
		if err != nil {
			// Processes exit between the pid scan and the reads;
			// skipping them is the normal case, not a failure.
			continue
		}
		records = append(records, record)
	}

	for pid := range c.handles {
		if !seen[pid] {
			delete(c.handles, pid)
		}
	}
	return records, nil
}

func (c *GopsutilProcesses) gather(ctx context.Context, handle *process.Process, now time.Time) (domain.ProcessRecord, error) {
	record := domain.ProcessRecord{PID: handle.Pid}

	cpuPercent, err := handle.CPUPercentWithContext(ctx)
	if err != nil {
		return record, err
	}
	record.CPUPercent = cpuPercent

	memPercent, err := handle.MemoryPercentWithContext(ctx)
	if err != nil {
		return record, err
	}
	record.MemPercent = float64(memPercent)

	createMillis, err := handle.CreateTimeWithContext(ctx)
	if err != nil {
		return record, err
	}
	record.Elapsed = now.Sub(time.UnixMilli(createMillis))

	command, err := handle.CmdlineWithContext(ctx)
	if err != nil || command == "" {
		command, err = handle.NameWithContext(ctx)
		if err != nil {
			return record, err
		}
	}
	record.Command = TruncateCommand(command, maxCommandRunes)

	return record, nil
}

// TruncateCommand caps a command line at limit runes, marking the cut with
// an ellipsis.
func TruncateCommand(command string, limit int) string {
	runes := []rune(command)
	if limit <= 3 || len(runes) <= limit {
		return command
	}
	return string(runes[:limit-3]) + "..."
}
