package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"shea/internal/domain"
)

// GopsutilSystem reads machine-wide counters. Per-core load is a delta
// since the previous Snapshot call, so the constructor primes the counters
// once to make the first real reading meaningful.
type GopsutilSystem struct{}

func NewSystemCollector() *GopsutilSystem {
	_, _ = cpu.Percent(0, true)
	return &GopsutilSystem{}
}

func (c *GopsutilSystem) Snapshot(ctx context.Context) (domain.SystemSnapshot, error) {
	snap := domain.SystemSnapshot{Taken: time.Now()}

	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return snap, fmt.Errorf("query per-core load: %w", err)
	}
	snap.PerCoreLoad = perCore

	virtual, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return snap, fmt.Errorf("query memory: %w", err)
	}
	snap.MemUsed = virtual.Used
	snap.MemTotal = virtual.Total

	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return snap, fmt.Errorf("query swap: %w", err)
	}
	snap.SwapUsed = swap.Used
	snap.SwapTotal = swap.Total

	bootSeconds, err := host.BootTimeWithContext(ctx)
	if err != nil {
		return snap, fmt.Errorf("query boot time: %w", err)
	}
	snap.Uptime = time.Since(time.Unix(int64(bootSeconds), 0))

	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return snap, fmt.Errorf("query pids: %w", err)
	}
	snap.ProcessCount = len(pids)

	return snap, nil
}
