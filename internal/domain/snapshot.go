package domain

import "time"

// SystemSnapshot is one reading of the machine-wide counters. It is
// replaced wholesale on every refresh; no history is kept.
type SystemSnapshot struct {
	PerCoreLoad  []float64
	MemUsed      uint64
	MemTotal     uint64
	SwapUsed     uint64
	SwapTotal    uint64
	Uptime       time.Duration
	ProcessCount int
	Taken        time.Time
}

// AverageLoad returns the mean of the per-core percentages.
func (s SystemSnapshot) AverageLoad() float64 {
	if len(s.PerCoreLoad) == 0 {
		return 0
	}
	var total float64
	for _, load := range s.PerCoreLoad {
		total += load
	}
	return total / float64(len(s.PerCoreLoad))
}

// MemPercent returns used memory as a percentage of total.
func (s SystemSnapshot) MemPercent() float64 {
	return percentOf(s.MemUsed, s.MemTotal)
}

// SwapPercent returns used swap as a percentage of total.
func (s SystemSnapshot) SwapPercent() float64 {
	return percentOf(s.SwapUsed, s.SwapTotal)
}

func percentOf(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// ProcessRecord is one row of the process table.
type ProcessRecord struct {
	PID        int32
	Command    string
	CPUPercent float64
	MemPercent float64
	Elapsed    time.Duration
}

// PartitionUsage describes one mounted partition.
type PartitionUsage struct {
	Device      string
	Mountpoint  string
	Fstype      string
	Total       uint64
	Used        uint64
	UsedPercent float64
}
