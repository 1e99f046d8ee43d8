package services

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"

	"shea/internal/domain"
)

type GopsutilDisk struct{}

func NewDiskCollector() *GopsutilDisk {
	return &GopsutilDisk{}
}

// Partitions lists physical partitions with their usage. Partitions whose
// mountpoint cannot be statted are skipped rather than failing the listing.
func (c *GopsutilDisk) Partitions(ctx context.Context) ([]domain.PartitionUsage, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("query partitions: %w", err)
	}
	usages := make([]domain.PartitionUsage, 0, len(parts))
	for _, part := range parts {
		stat, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			continue
		}
		usages = append(usages, domain.PartitionUsage{
			Device:      part.Device,
			Mountpoint:  part.Mountpoint,
			Fstype:      part.Fstype,
			Total:       stat.Total,
			Used:        stat.Used,
			UsedPercent: stat.UsedPercent,
		})
	}
	return usages, nil
}

// Usage reports the usage of the partition holding path.
func (c *GopsutilDisk) Usage(ctx context.Context, path string) (domain.PartitionUsage, error) {
	stat, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return domain.PartitionUsage{}, fmt.Errorf("query usage of %s: %w", path, err)
	}
	return domain.PartitionUsage{
		Mountpoint:  stat.Path,
		Fstype:      stat.Fstype,
		Total:       stat.Total,
		Used:        stat.Used,
		UsedPercent: stat.UsedPercent,
	}, nil
}
