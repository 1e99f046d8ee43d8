package services

import (
	"context"

	"shea/internal/domain"
)

type SystemCollector interface {
	Snapshot(ctx context.Context) (domain.SystemSnapshot, error)
}

type ProcessCollector interface {
	Processes(ctx context.Context) ([]domain.ProcessRecord, error)
}

type DiskCollector interface {
	Partitions(ctx context.Context) ([]domain.PartitionUsage, error)
	Usage(ctx context.Context, path string) (domain.PartitionUsage, error)
}
