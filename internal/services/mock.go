package services

import (
	"context"

	"shea/internal/domain"
)

type MockSystem struct {
	Snap  domain.SystemSnapshot
	Err   error
	Calls int
}

func (m *MockSystem) Snapshot(ctx context.Context) (domain.SystemSnapshot, error) {
	m.Calls++
	if m.Err != nil {
		return domain.SystemSnapshot{}, m.Err
	}
	return m.Snap, nil
}

type MockProcesses struct {
	Records []domain.ProcessRecord
	Err     error
	Calls   int
}

func (m *MockProcesses) Processes(ctx context.Context) ([]domain.ProcessRecord, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	records := make([]domain.ProcessRecord, len(m.Records))
	copy(records, m.Records)
	return records, nil
}

type MockDisk struct {
	Parts    []domain.PartitionUsage
	PathStat domain.PartitionUsage
	Err      error
}

func (m *MockDisk) Partitions(ctx context.Context) ([]domain.PartitionUsage, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	parts := make([]domain.PartitionUsage, len(m.Parts))
	copy(parts, m.Parts)
	return parts, nil
}

func (m *MockDisk) Usage(ctx context.Context, path string) (domain.PartitionUsage, error) {
	if m.Err != nil {
		return domain.PartitionUsage{}, m.Err
	}
	return m.PathStat, nil
}
