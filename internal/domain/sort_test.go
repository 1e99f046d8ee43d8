package domain

import (
	"testing"
	"time"
)

func sampleRecords() []ProcessRecord {
	return []ProcessRecord{
		{PID: 10, Command: "bash", CPUPercent: 5.0, MemPercent: 1.0, Elapsed: time.Hour},
		{PID: 3, Command: "Init", CPUPercent: 0.1, MemPercent: 0.2, Elapsed: 48 * time.Hour},
		{PID: 77, Command: "postgres", CPUPercent: 22.5, MemPercent: 8.0, Elapsed: time.Minute},
		{PID: 41, Command: "nginx", CPUPercent: 5.0, MemPercent: 2.5, Elapsed: 30 * time.Minute},
	}
}

func TestSelectPinnedColumnsStayDescending(t *testing.T) {
	state := DefaultSortState()
	for _, column := range []SortColumn{SortByCPU, SortByMem, SortByTime} {
		for i := 0; i < 3; i++ {
			state.Select(column)
			if state.Column != column {
				t.Fatalf("expected column %s, got %s", column, state.Column)
			}
			if state.Direction != Descending {
				t.Errorf("column %s: expected descending after %d selections, got %s", column, i+1, state.Direction)
			}
		}
	}
}

func TestSelectToggleColumns(t *testing.T) {
	state := DefaultSortState()

	state.Select(SortByPID)
	if state.Direction != Ascending {
		t.Fatalf("new toggle column should start ascending, got %s", state.Direction)
	}
	state.Select(SortByPID)
	if state.Direction != Descending {
		t.Fatalf("reselecting should flip to descending, got %s", state.Direction)
	}
	state.Select(SortByPID)
	if state.Direction != Ascending {
		t.Fatalf("reselecting again should flip back to ascending, got %s", state.Direction)
	}

	// Switching to another toggle column resets to ascending.
	state.Select(SortByPID)
	state.Select(SortByCommand)
	if state.Column != SortByCommand || state.Direction != Ascending {
		t.Fatalf("switching column should reset to ascending, got %s/%s", state.Column, state.Direction)
	}
}

func TestApplyCPUDescending(t *testing.T) {
	records := sampleRecords()
	state := SortState{Column: SortByCPU, Direction: Descending}
	state.Apply(records)
	for i := 1; i < len(records); i++ {
		if records[i-1].CPUPercent < records[i].CPUPercent {
			t.Fatalf("row %d (%.1f) should not come after row %d (%.1f)",
				i, records[i].CPUPercent, i-1, records[i-1].CPUPercent)
		}
	}
}

func TestApplyPIDAscending(t *testing.T) {
	records := sampleRecords()
	state := SortState{Column: SortByPID, Direction: Ascending}
	state.Apply(records)
	want := []int32{3, 10, 41, 77}
	for i, pid := range want {
		if records[i].PID != pid {
			t.Errorf("position %d: want pid %d, got %d", i, pid, records[i].PID)
		}
	}
}

func TestApplyCommandCaseInsensitive(t *testing.T) {
	records := sampleRecords()
	state := SortState{Column: SortByCommand, Direction: Ascending}
	state.Apply(records)
	if records[0].Command != "bash" || records[1].Command != "Init" {
		t.Fatalf("expected bash before Init under case folding, got %q then %q",
			records[0].Command, records[1].Command)
	}
}

func TestApplyStableOnTies(t *testing.T) {
	records := sampleRecords()
	state := SortState{Column: SortByCPU, Direction: Descending}
	state.Apply(records)

	// PIDs 10 and 41 tie on CPU; input order must survive.
	var tied []int32
	for _, record := range records {
		if record.CPUPercent == 5.0 {
			tied = append(tied, record.PID)
		}
	}
	if len(tied) != 2 || tied[0] != 10 || tied[1] != 41 {
		t.Fatalf("tied rows reordered: %v", tied)
	}

	// Re-applying the same state must not shuffle anything.
	before := make([]int32, len(records))
	for i, record := range records {
		before[i] = record.PID
	}
	state.Apply(records)
	for i, record := range records {
		if record.PID != before[i] {
			t.Fatalf("re-apply moved row %d: %d -> %d", i, before[i], record.PID)
		}
	}
}
