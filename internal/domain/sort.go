package domain

import (
	"sort"
	"strings"
)

type SortColumn string

const (
	SortByCPU     SortColumn = "cpu"
	SortByMem     SortColumn = "mem"
	SortByTime    SortColumn = "time"
	SortByPID     SortColumn = "pid"
	SortByCommand SortColumn = "command"
)

// ValuePinned reports whether the column always sorts descending.
func (c SortColumn) ValuePinned() bool {
	switch c {
	case SortByCPU, SortByMem, SortByTime:
		return true
	default:
		return false
	}
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

func (d SortDirection) flip() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortState is the active sort column and direction of the process table.
// CPU, MEM and TIME stay pinned to descending; PID and COMMAND toggle on
// reselection and reset to ascending when newly selected.
type SortState struct {
	Column    SortColumn
	Direction SortDirection
}

func DefaultSortState() SortState {
	return SortState{Column: SortByCPU, Direction: Descending}
}

// Select applies a column selection to the state.
func (s *SortState) Select(column SortColumn) {
	if column.ValuePinned() {
		s.Column = column
		s.Direction = Descending
		return
	}
	if s.Column == column {
		s.Direction = s.Direction.flip()
		return
	}
	s.Column = column
	s.Direction = Ascending
}

// Apply stable-sorts records by the active column and direction. Ties keep
// their incoming relative order, so equal rows do not jitter across ticks.
func (s SortState) Apply(records []ProcessRecord) {
	less := s.lessFunc()
	if s.Direction == Descending {
		inner := less
		less = func(a, b ProcessRecord) bool { return inner(b, a) }
	}
	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j])
	})
}

func (s SortState) lessFunc() func(a, b ProcessRecord) bool {
	switch s.Column {
	case SortByMem:
		return func(a, b ProcessRecord) bool { return a.MemPercent < b.MemPercent }
	case SortByTime:
		return func(a, b ProcessRecord) bool { return a.Elapsed < b.Elapsed }
	case SortByPID:
		return func(a, b ProcessRecord) bool { return a.PID < b.PID }
	case SortByCommand:
		return func(a, b ProcessRecord) bool {
			return strings.ToLower(a.Command) < strings.ToLower(b.Command)
		}
	default:
		return func(a, b ProcessRecord) bool { return a.CPUPercent < b.CPUPercent }
	}
}
