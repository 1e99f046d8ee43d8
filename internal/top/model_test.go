package top

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shea/internal/config"
	"shea/internal/domain"
	"shea/internal/services"
)

func testSnapshot() domain.SystemSnapshot {
	return domain.SystemSnapshot{
		PerCoreLoad:  []float64{12.5, 80.0},
		MemUsed:      4 << 30,
		MemTotal:     16 << 30,
		SwapTotal:    2 << 30,
		Uptime:       3 * time.Hour,
		ProcessCount: 3,
		Taken:        time.Now(),
	}
}

func testRecords() []domain.ProcessRecord {
	return []domain.ProcessRecord{
		{PID: 1, Command: "init", CPUPercent: 0.1, MemPercent: 0.5, Elapsed: 3 * time.Hour},
		{PID: 200, Command: "worker", CPUPercent: 45.0, MemPercent: 2.0, Elapsed: time.Minute},
		{PID: 77, Command: "db", CPUPercent: 12.0, MemPercent: 9.0, Elapsed: time.Hour},
	}
}

func testModel() (Model, *services.MockSystem, *services.MockProcesses) {
	system := &services.MockSystem{Snap: testSnapshot()}
	processes := &services.MockProcesses{Records: testRecords()}
	cfg := config.TopConfig{Tick: time.Second, TopRows: 50}
	return NewModel(system, processes, cfg).Primed(), system, processes
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPrimedRendersFirstFrame(t *testing.T) {
	model, _, _ := testModel()
	if model.stale {
		t.Fatal("primed model should not start stale")
	}
	if len(model.rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(model.rows))
	}
	// Default sort is CPU descending.
	if model.rows[0].PID != 200 {
		t.Errorf("expected highest-CPU row first, got pid %d", model.rows[0].PID)
	}
}

func TestFailedRefreshKeepsPriorData(t *testing.T) {
	model, _, processes := testModel()

	// Second tick fails; the first tick's data must stay visible and the
	// session must schedule another tick rather than quitting.
	processes.Err = errors.New("proc table unavailable")
	next, cmd := model.Update(tickMsg{seq: model.seq})
	model = next.(Model)
	if cmd == nil {
		t.Fatal("tick should trigger a refresh command")
	}
	next, cmd = model.Update(cmd())
	model = next.(Model)

	if !model.stale {
		t.Error("failed refresh should mark the display stale")
	}
	if len(model.rows) != 3 || model.rows[0].PID != 200 {
		t.Errorf("prior rows were lost: %+v", model.rows)
	}
	if cmd == nil {
		t.Error("failed refresh should still schedule the next tick")
	}

	// Recovery on the next tick clears the flag.
	processes.Err = nil
	next, cmd = model.Update(tickMsg{seq: model.seq})
	model = next.(Model)
	next, _ = model.Update(cmd())
	model = next.(Model)
	if model.stale {
		t.Error("successful refresh should clear the stale flag")
	}
}

func TestQuitKey(t *testing.T) {
	model, _, _ := testModel()
	_, cmd := model.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("quit key should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit key should quit the program")
	}
}

func TestForcedRefreshSupersedesPendingTick(t *testing.T) {
	model, _, processes := testModel()
	staleSeq := model.seq

	next, cmd := model.Update(keyPress('r'))
	model = next.(Model)
	if cmd == nil {
		t.Fatal("forced refresh should produce a command")
	}
	callsBefore := processes.Calls
	next, _ = model.Update(cmd())
	model = next.(Model)
	if processes.Calls != callsBefore+1 {
		t.Errorf("forced refresh should re-query, calls %d -> %d", callsBefore, processes.Calls)
	}

	// The tick scheduled before the forced refresh is now superseded.
	_, cmd = model.Update(tickMsg{seq: staleSeq})
	if cmd != nil {
		t.Error("superseded tick should be ignored")
	}
}

func TestSortSelectionDoesNotRequery(t *testing.T) {
	model, system, processes := testModel()
	systemCalls, processCalls := system.Calls, processes.Calls

	next, _ := model.Update(keyPress('m'))
	model = next.(Model)
	if model.sort.Column != domain.SortByMem || model.sort.Direction != domain.Descending {
		t.Fatalf("unexpected sort state: %+v", model.sort)
	}
	if model.rows[0].PID != 77 {
		t.Errorf("expected highest-memory row first, got pid %d", model.rows[0].PID)
	}
	if system.Calls != systemCalls || processes.Calls != processCalls {
		t.Error("sort selection must reuse the last fetched data")
	}
}

func TestPIDColumnToggles(t *testing.T) {
	model, _, _ := testModel()

	next, _ := model.Update(keyPress('p'))
	model = next.(Model)
	if model.rows[0].PID != 1 {
		t.Fatalf("pid sort should start ascending, got first pid %d", model.rows[0].PID)
	}

	next, _ = model.Update(keyPress('p'))
	model = next.(Model)
	if model.rows[0].PID != 200 {
		t.Fatalf("reselecting pid should flip to descending, got first pid %d", model.rows[0].PID)
	}
}

func TestMouseHeaderClickSelectsColumn(t *testing.T) {
	model, _, _ := testModel()

	next, _ := model.Update(tea.MouseMsg{X: 0, Y: model.headerLine(), Type: tea.MouseLeft})
	model = next.(Model)
	if model.sort.Column != domain.SortByPID {
		t.Fatalf("click on first column should select PID, got %s", model.sort.Column)
	}

	// A click off the header row changes nothing.
	next, _ = model.Update(tea.MouseMsg{X: 0, Y: model.headerLine() + 2, Type: tea.MouseLeft})
	model = next.(Model)
	if model.sort.Column != domain.SortByPID {
		t.Errorf("click outside the header should not change the sort, got %s", model.sort.Column)
	}
}

func TestCursorClampsToRows(t *testing.T) {
	model, _, _ := testModel()
	for i := 0; i < 10; i++ {
		next, _ := model.Update(keyPress('j'))
		model = next.(Model)
	}
	if model.cursor != len(model.rows)-1 {
		t.Fatalf("cursor should clamp to last row, got %d", model.cursor)
	}
	for i := 0; i < 10; i++ {
		next, _ := model.Update(keyPress('k'))
		model = next.(Model)
	}
	if model.cursor != 0 {
		t.Fatalf("cursor should clamp to first row, got %d", model.cursor)
	}
}

func TestTopRowsTruncation(t *testing.T) {
	records := make([]domain.ProcessRecord, 60)
	for i := range records {
		records[i] = domain.ProcessRecord{PID: int32(i + 1), CPUPercent: float64(i)}
	}
	system := &services.MockSystem{Snap: testSnapshot()}
	processes := &services.MockProcesses{Records: records}
	model := NewModel(system, processes, config.TopConfig{Tick: time.Second, TopRows: 50}).Primed()

	if len(model.rows) != 50 {
		t.Fatalf("expected top 50 rows, got %d", len(model.rows))
	}
	for i := 1; i < len(model.rows); i++ {
		if model.rows[i-1].CPUPercent < model.rows[i].CPUPercent {
			t.Fatalf("rows not descending by cpu at %d", i)
		}
	}
}

func TestColumnAt(t *testing.T) {
	cases := []struct {
		x      int
		column domain.SortColumn
	}{
		{0, domain.SortByPID},
		{7, domain.SortByPID},
		{9, domain.SortByCPU},
		{17, domain.SortByMem},
		{26, domain.SortByTime},
		{40, domain.SortByCommand},
	}
	for _, tc := range cases {
		column, ok := columnAt(tc.x)
		if !ok || column != tc.column {
			t.Errorf("columnAt(%d) = %s, want %s", tc.x, column, tc.column)
		}
	}
	if _, ok := columnAt(-1); ok {
		t.Error("negative x should not map to a column")
	}
}
