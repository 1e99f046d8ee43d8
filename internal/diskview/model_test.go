package diskview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shea/internal/domain"
	"shea/internal/services"
)

func TestLoadEntriesSortsBySizeDescending(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "small"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "big"), []byte(strings.Repeat("b", 100)), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "inner"), []byte(strings.Repeat("c", 500)), 0o644); err != nil {
		t.Fatal(err)
	}

	msg := loadEntries(&services.MockDisk{}, NewSizer(), dir)
	if msg.err != nil {
		t.Fatalf("loadEntries returned error: %v", msg.err)
	}

	if msg.entries[0].name != ".." {
		t.Fatalf("expected parent entry first, got %q", msg.entries[0].name)
	}
	names := make([]string, 0, len(msg.entries)-1)
	for _, item := range msg.entries[1:] {
		names = append(names, item.name)
	}
	want := []string{"sub", "big", "small"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("unexpected order %v, want %v", names, want)
		}
	}
}

func TestLoadEntriesMissingDir(t *testing.T) {
	msg := loadEntries(&services.MockDisk{}, NewSizer(), filepath.Join(t.TempDir(), "gone"))
	if msg.err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestSortEntriesBySizeStable(t *testing.T) {
	entries := []entry{
		{name: "first", size: 10},
		{name: "second", size: 10},
		{name: "third", size: 20},
	}
	sortEntriesBySize(entries)
	if entries[0].name != "third" {
		t.Fatalf("largest entry should come first, got %q", entries[0].name)
	}
	if entries[1].name != "first" || entries[2].name != "second" {
		t.Errorf("tied entries reordered: %q then %q", entries[1].name, entries[2].name)
	}
}

func TestRenderPartitions(t *testing.T) {
	out := RenderPartitions([]domain.PartitionUsage{
		{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4", Total: 100 << 30, Used: 95 << 30, UsedPercent: 95.0},
		{Device: "/dev/sdb1", Mountpoint: "/data", Fstype: "xfs", Total: 1 << 40, Used: 1 << 30, UsedPercent: 0.1},
	})
	for _, want := range []string{"/dev/sda1", "/dev/sdb1", "/data", "95.0%", "Device", "Mount Point"} {
		if !strings.Contains(out, want) {
			t.Errorf("partition table missing %q:\n%s", want, out)
		}
	}
}
