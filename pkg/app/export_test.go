package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func exportFixture(t *testing.T) *Service {
	t.Helper()
	s := newTestService(t, emptyBoard())
	if _, err := s.CreateList("Work"); err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, text := range []string{"Write report", "Send invoice"} {
		if err := s.AddItem(text); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := s.ToggleItem(0); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	return s
}

func TestSnapshotFormat(t *testing.T) {
	s := exportFixture(t)
	now := time.Date(2025, 9, 1, 10, 30, 0, 0, time.Local)
	out := s.Snapshot(now)

	banner := strings.Repeat("=", 50)
	for _, want := range []string{
		banner,
		"TASKMASTER PRO EXPORT",
		"Export Date: 2025-09-01 10:30",
		"📋 WORK",
		"Progress: 1/2 tasks (50.0%)",
		"Created: ",
		strings.Repeat("-", 40),
		"1. [✓] Write report",
		"Completed: ",
		"2. [⭕] Send invoice",
		"Total Lists: 1",
		"Total Tasks: 2",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("snapshot missing %q:\n%s", want, out)
		}
	}

	// Only the completed item carries a completion line.
	if strings.Count(out, "Completed: ") != 1 {
		t.Fatalf("expected exactly one completion line:\n%s", out)
	}
}

func TestSnapshotEmptyBoard(t *testing.T) {
	s := newTestService(t, emptyBoard())
	out := s.Snapshot(time.Now())
	if !strings.Contains(out, "Total Lists: 0") || !strings.Contains(out, "Total Tasks: 0") {
		t.Fatalf("empty board totals wrong:\n%s", out)
	}
}

func TestExportWritesAndOverwrites(t *testing.T) {
	s := exportFixture(t)
	path := filepath.Join(t.TempDir(), "taskmaster_export.txt")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("prime file: %v", err)
	}

	if err := s.Export(path, time.Now()); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if strings.Contains(string(data), "stale") {
		t.Fatalf("export did not overwrite")
	}
	if !strings.Contains(string(data), "TASKMASTER PRO EXPORT") {
		t.Fatalf("export content missing header")
	}

	// Export is read-only: no write-through happened.
	mp := s.Persistence.(*memoryPersistence)
	saves := mp.saves
	if err := s.Export(path, time.Now()); err != nil {
		t.Fatalf("export again: %v", err)
	}
	if mp.saves != saves {
		t.Fatalf("export persisted the board")
	}
}

func TestExportFailureSurfaces(t *testing.T) {
	s := exportFixture(t)
	err := s.Export(filepath.Join(t.TempDir(), "missing", "export.txt"), time.Now())
	if err == nil {
		t.Fatalf("expected an error for an unwritable path")
	}
}
