package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const (
	testPuzzle   = "306200000000603000090080403078005000020000050000400870504070090000301000000002105"
	testSolution = "356294718847613529192587463978165234421738956635429871514876392289351647763942185"
)

func TestFSSaveLoad(t *testing.T) {
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS() error = %v", err)
	}
	ctx := context.Background()

	record := &Record{
		Puzzle:     testPuzzle,
		Solution:   testSolution,
		Depth:      55,
		DurationMs: 3,
	}
	if err := fs.Save(ctx, record); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if record.ID == "" {
		t.Fatal("Save() left ID empty")
	}
	if record.CreatedAt.IsZero() {
		t.Fatal("Save() left CreatedAt zero")
	}

	got, err := fs.Load(ctx, record.ID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ID != record.ID || got.Puzzle != record.Puzzle || got.Solution != record.Solution ||
		got.Depth != record.Depth || got.DurationMs != record.DurationMs {
		t.Errorf("Load() = %+v, want %+v", got, record)
	}
	if !got.CreatedAt.Equal(record.CreatedAt) {
		t.Errorf("Load().CreatedAt = %v, want %v", got.CreatedAt, record.CreatedAt)
	}
}

func TestFSLoadUnknown(t *testing.T) {
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS() error = %v", err)
	}
	tests := []struct {
		name string
		id   string
	}{
		{name: "missing", id: "1b4e28ba-2fa1-11d2-883f-0016d3cca427"},
		{name: "empty", id: ""},
		{name: "path escape", id: filepath.Join("..", "escape")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := fs.Load(context.Background(), tt.id); !errors.Is(err, ErrNotFound) {
				t.Errorf("Load() error = %v, want %v", err, ErrNotFound)
			}
		})
	}
}

func TestFSList(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS() error = %v", err)
	}
	ctx := context.Background()

	base := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	ids := make([]string, 3)
	for i := range ids {
		r := &Record{
			Puzzle:    testPuzzle,
			Solution:  testSolution,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := fs.Save(ctx, r); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		ids[i] = r.ID
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("records live here"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "archive"), 0o755); err != nil {
		t.Fatal(err)
	}

	records, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(List()) = %v, want 3", len(records))
	}
	for i, want := range []string{ids[2], ids[1], ids[0]} {
		if records[i].ID != want {
			t.Errorf("List()[%d].ID = %v, want %v", i, records[i].ID, want)
		}
	}
}

func TestFSListCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := fs.List(context.Background()); err == nil {
		t.Error("List() error = nil, want error")
	}
}
