package quotes

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeLibrary(t *testing.T) string {
	t.Helper()
	data := `[
		{"id": 1, "text": "First quote.", "author": "A"},
		{"id": 2, "text": "Second quote!", "author": "B"},
		{"id": 3, "text": "Third quote?", "author": "C", "source": "book"}
	]`
	path := filepath.Join(t.TempDir(), "quotes.json")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLibrary(t *testing.T) {
	lib, err := LoadLibrary(writeLibrary(t))
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	if lib.Count() != 3 {
		t.Errorf("Count = %d, expected 3", lib.Count())
	}
}

func TestLoadLibraryErrors(t *testing.T) {
	if _, err := LoadLibrary(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	os.WriteFile(empty, []byte("[]"), 0644)
	if _, err := LoadLibrary(empty); err == nil {
		t.Error("expected error for empty library")
	}
}

func TestDailySelection(t *testing.T) {
	lib, err := LoadLibrary(writeLibrary(t))
	if err != nil {
		t.Fatal(err)
	}

	// День эпохи — первая цитата, дальше по кругу.
	day0 := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.Local)
	if q := lib.Daily(day0); q.ID != 1 || q.Author != "A" {
		t.Errorf("Daily(epoch) = #%d %s, expected #1 A", q.ID, q.Author)
	}
	day4 := day0.AddDate(0, 0, 4) // 4 % 3 = 1 -> вторая цитата
	if q := lib.Daily(day4); q.ID != 2 || q.Author != "B" {
		t.Errorf("Daily(epoch+4d) = #%d %s, expected #2 B", q.ID, q.Author)
	}

	// До эпохи — превью: последняя цитата с нулевым номером.
	before := day0.AddDate(0, 0, -10)
	if q := lib.Daily(before); q.ID != 0 || q.Author != "C" {
		t.Errorf("Daily(before epoch) = #%d %s, expected #0 C", q.ID, q.Author)
	}
}

func TestYesterday(t *testing.T) {
	lib, err := LoadLibrary(writeLibrary(t))
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, time.January, 3, 9, 30, 0, 0, time.Local)
	q := lib.Yesterday(now)
	want := lib.Daily(now.AddDate(0, 0, -1))
	if q.ID != want.ID {
		t.Errorf("Yesterday = #%d, expected #%d", q.ID, want.ID)
	}
}

func TestByID(t *testing.T) {
	lib, err := LoadLibrary(writeLibrary(t))
	if err != nil {
		t.Fatal(err)
	}

	q, err := lib.ByID(2)
	if err != nil || q.Author != "B" {
		t.Errorf("ByID(2) = %+v, %v", q, err)
	}
	if _, err := lib.ByID(99); err == nil {
		t.Error("expected error for unknown id")
	}
}
