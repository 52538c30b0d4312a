package timeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTimelineRoundTrip(t *testing.T) {
	tl := Default()
	tl.SolveWindow = 5.5

	path := filepath.Join(t.TempDir(), "timeline.yaml")
	if err := WriteTimeline(tl, path); err != nil {
		t.Fatalf("WriteTimeline: %v", err)
	}

	got, err := ReadTimeline(path)
	if err != nil {
		t.Fatalf("ReadTimeline: %v", err)
	}
	if got != tl {
		t.Errorf("round trip mismatch: got %+v, expected %+v", got, tl)
	}
}

// Частичный профиль наследует встроенные значения для остальных полей.
func TestReadPartialTimeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeline.yaml")
	if err := os.WriteFile(path, []byte("solve_window: 6.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadTimeline(path)
	if err != nil {
		t.Fatalf("ReadTimeline: %v", err)
	}
	if got.SolveWindow != 6.0 {
		t.Errorf("solve_window = %f, expected 6.0", got.SolveWindow)
	}
	if got.QuoteReveal != Default().QuoteReveal {
		t.Errorf("quote_reveal = %f, expected default %f", got.QuoteReveal, Default().QuoteReveal)
	}
}

func TestReadInvalidTimeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeline.yaml")
	if err := os.WriteFile(path, []byte("solve_window: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadTimeline(path); err == nil {
		t.Error("expected validation error for negative duration")
	}
}
