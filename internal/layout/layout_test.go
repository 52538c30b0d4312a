package layout

import (
	"image"
	"math/rand"
	"strings"
	"testing"
)

func TestRowWidth(t *testing.T) {
	// N*(60+12)-12 из макета.
	if w := RowWidth(5, SlotSize, SlotGap); w != 5*(60+12)-12 {
		t.Errorf("RowWidth(5) = %d, expected %d", w, 5*(60+12)-12)
	}
	if w := RowWidth(0, SlotSize, SlotGap); w != 0 {
		t.Errorf("RowWidth(0) = %d, expected 0", w)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	answers := []string{
		"Most people didnt",
		"a",
		"aaabbbccc",
		"время не ждет",
	}

	for _, answer := range answers {
		var letters []rune
		for _, r := range answer {
			if r != ' ' {
				letters = append(letters, r)
			}
		}

		rng := rand.New(rand.NewSource(42))
		shuffled := ShuffleLetters(letters, rng)

		if len(shuffled) != len(letters) {
			t.Fatalf("%q: length %d, expected %d", answer, len(shuffled), len(letters))
		}

		count := map[rune]int{}
		for _, r := range letters {
			count[r]++
		}
		for _, r := range shuffled {
			count[r]--
		}
		for r, c := range count {
			if c != 0 {
				t.Errorf("%q: multiset mismatch for %q (%+d)", answer, r, c)
			}
		}
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	letters := []rune("mostpeopledidnt")
	a := ShuffleLetters(letters, rand.New(rand.NewSource(7)))
	b := ShuffleLetters(letters, rand.New(rand.NewSource(7)))
	if string(a) != string(b) {
		t.Errorf("same seed gave different orders: %q vs %q", string(a), string(b))
	}
}

// Повторный перенос уже перенесенного текста не меняет границ строк.
func TestWrapIdempotent(t *testing.T) {
	measure := func(s string) int { return len(s) * 10 }
	text := "the quick brown fox jumps over the lazy dog near the river bank"

	lines := Wrap(text, 200, measure)
	if len(lines) < 2 {
		t.Fatalf("expected multi-line wrap, got %d lines", len(lines))
	}

	rejoined := strings.Join(lines, " ")
	again := Wrap(rejoined, 200, measure)

	if len(again) != len(lines) {
		t.Fatalf("line count changed: %d -> %d", len(lines), len(again))
	}
	for i := range lines {
		if lines[i] != again[i] {
			t.Errorf("line %d changed: %q -> %q", i, lines[i], again[i])
		}
	}
}

func TestWrapLongWord(t *testing.T) {
	measure := func(s string) int { return len(s) * 10 }
	lines := Wrap("hi internationalization", 100, measure)
	// Слово шире maxWidth занимает свою строку целиком.
	if len(lines) != 2 || lines[1] != "internationalization" {
		t.Errorf("unexpected wrap: %v", lines)
	}
}

func TestWrapLetters(t *testing.T) {
	rows := WrapLetters("most people didnt", 12)
	// most+people = 10 букв в первом ряду, didnt не влезает.
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %v", len(rows), rows)
	}
	if string(rows[0]) != "mostpeople" {
		t.Errorf("row 0 = %q, expected %q", string(rows[0]), "mostpeople")
	}
	if string(rows[1]) != "didnt" {
		t.Errorf("row 1 = %q, expected %q", string(rows[1]), "didnt")
	}

	total := 0
	for _, row := range rows {
		total += len(row)
	}
	if total != 15 {
		t.Errorf("letters across rows = %d, expected 15", total)
	}
}

func TestSlotGridCentered(t *testing.T) {
	center := image.Point{X: 540, Y: 760}
	cells := SlotGrid("abc", center, 900, SlotSize, SlotGap)

	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}

	width := RowWidth(3, SlotSize, SlotGap)
	if cells[0].Rect.Min.X != center.X-width/2 {
		t.Errorf("row left = %d, expected %d", cells[0].Rect.Min.X, center.X-width/2)
	}
	if cells[2].Rect.Max.X != cells[0].Rect.Min.X+width {
		t.Errorf("row right = %d, expected %d", cells[2].Rect.Max.X, cells[0].Rect.Min.X+width)
	}

	for i, cell := range cells {
		if cell.Index != i {
			t.Errorf("cell %d has index %d", i, cell.Index)
		}
	}
}

func TestBankGridAnchor(t *testing.T) {
	letters := []rune("abcdefgh")
	cells := BankGrid(letters, 1080, 1920, 900, TileSize, TileGap)

	if len(cells) != len(letters) {
		t.Fatalf("expected %d tiles, got %d", len(letters), len(cells))
	}

	expectedTop := int(1920 * BankAnchor)
	if cells[0].Rect.Min.Y != expectedTop {
		t.Errorf("bank top = %d, expected %d", cells[0].Rect.Min.Y, expectedTop)
	}
}
