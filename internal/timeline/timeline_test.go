package timeline

import (
	"math"
	"testing"
)

func TestPhaseBoundaries(t *testing.T) {
	tl := Default()

	tests := []struct {
		elapsed  float64
		expected Phase
	}{
		{0.0, PhaseLetterBankFadeIn},
		{0.349, PhaseLetterBankFadeIn},
		{0.35, PhaseMicroBreath},
		{0.549, PhaseMicroBreath},
		{0.55, PhaseAutoSolve},
		// Суммированные границы проверяются с отступом от точки
		// склейки: сравнивать доли секунд на равенство бессмысленно.
		{3.74, PhaseAutoSolve},
		{3.76, PhaseTransition},
		{4.14, PhaseTransition},
		{4.16, PhaseQuoteReveal},
		{6.74, PhaseQuoteReveal},
		{6.76, PhaseLoopReset},
		{100.0, PhaseLoopReset},
	}

	for _, tt := range tests {
		if got := tl.PhaseAt(tt.elapsed); got != tt.expected {
			t.Errorf("PhaseAt(%.3f) = %s, expected %s", tt.elapsed, got, tt.expected)
		}
	}
}

// Фазы покрывают ось времени без дыр и пересечений: при движении
// вперед номер фазы не убывает.
func TestPhasesMonotonicContiguous(t *testing.T) {
	tl := Default()
	total := tl.TotalDuration()

	prev := tl.PhaseAt(0)
	for elapsed := 0.0; elapsed < total; elapsed += 0.001 {
		p := tl.PhaseAt(elapsed)
		if p < prev {
			t.Fatalf("at %.3f phase went backwards: %s after %s", elapsed, p, prev)
		}
		prev = p
	}
	if prev != PhaseLoopReset {
		t.Errorf("final phase = %s, expected loop_reset", prev)
	}
}

// Если letter_bank_fade_in >= micro_breath, отрезок MicroBreath пуст и
// цепочка сравнений пропускает его сама.
func TestMicroBreathCollapses(t *testing.T) {
	tl := Default()
	tl.LetterBankFadeIn = tl.MicroBreath + 0.1

	for elapsed := 0.0; elapsed < tl.TotalDuration(); elapsed += 0.001 {
		if tl.PhaseAt(elapsed) == PhaseMicroBreath {
			t.Fatalf("MicroBreath observed at %.3f despite collapsed interval", elapsed)
		}
	}
}

func TestProgressClamped(t *testing.T) {
	tl := Default()

	if p := tl.Progress(-1.0, PhaseLetterBankFadeIn); p != 0 {
		t.Errorf("Progress before phase = %f, expected 0", p)
	}
	if p := tl.Progress(100.0, PhaseLetterBankFadeIn); p != 1 {
		t.Errorf("Progress after phase = %f, expected 1", p)
	}

	// Середина AutoSolve: (2.15-0.55)/3.2 = 0.5
	if p := tl.Progress(2.15, PhaseAutoSolve); math.Abs(p-0.5) > 1e-9 {
		t.Errorf("Progress mid-solve = %f, expected 0.5", p)
	}
}

func TestLetterDelay(t *testing.T) {
	tl := Default() // solve_window = 3.2s

	tests := []struct {
		letters  int
		expected float64
	}{
		{1, 0.120},            // clamp(3.2, ...) -> верхняя граница
		{80, 0.040},           // clamp(0.04, ...) -> нижняя граница
		{27, 3.2 / 27.0},      // ~0.1185, без клампа
		{16, 0.120},           // 0.2 -> верхняя граница
	}

	for _, tt := range tests {
		if got := tl.LetterDelay(tt.letters); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("LetterDelay(%d) = %f, expected %f", tt.letters, got, tt.expected)
		}
	}

	// Невозрастающая по числу букв.
	prev := tl.LetterDelay(1)
	for n := 2; n <= 120; n++ {
		d := tl.LetterDelay(n)
		if d > prev+1e-12 {
			t.Fatalf("LetterDelay(%d)=%f > LetterDelay(%d)=%f", n, d, n-1, prev)
		}
		prev = d
	}
}

// Сценарий из ТЗ: "Most people didnt" — 16 букв, задержка 120 мс,
// через 0.6s решения стоит 5 букв.
func TestLettersPlacedScenario(t *testing.T) {
	tl := Default()

	if got := tl.LettersPlaced(0.6, 16); got != 5 {
		t.Errorf("LettersPlaced(0.6, 16) = %d, expected 5", got)
	}
	if got := tl.LettersPlaced(0, 16); got != 0 {
		t.Errorf("LettersPlaced(0, 16) = %d, expected 0", got)
	}
	if got := tl.LettersPlaced(100, 16); got != 16 {
		t.Errorf("LettersPlaced(100, 16) = %d, expected 16 (clamped)", got)
	}
}

// letter_bank_fade_in в общую длительность не входит:
// 0.55+3.2+0.40+2.60+0.40 = 7.15s, при 30 FPS — 214 кадров.
func TestTotalDuration(t *testing.T) {
	tl := Default()

	if d := tl.TotalDuration(); math.Abs(d-7.15) > 1e-9 {
		t.Errorf("TotalDuration = %f, expected 7.15", d)
	}
	if frames := tl.TotalFrames(30); frames != 214 {
		t.Errorf("TotalFrames(30) = %d, expected 214", frames)
	}
}

func TestValidate(t *testing.T) {
	tl := Default()
	if err := tl.Validate(); err != nil {
		t.Errorf("default timeline invalid: %v", err)
	}

	tl.SolveWindow = 0
	if err := tl.Validate(); err == nil {
		t.Error("expected error for zero solve_window")
	}
}
