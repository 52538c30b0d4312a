package timeline

import (
	"fmt"
	"math"
)

// Phase — именованный отрезок анимации со своими правилами отрисовки.
type Phase int

const (
	PhaseLetterBankFadeIn Phase = iota
	PhaseMicroBreath
	PhaseAutoSolve
	PhaseTransition
	PhaseQuoteReveal
	PhaseLoopReset
)

func (p Phase) String() string {
	switch p {
	case PhaseLetterBankFadeIn:
		return "letter_bank_fade_in"
	case PhaseMicroBreath:
		return "micro_breath"
	case PhaseAutoSolve:
		return "auto_solve"
	case PhaseTransition:
		return "transition"
	case PhaseQuoteReveal:
		return "quote_reveal"
	case PhaseLoopReset:
		return "loop_reset"
	}
	return "unknown"
}

// Timeline — именованные длительности фаз в секундах.
//
// Границы фаз считаются по схеме анимации самой игры: отрезок
// MicroBreath заканчивается на АБСОЛЮТНОЙ отметке MicroBreath, а
// LetterBankFadeIn — подокно внутри него и в общую длительность не
// входит. Раскладка финала завязана на количество кадров, поэтому эта
// асимметрия сохраняется как есть.
type Timeline struct {
	LetterBankFadeIn   float64 `yaml:"letter_bank_fade_in"`
	MicroBreath        float64 `yaml:"micro_breath"`
	SolveWindow        float64 `yaml:"solve_window"`
	TransitionDuration float64 `yaml:"transition"`
	QuoteReveal        float64 `yaml:"quote_reveal"`
	LoopReset          float64 `yaml:"loop_reset"`
}

func Default() Timeline {
	return Timeline{
		LetterBankFadeIn:   0.35,
		MicroBreath:        0.55,
		SolveWindow:        3.2,
		TransitionDuration: 0.40,
		QuoteReveal:        2.60,
		LoopReset:          0.40,
	}
}

func (t Timeline) Validate() error {
	fields := map[string]float64{
		"letter_bank_fade_in": t.LetterBankFadeIn,
		"micro_breath":        t.MicroBreath,
		"solve_window":        t.SolveWindow,
		"transition":          t.TransitionDuration,
		"quote_reveal":        t.QuoteReveal,
		"loop_reset":          t.LoopReset,
	}
	for name, d := range fields {
		if d <= 0 {
			return fmt.Errorf("длительность %s должна быть > 0, получено %f", name, d)
		}
	}
	return nil
}

// TotalDuration не включает LetterBankFadeIn (см. комментарий к Timeline).
func (t Timeline) TotalDuration() float64 {
	return t.MicroBreath + t.SolveWindow + t.TransitionDuration + t.QuoteReveal + t.LoopReset
}

// TotalFrames — количество кадров прогона при заданном FPS.
func (t Timeline) TotalFrames(fps int) int {
	return int(math.Floor(t.TotalDuration() * float64(fps)))
}

// PhaseAt отображает прошедшее время в фазу. Интервалы полуоткрытые;
// если LetterBankFadeIn >= MicroBreath, отрезок MicroBreath пуст и
// цепочка сравнений пропускает его сама, без спецобработки.
func (t Timeline) PhaseAt(elapsed float64) Phase {
	switch {
	case elapsed < t.LetterBankFadeIn:
		return PhaseLetterBankFadeIn
	case elapsed < t.MicroBreath:
		return PhaseMicroBreath
	case elapsed < t.MicroBreath+t.SolveWindow:
		return PhaseAutoSolve
	case elapsed < t.MicroBreath+t.SolveWindow+t.TransitionDuration:
		return PhaseTransition
	case elapsed < t.MicroBreath+t.SolveWindow+t.TransitionDuration+t.QuoteReveal:
		return PhaseQuoteReveal
	}
	return PhaseLoopReset
}

// PhaseStart возвращает абсолютное начало фазы.
func (t Timeline) PhaseStart(p Phase) float64 {
	switch p {
	case PhaseLetterBankFadeIn:
		return 0
	case PhaseMicroBreath:
		return t.LetterBankFadeIn
	case PhaseAutoSolve:
		return t.MicroBreath
	case PhaseTransition:
		return t.MicroBreath + t.SolveWindow
	case PhaseQuoteReveal:
		return t.MicroBreath + t.SolveWindow + t.TransitionDuration
	}
	return t.MicroBreath + t.SolveWindow + t.TransitionDuration + t.QuoteReveal
}

func (t Timeline) phaseDuration(p Phase) float64 {
	switch p {
	case PhaseLetterBankFadeIn:
		return t.LetterBankFadeIn
	case PhaseMicroBreath:
		return t.MicroBreath - t.LetterBankFadeIn
	case PhaseAutoSolve:
		return t.SolveWindow
	case PhaseTransition:
		return t.TransitionDuration
	case PhaseQuoteReveal:
		return t.QuoteReveal
	}
	return t.LoopReset
}

// Progress — доля пройденного внутри фазы, в [0, 1].
func (t Timeline) Progress(elapsed float64, p Phase) float64 {
	dur := t.phaseDuration(p)
	if dur <= 0 {
		return 1
	}
	return Clamp((elapsed-t.PhaseStart(p))/dur, 0, 1)
}

// LetterDelay — задержка между буквами в секундах:
// clamp(solveWindow/n, 0.040, 0.120).
func (t Timeline) LetterDelay(letterCount int) float64 {
	if letterCount <= 0 {
		return 0
	}
	return Clamp(t.SolveWindow/float64(letterCount), 0.040, 0.120)
}

// LettersPlaced — сколько букв уже стоит на своих местах спустя
// relative секунд от начала AutoSolve.
func (t Timeline) LettersPlaced(relative float64, letterCount int) int {
	delay := t.LetterDelay(letterCount)
	if delay <= 0 || relative <= 0 {
		return 0
	}
	placed := int(math.Floor(relative / delay))
	if placed > letterCount {
		return letterCount
	}
	return placed
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp — линейная интерполяция между a и b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
