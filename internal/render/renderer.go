package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand"

	"github.com/ivlev/quote2reel/internal/config"
	"github.com/ivlev/quote2reel/internal/layout"
	"github.com/ivlev/quote2reel/internal/quotes"
	"github.com/ivlev/quote2reel/internal/timeline"
)

// Error — фатальная ошибка отрисовки; прогон прерывается без
// частичного результата.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("render %s: %v", e.Op, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// State — данные, зафиксированные один раз до цикла кадров и дальше
// только читаемые. Перестановка банка обязана быть общей для всех
// кадров прогона, иначе плитки будут дрожать от кадра к кадру.
type State struct {
	// Буквы ответа в порядке следования (без пробелов).
	Letters []rune
	// Те же буквы после тасовки — порядок плиток банка.
	Bank []rune
	// claimedAt[i] — на каком шаге решения исчезает плитка i.
	claimedAt []int
}

// NewState тасует банк переданным источником случайности и заранее
// считает, какая плитка уходит на каком шаге: при установке k-й буквы
// ответа из банка забирается первая свободная плитка с той же буквой.
func NewState(q quotes.Quote, rng *rand.Rand) *State {
	letters := q.Letters()
	bank := layout.ShuffleLetters(letters, rng)

	claimedAt := make([]int, len(bank))
	for i := range claimedAt {
		claimedAt[i] = -1
	}
	for step, letter := range letters {
		for i, tile := range bank {
			if claimedAt[i] == -1 && tile == letter {
				claimedAt[i] = step
				break
			}
		}
	}

	return &State{Letters: letters, Bank: bank, claimedAt: claimedAt}
}

// TileVisible сообщает, осталась ли плитка i в банке после того, как
// установлено placed букв.
func (s *State) TileVisible(i, placed int) bool {
	return s.claimedAt[i] < 0 || s.claimedAt[i] >= placed
}

// Renderer — чистый композитор кадра: (цитата, время) -> изображение.
// Face шрифтов не потокобезопасны, поэтому на каждый воркер создается
// свой экземпляр.
type Renderer struct {
	cfg   config.Config
	tl    timeline.Timeline
	fonts *FontSet

	// Масштаб дизайн-юнитов макета 1080x1920 к фактическому холсту.
	unit float64
}

func NewRenderer(cfg config.Config, tl timeline.Timeline) (*Renderer, error) {
	fonts, err := NewFontSet()
	if err != nil {
		return nil, &Error{Op: "fonts", Err: err}
	}
	return &Renderer{
		cfg:   cfg,
		tl:    tl,
		fonts: fonts,
		unit:  float64(cfg.Width) / 1080.0,
	}, nil
}

func (r *Renderer) px(v int) int {
	return int(math.Round(float64(v) * r.unit))
}

func (r *Renderer) safeWidth() int {
	return int(float64(r.cfg.Width) * r.cfg.SafeZone)
}

// gridCenter — опорная точка сетки: чуть выше геометрического центра,
// чтобы оставить место банку на отметке 75% высоты.
func (r *Renderer) gridCenter() image.Point {
	return image.Point{X: r.cfg.Width / 2, Y: int(float64(r.cfg.Height) * 0.40)}
}

// RenderFrame отрисовывает кадр на момент elapsed в dst. dst может
// приходить из пула; при nil или несовпадении размера выделяется новый
// холст. Диспетчеризация по фазам исчерпывающая.
func (r *Renderer) RenderFrame(q quotes.Quote, elapsed float64, state *State, dst *image.RGBA) (*image.RGBA, error) {
	bounds := image.Rect(0, 0, r.cfg.Width, r.cfg.Height)
	if dst == nil || dst.Bounds() != bounds {
		dst = image.NewRGBA(bounds)
	}
	draw.Draw(dst, bounds, image.NewUniform(r.cfg.Palette.Background), image.Point{}, draw.Src)

	base := Identity(image.Point{X: r.cfg.Width / 2, Y: r.cfg.Height / 2})
	phase := r.tl.PhaseAt(elapsed)
	progress := r.tl.Progress(elapsed, phase)
	letterCount := len(state.Letters)

	switch phase {
	case timeline.PhaseLetterBankFadeIn:
		r.drawGrid(dst, q, 0, base)
		bankOpacity := math.Min(1, elapsed/r.tl.LetterBankFadeIn)
		r.drawBank(dst, state, 0, base.Fade(bankOpacity))

	case timeline.PhaseMicroBreath:
		since := elapsed - r.tl.PhaseStart(timeline.PhaseMicroBreath)
		scale := 1 + 0.005*math.Sin(2*since)
		r.drawGrid(dst, q, 0, base.Zoom(scale))
		r.drawBank(dst, state, 0, base)

	case timeline.PhaseAutoSolve:
		since := elapsed - r.tl.PhaseStart(timeline.PhaseAutoSolve)
		placed := r.tl.LettersPlaced(since, letterCount)
		r.drawGrid(dst, q, placed, base)
		r.drawBank(dst, state, placed, base)

	case timeline.PhaseTransition:
		// Кросс-фейд: сетка уходит, цитата приходит одновременно.
		r.drawGrid(dst, q, letterCount, base.Fade(1-progress))
		if err := r.drawQuoteBlock(dst, q, base.Fade(progress)); err != nil {
			return nil, err
		}

	case timeline.PhaseQuoteReveal:
		if err := r.drawQuoteBlock(dst, q, base); err != nil {
			return nil, err
		}
		// Бренд живет в своем подокне 0.5s независимо от длины фазы.
		since := elapsed - r.tl.PhaseStart(timeline.PhaseQuoteReveal)
		brand := math.Min(1, since/0.5)
		r.drawBrand(dst, base.Fade(0.5*brand))

	case timeline.PhaseLoopReset:
		// Обратный кросс-фейд к пустой сетке: шов для бесшовного цикла.
		if err := r.drawQuoteBlock(dst, q, base.Fade(1-progress)); err != nil {
			return nil, err
		}
		r.drawGrid(dst, q, 0, base.Fade(progress))
	}

	return dst, nil
}

func (r *Renderer) drawGrid(dst *image.RGBA, q quotes.Quote, filledCount int, t Transform) {
	cells := layout.SlotGrid(q.Answer(), r.gridCenter(), r.safeWidth(),
		r.px(layout.SlotSize), r.px(layout.SlotGap))

	slot := r.px(layout.SlotSize)
	letterFace, err := r.fonts.face(fontBold, int(float64(slot)*0.72*t.Scale))
	if err != nil {
		letterFace = nil
	}

	pad := r.px(2)
	for _, cell := range cells {
		fillRect(dst, cell.Rect.Inset(-pad), r.cfg.Palette.StoneLight, t)
		fillRect(dst, cell.Rect, r.cfg.Palette.CellFill, t)
		if cell.Index < filledCount && letterFace != nil {
			center := cell.Rect.Min.Add(cell.Rect.Max).Div(2)
			drawTextCentered(dst, string(cell.Letter), center, letterFace, r.cfg.Palette.Ink, t)
		}
	}
}

func (r *Renderer) drawBank(dst *image.RGBA, state *State, placed int, t Transform) {
	cells := layout.BankGrid(state.Bank, r.cfg.Width, r.cfg.Height, r.safeWidth(),
		r.px(layout.TileSize), r.px(layout.TileGap))

	tile := r.px(layout.TileSize)
	face, err := r.fonts.face(fontBold, int(float64(tile)*0.72))
	if err != nil {
		face = nil
	}

	for _, cell := range cells {
		if !state.TileVisible(cell.Index, placed) {
			continue
		}
		fillRect(dst, cell.Rect, r.cfg.Palette.CellFill, t)
		strokeRect(dst, cell.Rect, r.px(2), r.cfg.Palette.StoneLight, t)
		if face != nil {
			center := cell.Rect.Min.Add(cell.Rect.Max).Div(2)
			drawTextCentered(dst, string(cell.Letter), center, face, r.cfg.Palette.Stone, t)
		}
	}
}

// drawQuoteBlock — перенесенная по пиксельной ширине цитата, блок
// центрируется по вертикали на центре холста, под ним строка автора.
func (r *Renderer) drawQuoteBlock(dst *image.RGBA, q quotes.Quote, t Transform) error {
	quoteFace, err := r.fonts.face(fontBold, r.px(64))
	if err != nil {
		return &Error{Op: "quote face", Err: err}
	}
	authorFace, err := r.fonts.face(fontItalic, r.px(40))
	if err != nil {
		return &Error{Op: "author face", Err: err}
	}

	lines := layout.Wrap(q.Text, r.safeWidth(), func(s string) int {
		return MeasureWidth(quoteFace, s)
	})
	if len(lines) == 0 {
		return &Error{Op: "quote wrap", Err: quotes.ErrInvalidQuote}
	}

	lineHeight := r.px(88)
	blockHeight := len(lines) * lineHeight
	top := r.cfg.Height/2 - blockHeight/2

	cx := r.cfg.Width / 2
	for i, line := range lines {
		center := image.Point{X: cx, Y: top + i*lineHeight + lineHeight/2}
		drawTextCentered(dst, line, center, quoteFace, r.cfg.Palette.Ink, t)
	}

	if q.Author != "" {
		center := image.Point{X: cx, Y: top + blockHeight + r.px(72)}
		drawTextCentered(dst, "— "+q.Author, center, authorFace, r.cfg.Palette.Stone, t)
	}

	return nil
}

// drawBrand рисует метку бренда у нижнего края, вне блока цитаты.
// Непрозрачность целиком задается трансформацией вызывающей стороны.
func (r *Renderer) drawBrand(dst *image.RGBA, t Transform) {
	face, err := r.fonts.face(fontBold, r.px(36))
	if err != nil {
		return
	}
	center := image.Point{X: r.cfg.Width / 2, Y: r.cfg.Height - r.px(120)}
	drawTextCentered(dst, r.cfg.BrandLabel, center, face, r.cfg.Palette.Stone, t)
}

// lerpColor — покомпонентная интерполяция цвета (для статичных текстур).
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(timeline.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(timeline.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(timeline.Lerp(float64(a.B), float64(b.B), t)),
		A: 255,
	}
}
