package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/quote2reel/internal/timeline"
)

// Transform — неизменяемый контекст отрисовки: масштаб вокруг опорной
// точки и сквозная непрозрачность. Передается по значению, поэтому у
// холста нет стека save/restore и скрытого состояния.
type Transform struct {
	Pivot   image.Point
	Scale   float64
	Opacity float64
}

func Identity(pivot image.Point) Transform {
	return Transform{Pivot: pivot, Scale: 1, Opacity: 1}
}

func (t Transform) Fade(opacity float64) Transform {
	t.Opacity *= opacity
	return t
}

func (t Transform) Zoom(scale float64) Transform {
	t.Scale *= scale
	return t
}

func (t Transform) point(p image.Point) image.Point {
	if t.Scale == 1 {
		return p
	}
	return image.Point{
		X: t.Pivot.X + int(math.Round(float64(p.X-t.Pivot.X)*t.Scale)),
		Y: t.Pivot.Y + int(math.Round(float64(p.Y-t.Pivot.Y)*t.Scale)),
	}
}

func (t Transform) rect(r image.Rectangle) image.Rectangle {
	return image.Rectangle{Min: t.point(r.Min), Max: t.point(r.Max)}
}

func (t Transform) alpha(c color.NRGBA) color.NRGBA {
	a := timeline.Clamp(t.Opacity, 0, 1)
	c.A = uint8(math.Round(float64(c.A) * a))
	return c
}

// fillRect закрашивает прямоугольник с учетом трансформации.
// Нулевая непрозрачность — no-op, чтобы кадры шва цикла совпадали
// попиксельно.
func fillRect(dst *image.RGBA, r image.Rectangle, c color.NRGBA, t Transform) {
	if t.Opacity <= 0 {
		return
	}
	draw.Draw(dst, t.rect(r), image.NewUniform(t.alpha(c)), image.Point{}, draw.Over)
}

// strokeRect рисует рамку толщиной w внутрь прямоугольника.
func strokeRect(dst *image.RGBA, r image.Rectangle, w int, c color.NRGBA, t Transform) {
	if t.Opacity <= 0 || w <= 0 {
		return
	}
	r = t.rect(r)
	src := image.NewUniform(t.alpha(c))
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), src, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), src, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y+w, r.Min.X+w, r.Max.Y-w), src, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Max.X-w, r.Min.Y+w, r.Max.X, r.Max.Y-w), src, image.Point{}, draw.Over)
}

// drawTextCentered рисует строку с центром в point (и по ширине, и по
// высоте строчных метрик).
func drawTextCentered(dst *image.RGBA, text string, center image.Point, f font.Face, c color.NRGBA, t Transform) {
	if t.Opacity <= 0 || text == "" {
		return
	}
	center = t.point(center)

	width := font.MeasureString(f, text)
	metrics := f.Metrics()
	// Центр по вертикали считаем по ascent/descent, а не по bbox
	// конкретной строки, чтобы базовая линия не прыгала между кадрами.
	baseline := center.Y + (metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.alpha(c)),
		Face: f,
		Dot: fixed.Point26_6{
			X: fixed.I(center.X) - width/2,
			Y: fixed.I(baseline),
		},
	}
	d.DrawString(text)
}
