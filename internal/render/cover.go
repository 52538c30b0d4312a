package render

import (
	"image"
	"image/draw"

	"github.com/skip2/go-qrcode"

	"github.com/ivlev/quote2reel/internal/quotes"
)

// Непрозрачность сетки-текстуры на обложке. Времени здесь нет:
// обложка — одна статичная композиция.
const coverGridOpacity = 0.06

// RenderCover собирает статичный кадр финала: фон, едва заметная
// пустая сетка как текстура, цитата и бренд в полную силу, QR-метка
// в углу, если задан адрес сайта.
func (r *Renderer) RenderCover(q quotes.Quote) (*image.RGBA, error) {
	bounds := image.Rect(0, 0, r.cfg.Width, r.cfg.Height)
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(r.cfg.Palette.Background), image.Point{}, draw.Src)

	base := Identity(image.Point{X: r.cfg.Width / 2, Y: r.cfg.Height / 2})

	// Цвета текстуры смешиваются с фоном заранее и кладутся без
	// альфы — без накопления ошибок округления при наложении.
	textured := *r
	pal := r.cfg.Palette
	textured.cfg.Palette.StoneLight = lerpColor(pal.Background, pal.StoneLight, coverGridOpacity)
	textured.cfg.Palette.CellFill = lerpColor(pal.Background, pal.CellFill, coverGridOpacity)
	textured.drawGrid(dst, q, 0, base)

	if err := r.drawQuoteBlock(dst, q, base); err != nil {
		return nil, err
	}
	r.drawBrand(dst, base)

	if r.cfg.SiteURL != "" {
		code, err := qrcode.New(r.cfg.SiteURL, qrcode.Medium)
		if err != nil {
			return nil, &Error{Op: "qr", Err: err}
		}
		size := r.px(140)
		margin := r.px(48)
		qrImg := code.Image(size)
		target := image.Rect(
			r.cfg.Width-margin-size, r.cfg.Height-margin-size,
			r.cfg.Width-margin, r.cfg.Height-margin,
		)
		draw.Draw(dst, target, qrImg, qrImg.Bounds().Min, draw.Over)
	}

	return dst, nil
}
