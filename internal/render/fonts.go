package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fontWeight int

const (
	fontRegular fontWeight = iota
	fontBold
	fontItalic
)

type faceKey struct {
	weight fontWeight
	size   int
}

// FontSet держит распарсенные шрифты и кэш face по размеру.
// Face не потокобезопасен, поэтому FontSet живет внутри одного
// Renderer и не разделяется между воркерами.
type FontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
	italic  *opentype.Font
	faces   map[faceKey]font.Face
}

func NewFontSet() (*FontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("font parse (regular): %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("font parse (bold): %w", err)
	}
	italic, err := opentype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("font parse (italic): %w", err)
	}

	return &FontSet{
		regular: regular,
		bold:    bold,
		italic:  italic,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

func (fs *FontSet) face(weight fontWeight, size int) (font.Face, error) {
	if size < 1 {
		size = 1
	}
	key := faceKey{weight: weight, size: size}
	if f, ok := fs.faces[key]; ok {
		return f, nil
	}

	src := fs.regular
	switch weight {
	case fontBold:
		src = fs.bold
	case fontItalic:
		src = fs.italic
	}

	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %dpt: %w", size, err)
	}
	fs.faces[key] = f
	return f, nil
}

// MeasureWidth возвращает ширину строки в пикселях для данного face.
func MeasureWidth(f font.Face, text string) int {
	return font.MeasureString(f, text).Ceil()
}
