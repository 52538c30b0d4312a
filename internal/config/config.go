package config

import "image/color"

// Palette повторяет цвета игровой доски (light mode).
type Palette struct {
	Background color.NRGBA // бумага
	Ink        color.NRGBA // основной текст и рамки
	Stone      color.NRGBA // буквы банка
	StoneLight color.NRGBA // линии сетки
	CellFill   color.NRGBA // пустые ячейки
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 253, G: 251, B: 247, A: 255}, // #FDFBF7
		Ink:        color.NRGBA{R: 28, G: 28, B: 30, A: 255},    // #1C1C1E
		Stone:      color.NRGBA{R: 120, G: 113, B: 108, A: 255}, // #78716C
		StoneLight: color.NRGBA{R: 229, G: 229, B: 234, A: 255}, // #E5E5EA
		CellFill:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Config описывает один прогон генерации. Заполняется в cmd и дальше
// передается только по значению — никаких глобальных настроек.
type Config struct {
	QuotesPath  string
	OutputVideo string
	OutputCover string
	AudioPath   string

	Width  int
	Height int
	FPS    int

	// Центральная вертикальная полоса, отведенная под пазл и цитату.
	SafeZone float64

	Palette    Palette
	BrandLabel string
	SiteURL    string

	Workers int
	Seed    int64

	ShowStats    bool
	BuildVersion string
}

func Default() Config {
	return Config{
		Width:      1080,
		Height:     1920,
		FPS:        30,
		SafeZone:   0.86,
		Palette:    DefaultPalette(),
		BrandLabel: "Quotidian",
	}
}

// EncodeParams — фиксированные параметры внешнего кодировщика.
type EncodeParams struct {
	Width     int
	Height    int
	FPS       int
	AudioPath string
	Output    string
}
