package engine

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/ivlev/quote2reel/internal/video"
)

// FrameSink потребляет готовые кадры строго по возрастанию индекса.
// Каждый кадр отдается ровно один раз; после возврата Accept холст
// может быть переиспользован.
type FrameSink interface {
	Accept(index int, img *image.RGBA) error
}

// StreamSink пишет кадры сырыми RGBA-байтами в поток кодировщика.
type StreamSink struct {
	W io.Writer
}

func (s *StreamSink) Accept(_ int, img *image.RGBA) error {
	return video.WriteRawRGBA(s.W, img)
}

// PNGDirSink сохраняет кадры нумерованными PNG-файлами — удобно для
// отладки раскадровки без кодировщика.
type PNGDirSink struct {
	Dir string
}

func (s *PNGDirSink) Accept(index int, img *image.RGBA) error {
	path := filepath.Join(s.Dir, fmt.Sprintf("frame%05d.png", index))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
