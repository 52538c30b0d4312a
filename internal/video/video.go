package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"

	"github.com/ivlev/quote2reel/internal/config"
)

// EncodeError — внешний кодировщик завершился с ошибкой. Ошибка
// фатальна для прогона, частичное видео не публикуется.
type EncodeError struct {
	Err error
	Log string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("ffmpeg: %v\nLog: %s", e.Err, e.Log)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Encoder принимает упорядоченный поток кадров фиксированного размера
// и собирает из него видеофайл. Повторных попыток нет.
type Encoder interface {
	Encode(ctx context.Context, params config.EncodeParams, writeFrames func(io.Writer) error) error
}

// FFmpegEncoder кодирует через системный ffmpeg. Кадры передаются как
// rawvideo RGBA через stdin — без промежуточного I/O на диск.
type FFmpegEncoder struct{}

// Параметры выходного файла фиксированы: H.264 (preset slow, CRF 18),
// пиксельный формат 4:2:0, звук AAC 48 кГц, длина по короткому потоку.
func (e *FFmpegEncoder) buildFFmpegArgs(p config.EncodeParams) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"-framerate", fmt.Sprintf("%d", p.FPS),
		"-i", "-",
	}

	if p.AudioPath != "" {
		args = append(args, "-i", p.AudioPath)
	}

	args = append(args, "-map", "0:v")
	if p.AudioPath != "" {
		args = append(args,
			"-map", "1:a",
			"-c:a", "aac", "-b:a", "192k", "-ar", "48000",
			"-shortest",
		)
	}

	args = append(args,
		"-c:v", "libx264", "-preset", "slow", "-crf", "18",
		"-pix_fmt", "yuv420p",
		p.Output,
	)
	return args
}

func (e *FFmpegEncoder) Encode(ctx context.Context, params config.EncodeParams, writeFrames func(io.Writer) error) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", e.buildFFmpegArgs(params)...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &EncodeError{Err: fmt.Errorf("stdin pipe error: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		return &EncodeError{Err: fmt.Errorf("start error: %w", err)}
	}

	writeErr := writeFrames(stdin)
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return &EncodeError{Err: err, Log: out.String()}
	}
	if writeErr != nil {
		return &EncodeError{Err: writeErr, Log: out.String()}
	}

	return nil
}

// WriteRawRGBA пишет кадр как сырые RGBA-байты. Если изображение уже
// *image.RGBA со стандартным stride, буфер уходит как есть.
func WriteRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(bounds)
		draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	}
	_, err := w.Write(rgba.Pix)
	return err
}
