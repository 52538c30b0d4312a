package engine

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/ivlev/quote2reel/internal/config"
	"github.com/ivlev/quote2reel/internal/quotes"
	"github.com/ivlev/quote2reel/internal/render"
	"github.com/ivlev/quote2reel/internal/timeline"
	"github.com/ivlev/quote2reel/internal/video"
)

// Project — один прогон генерации: видео плюс обложка по одной цитате.
type Project struct {
	Config   config.Config
	Timeline timeline.Timeline
	Quote    quotes.Quote
	Encoder  video.Encoder
}

func NewProject(cfg config.Config, tl timeline.Timeline, q quotes.Quote, enc video.Encoder) *Project {
	return &Project{Config: cfg, Timeline: tl, Quote: q, Encoder: enc}
}

func (p *Project) Run(ctx context.Context) error {
	startTime := time.Now()

	// Все проверки — до первого кадра.
	if err := p.Quote.Validate(); err != nil {
		return err
	}
	if err := p.Timeline.Validate(); err != nil {
		return err
	}

	seed := p.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Перестановка банка фиксируется один раз до цикла кадров и дальше
	// только читается — иначе плитки дрожат между кадрами.
	state := render.NewState(p.Quote, rand.New(rand.NewSource(seed)))

	totalDuration := p.Timeline.TotalDuration()
	totalFrames := p.Timeline.TotalFrames(p.Config.FPS)

	fmt.Println("--- [PROJECT: QUOTE REEL] ---")
	fmt.Printf("[*] Цитата #%d: \"%s\" — %s\n", p.Quote.ID, p.Quote.Answer(), p.Quote.Author)
	fmt.Printf("[*] Разрешение: %dx%d @ %d FPS | Кадров: %d (%.2fs)\n",
		p.Config.Width, p.Config.Height, p.Config.FPS, totalFrames, totalDuration)
	fmt.Println("-----------------------------")

	params := config.EncodeParams{
		Width:     p.Config.Width,
		Height:    p.Config.Height,
		FPS:       p.Config.FPS,
		AudioPath: p.Config.AudioPath,
		Output:    p.Config.OutputVideo,
	}

	renderStart := time.Now()
	err := p.Encoder.Encode(ctx, params, func(w io.Writer) error {
		return Generate(ctx, p.Quote, p.Config, p.Timeline, state, &StreamSink{W: w})
	})
	if err != nil {
		return fmt.Errorf("ошибка сборки видео: %w", err)
	}
	encodeEnd := time.Now()

	if p.Config.OutputCover != "" {
		if err := p.writeCover(); err != nil {
			return fmt.Errorf("ошибка обложки: %w", err)
		}
		fmt.Printf("[*] Обложка: %s\n", p.Config.OutputCover)
	}

	totalTime := time.Since(startTime)
	if p.Config.ShowStats {
		effectiveFPS := float64(totalFrames) / encodeEnd.Sub(renderStart).Seconds()
		report := fmt.Sprintf(
			"--- [PERFORMANCE REPORT] ---\n"+
				"Build: %s\n"+
				"Total Time: %.2fs\n"+
				"Render+Encode: %.2fs\n"+
				"Effective FPS: %.2f\n"+
				"----------------------------\n",
			p.Config.BuildVersion, totalTime.Seconds(), encodeEnd.Sub(renderStart).Seconds(), effectiveFPS,
		)
		fmt.Print(report)

		logEntry := fmt.Sprintf("[%s] Build: %s | Quote: #%d | Frames: %d | Total: %.2fs | FPS: %.2f\n",
			time.Now().Format("2006-01-02 15:04:05"),
			p.Config.BuildVersion,
			p.Quote.ID,
			totalFrames,
			totalTime.Seconds(),
			effectiveFPS,
		)

		f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			f.WriteString(logEntry)
			f.Close()
		} else {
			fmt.Printf("[!] Не удалось записать benchmark.log: %v\n", err)
		}
	}

	return nil
}

func (p *Project) writeCover() error {
	r, err := render.NewRenderer(p.Config, p.Timeline)
	if err != nil {
		return err
	}
	img, err := r.RenderCover(p.Quote)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(p.Config.OutputCover); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	f, err := os.Create(p.Config.OutputCover)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
