package engine

import (
	"context"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/quote2reel/internal/config"
	"github.com/ivlev/quote2reel/internal/quotes"
	"github.com/ivlev/quote2reel/internal/render"
	"github.com/ivlev/quote2reel/internal/system"
	"github.com/ivlev/quote2reel/internal/timeline"
)

type renderResult struct {
	index int
	img   *image.RGBA
}

// Generate прогоняет кадры i в [0, floor(total*fps)): кадр i — это
// момент i/fps. Рендеринг чистый и не зависит от соседних кадров,
// поэтому воркеры работают параллельно; сток при этом требует строгой
// последовательности, и обгоняющие кадры буферизуются до своей очереди.
func Generate(ctx context.Context, q quotes.Quote, cfg config.Config, tl timeline.Timeline, state *render.State, sink FrameSink) error {
	total := tl.TotalFrames(cfg.FPS)
	fps := float64(cfg.FPS)
	bounds := image.Rect(0, 0, cfg.Width, cfg.Height)

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	jobs := make(chan int)
	results := make(chan renderResult, workers)

	grp, gctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		defer close(jobs)
		for i := 0; i < total; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	// Пул рендеринга. Face шрифтов не потокобезопасны, поэтому у
	// каждого воркера свой Renderer.
	var renderGrp errgroup.Group
	for w := 0; w < workers; w++ {
		renderGrp.Go(func() error {
			r, err := render.NewRenderer(cfg, tl)
			if err != nil {
				return err
			}
			for i := range jobs {
				img, err := r.RenderFrame(q, float64(i)/fps, state, system.GetImage(bounds))
				if err != nil {
					return err
				}
				select {
				case results <- renderResult{index: i, img: img}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	grp.Go(func() error {
		err := renderGrp.Wait()
		close(results)
		return err
	})

	grp.Go(func() error {
		pending := make(map[int]*image.RGBA)
		next := 0
		for res := range results {
			pending[res.index] = res.img
			for {
				img, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				if err := sink.Accept(next, img); err != nil {
					return err
				}
				system.PutImage(img)
				next++
			}
		}
		return nil
	})

	return grp.Wait()
}
