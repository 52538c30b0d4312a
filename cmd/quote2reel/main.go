package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ivlev/quote2reel/internal/config"
	"github.com/ivlev/quote2reel/internal/engine"
	"github.com/ivlev/quote2reel/internal/quotes"
	"github.com/ivlev/quote2reel/internal/system"
	"github.com/ivlev/quote2reel/internal/timeline"
	"github.com/ivlev/quote2reel/internal/video"
)

func main() {
	// Увеличиваем лимиты системы (для macOS/Linux)
	system.InitResourceLimits()

	// Создаем нужные директории, если их нет
	dirs := []string{"input/quotes", "input/audio", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	quotesPtr := flag.String("quotes", "", "Путь к JSON-экспорту цитат (по умолчанию: самый свежий файл в input/quotes/)")
	datePtr := flag.String("date", "", "Дата пазла YYYY-MM-DD (по умолчанию: вчера)")
	quoteIDPtr := flag.Int("quote-id", 0, "Взять цитату по номеру вместо даты")
	outputPtr := flag.String("output", "", "Путь к видео (если пусто, генерируется автоматически в output/)")
	coverPtr := flag.String("cover", "", "Путь к обложке PNG (если пусто, рядом с видео)")
	audioPtr := flag.String("audio", "", "Путь к аудио (по умолчанию: самый свежий файл в input/audio/)")
	noAudioPtr := flag.Bool("no-audio", false, "Собрать видео без звуковой дорожки")
	timelinePtr := flag.String("timeline", "", "YAML-профиль таймингов фаз (если пусто, встроенные значения)")
	presetPtr := flag.String("preset", "9:16", "Пресет формата: 9:16 (Reels/Shorts), 4:5 (Instagram)")
	fpsPtr := flag.Int("fps", 30, "FPS")
	workersPtr := flag.Int("workers", 0, "Потоки рендеринга (0 - авто по CPU и памяти)")
	seedPtr := flag.Int64("seed", 0, "Зерно тасовки банка букв (0 - случайное на каждый прогон)")
	sitePtr := flag.String("site", "", "Адрес сайта для QR-метки на обложке")
	statsPtr := flag.Bool("stats", false, "Показать отчет о производительности")

	flag.Parse()

	cfg := config.Default()
	switch *presetPtr {
	case "4:5":
		cfg.Width, cfg.Height = 1080, 1350
	default: // 9:16
		cfg.Width, cfg.Height = 1080, 1920
	}
	cfg.FPS = *fpsPtr
	cfg.Seed = *seedPtr
	cfg.SiteURL = *sitePtr
	cfg.ShowStats = *statsPtr
	cfg.BuildVersion = buildVersion

	quotesPath := *quotesPtr
	if quotesPath == "" {
		latest, err := system.FindLatestQuotes("input/quotes")
		if err != nil {
			log.Fatalf("[-] Ошибка: %v. Положите экспорт цитат в input/quotes/", err)
		}
		quotesPath = latest
		fmt.Printf("[*] Выбран файл: %s\n", quotesPath)
	}
	cfg.QuotesPath = quotesPath

	library, err := quotes.LoadLibrary(quotesPath)
	if err != nil {
		log.Fatalf("[-] Ошибка библиотеки цитат: %v", err)
	}
	fmt.Printf("[*] Загружено цитат: %d\n", library.Count())

	var quote quotes.Quote
	switch {
	case *quoteIDPtr > 0:
		quote, err = library.ByID(*quoteIDPtr)
		if err != nil {
			log.Fatalf("[-] Ошибка: %v", err)
		}
	case *datePtr != "":
		date, perr := time.ParseInLocation("2006-01-02", *datePtr, time.Local)
		if perr != nil {
			log.Fatalf("[-] Неверная дата %q: %v", *datePtr, perr)
		}
		quote = library.Daily(date)
	default:
		// Ролик всегда по вчерашнему пазлу, чтобы не раскрывать текущий.
		quote = library.Yesterday(time.Now())
	}

	tl := timeline.Default()
	if *timelinePtr != "" {
		tl, err = timeline.ReadTimeline(*timelinePtr)
		if err != nil {
			log.Fatalf("[-] Ошибка профиля таймингов: %v", err)
		}
		fmt.Printf("[*] Используется профиль таймингов: %s\n", *timelinePtr)
	}

	if !*noAudioPtr {
		audioPath := *audioPtr
		if audioPath == "" {
			latest, err := system.FindLatestAudio("input/audio")
			if err == nil {
				audioPath = latest
				fmt.Printf("[*] Выбрано аудио: %s\n", audioPath)
			}
		}
		if audioPath != "" {
			if dur, err := system.GetAudioDuration(audioPath); err == nil {
				fmt.Printf("[*] Аудио: %.2fs (лишнее обрежется по -shortest)\n", dur)
			}
			cfg.AudioPath = audioPath
		}
	}

	dateStr := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	if *datePtr != "" {
		dateStr = *datePtr
	}
	cfg.OutputVideo = *outputPtr
	if cfg.OutputVideo == "" {
		cfg.OutputVideo = filepath.Join("output", fmt.Sprintf("quote-reel-%s.mp4", dateStr))
	}
	cfg.OutputCover = *coverPtr
	if cfg.OutputCover == "" {
		cfg.OutputCover = filepath.Join("output", fmt.Sprintf("quote-cover-%s.png", dateStr))
	}

	cfg.Workers = *workersPtr
	if cfg.Workers <= 0 {
		cfg.Workers = system.RenderWorkers(cfg.Width * cfg.Height * 4)
		fmt.Printf("[*] Потоков рендеринга: %d\n", cfg.Workers)
	}

	project := engine.NewProject(cfg, tl, quote, &video.FFmpegEncoder{})
	if err := project.Run(context.Background()); err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", cfg.OutputVideo)
}

var buildVersion = "dev"
