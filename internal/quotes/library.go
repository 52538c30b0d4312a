package quotes

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Библиотека привязана к календарю: пазл дня выбирается по числу дней
// от эпохи, те же константы, что в самой игре.
var epoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)

type Library struct {
	quotes []Quote
}

// LoadLibrary читает JSON-экспорт (npm run export-quotes на стороне игры).
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать библиотеку цитат: %w", err)
	}

	var list []Quote
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("библиотека цитат повреждена: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("библиотека цитат пуста: %s", path)
	}

	return &Library{quotes: list}, nil
}

func (l *Library) Count() int {
	return len(l.quotes)
}

// ByID возвращает цитату по номеру из экспорта.
func (l *Library) ByID(id int) (Quote, error) {
	for _, q := range l.quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return Quote{}, fmt.Errorf("цитата #%d не найдена", id)
}

// Daily возвращает пазл на указанную дату. До эпохи игра показывает
// превью — последнюю цитату библиотеки с нулевым номером.
func (l *Library) Daily(date time.Time) Quote {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	days := int(midnight.Sub(epoch).Hours() / 24)

	if days < 0 {
		preview := l.quotes[len(l.quotes)-1]
		preview.ID = 0
		return preview
	}

	q := l.quotes[days%len(l.quotes)]
	q.ID = days%len(l.quotes) + 1
	return q
}

// Yesterday — ролик всегда делается по вчерашнему пазлу, чтобы не
// раскрывать текущий.
func (l *Library) Yesterday(now time.Time) Quote {
	return l.Daily(now.AddDate(0, 0, -1))
}
