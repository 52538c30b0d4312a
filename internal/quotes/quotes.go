package quotes

import (
	"errors"
	"strings"
)

// ErrInvalidQuote возвращается до рендеринга первого кадра.
var ErrInvalidQuote = errors.New("цитата пуста или не содержит ответа")

// Quote — запись из JSON-экспорта игры. Формат принадлежит апстриму,
// здесь проверяется только форма и непустой ответ.
type Quote struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Source string `json:"source,omitempty"`
}

// Slot — одна ячейка сетки: буква ответа и признак заполненности.
type Slot struct {
	Letter rune
	Filled bool
}

// Answer возвращает текст пазла: завершающий знак .!? отбрасывается,
// как это делает getPuzzleText в самой игре.
func (q Quote) Answer() string {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return ""
	}
	switch text[len(text)-1] {
	case '.', '!', '?':
		return strings.TrimSpace(text[:len(text)-1])
	}
	return text
}

// Letters возвращает буквы ответа без пробелов — ровно то, что
// раскладывается по ячейкам и попадает в банк букв.
func (q Quote) Letters() []rune {
	var letters []rune
	for _, r := range q.Answer() {
		if r != ' ' {
			letters = append(letters, r)
		}
	}
	return letters
}

// Slots всегда выводится заново из ответа. Кэшированные слоты из
// экспорта игнорируются: один источник истины, никакой миграции.
func (q Quote) Slots(filledCount int) []Slot {
	letters := q.Letters()
	slots := make([]Slot, len(letters))
	for i, r := range letters {
		slots[i] = Slot{Letter: r, Filled: i < filledCount}
	}
	return slots
}

// Validate проверяет форму записи перед запуском прогона.
func (q Quote) Validate() error {
	if len(q.Letters()) == 0 {
		return ErrInvalidQuote
	}
	return nil
}
