package layout

import (
	"image"
	"math/rand"
	"strings"
)

// Размеры в дизайн-юнитах макета 1080x1920; при другом холсте
// вызывающая сторона масштабирует результат целиком.
const (
	SlotSize = 60
	SlotGap  = 12

	TileSize = 50
	TileGap  = 10

	// Вертикальный якорь банка букв — доля высоты холста.
	BankAnchor = 0.75
)

// Cell — одна ячейка (слот сетки или плитка банка) с буквой и её
// позицией в порядке ответа без пробелов.
type Cell struct {
	Index  int
	Letter rune
	Rect   image.Rectangle
}

// RowWidth — ширина ряда из n ячеек: n*(size+gap)-gap.
func RowWidth(n, size, gap int) int {
	if n <= 0 {
		return 0
	}
	return n*(size+gap) - gap
}

// SlotsPerRow — сколько ячеек помещается в maxWidth.
func SlotsPerRow(maxWidth, size, gap int) int {
	n := (maxWidth + gap) / (size + gap)
	if n < 1 {
		n = 1
	}
	return n
}

// WrapLetters разбивает ответ на ряды по границам слов так, чтобы ряд
// не превышал maxPerRow букв. Пробелы в ряды не попадают: ячейки
// получают только буквы, порядок совпадает с ответом без пробелов.
// Слово длиннее maxPerRow режется жестко.
func WrapLetters(answer string, maxPerRow int) [][]rune {
	var rows [][]rune
	var current []rune

	for _, word := range strings.Fields(answer) {
		letters := []rune(word)
		for len(letters) > maxPerRow {
			if len(current) > 0 {
				rows = append(rows, current)
				current = nil
			}
			rows = append(rows, letters[:maxPerRow])
			letters = letters[maxPerRow:]
		}
		if len(current)+len(letters) > maxPerRow {
			rows = append(rows, current)
			current = nil
		}
		current = append(current, letters...)
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}

	return rows
}

// SlotGrid раскладывает ответ по ячейкам сетки: каждый ряд центрируется
// по горизонтали относительно center.X, блок рядов — по вертикали
// относительно center.Y. size и gap — уже отмасштабированные пиксели.
func SlotGrid(answer string, center image.Point, maxWidth, size, gap int) []Cell {
	rows := WrapLetters(answer, SlotsPerRow(maxWidth, size, gap))

	blockHeight := RowWidth(len(rows), size, gap)
	top := center.Y - blockHeight/2

	var cells []Cell
	index := 0
	for r, row := range rows {
		left := center.X - RowWidth(len(row), size, gap)/2
		y := top + r*(size+gap)
		for c, letter := range row {
			x := left + c*(size+gap)
			cells = append(cells, Cell{
				Index:  index,
				Letter: letter,
				Rect:   image.Rect(x, y, x+size, y+size),
			})
			index++
		}
	}

	return cells
}

// BankGrid раскладывает перемешанные буквы банка плитками: ряды идут
// слева направо, блок центрируется по горизонтали, верх блока — на
// фиксированной доле высоты холста.
func BankGrid(letters []rune, canvasW, canvasH, maxWidth, size, gap int) []Cell {
	perRow := SlotsPerRow(maxWidth, size, gap)

	var rows [][]rune
	for start := 0; start < len(letters); start += perRow {
		end := start + perRow
		if end > len(letters) {
			end = len(letters)
		}
		rows = append(rows, letters[start:end])
	}

	blockWidth := 0
	for _, row := range rows {
		if w := RowWidth(len(row), size, gap); w > blockWidth {
			blockWidth = w
		}
	}
	left := (canvasW - blockWidth) / 2
	top := int(float64(canvasH) * BankAnchor)

	var cells []Cell
	index := 0
	for r, row := range rows {
		y := top + r*(size+gap)
		for c, letter := range row {
			x := left + c*(size+gap)
			cells = append(cells, Cell{
				Index:  index,
				Letter: letter,
				Rect:   image.Rect(x, y, x+size, y+size),
			})
			index++
		}
	}

	return cells
}

// Wrap — жадный перенос текста по пиксельной ширине. Детерминирован
// при фиксированной функции измерения; слово шире maxWidth занимает
// свою строку целиком.
func Wrap(text string, maxWidth int, measure func(string) int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) <= maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	lines = append(lines, current)

	return lines
}

// ShuffleLetters возвращает перестановку букв (Фишер–Йетс). Источник
// случайности передается снаружи: прогон сеет его временем, тесты —
// константой.
func ShuffleLetters(letters []rune, rng *rand.Rand) []rune {
	shuffled := make([]rune, len(letters))
	copy(shuffled, letters)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
