package algorithms

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPunctuation набор знаков, удаляемых при нормализации идентификаторов.
// Пробел входит в набор: артикулы "AB-12" и "AB 12" должны совпадать после нормализации.
const DefaultPunctuation = " -_./\\,;:()[]{}'\"#*+&"

// Normalizer нормализует идентификаторы для надежного сопоставления ключей.
// Детерминирован и тотален: для любого входа результат определен,
// пустая строка используется как fallback для nil/NaN
type Normalizer struct {
	punctuation map[rune]bool
}

// NewNormalizer создает нормализатор с указанным набором удаляемых знаков.
// Пустая строка означает набор по умолчанию
func NewNormalizer(punctuation string) *Normalizer {
	if punctuation == "" {
		punctuation = DefaultPunctuation
	}
	set := make(map[rune]bool, len(punctuation))
	for _, r := range punctuation {
		set[r] = true
	}
	return &Normalizer{punctuation: set}
}

// Normalize выполняет полную нормализацию строки:
// обрезка краевых пробелов, схлопывание внутренних пробелов,
// приведение к верхнему регистру, удаление знаков препинания
func (n *Normalizer) Normalize(value string) string {
	// 1. Удаление лишних пробелов
	value = strings.TrimSpace(value)
	value = strings.Join(strings.Fields(value), " ")

	// 2. Приведение к верхнему регистру
	value = strings.ToUpper(value)

	// 3. Нормализация дефисов и кавычек перед удалением
	value = foldHyphens(value)
	value = foldQuotes(value)

	// 4. Удаление знаков препинания
	var builder strings.Builder
	builder.Grow(len(value))
	for _, r := range value {
		if n.punctuation[r] {
			continue
		}
		builder.WriteRune(r)
	}

	return strings.TrimSpace(builder.String())
}

// NormalizeValue приводит произвольное значение ячейки к строке и нормализует.
// nil и NaN дают пустую строку, ошибок не бывает
func (n *Normalizer) NormalizeValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return n.Normalize(v)
	case float64:
		if math.IsNaN(v) {
			return ""
		}
		return n.Normalize(strconv.FormatFloat(v, 'f', -1, 64))
	case float32:
		if math.IsNaN(float64(v)) {
			return ""
		}
		return n.Normalize(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case int:
		return n.Normalize(strconv.Itoa(v))
	case int64:
		return n.Normalize(strconv.FormatInt(v, 10))
	case bool:
		return n.Normalize(strconv.FormatBool(v))
	default:
		return n.Normalize(fmt.Sprintf("%v", v))
	}
}

// foldHyphens приводит варианты тире к обычному дефису
func foldHyphens(text string) string {
	text = strings.ReplaceAll(text, "—", "-")
	text = strings.ReplaceAll(text, "–", "-")
	text = strings.ReplaceAll(text, "−", "-")
	return text
}

// foldQuotes приводит типографские кавычки к простым
func foldQuotes(text string) string {
	replacements := map[rune]rune{
		'“': '"',
		'”': '"',
		'‘': '\'',
		'’': '\'',
		'«':      '"',
		'»':      '"',
		'„':      '"',
		'‚':      '\'',
	}

	var builder strings.Builder
	for _, r := range text {
		if replacement, ok := replacements[r]; ok {
			builder.WriteRune(replacement)
		} else {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
