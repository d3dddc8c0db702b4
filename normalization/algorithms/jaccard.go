package algorithms

import (
	"strings"

	"github.com/kljensen/snowball"
)

// JaccardIndex вычисляет индекс Жаккара для сравнения множеств токенов
// Индекс Жаккара = |A ∩ B| / |A ∪ B|
// Значение от 0.0 (нет общих элементов) до 1.0 (полное совпадение)
type JaccardIndex struct {
	stemTokens bool
}

// NewJaccardIndex создает новый вычислитель индекса Жаккара
func NewJaccardIndex() *JaccardIndex {
	return &JaccardIndex{stemTokens: false}
}

// NewJaccardIndexWithStemming создает вычислитель со стеммингом токенов.
// Стемминг сводит "DESCRIPTIONS" и "DESCRIPTION" к одному токену
func NewJaccardIndexWithStemming() *JaccardIndex {
	return &JaccardIndex{stemTokens: true}
}

// Similarity вычисляет индекс Жаккара для двух строк
func (j *JaccardIndex) Similarity(text1, text2 string) float64 {
	if text1 == "" && text2 == "" {
		return 1.0
	}
	if text1 == "" || text2 == "" {
		return 0.0
	}

	set1 := j.tokenizeToSet(text1)
	set2 := j.tokenizeToSet(text2)

	return computeJaccard(set1, set2)
}

// computeJaccard вычисляет индекс Жаккара для двух множеств
func computeJaccard(set1, set2 map[string]bool) float64 {
	if len(set1) == 0 && len(set2) == 0 {
		return 1.0
	}
	if len(set1) == 0 || len(set2) == 0 {
		return 0.0
	}

	// Вычисляем пересечение
	intersection := 0
	for elem := range set1 {
		if set2[elem] {
			intersection++
		}
	}

	// Вычисляем объединение
	union := len(set1)
	for elem := range set2 {
		if !set1[elem] {
			union++
		}
	}

	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

// tokenizeToSet разбивает текст на токены и возвращает множество
func (j *JaccardIndex) tokenizeToSet(text string) map[string]bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return make(map[string]bool)
	}

	// Разделители в заголовках: пробелы, подчеркивания, дефисы
	text = strings.ReplaceAll(text, "_", " ")
	text = strings.ReplaceAll(text, "-", " ")

	words := strings.Fields(text)
	set := make(map[string]bool)

	for _, word := range words {
		word = strings.Trim(word, ".,!?;:()[]{}\"'")
		if word == "" {
			continue
		}
		if j.stemTokens {
			if stemmed, err := snowball.Stem(word, "english", true); err == nil && stemmed != "" {
				word = stemmed
			}
		}
		set[word] = true
	}

	return set
}
