package algorithms

import (
	"sort"
	"strings"
)

// ColumnSuggestion кандидат на роль колонки поиска с оценкой схожести
type ColumnSuggestion struct {
	Column string  `json:"column"`
	Score  float64 `json:"score"`
}

// ColumnMatcher подбирает наиболее похожую колонку по названию.
// Оценка от 0.0 до 1.0 комбинирует точное совпадение после нормализации,
// вхождение подстроки и пересечение токенов (индекс Жаккара).
// Движок сам колонку не выбирает: решение остается за вызывающей стороной
type ColumnMatcher struct {
	normalizer *Normalizer
	jaccard    *JaccardIndex
}

// NewColumnMatcher создает новый подборщик колонок
func NewColumnMatcher() *ColumnMatcher {
	return &ColumnMatcher{
		// Для сравнения заголовков пробел сохраняем как разделитель токенов
		normalizer: NewNormalizer("-_./\\,;:()[]{}'\"#*+&"),
		jaccard:    NewJaccardIndexWithStemming(),
	}
}

// Suggest возвращает всех кандидатов, отсортированных по убыванию оценки.
// При равных оценках сохраняется исходный порядок кандидатов (stable sort).
// Пустой список кандидатов дает пустой результат, а не ошибку
func (cm *ColumnMatcher) Suggest(header string, candidates []string) []ColumnSuggestion {
	suggestions := make([]ColumnSuggestion, 0, len(candidates))
	for _, candidate := range candidates {
		suggestions = append(suggestions, ColumnSuggestion{
			Column: candidate,
			Score:  cm.Score(header, candidate),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	return suggestions
}

// SuggestTopN возвращает не более n лучших кандидатов
func (cm *ColumnMatcher) SuggestTopN(header string, candidates []string, n int) []ColumnSuggestion {
	suggestions := cm.Suggest(header, candidates)
	if n >= 0 && len(suggestions) > n {
		suggestions = suggestions[:n]
	}
	return suggestions
}

// Score вычисляет оценку схожести двух заголовков
func (cm *ColumnMatcher) Score(header, candidate string) float64 {
	normHeader := cm.normalizer.Normalize(header)
	normCandidate := cm.normalizer.Normalize(candidate)

	// Точное совпадение после нормализации
	if normHeader != "" && normHeader == normCandidate {
		return 1.0
	}

	score := 0.0

	// Эвристика для структурных заголовков вида J74_V710_B2_PP_YOTK:
	// совпадение префикса и суффикса почти наверняка указывает нужную колонку
	if prefixSuffixMatch(header, candidate) {
		ratio := sequenceRatio(strings.ToLower(header), strings.ToLower(candidate))
		if ratio >= 0.9 {
			score = 0.90 + 0.09*ratio
		} else {
			// Структура совпала, но середина отличается: посимвольная
			// схожесть все равно информативнее пересечения токенов
			score = ratio
		}
	}

	// Вхождение подстроки: оценка в [0.6, 0.9] по доле перекрытия
	if containment := containmentScore(normHeader, normCandidate); containment > score {
		score = containment
	}

	// Пересечение токенов, масштабировано ниже точного совпадения
	if tokenScore := 0.9 * cm.jaccard.Similarity(header, candidate); tokenScore > score {
		score = tokenScore
	}

	return score
}

// containmentScore оценивает вхождение одной нормализованной строки в другую.
// Возвращает 0, если вхождения нет
func containmentScore(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}

	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	if !strings.Contains(longer, shorter) {
		return 0.0
	}

	// Доля перекрытия: чем ближе длины, тем выше оценка
	overlap := float64(len(shorter)) / float64(len(longer))
	return 0.6 + 0.3*overlap
}

// prefixSuffixMatch проверяет структурное совпадение заголовков:
// кандидат начинается с первых трех сегментов и кончается последним сегментом входа
func prefixSuffixMatch(header, candidate string) bool {
	parts := strings.Split(header, "_")
	if len(parts) < 4 {
		return false
	}

	prefix := strings.ToUpper(strings.Join(parts[:3], "_"))
	suffix := strings.ToUpper(parts[len(parts)-1])
	upper := strings.ToUpper(candidate)

	return strings.HasPrefix(upper, prefix) && strings.HasSuffix(upper, suffix)
}

// sequenceRatio вычисляет схожесть строк через длину наибольшей общей подпоследовательности:
// 2*LCS / (len1+len2), значение от 0.0 до 1.0
func sequenceRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(rb)]
	return 2.0 * float64(lcs) / float64(len(ra)+len(rb))
}
