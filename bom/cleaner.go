package bom

import (
	"fmt"
	"strings"

	"bomserver/normalization/algorithms"
)

// CleaningConfig настройки очистки листа
type CleaningConfig struct {
	// Punctuation набор знаков, удаляемых нормализатором; пустая строка — набор по умолчанию
	Punctuation string `json:"punctuation"`
	// TextColumns дополнительные текстовые колонки, нормализуемые вместе с ключевой
	TextColumns []string `json:"text_columns"`
}

// ColumnRename запись о переименовании заголовка при очистке
type ColumnRename struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CleaningReport отчет об аномалиях, найденных при очистке.
// Аномалии — ожидаемый результат нормальной работы, не ошибки
type CleaningReport struct {
	OriginalRows    int            `json:"original_rows"`
	ResultRows      int            `json:"result_rows"`
	EmptyRowsDropped int           `json:"empty_rows_dropped"`
	RowsNormalized  int            `json:"rows_normalized"`
	EmptyKeys       int            `json:"empty_keys"`
	ColumnsRenamed  []ColumnRename `json:"columns_renamed"`
	HeaderCollisions int           `json:"header_collisions"`
}

// Cleaner выполняет нормализацию и структурную проверку загруженного листа.
// Без состояния: вход не изменяется, результат всегда новая таблица
type Cleaner struct{}

// NewCleaner создает новый очиститель
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean очищает таблицу: приводит заголовки, удаляет пустые строки,
// нормализует ключевую колонку. Дубликаты ключей на этом этапе легитимны,
// их классификация происходит при сопоставлении.
// Возвращает ValidationError, если ключевая колонка отсутствует
func (c *Cleaner) Clean(table *Table, keyColumn string, config CleaningConfig) (*Table, *CleaningReport, error) {
	report := &CleaningReport{
		OriginalRows:   len(table.Rows),
		ColumnsRenamed: make([]ColumnRename, 0),
	}

	// 1. Приводим заголовки: обрезаем краевые пробелы,
	// коллизии разрешаем числовым суффиксом
	columns, renames, collisions := dedupeHeaders(table.Columns)
	report.ColumnsRenamed = renames
	report.HeaderCollisions = collisions

	renameMap := make(map[string]string, len(renames))
	for _, r := range renames {
		renameMap[r.From] = r.To
	}

	// Ключевая колонка задается уже приведенным именем
	cleaned := NewTable(columns)
	if !cleaned.HasColumn(keyColumn) {
		return nil, nil, NewValidationError(keyColumn, "key column not found in table")
	}

	normalizer := algorithms.NewNormalizer(config.Punctuation)

	textColumns := make(map[string]bool, len(config.TextColumns))
	for _, col := range config.TextColumns {
		textColumns[col] = true
	}

	for _, row := range table.Rows {
		// Переносим значения под новыми именами колонок
		moved := make(Row, len(columns))
		for _, orig := range table.Columns {
			name := orig
			if renamed, ok := renameMap[orig]; ok {
				name = renamed
			}
			moved[name] = row[orig]
		}

		// 2. Полностью пустые строки отбрасываются до нормализации
		if cleaned.IsEmptyRow(moved) {
			report.EmptyRowsDropped++
			continue
		}

		// 3. Нормализуем ключ и отмеченные текстовые колонки
		changed := false
		for _, col := range columns {
			if col != keyColumn && !textColumns[col] {
				continue
			}
			normalized := normalizer.Normalize(moved[col])
			if normalized != moved[col] {
				moved[col] = normalized
				changed = true
			}
		}
		if changed {
			report.RowsNormalized++
		}

		// Пустой ключ не исключает строку, но учитывается отдельно
		if moved[keyColumn] == "" {
			report.EmptyKeys++
		}

		cleaned.AppendRow(moved)
	}

	report.ResultRows = len(cleaned.Rows)
	return cleaned, report, nil
}

// dedupeHeaders обрезает пробелы в заголовках и разрешает коллизии
// числовым суффиксом, сохраняя уникальность имен
func dedupeHeaders(columns []string) ([]string, []ColumnRename, int) {
	result := make([]string, 0, len(columns))
	renames := make([]ColumnRename, 0)
	seen := make(map[string]int, len(columns))
	collisions := 0

	for _, col := range columns {
		name := strings.TrimSpace(col)
		if name == "" {
			name = "COLUMN"
		}

		if count, exists := seen[name]; exists {
			collisions++
			base := name
			for {
				count++
				name = fmt.Sprintf("%s_%d", base, count)
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = count
		}
		seen[name] = 1

		if name != col {
			renames = append(renames, ColumnRename{From: col, To: name})
		}
		result = append(result, name)
	}

	return result, renames, collisions
}
