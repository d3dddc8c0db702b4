package bom

import (
	"bomserver/normalization/algorithms"
)

// Classification категория строки целевого листа после сопоставления
type Classification string

const (
	// ClassMatch ключ найден, значения уже совпадают с мастером
	ClassMatch Classification = "MATCH"
	// ClassUpdate ключ найден, значения перенесены из мастера
	ClassUpdate Classification = "UPDATE"
	// ClassInsert ключ в мастере отсутствует, строка новая
	ClassInsert Classification = "INSERT"
	// ClassDuplicate ключ найден в мастере более одного раза, слияние не выполняется
	ClassDuplicate Classification = "DUPLICATE"
	// ClassUnkeyed пустой ключ, строка исключена из статистики слияния
	ClassUnkeyed Classification = "UNKEYED"
)

// RowClassification результат классификации одной строки целевого листа
type RowClassification struct {
	Class Classification `json:"class"`
	// NormalizedKey нормализованное значение ключа строки
	NormalizedKey string `json:"normalized_key"`
	// MasterRow позиция первичной строки мастера (-1, если совпадения нет)
	MasterRow int `json:"master_row"`
	// Ambiguous признак неоднозначности: ключ встречается в мастере несколько раз
	Ambiguous bool `json:"ambiguous"`
	// Alternates количество дополнительных строк мастера с тем же ключом
	Alternates int `json:"alternates"`
}

// LookupResult итог сопоставления целевого листа с мастером
type LookupResult struct {
	// Output объединенная таблица, порядок строк совпадает с целевым листом
	Output *Table `json:"output"`
	// Classifications классификация каждой строки в порядке целевого листа
	Classifications []RowClassification `json:"classifications"`
	// UnreferencedMasterRows строки мастера, на которые не сослался ни один ключ цели
	UnreferencedMasterRows int `json:"unreferenced_master_rows"`
}

// LookupEngine соединяет целевой лист с мастером по выбранному ключу.
// Соединение левое от цели: строки мастера без соответствия в вывод не попадают.
// Без состояния: входные таблицы не изменяются
type LookupEngine struct {
	normalizer *algorithms.Normalizer
}

// NewLookupEngine создает движок сопоставления
func NewLookupEngine() *LookupEngine {
	return &LookupEngine{normalizer: algorithms.NewNormalizer("")}
}

// NewLookupEngineWithPunctuation создает движок с настроенным нормализатором ключей
func NewLookupEngineWithPunctuation(punctuation string) *LookupEngine {
	return &LookupEngine{normalizer: algorithms.NewNormalizer(punctuation)}
}

// masterEntry позиции строк мастера для одного нормализованного ключа.
// Первое вхождение первичное, последующие сохраняются для диагностики
type masterEntry struct {
	primary    int
	alternates []int
}

// Lookup классифицирует каждую строку цели как MATCH, UPDATE, INSERT,
// DUPLICATE или UNKEYED и возвращает объединенную таблицу.
// Возвращает SchemaError, если ключ или колонка значений отсутствует
// в одной из таблиц. Пустой мастер не ошибка: все ключи цели станут INSERT
func (e *LookupEngine) Lookup(master, target *Table, keyColumn string, valueColumns []string) (*LookupResult, error) {
	if !master.HasColumn(keyColumn) {
		return nil, NewSchemaError("master", keyColumn)
	}
	if !target.HasColumn(keyColumn) {
		return nil, NewSchemaError("target", keyColumn)
	}
	for _, col := range valueColumns {
		if !master.HasColumn(col) {
			return nil, NewSchemaError("master", col)
		}
		if !target.HasColumn(col) {
			return nil, NewSchemaError("target", col)
		}
	}

	// Индекс мастера: нормализованный ключ -> позиции строк.
	// Первичная позиция определяется первым вхождением, не порядком обхода map
	index := make(map[string]*masterEntry, len(master.Rows))
	for i, row := range master.Rows {
		key := e.normalizer.Normalize(row[keyColumn])
		if key == "" {
			continue
		}
		if entry, ok := index[key]; ok {
			entry.alternates = append(entry.alternates, i)
		} else {
			index[key] = &masterEntry{primary: i}
		}
	}

	output := NewTable(target.Columns)
	classifications := make([]RowClassification, 0, len(target.Rows))
	referenced := make(map[string]bool, len(index))

	for _, row := range target.Rows {
		key := e.normalizer.Normalize(row[keyColumn])

		// Пустой ключ: строка остается в выводе для наглядности,
		// но исключается из статистики слияния
		if key == "" {
			output.AppendRow(row)
			classifications = append(classifications, RowClassification{
				Class:         ClassUnkeyed,
				NormalizedKey: "",
				MasterRow:     -1,
			})
			continue
		}

		entry, found := index[key]
		if !found {
			output.AppendRow(row)
			classifications = append(classifications, RowClassification{
				Class:         ClassInsert,
				NormalizedKey: key,
				MasterRow:     -1,
			})
			continue
		}

		referenced[key] = true

		// Неоднозначный ключ: слияние не выполняется, чтобы не выбрать
		// произвольную строку мастера
		if len(entry.alternates) > 0 {
			output.AppendRow(row)
			classifications = append(classifications, RowClassification{
				Class:         ClassDuplicate,
				NormalizedKey: key,
				MasterRow:     entry.primary,
				Ambiguous:     true,
				Alternates:    len(entry.alternates),
			})
			continue
		}

		masterRow := master.Rows[entry.primary]

		// Сравниваем значения после нормализации; при расхождении
		// переносим значения мастера в указанные колонки
		equal := true
		for _, col := range valueColumns {
			if e.normalizer.Normalize(row[col]) != e.normalizer.Normalize(masterRow[col]) {
				equal = false
				break
			}
		}

		if equal {
			output.AppendRow(row)
			classifications = append(classifications, RowClassification{
				Class:         ClassMatch,
				NormalizedKey: key,
				MasterRow:     entry.primary,
			})
			continue
		}

		// Ключ и колонки вне valueColumns сохраняются из цели
		merged := make(Row, len(target.Columns))
		for _, col := range target.Columns {
			merged[col] = row[col]
		}
		for _, col := range valueColumns {
			if col == keyColumn {
				continue
			}
			merged[col] = masterRow[col]
		}

		output.AppendRow(merged)
		classifications = append(classifications, RowClassification{
			Class:         ClassUpdate,
			NormalizedKey: key,
			MasterRow:     entry.primary,
		})
	}

	// Вторичная метрика: ключи мастера, на которые цель не сослалась
	unreferenced := 0
	for key, entry := range index {
		if !referenced[key] {
			unreferenced += 1 + len(entry.alternates)
		}
	}

	return &LookupResult{
		Output:                 output,
		Classifications:        classifications,
		UnreferencedMasterRows: unreferenced,
	}, nil
}
