// Package bom содержит ядро обработки спецификаций (Bill of Materials):
// табличную модель данных, очистку, сопоставление по ключу и расчет KPI.
// Все операции чистые: входные таблицы не изменяются, результат всегда новый.
package bom

import "fmt"

// Row строка таблицы: отображение имени колонки в значение ячейки.
// Значения хранятся строками, пустая строка означает пустую ячейку
type Row map[string]string

// Table упорядоченная последовательность строк с общим набором колонок.
// Порядок колонок фиксирован и используется при экспорте
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// SheetRef ссылка на один лист внутри многолистового файла
type SheetRef struct {
	FileID string `json:"file_id"`
	Sheet  string `json:"sheet"`
}

// NewTable создает пустую таблицу с указанным набором колонок
func NewTable(columns []string) *Table {
	return &Table{
		Columns: append([]string(nil), columns...),
		Rows:    make([]Row, 0),
	}
}

// HasColumn проверяет наличие колонки в таблице
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// RowCount возвращает количество строк
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Get возвращает значение ячейки; отсутствующая колонка дает пустую строку
func (r Row) Get(column string) string {
	return r[column]
}

// AppendRow добавляет строку; значения колонок вне набора таблицы отбрасываются
func (t *Table) AppendRow(row Row) {
	clean := make(Row, len(t.Columns))
	for _, col := range t.Columns {
		clean[col] = row[col]
	}
	t.Rows = append(t.Rows, clean)
}

// Clone возвращает глубокую копию таблицы
func (t *Table) Clone() *Table {
	clone := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		copied := make(Row, len(row))
		for col, val := range row {
			copied[col] = val
		}
		clone.Rows = append(clone.Rows, copied)
	}
	return clone
}

// IsEmptyRow проверяет, что все ячейки строки пусты
func (t *Table) IsEmptyRow(row Row) bool {
	for _, col := range t.Columns {
		if row[col] != "" {
			return false
		}
	}
	return true
}

// String краткое описание таблицы для логов
func (t *Table) String() string {
	return fmt.Sprintf("Table(%d columns, %d rows)", len(t.Columns), len(t.Rows))
}
