package bom

import (
	"strings"
	"testing"
)

// TestExportCSV проверяет кодирование таблицы в CSV
func TestExportCSV(t *testing.T) {
	table := NewTable([]string{"PN", "DESC"})
	table.AppendRow(Row{"PN": "A1", "DESC": "Wire"})
	table.AppendRow(Row{"PN": "B2", "DESC": `Clip, 5mm "special"`})
	table.AppendRow(Row{"PN": "C3", "DESC": "multi\nline"})

	data, err := ExportCSV(table)
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	got := string(data)
	if !strings.HasPrefix(got, "PN,DESC\n") {
		t.Errorf("отсутствует строка заголовков: %q", got)
	}
	// Запятая и кавычки экранируются по RFC 4180
	if !strings.Contains(got, `"Clip, 5mm ""special"""`) {
		t.Errorf("значение с запятой и кавычками не экранировано: %q", got)
	}
	if !strings.Contains(got, "\"multi\nline\"") {
		t.Errorf("значение с переводом строки не экранировано: %q", got)
	}
}

// TestExportCSV_EmptyTable проверяет экспорт пустой таблицы
func TestExportCSV_EmptyTable(t *testing.T) {
	data, err := ExportCSV(NewTable([]string{"PN"}))
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	if string(data) != "PN\n" {
		t.Errorf("экспорт пустой таблицы = %q, want \"PN\\n\"", string(data))
	}
}
