package bom

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// ExportCSV кодирует таблицу в CSV (UTF-8, разделитель запятая).
// Значения с разделителем, переводом строки или кавычкой экранируются
// по правилам RFC 4180 средствами encoding/csv.
// Порядок строк и колонок воспроизводим
func ExportCSV(table *Table) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(table.Columns))
	for i, row := range table.Rows {
		for j, col := range table.Columns {
			record[j] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}
