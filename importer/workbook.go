// Package importer декодирует загруженные файлы спецификаций
// (xlsx и csv) в табличную модель ядра.
package importer

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"

	"bomserver/bom"
)

// Workbook многолистовой файл, декодированный в таблицы
type Workbook struct {
	Filename string
	// SheetNames порядок листов в исходном файле
	SheetNames []string
	Sheets     map[string]*bom.Table
}

// keyAliases известные варианты написания ключевой колонки,
// автоматически приводимые к каноническому имени при импорте
var keyAliases = map[string]string{
	"yazaki pn": "YAZAKI PN",
	"yazaki_pn": "YAZAKI PN",
	"yazakipn":  "YAZAKI PN",
}

// ParseWorkbook декодирует файл по содержимому: xlsx через excelize,
// csv через encoding/csv с поддержкой legacy-кодировок
func ParseWorkbook(filename string, data []byte) (*Workbook, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		table, err := parseCSV(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV file: %w", err)
		}
		return &Workbook{
			Filename:   filename,
			SheetNames: []string{"Sheet1"},
			Sheets:     map[string]*bom.Table{"Sheet1": table},
		}, nil
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetNames := f.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	workbook := &Workbook{
		Filename:   filename,
		SheetNames: sheetNames,
		Sheets:     make(map[string]*bom.Table, len(sheetNames)),
	}

	for _, name := range sheetNames {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get rows of sheet %q: %w", name, err)
		}
		workbook.Sheets[name] = rowsToTable(rows)
	}

	return workbook, nil
}

// rowsToTable строит таблицу из сырых строк листа.
// Первая строка считается заголовками, известные псевдонимы
// ключевой колонки приводятся к каноническому имени
func rowsToTable(rows [][]string) *bom.Table {
	if len(rows) == 0 {
		return bom.NewTable(nil)
	}

	headers := fixHeaderAliases(rows[0])
	table := bom.NewTable(headers)

	for _, raw := range rows[1:] {
		row := make(bom.Row, len(headers))
		for i, col := range headers {
			if i < len(raw) {
				row[col] = raw[i]
			} else {
				// Excel обрезает хвостовые пустые ячейки
				row[col] = ""
			}
		}
		table.AppendRow(row)
	}

	return table
}

// fixHeaderAliases приводит известные варианты ключевой колонки к каноническому имени
func fixHeaderAliases(headers []string) []string {
	fixed := make([]string, len(headers))
	changes := make([]string, 0)

	for i, header := range headers {
		normalized := strings.ToLower(strings.TrimSpace(header))
		if canonical, ok := keyAliases[normalized]; ok && header != canonical {
			fixed[i] = canonical
			changes = append(changes, fmt.Sprintf("%q -> %q", header, canonical))
			continue
		}
		fixed[i] = header
	}

	if len(changes) > 0 {
		log.Printf("Auto-fixed column names: %s", strings.Join(changes, ", "))
	}

	return fixed
}
