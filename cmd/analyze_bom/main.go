package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"bomserver/bom"
	"bomserver/importer"
)

func main() {
	keyColumn := flag.String("key", "YAZAKI PN", "ключевая колонка")
	sheet := flag.String("sheet", "", "имя листа (по умолчанию первый)")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("usage: analyze_bom [-key COLUMN] [-sheet SHEET] file.xlsx")
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read file: %v", err)
	}

	workbook, err := importer.ParseWorkbook(filepath.Base(path), data)
	if err != nil {
		log.Fatalf("Failed to parse workbook: %v", err)
	}

	sheetName := *sheet
	if sheetName == "" {
		sheetName = workbook.SheetNames[0]
	}
	table, ok := workbook.Sheets[sheetName]
	if !ok {
		log.Fatalf("Sheet %q not found, available: %v", sheetName, workbook.SheetNames)
	}

	fmt.Printf("File: %s\n", path)
	fmt.Printf("Sheets: %v\n", workbook.SheetNames)
	fmt.Printf("Sheet %q: %d rows, %d columns\n\n", sheetName, table.RowCount(), len(table.Columns))

	cleaned, report, err := bom.NewCleaner().Clean(table, *keyColumn, bom.CleaningConfig{})
	if err != nil {
		log.Fatalf("Cleaning failed: %v", err)
	}

	fmt.Println("Cleaning report:")
	fmt.Printf("  rows: %d -> %d (dropped %d empty)\n", report.OriginalRows, report.ResultRows, report.EmptyRowsDropped)
	fmt.Printf("  normalized rows: %d\n", report.RowsNormalized)
	fmt.Printf("  empty keys: %d\n", report.EmptyKeys)
	if report.HeaderCollisions > 0 {
		fmt.Printf("  header collisions resolved: %d\n", report.HeaderCollisions)
	}
	for _, rename := range report.ColumnsRenamed {
		fmt.Printf("  renamed column: %q -> %q\n", rename.From, rename.To)
	}

	// Статистика заполненности колонок после очистки
	fmt.Println("\nColumn fill rates:")
	type columnStat struct {
		name   string
		filled int
	}
	stats := make([]columnStat, 0, len(cleaned.Columns))
	for _, column := range cleaned.Columns {
		filled := 0
		for _, row := range cleaned.Rows {
			if row.Get(column) != "" {
				filled++
			}
		}
		stats = append(stats, columnStat{name: column, filled: filled})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].filled > stats[j].filled })

	for _, stat := range stats {
		percent := 0.0
		if cleaned.RowCount() > 0 {
			percent = 100.0 * float64(stat.filled) / float64(cleaned.RowCount())
		}
		fmt.Printf("  %-30s %6.1f%% (%d/%d)\n", stat.name, percent, stat.filled, cleaned.RowCount())
	}
}
