package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/brianvoe/gofakeit/v6"

	"bomserver/bom"
	"bomserver/importer"
)

// Генератор тестовых спецификаций: мастер-лист и целевой лист с пересекающимися
// ключами, вариациями написания и дублями для проверки сопоставления

func main() {
	gofakeit.Seed(0)

	outDir := "data/testdata"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	master := bom.NewTable([]string{"YAZAKI PN", "DESCRIPTION", "PRICE", "SUPPLIER"})
	keys := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		pn := fmt.Sprintf("%s-%d", gofakeit.LetterN(2), gofakeit.Number(1000, 99999))
		keys = append(keys, pn)
		master.AppendRow(bom.Row{
			"YAZAKI PN":   pn,
			"DESCRIPTION": gofakeit.ProductName(),
			"PRICE":       fmt.Sprintf("%.2f", gofakeit.Price(1, 500)),
			"SUPPLIER":    gofakeit.Company(),
		})
	}

	target := bom.NewTable([]string{"YAZAKI PN", "PRICE", "QTY"})
	for i := 0; i < 300; i++ {
		var pn string
		switch {
		case i < 200:
			// Существующий ключ, иногда в другом написании
			pn = keys[gofakeit.Number(0, len(keys)-1)]
			if gofakeit.Bool() {
				pn = variantSpelling(pn)
			}
		case i < 280:
			// Новый ключ
			pn = fmt.Sprintf("%s-%d", gofakeit.LetterN(2), gofakeit.Number(1000, 99999))
		default:
			// Пустой ключ
			pn = ""
		}
		target.AppendRow(bom.Row{
			"YAZAKI PN": pn,
			"PRICE":     fmt.Sprintf("%.2f", gofakeit.Price(1, 500)),
			"QTY":       fmt.Sprintf("%d", gofakeit.Number(1, 100)),
		})
	}

	if err := writeXLSX(filepath.Join(outDir, "master.xlsx"), "Master", master); err != nil {
		log.Fatalf("Failed to write master dataset: %v", err)
	}
	if err := writeXLSX(filepath.Join(outDir, "target.xlsx"), "Target", target); err != nil {
		log.Fatalf("Failed to write target dataset: %v", err)
	}
	if err := writeCSV(filepath.Join(outDir, "target.csv"), target); err != nil {
		log.Fatalf("Failed to write target CSV: %v", err)
	}

	log.Printf("Generated %d master rows and %d target rows in %s", master.RowCount(), target.RowCount(), outDir)
}

// variantSpelling портит написание ключа так, чтобы нормализация его восстановила
func variantSpelling(pn string) string {
	switch gofakeit.Number(0, 2) {
	case 0:
		return " " + pn + " "
	case 1:
		return replaceHyphen(pn, " ")
	default:
		return replaceHyphen(pn, "_")
	}
}

func replaceHyphen(pn, sep string) string {
	out := make([]rune, 0, len(pn))
	for _, r := range pn {
		if r == '-' {
			out = append(out, []rune(sep)...)
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func writeXLSX(path, sheet string, table *bom.Table) error {
	data, err := importer.EncodeXLSX(sheet, table)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func writeCSV(path string, table *bom.Table) error {
	data, err := bom.ExportCSV(table)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
