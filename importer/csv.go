package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"bomserver/bom"
)

// parseCSV декодирует CSV в таблицу. Файлы не в UTF-8
// прозрачно перекодируются из Windows-1252 либо Windows-1251
func parseCSV(data []byte) (*bom.Table, error) {
	decoded, err := decodeToUTF8(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1 // допускаем рваные строки, выравниваем по заголовкам

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		rows = append(rows, record)
	}

	return rowsToTable(rows), nil
}

// decodeToUTF8 возвращает данные в UTF-8, перекодируя legacy-кодировки.
// Выбор между 1252 и 1251 по доле кириллицы в результате
func decodeToUTF8(data []byte) ([]byte, error) {
	// Срезаем BOM-маркер, если есть
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	if utf8.Valid(data) {
		return data, nil
	}

	win1251, err1251 := transformBytes(data, charmap.Windows1251)
	win1252, err1252 := transformBytes(data, charmap.Windows1252)

	switch {
	case err1251 == nil && err1252 == nil:
		if cyrillicRatio(win1251) > 0.2 {
			return win1251, nil
		}
		return win1252, nil
	case err1251 == nil:
		return win1251, nil
	case err1252 == nil:
		return win1252, nil
	default:
		return nil, fmt.Errorf("failed to decode CSV encoding: %w", err1252)
	}
}

// transformBytes перекодирует данные указанной кодовой страницей
func transformBytes(data []byte, cm *charmap.Charmap) ([]byte, error) {
	result, _, err := transform.Bytes(cm.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("charmap decode failed: %w", err)
	}
	return result, nil
}

// cyrillicRatio доля кириллических рун среди буквенных
func cyrillicRatio(data []byte) float64 {
	letters, cyrillic := 0, 0
	for _, r := range string(data) {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			letters++
		}
		if r >= 'А' && r <= 'я' || r == 'ё' || r == 'Ё' {
			letters++
			cyrillic++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(cyrillic) / float64(letters)
}
