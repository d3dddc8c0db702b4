package importer

import (
	"strings"
	"testing"

	"bomserver/bom"
)

// TestParseWorkbook_CSV проверяет декодирование CSV в таблицу
func TestParseWorkbook_CSV(t *testing.T) {
	data := []byte("PN,DESC,QTY\nA1,Wire,3\nB2,\"Clip, 5mm\",1\n")

	wb, err := ParseWorkbook("parts.csv", data)
	if err != nil {
		t.Fatalf("ParseWorkbook() error = %v", err)
	}

	if len(wb.SheetNames) != 1 || wb.SheetNames[0] != "Sheet1" {
		t.Errorf("SheetNames = %v, want [Sheet1]", wb.SheetNames)
	}

	table := wb.Sheets["Sheet1"]
	if table.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", table.RowCount())
	}
	if got := table.Rows[1]["DESC"]; got != "Clip, 5mm" {
		t.Errorf("экранированное значение = %q, want \"Clip, 5mm\"", got)
	}
}

// TestParseWorkbook_CSV_RaggedRows проверяет выравнивание рваных строк по заголовкам
func TestParseWorkbook_CSV_RaggedRows(t *testing.T) {
	data := []byte("PN,DESC,QTY\nA1,Wire\n")

	wb, err := ParseWorkbook("parts.csv", data)
	if err != nil {
		t.Fatalf("ParseWorkbook() error = %v", err)
	}

	row := wb.Sheets["Sheet1"].Rows[0]
	if row["QTY"] != "" {
		t.Errorf("недостающая ячейка = %q, want пустая строка", row["QTY"])
	}
}

// TestParseWorkbook_CSV_Windows1251 проверяет перекодировку legacy-кодировки
func TestParseWorkbook_CSV_Windows1251(t *testing.T) {
	// "PN,DESC\nA1,Провод" в Windows-1251
	data := []byte{
		'P', 'N', ',', 'D', 'E', 'S', 'C', '\n',
		'A', '1', ',', 0xCF, 0xF0, 0xEE, 0xE2, 0xEE, 0xE4, '\n',
	}

	wb, err := ParseWorkbook("parts.csv", data)
	if err != nil {
		t.Fatalf("ParseWorkbook() error = %v", err)
	}

	if got := wb.Sheets["Sheet1"].Rows[0]["DESC"]; got != "Провод" {
		t.Errorf("перекодированное значение = %q, want \"Провод\"", got)
	}
}

// TestCyrillicRatio проверяет, что знаки между латинскими регистрами не считаются буквами
func TestCyrillicRatio(t *testing.T) {
	if got := cyrillicRatio([]byte("[\\]^_`")); got != 0.0 {
		t.Errorf("cyrillicRatio знаков пунктуации = %f, want 0.0", got)
	}

	// Пунктуация из ASCII-диапазона между Z и a не должна размывать долю кириллицы
	if got := cyrillicRatio([]byte("PN_[1]_Провод")); got <= 0.5 {
		t.Errorf("cyrillicRatio = %f, ожидалась > 0.5", got)
	}
}

// TestParseWorkbook_KeyAliases проверяет приведение псевдонимов ключевой колонки
func TestParseWorkbook_KeyAliases(t *testing.T) {
	data := []byte("Yazaki_PN,DESC\nA1,Wire\n")

	wb, err := ParseWorkbook("parts.csv", data)
	if err != nil {
		t.Fatalf("ParseWorkbook() error = %v", err)
	}

	table := wb.Sheets["Sheet1"]
	if !table.HasColumn("YAZAKI PN") {
		t.Errorf("псевдоним не приведен к каноническому имени: %v", table.Columns)
	}
}

// TestEncodeXLSX_RoundTrip проверяет кодирование и обратное декодирование xlsx
func TestEncodeXLSX_RoundTrip(t *testing.T) {
	table := bom.NewTable([]string{"PN", "DESC"})
	table.AppendRow(bom.Row{"PN": "A1", "DESC": "Wire"})
	table.AppendRow(bom.Row{"PN": "B2", "DESC": "Clip"})

	data, err := EncodeXLSX("Master", table)
	if err != nil {
		t.Fatalf("EncodeXLSX() error = %v", err)
	}

	wb, err := ParseWorkbook("master.xlsx", data)
	if err != nil {
		t.Fatalf("ParseWorkbook() error = %v", err)
	}

	if len(wb.SheetNames) != 1 || wb.SheetNames[0] != "Master" {
		t.Fatalf("SheetNames = %v, want [Master]", wb.SheetNames)
	}

	decoded := wb.Sheets["Master"]
	if decoded.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", decoded.RowCount())
	}
	if decoded.Rows[0]["PN"] != "A1" || decoded.Rows[1]["DESC"] != "Clip" {
		t.Errorf("данные после перекодирования: %v", decoded.Rows)
	}
}

// TestParseWorkbook_EmptyXLSXData проверяет ошибку для битого файла
func TestParseWorkbook_EmptyXLSXData(t *testing.T) {
	_, err := ParseWorkbook("broken.xlsx", []byte("not an xlsx"))
	if err == nil {
		t.Fatal("ожидалась ошибка для битого файла")
	}
	if !strings.Contains(err.Error(), "failed to open Excel file") {
		t.Errorf("неожиданный текст ошибки: %v", err)
	}
}
