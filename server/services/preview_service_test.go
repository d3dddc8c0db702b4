package services

import (
	"testing"

	"bomserver/bom"
	"bomserver/server/types"
	"bomserver/storage"
)

// TestPreviewService_Preview проверяет сводку и примеры без записи результата
func TestPreviewService_Preview(t *testing.T) {
	registry := storage.NewTableRegistry()
	service := NewPreviewService(registry, "", bom.DefaultRiskThresholds())

	master := makeTable(
		[]string{"PN", "PRICE"},
		[]string{"AB-12", "100"},
	)
	target := makeTable(
		[]string{"PN", "PRICE"},
		[]string{"AB-12", "100"},
		[]string{"XY-99", "50"},
		[]string{"XY-98", "60"},
		[]string{"", "70"},
	)

	masterID := registry.Register(master)
	targetID := registry.Register(target)
	registered := registry.Len()

	resp, err := service.Preview(types.ProcessingPreviewRequest{
		MasterTableID: masterID,
		TargetTableID: targetID,
		KeyColumn:     "PN",
		ValueColumns:  []string{"PRICE"},
		MaxExamples:   1,
	})
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	if resp.KPI.Matches != 1 || resp.KPI.Inserts != 2 || resp.KPI.Unkeyed != 1 {
		t.Errorf("KPI = %+v", resp.KPI)
	}

	// Примеры ограничены MaxExamples на класс
	inserts := resp.Examples[string(bom.ClassInsert)]
	if len(inserts) != 1 {
		t.Fatalf("insert examples = %d, want 1", len(inserts))
	}
	if inserts[0].KeyValue != "XY-99" {
		t.Errorf("first insert example key = %q, want XY-99", inserts[0].KeyValue)
	}

	// Предпросмотр не регистрирует новых таблиц
	if registry.Len() != registered {
		t.Errorf("registry grew from %d to %d, preview must not persist", registered, registry.Len())
	}
}

// TestPreviewService_Preview_UnknownTable проверяет 404 для неизвестной таблицы
func TestPreviewService_Preview_UnknownTable(t *testing.T) {
	service := NewPreviewService(storage.NewTableRegistry(), "", bom.DefaultRiskThresholds())

	_, err := service.Preview(types.ProcessingPreviewRequest{
		MasterTableID: "missing",
		TargetTableID: "missing",
		KeyColumn:     "PN",
		ValueColumns:  []string{"PRICE"},
	})
	if err == nil {
		t.Fatal("expected error for unknown table")
	}
	assertAppErrorStatus(t, err, 404)
}
