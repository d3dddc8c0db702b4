package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bomserver/bom"
	"bomserver/server/types"
	"bomserver/storage"
)

// TestLookupService_Lookup проверяет полный прогон сопоставления с записью истории
func TestLookupService_Lookup(t *testing.T) {
	registry := storage.NewTableRegistry()
	serviceDB := setupTestServiceDB(t)
	service := NewLookupService(registry, serviceDB, "", bom.DefaultRiskThresholds())

	master := makeTable(
		[]string{"PN", "PRICE"},
		[]string{"AB-12", "100"},
		[]string{"CD-34", "200"},
	)
	target := makeTable(
		[]string{"PN", "PRICE", "QTY"},
		[]string{"ab 12", "100", "5"}, // совпадает после нормализации
		[]string{"CD-34", "150", "3"}, // цена обновится из мастера
		[]string{"XY-99", "999", "1"}, // нет в мастере
	)

	masterID := registry.Register(master)
	targetID := registry.Register(target)

	resp, err := service.Lookup(types.LookupRequest{
		MasterTableID: masterID,
		TargetTableID: targetID,
		KeyColumn:     "PN",
		ValueColumns:  []string{"PRICE"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.KPI.Matches)
	assert.Equal(t, 1, resp.KPI.Updates)
	assert.Equal(t, 1, resp.KPI.Inserts)
	assert.Equal(t, 3, resp.KPI.Total)
	assert.Equal(t, "/api/download/"+resp.TableID, resp.DownloadURL)

	output, err := registry.Get(resp.TableID)
	require.NoError(t, err)
	require.Equal(t, 3, output.RowCount())
	assert.Equal(t, "200", output.Rows[1].Get("PRICE"), "updated row should carry master price")
	assert.Equal(t, "3", output.Rows[1].Get("QTY"), "non-value columns stay from target")

	runs, err := service.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs.Runs, 1)
	assert.Equal(t, resp.RunID, runs.Runs[0].ID)
	assert.Equal(t, "PN", runs.Runs[0].KeyColumn)
	assert.Equal(t, resp.KPI.Total, runs.Runs[0].Snapshot.Total)
}

// TestLookupService_Lookup_MissingColumn проверяет 422 при отсутствии колонки
func TestLookupService_Lookup_MissingColumn(t *testing.T) {
	registry := storage.NewTableRegistry()
	service := NewLookupService(registry, setupTestServiceDB(t), "", bom.DefaultRiskThresholds())

	masterID := registry.Register(makeTable([]string{"PN"}, []string{"AB-12"}))
	targetID := registry.Register(makeTable([]string{"PN"}, []string{"AB-12"}))

	_, err := service.Lookup(types.LookupRequest{
		MasterTableID: masterID,
		TargetTableID: targetID,
		KeyColumn:     "PN",
		ValueColumns:  []string{"PRICE"},
	})
	require.Error(t, err)
	assertAppErrorStatus(t, err, 422)
}

// TestLookupService_Lookup_UnknownTable проверяет 404 для неизвестной таблицы
func TestLookupService_Lookup_UnknownTable(t *testing.T) {
	registry := storage.NewTableRegistry()
	service := NewLookupService(registry, setupTestServiceDB(t), "", bom.DefaultRiskThresholds())

	_, err := service.Lookup(types.LookupRequest{
		MasterTableID: "missing",
		TargetTableID: "missing",
		KeyColumn:     "PN",
		ValueColumns:  []string{"PRICE"},
	})
	require.Error(t, err)
	assertAppErrorStatus(t, err, 404)
}
