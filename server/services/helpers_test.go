package services

import (
	"errors"
	"path/filepath"
	"testing"

	"bomserver/bom"
	"bomserver/database"
	apperrors "bomserver/server/errors"
	"bomserver/storage"
)

// setupTestServiceDB создает временную служебную БД для теста
func setupTestServiceDB(t *testing.T) *database.ServiceDB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "service_test.db")
	db, err := database.NewServiceDB(path, database.DBConfig{})
	if err != nil {
		t.Fatalf("failed to create test service DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// setupUploadService собирает сервис загрузки с локальным хранилищем во временной директории
func setupUploadService(t *testing.T) *UploadService {
	t.Helper()

	store, err := storage.NewLocalStore(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("failed to create local store: %v", err)
	}

	return NewUploadService(store, store, setupTestServiceDB(t), 10)
}

// assertAppErrorStatus проверяет, что ошибка является AppError с ожидаемым статусом
func assertAppErrorStatus(t *testing.T, err error, want int) {
	t.Helper()

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.StatusCode() != want {
		t.Errorf("status = %d, want %d", appErr.StatusCode(), want)
	}
}

// makeTable строит таблицу из колонок и строк-срезов для тестов
func makeTable(columns []string, rows ...[]string) *bom.Table {
	table := bom.NewTable(columns)
	for _, values := range rows {
		row := bom.Row{}
		for i, column := range columns {
			if i < len(values) {
				row[column] = values[i]
			}
		}
		table.AppendRow(row)
	}
	return table
}
