package services

import (
	"bomserver/bom"
	"bomserver/importer"
	apperrors "bomserver/server/errors"
	"bomserver/storage"
)

// ExportService сервис выгрузки таблиц в CSV и XLSX
type ExportService struct {
	registry *storage.TableRegistry
}

// NewExportService создает новый сервис выгрузки
func NewExportService(registry *storage.TableRegistry) *ExportService {
	return &ExportService{registry: registry}
}

// ExportCSV выгружает таблицу в CSV (UTF-8, RFC 4180)
func (s *ExportService) ExportCSV(tableID string) ([]byte, error) {
	table, err := s.registry.Get(tableID)
	if err != nil {
		return nil, apperrors.FromDomainError(err, "таблица недоступна")
	}

	data, err := bom.ExportCSV(table)
	if err != nil {
		return nil, apperrors.WrapError(err, "не удалось сформировать CSV")
	}
	return data, nil
}

// ExportXLSX выгружает таблицу в книгу Excel с одним листом
func (s *ExportService) ExportXLSX(tableID, sheetName string) ([]byte, error) {
	table, err := s.registry.Get(tableID)
	if err != nil {
		return nil, apperrors.FromDomainError(err, "таблица недоступна")
	}

	if sheetName == "" {
		sheetName = "Result"
	}

	data, err := importer.EncodeXLSX(sheetName, table)
	if err != nil {
		return nil, apperrors.WrapError(err, "не удалось сформировать XLSX")
	}
	return data, nil
}
