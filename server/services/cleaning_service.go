package services

import (
	"bomserver/bom"
	apperrors "bomserver/server/errors"
	"bomserver/server/types"
	"bomserver/storage"
)

// CleaningService сервис очистки листов спецификаций
type CleaningService struct {
	uploads  *UploadService
	registry *storage.TableRegistry
	cleaner  *bom.Cleaner
	// defaultPunctuation набор знаков нормализатора из конфигурации сервера
	defaultPunctuation string
}

// NewCleaningService создает новый сервис очистки
func NewCleaningService(
	uploads *UploadService,
	registry *storage.TableRegistry,
	defaultPunctuation string,
) *CleaningService {
	return &CleaningService{
		uploads:            uploads,
		registry:           registry,
		cleaner:            bom.NewCleaner(),
		defaultPunctuation: defaultPunctuation,
	}
}

// Clean очищает лист и регистрирует результат в реестре таблиц
func (s *CleaningService) Clean(req types.CleanRequest) (*types.CleanResponse, error) {
	table, err := s.uploads.GetSheet(req.FileID, req.Sheet)
	if err != nil {
		return nil, err
	}

	punctuation := req.Punctuation
	if punctuation == "" {
		punctuation = s.defaultPunctuation
	}

	cleaned, report, err := s.cleaner.Clean(table, req.KeyColumn, bom.CleaningConfig{
		Punctuation: punctuation,
		TextColumns: req.TextColumns,
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err, "не удалось очистить лист")
	}

	tableID := s.registry.Register(cleaned)

	return &types.CleanResponse{
		TableID:  tableID,
		Columns:  cleaned.Columns,
		RowCount: cleaned.RowCount(),
		Report:   report,
	}, nil
}
