package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bomserver/bom"
	"bomserver/database"
	"bomserver/importer"
	apperrors "bomserver/server/errors"
	"bomserver/server/types"
	"bomserver/storage"
)

// DefaultPreviewRows число строк предпросмотра листа по умолчанию
const DefaultPreviewRows = 20

// UploadService сервис загрузки и чтения файлов спецификаций
type UploadService struct {
	source         storage.FileSource
	sink           storage.FileSink
	serviceDB      *database.ServiceDB
	maxUploadBytes int
}

// NewUploadService создает новый сервис загрузки файлов
func NewUploadService(
	source storage.FileSource,
	sink storage.FileSink,
	serviceDB *database.ServiceDB,
	maxUploadSizeMB int,
) *UploadService {
	return &UploadService{
		source:         source,
		sink:           sink,
		serviceDB:      serviceDB,
		maxUploadBytes: maxUploadSizeMB * 1024 * 1024,
	}
}

// ProcessUpload разбирает файл, сохраняет его в хранилище и регистрирует выгрузку
func (s *UploadService) ProcessUpload(filename string, data []byte) (*types.UploadResponse, error) {
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("пустой файл", nil)
	}
	if s.maxUploadBytes > 0 && len(data) > s.maxUploadBytes {
		return nil, apperrors.NewPayloadTooLargeError(
			fmt.Sprintf("файл превышает лимит %d МБ", s.maxUploadBytes/(1024*1024)), nil)
	}

	workbook, err := importer.ParseWorkbook(filename, data)
	if err != nil {
		return nil, apperrors.NewValidationError("не удалось разобрать файл спецификации", err)
	}

	fileID := uuid.New().String()

	if err := s.sink.Store(fileID, data); err != nil {
		return nil, apperrors.FromDomainError(err, "не удалось сохранить файл")
	}

	record := database.UploadRecord{
		ID:         fileID,
		Filename:   filename,
		SheetNames: workbook.SheetNames,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.serviceDB.SaveUpload(record); err != nil {
		return nil, apperrors.WrapError(err, "не удалось записать сведения о выгрузке")
	}

	return &types.UploadResponse{
		FileID:     fileID,
		Filename:   filename,
		SheetNames: workbook.SheetNames,
		UploadedAt: record.UploadedAt,
	}, nil
}

// GetSheet возвращает лист выгрузки в виде таблицы
func (s *UploadService) GetSheet(fileID, sheet string) (*bom.Table, error) {
	record, err := s.serviceDB.GetUpload(fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("выгрузка не найдена", err)
		}
		return nil, apperrors.WrapError(err, "не удалось прочитать сведения о выгрузке")
	}

	data, err := s.source.Fetch(fileID)
	if err != nil {
		return nil, apperrors.FromDomainError(err, "не удалось прочитать файл")
	}

	workbook, err := importer.ParseWorkbook(record.Filename, data)
	if err != nil {
		return nil, apperrors.WrapError(err, "не удалось разобрать сохраненный файл")
	}

	table, ok := workbook.Sheets[sheet]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("лист %q не найден", sheet), nil)
	}

	return table, nil
}

// ListColumns возвращает колонки листа
func (s *UploadService) ListColumns(fileID, sheet string) (*types.ColumnsResponse, error) {
	table, err := s.GetSheet(fileID, sheet)
	if err != nil {
		return nil, err
	}

	return &types.ColumnsResponse{
		FileID:  fileID,
		Sheet:   sheet,
		Columns: table.Columns,
	}, nil
}

// PreviewSheet возвращает первые строки листа для предпросмотра
func (s *UploadService) PreviewSheet(req types.SheetPreviewRequest) (*types.SheetPreviewResponse, error) {
	table, err := s.GetSheet(req.FileID, req.Sheet)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultPreviewRows
	}
	if limit > len(table.Rows) {
		limit = len(table.Rows)
	}

	return &types.SheetPreviewResponse{
		FileID:    req.FileID,
		Sheet:     req.Sheet,
		Columns:   table.Columns,
		Rows:      table.Rows[:limit],
		TotalRows: len(table.Rows),
	}, nil
}
