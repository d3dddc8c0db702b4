package services

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bomserver/bom"
	"bomserver/database"
	apperrors "bomserver/server/errors"
	"bomserver/server/types"
	"bomserver/storage"
)

// DefaultRunsLimit число записей истории запусков по умолчанию
const DefaultRunsLimit = 50

// LookupService сервис сопоставления целевых листов с мастер-данными
type LookupService struct {
	registry  *storage.TableRegistry
	serviceDB *database.ServiceDB
	engine    *bom.LookupEngine
	reporter  *bom.KPIReporter
}

// NewLookupService создает новый сервис сопоставления
// punctuation — набор знаков нормализатора ключей, thresholds — пороги KPI рисков
func NewLookupService(
	registry *storage.TableRegistry,
	serviceDB *database.ServiceDB,
	punctuation string,
	thresholds bom.RiskThresholds,
) *LookupService {
	return &LookupService{
		registry:  registry,
		serviceDB: serviceDB,
		engine:    bom.NewLookupEngineWithPunctuation(punctuation),
		reporter:  bom.NewKPIReporterWithThresholds(thresholds),
	}
}

// Lookup выполняет сопоставление, считает KPI, регистрирует результат и пишет историю
func (s *LookupService) Lookup(req types.LookupRequest) (*types.LookupResponse, error) {
	master, err := s.registry.Get(req.MasterTableID)
	if err != nil {
		return nil, apperrors.FromDomainError(err, "мастер-таблица недоступна")
	}

	target, err := s.registry.Get(req.TargetTableID)
	if err != nil {
		return nil, apperrors.FromDomainError(err, "целевая таблица недоступна")
	}

	result, err := s.engine.Lookup(master, target, req.KeyColumn, req.ValueColumns)
	if err != nil {
		return nil, apperrors.FromDomainError(err, "не удалось выполнить сопоставление")
	}

	snapshot := s.reporter.Summarize(result.Classifications)
	tableID := s.registry.Register(result.Output)
	runID := uuid.New().String()

	record := database.LookupRunRecord{
		ID:           runID,
		MasterRef:    req.MasterTableID,
		TargetRef:    req.TargetTableID,
		KeyColumn:    req.KeyColumn,
		ValueColumns: req.ValueColumns,
		Snapshot:     snapshot,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.serviceDB.SaveLookupRun(record); err != nil {
		// Результат сопоставления валиден, теряется только запись истории
		slog.Warn("failed to persist lookup run",
			"run_id", runID,
			"error", err,
		)
	}

	return &types.LookupResponse{
		RunID:                  runID,
		TableID:                tableID,
		DownloadURL:            "/api/download/" + tableID,
		KPI:                    snapshot,
		UnreferencedMasterRows: result.UnreferencedMasterRows,
	}, nil
}

// ListRuns возвращает историю запусков сопоставления, новые первыми
func (s *LookupService) ListRuns(limit int) (*types.RunsResponse, error) {
	if limit <= 0 {
		limit = DefaultRunsLimit
	}

	runs, err := s.serviceDB.ListLookupRuns(limit)
	if err != nil {
		return nil, apperrors.WrapError(err, "не удалось прочитать историю запусков")
	}

	return &types.RunsResponse{
		Runs:  runs,
		Total: len(runs),
	}, nil
}
