package services

import (
	"bomserver/bom"
	apperrors "bomserver/server/errors"
	"bomserver/server/types"
	"bomserver/storage"
)

// DefaultPreviewExamples предел примеров на класс в предварительной оценке
const DefaultPreviewExamples = 5

// PreviewService сервис предварительной оценки сопоставления
// Выполняет тот же прогон, что и LookupService, но ничего не сохраняет
type PreviewService struct {
	registry *storage.TableRegistry
	engine   *bom.LookupEngine
	reporter *bom.KPIReporter
}

// NewPreviewService создает новый сервис предварительной оценки
func NewPreviewService(
	registry *storage.TableRegistry,
	punctuation string,
	thresholds bom.RiskThresholds,
) *PreviewService {
	return &PreviewService{
		registry: registry,
		engine:   bom.NewLookupEngineWithPunctuation(punctuation),
		reporter: bom.NewKPIReporterWithThresholds(thresholds),
	}
}

// Preview считает KPI и собирает примеры строк каждого класса без записи результата
func (s *PreviewService) Preview(req types.ProcessingPreviewRequest) (*types.ProcessingPreviewResponse, error) {
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

	maxExamples := req.MaxExamples
	if maxExamples <= 0 {
		maxExamples = DefaultPreviewExamples
	}

	examples := make(map[string][]types.PreviewExample)
	for i, classification := range result.Classifications {
		class := string(classification.Class)
		if len(examples[class]) >= maxExamples {
			continue
		}
		examples[class] = append(examples[class], types.PreviewExample{
			RowIndex:      i,
			NormalizedKey: classification.NormalizedKey,
			KeyValue:      target.Rows[i].Get(req.KeyColumn),
		})
	}

	return &types.ProcessingPreviewResponse{
		KPI:                    s.reporter.Summarize(result.Classifications),
		Examples:               examples,
		UnreferencedMasterRows: result.UnreferencedMasterRows,
	}, nil
}
