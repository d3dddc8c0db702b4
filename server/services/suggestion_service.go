package services

import (
	"bomserver/normalization/algorithms"
	apperrors "bomserver/server/errors"
	"bomserver/server/types"
)

// SuggestionService сервис подбора колонок по заголовку
type SuggestionService struct {
	uploads *UploadService
	matcher *algorithms.ColumnMatcher
}

// NewSuggestionService создает новый сервис подбора колонок
func NewSuggestionService(uploads *UploadService) *SuggestionService {
	return &SuggestionService{
		uploads: uploads,
		matcher: algorithms.NewColumnMatcher(),
	}
}

// Suggest возвращает ранжированные подсказки колонок для заголовка
// Кандидаты берутся из запроса либо из колонок указанного листа
func (s *SuggestionService) Suggest(req types.SuggestColumnRequest) (*types.SuggestColumnResponse, error) {
	candidates := req.Candidates
	if len(candidates) == 0 && req.FileID != "" && req.Sheet != "" {
		columns, err := s.uploads.ListColumns(req.FileID, req.Sheet)
		if err != nil {
			return nil, err
		}
		candidates = columns.Columns
	}

	if len(candidates) == 0 {
		return nil, apperrors.NewValidationError("не заданы кандидаты: укажите candidates либо file_id и sheet", nil)
	}

	var suggestions []algorithms.ColumnSuggestion
	if req.TopN > 0 {
		suggestions = s.matcher.SuggestTopN(req.Header, candidates, req.TopN)
	} else {
		suggestions = s.matcher.Suggest(req.Header, candidates)
	}

	return &types.SuggestColumnResponse{
		Header:      req.Header,
		Suggestions: suggestions,
	}, nil
}
