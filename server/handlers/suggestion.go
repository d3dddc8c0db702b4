package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bomserver/server/errors"
	"bomserver/server/services"
	"bomserver/server/types"
)

// SuggestionHandler обработчик подбора колонок
type SuggestionHandler struct {
	suggestionService *services.SuggestionService
}

// NewSuggestionHandler создает новый обработчик подбора колонок
func NewSuggestionHandler(suggestionService *services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

// HandleSuggestColumn обработчик подбора колонки по заголовку
// @Summary Подобрать колонку по заголовку
// @Description Возвращает ранжированный список колонок-кандидатов, похожих на заданный заголовок
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body types.SuggestColumnRequest true "Заголовок и кандидаты"
// @Success 200 {object} types.SuggestColumnResponse "Подсказки с оценками"
// @Failure 400 {object} middleware.ErrorResponse "Некорректный запрос"
// @Router /api/suggest-column [post]
func (h *SuggestionHandler) HandleSuggestColumn(c *gin.Context) {
	var req types.SuggestColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleServiceError(c, apperrors.NewValidationError("некорректное тело запроса", err))
		return
	}

	resp, err := h.suggestionService.Suggest(req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, resp)
}
