package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bomserver/server/errors"
	"bomserver/server/services"
	"bomserver/server/types"
)

// CleaningHandler обработчик очистки листов
type CleaningHandler struct {
	cleaningService *services.CleaningService
}

// NewCleaningHandler создает новый обработчик очистки
func NewCleaningHandler(cleaningService *services.CleaningService) *CleaningHandler {
	return &CleaningHandler{cleaningService: cleaningService}
}

// HandleClean обработчик очистки листа
// @Summary Очистить лист спецификации
// @Description Нормализует ключевую колонку, убирает пустые строки и дубли заголовков, возвращает отчет
// @Tags cleaning
// @Accept json
// @Produce json
// @Param request body types.CleanRequest true "Параметры очистки"
// @Success 200 {object} types.CleanResponse "Результат очистки"
// @Failure 400 {object} middleware.ErrorResponse "Некорректный запрос или отсутствует ключевая колонка"
// @Failure 404 {object} middleware.ErrorResponse "Выгрузка или лист не найдены"
// @Router /api/clean [post]
func (h *CleaningHandler) HandleClean(c *gin.Context) {
	var req types.CleanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleServiceError(c, apperrors.NewValidationError("некорректное тело запроса", err))
		return
	}

	resp, err := h.cleaningService.Clean(req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, resp)
}
