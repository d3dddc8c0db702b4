package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "bomserver/server/errors"
	"bomserver/server/services"
	"bomserver/server/types"
)

// LookupHandler обработчик сопоставления и истории запусков
type LookupHandler struct {
	lookupService  *services.LookupService
	previewService *services.PreviewService
}

// NewLookupHandler создает новый обработчик сопоставления
func NewLookupHandler(
	lookupService *services.LookupService,
	previewService *services.PreviewService,
) *LookupHandler {
	return &LookupHandler{
		lookupService:  lookupService,
		previewService: previewService,
	}
}

// HandleLookup обработчик сопоставления с мастер-данными
// @Summary Сопоставить лист с мастер-данными
// @Description Классифицирует строки (MATCH, UPDATE, INSERT, DUPLICATE, UNKEYED), объединяет значения и возвращает KPI
// @Tags lookup
// @Accept json
// @Produce json
// @Param request body types.LookupRequest true "Параметры сопоставления"
// @Success 200 {object} types.LookupResponse "Результат с KPI и ссылкой на выгрузку"
// @Failure 400 {object} middleware.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} middleware.ErrorResponse "Таблица не найдена"
// @Failure 422 {object} middleware.ErrorResponse "Колонка отсутствует в таблице"
// @Router /api/lookup [post]
func (h *LookupHandler) HandleLookup(c *gin.Context) {
	var req types.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleServiceError(c, apperrors.NewValidationError("некорректное тело запроса", err))
		return
	}

	resp, err := h.lookupService.Lookup(req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, resp)
}

// HandleProcessingPreview обработчик предварительной оценки сопоставления
// @Summary Оценить сопоставление без записи
// @Description Считает KPI, уровень риска и примеры строк каждого класса, ничего не сохраняя
// @Tags lookup
// @Accept json
// @Produce json
// @Param request body types.ProcessingPreviewRequest true "Параметры оценки"
// @Success 200 {object} types.ProcessingPreviewResponse "Сводка с примерами"
// @Failure 400 {object} middleware.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} middleware.ErrorResponse "Таблица не найдена"
// @Failure 422 {object} middleware.ErrorResponse "Колонка отсутствует в таблице"
// @Router /api/processing/preview [post]
func (h *LookupHandler) HandleProcessingPreview(c *gin.Context) {
	var req types.ProcessingPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleServiceError(c, apperrors.NewValidationError("некорректное тело запроса", err))
		return
	}

	resp, err := h.previewService.Preview(req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, resp)
}

// HandleRuns обработчик истории запусков
// @Summary История запусков сопоставления
// @Description Возвращает последние запуски с KPI, новые первыми
// @Tags lookup
// @Produce json
// @Param limit query int false "Максимум записей (по умолчанию 50)"
// @Success 200 {object} types.RunsResponse "История запусков"
// @Router /api/runs [get]
func (h *LookupHandler) HandleRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	resp, err := h.lookupService.ListRuns(limit)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, resp)
}
