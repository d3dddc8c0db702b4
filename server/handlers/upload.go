package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bomserver/server/errors"
	"bomserver/server/services"
	"bomserver/server/types"
)

// UploadHandler обработчик загрузки и предпросмотра файлов спецификаций
type UploadHandler struct {
	uploadService *services.UploadService
}

// NewUploadHandler создает новый обработчик загрузки файлов
func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// HandleUpload обработчик загрузки файла спецификации
// @Summary Загрузить файл спецификации
// @Description Принимает xlsx или csv файл, разбирает листы и возвращает идентификатор выгрузки
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл спецификации (xlsx или csv)"
// @Success 200 {object} types.UploadResponse "Сведения о выгрузке"
// @Failure 400 {object} middleware.ErrorResponse "Некорректный файл"
// @Failure 413 {object} middleware.ErrorResponse "Файл слишком большой"
// @Router /api/upload [post]
func (h *UploadHandler) HandleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		HandleServiceError(c, apperrors.NewValidationError("поле file обязательно", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		HandleServiceError(c, apperrors.NewValidationError("не удалось открыть файл", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		HandleServiceError(c, apperrors.WrapError(err, "не удалось прочитать файл"))
		return
	}

	resp, err := h.uploadService.ProcessUpload(fileHeader.Filename, data)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, resp)
}

// HandleColumns обработчик списка колонок листа
// @Summary Получить колонки листа
// @Description Возвращает заголовки колонок указанного листа выгрузки
// @Tags uploads
// @Produce json
// @Param file_id path string true "Идентификатор выгрузки"
// @Param sheet path string true "Имя листа"
// @Success 200 {object} types.ColumnsResponse "Колонки листа"
// @Failure 404 {object} middleware.ErrorResponse "Выгрузка или лист не найдены"
// @Router /api/columns/{file_id}/{sheet} [get]
func (h *UploadHandler) HandleColumns(c *gin.Context) {
	resp, err := h.uploadService.ListColumns(c.Param("file_id"), c.Param("sheet"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, resp)
}

// HandleSheetPreview обработчик предпросмотра листа
// @Summary Предпросмотр листа
// @Description Возвращает первые строки листа выгрузки
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body types.SheetPreviewRequest true "Параметры предпросмотра"
// @Success 200 {object} types.SheetPreviewResponse "Строки предпросмотра"
// @Failure 400 {object} middleware.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} middleware.ErrorResponse "Выгрузка или лист не найдены"
// @Router /api/preview [post]
func (h *UploadHandler) HandleSheetPreview(c *gin.Context) {
	var req types.SheetPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleServiceError(c, apperrors.NewValidationError("некорректное тело запроса", err))
		return
	}

	resp, err := h.uploadService.PreviewSheet(req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, resp)
}
