package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bomserver/server/services"
)

// ExportHandler обработчик выгрузки таблиц
type ExportHandler struct {
	exportService *services.ExportService
}

// NewExportHandler создает новый обработчик выгрузки
func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// HandleDownload обработчик скачивания таблицы
// @Summary Скачать таблицу
// @Description Выгружает таблицу из реестра в CSV или XLSX (параметр format)
// @Tags export
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param table_id path string true "Идентификатор таблицы"
// @Param format query string false "Формат выгрузки: csv (по умолчанию) или xlsx"
// @Success 200 {file} file "Содержимое таблицы"
// @Failure 404 {object} middleware.ErrorResponse "Таблица не найдена"
// @Router /api/download/{table_id} [get]
func (h *ExportHandler) HandleDownload(c *gin.Context) {
	tableID := c.Param("table_id")
	format := c.DefaultQuery("format", "csv")

	switch format {
	case "csv":
		data, err := h.exportService.ExportCSV(tableID)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", tableID))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)

	case "xlsx":
		data, err := h.exportService.ExportXLSX(tableID, "Result")
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", tableID))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)

	default:
		SendJSONError(c, http.StatusBadRequest, fmt.Sprintf("неизвестный формат выгрузки: %s", format))
	}
}
