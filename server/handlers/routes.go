package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handlers набор обработчиков API
type Handlers struct {
	Upload     *UploadHandler
	Cleaning   *CleaningHandler
	Suggestion *SuggestionHandler
	Lookup     *LookupHandler
	Export     *ExportHandler
}

// RegisterRoutes регистрирует маршруты API в Gin роутере
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	startTime := time.Now()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	api := router.Group("/api")
	{
		api.POST("/upload", h.Upload.HandleUpload)
		api.POST("/preview", h.Upload.HandleSheetPreview)
		api.GET("/columns/:file_id/:sheet", h.Upload.HandleColumns)

		api.POST("/clean", h.Cleaning.HandleClean)
		api.POST("/suggest-column", h.Suggestion.HandleSuggestColumn)

		api.POST("/lookup", h.Lookup.HandleLookup)
		api.POST("/processing/preview", h.Lookup.HandleProcessingPreview)
		api.GET("/runs", h.Lookup.HandleRuns)

		api.GET("/download/:table_id", h.Export.HandleDownload)
	}
}
