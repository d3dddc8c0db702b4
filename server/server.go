package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"

	"bomserver/database"
	"bomserver/internal/config"
	"bomserver/server/handlers"
	"bomserver/server/middleware"
	"bomserver/server/services"
	"bomserver/storage"
)

// Server HTTP сервер обработки спецификаций
type Server struct {
	config     *config.Config
	serviceDB  *database.ServiceDB
	store      *storage.LocalStore
	registry   *storage.TableRegistry
	httpServer *http.Server
}

// NewServer создает сервер со всеми зависимостями
func NewServer(cfg *config.Config) (*Server, error) {
	serviceDB, err := database.NewServiceDB(cfg.ServiceDatabasePath, database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open service database: %w", err)
	}

	store, err := storage.NewLocalStore(cfg.StorageDir)
	if err != nil {
		serviceDB.Close()
		return nil, fmt.Errorf("failed to init file storage: %w", err)
	}

	return &Server{
		config:    cfg,
		serviceDB: serviceDB,
		store:     store,
		registry:  storage.NewTableRegistry(),
	}, nil
}

// buildRouter собирает Gin роутер с middleware и маршрутами
func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinRateLimitMiddleware(s.config.RateLimitRPS, s.config.RateLimitBurst))

	uploadService := services.NewUploadService(s.store, s.store, s.serviceDB, s.config.MaxUploadSizeMB)
	cleaningService := services.NewCleaningService(uploadService, s.registry, s.config.KeyPunctuation)
	suggestionService := services.NewSuggestionService(uploadService)
	lookupService := services.NewLookupService(s.registry, s.serviceDB, s.config.KeyPunctuation, s.config.Risk)
	previewService := services.NewPreviewService(s.registry, s.config.KeyPunctuation, s.config.Risk)
	exportService := services.NewExportService(s.registry)

	handlers.RegisterRoutes(router, &handlers.Handlers{
		Upload:     handlers.NewUploadHandler(uploadService),
		Cleaning:   handlers.NewCleaningHandler(cleaningService),
		Suggestion: handlers.NewSuggestionHandler(suggestionService),
		Lookup:     handlers.NewLookupHandler(lookupService, previewService),
		Export:     handlers.NewExportHandler(exportService),
	})
	handlers.RegisterSwaggerRoutes(router, s.config.Port)

	return router
}

// Start запускает HTTP сервер
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.buildRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // Выгрузка больших таблиц может быть долгой
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Сервер запускается на порту %s", s.config.Port)
	log.Printf("API доступно по адресу: http://localhost%s", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server on %s: %w", addr, err)
	}

	return nil
}

// Shutdown останавливает сервер и закрывает ресурсы
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Initiating graceful shutdown...")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("ошибка остановки сервера: %w", err)
		}
	}

	if err := s.serviceDB.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия служебной БД: %w", err)
	}

	log.Println("Graceful shutdown completed")
	return nil
}
