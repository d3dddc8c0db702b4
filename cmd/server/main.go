// @title BOM Server API
// @version 1.0
// @description Сервис очистки спецификаций, подбора колонок и сопоставления с мастер-данными.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:9999
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bomserver/internal/config"
	"bomserver/server"
)

func main() {
	log.Println("Запуск BOM Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	server.SetupLogger(cfg.LogLevel)

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Ошибка инициализации сервера: %v", err)
	}

	// Запускаем сервер в отдельной горутине, чтобы поймать сигналы остановки
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	case sig := <-sigChan:
		log.Printf("Получен сигнал %v, останавливаем сервер...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Ошибка остановки сервера: %v", err)
		}
	}
}
