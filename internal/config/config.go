// Package config загружает и валидирует конфигурацию сервера.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"bomserver/bom"
)

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port string `json:"port"`

	// Базы данных
	ServiceDatabasePath string `json:"service_database_path"`

	// Connection pooling
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	// Хранилище загруженных файлов
	StorageDir string `json:"storage_dir"`
	// MaxUploadSizeMB ограничение размера загружаемого файла
	MaxUploadSizeMB int `json:"max_upload_size_mb"`

	// Логирование
	LogLevel string `json:"log_level"`

	// Ограничение частоты запросов
	RateLimitRPS   float64 `json:"rate_limit_rps"`
	RateLimitBurst int     `json:"rate_limit_burst"`

	// Очистка данных
	KeyPunctuation string `json:"key_punctuation"`

	// Пороги уровней риска KPI
	Risk bom.RiskThresholds `json:"risk"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	defaults := bom.DefaultRiskThresholds()

	config := &Config{
		// Сервер
		Port: getEnv("SERVER_PORT", "9999"),

		// Базы данных
		ServiceDatabasePath: getEnv("SERVICE_DATABASE_PATH", "service.db"),

		// Connection pooling
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		// Хранилище
		StorageDir:      getEnv("STORAGE_DIR", "uploads"),
		MaxUploadSizeMB: getEnvInt("MAX_UPLOAD_SIZE_MB", 50),

		// Логирование
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		// Ограничение частоты
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),

		// Очистка
		KeyPunctuation: getEnv("KEY_PUNCTUATION", ""),

		// Пороги риска
		Risk: bom.RiskThresholds{
			DuplicateHigh:   getEnvFloat("RISK_DUPLICATE_HIGH", defaults.DuplicateHigh),
			UpdateHigh:      getEnvFloat("RISK_UPDATE_HIGH", defaults.UpdateHigh),
			DuplicateMedium: getEnvFloat("RISK_DUPLICATE_MEDIUM", defaults.DuplicateMedium),
			InsertMedium:    getEnvFloat("RISK_INSERT_MEDIUM", defaults.InsertMedium),
			SmallRunChanges: getEnvInt("RISK_SMALL_RUN_CHANGES", defaults.SmallRunChanges),
		},
	}

	// Валидация
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// getEnv возвращает переменную окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt возвращает целочисленную переменную окружения
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvFloat возвращает вещественную переменную окружения
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration возвращает переменную окружения с длительностью
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
