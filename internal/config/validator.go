package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	// Валидация пути к базе данных
	if c.ServiceDatabasePath == "" {
		errors = append(errors, "service database path is required")
	}

	// Валидация connection pooling
	if c.MaxOpenConns < 1 {
		errors = append(errors, "max open connections must be at least 1")
	}
	if c.MaxIdleConns < 1 {
		errors = append(errors, "max idle connections must be at least 1")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errors = append(errors, "max idle connections cannot be greater than max open connections")
	}
	if c.ConnMaxLifetime < time.Second {
		errors = append(errors, "connection max lifetime must be at least 1 second")
	}

	// Валидация хранилища
	if c.StorageDir == "" {
		errors = append(errors, "storage directory is required")
	}
	if c.MaxUploadSizeMB < 1 {
		errors = append(errors, "max upload size must be at least 1 MB")
	}

	// Валидация ограничения частоты
	if c.RateLimitRPS <= 0 {
		errors = append(errors, "rate limit RPS must be positive")
	}
	if c.RateLimitBurst < 1 {
		errors = append(errors, "rate limit burst must be at least 1")
	}

	// Валидация порогов риска
	for name, value := range map[string]float64{
		"risk duplicate high threshold":   c.Risk.DuplicateHigh,
		"risk update high threshold":      c.Risk.UpdateHigh,
		"risk duplicate medium threshold": c.Risk.DuplicateMedium,
		"risk insert medium threshold":    c.Risk.InsertMedium,
	} {
		if value < 0 || value > 1 {
			errors = append(errors, fmt.Sprintf("%s must be between 0 and 1", name))
		}
	}
	if c.Risk.DuplicateMedium > c.Risk.DuplicateHigh {
		errors = append(errors, "risk duplicate medium threshold cannot exceed high threshold")
	}
	if c.Risk.SmallRunChanges < 0 {
		errors = append(errors, "risk small run changes threshold cannot be negative")
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}
