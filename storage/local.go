package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSource источник файлов: отдает содержимое по идентификатору.
// Реализации: локальный каталог; внешний транспорт (SharePoint)
// подключается оркестрирующим слоем через тот же контракт
type FileSource interface {
	Fetch(id string) ([]byte, error)
}

// FileSink приемник файлов: сохраняет содержимое по идентификатору
type FileSink interface {
	Store(id string, data []byte) error
}

// LocalStore файловый источник и приемник поверх локального каталога
type LocalStore struct {
	dir string
}

// NewLocalStore создает хранилище в указанном каталоге, создавая его при необходимости
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Fetch читает файл; отсутствие файла дает NotFoundError
func (s *LocalStore) Fetch(id string) ([]byte, error) {
	path, err := s.resolve(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to read %q: %w", id, err)
	}
	return data, nil
}

// Store записывает файл; отказ записи дает WriteError
func (s *LocalStore) Store(id string, data []byte) error {
	path, err := s.resolve(id)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{ID: id, Err: err}
	}
	return nil
}

// resolve строит путь внутри каталога, запрещая выход из него
func (s *LocalStore) resolve(id string) (string, error) {
	clean := filepath.Clean(id)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", &NotFoundError{ID: id}
	}
	return filepath.Join(s.dir, clean), nil
}
