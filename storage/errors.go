// Package storage содержит контракт файлового источника/приемника
// и внутрипроцессный реестр таблиц, привязанных к запросам.
package storage

import "fmt"

// NotFoundError файл или таблица с указанным идентификатором отсутствует
type NotFoundError struct {
	ID string
}

// Error реализует интерфейс error
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("object %q not found", e.ID)
}

// WriteError запись в приемник не удалась (нет доступа, диск, коллаборатор).
// Повторяемость решает оркестрирующий слой, не движок
type WriteError struct {
	ID  string
	Err error
}

// Error реализует интерфейс error
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to store object %q: %v", e.ID, e.Err)
}

// Unwrap возвращает вложенную ошибку для errors.Is и errors.As
func (e *WriteError) Unwrap() error {
	return e.Err
}
