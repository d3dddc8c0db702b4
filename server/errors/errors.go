package errors

import (
	"errors"
	"fmt"
	"net/http"

	"bomserver/bom"
	"bomserver/storage"
)

// AppError представляет ошибку приложения с HTTP статусом и контекстом
type AppError struct {
	Code    int    `json:"status_code"` // HTTP статус код
	Message string `json:"message"`     // Сообщение для пользователя
	Err     error  `json:"-"`           // Внутренняя ошибка для логов, не сериализуется
	Context string `json:"-"`           // Дополнительный контекст (функция, параметры)
}

// Error реализует интерфейс error
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для errors.Is и errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode возвращает HTTP статус код ошибки
func (e *AppError) StatusCode() int {
	return e.Code
}

// UserMessage возвращает сообщение для пользователя
func (e *AppError) UserMessage() string {
	return e.Message
}

// GetContext возвращает контекст ошибки
func (e *AppError) GetContext() string {
	return e.Context
}

// WithContext добавляет контекст к ошибке
func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

// NewNotFoundError создает ошибку 404 Not Found
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Err:     err,
	}
}

// NewValidationError создает ошибку 400 Bad Request
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

// NewSchemaError создает ошибку 422 Unprocessable Entity
// Используется, когда запрос корректен, но указанной колонки нет в таблице
func NewSchemaError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Err:     err,
	}
}

// NewInternalError создает ошибку 500 Internal Server Error
// Для пользователя возвращается общее сообщение, детали только в логах
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Внутренняя ошибка сервера", // Общее сообщение для пользователя
		Err:     errors.Join(errors.New(message), err), // Детали для лога
	}
}

// NewWriteError создает ошибку 502 Bad Gateway
// Используется при сбое записи во внешнее хранилище файлов
func NewWriteError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Message: message,
		Err:     err,
	}
}

// NewPayloadTooLargeError создает ошибку 413 Request Entity Too Large
func NewPayloadTooLargeError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusRequestEntityTooLarge,
		Message: message,
		Err:     err,
	}
}

// WrapError оборачивает существующую ошибку с контекстом
// Если ошибка уже AppError, добавляет контекст к сообщению. Иначе создает новую InternalError
func WrapError(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
			Context: appErr.Context,
		}
	}

	return NewInternalError(message, err)
}

// FromDomainError переводит доменные ошибки в AppError с корректным HTTP статусом:
// ValidationError -> 400, SchemaError -> 422, NotFoundError -> 404, WriteError -> 502
func FromDomainError(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var validationErr *bom.ValidationError
	if errors.As(err, &validationErr) {
		return NewValidationError(fmt.Sprintf("%s: %s", message, validationErr.Error()), err)
	}

	var schemaErr *bom.SchemaError
	if errors.As(err, &schemaErr) {
		return NewSchemaError(fmt.Sprintf("%s: %s", message, schemaErr.Error()), err)
	}

	var notFoundErr *storage.NotFoundError
	if errors.As(err, &notFoundErr) {
		return NewNotFoundError(fmt.Sprintf("%s: объект не найден", message), err)
	}

	var writeErr *storage.WriteError
	if errors.As(err, &writeErr) {
		return NewWriteError(fmt.Sprintf("%s: сбой записи в хранилище", message), err)
	}

	return WrapError(err, message)
}
