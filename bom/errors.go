package bom

import "fmt"

// ValidationError указанная колонка или лист отсутствует в данных.
// Не повторяемая с теми же параметрами: вызывающая сторона должна исправить запрос
type ValidationError struct {
	Column string
	Reason string
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("validation failed for column %q: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// NewValidationError создает ошибку валидации параметров
func NewValidationError(column, reason string) *ValidationError {
	return &ValidationError{Column: column, Reason: reason}
}

// SchemaError колонка соединения или значений отсутствует в одной из таблиц
type SchemaError struct {
	Table  string // "master" или "target"
	Column string
}

// Error реализует интерфейс error
func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema mismatch: column %q is missing from %s table", e.Column, e.Table)
}

// NewSchemaError создает ошибку схемы соединения
func NewSchemaError(table, column string) *SchemaError {
	return &SchemaError{Table: table, Column: column}
}
