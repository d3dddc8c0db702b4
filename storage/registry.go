package storage

import (
	"sync"

	"github.com/google/uuid"

	"bomserver/bom"
)

// TableRegistry внутрипроцессный реестр таблиц по идентификаторам.
// Заменяет глобальное состояние "текущего файла": каждая таблица
// явно привязана к идентификатору, выданному на время запроса.
// Безопасен для параллельных запросов
type TableRegistry struct {
	mu     sync.RWMutex
	tables map[string]*bom.Table
}

// NewTableRegistry создает пустой реестр
func NewTableRegistry() *TableRegistry {
	return &TableRegistry{tables: make(map[string]*bom.Table)}
}

// Register сохраняет таблицу и возвращает новый идентификатор
func (r *TableRegistry) Register(table *bom.Table) string {
	id := uuid.New().String()
	r.mu.Lock()
	r.tables[id] = table
	r.mu.Unlock()
	return id
}

// Put сохраняет таблицу под заданным идентификатором
func (r *TableRegistry) Put(id string, table *bom.Table) {
	r.mu.Lock()
	r.tables[id] = table
	r.mu.Unlock()
}

// Get возвращает таблицу; отсутствие дает NotFoundError.
// Возвращается копия: зарегистрированные таблицы не алиасятся между запросами
func (r *TableRegistry) Get(id string) (*bom.Table, error) {
	r.mu.RLock()
	table, ok := r.tables[id]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return table.Clone(), nil
}

// Delete удаляет таблицу из реестра
func (r *TableRegistry) Delete(id string) {
	r.mu.Lock()
	delete(r.tables, id)
	r.mu.Unlock()
}

// Len возвращает количество зарегистрированных таблиц
func (r *TableRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}
