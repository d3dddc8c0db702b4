package storage

import (
	"errors"
	"testing"

	"bomserver/bom"
)

// TestLocalStore_FetchStore проверяет цикл записи и чтения файла
func TestLocalStore_FetchStore(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}

	payload := []byte("PN,DESC\nA1,Wire\n")
	if err := store.Store("upload.csv", payload); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	got, err := store.Fetch("upload.csv")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Fetch() = %q, want %q", got, payload)
	}
}

// TestLocalStore_NotFound проверяет типизированную ошибку отсутствия файла
func TestLocalStore_NotFound(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}

	_, err = store.Fetch("missing.xlsx")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("ожидался *NotFoundError, получен %v", err)
	}
}

// TestLocalStore_PathEscape проверяет запрет выхода из каталога хранилища
func TestLocalStore_PathEscape(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}

	for _, id := range []string{"../escape", "/etc/passwd", "a/../../b"} {
		if _, err := store.Fetch(id); err == nil {
			t.Errorf("Fetch(%q) должен отклонять путь вне каталога", id)
		}
		if err := store.Store(id, []byte("x")); err == nil {
			t.Errorf("Store(%q) должен отклонять путь вне каталога", id)
		}
	}
}

// TestTableRegistry проверяет регистрацию и получение таблиц
func TestTableRegistry(t *testing.T) {
	registry := NewTableRegistry()

	table := bom.NewTable([]string{"PN"})
	table.AppendRow(bom.Row{"PN": "A1"})

	id := registry.Register(table)
	if id == "" {
		t.Fatal("Register() вернул пустой идентификатор")
	}

	got, err := registry.Get(id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.RowCount() != 1 || got.Rows[0]["PN"] != "A1" {
		t.Errorf("Get() вернул неожиданную таблицу: %v", got)
	}
}

// TestTableRegistry_ReturnsCopy проверяет изоляцию таблиц между запросами
func TestTableRegistry_ReturnsCopy(t *testing.T) {
	registry := NewTableRegistry()

	table := bom.NewTable([]string{"PN"})
	table.AppendRow(bom.Row{"PN": "A1"})
	id := registry.Register(table)

	first, _ := registry.Get(id)
	first.Rows[0]["PN"] = "MUTATED"

	second, _ := registry.Get(id)
	if second.Rows[0]["PN"] != "A1" {
		t.Error("изменение копии не должно влиять на реестр")
	}
}

// TestTableRegistry_NotFound проверяет ошибку для неизвестного идентификатора
func TestTableRegistry_NotFound(t *testing.T) {
	registry := NewTableRegistry()

	_, err := registry.Get("no-such-id")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("ожидался *NotFoundError, получен %v", err)
	}
}

// TestTableRegistry_Delete проверяет удаление таблицы
func TestTableRegistry_Delete(t *testing.T) {
	registry := NewTableRegistry()

	id := registry.Register(bom.NewTable([]string{"PN"}))
	registry.Delete(id)

	if _, err := registry.Get(id); err == nil {
		t.Error("таблица должна быть удалена")
	}
	if registry.Len() != 0 {
		t.Errorf("Len() = %d, want 0", registry.Len())
	}
}
