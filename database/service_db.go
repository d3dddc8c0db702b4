// Package database содержит сервисную базу данных приложения:
// реестр загрузок и историю прогонов сопоставления.
package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"bomserver/bom"
)

// DBConfig конфигурация подключения к БД
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ServiceDB обертка для работы с сервисной базой данных
type ServiceDB struct {
	conn *sql.DB
}

// UploadRecord запись реестра о загруженном файле
type UploadRecord struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	SheetNames []string  `json:"sheet_names"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// LookupRunRecord запись истории о прогоне сопоставления
type LookupRunRecord struct {
	ID           string          `json:"id"`
	MasterRef    string          `json:"master_ref"`
	TargetRef    string          `json:"target_ref"`
	KeyColumn    string          `json:"key_column"`
	ValueColumns []string        `json:"value_columns"`
	Snapshot     bom.KPISnapshot `json:"snapshot"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewServiceDB открывает сервисную БД и применяет миграции
func NewServiceDB(path string, config DBConfig) (*ServiceDB, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open service database: %w", err)
	}

	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	db := &ServiceDB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// Close закрывает подключение к БД
func (db *ServiceDB) Close() error {
	return db.conn.Close()
}

// migrate создает таблицы при первом запуске
func (db *ServiceDB) migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS uploads (
			id TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			sheet_names TEXT NOT NULL,
			uploaded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS lookup_runs (
			id TEXT PRIMARY KEY,
			master_ref TEXT NOT NULL,
			target_ref TEXT NOT NULL,
			key_column TEXT NOT NULL,
			value_columns TEXT NOT NULL,
			matches INTEGER NOT NULL,
			updates INTEGER NOT NULL,
			inserts INTEGER NOT NULL,
			duplicates INTEGER NOT NULL,
			unkeyed INTEGER NOT NULL,
			risk TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lookup_runs_created_at ON lookup_runs(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}

// SaveUpload сохраняет запись о загруженном файле
func (db *ServiceDB) SaveUpload(record UploadRecord) error {
	_, err := db.conn.Exec(
		`INSERT INTO uploads (id, filename, sheet_names, uploaded_at) VALUES (?, ?, ?, ?)`,
		record.ID, record.Filename, strings.Join(record.SheetNames, "\n"), record.UploadedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save upload record: %w", err)
	}
	return nil
}

// GetUpload возвращает запись о загрузке; sql.ErrNoRows при отсутствии
func (db *ServiceDB) GetUpload(id string) (*UploadRecord, error) {
	row := db.conn.QueryRow(
		`SELECT id, filename, sheet_names, uploaded_at FROM uploads WHERE id = ?`, id,
	)

	var record UploadRecord
	var sheets string
	if err := row.Scan(&record.ID, &record.Filename, &sheets, &record.UploadedAt); err != nil {
		return nil, err
	}
	if sheets != "" {
		record.SheetNames = strings.Split(sheets, "\n")
	}

	return &record, nil
}

// SaveLookupRun сохраняет итог прогона сопоставления в историю
func (db *ServiceDB) SaveLookupRun(record LookupRunRecord) error {
	_, err := db.conn.Exec(
		`INSERT INTO lookup_runs
		 (id, master_ref, target_ref, key_column, value_columns,
		  matches, updates, inserts, duplicates, unkeyed, risk, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.MasterRef, record.TargetRef, record.KeyColumn,
		strings.Join(record.ValueColumns, "\n"),
		record.Snapshot.Matches, record.Snapshot.Updates, record.Snapshot.Inserts,
		record.Snapshot.Duplicates, record.Snapshot.Unkeyed, string(record.Snapshot.Risk),
		record.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save lookup run: %w", err)
	}
	return nil
}

// ListLookupRuns возвращает историю прогонов, новые первыми
func (db *ServiceDB) ListLookupRuns(limit int) ([]LookupRunRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.conn.Query(
		`SELECT id, master_ref, target_ref, key_column, value_columns,
		        matches, updates, inserts, duplicates, unkeyed, risk, created_at
		 FROM lookup_runs ORDER BY created_at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookup runs: %w", err)
	}
	defer rows.Close()

	records := make([]LookupRunRecord, 0)
	for rows.Next() {
		var record LookupRunRecord
		var valueColumns, risk string
		if err := rows.Scan(
			&record.ID, &record.MasterRef, &record.TargetRef, &record.KeyColumn, &valueColumns,
			&record.Snapshot.Matches, &record.Snapshot.Updates, &record.Snapshot.Inserts,
			&record.Snapshot.Duplicates, &record.Snapshot.Unkeyed, &risk, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lookup run: %w", err)
		}
		if valueColumns != "" {
			record.ValueColumns = strings.Split(valueColumns, "\n")
		}
		record.Snapshot.Risk = bom.RiskLevel(risk)
		record.Snapshot.Total = record.Snapshot.Matches + record.Snapshot.Updates +
			record.Snapshot.Inserts + record.Snapshot.Duplicates
		records = append(records, record)
	}

	return records, rows.Err()
}
