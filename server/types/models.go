package types

import (
	"time"

	"bomserver/bom"
	"bomserver/database"
	"bomserver/normalization/algorithms"
)

// UploadResponse ответ на загрузку файла спецификации
type UploadResponse struct {
	FileID     string    `json:"file_id"`
	Filename   string    `json:"filename"`
	SheetNames []string  `json:"sheet_names"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// SheetPreviewRequest запрос предпросмотра листа
type SheetPreviewRequest struct {
	FileID string `json:"file_id" binding:"required"`
	Sheet  string `json:"sheet" binding:"required"`
	// Limit максимальное число строк предпросмотра; 0 — значение по умолчанию
	Limit int `json:"limit"`
}

// SheetPreviewResponse первые строки листа для предпросмотра
type SheetPreviewResponse struct {
	FileID    string    `json:"file_id"`
	Sheet     string    `json:"sheet"`
	Columns   []string  `json:"columns"`
	Rows      []bom.Row `json:"rows"`
	TotalRows int       `json:"total_rows"`
}

// ColumnsResponse список колонок листа
type ColumnsResponse struct {
	FileID  string   `json:"file_id"`
	Sheet   string   `json:"sheet"`
	Columns []string `json:"columns"`
}

// CleanRequest запрос очистки листа
type CleanRequest struct {
	FileID    string `json:"file_id" binding:"required"`
	Sheet     string `json:"sheet" binding:"required"`
	KeyColumn string `json:"key_column" binding:"required"`
	// Punctuation набор знаков для нормализатора; пустая строка — набор по умолчанию
	Punctuation string `json:"punctuation"`
	// TextColumns дополнительные текстовые колонки для нормализации
	TextColumns []string `json:"text_columns"`
}

// CleanResponse результат очистки: идентификатор таблицы и отчет
type CleanResponse struct {
	TableID  string              `json:"table_id"`
	Columns  []string            `json:"columns"`
	RowCount int                 `json:"row_count"`
	Report   *bom.CleaningReport `json:"report"`
}

// SuggestColumnRequest запрос подбора колонки по заголовку
// Кандидаты берутся либо из запроса, либо из колонок указанного листа
type SuggestColumnRequest struct {
	Header     string   `json:"header" binding:"required"`
	Candidates []string `json:"candidates"`
	FileID     string   `json:"file_id"`
	Sheet      string   `json:"sheet"`
	// TopN количество возвращаемых подсказок; 0 — все
	TopN int `json:"top_n"`
}

// SuggestColumnResponse ранжированные подсказки колонок
type SuggestColumnResponse struct {
	Header      string                        `json:"header"`
	Suggestions []algorithms.ColumnSuggestion `json:"suggestions"`
}

// LookupRequest запрос сопоставления целевого листа с мастер-данными
type LookupRequest struct {
	MasterTableID string   `json:"master_table_id" binding:"required"`
	TargetTableID string   `json:"target_table_id" binding:"required"`
	KeyColumn     string   `json:"key_column" binding:"required"`
	ValueColumns  []string `json:"value_columns" binding:"required"`
}

// LookupResponse результат сопоставления с KPI и ссылкой на выгрузку
type LookupResponse struct {
	RunID                  string          `json:"run_id"`
	TableID                string          `json:"table_id"`
	DownloadURL            string          `json:"download_url"`
	KPI                    bom.KPISnapshot `json:"kpi"`
	UnreferencedMasterRows int             `json:"unreferenced_master_rows"`
}

// ProcessingPreviewRequest запрос предварительной оценки сопоставления без записи
type ProcessingPreviewRequest struct {
	MasterTableID string   `json:"master_table_id" binding:"required"`
	TargetTableID string   `json:"target_table_id" binding:"required"`
	KeyColumn     string   `json:"key_column" binding:"required"`
	ValueColumns  []string `json:"value_columns" binding:"required"`
	// MaxExamples предел примеров на класс; 0 — значение по умолчанию
	MaxExamples int `json:"max_examples"`
}

// PreviewExample пример строки определенного класса
type PreviewExample struct {
	RowIndex      int    `json:"row_index"`
	NormalizedKey string `json:"normalized_key"`
	KeyValue      string `json:"key_value"`
}

// ProcessingPreviewResponse сводка по классам с примерами и уровнем риска
type ProcessingPreviewResponse struct {
	KPI                    bom.KPISnapshot             `json:"kpi"`
	Examples               map[string][]PreviewExample `json:"examples"`
	UnreferencedMasterRows int                         `json:"unreferenced_master_rows"`
}

// RunsResponse история запусков сопоставления
type RunsResponse struct {
	Runs  []database.LookupRunRecord `json:"runs"`
	Total int                        `json:"total"`
}
