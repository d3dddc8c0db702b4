package bom

// RiskLevel уровень риска прогона сопоставления
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// RiskThresholds пороги для расчета уровня риска.
// Переопределяются конфигурацией сервера
type RiskThresholds struct {
	DuplicateHigh   float64 `json:"duplicate_high"`
	UpdateHigh      float64 `json:"update_high"`
	DuplicateMedium float64 `json:"duplicate_medium"`
	InsertMedium    float64 `json:"insert_medium"`
	// SmallRunChanges абсолютный порог малого прогона: пока число изменений
	// (UPDATE + INSERT) не превышает его, доли изменений риск не повышают
	SmallRunChanges int `json:"small_run_changes"`
}

// DefaultRiskThresholds возвращает пороги по умолчанию
func DefaultRiskThresholds() RiskThresholds {
	return RiskThresholds{
		DuplicateHigh:   0.10,
		UpdateHigh:      0.50,
		DuplicateMedium: 0.02,
		InsertMedium:    0.30,
		SmallRunChanges: 10,
	}
}

// KPISnapshot неизменяемый итог одного прогона сопоставления.
// Создается один раз, потребителями не модифицируется
type KPISnapshot struct {
	Matches    int `json:"matches"`
	Updates    int `json:"updates"`
	Inserts    int `json:"inserts"`
	Duplicates int `json:"duplicates"`
	// Unkeyed строки с пустым ключом; в знаменатели процентов не входят
	Unkeyed int `json:"unkeyed"`
	// Total количество классифицированных строк без UNKEYED
	Total int `json:"total"`

	MatchRate     float64 `json:"match_rate"`
	UpdateRate    float64 `json:"update_rate"`
	InsertRate    float64 `json:"insert_rate"`
	DuplicateRate float64 `json:"duplicate_rate"`

	Risk RiskLevel `json:"risk"`
}

// KPIReporter агрегирует классификации в счетчики и производные метрики.
// Чистая функция последовательности классификаций, без ввода-вывода
type KPIReporter struct {
	thresholds RiskThresholds
}

// NewKPIReporter создает репортер с порогами по умолчанию
func NewKPIReporter() *KPIReporter {
	return &KPIReporter{thresholds: DefaultRiskThresholds()}
}

// NewKPIReporterWithThresholds создает репортер с переопределенными порогами
func NewKPIReporterWithThresholds(thresholds RiskThresholds) *KPIReporter {
	return &KPIReporter{thresholds: thresholds}
}

// Summarize строит KPI-снимок по последовательности классификаций
func (r *KPIReporter) Summarize(classifications []RowClassification) KPISnapshot {
	snapshot := KPISnapshot{}

	for _, c := range classifications {
		switch c.Class {
		case ClassMatch:
			snapshot.Matches++
		case ClassUpdate:
			snapshot.Updates++
		case ClassInsert:
			snapshot.Inserts++
		case ClassDuplicate:
			snapshot.Duplicates++
		case ClassUnkeyed:
			snapshot.Unkeyed++
		}
	}

	snapshot.Total = snapshot.Matches + snapshot.Updates + snapshot.Inserts + snapshot.Duplicates

	if snapshot.Total > 0 {
		total := float64(snapshot.Total)
		snapshot.MatchRate = float64(snapshot.Matches) / total
		snapshot.UpdateRate = float64(snapshot.Updates) / total
		snapshot.InsertRate = float64(snapshot.Inserts) / total
		snapshot.DuplicateRate = float64(snapshot.Duplicates) / total
	}

	snapshot.Risk = r.assessRisk(snapshot)
	return snapshot
}

// assessRisk выводит уровень риска из долей изменений по настроенным порогам.
// Доли обновлений и вставок учитываются только когда абсолютное число изменений
// превышает SmallRunChanges: единичные изменения безопасны при любых долях.
// Дубликаты — проблема качества данных, на них малый прогон не распространяется
func (r *KPIReporter) assessRisk(s KPISnapshot) RiskLevel {
	changes := s.Updates + s.Inserts
	ratesApply := changes > r.thresholds.SmallRunChanges

	switch {
	case s.DuplicateRate > r.thresholds.DuplicateHigh:
		return RiskHigh
	case ratesApply && s.UpdateRate > r.thresholds.UpdateHigh:
		return RiskHigh
	case s.DuplicateRate > r.thresholds.DuplicateMedium:
		return RiskMedium
	case ratesApply && s.InsertRate > r.thresholds.InsertMedium:
		return RiskMedium
	default:
		return RiskLow
	}
}
