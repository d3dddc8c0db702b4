package bom

import (
	"math"
	"testing"
)

func classList(classes ...Classification) []RowClassification {
	result := make([]RowClassification, 0, len(classes))
	for _, c := range classes {
		result = append(result, RowClassification{Class: c})
	}
	return result
}

// classRepeat дает n классификаций одного класса
func classRepeat(n int, class Classification) []RowClassification {
	result := make([]RowClassification, n)
	for i := range result {
		result[i] = RowClassification{Class: class}
	}
	return result
}

// TestKPIReporter_Example проверяет пример из постановки:
// один MATCH и один INSERT дают доли 0.5 и риск LOW
func TestKPIReporter_Example(t *testing.T) {
	reporter := NewKPIReporter()

	snapshot := reporter.Summarize(classList(ClassMatch, ClassInsert))

	if snapshot.MatchRate != 0.5 || snapshot.InsertRate != 0.5 {
		t.Errorf("MatchRate = %f, InsertRate = %f, want 0.5 и 0.5", snapshot.MatchRate, snapshot.InsertRate)
	}
	if snapshot.DuplicateRate != 0 {
		t.Errorf("DuplicateRate = %f, want 0", snapshot.DuplicateRate)
	}
	if snapshot.Risk != RiskLow {
		t.Errorf("Risk = %s, want LOW", snapshot.Risk)
	}
}

// TestKPIReporter_UnkeyedExcluded проверяет исключение UNKEYED из знаменателей
func TestKPIReporter_UnkeyedExcluded(t *testing.T) {
	reporter := NewKPIReporter()

	snapshot := reporter.Summarize(classList(ClassMatch, ClassMatch, ClassUnkeyed, ClassUnkeyed))

	if snapshot.Total != 2 {
		t.Errorf("Total = %d, want 2", snapshot.Total)
	}
	if snapshot.Unkeyed != 2 {
		t.Errorf("Unkeyed = %d, want 2", snapshot.Unkeyed)
	}
	if snapshot.MatchRate != 1.0 {
		t.Errorf("MatchRate = %f, want 1.0: UNKEYED не входит в знаменатель", snapshot.MatchRate)
	}
}

// TestKPIReporter_RiskLevels проверяет пороги уровней риска
func TestKPIReporter_RiskLevels(t *testing.T) {
	reporter := NewKPIReporter()

	tests := []struct {
		name    string
		classes []RowClassification
		want    RiskLevel
	}{
		{
			// 2 из 10 дубликаты: 0.2 > 0.10
			"высокий по дубликатам",
			classList(ClassDuplicate, ClassDuplicate, ClassMatch, ClassMatch, ClassMatch,
				ClassMatch, ClassMatch, ClassMatch, ClassMatch, ClassMatch),
			RiskHigh,
		},
		{
			// 60 из 100 обновления: 0.6 > 0.50, изменений больше порога малого прогона
			"высокий по обновлениям",
			append(classRepeat(60, ClassUpdate), classRepeat(40, ClassMatch)...),
			RiskHigh,
		},
		{
			// 1 из 20 дубликат: 0.05 в (0.02, 0.10]
			"средний по дубликатам",
			append(classList(ClassDuplicate), classList(
				ClassMatch, ClassMatch, ClassMatch, ClassMatch, ClassMatch,
				ClassMatch, ClassMatch, ClassMatch, ClassMatch, ClassMatch,
				ClassMatch, ClassMatch, ClassMatch, ClassMatch, ClassMatch,
				ClassMatch, ClassMatch, ClassMatch, ClassMatch)...),
			RiskMedium,
		},
		{
			// 40 из 100 вставки: 0.4 > 0.30, изменений больше порога малого прогона
			"средний по вставкам",
			append(classRepeat(40, ClassInsert), classRepeat(60, ClassMatch)...),
			RiskMedium,
		},
		{
			"низкий",
			classList(ClassMatch, ClassMatch, ClassMatch, ClassInsert),
			RiskLow,
		},
		{
			// Доля вставок 1.0, но изменений всего 5: малый прогон остается LOW
			"малый прогон не повышает риск",
			classRepeat(5, ClassInsert),
			RiskLow,
		},
		{
			// Ровно на пороге малого прогона: доли еще не применяются
			"граница малого прогона",
			classRepeat(10, ClassInsert),
			RiskLow,
		},
		{
			// Порог малого прогона превышен: доля вставок 11/11 поднимает риск
			"сразу за границей малого прогона",
			classRepeat(11, ClassInsert),
			RiskMedium,
		},
		{
			// Дубликаты повышают риск независимо от объема изменений
			"дубликаты в малом прогоне",
			classList(ClassDuplicate, ClassMatch),
			RiskHigh,
		},
		{
			"пустая последовательность",
			nil,
			RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reporter.Summarize(tt.classes).Risk; got != tt.want {
				t.Errorf("Risk = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestKPIReporter_CustomThresholds проверяет переопределение порогов конфигурацией
func TestKPIReporter_CustomThresholds(t *testing.T) {
	reporter := NewKPIReporterWithThresholds(RiskThresholds{
		DuplicateHigh:   0.50,
		UpdateHigh:      0.90,
		DuplicateMedium: 0.40,
		InsertMedium:    0.80,
	})

	// 20% дубликатов: с порогами по умолчанию HIGH, со смягченными LOW
	snapshot := reporter.Summarize(classList(ClassDuplicate, ClassMatch, ClassMatch, ClassMatch, ClassMatch))
	if snapshot.Risk != RiskLow {
		t.Errorf("Risk = %s, want LOW при смягченных порогах", snapshot.Risk)
	}
}

// TestKPIReporter_RatesSumToOne проверяет согласованность долей
func TestKPIReporter_RatesSumToOne(t *testing.T) {
	reporter := NewKPIReporter()

	snapshot := reporter.Summarize(classList(
		ClassMatch, ClassUpdate, ClassInsert, ClassDuplicate, ClassUnkeyed))

	sum := snapshot.MatchRate + snapshot.UpdateRate + snapshot.InsertRate + snapshot.DuplicateRate
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("сумма долей = %f, want 1.0", sum)
	}
}
