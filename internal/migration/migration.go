package migration

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrTableNotFound     = errors.New("table not found")
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// Column - добавляемая колонка. Все колонки добавляются как NULL-допустимые, если в Type не сказано иное.
type Column struct {
	Name string
	Type string
}

// Migration - упорядоченный набор колонок для одной таблицы
type Migration struct {
	Name    string
	Table   string
	Columns []Column
}

// AnalysisResultSchemaExtension добавляет в analysis_result колонки формулы расчета показателя
var AnalysisResultSchemaExtension = Migration{
	Name:  "analysis_result_formula_columns",
	Table: "analysis_result",
	Columns: []Column{
		{Name: "formula", Type: "VARCHAR(500)"},
		{Name: "calculation", Type: "TEXT"},
		{Name: "accounts_used", Type: "TEXT"},
	},
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate проверяет имена таблицы и колонок до формирования SQL
func (m Migration) Validate() error {
	if !identifierPattern.MatchString(m.Table) {
		return fmt.Errorf("%w: table %q", ErrInvalidIdentifier, m.Table)
	}
	if len(m.Columns) == 0 {
		return fmt.Errorf("migration %s has no columns", m.Name)
	}
	seen := make(map[string]bool, len(m.Columns))
	for _, col := range m.Columns {
		if !identifierPattern.MatchString(col.Name) {
			return fmt.Errorf("%w: column %q", ErrInvalidIdentifier, col.Name)
		}
		if col.Type == "" {
			return fmt.Errorf("column %s has no type", col.Name)
		}
		if seen[col.Name] {
			return fmt.Errorf("column %s listed twice", col.Name)
		}
		seen[col.Name] = true
	}
	return nil
}

// Result - итог применения миграции
type Result struct {
	Migration string   `json:"migration"`
	Table     string   `json:"table"`
	Added     []string `json:"added"`
	Skipped   []string `json:"skipped"` // колонки, которые уже существовали
	DryRun    bool     `json:"dry_run"`
}

// Changed сообщает, изменила ли миграция схему
func (r *Result) Changed() bool {
	return len(r.Added) > 0 && !r.DryRun
}
