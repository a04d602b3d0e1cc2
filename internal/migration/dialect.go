package migration

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"account-recommendation/internal/database"
)

// dialect инкапсулирует различия PostgreSQL и SQLite
type dialect interface {
	// existingColumns возвращает имена колонок таблицы или ErrTableNotFound
	existingColumns(ctx context.Context, tx *sql.Tx, table string) (map[string]bool, error)
	addColumnSQL(table string, col Column) string
}

func dialectFor(driver database.Driver) (dialect, error) {
	switch driver {
	case database.DriverPostgres:
		return postgresDialect{}, nil
	case database.DriverSQLite:
		return sqliteDialect{}, nil
	default:
		return nil, fmt.Errorf("no migration dialect for driver %q", driver)
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

type postgresDialect struct{}

func (postgresDialect) existingColumns(ctx context.Context, tx *sql.Tx, table string) (map[string]bool, error) {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT to_regclass($1) IS NOT NULL`, table).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to look up table %s: %w", table, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT column_name FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1`, table)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", table, err)
	}
	defer rows.Close()

	return scanNames(rows)
}

// PostgreSQL поддерживает IF NOT EXISTS, поэтому повторный запуск безопасен и при гонке
func (postgresDialect) addColumnSQL(table string, col Column) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s", quoteIdent(table), quoteIdent(col.Name), col.Type)
}

type sqliteDialect struct{}

func (sqliteDialect) existingColumns(ctx context.Context, tx *sql.Tx, table string) (map[string]bool, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("SELECT name FROM pragma_table_info(%s)", quoteLiteral(table)))
	if err != nil {
		return nil, fmt.Errorf("failed to read table info of %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := scanNames(rows)
	if err != nil {
		return nil, err
	}
	// PRAGMA table_info возвращает пустой набор для несуществующей таблицы
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	return columns, nil
}

// SQLite не поддерживает ADD COLUMN IF NOT EXISTS, наличие колонки проверяется заранее
func (sqliteDialect) addColumnSQL(table string, col Column) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", quoteIdent(table), quoteIdent(col.Name), col.Type)
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func scanNames(rows *sql.Rows) (map[string]bool, error) {
	names := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column name: %w", err)
		}
		names[strings.ToLower(name)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate columns: %w", err)
	}
	return names, nil
}
