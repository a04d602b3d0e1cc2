package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"account-recommendation/internal/database"
)

const (
	defaultBusyAttempts = 5
	defaultBusyDelay    = 100 * time.Millisecond
)

// Runner применяет миграции колонок в одной транзакции
type Runner struct {
	db           *sql.DB
	dialect      dialect
	busyAttempts int
	busyDelay    time.Duration
	logger       *zap.Logger
}

func NewRunner(db *database.DB, logger *zap.Logger) (*Runner, error) {
	d, err := dialectFor(db.Target.Driver)
	if err != nil {
		return nil, err
	}

	attempts := 1
	if db.Target.Driver == database.DriverSQLite {
		attempts = defaultBusyAttempts
	}

	return &Runner{
		db:           db.DB,
		dialect:      d,
		busyAttempts: attempts,
		busyDelay:    defaultBusyDelay,
		logger:       logger,
	}, nil
}

// Apply добавляет отсутствующие колонки. Все изменения выполняются в одной транзакции:
// при любой ошибке транзакция откатывается. В режиме dryRun изменения всегда откатываются.
func (r *Runner) Apply(ctx context.Context, m Migration, dryRun bool) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var result *Result
	err := database.Retry(ctx, r.busyAttempts, r.busyDelay, func() error {
		var err error
		result, err = r.applyOnce(ctx, m, dryRun)
		if err != nil && database.IsBusy(err) {
			r.logger.Warn("database is busy, retrying migration",
				zap.String("migration", m.Name),
				zap.Error(err))
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("migration %s failed: %w", m.Name, err)
	}

	r.logger.Info("migration finished",
		zap.String("migration", m.Name),
		zap.String("table", m.Table),
		zap.Strings("added", result.Added),
		zap.Strings("skipped", result.Skipped),
		zap.Bool("dry_run", dryRun))
	return result, nil
}

func (r *Runner) applyOnce(ctx context.Context, m Migration, dryRun bool) (*Result, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				r.logger.Error("failed to roll back migration", zap.Error(rbErr))
			}
		}
	}()

	existing, err := r.dialect.existingColumns(ctx, tx, m.Table)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Migration: m.Name,
		Table:     m.Table,
		Added:     []string{},
		Skipped:   []string{},
		DryRun:    dryRun,
	}

	for _, col := range m.Columns {
		if existing[strings.ToLower(col.Name)] {
			r.logger.Info("column already exists", zap.String("table", m.Table), zap.String("column", col.Name))
			result.Skipped = append(result.Skipped, col.Name)
			continue
		}

		stmt := r.dialect.addColumnSQL(m.Table, col)
		if dryRun {
			r.logger.Info("would execute", zap.String("sql", stmt))
		} else {
			r.logger.Info("executing", zap.String("sql", stmt))
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return nil, fmt.Errorf("failed to add column %s.%s: %w", m.Table, col.Name, err)
			}
		}
		result.Added = append(result.Added, col.Name)
	}

	if dryRun {
		return result, nil
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit migration: %w", err)
	}
	committed = true
	return result, nil
}
