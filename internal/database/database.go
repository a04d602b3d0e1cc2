package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Driver - имя драйвера database/sql
type Driver string

const (
	DriverPostgres Driver = "pgx"
	DriverSQLite   Driver = "sqlite"
)

const memoryPath = ":memory:"

var (
	ErrNoDatabaseURL       = errors.New("DATABASE_URL is not set")
	ErrUnsupportedDatabase = errors.New("unsupported database URL scheme")
)

// Target - разобранный DATABASE_URL
type Target struct {
	Driver Driver
	DSN    string
	Path   string // только для SQLite
}

// String возвращает адрес без пароля, пригодный для логов
func (t Target) String() string {
	if t.Driver == DriverSQLite {
		return "sqlite:" + t.Path
	}
	u, err := url.Parse(t.DSN)
	if err != nil {
		return string(t.Driver)
	}
	return u.Redacted()
}

// ParseURL определяет драйвер по DATABASE_URL.
// postgres:// и postgresql:// - PostgreSQL через pgx; sqlite://, file: или путь к файлу - SQLite.
func ParseURL(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Target{}, ErrNoDatabaseURL
	}

	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return Target{Driver: DriverPostgres, DSN: raw}, nil
	case strings.HasPrefix(raw, "sqlite:///"):
		return sqliteTarget(strings.TrimPrefix(raw, "sqlite:///"))
	case strings.HasPrefix(raw, "sqlite://"):
		return sqliteTarget(strings.TrimPrefix(raw, "sqlite://"))
	case strings.HasPrefix(raw, "file:"):
		path, _, _ := strings.Cut(strings.TrimPrefix(raw, "file:"), "?")
		return sqliteTarget(path)
	case strings.Contains(raw, "://"):
		scheme, _, _ := strings.Cut(raw, "://")
		return Target{}, fmt.Errorf("%w: %s", ErrUnsupportedDatabase, scheme)
	default:
		return sqliteTarget(raw)
	}
}

func sqliteTarget(path string) (Target, error) {
	if path == "" {
		path = memoryPath
	}
	if path == memoryPath {
		return Target{Driver: DriverSQLite, DSN: "file::memory:", Path: path}, nil
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	return Target{Driver: DriverSQLite, DSN: dsn, Path: path}, nil
}

// DB - открытое соединение вместе с выбранным драйвером
type DB struct {
	*sql.DB
	Target Target
}

// Open открывает БД по DATABASE_URL и проверяет соединение.
// Пул ограничен одним соединением: SQLite поддерживает только одного писателя,
// а миграции не нужен параллелизм.
func Open(ctx context.Context, databaseURL string, logger *zap.Logger) (*DB, error) {
	target, err := ParseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	if target.Driver == DriverSQLite && target.Path != memoryPath {
		// Создаем директорию, если её нет
		if err := os.MkdirAll(filepath.Dir(target.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	logger.Info("connecting to database",
		zap.String("driver", string(target.Driver)),
		zap.String("target", target.String()))

	db, err := sql.Open(string(target.Driver), target.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established", zap.String("driver", string(target.Driver)))
	return &DB{DB: db, Target: target}, nil
}
