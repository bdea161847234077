package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/commpro-auth/internal/dbx"
	"github.com/dmitrijs2005/commpro-auth/internal/filex"
	"github.com/dmitrijs2005/commpro-auth/internal/server/migrations"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/resettokens"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/users"
)

// SQLRepositoryManager serves both backends: repository SQL is portable,
// only the driver, goose dialect and migration tree differ.
type SQLRepositoryManager struct {
	dialect    string
	migrations fs.FS
	dir        string
}

// NewPostgresRepositoryManager returns a manager for PostgreSQL via pgx.
func NewPostgresRepositoryManager() *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: "pgx", migrations: migrations.Postgres, dir: "postgres"}
}

// NewSQLiteRepositoryManager returns a manager for SQLite via modernc.org/sqlite.
func NewSQLiteRepositoryManager() *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: "sqlite3", migrations: migrations.SQLite, dir: "sqlite"}
}

func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) ResetTokens(db dbx.DBTX) resettokens.Repository {
	return resettokens.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for the manager's backend.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(m.migrations)
	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, m.dir); err != nil {
		return err
	}
	return nil
}

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"

// driverFor maps a DSN to a driver name and the driver-level DSN.
// postgres:// and postgresql:// URLs go to pgx; sqlite:, sqlite://, file:
// and bare paths go to SQLite.
func driverFor(dsn string) (driver, source string) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx", dsn
	}

	source = strings.TrimPrefix(strings.TrimPrefix(dsn, "sqlite://"), "sqlite:")
	sep := "?"
	if strings.Contains(source, "?") {
		sep = "&"
	}
	if !strings.Contains(source, "_pragma=journal_mode") && !isMemory(source) {
		source += sep + "_pragma=journal_mode(WAL)"
		sep = "&"
	}
	return "sqlite", source + sep + sqlitePragmas
}

// sqliteFile returns the database file behind a SQLite source, or "" for
// other drivers and in-memory databases.
func sqliteFile(driver, source string) string {
	if driver != "sqlite" || isMemory(source) {
		return ""
	}
	path, _, _ := strings.Cut(strings.TrimPrefix(source, "file:"), "?")
	return path
}

func isMemory(source string) bool {
	return strings.Contains(source, ":memory:") || strings.Contains(source, "mode=memory")
}

// Open connects to dsn, verifies the connection and returns the pool with
// the matching manager. Migrations are not run here.
func Open(ctx context.Context, dsn string) (*sql.DB, RepositoryManager, error) {
	driver, source := driverFor(dsn)

	if path := sqliteFile(driver, source); path != "" {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, nil, err
		}
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}

	var m RepositoryManager = NewPostgresRepositoryManager()
	if driver == "sqlite" {
		m = NewSQLiteRepositoryManager()
		if isMemory(source) {
			// every pooled connection would otherwise see its own empty database
			db.SetMaxOpenConns(1)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", driver, dbx.Classify(err))
	}

	return db, m, nil
}
