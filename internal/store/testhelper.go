package store

import (
	"agent-server/internal/observability"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  Store
}

// SetupTestDB connects to the PostgreSQL instance described by TEST_DB_*
// and applies migrations/. The test is skipped when no database answers.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := setupPostgresDB(t)
	if err != nil {
		t.Skipf("skipping: test database unavailable: %v", err)
	}

	if err := runMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	logger := observability.NewLogger()
	tdb := &TestDB{
		db:     db,
		logger: logger,
		Store:  NewWithDB(db, logger),
	}
	tdb.Truncate(t)
	return tdb
}

// setupPostgresDB opens a connection from TEST_DB_* with local defaults.
func setupPostgresDB(t *testing.T) (*sqlx.DB, error) {
	t.Helper()

	dbHost := getEnvOr("TEST_DB_HOST", "localhost")
	dbPort := getEnvOr("TEST_DB_PORT", "5432")
	dbUser := getEnvOr("TEST_DB_USER", "agent_user")
	dbPass := getEnvOr("TEST_DB_PASSWORD", "agent_password")
	dbName := getEnvOr("TEST_DB_NAME", "agent_test")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db, nil
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// runMigrations drops and re-applies every migration file in order.
func runMigrations(db *sqlx.DB) error {
	migrationsDir := "../../migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		migrationsDir = "migrations"
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			return fmt.Errorf("migrations directory not found")
		}
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "V*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsDir)
	}
	sort.Strings(files)

	if _, err := db.Exec(`DROP SCHEMA public CASCADE; CREATE SCHEMA public;`); err != nil {
		return fmt.Errorf("failed to reset schema: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		tables = []string{"lead_activities", "tasks", "automation_workflows", "campaigns", "leads"}
	}

	for _, table := range tables {
		if _, err := tdb.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

// MustExec executes SQL and fails the test if there's an error
func (tdb *TestDB) MustExec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	if _, err := tdb.db.Exec(query, args...); err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
}

// WithContext returns a context for testing
func (tdb *TestDB) WithContext() context.Context {
	return context.Background()
}
