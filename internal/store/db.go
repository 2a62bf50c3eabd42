package store

import (
	"agent-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("not found")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term as a literal
// substring. Queries using it must declare ESCAPE '\'.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

// New opens a pgx-backed pool and verifies it answers.
func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return Store{}, fmt.Errorf("failed to ping database: %w", err)
	}
	return Store{db: db, logger: logger}, nil
}

// NewWithDB wraps an already-open connection.
func NewWithDB(db *sqlx.DB, logger *observability.Logger) Store {
	return Store{db: db, logger: logger}
}

// Close releases the pool. Closing a store that never connected is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks the database answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
