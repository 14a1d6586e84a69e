package sqlite

import (
	"database/sql"
	"fmt"

	"cooked-flow/internal/plan/repository"
	"cooked-flow/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the plan domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("plan/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("plan/repository/sqlite.%s", method)
}
