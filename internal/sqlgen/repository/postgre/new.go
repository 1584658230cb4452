package postgre

import (
	"database/sql"

	"financial-assistant/internal/sqlgen/repository"
	pkgLog "financial-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a new PostgreSQL-backed DataRepository for the sqlgen domain.
func New(db *sql.DB, l pkgLog.Logger) repository.DataRepository {
	if db == nil {
		panic("sqlgen/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}
