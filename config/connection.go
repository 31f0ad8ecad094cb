package config

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// NewConnection opens the mask journal database. It returns a nil *sql.DB
// when the journal is disabled.
func NewConnection(cfg *Config) (*sql.DB, error) {
	switch cfg.JournalDriver {
	case "":
		return nil, nil
	case DriverPostgres:
		connStr := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.PgHost, cfg.PgPort, cfg.PgUser, cfg.PgPass, cfg.PgDBName, cfg.PgSSLMode,
		)
		return sql.Open(DriverPostgres, connStr)
	case DriverSQLite:
		return sql.Open(DriverSQLite, cfg.JournalPath)
	}
	return nil, fmt.Errorf("unknown journal driver %q", cfg.JournalDriver)
}
