package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/student-records/pkg/config"
)

// Open returns the process-wide store handle for the configured driver.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	switch cfg.Driver {
	case "", config.DriverSQLite:
		return NewSQLite(cfg)
	case config.DriverPostgres:
		return NewPostgres(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
