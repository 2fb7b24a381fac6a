package bootstrap

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	coreconfig "github.com/m3rciful/skishopbot/core/config"
	coredatabase "github.com/m3rciful/skishopbot/core/database"
	"github.com/m3rciful/skishopbot/core/logger"
)

// Options carry everything the startup pipeline needs.
type Options struct {
	Config   *coreconfig.Config
	Database coredatabase.Config
}

// Result exposes infrastructure initialized by the startup pipeline.
type Result struct {
	DB *sqlx.DB
}

// Run initializes the logger, connects to the database, and applies
// migrations. On a migration failure the connection is closed before
// returning.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	if err := logger.InitLogger(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	db, err := coredatabase.Connect(opts.Database)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: database initialization failed: %w", err)
	}

	if err := coredatabase.RunMigrations(opts.Database); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap: migrations failed: %w", err)
	}

	return &Result{DB: db}, nil
}
