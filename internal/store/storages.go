package store

import (
	"context"
	"fmt"

	"github.com/ashd19/gitStalker/internal/config"
	"github.com/ashd19/gitStalker/internal/logger"
)

// Storages groups all storage repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// WhitelistRepository persists per-owner whitelists.
	WhitelistRepository WhitelistRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Picks the backend from cfg.DB.DSN (see [DialectFromDSN]) and connects,
//     creating the SQLite file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Builds the repositories on top of the connection.
//
// Returns an error if the DSN is unsupported, the connection cannot be
// established, or migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	dialect, err := DialectFromDSN(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", dialect, err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStoragesFromDB(db, logger), nil
}

func newStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		WhitelistRepository: NewWhitelistRepository(db, logger),
		db:                  db,
	}
}

// Close releases the database connection. Safe on a nil receiver.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
