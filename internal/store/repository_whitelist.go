// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/ashd19/gitStalker/internal/logger"
)

// whitelistRepository is the SQL-backed implementation of
// [WhitelistRepository] over the "whitelist" table. Queries are rendered with
// squirrel in the placeholder format of the underlying [DB].
type whitelistRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewWhitelistRepository constructs a [WhitelistRepository] backed by db.
func NewWhitelistRepository(db *DB, logger *logger.Logger) WhitelistRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating whitelist repository")
	return &whitelistRepository{
		db:     db,
		logger: logger,
	}
}

// List implements [WhitelistRepository]. An owner without entries yields an
// empty, non-nil slice.
func (r *whitelistRepository) List(ctx context.Context, owner string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListWhitelistQuery(r.db.dialect, owner)
	if err != nil {
		log.Err(err).Str("func", "*whitelistRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*whitelistRepository.List").Str("owner", owner).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	logins := make([]string, 0)
	for rows.Next() {
		var login string
		if err = rows.Scan(&login); err != nil {
			log.Err(err).Str("func", "*whitelistRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		logins = append(logins, login)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*whitelistRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return logins, nil
}

// Add implements [WhitelistRepository].
//
// Error handling:
//   - unique / primary key violation → [ErrAlreadyWhitelisted].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *whitelistRepository) Add(ctx context.Context, owner, login string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertWhitelistQuery(r.db.dialect, owner, login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.Classify(err) == UniqueViolation {
			return ErrAlreadyWhitelisted
		}
		log.Err(err).
			Str("func", "*whitelistRepository.Add").
			Str("owner", owner).
			Str("login", login).
			Msg("failed to insert whitelist entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Remove implements [WhitelistRepository].
func (r *whitelistRepository) Remove(ctx context.Context, owner, login string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteWhitelistQuery(r.db.dialect, owner, login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*whitelistRepository.Remove").
			Str("owner", owner).
			Str("login", login).
			Msg("failed to delete whitelist entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotWhitelisted
	}

	return nil
}

// Replace implements [WhitelistRepository]. The delete and all inserts run in
// one transaction; on any failure the previous list is kept.
func (r *whitelistRepository) Replace(ctx context.Context, owner string, logins []string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*whitelistRepository.Replace").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := buildClearWhitelistQuery(r.db.dialect, owner)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*whitelistRepository.Replace").Str("owner", owner).Msg("failed to clear whitelist")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for i, login := range logins {
		query, args, err = buildInsertWhitelistAtQuery(r.db.dialect, owner, login, i+1)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if r.db.errorClassificator.Classify(err) == UniqueViolation {
				return fmt.Errorf("%w: %s", ErrAlreadyWhitelisted, login)
			}
			log.Err(err).
				Str("func", "*whitelistRepository.Replace").
				Str("owner", owner).
				Str("login", login).
				Msg("failed to insert whitelist entry")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*whitelistRepository.Replace").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("owner", owner).Int("count", len(logins)).Msg("whitelist replaced")
	return nil
}
