// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-mate/internal/config"
	"github.com/MKhiriev/go-study-mate/internal/logger"
)

// Storages aggregates the repositories used by the service layer.
type Storages struct {
	UserRepository UserRepository
	PlanRepository PlanRepository

	db *DB
}

// NewStorages selects a backend from cfg.DB.DSN:
//   - empty → in-memory repositories;
//   - "postgres://" or "postgresql://" → PostgreSQL through pgx;
//   - anything else → a SQLite database file.
//
// SQL backends are migrated before the repositories are returned.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)
	if dsn == "" {
		log.Info().Msg("no database dsn configured, keeping data in memory")
		return &Storages{
			UserRepository: NewMemoryUserRepository(log),
			PlanRepository: NewMemoryPlanRepository(log),
		}, nil
	}

	var (
		db  *DB
		err error
	)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return newSQLStorages(db, log), nil
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PlanRepository: NewPlanRepository(db, log),
		db:             db,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
