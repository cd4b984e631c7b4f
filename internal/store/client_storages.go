package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-timer-sync/internal/config"
	"github.com/MKhiriev/go-timer-sync/internal/logger"
)

// ClientStorages groups all client-side repositories.
type ClientStorages struct {
	// TimerConfigRepository holds the per-account access config documents.
	TimerConfigRepository TimerConfigRepository

	db *DB
}

// NewClientStorages opens the SQLite file from cfg.DB.DSN, runs pending
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TimerConfigRepository: NewTimerConfigRepository(db, logger),
		db:                    db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
