package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-timer-sync/internal/logger"
	"github.com/MKhiriev/go-timer-sync/models"
)

// timerConfigRepository is the SQLite-backed [TimerConfigRepository]. The
// document column holds the JSON form of [models.AccessConfig].
type timerConfigRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTimerConfigRepository constructs a [TimerConfigRepository] backed by db.
func NewTimerConfigRepository(db *DB, logger *logger.Logger) TimerConfigRepository {
	logger.Debug().Msg("creating timer config repository")
	return &timerConfigRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// GetTimerConfig implements [TimerConfigRepository].
func (r *timerConfigRepository) GetTimerConfig(ctx context.Context, accountID string) (models.AccessConfig, error) {
	query, args, err := buildGetTimerConfigQuery(accountID)
	if err != nil {
		return models.AccessConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var document string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AccessConfig{}, ErrTimerConfigNotFound
		}
		r.logger.Err(err).
			Str("func", "timerConfigRepository.GetTimerConfig").
			Str("account_id", accountID).
			Msg("failed to query timer config")
		return models.AccessConfig{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var cfg models.AccessConfig
	if err = json.Unmarshal([]byte(document), &cfg); err != nil {
		return models.AccessConfig{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return cfg, nil
}

// SaveTimerConfig implements [TimerConfigRepository]. The document is upserted
// so the first save and later saves use the same statement.
func (r *timerConfigRepository) SaveTimerConfig(ctx context.Context, accountID string, cfg models.AccessConfig) error {
	document, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	query, args, err := buildSaveTimerConfigQuery(accountID, document, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "timerConfigRepository.SaveTimerConfig").
			Str("account_id", accountID).
			Msg("failed to save timer config")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
