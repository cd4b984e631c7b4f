package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-timer-sync/internal/validators"
	"github.com/MKhiriev/go-timer-sync/models"
)

var accessConfigValidator = validators.NewAccessConfigValidator()

// ValidateAccessConfig decides whether synchronization may start with cfg.
// It returns the trimmed config, or an error wrapping [ErrConfiguration] and
// the reason ([ErrEmptyToken] or [ErrInvalidProxy]).
func ValidateAccessConfig(cfg models.AccessConfig) (models.AccessConfig, error) {
	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.Proxy = strings.TrimSpace(cfg.Proxy)

	if err := accessConfigValidator.Validate(context.Background(), cfg); err != nil {
		return models.AccessConfig{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return cfg, nil
}
