package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-timer-sync/models"
)

const (
	FieldToken = "token"
	FieldProxy = "proxy"
)

var allowedProxySchemes = []string{"http", "https", "socks5"}

type AccessConfigValidator struct {
}

// NewAccessConfigValidator returns a [Validator] for [models.AccessConfig].
// Without field names both the token and the proxy are checked.
func NewAccessConfigValidator() Validator {
	return &AccessConfigValidator{}
}

func (v *AccessConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccessConfig:
		return v.validateAccessConfig(ctx, value, fields...)
	case *models.AccessConfig:
		if value == nil {
			return ErrEmptyToken
		}
		return v.validateAccessConfig(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AccessConfigValidator) validateAccessConfig(_ context.Context, cfg models.AccessConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldProxy}
	}

	for _, field := range fields {
		switch field {
		case FieldToken:
			if strings.TrimSpace(cfg.Token) == "" {
				return ErrEmptyToken
			}
		case FieldProxy:
			if err := validateProxy(cfg.Proxy); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateProxy accepts an empty value (no proxy) or an absolute URL with one
// of the allowed schemes.
func validateProxy(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProxy, err)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidProxy, raw)
	}
	for _, scheme := range allowedProxySchemes {
		if strings.EqualFold(u.Scheme, scheme) {
			return nil
		}
	}

	return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidProxy, u.Scheme)
}
