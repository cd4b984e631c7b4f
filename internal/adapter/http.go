package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-timer-sync/internal/config"
	"github.com/MKhiriev/go-timer-sync/internal/logger"
	"github.com/MKhiriev/go-timer-sync/internal/utils"
	"github.com/MKhiriev/go-timer-sync/models"
)

const (
	currentEntryPath = "/api/v8/time_entries/current"
	stopEntryPath    = "/api/v8/time_entries/{id}/stop"

	// apiTokenPassword is the fixed basic-auth password the provider expects
	// when the username is an API token.
	apiTokenPassword = "api_token"
)

// entryEnvelope is the provider response wrapper: {"data": entry | null}.
type entryEnvelope struct {
	Data *models.RawTimeEntry `json:"data"`
}

type httpTimerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPTimerAdapter constructs the resty-backed [TimerAdapter] for one
// access config. The base URL comes from adapterCfg.APIAddress, requests use
// basic auth with access.Token and are routed through access.Proxy when set.
//
// Returns an error if the API address or the proxy cannot be parsed.
func NewHTTPTimerAdapter(adapterCfg config.ClientAdapter, access models.AccessConfig, logger *logger.Logger) (TimerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetBasicAuth(access.Token, apiTokenPassword).
		SetHeader("Accept", "application/json")

	if access.Proxy != "" {
		if _, err = url.Parse(access.Proxy); err != nil {
			return nil, fmt.Errorf("invalid proxy: %w", err)
		}
		client.SetProxy(access.Proxy)
	}

	return &httpTimerAdapter{client: client, logger: logger}, nil
}

// NewHTTPTimerAdapterFactory returns a [TimerAdapterFactory] that builds
// adapters with [NewHTTPTimerAdapter].
func NewHTTPTimerAdapterFactory(adapterCfg config.ClientAdapter, logger *logger.Logger) TimerAdapterFactory {
	return func(access models.AccessConfig) (TimerAdapter, error) {
		return NewHTTPTimerAdapter(adapterCfg, access, logger)
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchCurrentEntry implements [TimerAdapter]. It GETs
// /api/v8/time_entries/current and translates the "data" member; a null
// member means nothing is running.
func (h *httpTimerAdapter) FetchCurrentEntry(ctx context.Context) (*models.Entry, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(currentEntryPath)
	if err != nil {
		return nil, fmt.Errorf("fetch current entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	envelope, err := decodeEnvelope(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode current entry response: %w", err)
	}
	if envelope.Data == nil {
		return nil, nil
	}

	entry, err := TranslateEntry(*envelope.Data)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "httpTimerAdapter.FetchCurrentEntry").Msg("malformed current entry")
		return nil, err
	}
	return &entry, nil
}

// StopEntry implements [TimerAdapter]. It POSTs to
// /api/v8/time_entries/{id}/stop and returns the stopped entry.
func (h *httpTimerAdapter) StopEntry(ctx context.Context, entryID int64) (models.Entry, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(entryID, 10)).
		Post(stopEntryPath)
	if err != nil {
		return models.Entry{}, fmt.Errorf("stop entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	envelope, err := decodeEnvelope(resp.Body())
	if err != nil {
		return models.Entry{}, fmt.Errorf("decode stop entry response: %w", err)
	}
	if envelope.Data == nil {
		return models.Entry{}, fmt.Errorf("%w: stop returned no entry", ErrUnexpectedResponse)
	}

	return TranslateEntry(*envelope.Data)
}

func decodeEnvelope(body []byte) (entryEnvelope, error) {
	var envelope entryEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return entryEnvelope{}, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return envelope, nil
}
