package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		AccountID string `json:"account_id"`
		Token     string `json:"token"`
		Proxy     string `json:"proxy"`
		LogPath   string `json:"log_path"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		APIAddress       string   `json:"api_address"`
		StreamAddress    string   `json:"stream_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		HandshakeTimeout Duration `json:"handshake_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ReconnectInitialInterval Duration `json:"reconnect_initial_interval"`
		ReconnectMaxInterval     Duration `json:"reconnect_max_interval"`
		PollInterval             Duration `json:"poll_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AccountID: jsonCfg.App.AccountID,
			Token:     jsonCfg.App.Token,
			Proxy:     jsonCfg.App.Proxy,
			LogPath:   jsonCfg.App.LogPath,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Adapter: Adapter{
			APIAddress:       jsonCfg.Adapter.APIAddress,
			StreamAddress:    jsonCfg.Adapter.StreamAddress,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
			HandshakeTimeout: time.Duration(jsonCfg.Adapter.HandshakeTimeout),
		},
		Workers: Workers{
			ReconnectInitialInterval: time.Duration(jsonCfg.Workers.ReconnectInitialInterval),
			ReconnectMaxInterval:     time.Duration(jsonCfg.Workers.ReconnectMaxInterval),
			PollInterval:             time.Duration(jsonCfg.Workers.PollInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
