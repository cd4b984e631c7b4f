package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-account account id the config document is keyed by
//	-token provider API token used to seed the config store
//	-proxy proxy URL used to seed the config store
//	-log log file path
//	-d SQLite DSN
//	-api REST API base URL
//	-stream push stream websocket URL
//	-request-timeout REST request timeout (e.g. "10s")
//	-handshake-timeout websocket handshake timeout
//	-reconnect-initial first redial delay after a close
//	-reconnect-max maximum redial delay
//	-poll fetch interval while the push stream is down
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("timer-client", flag.ContinueOnError)

	var (
		accountID, token, proxy, logPath string
		dsn, apiAddress, streamAddress   string
		jsonConfigPath                   string
		requestTimeout, handshakeTimeout time.Duration
		reconnectInitial, reconnectMax   time.Duration
		pollInterval                     time.Duration
	)

	fs.StringVar(&accountID, "account", "", "Account id")
	fs.StringVar(&token, "token", "", "Provider API token")
	fs.StringVar(&proxy, "proxy", "", "Proxy URL")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&dsn, "d", "", "SQLite DSN")
	fs.StringVar(&apiAddress, "api", "", "REST API base URL")
	fs.StringVar(&streamAddress, "stream", "", "Push stream websocket URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "REST request timeout (e.g., 10s)")
	fs.DurationVar(&handshakeTimeout, "handshake-timeout", 0, "Websocket handshake timeout")
	fs.DurationVar(&reconnectInitial, "reconnect-initial", 0, "First redial delay")
	fs.DurationVar(&reconnectMax, "reconnect-max", 0, "Maximum redial delay")
	fs.DurationVar(&pollInterval, "poll", 0, "Fetch interval while the push stream is down")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AccountID: accountID,
			Token:     token,
			Proxy:     proxy,
			LogPath:   logPath,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Adapter: Adapter{
			APIAddress:       apiAddress,
			StreamAddress:    streamAddress,
			RequestTimeout:   requestTimeout,
			HandshakeTimeout: handshakeTimeout,
		},
		Workers: Workers{
			ReconnectInitialInterval: reconnectInitial,
			ReconnectMaxInterval:     reconnectMax,
			PollInterval:             pollInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
