package config

import "time"

// Defaults target the public Toggl endpoints.
const (
	DefaultAPIAddress               = "https://api.track.toggl.com"
	DefaultStreamAddress            = "wss://stream.toggl.com/ws"
	DefaultRequestTimeout           = 10 * time.Second
	DefaultHandshakeTimeout         = 5 * time.Second
	DefaultReconnectInitialInterval = 500 * time.Millisecond
	DefaultReconnectMaxInterval     = time.Minute
	DefaultPollInterval             = time.Minute
	DefaultDSN                      = "timer.db"
	DefaultAccountID                = "default"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{AccountID: DefaultAccountID},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			APIAddress:       DefaultAPIAddress,
			StreamAddress:    DefaultStreamAddress,
			RequestTimeout:   DefaultRequestTimeout,
			HandshakeTimeout: DefaultHandshakeTimeout,
		},
		Workers: Workers{
			ReconnectInitialInterval: DefaultReconnectInitialInterval,
			ReconnectMaxInterval:     DefaultReconnectMaxInterval,
			PollInterval:             DefaultPollInterval,
		},
	}
}
