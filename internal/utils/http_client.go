package utils

import (
	"github.com/go-resty/resty/v2"
)

// userAgent identifies the client to the provider.
const userAgent = "go-timer-sync"

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient with its own connection
// pool. Every request carries the client User-Agent.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", userAgent)}
}
