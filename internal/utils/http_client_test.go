package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_SendsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := NewHTTPClient().R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, userAgent, got)
}
