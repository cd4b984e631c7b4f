// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccessConfig is the per-account document that grants access to the
// provider. It is stored as {"token": ..., "proxy": ...} and both keys may be
// absent.
type AccessConfig struct {
	// Token is the provider API token. Synchronization cannot start without it.
	Token string `json:"token,omitempty"`
	// Proxy is an optional proxy URL used by both REST and push transports.
	Proxy string `json:"proxy,omitempty"`
}

// HasToken reports whether a non-empty token is present.
func (c AccessConfig) HasToken() bool {
	return c.Token != ""
}
