// Package config provides configuration loading, merging, and validation
// facilities for the timer sync client.
//
// Configuration is assembled from multiple sources. mergo only fills fields
// that are still zero, so the first source that sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the raw merged view and
// [GetClientConfig] for the validated client runtime configuration.
package config
