// Package config loads and validates application configuration from
// EDUSTAT_-prefixed environment variables with an optional YAML overlay.
package config
