// Package config loads, normalizes, and validates specsort configuration
// from TOML files.
package config
