// Package config handles configuration loading, parsing, and validation
// from environment variables (ZOO_ prefix) and an optional config.yaml file.
// It provides type-safe access to server, database, auth, upload and metrics
// settings while keeping configuration details separate from business logic.
package config
