// Package config loads, normalizes, and validates bigram configuration data.
//
// It supplies repository defaults, reads TOML files, expands tilde paths, and
// honours environment fallbacks such as BIGRAM_LOG_LEVEL (optionally sourced
// from a .env file in the working directory). The Config type centralizes the
// output and logging knobs the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical format names, and clear validation errors.
package config
