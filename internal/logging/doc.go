// Package logging assembles the structured slog loggers used by the bigram
// CLI.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and keeps diagnostic output on stderr so histogram output on
// stdout stays clean. Prefer these constructors over hand-rolled slog setup
// so every component emits log lines with the same shape.
package logging
