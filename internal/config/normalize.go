package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeOutput()
	return c.normalizeLogging()
}

func (c *Config) normalizeOutput() {
	if value, ok := os.LookupEnv("BIGRAM_OUTPUT_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Output.Format = value
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	// Chronological output needs the first-seen sequence.
	if c.Output.Format == FormatOrdered {
		c.Output.TrackOrder = true
	}
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("BIGRAM_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
