package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"bigram/internal/analyze"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid arguments", analyze.ErrInvalidArguments, exitUsage},
		{"wrapped invalid arguments", fmt.Errorf("context: %w", analyze.ErrInvalidArguments), exitUsage},
		{"open failure", &analyze.OpenError{Path: "x", Err: os.ErrNotExist}, exitIO},
		{"decode failure", &analyze.LineError{Line: 3, Err: analyze.ErrInvalidUTF8}, exitIO},
		{"anything else", errors.New("boom"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
