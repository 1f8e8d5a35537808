package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bigram/internal/analyze"
)

// Exit codes. I/O and decode failures use 9, matching the historical tool
// behavior callers may script against.
const (
	exitFailure = 1
	exitUsage   = 2
	exitIO      = 9
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var openErr *analyze.OpenError
	var lineErr *analyze.LineError
	switch {
	case errors.Is(err, analyze.ErrInvalidArguments):
		return exitUsage
	case errors.As(err, &openErr), errors.As(err, &lineErr):
		return exitIO
	default:
		return exitFailure
	}
}
