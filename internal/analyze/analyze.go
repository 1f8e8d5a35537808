package analyze

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"bigram/internal/bigram"
	"bigram/internal/logging"
	"bigram/internal/textutil"
)

// Lines longer than this abort the scan rather than silently truncating.
const maxLineBytes = 4 * 1024 * 1024

// Options configures one analysis pass.
type Options struct {
	// TrackOrder records first-seen key order for chronological output.
	TrackOrder bool
}

// Run performs a single pass over the file at path and returns the finished
// histogram. The file handle is closed on every return path.
func Run(ctx context.Context, path string, opts Options, logger *slog.Logger) (*bigram.Report, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: file path is empty", ErrInvalidArguments)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	log := logger.With("component", "analyze", "run_id", uuid.NewString())

	file, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer file.Close()

	log.Info("starting bigram pass", "file", path, "track_order", opts.TrackOrder)

	re := textutil.Pattern()
	acc := bigram.New(bigram.Options{TrackOrder: opts.TrackOrder})

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw := scanner.Bytes()
		if !utf8.Valid(raw) {
			return nil, &LineError{Line: lineNo, Err: ErrInvalidUTF8}
		}
		tokens := textutil.Tokenize(string(raw), re)
		log.Debug("line tokenized", "line", lineNo, "tokens", len(tokens))
		for _, token := range tokens {
			acc.Feed(token)
		}
		lineNo++
	}
	if err := scanner.Err(); err != nil {
		return nil, &LineError{Line: lineNo, Err: err}
	}

	report := acc.Report()
	log.Info("bigram pass complete",
		"file", path,
		"lines", lineNo,
		"tokens", report.Tokens(),
		"distinct_bigrams", report.Distinct())
	return report, nil
}
