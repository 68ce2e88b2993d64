package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const (
	seqKey   ctxKey = "seq"
	queryKey ctxKey = "query"
)

// SlowThreshold marks tracked operations that deserve a warning.
const SlowThreshold = 500 * time.Millisecond

var base = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableColors:   true,
	})
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup directs log output to path at the given level. An empty path
// discards all output. The terminal belongs to the UI, so logs never go to
// stdout or stderr.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	l := newDiscardLogger()
	l.SetLevel(lvl)

	path = strings.TrimSpace(path)
	if path == "" {
		base = l
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.SetOutput(file)
	base = l
	return file, nil
}

func parseLevel(level string) (logrus.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return lvl, nil
}

// ContextWithRequest tags ctx with a search request's sequence number and
// query so every line logged through For carries them.
func ContextWithRequest(ctx context.Context, seq uint64, query string) context.Context {
	ctx = context.WithValue(ctx, seqKey, seq)
	return context.WithValue(ctx, queryKey, query)
}

// For returns an entry carrying whatever request fields ctx holds.
func For(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(base)
	if ctx == nil {
		return entry
	}
	if seq, ok := ctx.Value(seqKey).(uint64); ok {
		entry = entry.WithField("seq", seq)
	}
	if query, ok := ctx.Value(queryKey).(string); ok {
		entry = entry.WithField("query", query)
	}
	return entry
}

// Track logs how long an operation took once the returned func runs.
//
//	defer logging.Track(ctx, "search")()
func Track(ctx context.Context, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := For(ctx).WithField("duration", dur.String())
		if dur > SlowThreshold {
			entry.Warnf("%s completed (SLOW)", msg)
			return
		}
		entry.Infof("%s completed", msg)
	}
}
