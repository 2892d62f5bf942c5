// Package log builds the configured slog.Logger for the flirone CLI
// and carries the raw USB transfer logger.
//
// Without a log file, records below error level go to stdout and
// errors to stderr, so bulk payload diagnostics can be separated from
// failures with plain shell redirection.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace sits below Debug and is used for per-transfer output.
const LevelTrace slog.Level = -8

// ParseLevel maps a --log.level flag value to a slog level. Unknown
// strings fall back to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multiHandler fans out records to every wrapped handler.
type multiHandler struct{ hs []slog.Handler }

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return multiHandler{hs: out}
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return multiHandler{hs: out}
}

// levelFilter passes only records matching the predicate to the
// wrapped handler.
type levelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f levelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f levelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f levelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f levelFilter) WithGroup(name string) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

// Setup builds the logger. With an empty file path records are split
// across stdout/stderr by level; otherwise everything below the level
// threshold goes to stderr and the file receives a full copy. The
// returned closer releases the log file, if any.
func Setup(level, file string) (*slog.Logger, io.Closer, error) {
	lvl := ParseLevel(level)

	var handlers []slog.Handler
	var closer io.Closer

	if file == "" {
		out := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
		errOut := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
		handlers = append(handlers,
			levelFilter{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: out},
			levelFilter{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: errOut},
		)
	} else {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
		f, err := os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closer = f
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	}

	return slog.New(multiHandler{hs: handlers}), closer, nil
}
