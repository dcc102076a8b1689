// Package logging provides the plain-text slog handler used by the citywalk
// binary and HTTP server.
package logging

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// Handler writes one line per record:
//
//	2006/01/02 15:04:05 LEVEL message key=value ...
type Handler struct {
	level  slog.Leveler
	attrs  []slog.Attr
	prefix string
	mu     *sync.Mutex
	out    io.Writer
}

// NewHandler returns a Handler writing to o. A nil opts logs at Info and above.
func NewHandler(o io.Writer, opts *slog.HandlerOptions) *Handler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &Handler{
		level: level,
		mu:    &sync.Mutex{},
		out:   o,
	}
}

// New is shorthand for slog.New(NewHandler(o, &slog.HandlerOptions{Level: level})).
func New(o io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(o, &slog.HandlerOptions{Level: level}))
}

// ParseLevel accepts debug, info, warn and error (any case).
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: %w", err)
	}

	return l, nil
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}

	return &Handler{level: h.level, attrs: merged, prefix: h.prefix, mu: h.mu, out: h.out}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &Handler{level: h.level, attrs: h.attrs, prefix: h.prefix + name + ".", mu: h.mu, out: h.out}
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	strs := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String(), r.Message}
	for _, a := range h.attrs {
		strs = append(strs, formatAttr("", a))
	}
	r.Attrs(func(a slog.Attr) bool {
		strs = append(strs, formatAttr(h.prefix, a))
		return true
	})
	b := []byte(strings.Join(strs, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(b)

	return err
}

// formatAttr renders key=value, quoting values that contain blanks.
func formatAttr(prefix string, a slog.Attr) string {
	v := a.Value.Resolve().String()
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		v = strconv.Quote(v)
	}

	return prefix + a.Key + "=" + v
}
