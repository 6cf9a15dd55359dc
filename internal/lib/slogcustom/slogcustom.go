// Package slogcustom provides a compact colored slog handler for terminals.
package slogcustom

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

// CustomHandler writes one colored line per record.
type CustomHandler struct {
	l      *log.Logger
	level  slog.Leveler
	attrs  []slog.Attr
	prefix string
}

// NewCustomHandler returns a handler writing records at or above level to out.
func NewCustomHandler(out io.Writer, level slog.Leveler) *CustomHandler {
	return &CustomHandler{
		l:     log.New(out, "", 0),
		level: level,
	}
}

// Handle implements slog.Handler.
func (c *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch {
	case r.Level >= slog.LevelError:
		level = color.RedString(level)
	case r.Level >= slog.LevelWarn:
		level = color.YellowString(level)
	case r.Level >= slog.LevelInfo:
		level = color.HiBlueString(level)
	default:
		level = color.MagentaString(level)
	}

	var b strings.Builder
	for _, a := range c.attrs {
		c.writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		c.writeAttr(&b, c.prefix, a)
		return true
	})

	c.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		strings.TrimSpace(b.String()),
	)
	return nil
}

func (c *CustomHandler) writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			c.writeAttr(b, prefix+a.Key+".", ga)
		}
		return
	}
	b.WriteString(color.GreenString(prefix + a.Key))
	b.WriteString("=")
	b.WriteString(fmt.Sprint(a.Value.Any()))
	b.WriteString(" ")
}

// WithAttrs implements slog.Handler.
func (c *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nc := *c
	nc.attrs = make([]slog.Attr, 0, len(c.attrs)+len(attrs))
	nc.attrs = append(nc.attrs, c.attrs...)
	for _, a := range attrs {
		a.Key = c.prefix + a.Key
		nc.attrs = append(nc.attrs, a)
	}
	return &nc
}

// WithGroup implements slog.Handler.
func (c *CustomHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return c
	}
	nc := *c
	nc.prefix = c.prefix + name + "."
	return &nc
}

// Enabled implements slog.Handler.
func (c *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level.Level()
}
