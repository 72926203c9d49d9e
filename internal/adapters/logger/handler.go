// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/replica/internal/ui/output"
	"go.trai.ch/replica/internal/ui/style"
)

// mark decorates records of one level band.
type mark struct {
	symbol string
	color  lipgloss.Color
}

func markFor(level slog.Level) mark {
	switch {
	case level < slog.LevelInfo:
		return mark{symbol: style.Tilde, color: style.Mist}
	case level < slog.LevelWarn:
		return mark{color: style.Slate}
	case level < slog.LevelError:
		return mark{symbol: style.Warning, color: style.Yellow}
	default:
		return mark{symbol: style.Cross, color: style.Red}
	}
}

// PrettyHandler writes records as colored lines for a terminal.
// Attributes follow the first line of the message. Continuation lines, as in a
// formatted error chain, are indented under the text after the level mark.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// attrs are rendered when added, under the group that was open then.
	attrs []string
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	return &PrettyHandler{
		out:   output.New(w),
		level: levelVar,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	m := markFor(r.Level)

	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	parts = append(parts, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.group, attr)
		return true
	})

	first, rest, multiline := strings.Cut(r.Message, "\n")
	indent := ""
	if m.symbol != "" {
		first = m.symbol + " " + first
		indent = strings.Repeat(" ", lipgloss.Width(m.symbol)+1)
	}
	if len(parts) > 0 {
		first += " " + strings.Join(parts, " ")
	}

	var b strings.Builder
	b.WriteString(first)
	if multiline {
		for line := range strings.SplitSeq(rest, "\n") {
			b.WriteByte('\n')
			if line != "" {
				b.WriteString(indent + line)
			}
		}
	}

	styled := h.out.String(b.String()).Foreground(termenv.RGBColor(string(m.color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rendered := make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(rendered, h.attrs)
	for _, attr := range attrs {
		rendered = appendAttr(rendered, h.group, attr)
	}

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: rendered,
		group: h.group,
	}
}

// WithGroup returns a new Handler whose later attributes are qualified by name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: qualify(h.group, name),
	}
}

// appendAttr renders attr as key=value, flattening groups into dotted keys.
// Attributes with an empty key are dropped, and an empty-key group is inlined.
func appendAttr(parts []string, group string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			group = qualify(group, attr.Key)
		}
		for _, a := range attr.Value.Group() {
			parts = appendAttr(parts, group, a)
		}
		return parts
	}
	if attr.Key == "" {
		return parts
	}
	return append(parts, qualify(group, attr.Key)+"="+quoteValue(attr.Value.String()))
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

// quoteValue quotes values a reader could not split on spaces, such as
// workspace paths with spaces in them.
func quoteValue(v string) string {
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		return strconv.Quote(v)
	}
	return v
}
