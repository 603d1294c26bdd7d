package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/tldr/internal/ui/output"
	"go.trai.ch/tldr/internal/ui/style"
)

// PrettyHandler is a slog.Handler for terminal output. Verbose cache and
// render reports ("Heading:" followed by "  Key:\tvalue" rows) are printed
// with an aligned, muted key column.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
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
	var prefix string
	var color termenv.Color

	switch r.Level {
	case slog.LevelWarn:
		prefix = style.Warning + " "
		color = termenv.RGBColor(string(style.Yellow))
	case slog.LevelError:
		prefix = style.Cross + " "
		color = termenv.RGBColor(string(style.Red))
	default:
		color = termenv.RGBColor(string(style.Slate))
	}

	heading, rows := splitReport(r.Message)

	var b strings.Builder
	b.WriteString(h.out.String(prefix + heading).Foreground(color).String())

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrParts = append(attrParts, h.formatAttr(attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, h.formatAttr(attr))
		return true
	})
	if len(attrParts) > 0 {
		b.WriteString(" " + strings.Join(attrParts, " "))
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row.key)+1)
	}
	for _, row := range rows {
		key := fmt.Sprintf("%-*s", width, row.key+":")
		b.WriteString("\n  ")
		b.WriteString(h.out.String(key).Faint().String())
		b.WriteString(" ")
		b.WriteString(h.out.String(row.value).Foreground(color).String())
	}
	b.WriteString("\n")

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

// formatAttr renders key=value with a muted key. Grouped keys are prefixed
// with the group name.
func (h *PrettyHandler) formatAttr(attr slog.Attr) string {
	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	return h.out.String(key+"=").Faint().String() + attr.Value.String()
}

type reportRow struct {
	key   string
	value string
}

// splitReport separates a report into its heading and rows. Messages with any
// line that is not a "  Key:\tvalue" row are returned whole, without rows.
func splitReport(msg string) (string, []reportRow) {
	lines := strings.Split(msg, "\n")
	if len(lines) < 2 || !strings.HasSuffix(lines[0], ":") {
		return msg, nil
	}

	rows := make([]reportRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		body, ok := strings.CutPrefix(line, "  ")
		if !ok {
			return msg, nil
		}
		key, value, ok := strings.Cut(body, ":\t")
		if !ok || key == "" || strings.ContainsAny(key, " \t") {
			return msg, nil
		}
		rows = append(rows, reportRow{key: key, value: value})
	}
	return lines[0], rows
}
