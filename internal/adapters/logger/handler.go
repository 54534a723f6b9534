package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/forge/internal/ui/output"
	"go.trai.ch/forge/internal/ui/style"
)

// PrettyHandler is a slog.Handler for terminals. Attributes follow the message as
// key=value pairs. Values spanning several lines, such as compiler output, are
// printed as indented blocks below the message.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  attrLines
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
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
	msg, color := h.decorate(r.Level, r.Message)

	lines := h.attrs.clone()
	r.Attrs(func(attr slog.Attr) bool {
		lines.add(h.prefix, attr)
		return true
	})
	if len(lines.inline) > 0 {
		msg += " " + strings.Join(lines.inline, " ")
	}

	var b strings.Builder
	b.WriteString(h.out.String(msg).Foreground(color).String())
	b.WriteByte('\n')
	for _, block := range lines.blocks {
		b.WriteString(block)
		b.WriteByte('\n')
	}

	_, err := h.out.WriteString(b.String())
	return err
}

func (h *PrettyHandler) decorate(level slog.Level, msg string) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " " + msg, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning + " " + msg, termenv.RGBColor(string(style.Yellow))
	case level < slog.LevelInfo:
		return style.Dot + " " + msg, termenv.RGBColor(string(style.Iris))
	default:
		return msg, termenv.RGBColor(string(style.Slate))
	}
}

// WithAttrs returns a new Handler with the given attributes formatted once.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = h.attrs.clone()
	for _, attr := range attrs {
		next.attrs.add(h.prefix, attr)
	}
	return &next
}

// WithGroup returns a new Handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// attrLines collects formatted attributes: single-line values inline, the rest as blocks.
type attrLines struct {
	inline []string
	blocks []string
}

func (l attrLines) clone() attrLines {
	return attrLines{inline: slices.Clip(l.inline), blocks: slices.Clip(l.blocks)}
}

func (l *attrLines) add(prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			l.add(prefix, member)
		}
		return
	}

	key := prefix + attr.Key
	value := strings.TrimRight(attr.Value.String(), "\n")
	if strings.Contains(value, "\n") {
		l.blocks = append(l.blocks, "  "+key+":\n    "+strings.ReplaceAll(value, "\n", "\n    "))
		return
	}
	if value == "" || strings.ContainsAny(value, " \t\"=") {
		value = strconv.Quote(value)
	}
	l.inline = append(l.inline, key+"="+value)
}
