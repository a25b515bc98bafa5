package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	badgeDebug = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("DBG")
	badgeInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("#64b5f6")).Render("INF")
	badgeWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fff59d")).Render("WRN")
	badgeError = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef5350")).Bold(true).Render("ERR")

	attrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// PrettyHandler is a slog.Handler producing compact single-line CLI output:
// a colored level badge, the message, then dimmed key=value attributes.
type PrettyHandler struct {
	opts  *slog.HandlerOptions
	w     io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &PrettyHandler{opts: opts, w: w, mu: &sync.Mutex{}}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}
	return level >= min
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(levelBadge(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		b.WriteString(" ")
		b.WriteString(attrStyle.Render(formatAttr(a)))
	}
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(" ")
		b.WriteString(attrStyle.Render(formatAttr(a)))
		return true
	})
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &PrettyHandler{opts: h.opts, w: h.w, mu: h.mu, attrs: merged}
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	// Groups are flattened; the CLI never nests attributes deeply enough
	// for grouping to matter.
	return h
}

func levelBadge(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return badgeError
	case level >= slog.LevelWarn:
		return badgeWarn
	case level >= slog.LevelInfo:
		return badgeInfo
	default:
		return badgeDebug
	}
}

func formatAttr(a slog.Attr) string {
	return fmt.Sprintf("%s=%v", a.Key, a.Value.Resolve())
}
