package statusline

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/grovetools/p4mux/config"
	"github.com/sirupsen/logrus"
)

// Renderer turns the configured format into a status line. It holds no
// per-render state and may be reused.
type Renderer struct {
	tmux        config.TmuxConfig
	statusFlags []string
	tokens      []Token
	querier     Querier
	logger      *logrus.Entry
}

// NewRenderer creates a Renderer for cfg backed by querier. logger may be nil.
func NewRenderer(cfg *config.Config, querier Querier, logger *logrus.Entry) *Renderer {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard.WithField("component", "statusline")
	}
	return &Renderer{
		tmux:        cfg.Tmux,
		statusFlags: cfg.Perforce.StatusFlagList(),
		tokens:      Compile(cfg.Tmux.Format),
		querier:     querier,
		logger:      logger,
	}
}

// Render returns the status line for client, querying p4 scoped to path.
func (r *Renderer) Render(ctx context.Context, client, path string) string {
	return strings.Join(r.Fragments(ctx, client, path), "")
}

// Fragments returns the pieces Render concatenates: a clear fragment, then
// for every token its output followed by another clear fragment.
func (r *Renderer) Fragments(ctx context.Context, client, path string) []string {
	cache := &queryCache{
		querier:     r.querier,
		path:        path,
		statusFlags: r.statusFlags,
		logger:      r.logger.WithField("path", path),
	}

	reset := r.tmux.Styles.Clear
	fragments := []string{reset}
	for _, token := range r.tokens {
		fragments = r.expand(ctx, cache, client, token, fragments)
		fragments = append(fragments, reset)
	}
	return fragments
}

// expand appends the output of one token to out.
func (r *Renderer) expand(ctx context.Context, cache *queryCache, client string, token Token, out []string) []string {
	d := token.Directive
	if d.needsLogin() && !cache.isLoggedIn(ctx) {
		return out
	}

	styles, icons := r.tmux.Styles, r.tmux.Icons

	switch d {
	case Literal:
		return append(out, token.Text)

	case Client:
		return append(out, styles.Client, client)

	case Login:
		if cache.isLoggedIn(ctx) {
			return append(out, styles.Login, icons.Login)
		}
		return append(out, styles.Logout, icons.Logout)

	case Add, Edit, Delete:
		counts := cache.openCounts(ctx)
		if counts == nil {
			return out
		}
		switch d {
		case Add:
			return appendBadge(out, styles.Add, counts.Add, icons.Add)
		case Edit:
			return appendBadge(out, styles.Edit, counts.Edit, icons.Edit)
		default:
			return appendBadge(out, styles.Delete, counts.Delete, icons.Delete)
		}

	case ReconcileAdd, ReconcileEdit:
		counts := cache.statusCounts(ctx)
		if counts == nil {
			return out
		}
		if d == ReconcileAdd {
			return appendBadge(out, styles.ReconcileAdd, counts.ReconcileAdd, icons.Add)
		}
		return appendBadge(out, styles.ReconcileEdit, counts.ReconcileEdit, icons.Edit)

	case Status:
		var parts []string
		for _, part := range statusParts {
			if badge := strings.Join(r.expand(ctx, cache, client, Token{Directive: part}, nil), ""); badge != "" {
				parts = append(parts, badge)
			}
		}
		return append(out, strings.Join(parts, r.tmux.StatusSep))
	}

	return out
}

// appendBadge appends style, count and icon when count is positive.
func appendBadge(out []string, style string, count uint, icon string) []string {
	if count == 0 {
		return out
	}
	return append(out, style+strconv.FormatUint(uint64(count), 10)+icon)
}
