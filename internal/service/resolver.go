package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/iconidentify/channelscope/internal/domain"
	"github.com/iconidentify/channelscope/pkg/youtube"
)

// Resolver normalizes free-form channel references (raw ID, URL, @handle,
// bare search term) into canonical channel IDs.
type Resolver struct {
	client youtube.Client
	logger *slog.Logger
}

// NewResolver creates a new resolver.
func NewResolver(client youtube.Client, logger *slog.Logger) *Resolver {
	return &Resolver{client: client, logger: logger}
}

// parseReference applies the direct-parse rules in order, first match wins.
// It returns a literal channel ID when one can be extracted without a network
// call, otherwise a canonical hint for the search fallback.
func parseReference(input string) (channelID, hint string) {
	s := strings.TrimSpace(input)

	// Raw channel ID
	if strings.HasPrefix(s, "UC") && len(s) > 20 {
		return s, "https://www.youtube.com/channel/" + s
	}

	if strings.Contains(s, "youtube.com") {
		if strings.Contains(s, "/channel/") {
			id := strings.SplitN(s, "/channel/", 2)[1]
			id = strings.SplitN(id, "/", 2)[0]
			id = strings.SplitN(id, "?", 2)[0]
			return id, "https://www.youtube.com/channel/" + id
		}
		base := strings.SplitN(s, "?", 2)[0]
		return "", strings.TrimRight(base, "/")
	}

	if strings.HasPrefix(s, "@") {
		return "", "https://www.youtube.com/" + s
	}

	return "", s
}

// Resolve turns a raw reference into a resolved channel. Blank input is
// rejected before any network call. When direct parsing yields no literal ID,
// the last path segment of the hint feeds a channel-type search; that lookup
// is best-effort and converts any transport error into ErrChannelNotFound.
func (r *Resolver) Resolve(ctx context.Context, input string) (domain.ResolvedChannel, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return domain.ResolvedChannel{}, domain.ErrEmptyInput
	}

	channelID, hint := parseReference(trimmed)
	if channelID != "" {
		return domain.ResolvedChannel{ChannelID: channelID, CanonicalURL: hint}, nil
	}

	query := hint
	if idx := strings.LastIndex(query, "/"); idx >= 0 {
		query = query[idx+1:]
	}

	id, err := r.client.SearchChannelID(ctx, query)
	if err != nil {
		r.logger.Debug("search lookup failed", "query", query, "error", err)
		return domain.ResolvedChannel{}, domain.ErrChannelNotFound
	}
	return domain.ResolvedChannel{ChannelID: id, CanonicalURL: hint}, nil
}
