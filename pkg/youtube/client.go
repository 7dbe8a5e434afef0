// Package youtube is a thin client for the subset of the YouTube Data API v3
// that the analysis pipeline consumes. Wire responses are decoded into the
// typed domain records here, once, so nothing downstream inspects raw JSON.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iconidentify/channelscope/internal/config"
	"github.com/iconidentify/channelscope/internal/domain"
	"github.com/iconidentify/channelscope/internal/metrics"
)

// MaxIDsPerRequest is the platform's cap on ids per videos.list call.
const MaxIDsPerRequest = 50

// Client is the collaborator interface the analysis pipeline depends on.
type Client interface {
	// GetChannel fetches a channel profile. Returns domain.ErrChannelNotFound
	// when the platform has no channel for the id.
	GetChannel(ctx context.Context, channelID string) (*domain.ChannelProfile, error)
	// SearchChannelID runs a channel-type search and returns the first
	// result's channel ID, or domain.ErrChannelNotFound when nothing matches.
	SearchChannelID(ctx context.Context, query string) (string, error)
	// ListPlaylistItems fetches one page (up to 50) of video ids from a
	// playlist, returning the next page token ("" when exhausted).
	ListPlaylistItems(ctx context.Context, playlistID, pageToken string) ([]string, string, error)
	// GetVideos fetches metadata for up to MaxIDsPerRequest video ids.
	// Ids the platform no longer returns are silently omitted.
	GetVideos(ctx context.Context, ids []string) ([]domain.VideoRecord, error)
}

// HTTPClient implements Client against the YouTube Data API v3.
type HTTPClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new YouTube Data API client.
func NewClient(cfg config.YouTubeConfig) *HTTPClient {
	return &HTTPClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// channelListResponse is the subset of the channels.list payload we read.
// Counts arrive as decimal strings; absent or malformed values decode to 0.
type channelListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
		} `json:"statistics"`
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type searchListResponse struct {
	Items []struct {
		Snippet struct {
			ChannelID string `json:"channelId"`
		} `json:"snippet"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ContentDetails struct {
			VideoID string `json:"videoId"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// GetChannel fetches a channel profile via channels.list.
func (c *HTTPClient) GetChannel(ctx context.Context, channelID string) (*domain.ChannelProfile, error) {
	params := url.Values{
		"part": {"snippet,statistics,contentDetails"},
		"id":   {channelID},
	}

	var resp channelListResponse
	if err := c.get(ctx, "channels", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, domain.ErrChannelNotFound
	}

	item := resp.Items[0]
	return &domain.ChannelProfile{
		ChannelID:         channelID,
		Title:             item.Snippet.Title,
		ProfilePictureURL: item.Snippet.Thumbnails.High.URL,
		SubscriberCount:   parseCount(item.Statistics.SubscriberCount),
		UploadsPlaylistID: item.ContentDetails.RelatedPlaylists.Uploads,
	}, nil
}

// SearchChannelID runs search.list with type=channel and returns the first hit.
func (c *HTTPClient) SearchChannelID(ctx context.Context, query string) (string, error) {
	params := url.Values{
		"part":       {"snippet"},
		"q":          {query},
		"type":       {"channel"},
		"maxResults": {"1"},
	}

	var resp searchListResponse
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet.ChannelID == "" {
		return "", domain.ErrChannelNotFound
	}
	return resp.Items[0].Snippet.ChannelID, nil
}

// ListPlaylistItems fetches one playlistItems.list page.
func (c *HTTPClient) ListPlaylistItems(ctx context.Context, playlistID, pageToken string) ([]string, string, error) {
	params := url.Values{
		"part":       {"contentDetails"},
		"playlistId": {playlistID},
		"maxResults": {strconv.Itoa(MaxIDsPerRequest)},
	}
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var resp playlistItemsResponse
	if err := c.get(ctx, "playlistItems", params, &resp); err != nil {
		return nil, "", err
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ContentDetails.VideoID != "" {
			ids = append(ids, item.ContentDetails.VideoID)
		}
	}
	return ids, resp.NextPageToken, nil
}

// GetVideos fetches metadata for up to MaxIDsPerRequest ids via videos.list.
func (c *HTTPClient) GetVideos(ctx context.Context, ids []string) ([]domain.VideoRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxIDsPerRequest {
		return nil, fmt.Errorf("videos.list accepts at most %d ids, got %d", MaxIDsPerRequest, len(ids))
	}

	params := url.Values{
		"part": {"snippet,contentDetails,statistics"},
		"id":   {strings.Join(ids, ",")},
	}

	var resp videoListResponse
	if err := c.get(ctx, "videos", params, &resp); err != nil {
		return nil, err
	}

	records := make([]domain.VideoRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		records = append(records, domain.VideoRecord{
			ID:              item.ID,
			Title:           item.Snippet.Title,
			Description:     item.Snippet.Description,
			PublishedAt:     item.Snippet.PublishedAt,
			ViewCount:       parseCount(item.Statistics.ViewCount),
			DurationSeconds: ParseDuration(item.ContentDetails.Duration),
		})
	}
	return records, nil
}

// get issues one API call and decodes the JSON body into out.
func (c *HTTPClient) get(ctx context.Context, resource string, params url.Values, out interface{}) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveUpstreamRequest(resource, start, err) }()

	params.Set("key", c.apiKey)
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, resource, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", resource, domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %w: status %d", resource, domain.ErrUpstreamFailure, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", resource, domain.ErrUpstreamFailure)
	}
	return nil
}

// parseCount decodes the API's string-encoded counters, defaulting to 0.
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
