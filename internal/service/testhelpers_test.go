package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/iconidentify/channelscope/internal/domain"
)

// testLogger returns a silent logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockYouTubeClient is a test implementation of youtube.Client.
type mockYouTubeClient struct {
	channels map[string]*domain.ChannelProfile
	searches map[string]string
	// playlists maps playlistID to pages of video ids, served in order.
	playlists map[string][][]string
	videos    map[string]domain.VideoRecord

	channelErr  error
	searchErr   error
	playlistErr error
	videosErr   error

	searchCalls   int
	channelCalls  int
	playlistCalls int
	videoCalls    int
}

func newMockYouTubeClient() *mockYouTubeClient {
	return &mockYouTubeClient{
		channels:  make(map[string]*domain.ChannelProfile),
		searches:  make(map[string]string),
		playlists: make(map[string][][]string),
		videos:    make(map[string]domain.VideoRecord),
	}
}

func (m *mockYouTubeClient) GetChannel(ctx context.Context, channelID string) (*domain.ChannelProfile, error) {
	m.channelCalls++
	if m.channelErr != nil {
		return nil, m.channelErr
	}
	if profile, ok := m.channels[channelID]; ok {
		return profile, nil
	}
	return nil, domain.ErrChannelNotFound
}

func (m *mockYouTubeClient) SearchChannelID(ctx context.Context, query string) (string, error) {
	m.searchCalls++
	if m.searchErr != nil {
		return "", m.searchErr
	}
	if id, ok := m.searches[query]; ok {
		return id, nil
	}
	return "", domain.ErrChannelNotFound
}

func (m *mockYouTubeClient) ListPlaylistItems(ctx context.Context, playlistID, pageToken string) ([]string, string, error) {
	m.playlistCalls++
	if m.playlistErr != nil {
		return nil, "", m.playlistErr
	}
	pages := m.playlists[playlistID]
	page := 0
	if pageToken != "" {
		for i := range pages {
			if pageToken == pageTokenFor(i) {
				page = i
				break
			}
		}
	}
	if page >= len(pages) {
		return nil, "", nil
	}
	next := ""
	if page+1 < len(pages) {
		next = pageTokenFor(page + 1)
	}
	return pages[page], next, nil
}

func pageTokenFor(page int) string {
	return "page-" + string(rune('0'+page))
}

func (m *mockYouTubeClient) GetVideos(ctx context.Context, ids []string) ([]domain.VideoRecord, error) {
	m.videoCalls++
	if m.videosErr != nil {
		return nil, m.videosErr
	}
	records := make([]domain.VideoRecord, 0, len(ids))
	for _, id := range ids {
		if v, ok := m.videos[id]; ok {
			records = append(records, v)
		}
	}
	return records, nil
}
