package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iconidentify/channelscope/internal/config"
	"github.com/iconidentify/channelscope/internal/domain"
)

func testAnalyzer(client *mockYouTubeClient) *Analyzer {
	a := NewAnalyzer(client, config.AnalysisConfig{MaxChannels: 5, RecentDays: 30}, testLogger())
	a.now = func() time.Time { return cadenceNow }
	return a
}

func seedChannel(client *mockYouTubeClient) {
	client.channels["UCvalid123456789012345"] = &domain.ChannelProfile{
		ChannelID:         "UCvalid123456789012345",
		Title:             "Valid Channel",
		SubscriberCount:   1500,
		UploadsPlaylistID: "UUvalid",
	}
	client.playlists["UUvalid"] = [][]string{
		{"s1", "l1"},
		{"l2"},
	}
	client.videos["s1"] = video("s1", "2024-06-10T00:00:00Z", 45, 1000)
	client.videos["l1"] = video("l1", "2024-06-01T00:00:00Z", 600, 20000)
	client.videos["l2"] = video("l2", "2023-01-01T00:00:00Z", 1200, 50000)
}

func TestAnalyze_FullPipeline(t *testing.T) {
	client := newMockYouTubeClient()
	seedChannel(client)
	analyzer := testAnalyzer(client)

	report, err := analyzer.Analyze(context.Background(), "UCvalid123456789012345")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if report.Title != "Valid Channel" {
		t.Errorf("Title = %q", report.Title)
	}
	if report.VideosScanned != 3 {
		t.Errorf("VideosScanned = %d, want 3 (both playlist pages)", report.VideosScanned)
	}
	if report.ShortsCount != 1 || report.VideosCount != 2 {
		t.Errorf("split = %d/%d, want 1/2", report.ShortsCount, report.VideosCount)
	}
	if report.ShortsCount+report.VideosCount != report.VideosScanned {
		t.Error("shorts + longs must equal videos scanned")
	}
	if report.SubscribersFmt != "1.5K" {
		t.Errorf("SubscribersFmt = %q, want 1.5K", report.SubscribersFmt)
	}
	if report.TotalLongViewsLifetime != 70000 {
		t.Errorf("TotalLongViewsLifetime = %d, want 70000", report.TotalLongViewsLifetime)
	}
	if report.TotalLongViewsLifetimeFmt != "70K" {
		t.Errorf("TotalLongViewsLifetimeFmt = %q, want 70K", report.TotalLongViewsLifetimeFmt)
	}
	if report.OriginalityScore < 0 || report.OriginalityScore > 100 {
		t.Errorf("OriginalityScore = %d, out of range", report.OriginalityScore)
	}
	if report.Monetization == "" {
		t.Error("Monetization note should always be present")
	}
	if client.playlistCalls != 2 {
		t.Errorf("playlist pages fetched = %d, want 2", client.playlistCalls)
	}
}

func TestAnalyze_NoUploadsPlaylist(t *testing.T) {
	client := newMockYouTubeClient()
	client.channels["UCnouploads0123456789x"] = &domain.ChannelProfile{
		ChannelID: "UCnouploads0123456789x",
		Title:     "Empty Channel",
	}
	analyzer := testAnalyzer(client)

	report, err := analyzer.Analyze(context.Background(), "UCnouploads0123456789x")
	if err != nil {
		t.Fatalf("missing uploads playlist should not be an error, got %v", err)
	}

	if report.VideosScanned != 0 {
		t.Errorf("VideosScanned = %d, want 0", report.VideosScanned)
	}
	if client.playlistCalls != 0 {
		t.Error("no playlist call should be made without an uploads playlist")
	}
	if report.AvgShortDurationHuman != "N/A" || report.AvgLongDurationHuman != "N/A" {
		t.Error("empty splits should report N/A durations")
	}
}

func TestAnalyze_UnknownChannel(t *testing.T) {
	client := newMockYouTubeClient()
	analyzer := testAnalyzer(client)

	_, err := analyzer.Analyze(context.Background(), "UCunknown4567890123456")
	if !errors.Is(err, domain.ErrChannelNotFound) {
		t.Errorf("expected ErrChannelNotFound, got %v", err)
	}
}

func TestAnalyze_WrapsFailuresWithChannelError(t *testing.T) {
	client := newMockYouTubeClient()
	analyzer := testAnalyzer(client)

	// Direct ID that resolves but has no profile: the profile fetch is the
	// failing operation.
	_, err := analyzer.Analyze(context.Background(), "UCunknown4567890123456")
	var cerr *domain.ChannelError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ChannelError, got %T: %v", err, err)
	}
	if cerr.Input != "UCunknown4567890123456" {
		t.Errorf("Input = %q, want the submitted reference", cerr.Input)
	}
	if cerr.Op != domain.OpProfile {
		t.Errorf("Op = %q, want %q", cerr.Op, domain.OpProfile)
	}

	// Handle that the search cannot resolve: the resolve step is the failing
	// operation.
	_, err = analyzer.Analyze(context.Background(), "@unresolvable")
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ChannelError, got %T: %v", err, err)
	}
	if cerr.Op != domain.OpResolve {
		t.Errorf("Op = %q, want %q", cerr.Op, domain.OpResolve)
	}
	if !errors.Is(err, domain.ErrChannelNotFound) {
		t.Errorf("wrapped error must still match ErrChannelNotFound, got %v", err)
	}
}

func TestAnalyze_UpstreamFailureAborts(t *testing.T) {
	client := newMockYouTubeClient()
	seedChannel(client)
	client.playlistErr = domain.ErrUpstreamFailure
	analyzer := testAnalyzer(client)

	_, err := analyzer.Analyze(context.Background(), "UCvalid123456789012345")
	if !errors.Is(err, domain.ErrUpstreamFailure) {
		t.Errorf("expected ErrUpstreamFailure, got %v", err)
	}
}

func TestAnalyzeBatch_IsolatesFailures(t *testing.T) {
	client := newMockYouTubeClient()
	seedChannel(client)
	analyzer := testAnalyzer(client)

	results, failures := analyzer.AnalyzeBatch(context.Background(), []string{
		"UCvalid123456789012345",
		"UCinvalid0987654321098",
	})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].ChannelID != "UCvalid123456789012345" {
		t.Errorf("result channel = %q", results[0].ChannelID)
	}
	if len(failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(failures))
	}
	if failures[0].Channel != "UCinvalid0987654321098" {
		t.Errorf("failure channel = %q", failures[0].Channel)
	}
	if !errors.Is(failures[0].Err, domain.ErrChannelNotFound) {
		t.Errorf("failure err = %v, want ErrChannelNotFound", failures[0].Err)
	}
}

func TestAnalyzeBatch_AllFail(t *testing.T) {
	client := newMockYouTubeClient()
	analyzer := testAnalyzer(client)

	results, failures := analyzer.AnalyzeBatch(context.Background(), []string{"nope", ""})

	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
	if len(failures) != 2 {
		t.Errorf("got %d failures, want 2", len(failures))
	}
}

func TestPreview(t *testing.T) {
	client := newMockYouTubeClient()
	seedChannel(client)
	analyzer := testAnalyzer(client)

	profile, err := analyzer.Preview(context.Background(), "UCvalid123456789012345")
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if profile.Title != "Valid Channel" {
		t.Errorf("Title = %q", profile.Title)
	}
	if client.playlistCalls != 0 || client.videoCalls != 0 {
		t.Error("preview must not touch the upload history")
	}
}

func TestPreview_NotFound(t *testing.T) {
	client := newMockYouTubeClient()
	analyzer := testAnalyzer(client)

	_, err := analyzer.Preview(context.Background(), "@unknownhandle")
	if !errors.Is(err, domain.ErrChannelNotFound) {
		t.Errorf("expected ErrChannelNotFound, got %v", err)
	}
}
