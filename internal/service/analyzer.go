package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iconidentify/channelscope/internal/config"
	"github.com/iconidentify/channelscope/internal/domain"
	"github.com/iconidentify/channelscope/internal/metrics"
	"github.com/iconidentify/channelscope/pkg/format"
	"github.com/iconidentify/channelscope/pkg/youtube"
)

// monetizationNote is reported verbatim: monetization status has no public API.
const monetizationNote = "UNKNOWN — YouTube does not show publicly"

// Analyzer runs the full per-channel analysis pipeline: resolve the
// reference, fetch the profile, aggregate upload metadata, bucket it and
// score it. It holds no state across analyses; every invocation re-fetches.
type Analyzer struct {
	client     youtube.Client
	resolver   *Resolver
	recentDays int
	logger     *slog.Logger
	now        func() time.Time
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(client youtube.Client, cfg config.AnalysisConfig, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		client:     client,
		resolver:   NewResolver(client, logger),
		recentDays: cfg.RecentDays,
		logger:     logger,
		now:        time.Now,
	}
}

// ChannelFailure pairs a failed analysis with the reference that caused it.
type ChannelFailure struct {
	Channel string
	Err     error
}

// AnalyzeBatch analyzes each reference in order, strictly sequentially.
// One channel's failure never aborts the batch: successes and per-channel
// failures are returned side by side.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, inputs []string) ([]domain.ChannelReport, []ChannelFailure) {
	batchID := uuid.New().String()
	a.logger.Info("starting analysis batch", "batch_id", batchID, "channels", len(inputs))

	results := make([]domain.ChannelReport, 0, len(inputs))
	var failures []ChannelFailure
	for _, input := range inputs {
		report, err := a.Analyze(ctx, input)
		if err != nil {
			a.logger.Warn("channel analysis failed", "batch_id", batchID, "channel", input, "error", err)
			failures = append(failures, ChannelFailure{Channel: input, Err: err})
			continue
		}
		results = append(results, *report)
	}

	a.logger.Info("analysis batch finished", "batch_id", batchID, "succeeded", len(results), "failed", len(failures))
	return results, failures
}

// Preview resolves a reference and returns the bare channel profile, without
// touching the upload history.
func (a *Analyzer) Preview(ctx context.Context, input string) (*domain.ChannelProfile, error) {
	resolved, err := a.resolver.Resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	return a.client.GetChannel(ctx, resolved.ChannelID)
}

// Analyze runs the whole pipeline for one reference and assembles the report.
func (a *Analyzer) Analyze(ctx context.Context, input string) (report *domain.ChannelReport, err error) {
	start := time.Now()
	defer func() { metrics.ObserveAnalysis(start, err) }()

	resolved, err := a.resolver.Resolve(ctx, input)
	if err != nil {
		return nil, domain.NewChannelError(input, domain.OpResolve, err)
	}

	profile, err := a.client.GetChannel(ctx, resolved.ChannelID)
	if err != nil {
		return nil, domain.NewChannelError(input, domain.OpProfile, err)
	}

	// A channel without a public uploads feed analyzes as zero videos.
	var videos []domain.VideoRecord
	if profile.UploadsPlaylistID != "" {
		ids, err := a.listUploadedVideoIDs(ctx, profile.UploadsPlaylistID)
		if err != nil {
			return nil, domain.NewChannelError(input, domain.OpUploads, err)
		}
		videos, err = a.fetchVideoMetadata(ctx, ids)
		if err != nil {
			return nil, domain.NewChannelError(input, domain.OpMetadata, err)
		}
	}

	cadence := ComputeCadence(videos, a.now(), a.recentDays)
	originality := ScoreOriginality(videos)

	a.logger.Info("channel analyzed",
		"channel_id", profile.ChannelID,
		"videos_scanned", len(videos),
		"originality_score", originality.Score,
	)

	return a.assembleReport(profile, videos, cadence, originality), nil
}

// listUploadedVideoIDs pages through the uploads playlist until exhausted,
// preserving playlist order.
func (a *Analyzer) listUploadedVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	var ids []string
	pageToken := ""
	for {
		pageIDs, next, err := a.client.ListPlaylistItems(ctx, playlistID, pageToken)
		if err != nil {
			return nil, err
		}
		ids = append(ids, pageIDs...)
		if next == "" {
			return ids, nil
		}
		pageToken = next
	}
}

// fetchVideoMetadata partitions ids into fixed-size batches and flattens the
// results. Ids the platform no longer returns are dropped by the client.
func (a *Analyzer) fetchVideoMetadata(ctx context.Context, ids []string) ([]domain.VideoRecord, error) {
	var videos []domain.VideoRecord
	for start := 0; start < len(ids); start += youtube.MaxIDsPerRequest {
		end := min(start+youtube.MaxIDsPerRequest, len(ids))
		batch, err := a.client.GetVideos(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		videos = append(videos, batch...)
	}
	return videos, nil
}

func (a *Analyzer) assembleReport(profile *domain.ChannelProfile, videos []domain.VideoRecord, cadence CadenceStats, originality OriginalityResult) *domain.ChannelReport {
	return &domain.ChannelReport{
		ChannelID:         profile.ChannelID,
		Title:             profile.Title,
		ProfilePictureURL: profile.ProfilePictureURL,
		Subscribers:       profile.SubscriberCount,
		SubscribersFmt:    format.ShortNumber(profile.SubscriberCount),
		Monetization:      monetizationNote,

		OriginalityScore:       originality.Score,
		OriginalityExplanation: originality.Explanations,
		OriginalitySignals:     originality.Signals,

		ShortsCount:   cadence.ShortsCount,
		VideosCount:   cadence.LongCount,
		VideosScanned: len(videos),

		TotalShortsViewsLifetime:    cadence.TotalShortsViews,
		TotalLongViewsLifetime:      cadence.TotalLongViews,
		TotalShortsViewsLifetimeFmt: format.ShortNumber(cadence.TotalShortsViews),
		TotalLongViewsLifetimeFmt:   format.ShortNumber(cadence.TotalLongViews),

		Shorts30dCount: cadence.Shorts30Count,
		Videos30dCount: cadence.Longs30Count,

		TotalShortsViews30d:    cadence.Shorts30Views,
		TotalLongViews30d:      cadence.Longs30Views,
		TotalShortsViews30dFmt: format.ShortNumber(cadence.Shorts30Views),
		TotalLongViews30dFmt:   format.ShortNumber(cadence.Longs30Views),

		ShortsFrequencyText:  cadence.ShortsFrequency,
		VideosFrequencyText:  cadence.VideosFrequency,
		UploadsPerWeekRecent: cadence.UploadsPerWeekRecent,

		AvgShortDurationHuman: format.Seconds(cadence.AvgShortSeconds),
		AvgLongDurationHuman:  format.Seconds(cadence.AvgLongSeconds),

		LastUploadedShort: cadence.LastShort,
		LastUploadedVideo: cadence.LastVideo,
	}
}
