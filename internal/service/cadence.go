package service

import (
	"fmt"
	"math"
	"time"

	"github.com/iconidentify/channelscope/internal/domain"
	"github.com/iconidentify/channelscope/pkg/format"
)

// CadenceStats is the bucketing engine's output: lifetime and recency-window
// splits of the upload history by short/long classification.
type CadenceStats struct {
	ShortsCount int
	LongCount   int

	TotalShortsViews int64
	TotalLongViews   int64

	Shorts30Count int
	Longs30Count  int

	Shorts30Views int64
	Longs30Views  int64

	AvgShortSeconds float64
	AvgLongSeconds  float64

	ShortsFrequency string
	VideosFrequency string

	UploadsPerWeekRecent float64

	LastShort string
	LastVideo string
}

// ComputeCadence classifies every record as short-form or long-form, splits
// each class by the trailing recency window, and derives counts, view sums,
// average durations and upload-frequency text.
//
// Records whose publishedAt does not parse are excluded from the recency
// split only, never from the lifetime split.
func ComputeCadence(videos []domain.VideoRecord, now time.Time, recentDays int) CadenceStats {
	var stats CadenceStats

	var shorts, longs []domain.VideoRecord
	for _, v := range videos {
		if v.IsShort() {
			shorts = append(shorts, v)
		} else {
			longs = append(longs, v)
		}
	}

	stats.ShortsCount = len(shorts)
	stats.LongCount = len(longs)
	stats.TotalShortsViews = sumViews(shorts)
	stats.TotalLongViews = sumViews(longs)
	stats.AvgShortSeconds = avgDuration(shorts)
	stats.AvgLongSeconds = avgDuration(longs)
	stats.LastShort = latestUpload(shorts)
	stats.LastVideo = latestUpload(longs)

	cutoff := now.Add(-time.Duration(recentDays) * 24 * time.Hour)
	for _, v := range videos {
		published, err := time.Parse(time.RFC3339, v.PublishedAt)
		if err != nil {
			continue
		}
		if published.Before(cutoff) {
			continue
		}
		if v.IsShort() {
			stats.Shorts30Count++
			stats.Shorts30Views += v.ViewCount
		} else {
			stats.Longs30Count++
			stats.Longs30Views += v.ViewCount
		}
	}

	stats.ShortsFrequency = frequencyText(stats.Shorts30Count, recentDays)
	stats.VideosFrequency = frequencyText(stats.Longs30Count, recentDays)

	perWeek := float64(stats.Shorts30Count+stats.Longs30Count) / float64(recentDays) * 7
	stats.UploadsPerWeekRecent = math.Round(perWeek*100) / 100

	return stats
}

func sumViews(videos []domain.VideoRecord) int64 {
	var total int64
	for _, v := range videos {
		total += v.ViewCount
	}
	return total
}

func avgDuration(videos []domain.VideoRecord) float64 {
	if len(videos) == 0 {
		return 0
	}
	var total int
	for _, v := range videos {
		total += v.DurationSeconds
	}
	return float64(total) / float64(len(videos))
}

// latestUpload returns the human date of the newest record in the split.
// RFC3339 timestamps are fixed-width and zero-padded, so the maximum of the
// raw strings is the newest upload.
func latestUpload(videos []domain.VideoRecord) string {
	if len(videos) == 0 {
		return "N/A"
	}
	latest := videos[0].PublishedAt
	for _, v := range videos[1:] {
		if v.PublishedAt > latest {
			latest = v.PublishedAt
		}
	}
	return format.HumanDate(latest)
}

// frequencyText renders the upload rate observed over the recency window.
func frequencyText(count, recentDays int) string {
	if count == 0 {
		return "Rarely uploads"
	}
	perWeek := float64(count) / float64(recentDays) * 7
	if perWeek < 1 {
		return fmt.Sprintf("1 upload every %d days", int(7/perWeek))
	}
	return fmt.Sprintf("%.1f uploads/week", perWeek)
}
