package service

import (
	"math"
	"strings"

	"github.com/iconidentify/channelscope/internal/domain"
)

// Explanation strings for the originality score. All notes whose signal
// crosses its threshold are included, in this order.
const (
	noteDuplicateDescriptions = "Duplicate descriptions detected."
	noteEmptyDescriptions     = "Many videos have empty descriptions."
	noteMostlyShorts          = "Mostly shorts content — reused content risk."
	noteUniformDurations      = "Durations too uniform — templated content."
	noteNoSignals             = "No reused-content signals detected."
)

// OriginalityResult is the scorer's output: a bounded score, ordered
// human-readable notes, and the raw signals behind them.
type OriginalityResult struct {
	Score        int
	Explanations []string
	Signals      domain.OriginalitySignals
}

// ScoreOriginality estimates how much the channel's metadata resembles
// templated or reused content. The signals are weak heuristics over
// descriptions and durations only; no content is inspected.
func ScoreOriginality(videos []domain.VideoRecord) OriginalityResult {
	n := len(videos)
	denom := float64(max(1, n))

	descs := make([]string, n)
	counts := make(map[string]int, n)
	for i, v := range videos {
		descs[i] = strings.TrimSpace(v.Description)
		counts[descs[i]]++
	}

	var duplicated, nearEmpty, shortCount int
	var durTotal float64
	for i, v := range videos {
		if descs[i] != "" && counts[descs[i]] > 1 {
			duplicated++
		}
		if len(descs[i]) < 10 {
			nearEmpty++
		}
		if v.IsShort() {
			shortCount++
		}
		durTotal += float64(v.DurationSeconds)
	}

	mean := durTotal / denom
	var variance float64
	for _, v := range videos {
		d := float64(v.DurationSeconds) - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / denom)

	signals := domain.OriginalitySignals{
		DescDupRatio:       float64(duplicated) / denom,
		EmptyDescRatio:     float64(nearEmpty) / denom,
		ShortsRatio:        float64(shortCount) / denom,
		DurationUniformity: 1 - stddev/(mean+1),
	}

	score := 100.0
	score -= 20 * (signals.DescDupRatio + 0.5*signals.EmptyDescRatio)
	score -= 15 * signals.ShortsRatio
	score -= 10 * (1 - signals.DurationUniformity)

	// Clamp first, truncate after, so pathological signals still land in range.
	final := int(math.Max(0, math.Min(100, score)))

	var notes []string
	if signals.DescDupRatio > 0.2 {
		notes = append(notes, noteDuplicateDescriptions)
	}
	if signals.EmptyDescRatio > 0.4 {
		notes = append(notes, noteEmptyDescriptions)
	}
	if signals.ShortsRatio > 0.85 {
		notes = append(notes, noteMostlyShorts)
	}
	if signals.DurationUniformity < 0.3 {
		notes = append(notes, noteUniformDurations)
	}
	if len(notes) == 0 {
		notes = append(notes, noteNoSignals)
	}

	return OriginalityResult{Score: final, Explanations: notes, Signals: signals}
}
