package domain

// ShortsMaxSeconds is the duration threshold separating short-form from
// long-form uploads.
const ShortsMaxSeconds = 60

// VideoRecord is the normalized per-upload metadata used by the analysis
// pipeline. Immutable once constructed at the aggregator boundary.
type VideoRecord struct {
	ID              string
	Title           string
	Description     string
	PublishedAt     string // RFC3339; compared lexically, parsed only for display
	ViewCount       int64
	DurationSeconds int
}

// IsShort reports whether the video counts as short-form content.
func (v VideoRecord) IsShort() bool {
	return v.DurationSeconds <= ShortsMaxSeconds
}
