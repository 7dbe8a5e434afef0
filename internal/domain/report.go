package domain

// OriginalitySignals holds the weak signals feeding the originality score.
// Ratios are in [0,1]; DurationUniformity is reported unclamped and may go
// negative for highly spread catalogs.
type OriginalitySignals struct {
	DescDupRatio       float64 `json:"desc_dup_ratio"`
	EmptyDescRatio     float64 `json:"empty_desc_ratio"`
	ShortsRatio        float64 `json:"shorts_ratio"`
	DurationUniformity float64 `json:"dur_uniformity"`
}

// ChannelReport is the full analysis output for one channel. It is assembled
// once per successful analysis and never mutated afterwards. Counts and view
// sums carry both the raw value and a pre-formatted string so the dashboard
// renders without numeric logic of its own.
type ChannelReport struct {
	ChannelID         string `json:"channel_id"`
	Title             string `json:"title"`
	ProfilePictureURL string `json:"profile_pic"`
	Subscribers       int64  `json:"subscribers"`
	SubscribersFmt    string `json:"subscribers_fmt"`
	Monetization      string `json:"monetization"`

	OriginalityScore       int                `json:"originality_score"`
	OriginalityExplanation []string           `json:"originality_explanation"`
	OriginalitySignals     OriginalitySignals `json:"originality_signals"`

	ShortsCount   int `json:"shorts_count"`
	VideosCount   int `json:"videos_count"`
	VideosScanned int `json:"videos_scanned"`

	TotalShortsViewsLifetime    int64  `json:"total_shorts_views_lifetime"`
	TotalLongViewsLifetime      int64  `json:"total_long_views_lifetime"`
	TotalShortsViewsLifetimeFmt string `json:"total_shorts_views_lifetime_fmt"`
	TotalLongViewsLifetimeFmt   string `json:"total_long_views_lifetime_fmt"`

	Shorts30dCount int `json:"shorts_30d_count"`
	Videos30dCount int `json:"videos_30d_count"`

	TotalShortsViews30d    int64  `json:"total_shorts_views_30d"`
	TotalLongViews30d      int64  `json:"total_long_views_30d"`
	TotalShortsViews30dFmt string `json:"total_shorts_views_30d_fmt"`
	TotalLongViews30dFmt   string `json:"total_long_views_30d_fmt"`

	ShortsFrequencyText  string  `json:"shorts_frequency_text"`
	VideosFrequencyText  string  `json:"videos_frequency_text"`
	UploadsPerWeekRecent float64 `json:"uploads_per_week_recent"`

	AvgShortDurationHuman string `json:"avg_short_duration_human"`
	AvgLongDurationHuman  string `json:"avg_long_duration_human"`

	LastUploadedShort string `json:"last_uploaded_short"`
	LastUploadedVideo string `json:"last_uploaded_video"`
}
