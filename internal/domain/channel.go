package domain

// ResolvedChannel is the outcome of parsing a free-form channel reference.
// Either ChannelID is set (direct parse or search hit) or resolution failed.
type ResolvedChannel struct {
	ChannelID    string
	CanonicalURL string
}

// ChannelProfile is the channel-level snapshot fetched once per analysis.
// UploadsPlaylistID may be empty when the channel exposes no public uploads
// feed; downstream treats that as zero videos, not an error.
type ChannelProfile struct {
	ChannelID         string
	Title             string
	ProfilePictureURL string
	SubscriberCount   int64
	UploadsPlaylistID string
}
