// Package ui provides embedded UI assets for the channelscope server.
package ui

import (
	_ "embed"
)

// IndexHTML is the channel analysis dashboard.
//
//go:embed index.html
var IndexHTML []byte

//go:embed privacy.html
var PrivacyHTML []byte

//go:embed terms.html
var TermsHTML []byte

//go:embed disclaimer.html
var DisclaimerHTML []byte
