package domain

import (
	"errors"
	"testing"
)

func TestVideoRecordIsShort(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		want     bool
	}{
		{name: "zero duration", duration: 0, want: true},
		{name: "under threshold", duration: 59, want: true},
		{name: "exactly threshold", duration: 60, want: true},
		{name: "just over threshold", duration: 61, want: false},
		{name: "long video", duration: 3600, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := VideoRecord{DurationSeconds: tt.duration}
			if got := v.IsShort(); got != tt.want {
				t.Errorf("IsShort() with %ds = %v, want %v", tt.duration, got, tt.want)
			}
		})
	}
}

func TestChannelError(t *testing.T) {
	err := NewChannelError("@somehandle", "resolve", ErrChannelNotFound)

	if !errors.Is(err, ErrChannelNotFound) {
		t.Error("ChannelError should unwrap to ErrChannelNotFound")
	}
	want := "resolve [@somehandle]: channel not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestChannelErrorNoInput(t *testing.T) {
	err := NewChannelError("", "fetch profile", ErrUpstreamFailure)
	want := "fetch profile: upstream API call failed"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
