package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iconidentify/channelscope/internal/domain"
	"github.com/iconidentify/channelscope/internal/service"
	"github.com/iconidentify/channelscope/pkg/format"
)

// AnalyzerService is the analysis surface the channel handler depends on.
type AnalyzerService interface {
	Preview(ctx context.Context, input string) (*domain.ChannelProfile, error)
	AnalyzeBatch(ctx context.Context, inputs []string) ([]domain.ChannelReport, []service.ChannelFailure)
}

// ChannelHandler handles channel preview and analysis requests.
type ChannelHandler struct {
	analyzer    AnalyzerService
	maxChannels int
	logger      *slog.Logger
}

// NewChannelHandler creates a new channel handler.
func NewChannelHandler(analyzer AnalyzerService, maxChannels int, logger *slog.Logger) *ChannelHandler {
	return &ChannelHandler{
		analyzer:    analyzer,
		maxChannels: maxChannels,
		logger:      logger,
	}
}

// PreviewRequest is the JSON request body for channel preview.
type PreviewRequest struct {
	Input string `json:"input"`
}

// PreviewResponse is the JSON response for a successful preview.
type PreviewResponse struct {
	Success        bool   `json:"success"`
	ChannelID      string `json:"channel_id"`
	Title          string `json:"title"`
	ProfilePicture string `json:"profile_pic"`
	Subscribers    int64  `json:"subscribers"`
	SubscribersFmt string `json:"subscribers_fmt"`
}

// AnalyzeRequest is the JSON request body for batch analysis.
type AnalyzeRequest struct {
	Channels []string `json:"channels"`
}

// ChannelErrorResponse pairs a failed reference with its error message.
type ChannelErrorResponse struct {
	Channel string `json:"channel"`
	Error   string `json:"error"`
}

// AnalyzeResponse is the JSON response for batch analysis.
type AnalyzeResponse struct {
	Success bool                   `json:"success"`
	Results []domain.ChannelReport `json:"results"`
	Errors  []ChannelErrorResponse `json:"errors"`
}

// Preview handles POST /preview
func (h *ChannelHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		h.writeError(w, http.StatusBadRequest, "input is required")
		return
	}

	profile, err := h.analyzer.Preview(r.Context(), req.Input)
	if err != nil {
		if errors.Is(err, domain.ErrChannelNotFound) || errors.Is(err, domain.ErrEmptyInput) {
			h.writeError(w, http.StatusNotFound, "Channel not found")
			return
		}
		h.logger.Error("preview failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "preview failed")
		return
	}

	h.writeJSON(w, http.StatusOK, PreviewResponse{
		Success:        true,
		ChannelID:      profile.ChannelID,
		Title:          profile.Title,
		ProfilePicture: profile.ProfilePictureURL,
		Subscribers:    profile.SubscriberCount,
		SubscribersFmt: format.ShortNumber(profile.SubscriberCount),
	})
}

// Analyze handles POST /api/analyze
func (h *ChannelHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Entries beyond the batch limit are ignored, not rejected.
	inputs := req.Channels
	if len(inputs) > h.maxChannels {
		inputs = inputs[:h.maxChannels]
	}

	results, failures := h.analyzer.AnalyzeBatch(r.Context(), inputs)

	resp := AnalyzeResponse{
		Success: true,
		Results: results,
		Errors:  make([]ChannelErrorResponse, 0, len(failures)),
	}
	for _, f := range failures {
		resp.Errors = append(resp.Errors, ChannelErrorResponse{
			Channel: f.Channel,
			Error:   errorMessage(f.Err),
		})
	}
	if resp.Results == nil {
		resp.Results = []domain.ChannelReport{}
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// errorMessage maps pipeline errors to the messages surfaced per channel.
// Resolution failures and missing profiles read differently, so the wrap
// site's operation picks between them.
func errorMessage(err error) string {
	var cerr *domain.ChannelError
	resolveFailed := errors.As(err, &cerr) && cerr.Op == domain.OpResolve

	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return "Empty channel reference"
	case resolveFailed && errors.Is(err, domain.ErrChannelNotFound):
		return "Could not resolve channel ID"
	case errors.Is(err, domain.ErrChannelNotFound):
		return "Channel not found"
	case errors.Is(err, domain.ErrUpstreamFailure):
		return "YouTube API error"
	default:
		return "Analysis failed"
	}
}

func (h *ChannelHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *ChannelHandler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": message})
}
