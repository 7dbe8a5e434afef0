package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/iconidentify/channelscope/internal/domain"
	"github.com/iconidentify/channelscope/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockAnalyzer implements AnalyzerService for handler tests.
type mockAnalyzer struct {
	previewProfile *domain.ChannelProfile
	previewErr     error
	previewCalls   int

	batchResults  []domain.ChannelReport
	batchFailures []service.ChannelFailure
	batchInputs   []string
}

func (m *mockAnalyzer) Preview(ctx context.Context, input string) (*domain.ChannelProfile, error) {
	m.previewCalls++
	if m.previewErr != nil {
		return nil, m.previewErr
	}
	return m.previewProfile, nil
}

func (m *mockAnalyzer) AnalyzeBatch(ctx context.Context, inputs []string) ([]domain.ChannelReport, []service.ChannelFailure) {
	m.batchInputs = inputs
	return m.batchResults, m.batchFailures
}
