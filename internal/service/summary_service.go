package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"booknotes/internal/errors"
)

// summaryTimeout bounds the webhook call; the upstream model can be slow.
const summaryTimeout = 25 * time.Second

// SummaryService rewrites note text into an enhanced summary via an external
// AI webhook. The webhook is opaque: text in, text out, may fail, may time
// out. Nothing here depends on its internals.
type SummaryService interface {
	Enhance(ctx context.Context, text string) (string, error)
}

type summaryService struct {
	webhookURL string
	client     *http.Client
}

// NewSummaryService creates a summary service calling the given webhook URL.
// An empty URL is allowed; Enhance then reports the service as unavailable.
func NewSummaryService(webhookURL string) SummaryService {
	return &summaryService{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: summaryTimeout},
	}
}

type summaryRequest struct {
	Text string `json:"text"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// Enhance sends the text to the webhook and returns its summary.
func (s *summaryService) Enhance(ctx context.Context, text string) (string, error) {
	if s.webhookURL == "" {
		return "", errors.ErrSummaryUnavailable
	}

	payload, err := json.Marshal(summaryRequest{Text: text})
	if err != nil {
		return "", errors.ErrSummaryUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return "", errors.ErrSummaryUnavailable
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.ErrSummaryUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.ErrSummaryUnavailable
	}

	var result summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.ErrSummaryUnavailable
	}
	if result.Summary == "" {
		return "", errors.ErrSummaryUnavailable
	}

	return result.Summary, nil
}
