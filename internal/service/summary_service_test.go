package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"booknotes/internal/errors"
)

func TestSummaryService_Enhance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req summaryRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "desert planet", req.Text)

		json.NewEncoder(w).Encode(summaryResponse{Summary: "A sweeping tale of a desert planet."})
	}))
	defer server.Close()

	svc := NewSummaryService(server.URL)

	summary, err := svc.Enhance(context.Background(), "desert planet")
	assert.NoError(t, err)
	assert.Equal(t, "A sweeping tale of a desert planet.", summary)
}

func TestSummaryService_Enhance_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := NewSummaryService(server.URL)

	summary, err := svc.Enhance(context.Background(), "desert planet")
	assert.Empty(t, summary)
	assert.ErrorIs(t, err, errors.ErrSummaryUnavailable)
}

func TestSummaryService_Enhance_EmptySummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(summaryResponse{})
	}))
	defer server.Close()

	svc := NewSummaryService(server.URL)

	summary, err := svc.Enhance(context.Background(), "desert planet")
	assert.Empty(t, summary)
	assert.ErrorIs(t, err, errors.ErrSummaryUnavailable)
}

func TestSummaryService_Enhance_NotConfigured(t *testing.T) {
	svc := NewSummaryService("")

	summary, err := svc.Enhance(context.Background(), "desert planet")
	assert.Empty(t, summary)
	assert.ErrorIs(t, err, errors.ErrSummaryUnavailable)
}

func TestSummaryService_Enhance_Unreachable(t *testing.T) {
	svc := NewSummaryService("http://127.0.0.1:1")

	summary, err := svc.Enhance(context.Background(), "desert planet")
	assert.Empty(t, summary)
	assert.ErrorIs(t, err, errors.ErrSummaryUnavailable)
}
