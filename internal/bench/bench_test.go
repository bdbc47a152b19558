package bench

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riposte-dev/riposte/request"
)

func TestRun(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	summary, err := Run(context.Background(), request.New(), Config{
		URL:         server.URL,
		Requests:    20,
		Concurrency: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20), hits.Load())
	assert.Equal(t, 20, summary.Total)
	assert.Zero(t, summary.Errors)
	assert.NotEmpty(t, summary.RunID)
	assert.Greater(t, summary.RPS, 0.0)
	assert.LessOrEqual(t, summary.P50, summary.P99)
	assert.LessOrEqual(t, summary.Min, summary.Max)
}

func TestRun_CountsErrors(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Malformed JSON so TypeJSON calls fail
		hits.Add(1)
		w.Write([]byte(`{broken`))
	}))
	defer server.Close()

	summary, err := Run(context.Background(), request.New(), Config{
		URL:      server.URL,
		Requests: 5,
		Options:  &request.Options{ResponseType: request.TypeJSON},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), summary.Errors)
	assert.Error(t, summary.LastErr)
}

func TestRun_InvalidConfig(t *testing.T) {
	_, err := Run(context.Background(), request.New(), Config{URL: "http://x", Requests: 0})
	assert.Error(t, err)
}

func TestRun_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, request.New(), Config{URL: server.URL, Requests: 1000, Concurrency: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
