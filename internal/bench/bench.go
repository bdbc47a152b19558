// Package bench runs repeated requests against a single target and reports
// latency percentiles from an HDR histogram.
package bench

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/google/uuid"

	"github.com/riposte-dev/riposte/request"
)

const (
	// Histogram range: 1 microsecond to 1 minute, 3 significant figures
	histogramMin     = 1
	histogramMax     = 60_000_000
	histogramSigFigs = 3
)

// Config describes one bench run
type Config struct {
	URL         string
	Requests    int
	Concurrency int
	Options     *request.Options
}

// Summary aggregates the outcome of a bench run
type Summary struct {
	RunID   string
	Total   int
	Errors  int64
	Elapsed time.Duration
	RPS     float64
	Min     time.Duration
	P50     time.Duration
	P90     time.Duration
	P99     time.Duration
	Max     time.Duration
	LastErr error
}

// Run executes cfg.Requests calls with cfg.Concurrency workers and collects
// latency percentiles. Failed calls count as errors and are excluded from
// the histogram.
func Run(ctx context.Context, client *request.Client, cfg Config) (*Summary, error) {
	if cfg.Requests <= 0 {
		return nil, fmt.Errorf("requests must be positive, got %d", cfg.Requests)
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.Concurrency > cfg.Requests {
		cfg.Concurrency = cfg.Requests
	}

	hist := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)
	var histMu sync.Mutex
	var errCount atomic.Int64
	var lastErr atomic.Value

	jobs := make(chan struct{})
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				resp, err := client.Do(ctx, cfg.URL, cfg.Options)
				if err != nil {
					errCount.Add(1)
					lastErr.Store(err)
					continue
				}
				histMu.Lock()
				hist.RecordValue(resp.Duration.Microseconds())
				histMu.Unlock()
			}
		}()
	}

	for i := 0; i < cfg.Requests; i++ {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- struct{}{}:
		}
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	summary := &Summary{
		RunID:   uuid.New().String(),
		Total:   cfg.Requests,
		Errors:  errCount.Load(),
		Elapsed: elapsed,
		RPS:     float64(cfg.Requests) / elapsed.Seconds(),
		Min:     time.Duration(hist.Min()) * time.Microsecond,
		P50:     time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:     time.Duration(hist.ValueAtQuantile(90)) * time.Microsecond,
		P99:     time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond,
		Max:     time.Duration(hist.Max()) * time.Microsecond,
	}
	if err, ok := lastErr.Load().(error); ok {
		summary.LastErr = err
	}

	return summary, nil
}
