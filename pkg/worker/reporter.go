package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// Reporter publishes sandbox events. Delivery is at-least-once: every event
// carries an id so the orchestrator can deduplicate replays.
type Reporter interface {
	Report(ctx context.Context, event models.SandboxEventReport) error
	Flush(ctx context.Context) error
}

// stampEvent fills in the id and timestamp if the caller left them empty.
func stampEvent(event *models.SandboxEventReport) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
}

// ArrayReporter collects events in memory. Used in tests and dry runs.
type ArrayReporter struct {
	mu     sync.Mutex
	events []models.SandboxEventReport
}

// NewArrayReporter creates an empty in-memory reporter.
func NewArrayReporter() *ArrayReporter {
	return &ArrayReporter{}
}

func (r *ArrayReporter) Report(_ context.Context, event models.SandboxEventReport) error {
	stampEvent(&event)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *ArrayReporter) Flush(context.Context) error { return nil }

// Events returns a copy of everything reported so far.
func (r *ArrayReporter) Events() []models.SandboxEventReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.SandboxEventReport(nil), r.events...)
}

// EventTypes returns the reported event types in order.
func (r *ArrayReporter) EventTypes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, len(r.events))
	for i, e := range r.events {
		types[i] = e.EventType
	}
	return types
}

// FileReporter appends events as JSON lines to a local file.
type FileReporter struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewFileReporter opens (or creates) the events file for appending.
func NewFileReporter(path string) (*FileReporter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open events file: %w", err)
	}
	return &FileReporter{file: f, enc: json.NewEncoder(f)}, nil
}

func (r *FileReporter) Report(_ context.Context, event models.SandboxEventReport) error {
	stampEvent(&event)
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enc.Encode(event); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (r *FileReporter) Flush(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Sync()
}

// Close flushes and closes the underlying file.
func (r *FileReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Close()
}

// HTTPReporterConfig tunes retry behavior.
type HTTPReporterConfig struct {
	MaxRetries  int
	BackoffBase time.Duration
	BackoffMax  time.Duration
}

// DefaultHTTPReporterConfig returns the built-in retry settings.
func DefaultHTTPReporterConfig() HTTPReporterConfig {
	return HTTPReporterConfig{
		MaxRetries:  5,
		BackoffBase: 500 * time.Millisecond,
		BackoffMax:  15 * time.Second,
	}
}

// HTTPReporter posts events to the orchestrator, retrying transient failures
// with capped exponential backoff + jitter. Permanent failures surface to the
// caller immediately.
type HTTPReporter struct {
	client *CallbackClient
	cfg    HTTPReporterConfig
}

// NewHTTPReporter creates a reporter over the callback client.
func NewHTTPReporter(client *CallbackClient, cfg HTTPReporterConfig) *HTTPReporter {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 5
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = 500 * time.Millisecond
	}
	return &HTTPReporter{client: client, cfg: cfg}
}

func (r *HTTPReporter) Report(ctx context.Context, event models.SandboxEventReport) error {
	stampEvent(&event)

	var lastErr error
	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.backoff(attempt)):
			}
		}
		err := r.client.ReportEvent(ctx, event)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrCallbackUnavailable) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("event %s not delivered after %d attempts: %w", event.ID, r.cfg.MaxRetries+1, lastErr)
}

func (r *HTTPReporter) Flush(context.Context) error { return nil }

// backoff returns base·2^(attempt−1) with jitter in [0.5, 1.5), capped.
func (r *HTTPReporter) backoff(attempt int) time.Duration {
	d := r.cfg.BackoffBase << min(attempt-1, 16)
	if r.cfg.BackoffMax > 0 && d > r.cfg.BackoffMax {
		d = r.cfg.BackoffMax
	}
	return d/2 + time.Duration(rand.Int64N(int64(d)))
}
