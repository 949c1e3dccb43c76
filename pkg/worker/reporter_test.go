package worker

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

func TestArrayReporterStampsEvents(t *testing.T) {
	reporter := NewArrayReporter()

	require.NoError(t, reporter.Report(context.Background(), models.SandboxEventReport{
		SandboxID: "sbx-1",
		EventType: models.EventTypeAgentText,
	}))

	events := reporter.Events()
	require.Len(t, events, 1)
	assert.NotEmpty(t, events[0].ID, "missing id gets generated")
	assert.False(t, events[0].Timestamp.IsZero(), "missing timestamp gets stamped")
}

func TestArrayReporterPreservesCallerID(t *testing.T) {
	reporter := NewArrayReporter()

	require.NoError(t, reporter.Report(context.Background(), models.SandboxEventReport{
		ID:        "evt-fixed",
		SandboxID: "sbx-1",
		EventType: models.EventTypeAgentText,
	}))

	assert.Equal(t, "evt-fixed", reporter.Events()[0].ID)
}

func TestFileReporterWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	reporter, err := NewFileReporter(path)
	require.NoError(t, err)
	defer reporter.Close()

	for _, et := range []string{models.EventTypeAgentText, models.EventTypeAgentCompleted} {
		require.NoError(t, reporter.Report(context.Background(), models.SandboxEventReport{
			SandboxID: "sbx-1",
			EventType: et,
		}))
	}
	require.NoError(t, reporter.Flush(context.Background()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var types []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var event models.SandboxEventReport
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &event))
		types = append(types, event.EventType)
	}
	assert.Equal(t, []string{models.EventTypeAgentText, models.EventTypeAgentCompleted}, types)
}

func TestHTTPReporterRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	reporter := NewHTTPReporter(
		NewCallbackClient(srv.URL, "key", 5*time.Second),
		HTTPReporterConfig{MaxRetries: 5, BackoffBase: time.Millisecond, BackoffMax: 5 * time.Millisecond},
	)

	err := reporter.Report(context.Background(), models.SandboxEventReport{
		SandboxID: "sbx-1",
		EventType: models.EventTypeAgentText,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPReporterSurfacesPermanentFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	reporter := NewHTTPReporter(
		NewCallbackClient(srv.URL, "key", 5*time.Second),
		HTTPReporterConfig{MaxRetries: 5, BackoffBase: time.Millisecond},
	)

	err := reporter.Report(context.Background(), models.SandboxEventReport{EventType: "x"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
}

func TestHTTPReporterGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	reporter := NewHTTPReporter(
		NewCallbackClient(srv.URL, "key", 5*time.Second),
		HTTPReporterConfig{MaxRetries: 2, BackoffBase: time.Millisecond, BackoffMax: 2 * time.Millisecond},
	)

	err := reporter.Report(context.Background(), models.SandboxEventReport{EventType: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCallbackUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}
