package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// ErrCallbackUnavailable marks transient orchestrator failures; callers
// retry with backoff.
var ErrCallbackUnavailable = errors.New("orchestrator unavailable")

// CallbackClient is the worker's HTTP client for the orchestrator callback
// API: event reporting, message polling, heartbeats, and summary upload.
type CallbackClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewCallbackClient creates a client for the given callback URL.
func NewCallbackClient(baseURL, apiKey string, timeout time.Duration) *CallbackClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CallbackClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// ReportEvent posts one sandbox event. Idempotent server-side by event id.
func (c *CallbackClient) ReportEvent(ctx context.Context, event models.SandboxEventReport) error {
	return c.do(ctx, http.MethodPost, "/sandbox/events", event, nil)
}

// PollMessages long-polls for injected messages after the given cursor.
// The server holds the request up to wait when no messages are pending.
func (c *CallbackClient) PollMessages(ctx context.Context, sandboxID string, cursor int64, wait time.Duration) (*models.MessagePollResponse, error) {
	path := fmt.Sprintf("/sandbox/%s/messages?cursor=%d&wait=%s",
		url.PathEscape(sandboxID), cursor, url.QueryEscape(strconv.Itoa(int(wait.Seconds()))))
	var resp models.MessagePollResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendHeartbeat posts a signed heartbeat and returns the ack.
func (c *CallbackClient) SendHeartbeat(ctx context.Context, hb models.Heartbeat) (*models.HeartbeatAck, error) {
	var ack models.HeartbeatAck
	if err := c.do(ctx, http.MethodPost, "/heartbeats", hb, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// RegisterConversation binds (task_id, sandbox_id, conversation_id).
func (c *CallbackClient) RegisterConversation(ctx context.Context, req models.RegisterConversationRequest) error {
	return c.do(ctx, http.MethodPost, "/conversations/register", req, nil)
}

// PushSyncSummary uploads the final phase_data at the end of a spec run.
func (c *CallbackClient) PushSyncSummary(ctx context.Context, summary models.SyncSummary) error {
	return c.do(ctx, http.MethodPost, "/sandbox/sync-summary", summary, nil)
}

func (c *CallbackClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCallbackUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status %d: %s", ErrCallbackUnavailable, resp.StatusCode, payload)
	case resp.StatusCode >= 400:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("orchestrator rejected request: status %d: %s", resp.StatusCode, payload)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
