package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// apiClient is a thin client over the orchestrator's operator surface.
type apiClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func newAPIClient() *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(serverURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// errAlreadyExists marks a 409 from the orchestrator: the entity is
// already there, which sync treats as success.
var errAlreadyExists = fmt.Errorf("already exists")

func (c *apiClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return errAlreadyExists
	}
	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(data)))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *apiClient) createTicket(ctx context.Context, req models.CreateTicketRequest) error {
	return c.do(ctx, http.MethodPost, "/api/v1/tickets", req, nil)
}

func (c *apiClient) createTask(ctx context.Context, req models.CreateTaskRequest) error {
	return c.do(ctx, http.MethodPost, "/api/v1/tasks", req, nil)
}

// remoteTicket and remoteTask mirror the fields sync pull needs from the
// orchestrator's entity JSON.
type remoteTicket struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	BlockedBy   []string `json:"blocked_by"`
	Blocks      []string `json:"blocks"`
}

type remoteTask struct {
	ID          string   `json:"id"`
	TicketID    *string  `json:"ticket_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	DependsOn   []string `json:"depends_on"`
	OwnedFiles  []string `json:"owned_files"`
}

func (c *apiClient) listTickets(ctx context.Context) ([]remoteTicket, error) {
	var resp struct {
		Tickets []remoteTicket `json:"tickets"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/tickets?limit=500", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tickets, nil
}

func (c *apiClient) listTasks(ctx context.Context, status string) ([]remoteTask, error) {
	var resp struct {
		Tasks []remoteTask `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/tasks?limit=500&status="+status, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}
