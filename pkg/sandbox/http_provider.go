package sandbox

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// HTTPProvider talks to a sandbox provider's REST API.
type HTTPProvider struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPProvider creates a provider client. baseURL has no trailing slash.
func NewHTTPProvider(baseURL, token string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPProvider{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

type createSandboxRequest struct {
	Image     string                  `json:"image"`
	Resources models.ResourceEnvelope `json:"resources"`
	Labels    map[string]string       `json:"labels,omitempty"`
}

// CreateSandbox provisions a new sandbox with the given resource envelope.
func (p *HTTPProvider) CreateSandbox(ctx context.Context, image string, resources models.ResourceEnvelope, labels map[string]string) (*Sandbox, error) {
	var sb Sandbox
	err := p.do(ctx, http.MethodPost, "/sandboxes", createSandboxRequest{
		Image:     image,
		Resources: resources,
		Labels:    labels,
	}, &sb)
	if err != nil {
		return nil, err
	}
	return &sb, nil
}

// UploadFiles writes files into the sandbox filesystem. Contents are base64
// encoded on the wire.
func (p *HTTPProvider) UploadFiles(ctx context.Context, sandboxID string, files map[string][]byte) error {
	encoded := make(map[string]string, len(files))
	for path, content := range files {
		encoded[path] = base64.StdEncoding.EncodeToString(content)
	}
	return p.do(ctx, http.MethodPost, "/sandboxes/"+url.PathEscape(sandboxID)+"/files",
		map[string]any{"files": encoded}, nil)
}

// Exec runs a command inside the sandbox and returns its output.
func (p *HTTPProvider) Exec(ctx context.Context, sandboxID, command string, env map[string]string) (*ExecResult, error) {
	var result ExecResult
	err := p.do(ctx, http.MethodPost, "/sandboxes/"+url.PathEscape(sandboxID)+"/exec",
		map[string]any{"command": command, "env": env}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes the sandbox. Deleting an unknown sandbox is a no-op.
func (p *HTTPProvider) Delete(ctx context.Context, sandboxID string) error {
	err := p.do(ctx, http.MethodDelete, "/sandboxes/"+url.PathEscape(sandboxID), nil, nil)
	if err != nil && err != ErrSandboxNotFound {
		return err
	}
	return nil
}

// GetPreviewLink returns a tokenized URL for the given sandbox port.
func (p *HTTPProvider) GetPreviewLink(ctx context.Context, sandboxID string, port int) (*PreviewLink, error) {
	var link PreviewLink
	err := p.do(ctx, http.MethodGet,
		"/sandboxes/"+url.PathEscape(sandboxID)+"/preview?port="+strconv.Itoa(port), nil, &link)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Resize requests a live resource change for the sandbox.
func (p *HTTPProvider) Resize(ctx context.Context, sandboxID string, resources models.ResourceEnvelope) error {
	return p.do(ctx, http.MethodPatch, "/sandboxes/"+url.PathEscape(sandboxID)+"/resources", resources, nil)
}

func (p *HTTPProvider) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrSandboxNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status %d: %s", ErrProviderUnavailable, resp.StatusCode, payload)
	case resp.StatusCode >= 400:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("sandbox provider rejected request: status %d: %s", resp.StatusCode, payload)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}
