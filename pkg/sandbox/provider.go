// Package sandbox defines the narrow interface to the external sandbox
// provider and an HTTP client implementation of it.
package sandbox

import (
	"context"
	"errors"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// Sentinel errors for provider operations.
var (
	// ErrSandboxNotFound indicates the provider has no sandbox with that id.
	ErrSandboxNotFound = errors.New("sandbox not found")

	// ErrProviderUnavailable indicates a transient provider failure; callers
	// retry with backoff.
	ErrProviderUnavailable = errors.New("sandbox provider unavailable")
)

// Sandbox is the provider's handle for one isolated execution environment.
type Sandbox struct {
	ID     string            `json:"id"`
	Image  string            `json:"image"`
	Labels map[string]string `json:"labels,omitempty"`
}

// ExecResult is the outcome of a command run inside a sandbox.
type ExecResult struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exit_code"`
}

// PreviewLink is a tokenized URL exposing a sandbox port.
type PreviewLink struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

// Provider is the external sandbox interface. Delete is idempotent: deleting
// an unknown sandbox succeeds.
type Provider interface {
	CreateSandbox(ctx context.Context, image string, resources models.ResourceEnvelope, labels map[string]string) (*Sandbox, error)
	UploadFiles(ctx context.Context, sandboxID string, files map[string][]byte) error
	Exec(ctx context.Context, sandboxID, command string, env map[string]string) (*ExecResult, error)
	Delete(ctx context.Context, sandboxID string) error
	GetPreviewLink(ctx context.Context, sandboxID string, port int) (*PreviewLink, error)
	Resize(ctx context.Context, sandboxID string, resources models.ResourceEnvelope) error
}
