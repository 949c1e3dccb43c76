package sandbox

import (
	"context"
	"fmt"
	"sync"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// FakeProvider is an in-memory Provider for tests. Failures can be scripted
// per operation with FailNext.
type FakeProvider struct {
	mu        sync.Mutex
	nextID    int
	sandboxes map[string]*fakeSandbox
	failures  map[string]int

	// ExecFn overrides Exec behavior when set.
	ExecFn func(sandboxID, command string, env map[string]string) (*ExecResult, error)
}

type fakeSandbox struct {
	sandbox   Sandbox
	resources models.ResourceEnvelope
	files     map[string][]byte
	execs     []string
}

// NewFakeProvider creates an empty fake.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		sandboxes: make(map[string]*fakeSandbox),
		failures:  make(map[string]int),
	}
}

// FailNext makes the next n calls of the named operation ("create", "upload",
// "exec", "delete") return ErrProviderUnavailable.
func (f *FakeProvider) FailNext(op string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[op] = n
}

func (f *FakeProvider) consumeFailure(op string) bool {
	if f.failures[op] > 0 {
		f.failures[op]--
		return true
	}
	return false
}

func (f *FakeProvider) CreateSandbox(_ context.Context, image string, resources models.ResourceEnvelope, labels map[string]string) (*Sandbox, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.consumeFailure("create") {
		return nil, ErrProviderUnavailable
	}
	f.nextID++
	sb := Sandbox{ID: fmt.Sprintf("sbx-%04d", f.nextID), Image: image, Labels: labels}
	f.sandboxes[sb.ID] = &fakeSandbox{
		sandbox:   sb,
		resources: resources,
		files:     make(map[string][]byte),
	}
	return &sb, nil
}

func (f *FakeProvider) UploadFiles(_ context.Context, sandboxID string, files map[string][]byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.consumeFailure("upload") {
		return ErrProviderUnavailable
	}
	sb, ok := f.sandboxes[sandboxID]
	if !ok {
		return ErrSandboxNotFound
	}
	for path, content := range files {
		sb.files[path] = append([]byte(nil), content...)
	}
	return nil
}

func (f *FakeProvider) Exec(_ context.Context, sandboxID, command string, env map[string]string) (*ExecResult, error) {
	f.mu.Lock()
	if f.consumeFailure("exec") {
		f.mu.Unlock()
		return nil, ErrProviderUnavailable
	}
	sb, ok := f.sandboxes[sandboxID]
	if !ok {
		f.mu.Unlock()
		return nil, ErrSandboxNotFound
	}
	sb.execs = append(sb.execs, command)
	execFn := f.ExecFn
	f.mu.Unlock()

	if execFn != nil {
		return execFn(sandboxID, command, env)
	}
	return &ExecResult{ExitCode: 0}, nil
}

func (f *FakeProvider) Delete(_ context.Context, sandboxID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.consumeFailure("delete") {
		return ErrProviderUnavailable
	}
	delete(f.sandboxes, sandboxID)
	return nil
}

func (f *FakeProvider) GetPreviewLink(_ context.Context, sandboxID string, port int) (*PreviewLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sandboxes[sandboxID]; !ok {
		return nil, ErrSandboxNotFound
	}
	return &PreviewLink{
		URL:   fmt.Sprintf("https://preview.local/%s/%d", sandboxID, port),
		Token: "fake-token",
	}, nil
}

func (f *FakeProvider) Resize(_ context.Context, sandboxID string, resources models.ResourceEnvelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sb, ok := f.sandboxes[sandboxID]
	if !ok {
		return ErrSandboxNotFound
	}
	sb.resources = resources
	return nil
}

// Files returns a copy of the uploaded files for assertions.
func (f *FakeProvider) Files(sandboxID string) map[string][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	sb, ok := f.sandboxes[sandboxID]
	if !ok {
		return nil
	}
	out := make(map[string][]byte, len(sb.files))
	for path, content := range sb.files {
		out[path] = append([]byte(nil), content...)
	}
	return out
}

// Execs returns the commands executed in the sandbox, in order.
func (f *FakeProvider) Execs(sandboxID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	sb, ok := f.sandboxes[sandboxID]
	if !ok {
		return nil
	}
	return append([]string(nil), sb.execs...)
}

// Exists reports whether the sandbox is still provisioned.
func (f *FakeProvider) Exists(sandboxID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.sandboxes[sandboxID]
	return ok
}
