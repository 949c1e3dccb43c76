// Package agentgw wraps the gRPC connection to the coding-agent gateway.
// The sandbox worker drives the agent one turn at a time and consumes the
// streamed artifact blocks.
package agentgw

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/helmsman-ai/helmsman/pkg/session"
	pb "github.com/helmsman-ai/helmsman/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client wraps the gRPC connection to the agent gateway.
type Client struct {
	conn        *grpc.ClientConn
	client      pb.AgentServiceClient
	model       string
	temperature *float32
	maxTokens   *int32
}

// NewClient creates a new agent gateway client. Model and sampling options
// come from the environment.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to agent gateway: %w", err)
	}

	model := os.Getenv("AGENT_MODEL")
	if model == "" {
		model = "claude-sonnet-4-5"
	}

	var temperature *float32
	if tempStr := os.Getenv("AGENT_TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temp32 := float32(temp)
			temperature = &temp32
		}
	}

	var maxTokens *int32
	if maxStr := os.Getenv("AGENT_MAX_TOKENS"); maxStr != "" {
		if max, err := strconv.ParseInt(maxStr, 10, 32); err == nil {
			max32 := int32(max)
			maxTokens = &max32
		}
	}

	slog.Info("Agent gateway client configured", "model", model)

	return &Client{
		conn:        conn,
		client:      pb.NewAgentServiceClient(conn),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Close closes the gRPC connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// BlockType tags the variants of a streamed agent block.
type BlockType string

// Block type constants.
const (
	BlockText       BlockType = "text"
	BlockThinking   BlockType = "thinking"
	BlockToolUse    BlockType = "tool_use"
	BlockToolResult BlockType = "tool_result"
	BlockComplete   BlockType = "complete"
)

// Usage is the token/cost accounting of one turn.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	CostUSD          float64
}

// Block is one streamed artifact from the agent.
type Block struct {
	Type       BlockType
	Content    string
	IsComplete bool

	// tool_use / tool_result
	ToolUseID string
	ToolName  string
	InputJSON string
	IsError   bool

	// File-change payload on tool results from write/edit tools.
	FilePath   string
	OldContent string
	NewContent string

	// complete
	Usage      *Usage
	StopReason string
}

// TurnOptions are the per-turn gateway parameters.
type TurnOptions struct {
	AllowedTools   []string
	PermissionMode string
	Cwd            string
}

// RunTurn streams one agent turn for the session's current messages.
func (c *Client) RunTurn(ctx context.Context, sess *session.Session, opts TurnOptions) (<-chan Block, <-chan error) {
	blocks := make(chan Block, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(blocks)
		defer close(errs)

		snapshot := sess.Clone()
		pbMessages := make([]*pb.Message, len(snapshot.Messages))
		for i, msg := range snapshot.Messages {
			var role pb.Message_Role
			switch msg.Role {
			case session.RoleSystem:
				role = pb.Message_ROLE_SYSTEM
			case session.RoleUser:
				role = pb.Message_ROLE_USER
			case session.RoleAssistant:
				role = pb.Message_ROLE_ASSISTANT
			case session.RoleTool:
				role = pb.Message_ROLE_TOOL
			default:
				role = pb.Message_ROLE_USER
			}

			pbMessages[i] = &pb.Message{
				Role:      role,
				Content:   msg.Content,
				ToolName:  msg.ToolName,
				ToolUseId: msg.ToolUseID,
			}
		}

		req := &pb.TurnRequest{
			SessionId:      snapshot.ID,
			Messages:       pbMessages,
			Model:          c.model,
			AllowedTools:   opts.AllowedTools,
			PermissionMode: opts.PermissionMode,
			Cwd:            opts.Cwd,
			Temperature:    c.temperature,
			MaxTokens:      c.maxTokens,
		}

		stream, err := c.client.RunTurn(ctx, req)
		if err != nil {
			errs <- fmt.Errorf("failed to call RunTurn: %w", err)
			return
		}

		slog.Debug("Started turn stream", "session_id", snapshot.ID)

		for {
			chunk, err := stream.Recv()
			if err == io.EOF {
				slog.Debug("Turn stream complete", "session_id", snapshot.ID)
				return
			}
			if err != nil {
				errs <- fmt.Errorf("stream error: %w", err)
				return
			}

			block, fatal := convertChunk(chunk)
			if fatal != nil {
				errs <- fatal
				return
			}

			select {
			case blocks <- block:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()

	return blocks, errs
}

// convertChunk maps a protobuf chunk to a Block. Gateway errors become the
// returned error.
func convertChunk(chunk *pb.AgentChunk) (Block, error) {
	switch x := chunk.ChunkType.(type) {
	case *pb.AgentChunk_Text:
		return Block{
			Type:       BlockText,
			Content:    x.Text.Content,
			IsComplete: x.Text.IsComplete,
		}, nil

	case *pb.AgentChunk_Thinking:
		return Block{
			Type:       BlockThinking,
			Content:    x.Thinking.Content,
			IsComplete: x.Thinking.IsComplete,
		}, nil

	case *pb.AgentChunk_ToolUse:
		return Block{
			Type:      BlockToolUse,
			ToolUseID: x.ToolUse.ToolUseId,
			ToolName:  x.ToolUse.ToolName,
			InputJSON: x.ToolUse.InputJson,
		}, nil

	case *pb.AgentChunk_ToolResult:
		return Block{
			Type:       BlockToolResult,
			ToolUseID:  x.ToolResult.ToolUseId,
			Content:    x.ToolResult.Content,
			IsError:    x.ToolResult.IsError,
			FilePath:   x.ToolResult.FilePath,
			OldContent: x.ToolResult.OldContent,
			NewContent: x.ToolResult.NewContent,
		}, nil

	case *pb.AgentChunk_Complete:
		block := Block{
			Type:       BlockComplete,
			StopReason: x.Complete.StopReason,
		}
		if u := x.Complete.Usage; u != nil {
			block.Usage = &Usage{
				PromptTokens:     u.PromptTokens,
				CompletionTokens: u.CompletionTokens,
				CostUSD:          u.CostUsd,
			}
		}
		return block, nil

	case *pb.AgentChunk_Error:
		return Block{}, fmt.Errorf("agent gateway error: %s", x.Error.Message)

	default:
		return Block{}, fmt.Errorf("unknown chunk type %T", chunk.ChunkType)
	}
}
