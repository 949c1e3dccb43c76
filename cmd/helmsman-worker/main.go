// Helmsman sandbox worker — boots inside an isolated sandbox, drives the
// coding agent through the gateway, streams events back to the orchestrator,
// and enforces the run's caps.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/helmsman-ai/helmsman/pkg/agentgw"
	"github.com/helmsman-ai/helmsman/pkg/worker"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg, err := worker.LoadConfig()
	if err != nil {
		slog.Error("Invalid worker configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting sandbox worker",
		"sandbox_id", cfg.SandboxID,
		"task_id", cfg.TaskContext.TaskID,
		"model", cfg.Model,
		"continuous", cfg.ContinuousMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := worker.NewCallbackClient(cfg.CallbackURL, cfg.APIKey, 30*time.Second)

	var reporter worker.Reporter
	if path := os.Getenv("EVENTS_FILE"); path != "" {
		fileReporter, err := worker.NewFileReporter(path)
		if err != nil {
			slog.Error("Failed to open events file", "path", path, "error", err)
			os.Exit(1)
		}
		defer fileReporter.Close()
		reporter = fileReporter
	} else {
		reporter = worker.NewHTTPReporter(client, worker.DefaultHTTPReporterConfig())
	}

	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// the first turn.
	gatewayAddr := getEnv("AGENT_GATEWAY_ADDR", "localhost:50051")
	agent, err := agentgw.NewClient(gatewayAddr)
	if err != nil {
		slog.Error("Failed to initialize agent gateway client", "addr", gatewayAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := agent.Close(); err != nil {
			slog.Error("Error closing agent gateway client", "error", err)
		}
	}()

	poller := worker.NewMessagePoller(client, cfg.SandboxID, 0, cfg.PollInterval)
	heartbeats := worker.NewHeartbeatEmitter(client, cfg.AgentID, cfg.HeartbeatInterval, poller.PendingCount)

	var git worker.GitInspector
	if cfg.ContinuousMode {
		git, err = worker.NewExecGitInspector(ctx, cfg.Cwd)
		if err != nil {
			slog.Warn("Git inspection unavailable, completion checks degrade", "error", err)
		}
	}

	rt := worker.NewRuntime(cfg, agent, reporter, client, poller, heartbeats, git)
	if err := rt.Boot(ctx); err != nil {
		slog.Error("Worker boot failed", "error", err)
		os.Exit(1)
	}

	poller.Start(ctx)
	defer poller.Stop()
	heartbeats.Start(ctx)
	defer heartbeats.Stop()

	// SIGTERM from the sandbox provider cancels the run context; the agent
	// turn in flight unwinds through the gateway stream.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		slog.Info("Shutdown signal received", "signal", sig)
		cancel()
	}()

	if err := rt.Run(ctx); err != nil {
		slog.Error("Worker run failed", "error", err)
		_ = reporter.Flush(context.Background())
		os.Exit(1)
	}

	if err := reporter.Flush(context.Background()); err != nil {
		slog.Warn("Failed to flush reporter", "error", err)
	}
	slog.Info("Worker run complete", "task_id", cfg.TaskContext.TaskID)
}
