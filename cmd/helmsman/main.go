// Helmsman orchestrator server — provides the HTTP API, runs the worker
// pool, heartbeat engine, guardian, merge runner, and retention sweeps.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/helmsman-ai/helmsman/pkg/agentgw"
	"github.com/helmsman-ai/helmsman/pkg/api"
	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/config"
	"github.com/helmsman-ai/helmsman/pkg/database"
	"github.com/helmsman-ai/helmsman/pkg/guardian"
	"github.com/helmsman-ai/helmsman/pkg/heartbeat"
	"github.com/helmsman-ai/helmsman/pkg/merge"
	"github.com/helmsman-ai/helmsman/pkg/orchestrator"
	"github.com/helmsman-ai/helmsman/pkg/retention"
	"github.com/helmsman-ai/helmsman/pkg/sandbox"
	"github.com/helmsman-ai/helmsman/pkg/scheduler"
	"github.com/helmsman-ai/helmsman/pkg/services"
	"github.com/helmsman-ai/helmsman/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// buildProvider picks the sandbox provider from the environment. Without a
// provisioner URL the in-memory fake is used, which is only good for local
// development.
func buildProvider() sandbox.Provider {
	if url := os.Getenv("SANDBOX_API_URL"); url != "" {
		return sandbox.NewHTTPProvider(url, os.Getenv("SANDBOX_API_TOKEN"), 60*time.Second)
	}
	slog.Warn("SANDBOX_API_URL not set, using in-memory fake sandbox provider")
	return sandbox.NewFakeProvider()
}

func main() {
	configPath := flag.String("config",
		getEnv("HELMSMAN_CONFIG", "helmsman.yaml"),
		"Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	podID := resolvePodID()

	// 1. Configuration
	cfg, err := config.Initialize(*configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Server.APIKey == "" {
		cfg.Server.APIKey = os.Getenv("HELMSMAN_API_KEY")
	}
	cfg.Orchestrator.WorkerAPIKey = cfg.Server.APIKey
	if cfg.Orchestrator.CallbackURL == "" {
		cfg.Orchestrator.CallbackURL = getEnv("CALLBACK_URL", "http://localhost"+cfg.Server.Addr)
	}

	slog.Info("Starting Helmsman",
		"version", version.Full(),
		"addr", cfg.Server.Addr,
		"pod_id", podID,
		"workers", cfg.Orchestrator.WorkerCount)

	ctx := context.Background()

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Entity services
	ticketSvc := services.NewTicketService(dbClient.Client)
	taskSvc := services.NewTaskService(dbClient.Client)
	specSvc := services.NewSpecService(dbClient.Client)
	agentSvc := services.NewAgentService(dbClient.Client)
	baselineSvc := services.NewBaselineService(dbClient.Client)
	budgetSvc := services.NewBudgetService(dbClient.Client)
	eventSvc := services.NewEventService(dbClient.Client)
	guardianSvc := services.NewGuardianService(dbClient.Client)
	mergeSvc := services.NewMergeService(dbClient.Client)
	messageSvc := services.NewMessageService(dbClient.Client)
	allocSvc := services.NewAllocationService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Event bus + cross-pod relay + websocket bridge
	eventBus := bus.New(eventSvc, cfg.BusQueueSize)
	defer eventBus.Stop()

	relay := bus.NewRelay(podID, dbConfig.DSN(), eventBus)
	if err := relay.Start(ctx); err != nil {
		slog.Error("Failed to start event relay", "error", err)
		os.Exit(1)
	}
	defer relay.Stop(ctx)

	connManager := bus.NewConnectionManager(eventBus, 10*time.Second)

	// 5. Sandbox provider, guardian, heartbeat engine
	provider := buildProvider()

	guard := guardian.New(guardianSvc, agentSvc, taskSvc, messageSvc, budgetSvc, provider, eventBus, cfg.Guardian)
	guard.Start(ctx)
	defer guard.Stop()

	hbEngine := heartbeat.NewEngine(agentSvc, baselineSvc, guard, cfg.Heartbeat)

	// The engine only runs when heartbeats arrive; the monitor catches the
	// agents that go silent entirely.
	hbMonitor := heartbeat.NewMonitor(hbEngine, agentSvc, cfg.Heartbeat.ExpectedInterval, cfg.Heartbeat.ScanInterval)
	monitorCtx, monitorCancel := context.WithCancel(ctx)
	defer monitorCancel()
	go hbMonitor.Start(monitorCtx)

	// 6. Scheduler + worker pool
	var snapshot scheduler.WorkspaceSnapshot
	if dir := os.Getenv("WORKSPACE_DIR"); dir != "" {
		snapshot = scheduler.DirSnapshot(dir)
	}
	sched := scheduler.New(taskSvc, ticketSvc, agentSvc, budgetSvc, eventBus, cfg.Scheduler, snapshot)

	// Requeue anything this pod was supervising when it last died.
	if err := orchestrator.CleanupStartupOrphans(ctx, dbClient.Client, taskSvc, podID); err != nil {
		slog.Error("Startup orphan cleanup failed", "error", err)
	}

	pool := orchestrator.NewWorkerPool(podID, dbClient.Client, cfg.Orchestrator, sched, provider, taskSvc, agentSvc, allocSvc, eventBus)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Merge runner (needs a local checkout of the target repository)
	var mergeRunner *merge.Runner
	if checkout := os.Getenv("MERGE_CHECKOUT_DIR"); checkout != "" {
		var resolver merge.Resolver
		if gwAddr := os.Getenv("AGENT_GATEWAY_ADDR"); gwAddr != "" {
			gw, err := agentgw.NewClient(gwAddr)
			if err != nil {
				slog.Error("Failed to initialize agent gateway client", "addr", gwAddr, "error", err)
				os.Exit(1)
			}
			defer func() {
				if err := gw.Close(); err != nil {
					slog.Error("Error closing agent gateway client", "error", err)
				}
			}()
			resolver = merge.NewLLMResolver(gw, cfg.Resolver)
		}
		coordinator := merge.NewCoordinator(merge.NewGitVCS(checkout), resolver, mergeSvc)
		mergeRunner = merge.NewRunner(coordinator, eventBus)
		mergeRunner.Start(ctx)
	} else {
		slog.Warn("MERGE_CHECKOUT_DIR not set, convergence merges disabled")
	}

	// 8. Retention sweeps
	retainer := retention.NewService(cfg.Retention, eventSvc, guardianSvc)
	if err := retainer.Start(ctx); err != nil {
		slog.Error("Failed to start retention service", "error", err)
		os.Exit(1)
	}
	defer retainer.Stop()

	// 9. HTTP server
	httpServer := api.NewServer(cfg.Server, api.Deps{
		Events:     eventSvc,
		Messages:   messageSvc,
		Tasks:      taskSvc,
		Tickets:    ticketSvc,
		Specs:      specSvc,
		Agents:     agentSvc,
		Heartbeats: hbEngine,
		DB:         dbClient,
		Pool:       pool,
		Guardian:   guard,
		WS:         connManager,
	})

	serverCtx, serverCancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(serverCtx); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Helmsman started", "pod_id", podID)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop claiming and finish in-flight work first,
	// then stop the merge runner, then the HTTP surface.
	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-time.After(cfg.Server.ShutdownTimeout):
		slog.Warn("Shutdown timeout exceeded, incomplete tasks will be orphan-recovered")
	}

	if mergeRunner != nil {
		mergeRunner.Stop()
	}

	serverCancel()
	select {
	case <-errCh:
	case <-time.After(cfg.Server.ShutdownTimeout):
	}

	slog.Info("Shutdown complete")
}
