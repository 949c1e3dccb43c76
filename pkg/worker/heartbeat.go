package worker

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// HeartbeatEmitter sends signed heartbeats at a fixed interval with strictly
// monotone sequence numbers.
type HeartbeatEmitter struct {
	client   *CallbackClient
	agentID  string
	interval time.Duration
	seq      atomic.Int64

	// vitals fed by the runtime
	mu            sync.Mutex
	status        string
	currentTaskID string
	lastLatencyMS float64
	turnErrors    int
	turnsTotal    int
	phase         string
	queueDepth    func() int

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewHeartbeatEmitter creates an emitter. queueDepth may be nil.
func NewHeartbeatEmitter(client *CallbackClient, agentID string, interval time.Duration, queueDepth func() int) *HeartbeatEmitter {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &HeartbeatEmitter{
		client:     client,
		agentID:    agentID,
		interval:   interval,
		status:     "RUNNING",
		queueDepth: queueDepth,
		stopCh:     make(chan struct{}),
	}
}

// Start launches the emit loop.
func (h *HeartbeatEmitter) Start(ctx context.Context) {
	h.wg.Add(1)
	go h.run(ctx)
}

// Stop sends a final heartbeat and terminates the loop.
func (h *HeartbeatEmitter) Stop() {
	h.stopOnce.Do(func() { close(h.stopCh) })
	h.wg.Wait()
}

// ObserveTurn records one turn's latency and error outcome for the vitals.
func (h *HeartbeatEmitter) ObserveTurn(latency time.Duration, failed bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastLatencyMS = float64(latency.Milliseconds())
	h.turnsTotal++
	if failed {
		h.turnErrors++
	}
}

// SetTask updates the task the vitals report against.
func (h *HeartbeatEmitter) SetTask(taskID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.currentTaskID = taskID
}

// SetPhase updates the reported spec phase.
func (h *HeartbeatEmitter) SetPhase(phase string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.phase = phase
}

func (h *HeartbeatEmitter) run(ctx context.Context) {
	defer h.wg.Done()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.stopCh:
			// Final beat so the orchestrator has a fresh timestamp at
			// shutdown instead of a silence gap.
			finalCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			h.emit(finalCtx)
			cancel()
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.emit(ctx)
		}
	}
}

func (h *HeartbeatEmitter) emit(ctx context.Context) {
	hb := h.buildHeartbeat()
	if err := hb.Sign(); err != nil {
		slog.Error("Failed to sign heartbeat", "error", err)
		return
	}

	ack, err := h.client.SendHeartbeat(ctx, hb)
	if err != nil {
		slog.Warn("Heartbeat send failed", "sequence", hb.SequenceNumber, "error", err)
		return
	}
	if !ack.Received {
		slog.Warn("Heartbeat not accepted", "sequence", hb.SequenceNumber, "message", ack.Message)
	}
}

func (h *HeartbeatEmitter) buildHeartbeat() models.Heartbeat {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	h.mu.Lock()
	defer h.mu.Unlock()

	errorRate := 0.0
	if h.turnsTotal > 0 {
		errorRate = float64(h.turnErrors) / float64(h.turnsTotal)
	}
	depth := 0
	if h.queueDepth != nil {
		depth = h.queueDepth()
	}

	return models.Heartbeat{
		AgentID:        h.agentID,
		SequenceNumber: h.seq.Add(1),
		Status:         h.status,
		CurrentTaskID:  h.currentTaskID,
		Metrics: models.HeartbeatMetrics{
			LatencyMS:   h.lastLatencyMS,
			ErrorRate:   errorRate,
			MemoryMB:    float64(mem.Alloc) / (1 << 20),
			QueueDepth:  depth,
			TurnsActive: h.turnsTotal,
			Phase:       h.phase,
		},
		Timestamp: time.Now().UTC(),
	}
}
