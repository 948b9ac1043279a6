package charengine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ──────────────────────────────────────────────
// Pipeline tracing — per-response stage spans
// ──────────────────────────────────────────────

// PipelineStage is one timed unit of the response pipeline
// ("synthesize", "enforce").
type PipelineStage struct {
	Name       string         `json:"name"`
	StartTime  time.Time      `json:"start_time"`
	DurationMs float64        `json:"duration_ms"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// ResponseTrace records one Respond call end to end.
type ResponseTrace struct {
	TraceID   string          `json:"trace_id"`
	AgentID   string          `json:"agent_id"`
	StartTime time.Time       `json:"start_time"`
	EndTime   time.Time       `json:"end_time"`
	Stages    []PipelineStage `json:"stages"`

	mu sync.Mutex
}

func newResponseTrace(agentID string) *ResponseTrace {
	return &ResponseTrace{
		TraceID:   uuid.NewString(),
		AgentID:   agentID,
		StartTime: time.Now(),
	}
}

// StartStage begins a named stage; the returned func ends it and attaches
// the given attributes.
func (t *ResponseTrace) StartStage(name string) func(attrs map[string]any) {
	start := time.Now()
	return func(attrs map[string]any) {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.Stages = append(t.Stages, PipelineStage{
			Name:       name,
			StartTime:  start,
			DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
			Attributes: attrs,
		})
	}
}

func (t *ResponseTrace) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.EndTime = time.Now()
}

// DurationMs is the total wall time of the traced call.
func (t *ResponseTrace) DurationMs() float64 {
	end := t.EndTime
	if end.IsZero() {
		end = time.Now()
	}
	return float64(end.Sub(t.StartTime).Microseconds()) / 1000.0
}

// TraceExporter receives finished response traces.
type TraceExporter interface {
	Export(trace *ResponseTrace)
}

// NopExporter discards traces; the engine default.
type NopExporter struct{}

func (NopExporter) Export(*ResponseTrace) {}

// ZapExporter logs finished traces through a zap logger at debug level.
type ZapExporter struct {
	Logger *zap.Logger
}

func (z ZapExporter) Export(trace *ResponseTrace) {
	if z.Logger == nil {
		return
	}
	fields := []zap.Field{
		zap.String("trace_id", trace.TraceID),
		zap.String("agent_id", trace.AgentID),
		zap.Float64("duration_ms", trace.DurationMs()),
	}
	for _, stage := range trace.Stages {
		fields = append(fields, zap.Float64("stage."+stage.Name+".ms", stage.DurationMs))
	}
	z.Logger.Debug("response pipeline", fields...)
}

// CollectingExporter retains traces in memory, for tests and debugging.
type CollectingExporter struct {
	mu     sync.Mutex
	traces []*ResponseTrace
}

func (c *CollectingExporter) Export(trace *ResponseTrace) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.traces = append(c.traces, trace)
}

// Traces returns everything exported so far.
func (c *CollectingExporter) Traces() []*ResponseTrace {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*ResponseTrace, len(c.traces))
	copy(out, c.traces)
	return out
}
