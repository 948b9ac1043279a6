package charengine

import (
	"strings"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// ──────────────────────────────────────────────
// Response Engine — per-conversation facade
// ──────────────────────────────────────────────

// EngineStats are process-safe counters over one engine instance.
type EngineStats struct {
	Responses   atomic.Int64 // Respond calls served
	Synthesized atomic.Int64 // replies the synthesizer had to produce
	Violations  atomic.Int64 // total violations detected
	Rewrites    atomic.Int64 // responses that needed repair
}

// StatsSnapshot is a point-in-time copy of EngineStats.
type StatsSnapshot struct {
	Responses   int64 `json:"responses"`
	Synthesized int64 `json:"synthesized"`
	Violations  int64 `json:"violations"`
	Rewrites    int64 `json:"rewrites"`
}

// AgentKnowledgeSnapshot is the introspection view of one engine.
type AgentKnowledgeSnapshot struct {
	Personality      *AgentPersonality `json:"personality"`
	KnowledgeAreas   []string          `json:"knowledge_areas"`
	InteractionCount int               `json:"interaction_count"`
}

type engineConfig struct {
	registry  *PersonalityRegistry
	knowledge KnowledgeStore
	rand      RandSource
	logger    *zap.Logger
	exporter  TraceExporter
	capacity  int
}

// EngineOption configures a ResponseEngine.
type EngineOption func(*engineConfig)

// WithRegistry substitutes the profile registry (default: built-ins).
func WithRegistry(r *PersonalityRegistry) EngineOption {
	return func(c *engineConfig) { c.registry = r }
}

// WithKnowledgeStore substitutes the knowledge backend (default: seeded
// in-memory store).
func WithKnowledgeStore(s KnowledgeStore) EngineOption {
	return func(c *engineConfig) { c.knowledge = s }
}

// WithRandSource substitutes the random source; tests pass NewSeededRand.
func WithRandSource(r RandSource) EngineOption {
	return func(c *engineConfig) { c.rand = r }
}

// WithLogger attaches a zap logger (default: zap.NewNop()).
func WithLogger(l *zap.Logger) EngineOption {
	return func(c *engineConfig) { c.logger = l }
}

// WithTraceExporter attaches a pipeline trace exporter (default: none).
func WithTraceExporter(e TraceExporter) EngineOption {
	return func(c *engineConfig) { c.exporter = e }
}

// WithLearningCapacity overrides the learning-memory bound.
func WithLearningCapacity(n int) EngineOption {
	return func(c *engineConfig) { c.capacity = n }
}

// ResponseEngine binds the analyzer, knowledge injector, synthesizer and
// enforcer to one agent. The intended deployment is one engine per
// conversation; a single instance is still safe to share, since every
// mutable structure it owns is lock-guarded.
type ResponseEngine struct {
	agentID     string
	personality *AgentPersonality
	analyzer    *IntentAnalyzer
	knowledge   KnowledgeStore
	injector    *KnowledgeInjector
	enforcer    *Enforcer
	synthesizer *ResponseSynthesizer
	memory      *LearningMemory
	logger      *zap.Logger
	exporter    TraceExporter
	stats       EngineStats
}

// NewResponseEngine creates an engine for one agent. Unknown ids resolve
// to the registry's default profile; construction never fails once a
// registry exists (a registry without its default cannot be built).
func NewResponseEngine(agentID string, opts ...EngineOption) *ResponseEngine {
	cfg := engineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = NewPersonalityRegistry()
	}
	if cfg.knowledge == nil {
		cfg.knowledge = NewSeededKnowledgeStore()
	}
	if cfg.rand == nil {
		cfg.rand = NewTimeSeededRand()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.exporter == nil {
		cfg.exporter = NopExporter{}
	}

	personality := cfg.registry.Get(agentID)
	analyzer := NewIntentAnalyzer()
	injector := NewKnowledgeInjector(cfg.knowledge, cfg.rand)
	logger := cfg.logger
	injector.warn = func(format string, args ...any) {
		logger.Sugar().Warnf(format, args...)
	}
	enforcer := NewEnforcer(personality, cfg.rand)
	memory := NewLearningMemory(cfg.capacity)

	return &ResponseEngine{
		agentID:     agentID,
		personality: personality,
		analyzer:    analyzer,
		knowledge:   cfg.knowledge,
		injector:    injector,
		enforcer:    enforcer,
		synthesizer: NewResponseSynthesizer(personality, analyzer, injector, enforcer, memory, cfg.rand),
		memory:      memory,
		logger:      logger,
		exporter:    cfg.exporter,
	}
}

// Respond is the mandatory outbound path: an empty candidate means no
// upstream model reply was available and the synthesizer produces the
// draft; either way the enforcer audits what goes out.
func (e *ResponseEngine) Respond(ctx ConversationContext, candidate string) EnforcementResult {
	trace := newResponseTrace(e.agentID)

	if strings.TrimSpace(candidate) == "" {
		end := trace.StartStage("synthesize")
		candidate = e.synthesizer.Synthesize(ctx)
		end(map[string]any{"chars": len(candidate)})
		e.stats.Synthesized.Inc()
	}

	end := trace.StartStage("enforce")
	result := e.enforcer.Enforce(ctx.UserMessage, candidate)
	end(map[string]any{
		"violations": len(result.Violations),
		"confidence": result.ConfidenceScore,
	})

	e.stats.Responses.Inc()
	e.stats.Violations.Add(int64(len(result.Violations)))
	if !result.IsValid {
		e.stats.Rewrites.Inc()
		e.logger.Debug("candidate rewritten",
			zap.String("agent_id", e.agentID),
			zap.Strings("violations", result.Violations),
			zap.Int("confidence", result.ConfidenceScore))
	}

	trace.finish()
	e.exporter.Export(trace)
	return result
}

// Enforce audits a candidate without the synthesizer fallback.
func (e *ResponseEngine) Enforce(userMessage, candidate string) EnforcementResult {
	return e.enforcer.Enforce(userMessage, candidate)
}

// Synthesize produces a character-driven draft directly.
func (e *ResponseEngine) Synthesize(ctx ConversationContext) string {
	return e.synthesizer.Synthesize(ctx)
}

// Analyze exposes the intent analyzer for the transport layer.
func (e *ResponseEngine) Analyze(message string) MessageAnalysis {
	return e.analyzer.Analyze(message)
}

// AddKnowledge appends facts to a knowledge domain; additive only, takes
// effect on the next injection.
func (e *ResponseEngine) AddKnowledge(domain string, facts []string) error {
	return e.knowledge.Append(domain, facts)
}

// AgentKnowledge reports the engine's current knowledge state.
func (e *ResponseEngine) AgentKnowledge() AgentKnowledgeSnapshot {
	topics, err := e.knowledge.Topics()
	if err != nil {
		e.logger.Warn("knowledge topics unavailable", zap.Error(err))
	}
	return AgentKnowledgeSnapshot{
		Personality:      e.personality,
		KnowledgeAreas:   topics,
		InteractionCount: e.memory.Len(),
	}
}

// Starter returns a conversation opener in the agent's voice, for
// greeting a user before any message arrives. Falls back to a synthesized
// greeting when the profile declares no starters.
func (e *ResponseEngine) Starter() string {
	if s := pick(e.synthesizer.rand, e.personality.ConversationStarters); s != "" {
		return s
	}
	return e.synthesizer.Synthesize(ConversationContext{UserMessage: "hello"})
}

// Personality returns the resolved profile for this engine.
func (e *ResponseEngine) Personality() *AgentPersonality {
	return e.personality
}

// Memory exposes the learning-memory ring for introspection.
func (e *ResponseEngine) Memory() *LearningMemory {
	return e.memory
}

// Stats returns a snapshot of the engine counters.
func (e *ResponseEngine) Stats() StatsSnapshot {
	return StatsSnapshot{
		Responses:   e.stats.Responses.Load(),
		Synthesized: e.stats.Synthesized.Load(),
		Violations:  e.stats.Violations.Load(),
		Rewrites:    e.stats.Rewrites.Load(),
	}
}
