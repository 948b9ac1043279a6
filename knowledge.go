package charengine

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ──────────────────────────────────────────────
// Knowledge base + injector — topic facts voiced per agent
// ──────────────────────────────────────────────

// KnowledgeStore is the pluggable backend for topic-keyed fact lists.
// Stores are additive: facts are appended, never deleted by the engine
// (backends may evict oldest entries to enforce a capacity bound).
type KnowledgeStore interface {
	// Facts returns all facts for a topic; empty slice if unknown.
	Facts(topic string) ([]string, error)
	// Append adds facts to a topic, creating it if needed.
	Append(topic string, facts []string) error
	// Topics lists all known topics.
	Topics() ([]string, error)
}

// DefaultMaxFactsPerTopic bounds in-memory topic growth in long-running
// processes. Oldest facts are evicted first.
const DefaultMaxFactsPerTopic = 256

// InMemoryKnowledgeStore is a mutex-guarded in-process KnowledgeStore.
type InMemoryKnowledgeStore struct {
	mu       sync.RWMutex
	facts    map[string][]string
	maxFacts int
}

// NewInMemoryKnowledgeStore creates an empty bounded store.
func NewInMemoryKnowledgeStore() *InMemoryKnowledgeStore {
	return &InMemoryKnowledgeStore{
		facts:    make(map[string][]string),
		maxFacts: DefaultMaxFactsPerTopic,
	}
}

// NewSeededKnowledgeStore creates a store preloaded with the built-in
// fact domains used by the stock agents.
func NewSeededKnowledgeStore() *InMemoryKnowledgeStore {
	s := NewInMemoryKnowledgeStore()
	for topic, facts := range builtinKnowledge() {
		s.Append(topic, facts)
	}
	return s
}

func (s *InMemoryKnowledgeStore) Facts(topic string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	facts := s.facts[topic]
	out := make([]string, len(facts))
	copy(out, facts)
	return out, nil
}

func (s *InMemoryKnowledgeStore) Append(topic string, facts []string) error {
	if topic == "" || len(facts) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := append(s.facts[topic], facts...)
	if excess := len(merged) - s.maxFacts; excess > 0 {
		merged = merged[excess:]
	}
	s.facts[topic] = merged
	return nil
}

func (s *InMemoryKnowledgeStore) Topics() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	topics := make([]string, 0, len(s.facts))
	for t := range s.facts {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics, nil
}

// BuiltinKnowledge returns a fresh copy of the stock fact domains, so
// external stores (redis, sqlite) can seed themselves.
func BuiltinKnowledge() map[string][]string {
	return builtinKnowledge()
}

func builtinKnowledge() map[string][]string {
	return map[string][]string{
		"comedy": {
			"Timing is everything in comedy - setup, pause, punchline",
			"The rule of three: things are funnier in threes",
			"Comedy comes from truth + exaggeration",
			"Observe everyday situations for comedy gold",
			"Self-deprecating humor builds rapport",
		},
		"chess_strategy": {
			"Control the center squares early in the game",
			"Develop pieces before moving the same piece twice",
			"Castle early for king safety",
			"Think 3 moves ahead minimum",
			"Every piece move should have a purpose",
		},
		"efficiency": {
			"Pareto Principle: 80% of results come from 20% of effort",
			"Automate repetitive tasks to save time",
			"Batch similar tasks together",
			"Use time-blocking for focused work",
			"Eliminate unnecessary steps in processes",
		},
		"cooking": {
			"Mise en place - prepare all ingredients first",
			"Taste and adjust seasoning throughout cooking",
			"High heat for searing, low heat for braising",
			"Sharp knives are safer than dull ones",
			"Let meat rest after cooking for better juices",
		},
	}
}

// voicingTemplate phrases a raw fact in one agent's voice.
type voicingTemplate func(fact string) string

// voicingTemplates is a closed dispatch table over agent ids. Agents
// without an entry get defaultVoicing, so the lookup is total.
var voicingTemplates = map[string]voicingTemplate{
	"comedy-king": func(fact string) string {
		return fmt.Sprintf("Here's a royal comedy truth: %s - and that's a decree from your Comedy King! 👑", fact)
	},
	"drama-queen": func(fact string) string {
		return fmt.Sprintf("Oh DARLING, the DRAMA of learning! %s - simply MAGNIFICENT wisdom! 💎", fact)
	},
	"lazy-pawn": func(fact string) string {
		return fmt.Sprintf("*yawn* Here's the efficient way to think about it: %s - maximum wisdom, minimum effort! 😴", fact)
	},
	"rook-jokey": func(fact string) string {
		return fmt.Sprintf("Straight truth incoming: %s - direct and to the point, just how I like it! 🏰", fact)
	},
	"knight-logic": func(fact string) string {
		return fmt.Sprintf("Let me approach this from a unique angle: %s - that's some L-shaped thinking right there! ♞", fact)
	},
	"bishop-burger": func(fact string) string {
		return fmt.Sprintf("From my kitchen-chess wisdom: %s - a diagonal slice of knowledge! 👨‍🍳", fact)
	},
}

func defaultVoicing(fact string) string {
	return fmt.Sprintf("%s - hope that helps! 😊", fact)
}

// voiceFact adapts a fact to the agent's speaking style.
func voiceFact(agentID, fact string) string {
	if tmpl, ok := voicingTemplates[agentID]; ok {
		return tmpl(fact)
	}
	return defaultVoicing(fact)
}

// KnowledgeInjector turns analyzer topics into voiced fact snippets.
type KnowledgeInjector struct {
	store KnowledgeStore
	rand  RandSource
	warn  func(format string, args ...any)
}

// NewKnowledgeInjector creates an injector over a store.
func NewKnowledgeInjector(store KnowledgeStore, rand RandSource) *KnowledgeInjector {
	return &KnowledgeInjector{store: store, rand: rand, warn: func(string, ...any) {}}
}

// Inject returns voiced knowledge for the given topics, concatenated in
// topic order. If no topic yields anything, the agent's first declared
// expertise area (lowercased) is tried once. An empty result is valid and
// callers must handle it; store errors are soft and also yield "".
func (k *KnowledgeInjector) Inject(topics []string, personality *AgentPersonality) string {
	var b strings.Builder
	for _, topic := range topics {
		if snippet := k.lookupVoiced(topic, personality); snippet != "" {
			b.WriteString(snippet)
		}
	}
	if b.Len() == 0 && len(personality.ExpertiseAreas) > 0 {
		fallback := strings.ToLower(personality.ExpertiseAreas[0])
		b.WriteString(k.lookupVoiced(fallback, personality))
	}
	return b.String()
}

func (k *KnowledgeInjector) lookupVoiced(topic string, personality *AgentPersonality) string {
	facts, err := k.store.Facts(topic)
	if err != nil {
		k.warn("knowledge lookup failed for topic %q: %v", topic, err)
		return ""
	}
	if len(facts) == 0 {
		return ""
	}
	return voiceFact(personality.ID, pick(k.rand, facts))
}
