package charengine

import (
	"fmt"
	"sync"
	"time"
)

// ──────────────────────────────────────────────
// Learning memory — bounded interaction ring
// ──────────────────────────────────────────────

// DefaultLearningCapacity is the number of interactions retained.
const DefaultLearningCapacity = 100

// Interaction is one recorded (user input, agent response) pair.
type Interaction struct {
	ID            string              `json:"id"`
	UserInput     string              `json:"user_input"`
	AgentResponse string              `json:"agent_response"`
	Timestamp     time.Time           `json:"timestamp"`
	Context       ConversationContext `json:"context"`
}

// LearningMemory keeps the most recent interactions for introspection.
// Insertion past capacity evicts the oldest entry. Nothing in the engine
// reads this back into scoring; it is an inert learning hook kept for a
// future adaptive layer.
type LearningMemory struct {
	mu       sync.Mutex
	entries  []Interaction
	capacity int
	seq      uint64
}

// NewLearningMemory creates a memory with the given capacity
// (DefaultLearningCapacity if n <= 0).
func NewLearningMemory(n int) *LearningMemory {
	if n <= 0 {
		n = DefaultLearningCapacity
	}
	return &LearningMemory{capacity: n}
}

// Record appends an interaction, evicting the oldest once over capacity.
func (m *LearningMemory) Record(ctx ConversationContext, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	// Timestamp-based synthetic id; the sequence suffix keeps ids unique
	// when two interactions land in the same nanosecond.
	now := time.Now()
	entry := Interaction{
		ID:            fmt.Sprintf("interaction_%d_%d", now.UnixNano(), m.seq),
		UserInput:     ctx.UserMessage,
		AgentResponse: response,
		Timestamp:     now,
		Context:       ctx,
	}
	m.entries = append(m.entries, entry)
	if len(m.entries) > m.capacity {
		m.entries = m.entries[len(m.entries)-m.capacity:]
	}
}

// Len returns the number of retained interactions.
func (m *LearningMemory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Recent returns up to n interactions, newest last. n <= 0 returns all.
func (m *LearningMemory) Recent(n int) []Interaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n <= 0 || n > len(m.entries) {
		n = len(m.entries)
	}
	out := make([]Interaction, n)
	copy(out, m.entries[len(m.entries)-n:])
	return out
}
