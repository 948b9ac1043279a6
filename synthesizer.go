package charengine

import (
	"fmt"
	"strings"
)

// ──────────────────────────────────────────────
// Response Synthesizer — character-first draft composition
// ──────────────────────────────────────────────

// ResponseSynthesizer composes a draft reply from the personality alone,
// used when no upstream model reply exists. Output still passes through
// the enforcer before reaching a user. The synthesizer never fails:
// missing profile fields degrade to empty fragments.
type ResponseSynthesizer struct {
	personality *AgentPersonality
	analyzer    *IntentAnalyzer
	injector    *KnowledgeInjector
	enforcer    *Enforcer
	memory      *LearningMemory
	rand        RandSource
}

// NewResponseSynthesizer wires a synthesizer from its collaborators.
func NewResponseSynthesizer(p *AgentPersonality, analyzer *IntentAnalyzer, injector *KnowledgeInjector, enforcer *Enforcer, memory *LearningMemory, rand RandSource) *ResponseSynthesizer {
	if rand == nil {
		rand = NewTimeSeededRand()
	}
	return &ResponseSynthesizer{
		personality: p,
		analyzer:    analyzer,
		injector:    injector,
		enforcer:    enforcer,
		memory:      memory,
		rand:        rand,
	}
}

// Synthesize builds one draft reply. The steps run in fixed order, each
// feeding the next: catchphrase foundation, knowledge content,
// entertainment layer, user-style adaptation, self-consistency pass, and
// finally the learning-memory side effect.
func (s *ResponseSynthesizer) Synthesize(ctx ConversationContext) string {
	analysis := s.analyzer.Analyze(ctx.UserMessage)

	response := s.foundation()
	response = s.appendKnowledge(response, analysis)
	response = s.entertain(response)
	response = s.adaptToUserStyle(response, ctx.UserMessage)

	// Self-consistency before the enforcer ever sees this draft.
	response = s.enforcer.ensureCatchphrase(response)
	response = s.enforcer.ensureEmoji(response)

	s.memory.Record(ctx, response)
	return response
}

// foundation is a uniformly-random catchphrase, or empty for profiles
// authored without catchphrases.
func (s *ResponseSynthesizer) foundation() string {
	return pick(s.rand, s.personality.SpeakingStyle.Catchphrases)
}

// appendKnowledge adds voiced facts for the analyzed topics (the injector
// falls back to the primary expertise area on its own). An empty injection
// leaves the catchphrase-only reply intact.
func (s *ResponseSynthesizer) appendKnowledge(response string, analysis MessageAnalysis) string {
	content := s.injector.Inject(analysis.Topics, s.personality)
	if content == "" {
		return response
	}
	return joinFragments(response, content)
}

// entertain appends the humor and enthusiasm layers for strongly modified
// personas.
func (s *ResponseSynthesizer) entertain(response string) string {
	mods := s.personality.ResponseModifiers
	if mods.HumorLevel > 7 {
		if word := pick(s.rand, s.personality.SpeakingStyle.Vocabulary); word != "" {
			response += fmt.Sprintf(" (And remember, everything's better with a little %s!) 😄", word)
		}
	}
	if mods.EnthusiasmLevel > 7 {
		response += " I'm excited to help you with this! ✨"
	}
	return response
}

// adaptToUserStyle mirrors the user's communication style. Detailed
// questions get an invitation to elaborate; casual greetings are detected
// but deliberately left untransformed.
func (s *ResponseSynthesizer) adaptToUserStyle(response, userMessage string) string {
	response = s.adaptCasualGreeting(response, userMessage)
	if strings.Contains(userMessage, "?") && len([]rune(userMessage)) > 50 {
		response += " Let me know if you'd like me to dive deeper into any part of this!"
	}
	return response
}

// adaptCasualGreeting is an acknowledged no-op branch: casual greetings
// ("hey", "what's up") are recognized but currently produce no
// transformation. Kept as an explicit extension point.
func (s *ResponseSynthesizer) adaptCasualGreeting(response, userMessage string) string {
	lower := strings.ToLower(userMessage)
	_ = strings.Contains(lower, "hey") || strings.Contains(lower, "what's up")
	return response
}

func joinFragments(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
