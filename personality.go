package charengine

// ──────────────────────────────────────────────
// Personality data model — immutable per-agent profiles
// ──────────────────────────────────────────────

// PersonalityTrait describes one dominant trait and how it shows up in text.
type PersonalityTrait struct {
	Name           string   `json:"name"`
	Intensity      int      `json:"intensity"` // 1-10
	Manifestations []string `json:"manifestations"`
}

// SpeakingStyle holds the lexical surface of a persona.
type SpeakingStyle struct {
	Tone             string   `json:"tone"`
	Vocabulary       []string `json:"vocabulary"`
	Catchphrases     []string `json:"catchphrases"`
	EmojiUsage       string   `json:"emoji_usage"`
	ResponsePatterns []string `json:"response_patterns"`
}

// ResponseModifiers tune how strongly a persona colors its replies.
// All levels are on a 1-10 scale.
type ResponseModifiers struct {
	HumorLevel          int `json:"humor_level"`
	EnthusiasmLevel     int `json:"enthusiasm_level"`
	FormalityLevel      int `json:"formality_level"`
	IntelligenceDisplay int `json:"intelligence_display"`
}

// AgentPersonality is the immutable profile for one agent.
// BehavioralRules are natural-language imperatives; rules that begin with
// "NEVER"/"ALWAYS" (any case) are machine-checked by the enforcer, the
// rest are documentation for profile authors.
type AgentPersonality struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	CoreIdentity         string             `json:"core_identity"`
	PrimaryTraits        []PersonalityTrait `json:"primary_traits"`
	SpeakingStyle        SpeakingStyle      `json:"speaking_style"`
	BehavioralRules      []string           `json:"behavioral_rules"`
	ExpertiseAreas       []string           `json:"expertise_areas"`
	ConversationStarters []string           `json:"conversation_starters"`
	ResponseModifiers    ResponseModifiers  `json:"response_modifiers"`
}

// Message is one turn of conversation history.
type Message struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// ConversationContext is the per-request input to the engine.
// It is never persisted by this package.
type ConversationContext struct {
	UserMessage    string    `json:"user_message"`
	MessageHistory []Message `json:"message_history,omitempty"`
	Topic          string    `json:"topic,omitempty"`
	Mood           string    `json:"mood,omitempty"`
}
