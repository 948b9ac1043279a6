package charengine

import (
	"regexp"
	"strings"
)

// ──────────────────────────────────────────────
// Rewrite stage — vocabulary, flourish and emoji injection
// ──────────────────────────────────────────────

// substitution rewrites one generic phrase into the persona's phrasing,
// case-insensitively and globally.
type substitution struct {
	re          *regexp.Regexp
	replacement string
}

func newSubstitution(generic, replacement string) substitution {
	return substitution{
		re:          regexp.MustCompile("(?i)" + regexp.QuoteMeta(generic)),
		replacement: replacement,
	}
}

// vocabularySubstitutions is a closed per-agent table; agents without an
// entry get no substitutions.
var vocabularySubstitutions = map[string][]substitution{
	"comedy-king": {
		newSubstitution("let me", "by royal decree, let me"),
		newSubstitution("i think", "in my comedy kingdom"),
		newSubstitution("you should", "your comedy king commands"),
	},
	"lazy-pawn": {
		newSubstitution("you should", "the easy way is"),
		newSubstitution("let me", "shortcut incoming"),
		newSubstitution("try this", "minimal effort approach"),
	},
	"drama-queen": {
		newSubstitution("interesting", "absolutely DIVINE"),
		newSubstitution("good", "MAGNIFICENT"),
		newSubstitution("let me", "DARLING, allow me"),
	},
}

// flourish is the one per-agent closer appended when its topical marker
// word is missing from the response.
type flourish struct {
	marker string // lowercase marker word
	text   string
}

var personalityFlourishes = map[string]flourish{
	"comedy-king": {marker: "joke", text: " *royal laugh* 😂"},
	"lazy-pawn":   {marker: "easy", text: " ...but the easy way is what matters!"},
	"drama-queen": {marker: "darling", text: " Simply DIVINE, darling! 💎"},
}

// agentEmojiSets drive emoji injection; the presence check uses the shared
// personalityEmojiSet in detectors.go.
var agentEmojiSets = map[string][]string{
	"comedy-king":         {"😂", "🎭", "👑", "🎪"},
	"drama-queen":         {"🎭", "👸", "💎", "✨"},
	"lazy-pawn":           {"😴", "🛌", "⚡"},
	"rook-jokey":          {"🏰", "🎯", "😄"},
	"knight-logic":        {"♞", "⚔️", "🏰"},
	"bishop-burger":       {"👨‍🍳", "🍔", "⚔️"},
	"tech-wizard":         {"🧙‍♂️", "✨", "🪄"},
	"fitness-guru":        {"💪", "🔥", "⚡"},
	"chef-biew":           {"👨‍🍳", "🍽️", "✨"},
	"professor-astrology": {"🌟", "🔮", "✨"},
	"travel-buddy":        {"🌍", "✈️", "🗺️"},
	"einstein":            {"🧠", "⚡", "🔬"},
}

var defaultEmojiSet = []string{"✨"}

// rewrite repairs a violating response: catchphrase first, then vocabulary
// substitutions, one flourish, and tone adjustment. Each step feeds the next.
func (e *Enforcer) rewrite(response, userMessage string) string {
	enhanced := e.ensureCatchphrase(response)
	enhanced = e.substituteVocabulary(enhanced)
	enhanced = e.addFlourish(enhanced)
	enhanced = e.adjustTone(enhanced)
	return enhanced
}

// ensureCatchphrase prepends a randomly selected catchphrase when none of
// the profile's catchphrases are present.
func (e *Enforcer) ensureCatchphrase(response string) string {
	if hasCatchphrase(response, e.personality) {
		return response
	}
	cp := pick(e.rand, e.personality.SpeakingStyle.Catchphrases)
	if cp == "" {
		return response
	}
	return cp + " " + response
}

func (e *Enforcer) substituteVocabulary(response string) string {
	for _, sub := range vocabularySubstitutions[e.personality.ID] {
		response = sub.re.ReplaceAllString(response, sub.replacement)
	}
	return response
}

func (e *Enforcer) addFlourish(response string) string {
	f, ok := personalityFlourishes[e.personality.ID]
	if !ok {
		return response
	}
	if strings.Contains(strings.ToLower(response), f.marker) {
		return response
	}
	return response + f.text
}

// adjustTone casualizes connector words for low-formality personas and
// guarantees a laugh emoji for high-humor ones.
func (e *Enforcer) adjustTone(response string) string {
	mods := e.personality.ResponseModifiers
	if mods.FormalityLevel < 4 {
		response = casualFormal.ReplaceAllString(response, "chill")
		response = casualTherefore.ReplaceAllString(response, "so like")
	}
	if mods.HumorLevel > 7 &&
		!strings.Contains(response, "😂") && !strings.Contains(response, "😄") {
		response += " 😂"
	}
	return response
}

var (
	casualFormal    = regexp.MustCompile(`(?i)formal`)
	casualTherefore = regexp.MustCompile(`(?i)therefore`)
)

// injectPersonalityElements is the unconditional pass that runs whether or
// not the rewrite stage fired: persona emoji if the fixed set is absent,
// then response-pattern incorporation.
func (e *Enforcer) injectPersonalityElements(response string) string {
	response = e.ensureEmoji(response)
	return e.incorporateResponsePatterns(response)
}

// ensureEmoji appends one emoji from the agent's set when the response
// carries none from the shared presence set.
func (e *Enforcer) ensureEmoji(response string) string {
	if hasPersonalityEmoji(response) {
		return response
	}
	set, ok := agentEmojiSets[e.personality.ID]
	if !ok {
		set = defaultEmojiSet
	}
	return response + " " + pick(e.rand, set)
}

// incorporateResponsePatterns is an extension point for weaving the
// profile's declared response patterns into the text. It intentionally
// returns its input unchanged; catchphrases and flourishes already cover
// the patterns the stock profiles declare.
func (e *Enforcer) incorporateResponsePatterns(response string) string {
	return response
}
