package charengine

import (
	"fmt"
	"regexp"
	"strings"
)

// ──────────────────────────────────────────────
// Detection stage — three independent checkers
// ──────────────────────────────────────────────

// genericPhrases mark canned assistant replies. A short response built
// from one of these, with no catchphrase, has no personality in it.
var genericPhrases = []string{
	"i can help you with that",
	"i understand",
	"let me help",
	"i can assist",
	"here is the answer",
	"sure, i can",
	"of course, i can",
}

// characterBreakPhrases disclose the underlying assistant. Any match is an
// unconditional violation regardless of the rest of the response.
var characterBreakPhrases = []string{
	"i am an ai",
	"as an ai",
	"as an artificial intelligence",
	"i cannot",
	"it is not appropriate",
	"i should not roleplay",
	"i should not pretend",
	"i should stay in character",
	"i need to stay professional",
	"sorry, i cannot help",
}

// emotionalWords feed the emotional-level heuristic.
var emotionalWords = []string{
	"absolutely", "amazing", "wonderful", "fantastic", "terrible", "awful",
	"love", "hate", "adore", "despise", "thrilled", "devastated",
}

var allCapsRun = regexp.MustCompile(`[A-Z]{2,}`)

// detectCharacterBreaks flags generic replies, direct AI disclosure, and
// behavioral-rule contradictions.
func detectCharacterBreaks(response string, p *AgentPersonality) []string {
	var violations []string
	if isGenericResponse(response, p) {
		violations = append(violations, "Response lacks personality and character")
	}
	if isDirectCharacterBreak(response) {
		violations = append(violations, "Response breaks character entirely")
	}
	violations = append(violations, behavioralRuleViolations(response, p)...)
	return violations
}

func isGenericResponse(response string, p *AgentPersonality) bool {
	if len([]rune(response)) >= 50 {
		return false
	}
	lower := strings.ToLower(response)
	if !containsAnyPhrase(lower, genericPhrases) {
		return false
	}
	return !hasCatchphrase(response, p)
}

func isDirectCharacterBreak(response string) bool {
	return containsAnyPhrase(strings.ToLower(response), characterBreakPhrases)
}

// behavioralRuleViolations checks every NEVER/ALWAYS rule (polarity marker
// matched case-insensitively). NEVER rules flag on keyword overlap with
// the forbidden behavior; ALWAYS rules flag on missing overlap. Rules
// without a polarity marker are documentation only.
func behavioralRuleViolations(response string, p *AgentPersonality) []string {
	var violations []string
	lower := strings.ToLower(response)
	for _, rule := range p.BehavioralRules {
		upper := strings.ToUpper(rule)
		switch {
		case strings.HasPrefix(upper, "NEVER "):
			if keywordOverlap(lower, rule[len("NEVER "):]) {
				violations = append(violations, fmt.Sprintf("Response contradicts behavioral rule: %q", rule))
			}
		case strings.HasPrefix(upper, "ALWAYS "):
			if !keywordOverlap(lower, rule[len("ALWAYS "):]) {
				violations = append(violations, fmt.Sprintf("Response ignores behavioral rule: %q", rule))
			}
		}
	}
	return violations
}

// keywordOverlap reports whether any whitespace-separated keyword of the
// behavior phrase appears in the lowercased response.
func keywordOverlap(lowerResponse, behavior string) bool {
	for _, kw := range strings.Fields(strings.ToLower(behavior)) {
		if strings.Contains(lowerResponse, kw) {
			return true
		}
	}
	return false
}

// checkConsistency flags missing personality vocabulary in long responses
// and emotional levels far off the profile's enthusiasm.
func checkConsistency(response string, p *AgentPersonality) []string {
	var violations []string

	lower := strings.ToLower(response)
	usesVocab := false
	for _, word := range p.SpeakingStyle.Vocabulary {
		if strings.Contains(lower, strings.ToLower(word)) {
			usesVocab = true
			break
		}
	}
	if !usesVocab && len([]rune(response)) > 100 {
		violations = append(violations, "Missing personality-specific vocabulary")
	}

	level := emotionalLevel(response)
	expected := float64(p.ResponseModifiers.EnthusiasmLevel)
	if diff := level - expected; diff > 5 || diff < -5 {
		violations = append(violations,
			fmt.Sprintf("Emotional level (%.1f) doesn't match personality (%.0f)", level, expected))
	}
	return violations
}

// emotionalLevel scores a response 1-10 from exclamation marks, emotional
// words and ALL-CAPS runs, starting from a neutral 5.
func emotionalLevel(response string) float64 {
	level := 5.0
	level += 0.5 * float64(strings.Count(response, "!"))
	level += 0.3 * float64(countEmotionalWords(response))
	level += 0.2 * float64(len(allCapsRun.FindAllString(response, -1)))
	if level > 10 {
		level = 10
	}
	if level < 1 {
		level = 1
	}
	return level
}

func countEmotionalWords(response string) int {
	lower := strings.ToLower(response)
	n := 0
	for _, w := range emotionalWords {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

// Tone indicator names derived from punctuation/keyword heuristics.
const (
	toneEnthusiastic  = "enthusiastic"
	toneQuestioning   = "questioning"
	toneContemplative = "contemplative"
	toneThoughtful    = "thoughtful"
	toneHumorous      = "humorous"
)

// toneIndicators derives the set of tones a response exhibits.
func toneIndicators(response string) map[string]bool {
	indicators := make(map[string]bool)
	if strings.Count(response, "!") > 3 {
		indicators[toneEnthusiastic] = true
	}
	if strings.Count(response, "?") > 2 {
		indicators[toneQuestioning] = true
	}
	if strings.Contains(response, "...") {
		indicators[toneContemplative] = true
	}
	lower := strings.ToLower(response)
	if strings.Contains(lower, "hmm") || strings.Contains(lower, "well") {
		indicators[toneThoughtful] = true
	}
	if strings.Contains(response, "😂") || strings.Contains(response, "😄") {
		indicators[toneHumorous] = true
	}
	return indicators
}

// toneAlignmentRules is a closed per-agent table. Agents without an entry
// are always considered aligned; do not add stricter rules for unlisted
// agents.
var toneAlignmentRules = map[string]func(indicators map[string]bool) bool{
	"comedy-king": func(ind map[string]bool) bool {
		return ind[toneHumorous]
	},
	"drama-queen": func(ind map[string]bool) bool {
		return ind[toneEnthusiastic]
	},
	"lazy-pawn": func(ind map[string]bool) bool {
		return !ind[toneEnthusiastic] || ind[toneContemplative]
	},
}

// checkToneAlignment applies the per-agent alignment rule.
func checkToneAlignment(response string, p *AgentPersonality) []string {
	rule, ok := toneAlignmentRules[p.ID]
	if !ok {
		return nil
	}
	if rule(toneIndicators(response)) {
		return nil
	}
	return []string{fmt.Sprintf("Tone doesn't align with %q", p.SpeakingStyle.Tone)}
}

func containsAnyPhrase(lower string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// hasCatchphrase reports whether any profile catchphrase appears verbatim.
func hasCatchphrase(response string, p *AgentPersonality) bool {
	for _, cp := range p.SpeakingStyle.Catchphrases {
		if cp != "" && strings.Contains(response, cp) {
			return true
		}
	}
	return false
}

// personalityEmojiSet is the fixed presence-check set shared by all
// agents; per-agent injection sets live in rewrite.go.
var personalityEmojiSet = []string{
	"😂", "🎭", "👑", "🎪", "🎨", "🎬", "🏰", "⚔️", "♞", "🧙", "✨",
	"💪", "🔥", "⚡", "🌍", "✈️", "🗺️", "🍔", "👨", "🌟", "🔮", "💎",
}

// hasPersonalityEmoji reports whether the response carries any emoji from
// the fixed set.
func hasPersonalityEmoji(response string) bool {
	for _, emoji := range personalityEmojiSet {
		if strings.Contains(response, emoji) {
			return true
		}
	}
	return false
}
