package charengine

import (
	"fmt"
	"strings"
)

// ──────────────────────────────────────────────
// Enforcement Validator — detect → rewrite → score
// ──────────────────────────────────────────────

// EnforcementResult is the outcome of validating one candidate response.
//
// IsValid reflects the candidate as it arrived (pre-rewrite), while
// ConfidenceScore grades the text as it leaves (post-rewrite); an invalid
// input can still ship with a high score after repair. Chat handlers
// consume ModifiedResponse and may log the rest; the two fields disagree
// on purpose.
type EnforcementResult struct {
	IsValid          bool     `json:"is_valid"`
	ModifiedResponse string   `json:"modified_response"`
	Violations       []string `json:"violations"`
	Suggestions      []string `json:"suggestions"`
	ConfidenceScore  int      `json:"confidence_score"` // 0-100
}

// Enforcer audits any candidate reply against one personality profile and
// repairs it when it drifts out of character. It never fails for any
// string input; empty candidates short-circuit to a catchphrase-only
// default reply.
type Enforcer struct {
	personality *AgentPersonality
	rand        RandSource
}

// NewEnforcer creates an enforcer for a profile. A nil rand falls back to
// the time-seeded default.
func NewEnforcer(p *AgentPersonality, rand RandSource) *Enforcer {
	if rand == nil {
		rand = NewTimeSeededRand()
	}
	return &Enforcer{personality: p, rand: rand}
}

// Enforce runs the full pipeline over a candidate response. The user
// message is carried for symmetry with the transport boundary; detection
// and rewriting operate on the candidate only.
func (e *Enforcer) Enforce(userMessage, candidate string) EnforcementResult {
	if strings.TrimSpace(candidate) == "" {
		return e.enforceEmpty()
	}

	violations := e.detect(candidate)

	modified := candidate
	var suggestions []string
	if len(violations) > 0 {
		modified = e.rewrite(modified, userMessage)
		suggestions = e.suggestions(violations)
	}

	// Always runs, violations or not.
	modified = e.injectPersonalityElements(modified)

	return EnforcementResult{
		IsValid:          len(violations) == 0,
		ModifiedResponse: modified,
		Violations:       violations,
		Suggestions:      suggestions,
		ConfidenceScore:  e.score(violations, modified),
	}
}

// detect runs the three independent checkers and collects their violations.
func (e *Enforcer) detect(candidate string) []string {
	var violations []string
	violations = append(violations, detectCharacterBreaks(candidate, e.personality)...)
	violations = append(violations, checkConsistency(candidate, e.personality)...)
	violations = append(violations, checkToneAlignment(candidate, e.personality)...)
	return violations
}

// enforceEmpty produces the default reply for an empty candidate: a
// catchphrase, run through the unconditional injection pass.
func (e *Enforcer) enforceEmpty() EnforcementResult {
	violations := []string{"Response lacks personality and character"}
	modified := pick(e.rand, e.personality.SpeakingStyle.Catchphrases)
	if modified == "" {
		modified = e.personality.Name
	}
	modified = e.injectPersonalityElements(modified)
	return EnforcementResult{
		IsValid:          false,
		ModifiedResponse: modified,
		Violations:       violations,
		Suggestions:      e.suggestions(violations),
		ConfidenceScore:  e.score(violations, modified),
	}
}

// score starts at 100, subtracts 10 per violation and 5 for very short
// output, awards 5 each for a catchphrase and a personality emoji in the
// final text, and clamps to [0,100]. Deterministic for identical input and
// profile; randomness only ever touches the response text.
func (e *Enforcer) score(violations []string, final string) int {
	score := 100
	score -= 10 * len(violations)
	if len([]rune(final)) < 30 {
		score -= 5
	}
	if hasCatchphrase(final, e.personality) {
		score += 5
	}
	if hasPersonalityEmoji(final) {
		score += 5
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// suggestions maps violation classes to concrete fixes for monitoring.
func (e *Enforcer) suggestions(violations []string) []string {
	var out []string
	style := e.personality.SpeakingStyle
	for _, v := range violations {
		switch {
		case strings.Contains(v, "lacks personality"):
			if len(style.Catchphrases) > 0 {
				out = append(out, fmt.Sprintf("Use personality catchphrase: %q", style.Catchphrases[0]))
			}
		case strings.Contains(v, "vocabulary"):
			if len(style.Vocabulary) > 0 {
				n := 2
				if len(style.Vocabulary) < n {
					n = len(style.Vocabulary)
				}
				out = append(out, "Include personality vocabulary: "+strings.Join(style.Vocabulary[:n], ", "))
			}
		case strings.Contains(v, "Tone"):
			out = append(out, fmt.Sprintf("Match tone to: %q", style.Tone))
		case strings.Contains(v, "behavioral rule"):
			if len(e.personality.BehavioralRules) > 0 {
				out = append(out, fmt.Sprintf("Follow rule: %q", e.personality.BehavioralRules[0]))
			}
		}
	}
	return out
}

// Personality returns the profile this enforcer audits against.
func (e *Enforcer) Personality() *AgentPersonality {
	return e.personality
}
