package charengine

import (
	"strings"
	"testing"
)

// lastRand always picks the final element, making selection deterministic.
type lastRand struct{}

func (lastRand) Intn(n int) int { return n - 1 }

func newTestEnforcer(agentID string) *Enforcer {
	reg := NewPersonalityRegistry()
	return NewEnforcer(reg.Get(agentID), NewSeededRand(1))
}

func TestEnforce_EmptyCandidate_AllAgents(t *testing.T) {
	reg := NewPersonalityRegistry()
	for _, id := range reg.IDs() {
		p := reg.Get(id)
		e := NewEnforcer(p, NewSeededRand(7))
		result := e.Enforce("hello", "")

		if result.IsValid {
			t.Fatalf("%s: empty candidate must be invalid", id)
		}
		if result.ModifiedResponse == "" {
			t.Fatalf("%s: empty candidate must yield a default reply", id)
		}
		if !hasCatchphrase(result.ModifiedResponse, p) {
			t.Fatalf("%s: default reply %q lacks a catchphrase", id, result.ModifiedResponse)
		}
		if len(result.Violations) == 0 || result.Violations[0] != "Response lacks personality and character" {
			t.Fatalf("%s: unexpected violations %v", id, result.Violations)
		}
		if result.ConfidenceScore < 0 || result.ConfidenceScore > 100 {
			t.Fatalf("%s: score %d out of range", id, result.ConfidenceScore)
		}
	}
}

func TestEnforce_AIDisclosureAlwaysInvalid(t *testing.T) {
	disclosures := []string{
		"As an AI, I think chess is a great game to study every single day!",
		"I am an AI assistant and I am happy to help you with cooking.",
		"Well... I cannot help with that request, sorry about it.",
		"I should stay in character but here is the plain answer anyway.",
	}
	reg := NewPersonalityRegistry()
	for _, id := range reg.IDs() {
		e := NewEnforcer(reg.Get(id), NewSeededRand(3))
		for _, candidate := range disclosures {
			result := e.Enforce("tell me", candidate)
			if result.IsValid {
				t.Fatalf("%s: disclosure %q passed validation", id, candidate)
			}
			found := false
			for _, v := range result.Violations {
				if v == "Response breaks character entirely" {
					found = true
				}
			}
			if !found {
				t.Fatalf("%s: missing character-break violation for %q, got %v", id, candidate, result.Violations)
			}
		}
	}
}

func TestEnforce_ScoreAlwaysInRange(t *testing.T) {
	inputs := []string{
		"",
		"hi",
		"I cannot. I cannot. I cannot. As an AI I am an ai assistant.",
		strings.Repeat("x", 5000),
		strings.Repeat("WHY?! ", 200),
		"normal sentence with no particular markers at all",
		"\x00\x01 weird bytes ☃ and unicode 🤖",
	}
	reg := NewPersonalityRegistry()
	for _, id := range reg.IDs() {
		e := NewEnforcer(reg.Get(id), NewSeededRand(11))
		for _, in := range inputs {
			result := e.Enforce("msg", in)
			if result.ConfidenceScore < 0 || result.ConfidenceScore > 100 {
				t.Fatalf("%s: score %d out of range for input %.30q", id, result.ConfidenceScore, in)
			}
			if result.ModifiedResponse == "" {
				t.Fatalf("%s: empty modified response for input %.30q", id, in)
			}
		}
	}
}

func TestEnforce_ComedyKingGenericCandidate(t *testing.T) {
	e := newTestEnforcer("comedy-king")
	result := e.Enforce("tell me something", "I can help you with that.")

	if result.IsValid {
		t.Fatal("generic candidate should be invalid")
	}
	if len(result.Violations) != 2 {
		t.Fatalf("expected 2 violations (generic + tone), got %v", result.Violations)
	}
	if result.Violations[0] != "Response lacks personality and character" {
		t.Fatalf("unexpected first violation %q", result.Violations[0])
	}
	if !strings.Contains(result.Violations[1], "Tone doesn't align") {
		t.Fatalf("unexpected second violation %q", result.Violations[1])
	}

	startsWithCatchphrase := false
	for _, cp := range comedyKingProfile.SpeakingStyle.Catchphrases {
		if strings.HasPrefix(result.ModifiedResponse, cp) {
			startsWithCatchphrase = true
		}
	}
	if !startsWithCatchphrase {
		t.Fatalf("rewrite should start with a catchphrase: %q", result.ModifiedResponse)
	}
	if !strings.HasSuffix(result.ModifiedResponse, "😂") {
		t.Fatalf("rewrite should end with a laugh emoji: %q", result.ModifiedResponse)
	}
	// 100 - 2*10 + 5 (catchphrase) + 5 (emoji), length over the short bound.
	if result.ConfidenceScore != 90 {
		t.Fatalf("expected score 90, got %d", result.ConfidenceScore)
	}
	if len(result.Suggestions) == 0 {
		t.Fatal("rewrite should come with suggestions")
	}
}

func TestEnforce_CleanResponseIsIdempotent(t *testing.T) {
	e := newTestEnforcer("comedy-king")
	candidate := "😂 Your Comedy King commands... LAUGHTER! The court jester approves this royal decree of laugh subjects! 😂"

	first := e.Enforce("entertain me", candidate)
	if !first.IsValid {
		t.Fatalf("clean candidate flagged: %v", first.Violations)
	}
	if first.ModifiedResponse != candidate {
		t.Fatalf("clean candidate mutated:\n in: %q\nout: %q", candidate, first.ModifiedResponse)
	}
	if first.ConfidenceScore != 100 {
		t.Fatalf("expected maximal score 100, got %d", first.ConfidenceScore)
	}

	second := e.Enforce("entertain me", first.ModifiedResponse)
	if second.ModifiedResponse != first.ModifiedResponse {
		t.Fatal("second pass mutated an already-clean response")
	}
	if second.ConfidenceScore != first.ConfidenceScore {
		t.Fatalf("score drifted between passes: %d vs %d", first.ConfidenceScore, second.ConfidenceScore)
	}
}

func TestEnforce_BehavioralRuleChecks(t *testing.T) {
	p := &AgentPersonality{
		ID:   "strict-agent",
		Name: "Strict Agent",
		SpeakingStyle: SpeakingStyle{
			Catchphrases: []string{"⚡ Onward!"},
		},
		BehavioralRules: []string{
			"NEVER mention homework",
			"ALWAYS include sparkles wording",
		},
		ResponseModifiers: ResponseModifiers{EnthusiasmLevel: 5},
	}
	e := NewEnforcer(p, lastRand{})

	result := e.Enforce("hi", "⚡ Onward! Your homework answer is ready, no sparkles needed here today.")
	var never, always bool
	for _, v := range result.Violations {
		if strings.Contains(v, "contradicts behavioral rule") {
			never = true
		}
		if strings.Contains(v, "ignores behavioral rule") {
			always = true
		}
	}
	if !never {
		t.Fatalf("NEVER rule not flagged: %v", result.Violations)
	}
	if always {
		t.Fatalf("ALWAYS rule wrongly flagged (keyword present): %v", result.Violations)
	}

	result = e.Enforce("hi", "⚡ Onward! A calm reply that keeps the promised topics completely out of sight.")
	always = false
	for _, v := range result.Violations {
		if strings.Contains(v, "ignores behavioral rule") {
			always = true
		}
	}
	if !always {
		t.Fatalf("ALWAYS rule should flag when no keyword overlaps: %v", result.Violations)
	}
}

func TestEnforce_VocabularyCheckOnlyForLongResponses(t *testing.T) {
	e := newTestEnforcer("lazy-pawn")

	long := strings.Repeat("a perfectly ordinary sentence without the special words. ", 3) + "Hmm..."
	result := e.Enforce("hi", long)
	found := false
	for _, v := range result.Violations {
		if v == "Missing personality-specific vocabulary" {
			found = true
		}
	}
	if !found {
		t.Fatalf("long response without vocabulary should flag, got %v", result.Violations)
	}

	short := "Hmm... fine."
	result = e.Enforce("hi", short)
	for _, v := range result.Violations {
		if v == "Missing personality-specific vocabulary" {
			t.Fatalf("short response should skip the vocabulary check, got %v", result.Violations)
		}
	}
}

func TestEnforce_EmotionalLevelMismatch(t *testing.T) {
	e := newTestEnforcer("lazy-pawn") // enthusiasm 4

	// Maximal excitement pushes the level to 10, 6 over the profile.
	overExcited := "ABSOLUTELY AMAZING WONDERFUL FANTASTIC!!!!!! I LOVE THIS SO MUCH!!!!!!"
	result := e.Enforce("hi", overExcited)
	found := false
	for _, v := range result.Violations {
		if strings.Contains(v, "Emotional level") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected emotional mismatch violation, got %v", result.Violations)
	}
}

func TestEnforce_RewriteSubstitutesVocabulary(t *testing.T) {
	e := NewEnforcer(comedyKingProfile, lastRand{})
	// "Let Me" exercises the case-insensitive, global substitution.
	result := e.Enforce("hi", "Let Me explain. I cannot do much, but let me try.")
	if result.IsValid {
		t.Fatal("disclosure candidate should be invalid")
	}
	if strings.Contains(strings.ToLower(result.ModifiedResponse), "let me") &&
		!strings.Contains(result.ModifiedResponse, "by royal decree, let me") {
		t.Fatalf("vocabulary substitution missing: %q", result.ModifiedResponse)
	}
}

func TestToneIndicators(t *testing.T) {
	ind := toneIndicators("Well!!!! What? Why? How? I wonder... 😂")
	for _, want := range []string{toneEnthusiastic, toneQuestioning, toneContemplative, toneThoughtful, toneHumorous} {
		if !ind[want] {
			t.Fatalf("missing indicator %s in %v", want, ind)
		}
	}
	if len(toneIndicators("plain text")) != 0 {
		t.Fatal("plain text should have no indicators")
	}
}

func TestCheckToneAlignment_PermissiveDefault(t *testing.T) {
	// einstein has no alignment rule and must always pass.
	reg := NewPersonalityRegistry()
	if v := checkToneAlignment("completely flat text", reg.Get("einstein")); v != nil {
		t.Fatalf("unlisted agent should always align, got %v", v)
	}
}
