package charengine

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestEngine_UnknownAgentResolvesToDefault(t *testing.T) {
	e := NewResponseEngine("no-such-agent-xyz")
	if got := e.Personality().ID; got != DefaultAgentID {
		t.Fatalf("personality = %s, want %s", got, DefaultAgentID)
	}
}

func TestEngine_RespondAuditsCandidate(t *testing.T) {
	exporter := &CollectingExporter{}
	e := NewResponseEngine("comedy-king",
		WithRandSource(NewSeededRand(5)),
		WithTraceExporter(exporter),
		WithLogger(zap.NewNop()))

	ctx := ConversationContext{UserMessage: "tell me something"}
	result := e.Respond(ctx, "I can help you with that.")

	if result.IsValid {
		t.Fatal("generic candidate should be invalid")
	}
	if result.ConfidenceScore != 90 {
		t.Fatalf("score = %d, want 90", result.ConfidenceScore)
	}

	stats := e.Stats()
	if stats.Responses != 1 || stats.Rewrites != 1 || stats.Synthesized != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.Violations != int64(len(result.Violations)) {
		t.Fatalf("violations counter = %d, want %d", stats.Violations, len(result.Violations))
	}

	traces := exporter.Traces()
	if len(traces) != 1 {
		t.Fatalf("traces = %d, want 1", len(traces))
	}
	tr := traces[0]
	if tr.TraceID == "" || tr.AgentID != "comedy-king" {
		t.Fatalf("trace identity wrong: %+v", tr)
	}
	if len(tr.Stages) != 1 || tr.Stages[0].Name != "enforce" {
		t.Fatalf("stages = %+v", tr.Stages)
	}
	if tr.EndTime.Before(tr.StartTime) {
		t.Fatal("trace end before start")
	}
}

func TestEngine_RespondSynthesizesWhenCandidateBlank(t *testing.T) {
	exporter := &CollectingExporter{}
	e := NewResponseEngine("comedy-king",
		WithRandSource(NewSeededRand(5)),
		WithTraceExporter(exporter))

	result := e.Respond(ConversationContext{UserMessage: "hello"}, "   \t\n")
	if result.ModifiedResponse == "" {
		t.Fatal("blank candidate must still produce a reply")
	}
	if !hasCatchphrase(result.ModifiedResponse, e.Personality()) {
		t.Fatalf("synthesized reply lacks a catchphrase: %q", result.ModifiedResponse)
	}

	stats := e.Stats()
	if stats.Synthesized != 1 {
		t.Fatalf("synthesized counter = %d, want 1", stats.Synthesized)
	}

	tr := exporter.Traces()[0]
	if len(tr.Stages) != 2 || tr.Stages[0].Name != "synthesize" || tr.Stages[1].Name != "enforce" {
		t.Fatalf("stages = %+v", tr.Stages)
	}
	if e.Memory().Len() != 1 {
		t.Fatalf("memory len = %d, want 1", e.Memory().Len())
	}
}

func TestEngine_AddKnowledgeReachesInjection(t *testing.T) {
	e := NewResponseEngine("comedy-king", WithRandSource(lastRand{}))
	if err := e.AddKnowledge("cooking", []string{"fact X"}); err != nil {
		t.Fatal(err)
	}

	reply := e.Synthesize(ConversationContext{UserMessage: "what should I cook tonight"})
	if !strings.Contains(reply, "fact X") {
		t.Fatalf("appended fact not injected: %q", reply)
	}

	snap := e.AgentKnowledge()
	found := false
	for _, area := range snap.KnowledgeAreas {
		if area == "cooking" {
			found = true
		}
	}
	if !found {
		t.Fatalf("knowledge areas = %v", snap.KnowledgeAreas)
	}
	if snap.Personality.ID != "comedy-king" {
		t.Fatalf("snapshot personality = %s", snap.Personality.ID)
	}
	if snap.InteractionCount != 1 {
		t.Fatalf("interaction count = %d, want 1", snap.InteractionCount)
	}
}

func TestEngine_CustomRegistryAndCapacity(t *testing.T) {
	reg, err := NewPersonalityRegistryWith("comedy-king", []*AgentPersonality{comedyKingProfile})
	if err != nil {
		t.Fatal(err)
	}
	e := NewResponseEngine("comedy-king",
		WithRegistry(reg),
		WithLearningCapacity(2),
		WithRandSource(NewSeededRand(9)))

	for i := 0; i < 5; i++ {
		e.Synthesize(ConversationContext{UserMessage: "hi"})
	}
	if e.Memory().Len() != 2 {
		t.Fatalf("memory len = %d, want 2", e.Memory().Len())
	}
}

func TestEngine_StarterUsesProfileOpeners(t *testing.T) {
	e := NewResponseEngine("comedy-king", WithRandSource(lastRand{}))
	starter := e.Starter()
	found := false
	for _, s := range e.Personality().ConversationStarters {
		if s == starter {
			found = true
		}
	}
	if !found {
		t.Fatalf("starter %q not from profile openers", starter)
	}

	// Profiles without starters still greet.
	reg, err := NewPersonalityRegistryWith("bare", []*AgentPersonality{{
		ID:   "bare",
		Name: "Bare",
		SpeakingStyle: SpeakingStyle{
			Catchphrases: []string{"🌟 Onward!"},
		},
	}})
	if err != nil {
		t.Fatal(err)
	}
	bare := NewResponseEngine("bare", WithRegistry(reg), WithRandSource(lastRand{}))
	if got := bare.Starter(); got == "" {
		t.Fatalf("bare profile produced empty starter")
	}
}

func TestEngine_AnalyzePassthrough(t *testing.T) {
	e := NewResponseEngine("einstein")
	res := e.Analyze("how does chess strategy work?")
	if res.Intent != IntentHelpSeeking || !res.NeedsHelp {
		t.Fatalf("analysis = %+v", res)
	}
}
