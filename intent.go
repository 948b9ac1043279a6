package charengine

import (
	"regexp"
	"strings"
)

// ──────────────────────────────────────────────
// Intent Analyzer — keyword/pattern message analysis
// ──────────────────────────────────────────────

// Intent classifies what the user is after.
type Intent string

const (
	IntentGeneral       Intent = "general"
	IntentHelpSeeking   Intent = "help_seeking"
	IntentEntertainment Intent = "entertainment"
	IntentEducation     Intent = "education"
	IntentQuestion      Intent = "question"
)

// Emotion is the coarse emotional read of a user message.
type Emotion string

const (
	EmotionPositive  Emotion = "positive"
	EmotionNegative  Emotion = "negative"
	EmotionUncertain Emotion = "uncertain"
	EmotionUrgent    Emotion = "urgent"
	EmotionNeutral   Emotion = "neutral"
)

// MessageAnalysis is the structurally-total result of Analyze. Empty input
// yields general/neutral/complexity 1 with no topics.
type MessageAnalysis struct {
	Intent     Intent   `json:"intent"`
	Topics     []string `json:"topics"`
	Emotion    Emotion  `json:"emotion"`
	Complexity int      `json:"complexity"` // 1-10
	NeedsHelp  bool     `json:"needs_help"`
}

// Topic patterns are word-stem style so "cooking"/"cooked" both hit.
var topicPatterns = []struct {
	topic string
	re    *regexp.Regexp
}{
	{"cooking", regexp.MustCompile(`(?i)cook|recipe|food|kitchen|ingredient`)},
	{"chess_strategy", regexp.MustCompile(`(?i)chess|strategy|game|move|piece`)},
	{"comedy", regexp.MustCompile(`(?i)funny|joke|laugh|humor|comedy`)},
	{"efficiency", regexp.MustCompile(`(?i)efficient|quick|easy|shortcut|automation`)},
	{"drama", regexp.MustCompile(`(?i)drama|emotion|theater|performance`)},
}

var emotionPatterns = []struct {
	emotion Emotion
	re      *regexp.Regexp
}{
	{EmotionPositive, regexp.MustCompile(`(?i)excited|amazing|great|awesome`)},
	{EmotionNegative, regexp.MustCompile(`(?i)sad|frustrated|angry|upset`)},
	{EmotionUncertain, regexp.MustCompile(`(?i)confused|unsure|maybe|think`)},
	{EmotionUrgent, regexp.MustCompile(`(?i)urgent|quickly|asap|now`)},
}

var allCapsToken = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// IntentAnalyzer derives intent, topics, emotion and complexity from a raw
// user utterance. Pure pattern matching, no side effects, no failure modes.
type IntentAnalyzer struct{}

// NewIntentAnalyzer creates an analyzer.
func NewIntentAnalyzer() *IntentAnalyzer {
	return &IntentAnalyzer{}
}

// Analyze inspects one user message.
func (a *IntentAnalyzer) Analyze(message string) MessageAnalysis {
	intent := detectIntent(message)
	return MessageAnalysis{
		Intent:     intent,
		Topics:     extractTopics(message),
		Emotion:    detectEmotion(message),
		Complexity: assessComplexity(message),
		NeedsHelp:  intent == IntentHelpSeeking || intent == IntentQuestion,
	}
}

// detectIntent applies substring tests in fixed priority order; the first
// positive match wins.
func detectIntent(message string) Intent {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "help") || strings.Contains(lower, "how"):
		return IntentHelpSeeking
	case strings.Contains(lower, "funny") || strings.Contains(lower, "joke"):
		return IntentEntertainment
	case strings.Contains(lower, "learn") || strings.Contains(lower, "teach"):
		return IntentEducation
	case strings.Contains(lower, "?"):
		return IntentQuestion
	default:
		return IntentGeneral
	}
}

// extractTopics returns every knowledge topic whose pattern matches, in
// fixed table order. Zero or more may match.
func extractTopics(message string) []string {
	var topics []string
	for _, tp := range topicPatterns {
		if tp.re.MatchString(message) {
			topics = append(topics, tp.topic)
		}
	}
	return topics
}

// detectEmotion is first-match-wins over the keyword sets.
func detectEmotion(message string) Emotion {
	for _, ep := range emotionPatterns {
		if ep.re.MatchString(message) {
			return ep.emotion
		}
	}
	return EmotionNeutral
}

// assessComplexity scores 1-10: base 1, +2 for long messages, +1 for
// multiple questions, +2 for any ALL-CAPS token, capped at 10.
func assessComplexity(message string) int {
	complexity := 1
	if len(strings.Fields(message)) > 20 {
		complexity += 2
	}
	if strings.Count(message, "?") > 1 {
		complexity++
	}
	if allCapsToken.MatchString(message) {
		complexity += 2
	}
	if complexity > 10 {
		complexity = 10
	}
	return complexity
}
