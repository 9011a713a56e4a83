// FILE: pkg/assistant/intent.go
// PURPOSE: Keyword-based intent classification for inbound chat messages
package assistant

import (
	"strings"
)

// Intent is the classified purpose of an inbound chat message.
type Intent string

const (
	IntentGpaQuery     Intent = "gpa_query"
	IntentStudyHelp    Intent = "study_help"
	IntentBusinessHelp Intent = "business_help"
	IntentGreeting     Intent = "greeting"
	IntentHelpRequest  Intent = "help_request"
	IntentFallback     Intent = "fallback"
)

// intentRule pairs an intent with its trigger keywords. The rules are an
// ordered list and DetectIntent takes the first match: the categories
// overlap in vocabulary ("gpa help", "study plan"), so reordering this
// slice changes classification.
type intentRule struct {
	Intent   Intent
	Keywords []string
}

var intentRules = []intentRule{
	{IntentGpaQuery, []string{"gpa", "cgpa"}},
	{IntentStudyHelp, []string{"study", "learn", "exam", "test"}},
	{IntentBusinessHelp, []string{"business", "sme", "startup", "plan"}},
	{IntentGreeting, []string{"hello", "hi", "hey"}},
	{IntentHelpRequest, []string{"help"}},
}

// DetectIntent classifies a message by case-insensitive substring match
// against the ordered rule list. It never fails; anything unmatched is
// IntentFallback.
func DetectIntent(message string) Intent {
	lowered := strings.ToLower(strings.TrimSpace(message))

	for _, rule := range intentRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Intent
			}
		}
	}
	return IntentFallback
}
