// FILE: pkg/assistant/router.go
// PURPOSE: Route a chat message to an intent and render the reply text
package assistant

import (
	"fmt"
	"strings"

	"thinkora-be/pkg/gpa"
)

// Router classifies inbound messages and produces reply text. It holds
// no state across calls; a single instance is safe for concurrent use.
type Router struct{}

func NewRouter() *Router {
	return &Router{}
}

// Route classifies the message and renders the reply for its intent.
// It never returns an error: malformed input ends up as guidance or
// fallback text, and empty messages are rejected by the HTTP layer
// before they reach the router.
func (r *Router) Route(message string) (Intent, string) {
	intent := DetectIntent(message)

	switch intent {
	case IntentGpaQuery:
		return intent, r.gpaReply(message)
	case IntentStudyHelp:
		return intent, studyReply
	case IntentBusinessHelp:
		return intent, businessReply
	case IntentGreeting:
		return intent, greetingReply
	case IntentHelpRequest:
		return intent, helpReply
	default:
		return IntentFallback, fmt.Sprintf(fallbackReplyFormat, strings.TrimSpace(message))
	}
}

// gpaReply handles the extraction sub-step of a GPA query: parse pairs
// from the original message, run exactly one calculation over them, and
// fall back to guidance or syntax help when there is nothing to compute.
func (r *Router) gpaReply(message string) string {
	pairs := ExtractGradePairs(message)
	if len(pairs) == 0 {
		return gpaSyntaxHelp
	}

	result, err := gpa.Calculate(Grades(pairs), Credits(pairs))
	if err != nil {
		return gpaGuidance
	}

	return fmt.Sprintf(
		"📊 Here's your GPA breakdown:\n\n"+
			"Grades: %s\n"+
			"Total Credits: %s\n"+
			"GPA: %s / 5.00\n"+
			"Classification: %s\n\n"+
			"Keep it up! Add more courses any time with the same format.",
		strings.Join(result.GradesUsed, ", "),
		result.TotalCredits,
		result.GPA.StringFixed(2),
		result.Classification,
	)
}

const (
	studyReply = "📚 Happy to help you study! A few things that work well:\n" +
		"1. Break topics into 25-minute focused sessions with short breaks.\n" +
		"2. Test yourself instead of re-reading — practice questions beat notes.\n" +
		"3. Plan revision backwards from the exam date.\n" +
		"Tell me the course or topic and I can get more specific."

	businessReply = "💼 Business support, coming up! For a student venture or SME, start with:\n" +
		"1. Write a one-page plan: the problem, your customer, how you earn.\n" +
		"2. Validate with 10 real conversations before spending money.\n" +
		"3. Keep personal and business money separate from day one.\n" +
		"Ask me about planning, pricing, or getting your first customers."

	greetingReply = "👋 Hello! I'm your academic assistant. I can calculate your GPA, " +
		"share study tips, or talk through business ideas. Try: " +
		"\"Calculate my GPA: A=3, B=4\""

	helpReply = "🤝 Here's what I can do:\n" +
		"• GPA calculation — send your grades like \"GPA: A=3, B=4, C=2\"\n" +
		"• Study help — ask about exams, revision, or learning techniques\n" +
		"• Business help — ask about plans, startups, or SMEs\n" +
		"What would you like to start with?"

	fallbackReplyFormat = "You said: \"%s\". I'm best at GPA calculations, study tips, " +
		"and business advice — ask me about any of those, or type \"help\"."
)

var gpaSyntaxHelp = fmt.Sprintf(
	"📊 I can calculate your GPA on the 5.00 scale (A=5, B=4, C=3, D=2, E=1, F=0).\n"+
		"Send your grades with their credit units like this:\n\n"+
		"\"Calculate my GPA: A=3, B=4, C=2\"\n\n"+
		"Each pair is grade=credits, and I accept the letters %s.",
	strings.Join(gpa.KnownGrades(), ", "),
)

const gpaGuidance = "I found grade entries in your message but none of them were usable. " +
	"Use letter grades A–F with positive credit units, for example: \"A=3, B=4\"."
