package assistant

import (
	"strings"
	"testing"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"Calculate my GPA: A=3, B=4", IntentGpaQuery},
		{"what is my CGPA", IntentGpaQuery},
		{"gpa hello", IntentGpaQuery}, // GPA check precedes greeting
		{"gpa help", IntentGpaQuery},  // and precedes help
		{"how do I study for my exam", IntentStudyHelp},
		{"any test taking tips", IntentStudyHelp},
		{"study plan for next week", IntentStudyHelp}, // study outranks plan
		{"I want to start a business", IntentBusinessHelp},
		{"advice for my startup", IntentBusinessHelp},
		{"a plan for the semester", IntentBusinessHelp},
		{"hello", IntentGreeting},
		{"hey there", IntentGreeting},
		{"help", IntentHelpRequest},
		{"I need help with something", IntentHelpRequest},
		{"what's the weather like", IntentFallback},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := DetectIntent(tt.message); got != tt.want {
				t.Errorf("DetectIntent(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestRouteGpaCalculation(t *testing.T) {
	router := NewRouter()

	intent, reply := router.Route("Calculate GPA: A=3, B=4")
	if intent != IntentGpaQuery {
		t.Fatalf("intent = %v, want %v", intent, IntentGpaQuery)
	}
	// 5*3 + 4*4 = 31 over 7 credits
	for _, fragment := range []string{"4.43", "Second Class Upper", "A, B", "7"} {
		if !strings.Contains(reply, fragment) {
			t.Errorf("reply missing %q:\n%s", fragment, reply)
		}
	}
}

func TestRouteGpaWithoutPairs(t *testing.T) {
	router := NewRouter()

	intent, reply := router.Route("what is my gpa?")
	if intent != IntentGpaQuery {
		t.Fatalf("intent = %v, want %v", intent, IntentGpaQuery)
	}
	// Must describe the scale and syntax, not attempt a calculation.
	if !strings.Contains(reply, "A=5") || !strings.Contains(reply, "Calculate my GPA") {
		t.Errorf("expected syntax help, got:\n%s", reply)
	}
	if strings.Contains(reply, "Classification:") {
		t.Errorf("syntax help should not contain a result:\n%s", reply)
	}
}

func TestRouteGpaUnusablePairs(t *testing.T) {
	router := NewRouter()

	// Pairs parse but carry zero credit weight, so the calculator fails.
	intent, reply := router.Route("gpa A=0")
	if intent != IntentGpaQuery {
		t.Fatalf("intent = %v, want %v", intent, IntentGpaQuery)
	}
	if !strings.Contains(reply, "A=3, B=4") {
		t.Errorf("expected format guidance, got:\n%s", reply)
	}
}

func TestRouteFallbackEchoesMessage(t *testing.T) {
	router := NewRouter()

	intent, reply := router.Route("purple monkey dishwasher")
	if intent != IntentFallback {
		t.Fatalf("intent = %v, want %v", intent, IntentFallback)
	}
	if !strings.Contains(reply, "purple monkey dishwasher") {
		t.Errorf("fallback should echo the message:\n%s", reply)
	}
}
