package memory

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestTouchKeepsConversationPerUser(t *testing.T) {
	repo := NewConversationRepository()
	userID := uuid.New()

	first := repo.Touch(userID)
	second := repo.Touch(userID)

	if first == "" || !strings.HasPrefix(first, "conv_") {
		t.Fatalf("Touch() = %q, want conv_ prefix", first)
	}
	if second != first {
		t.Errorf("Touch() minted %q on repeat, want stable %q", second, first)
	}
}

func TestTouchSeparatesConcurrentUsers(t *testing.T) {
	repo := NewConversationRepository()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := repo.Touch(uuid.New())
		if seen[id] {
			t.Fatalf("Touch() reused conversation id %q across users", id)
		}
		seen[id] = true
	}
}

func TestEndStartsFreshConversation(t *testing.T) {
	repo := NewConversationRepository()
	userID := uuid.New()

	first := repo.Touch(userID)
	repo.End(userID)
	second := repo.Touch(userID)

	if second == first {
		t.Errorf("Touch() after End() = %q, want a new conversation id", second)
	}
}
