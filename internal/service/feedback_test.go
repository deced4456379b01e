package service

import (
	"strings"
	"testing"
)

func TestComposeFeedbackPrompt(t *testing.T) {
	messages := ComposeFeedbackPrompt("Ada", 75, []string{"always", "sometimes"})

	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}

	system := messages[0]
	if system.Role != "system" {
		t.Errorf("first message role = %q, want system", system.Role)
	}
	if !strings.Contains(system.Content, "financial coach") {
		t.Errorf("system prompt missing persona: %q", system.Content)
	}
	if !strings.Contains(system.Content, "investment advice") {
		t.Errorf("system prompt missing advice constraint: %q", system.Content)
	}

	user := messages[1]
	if user.Role != "user" {
		t.Errorf("second message role = %q, want user", user.Role)
	}
	for _, want := range []string{"Ada", "75th", `["always","sometimes"]`} {
		if !strings.Contains(user.Content, want) {
			t.Errorf("user prompt missing %q: %q", want, user.Content)
		}
	}
}
