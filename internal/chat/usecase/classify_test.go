package usecase

import (
	"fmt"
	"strings"
	"testing"

	"financial-assistant/internal/chat"
	"financial-assistant/internal/model"
)

func TestContainsArabic(t *testing.T) {
	tcs := []struct {
		name string
		text string
		want bool
	}{
		{"english", "What is my YTD return?", false},
		{"arabic", "ما هو أداء محفظتي؟", true},
		{"mixed", "show me the P&L لهذا الشهر", true},
		{"empty", "", false},
		{"numbers and symbols", "100% + $50", false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := containsArabic(tc.text); got != tc.want {
				t.Errorf("containsArabic(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestHistoryContext(t *testing.T) {
	t.Run("Empty History", func(t *testing.T) {
		if got := historyContext(nil); got != "" {
			t.Errorf("expected empty context, got %q", got)
		}
	})

	t.Run("Includes Roles And Content", func(t *testing.T) {
		got := historyContext([]model.Message{
			{Role: "user", Content: "hello"},
			{Role: "assistant", Content: "hi there"},
		})
		if !strings.HasPrefix(got, chat.PromptHistoryPrefix) {
			t.Errorf("missing history prefix: %q", got)
		}
		if !strings.Contains(got, "user: hello") || !strings.Contains(got, "assistant: hi there") {
			t.Errorf("missing messages: %q", got)
		}
	})

	t.Run("Caps At Most Recent Messages", func(t *testing.T) {
		var history []model.Message
		for i := 0; i < chat.MaxHistoryInPrompt+4; i++ {
			history = append(history, model.Message{Role: "user", Content: fmt.Sprintf("msg-%d", i)})
		}

		got := historyContext(history)
		if strings.Contains(got, "msg-0") || strings.Contains(got, "msg-3") {
			t.Errorf("old messages should be dropped: %q", got)
		}
		if !strings.Contains(got, fmt.Sprintf("msg-%d", len(history)-1)) {
			t.Errorf("newest message should be kept: %q", got)
		}
	})
}
