package search

import (
	"strings"
	"testing"

	"github.com/spindle-cli/spindle/cmd/session"
)

func TestRenderMatches(t *testing.T) {
	lib := session.Library{
		Dir: "/music",
		Files: []string{
			"/music/song.mp3",
			"/music/albums/Song2.wav",
		},
	}

	var out strings.Builder
	renderMatches(lib, &out)

	rendered := out.String()
	for _, want := range []string{"song.mp3", "Song2.wav", "albums", "1", "2"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Expected table to contain %q, got:\n%s", want, rendered)
		}
	}
}

func TestPromptChoice(t *testing.T) {
	var out strings.Builder
	choice, err := promptChoice(strings.NewReader("  2\n"), &out, 5)
	if err != nil {
		t.Fatalf("promptChoice failed: %v", err)
	}
	if choice != "2" {
		t.Errorf("Expected choice 2, got %q", choice)
	}
	if !strings.Contains(out.String(), "[1-5]") {
		t.Errorf("Expected prompt to show the valid range, got %q", out.String())
	}
}

func TestPromptChoice_NoInput(t *testing.T) {
	var out strings.Builder
	_, err := promptChoice(strings.NewReader(""), &out, 3)
	if err == nil {
		t.Fatal("Expected error on empty input stream")
	}
}
