package session

import (
	"errors"
	"testing"
)

func testLibrary(files ...string) Library {
	return Library{Dir: "/music", Files: files}
}

func TestSequential_VisitsInOrderThenWraps(t *testing.T) {
	lib := testLibrary("/music/a.mp3", "/music/b.mp3", "/music/c.mp3")
	sel := &Sequential{}

	var visited []string
	for i := 0; i < lib.Len()+1; i++ {
		visited = append(visited, sel.Next(lib))
	}

	for i := 0; i < lib.Len(); i++ {
		if visited[i] != lib.Files[i] {
			t.Errorf("Step %d: expected %s, got %s", i, lib.Files[i], visited[i])
		}
	}
	// Call N+1 yields the same file as call 1
	if visited[lib.Len()] != visited[0] {
		t.Errorf("Expected wraparound to %s, got %s", visited[0], visited[lib.Len()])
	}
}

func TestSequential_SingleFile(t *testing.T) {
	lib := testLibrary("/music/only.mp3")
	sel := &Sequential{}

	for i := 0; i < 3; i++ {
		if got := sel.Next(lib); got != "/music/only.mp3" {
			t.Fatalf("Step %d: got %s", i, got)
		}
	}
}

func TestRandom_StaysInLibraryAndReachesAll(t *testing.T) {
	lib := testLibrary("/music/a.mp3", "/music/b.mp3", "/music/c.mp3", "/music/d.mp3")
	inLib := map[string]bool{}
	for _, f := range lib.Files {
		inLib[f] = true
	}

	sel := NewRandomSeeded(42)
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		f := sel.Next(lib)
		if !inLib[f] {
			t.Fatalf("Draw %d returned %s, not in library", i, f)
		}
		seen[f] = true
	}

	if len(seen) != lib.Len() {
		t.Errorf("Expected all %d files reachable, saw %d", lib.Len(), len(seen))
	}
}

func TestPickIndex(t *testing.T) {
	matches := []string{"song.mp3", "Song2.wav"}

	got, err := PickIndex(matches, "1")
	if err != nil {
		t.Fatalf("PickIndex(1) failed: %v", err)
	}
	if got != "song.mp3" {
		t.Errorf("PickIndex(1) = %s, want song.mp3", got)
	}

	got, err = PickIndex(matches, "2")
	if err != nil {
		t.Fatalf("PickIndex(2) failed: %v", err)
	}
	if got != "Song2.wav" {
		t.Errorf("PickIndex(2) = %s, want Song2.wav", got)
	}

	for _, input := range []string{"3", "0", "-1", "abc", "", "1.5"} {
		if _, err := PickIndex(matches, input); !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("PickIndex(%q): expected ErrInvalidSelection, got %v", input, err)
		}
	}
}
