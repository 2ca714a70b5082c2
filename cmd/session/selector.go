package session

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Selector decides which library entry plays next. Implementations carry
// their own cursor/rng state, so a single Selector value is threaded through
// one session without ever re-listing the directory.
type Selector interface {
	Next(lib Library) string
}

// Sequential walks the library front to back and silently wraps back to the
// first entry after the last one. The wraparound is a deliberate policy, kept
// from the behavior this tool replaces.
type Sequential struct {
	cursor int
}

func (s *Sequential) Next(lib Library) string {
	if s.cursor >= lib.Len() {
		s.cursor = 0
	}
	file := lib.Files[s.cursor]
	s.cursor++
	return file
}

// Random draws a uniformly random entry each call. Draws are independent, so
// repeats are possible, including immediate ones.
type Random struct {
	rng *rand.Rand
}

func NewRandom() *Random {
	return &Random{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewRandomSeeded returns a Random with a fixed seed, for deterministic tests.
func NewRandomSeeded(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Next(lib Library) string {
	return lib.Files[r.rng.Intn(lib.Len())]
}

// PickIndex resolves a user-supplied 1-based index into matches. Non-numeric
// input or an index outside [1, len(matches)] is ErrInvalidSelection.
func PickIndex(matches []string, input string) (string, error) {
	idx, err := strconv.Atoi(input)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, input)
	}
	if idx < 1 || idx > len(matches) {
		return "", fmt.Errorf("%w: %d is out of range 1-%d", ErrInvalidSelection, idx, len(matches))
	}
	return matches[idx-1], nil
}
