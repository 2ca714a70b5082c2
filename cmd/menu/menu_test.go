package menu

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  mode
		ok    bool
	}{
		{"1", modeShuffle, true},
		{"2", modePlay, true},
		{"3", modeSearch, true},
		{"4", 0, false},
		{"0", 0, false},
		{"", 0, false},
		{"shuffle", 0, false},
	}

	for _, tt := range tests {
		got, err := parseMode(tt.input)
		if tt.ok {
			if err != nil {
				t.Errorf("parseMode(%q) returned error: %v", tt.input, err)
			} else if got != tt.want {
				t.Errorf("parseMode(%q) = %d, want %d", tt.input, got, tt.want)
			}
		} else if err == nil {
			t.Errorf("parseMode(%q) should return error", tt.input)
		}
	}
}
