package cli

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short name unchanged", "Morning Run", 24, "Morning Run"},
		{"exact length unchanged", "abcdefghij", 10, "abcdefghij"},
		{"long ascii truncated", "A very long habit name indeed", 24, "A very long habit nam..."},
		{"multibyte truncated on runes", "Ежедневная зарядка и медитация", 24, "Ежедневная зарядка и ..."},
		{"emoji name truncated on runes", "🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃", 10, "🏃🏃🏃🏃🏃🏃🏃..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateName(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("truncateName(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateName(%q, %d) produced invalid UTF-8", tt.input, tt.max)
			}
			if n := len([]rune(got)); n > tt.max {
				t.Errorf("truncateName(%q, %d) is %d runes long", tt.input, tt.max, n)
			}
		})
	}
}
