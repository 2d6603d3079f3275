package sanitize

import (
	"strings"
	"testing"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"bold stripped", "<b>x</b>", "x"},
		{"nested markup stripped", "<div><script>alert(1)</script>safe</div>", "safe"},
		{"link text kept", `click <a href="https://evil.example">here</a>`, "click here"},
		{"entities restored", "a &amp; b", "a & b"},
		{"surrounding whitespace trimmed", "  spaced  ", "spaced"},
		{"empty stays empty", "", ""},
		{"image dropped", `<img src=x onerror=alert(1)>caption`, "caption"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.in); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("short input changed: %q", got)
	}
	if got := Truncate(strings.Repeat("x", 300), 180); len(got) != 180 {
		t.Errorf("expected 180 chars, got %d", len(got))
	}
	// rune-aware: multibyte characters are not split
	if got := Truncate("héllo", 2); got != "hé" {
		t.Errorf("rune truncation broken: %q", got)
	}
}
