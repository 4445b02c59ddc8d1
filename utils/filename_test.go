package utils

import (
	"strings"
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"illegal characters stripped", `My/Track:"Name"?`, 80, "MyTrackName"},
		{"spaces preserved", "A Good Title", 80, "A Good Title"},
		{"surrounding whitespace trimmed", "  padded  ", 80, "padded"},
		{"backslash and pipe stripped", `a\b|c`, 80, "abc"},
		{"control characters stripped", "a\x00b\x1fc", 80, "abc"},
		{"empty input", "", 80, ""},
		{"length capped", strings.Repeat("x", 100), 80, strings.Repeat("x", 80)},
	}

	for _, test := range tests {
		if got := SanitizeTitle(test.input, test.maxLen); got != test.expected {
			t.Errorf("%s: SanitizeTitle(%q, %d) = %q, expected %q",
				test.name, test.input, test.maxLen, got, test.expected)
		}
	}
}

func TestContentTypeForFormat(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{"mp4", "video/mp4"},
		{"mp3", "audio/mpeg"},
		{"wav", "audio/wav"},
		{"zip", "application/zip"},
		{"flac", "application/octet-stream"},
	}

	for _, test := range tests {
		if got := ContentTypeForFormat(test.format); got != test.expected {
			t.Errorf("ContentTypeForFormat(%q) = %q, expected %q", test.format, got, test.expected)
		}
	}
}
