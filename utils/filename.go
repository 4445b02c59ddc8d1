package utils

import (
	"regexp"
	"strings"
)

// Characters not allowed in filenames
var invalidChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// SanitizeTitle strips filesystem-illegal characters from a title and caps
// its length so it can be used as a download filename.
func SanitizeTitle(name string, maxLen int) string {
	name = invalidChars.ReplaceAllString(strings.TrimSpace(name), "")
	if len(name) > maxLen {
		name = name[:maxLen]
	}
	return name
}

// ContentTypeForFormat returns the MIME type for an output format
func ContentTypeForFormat(format string) string {
	switch format {
	case "mp4":
		return "video/mp4"
	case "mp3":
		return "audio/mpeg"
	case "wav":
		return "audio/wav"
	case "zip":
		return "application/zip"
	default:
		return "application/octet-stream"
	}
}
