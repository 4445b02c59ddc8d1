package utils

import (
	"regexp"
	"strings"
)

// Supported sources
const (
	SourceYouTube    = "youtube"
	SourceSoundCloud = "soundcloud"
)

var (
	// Common YouTube URL shapes: watch, embed, v, shorts, youtu.be
	youtubeURLPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?(?:youtube\.com/(?:watch\?v=|embed/|v/|shorts/)|youtu\.be/)[\w-]+`)

	// SoundCloud: track, playlist/set, user stream
	soundcloudURLPattern = regexp.MustCompile(`^(?i)(?:https?://)?(?:www\.)?soundcloud\.com/[\w\-./]+`)
)

// URLClass is the result of classifying a media URL
type URLClass struct {
	Source   string
	Playlist bool
}

// IsYouTubeURL reports whether the URL matches a recognized YouTube pattern
func IsYouTubeURL(url string) bool {
	return url != "" && youtubeURLPattern.MatchString(strings.TrimSpace(url))
}

// IsSoundCloudURL reports whether the URL matches a recognized SoundCloud pattern
func IsSoundCloudURL(url string) bool {
	return url != "" && soundcloudURLPattern.MatchString(strings.TrimSpace(url))
}

// IsSoundCloudPlaylist guesses playlist candidacy from the URL shape. The
// answer is optimistic; the engine's metadata probe is the ground truth.
func IsSoundCloudPlaylist(url string) bool {
	if !IsSoundCloudURL(url) {
		return false
	}
	u := strings.ToLower(strings.TrimSpace(url))
	return strings.Contains(u, "/sets/") || strings.Contains(u, "?in=")
}

// ClassifyURL maps a URL to its source and playlist candidacy. The second
// return value is false for unrecognized URLs. Pure pattern matching, no I/O.
func ClassifyURL(url string) (URLClass, bool) {
	if IsYouTubeURL(url) {
		return URLClass{Source: SourceYouTube}, true
	}
	if IsSoundCloudURL(url) {
		return URLClass{Source: SourceSoundCloud, Playlist: IsSoundCloudPlaylist(url)}, true
	}
	return URLClass{}, false
}
