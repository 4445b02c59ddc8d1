package services

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"media-fetcher-go/config"
	"media-fetcher-go/models"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// ResolveCoverURL picks a cover art URL for a playlist. Fallback chain:
// playlist thumbnail, last (highest-res) playlist thumbnails entry, then the
// first item's art. Returns "" when nothing resolves.
func ResolveCoverURL(info *models.MediaInfo) string {
	if info == nil {
		return ""
	}
	if info.Thumbnail != "" {
		return info.Thumbnail
	}
	if len(info.Thumbnails) > 0 {
		if url := info.Thumbnails[len(info.Thumbnails)-1].URL; url != "" {
			return url
		}
	}
	if len(info.Entries) > 0 {
		return EntryCoverURL(info.Entries[0])
	}
	return ""
}

// EntryCoverURL resolves cover art for a single playlist entry
func EntryCoverURL(entry *models.MediaInfo) string {
	if entry == nil {
		return ""
	}
	if entry.Thumbnail != "" {
		return entry.Thumbnail
	}
	if len(entry.Thumbnails) > 0 {
		return entry.Thumbnails[len(entry.Thumbnails)-1].URL
	}
	return ""
}

// UpgradeSoundCloudArtwork rewrites SoundCloud's low-res artwork marker to
// request the 500x500 variant.
func UpgradeSoundCloudArtwork(url string) string {
	if strings.Contains(url, "soundcloud") && strings.Contains(url, "-large") {
		return strings.Replace(url, "-large", "-t500x500", 1)
	}
	return url
}

// FetchCover downloads cover image bytes. Some providers reject requests
// without a browser user-agent, so one is spoofed.
func FetchCover(url string) ([]byte, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fmt.Errorf("no cover URL")
	}
	url = UpgradeSoundCloudArtwork(url)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", config.CoverUserAgent)

	resp, err := config.CoverClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cover fetch failed (status %d)", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read cover: %w", err)
	}
	return data, nil
}

// CoverExtension classifies image bytes by magic number. Content-type
// headers and URL extensions are not trusted.
func CoverExtension(data []byte) string {
	if bytes.HasPrefix(data, pngSignature) {
		return "png"
	}
	return "jpg"
}
