package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"media-fetcher-go/config"
	"media-fetcher-go/utils"
)

// DownloadPlaylistArchive downloads a full SoundCloud playlist into a
// temporary work directory, adds cover art and a manifest, and packages
// everything into a zip. Returns (zipBytes, suggestedFilename). The work
// directory is deleted regardless of the outcome.
func DownloadPlaylistArchive(url, audioFormat, quality string) ([]byte, string, error) {
	dir := filepath.Join(config.DownloadDir, "pl_"+newToken())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, "", fmt.Errorf("failed to create work directory: %w", err)
	}
	defer cleanupWorkDir(dir)

	outputTemplate := filepath.Join(dir, "%(playlist_index)03d - %(title)s.%(ext)s")
	opts := AudioOptions(outputTemplate, audioFormat, quality)
	opts.SleepRequests = config.PlaylistSleepRequests
	engine := NewEngine(opts)

	// Metadata first, no download
	info, err := engine.Probe(url)
	if err != nil {
		return nil, "", err
	}
	if info == nil {
		return nil, "", errors.New("could not retrieve playlist information")
	}

	title := info.Title
	if title == "" {
		title = "Playlist"
	}

	// Titles are best-effort; untitled entries are skipped, not fatal
	var trackTitles []string
	for _, entry := range info.Entries {
		if entry != nil && entry.Title != "" {
			trackTitles = append(trackTitles, entry.Title)
		}
	}

	coverURL := ResolveCoverURL(info)

	// Download all tracks
	if _, err := engine.Download(url); err != nil {
		return nil, "", err
	}

	// Cover art is best-effort: fall back to the first item's art, and give
	// up silently on total failure
	cover, err := FetchCover(coverURL)
	if err != nil && len(info.Entries) > 0 {
		if fallback := EntryCoverURL(info.Entries[0]); fallback != "" && fallback != coverURL {
			cover, err = FetchCover(fallback)
		}
	}
	if err == nil && len(cover) > 0 {
		coverName := "cover." + CoverExtension(cover)
		if err := os.WriteFile(filepath.Join(dir, coverName), cover, 0644); err != nil {
			log.Printf("[Playlist] Failed to save cover: %v\n", err)
		}
	}

	if err := writeManifest(dir, title, info.Description, trackTitles); err != nil {
		return nil, "", err
	}

	archive, err := BuildArchive(dir)
	if err != nil {
		return nil, "", err
	}

	name := utils.SanitizeTitle(title, config.MaxTitleLength) + ".zip"
	return archive, name, nil
}

// writeManifest writes the human-readable playlist.txt
func writeManifest(dir, title, description string, trackTitles []string) error {
	lines := []string{title, "", description, "", "--- Tracks ---"}
	for i, t := range trackTitles {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, t))
	}
	path := filepath.Join(dir, "playlist.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// cleanupWorkDir deletes the work directory and everything in it. Failures
// are logged and swallowed so they never mask the request's primary result.
func cleanupWorkDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err == nil {
		for _, entry := range entries {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				log.Printf("[Playlist] Failed to delete %s: %v\n", entry.Name(), err)
			}
		}
	}
	if err := os.Remove(dir); err != nil {
		log.Printf("[Playlist] Failed to remove work directory %s: %v\n", dir, err)
	}
}
