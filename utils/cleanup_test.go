package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"media-fetcher-go/config"
)

func TestCleanupOrphans(t *testing.T) {
	orig := config.DownloadDir
	config.DownloadDir = t.TempDir()
	t.Cleanup(func() { config.DownloadDir = orig })

	stale := filepath.Join(config.DownloadDir, "pl_stale123")
	if err := os.MkdirAll(stale, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(stale, "001 - Track.mp3"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	past := time.Now().Add(-2 * config.MaxOrphanAge)
	if err := os.Chtimes(stale, past, past); err != nil {
		t.Fatalf("Failed to age dir: %v", err)
	}

	fresh := filepath.Join(config.DownloadDir, "yt_fresh456.mp4")
	if err := os.WriteFile(fresh, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	CleanupOrphans()

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("Expected stale work directory to be deleted")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Errorf("Expected fresh output to survive: %v", err)
	}
}
