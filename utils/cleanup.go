package utils

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"media-fetcher-go/config"

	"github.com/robfig/cron/v3"
)

// StartCleanupScheduler starts the orphan cleanup cron job. Every request
// deletes its own temp state; the sweep only catches leftovers from a
// crashed or killed process.
func StartCleanupScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc(config.CleanupInterval, func() {
		CleanupOrphans()
	})

	c.Start()

	// Run cleanup on startup
	go CleanupOrphans()

	log.Println("[Cleanup] Scheduler started")
	return c
}

// CleanupOrphans removes download-root entries older than MaxOrphanAge
func CleanupOrphans() {
	entries, err := os.ReadDir(config.DownloadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[Cleanup] Error reading download directory: %v\n", err)
		}
		return
	}

	now := time.Now()
	deleted := 0

	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		age := now.Sub(info.ModTime())
		if age <= config.MaxOrphanAge {
			continue
		}
		path := filepath.Join(config.DownloadDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			log.Printf("[Cleanup] Failed to delete %s: %v\n", entry.Name(), err)
			continue
		}
		deleted++
		log.Printf("[Cleanup] Deleted orphan: %s (age: %v)\n", entry.Name(), age.Round(time.Minute))
	}

	if deleted > 0 {
		log.Printf("[Cleanup] Finished. Deleted %d entries\n", deleted)
	}
}
