package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"media-fetcher-go/config"
	"media-fetcher-go/models"
)

// Engine is the external extraction capability. Probe fetches metadata
// without persisting media; Download persists media to the configured
// output template and returns the same metadata. An Engine is single-use:
// one is built per request and never shared.
type Engine interface {
	Probe(url string) (*models.MediaInfo, error)
	Download(url string) (*models.MediaInfo, error)
}

// NewEngine builds the engine for one request. Var so tests can substitute
// a fake engine returning canned metadata and files.
var NewEngine = func(opts EngineOptions) Engine {
	return &ytdlpEngine{opts: opts}
}

// ytdlpEngine shells out to the yt-dlp binary
type ytdlpEngine struct {
	opts EngineOptions
}

// Probe runs a metadata-only extraction
func (e *ytdlpEngine) Probe(url string) (*models.MediaInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), config.ProbeTimeout)
	defer cancel()

	args := append(e.opts.args(), "-J", "--skip-download", url)
	return runEngine(ctx, args)
}

// Download persists media per the configured options and returns metadata
func (e *ytdlpEngine) Download(url string) (*models.MediaInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), config.DownloadTimeout)
	defer cancel()

	args := append(e.opts.args(), "-J", "--no-simulate", url)
	return runEngine(ctx, args)
}

func runEngine(ctx context.Context, args []string) (*models.MediaInfo, error) {
	cmd := exec.CommandContext(ctx, enginePath(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%s", msg)
	}

	var info models.MediaInfo
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return nil, fmt.Errorf("failed to parse engine metadata: %w", err)
	}
	return &info, nil
}

// enginePath finds yt-dlp on PATH or next to the executable
func enginePath() string {
	if path, err := exec.LookPath("yt-dlp"); err == nil {
		return path
	}
	if exe, err := os.Executable(); err == nil {
		for _, name := range []string{"yt-dlp", "yt-dlp.exe"} {
			candidate := filepath.Join(filepath.Dir(exe), name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return "yt-dlp"
}
