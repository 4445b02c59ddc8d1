package config

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/joho/godotenv/autoload" // Auto-load .env file
	"golang.org/x/net/proxy"
)

const (
	// Server
	Port = 5000

	// Request body limit (JSON payloads only, no uploads)
	MaxBodySize = 4 * 1024

	// Unique token length for work dirs and temp output files
	TokenLength = 8

	// Cover art fetch
	CoverFetchTimeout = 15 * time.Second
	CoverUserAgent    = "Mozilla/5.0 (Windows NT 10.0; rv:109.0) Gecko/20100101 Firefox/115.0"

	// Filenames
	MaxTitleLength = 80

	// Delay between playlist item requests to reduce rate-limit risk.
	// Fixed, not adaptive.
	PlaylistSleepRequests = 500 * time.Millisecond

	// Engine invocation limits
	ProbeTimeout    = 60 * time.Second
	DownloadTimeout = 30 * time.Minute

	// Cleanup of orphaned work dirs / temp files (crashed requests)
	CleanupInterval = "0 * * * *" // Every hour
	MaxOrphanAge    = 1 * time.Hour
)

// DownloadDir is the shared root for all per-request output. Var so tests
// can point it at a scratch directory.
var DownloadDir = getEnv("DOWNLOAD_DIR", "./downloads")

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// MP4 quality: format selector for max resolution.
// 4K/1440p: no [ext=mp4] on video so we get VP9/AV1 when that's the only
// option; the engine merges to mp4 either way.
var MP4QualityFormats = map[string]string{
	"best": "bestvideo[ext=mp4]+bestaudio[ext=m4a]/bestvideo+bestaudio/best",
	"2160": "bestvideo[height<=2160]+bestaudio[ext=m4a]/bestvideo[height<=2160]+bestaudio/best",
	"1440": "bestvideo[height<=1440]+bestaudio[ext=m4a]/bestvideo[height<=1440]+bestaudio/best",
	"1080": "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/bestvideo[height<=1080]+bestaudio/best",
	"720":  "bestvideo[height<=720][ext=mp4]+bestaudio[ext=m4a]/bestvideo[height<=720]+bestaudio/best",
	"480":  "bestvideo[height<=480][ext=mp4]+bestaudio[ext=m4a]/bestvideo[height<=480]+bestaudio/best",
	"360":  "bestvideo[height<=360][ext=mp4]+bestaudio[ext=m4a]/bestvideo[height<=360]+bestaudio/best",
}

// MP3 quality: recognized explicit bitrates in kbps. Anything else
// (including "best") means maximum-quality VBR.
var MP3QualityBitrates = map[string]bool{
	"320": true,
	"192": true,
	"128": true,
}

// Supported output formats
var (
	YouTubeFormats = []string{"mp4", "mp3", "wav"}
	AudioFormats   = []string{"mp3", "wav"}
)

// SOCKS5 proxy for outbound cover fetches (optional, e.g. WARP)
var proxyAddr = os.Getenv("PROXY_ADDR")

// CoverClient fetches cover art with a bounded timeout
var CoverClient *http.Client

func init() {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	if proxyAddr != "" {
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			dialer, err := proxy.SOCKS5("tcp", proxyAddr, nil, proxy.Direct)
			if err != nil {
				return nil, err
			}
			return dialer.Dial(network, addr)
		}
	}
	CoverClient = &http.Client{
		Transport: transport,
		Timeout:   CoverFetchTimeout,
	}
}

// FFmpegLocation returns the directory of a bundled ffmpeg binary next to
// the executable, or "" when the engine should rely on PATH.
func FFmpegLocation() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	name := "ffmpeg"
	if runtime.GOOS == "windows" {
		name = "ffmpeg.exe"
	}
	dir := filepath.Join(filepath.Dir(exe), "ffmpeg")
	if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
		return dir
	}
	return ""
}
