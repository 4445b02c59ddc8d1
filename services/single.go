package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"media-fetcher-go/config"
	"media-fetcher-go/utils"

	"github.com/jaevor/go-nanoid"
)

// ErrNoOutput means the engine reported success but no output file with the
// expected prefix exists. Inconsistent state, not retried.
var ErrNoOutput = errors.New("no output file found after download")

// newToken generates collision-resistant identifiers for work dirs and
// temp output files
var newToken func() string

func init() {
	gen, err := nanoid.Standard(config.TokenLength)
	if err != nil {
		panic(err)
	}
	newToken = gen
}

// SingleResult describes a downloaded single item ready to be served
type SingleResult struct {
	Path     string // temp file on disk, caller deletes after serving
	Filename string // download name presented to the caller
	MIME     string
}

// DownloadSingle downloads one item to a uniquely named temp path. The
// final extension depends on the engine's post-processing chain and is not
// known upfront, so the output is located afterwards by prefix match;
// matches are sorted so selection is deterministic.
func DownloadSingle(url, source, format, quality string) (*SingleResult, error) {
	prefix := "yt_"
	if source == utils.SourceSoundCloud {
		prefix = "sc_"
	}
	baseName := prefix + newToken()
	outputTemplate := filepath.Join(config.DownloadDir, baseName+".%(ext)s")

	var opts EngineOptions
	if format == "mp4" {
		opts = VideoOptions(outputTemplate, quality)
	} else {
		opts = AudioOptions(outputTemplate, format, quality)
	}
	opts.NoPlaylist = true
	engine := NewEngine(opts)

	info, err := engine.Download(url)
	if err != nil {
		return nil, err
	}
	if info == nil {
		if source == utils.SourceSoundCloud {
			return nil, errors.New("could not get track info")
		}
		return nil, errors.New("could not get video info")
	}

	matches, err := filepath.Glob(filepath.Join(config.DownloadDir, baseName+"*"))
	if err != nil || len(matches) == 0 {
		return nil, ErrNoOutput
	}
	sort.Strings(matches)

	title := info.Title
	if title == "" {
		title = baseName
	}
	safeTitle := utils.SanitizeTitle(title, config.MaxTitleLength)

	return &SingleResult{
		Path:     matches[0],
		Filename: fmt.Sprintf("%s.%s", safeTitle, format),
		MIME:     utils.ContentTypeForFormat(format),
	}, nil
}

// RemoveOutput deletes a served temp file; failures are swallowed since the
// response has already been delivered
func RemoveOutput(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[Download] Failed to remove temp output %s: %v\n", path, err)
	}
}
