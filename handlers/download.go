package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"slices"
	"strings"

	"media-fetcher-go/config"
	"media-fetcher-go/models"
	"media-fetcher-go/services"
	"media-fetcher-go/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleDownload handles POST /api/download
func HandleDownload(c *fiber.Ctx) error {
	var req models.DownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	mediaURL := strings.TrimSpace(req.URL)
	source := strings.ToLower(req.Source)
	if source == "" {
		source = utils.SourceYouTube
	}
	format := strings.ToLower(req.Format)
	if format == "" {
		format = "mp4"
	}
	quality := strings.ToLower(req.Quality)
	if quality == "" {
		quality = "best"
	}

	if mediaURL == "" {
		return utils.BadRequest(c, "No URL provided")
	}

	// --- SoundCloud: single track or playlist ---
	if source == utils.SourceSoundCloud {
		if !utils.IsSoundCloudURL(mediaURL) {
			return utils.BadRequest(c, "Invalid SoundCloud URL")
		}
		audioFormat := format
		if !slices.Contains(config.AudioFormats, audioFormat) {
			audioFormat = "mp3"
		}
		// Unknown quality values fall back to "best" instead of failing
		if quality != "best" && !config.MP3QualityBitrates[quality] {
			quality = "best"
		}

		if req.Playlist && utils.IsSoundCloudPlaylist(mediaURL) {
			log.Printf("[Download] Playlist request: %s (%s, %s)\n", mediaURL, audioFormat, quality)
			archive, name, err := services.DownloadPlaylistArchive(mediaURL, audioFormat, quality)
			if err != nil {
				log.Printf("[Download] Playlist failed: %v\n", err)
				return utils.BadRequest(c, err.Error())
			}
			setAttachmentHeaders(c, name, utils.ContentTypeForFormat("zip"), int64(len(archive)))
			return c.Send(archive)
		}

		result, err := services.DownloadSingle(mediaURL, source, audioFormat, quality)
		return respondSingle(c, result, err)
	}

	// --- YouTube ---
	if !utils.IsYouTubeURL(mediaURL) {
		return utils.BadRequest(c, "Invalid YouTube URL")
	}
	if !slices.Contains(config.YouTubeFormats, format) {
		return utils.BadRequest(c, "Format must be mp4, mp3, or wav")
	}

	result, err := services.DownloadSingle(mediaURL, source, format, quality)
	return respondSingle(c, result, err)
}

// respondSingle streams a single-item result and schedules the temp file
// for deletion once the body has been fully sent
func respondSingle(c *fiber.Ctx, result *services.SingleResult, err error) error {
	if err != nil {
		if errors.Is(err, services.ErrNoOutput) {
			log.Printf("[Download] %v\n", err)
			return utils.InternalError(c, "Download failed")
		}
		log.Printf("[Download] Engine error: %v\n", err)
		return utils.BadRequest(c, err.Error())
	}

	f, err := os.Open(result.Path)
	if err != nil {
		services.RemoveOutput(result.Path)
		return utils.InternalError(c, "Download failed")
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		services.RemoveOutput(result.Path)
		return utils.InternalError(c, "Download failed")
	}

	setAttachmentHeaders(c, result.Filename, result.MIME, info.Size())
	// fasthttp closes the stream after the body is written, which triggers
	// the temp file deletion on every exit path
	c.Context().SetBodyStream(&deleteOnClose{File: f}, int(info.Size()))
	return nil
}

// deleteOnClose removes the underlying file from disk when the response
// stream is closed
type deleteOnClose struct {
	*os.File
}

func (d *deleteOnClose) Close() error {
	err := d.File.Close()
	services.RemoveOutput(d.File.Name())
	return err
}

// setAttachmentHeaders sets download headers with RFC 5987 encoding for
// non-ASCII filenames
func setAttachmentHeaders(c *fiber.Ctx, filename, contentType string, size int64) {
	encoded := url.PathEscape(filename)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentLength, fmt.Sprintf("%d", size))
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, filename, encoded))
}
