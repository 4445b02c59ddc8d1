package handlers

import (
	"strings"

	"media-fetcher-go/models"
	"media-fetcher-go/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleValidate handles POST /api/validate. It classifies the URL without
// any network call and reports the detected source and playlist candidacy.
func HandleValidate(c *fiber.Ctx) error {
	var req models.ValidateRequest
	// Tolerate malformed bodies; an unparseable body is just an empty URL
	_ = c.BodyParser(&req)

	mediaURL := strings.TrimSpace(req.URL)
	if mediaURL == "" {
		return c.JSON(models.ValidateResponse{OK: false, Valid: false})
	}

	class, ok := utils.ClassifyURL(mediaURL)
	if !ok {
		return c.JSON(models.ValidateResponse{OK: true, Valid: false})
	}

	playlist := class.Playlist
	return c.JSON(models.ValidateResponse{
		OK:       true,
		Valid:    true,
		Source:   class.Source,
		Playlist: &playlist,
	})
}
